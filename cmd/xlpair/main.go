// Package main provides the CLI entry point for xlpair.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/xlpair-go/internal/config"
	"github.com/ukaji3/xlpair-go/pkg/xlpair"
)

// annotationNoWorkbook marks commands that never bind a workbook from the
// selection flags.
const annotationNoWorkbook = "xlpair/no-workbook"

// cli holds the flags and the state shared by all commands of one run.
type cli struct {
	configPath  string
	file        string
	dir         string
	name        string
	index       int
	autoload    bool
	autosaveDir string
	verbose     bool

	logger *zap.Logger
	store  *xlpair.Store
}

func main() {
	rootCmd, c := newRootCmd()
	if err := c.execute(rootCmd); err != nil {
		os.Exit(1)
	}
}

// execute runs rootCmd and releases the store and logger whether or not
// the command failed. cobra skips post-run hooks after an error.
func (c *cli) execute(rootCmd *cobra.Command) error {
	defer c.teardown()
	return rootCmd.Execute()
}

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}
	rootCmd := &cobra.Command{
		Use:   "xlpair",
		Short: "Map source and target cell ranges of Excel workbooks",
		Long: `xlpair records pairs of cell ranges (a source and a target) per sheet of
an Excel workbook, keeps the mapping in a JSON document and extracts the
values the ranges cover.

The workbook is chosen with --file, or with --dir plus --name or --index.
Changes are autosaved and reloaded on the next run unless configured
otherwise.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "xlpair.yaml", "Configuration file")
	flags.StringVarP(&c.file, "file", "f", "", "Workbook path")
	flags.StringVar(&c.dir, "dir", "", "Directory to choose the workbook from")
	flags.StringVar(&c.name, "name", "", "Workbook file name inside --dir")
	flags.IntVar(&c.index, "index", -1, "Workbook position inside --dir (sorted by name)")
	flags.BoolVar(&c.autoload, "autoload", false, "Load the workbook's autosave document (default from config)")
	flags.StringVar(&c.autosaveDir, "autosave-dir", "", "Directory for autosave documents (overrides config)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		c.filesCmd(),
		c.sheetsCmd(),
		c.addSheetCmd(),
		c.removeSheetCmd(),
		c.addPairCmd(),
		c.removePairCmd(),
		c.pairsCmd(),
		c.previewCmd(),
		c.getCmd(),
		c.exportCmd(),
		c.setCellCmd(),
		c.schemaCmd(),
		c.saveCmd(),
		c.loadCmd(),
		c.boundsCmd(),
	)
	return rootCmd, c
}

// setup loads the configuration, builds the logger and the store, and binds
// the selected workbook if one was given.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.autosaveDir != "" {
		cfg.AutosaveDir = c.autosaveDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	c.logger, err = cfg.Logging.NewLogger(c.verbose)
	if err != nil {
		return err
	}
	c.store, err = xlpair.New(cfg.StoreOptions(c.logger))
	if err != nil {
		return err
	}

	if cmd.Annotations[annotationNoWorkbook] == "true" {
		return nil
	}
	sel, ok := c.selector(cmd)
	if !ok {
		return nil
	}
	var autoload *bool
	if cmd.Flags().Changed("autoload") {
		autoload = &c.autoload
	}
	return c.store.SelectFile(sel, autoload)
}

// teardown closes the bound workbook and flushes the logger.
func (c *cli) teardown() {
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			c.logger.Warn("failed to close workbook", zap.Error(err))
		}
	}
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}

// selector builds the file selector from the flags. ok is false when no
// workbook was requested.
func (c *cli) selector(cmd *cobra.Command) (sel xlpair.FileSelector, ok bool) {
	sel = xlpair.FileSelector{Path: c.file, Dir: c.dir, Name: c.name}
	if cmd.Flags().Changed("index") {
		sel.Index = &c.index
	}
	return sel, sel.Path != "" || sel.Dir != "" || sel.Name != "" || sel.Index != nil
}
