package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/xlpair-go/pkg/xlpair"
	"github.com/ukaji3/xlpair-go/pkg/xlpair/document"
	"github.com/ukaji3/xlpair-go/pkg/xlpair/models"
	"github.com/ukaji3/xlpair-go/pkg/xlpair/parser"
)

const sheetHelp = `SHEET is a sheet name, or "#N" for the N-th sheet of the workbook (0-based).`

func (c *cli) filesCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "files [dir]",
		Short:       "List the Excel files of a directory",
		Long:        "Lists the Excel files of dir (default: --dir, or the current directory) sorted by name, with the index --index expects.",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{annotationNoWorkbook: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := c.dir
			if len(args) == 1 {
				dir = args[0]
			}
			if dir == "" {
				dir = "."
			}
			files, err := c.store.ListExcelFiles(dir)
			if err != nil {
				return err
			}
			for i, name := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", i, name)
			}
			return nil
		},
	}
}

func (c *cli) sheetsCmd() *cobra.Command {
	var schema bool
	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "List the sheets of the workbook or of the schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				names []string
				err   error
			)
			if schema {
				names, err = c.store.ListSheets()
			} else {
				names, err = c.store.ListFileSheets()
			}
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&schema, "schema", false, "List the sheets recorded in the schema instead")
	return cmd
}

func (c *cli) addSheetCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "add-sheet SHEET",
		Short: "Add a workbook sheet to the schema",
		Long:  "Adds an empty schema entry for a sheet.\n\n" + sheetHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.store.AddSheet(xlpair.ParseSheetRef(args[0]), !strict)
			if err != nil {
				return err
			}
			c.report(cmd, res, res.SheetID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when the sheet is already in the schema")
	return cmd
}

func (c *cli) removeSheetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-sheet SHEET",
		Short: "Remove a sheet from the schema and delete it from the workbook",
		Long:  "Removes a sheet from the schema, deletes it from the workbook and saves the workbook.\n\n" + sheetHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.store.RemoveSheet(xlpair.ParseSheetRef(args[0]))
			if err != nil {
				return err
			}
			c.report(cmd, res, res.SheetID)
			return nil
		},
	}
}

func (c *cli) addPairCmd() *cobra.Command {
	var (
		src, mt string
		strict  bool
	)
	cmd := &cobra.Command{
		Use:   "add-pair SHEET [SRC_COLUMNS SRC_ROWS MT_COLUMNS MT_ROWS]",
		Short: "Record a source and target range pair",
		Long: `Records a data pair on a sheet and snapshots the values both ranges cover.
The ranges are given either as four descriptors ("A-C" "1-10" "E" "1-10")
or with --src and --mt in A1 notation. A pair with the same ranges is
refreshed unless --strict is set.

` + sheetHelp,
		Example: `  xlpair -f book.xlsx add-pair Data A 2-10 B 2-10
  xlpair -f book.xlsx add-pair Data --src A2:A10 --mt B2:B10`,
		Args: pairArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := pairRanges(args[1:], src, mt)
			if err != nil {
				return err
			}
			res, err := c.store.AddDataPair(xlpair.ParseSheetRef(args[0]),
				r.Src.Columns(), r.Src.Rows(), r.Mt.Columns(), r.Mt.Rows(), !strict)
			if err != nil {
				return err
			}
			c.report(cmd, res, fmt.Sprintf("%s[%d]", res.SheetID, res.Index))
			return nil
		},
	}
	cmd.Flags().StringVar(&src, "src", "", "Source range in A1 notation (e.g. A2:A10)")
	cmd.Flags().StringVar(&mt, "mt", "", "Target range in A1 notation (e.g. B2:B10)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when a pair with the same ranges exists")
	return cmd
}

func (c *cli) removePairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-pair SHEET INDEX",
		Short: "Remove a data pair by its position",
		Long:  "Removes the INDEX-th (0-based) data pair of a sheet, as listed by 'pairs'.\n\n" + sheetHelp,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[1], err)
			}
			res, err := c.store.RemoveDataPair(xlpair.ParseSheetRef(args[0]), index)
			if err != nil {
				return err
			}
			c.report(cmd, res, fmt.Sprintf("%s[%d]", res.SheetID, res.Index))
			return nil
		},
	}
}

func (c *cli) pairsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pairs SHEET",
		Short: "Print the data pairs of a sheet as JSON",
		Long:  "Prints the data pairs recorded for a sheet with their snapshotted values.\n\n" + sheetHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs, err := c.store.ListDataPairs(xlpair.ParseSheetRef(args[0]))
			if err != nil {
				return err
			}
			return printJSON(cmd, pairs)
		},
	}
}

func (c *cli) previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview SHEET (RANGE | COLUMNS ROWS)",
		Short: "Print the values a range covers",
		Long:  "Reads a range, given in A1 notation or as two descriptors, without recording it.\n\n" + sheetHelp,
		Example: `  xlpair -f book.xlsx preview Data A1:B3
  xlpair -f book.xlsx preview Data A-B 1-3`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r models.CellRange
			if len(args) == 3 {
				r = models.NewCellRange(args[1], args[2])
			} else {
				var err error
				if r, err = a1Range(args[1]); err != nil {
					return err
				}
			}
			values, err := c.store.PreviewRange(xlpair.ParseSheetRef(args[0]), r.Columns(), r.Rows())
			if err != nil {
				return err
			}
			return printJSON(cmd, values)
		},
	}
}

func (c *cli) getCmd() *cobra.Command {
	var src, mt string
	cmd := &cobra.Command{
		Use:   "get SHEET [SRC_COLUMNS SRC_ROWS MT_COLUMNS MT_ROWS]",
		Short: "Print the live values of a source and target range",
		Long:  "Reads a range pair without recording it. Ranges are given as in add-pair.\n\n" + sheetHelp,
		Args:  pairArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := pairRanges(args[1:], src, mt)
			if err != nil {
				return err
			}
			data, err := c.store.GetData(xlpair.ParseSheetRef(args[0]), r.Src, r.Mt)
			if err != nil {
				return err
			}
			return printJSON(cmd, data)
		},
	}
	cmd.Flags().StringVar(&src, "src", "", "Source range in A1 notation")
	cmd.Flags().StringVar(&mt, "mt", "", "Target range in A1 notation")
	return cmd
}

func (c *cli) exportCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the live values of every recorded data pair",
		Long:  "Reads every data pair of the schema and prints the values keyed by sheet. Unreadable sheets and pairs are skipped with a warning.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := c.store.GetAllData()
			if err != nil {
				return err
			}
			for _, skipped := range all.Skipped {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: skipped %v\n", skipped)
			}
			if output == "" {
				return printJSON(cmd, all.Sheets)
			}
			data, err := document.MarshalIndent(all.Sheets)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, append(data, '\n'), 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			c.logger.Info("data exported", zap.String("path", output))
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path (default: stdout)")
	return cmd
}

func (c *cli) setCellCmd() *cobra.Command {
	var valueType string
	cmd := &cobra.Command{
		Use:   "set-cell SHEET CELL VALUE",
		Short: "Write a value to a cell and save the workbook",
		Long: `Writes VALUE to CELL (e.g. "B4") and saves the workbook.
With --type auto, integers, decimals and true/false are stored as numbers
and booleans; anything else as text.

` + sheetHelp,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseCellValue(args[2], valueType)
			if err != nil {
				return err
			}
			res, err := c.store.UpdateCell(xlpair.ParseSheetRef(args[0]), args[1], value)
			if err != nil {
				return err
			}
			c.report(cmd, res, res.SheetID+"!"+strings.ToUpper(args[1]))
			return nil
		},
	}
	cmd.Flags().StringVar(&valueType, "type", "auto", "Value type: auto, string, int, float, bool")
	return cmd
}

func (c *cli) schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the schema document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := c.store.ToDocument()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func (c *cli) saveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [path]",
		Short: "Write the schema document",
		Long:  "Writes the schema document to path (default: the workbook path with a .json extension).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			res, err := c.store.SaveDocument(path)
			if err != nil {
				return err
			}
			c.report(cmd, res, res.Path)
			return nil
		},
	}
}

func (c *cli) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "load path",
		Short:       "Load a schema document and bind the workbook it names",
		Long:        "Replaces the schema with a saved document and binds the workbook named by its file_path. With autosave on, the loaded schema becomes the workbook's autosave document.",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotationNoWorkbook: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.store.LoadDocument(args[0])
			if err != nil {
				return err
			}
			c.report(cmd, res, c.store.FilePath())
			return nil
		},
	}
}

func (c *cli) boundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds SHEET",
		Short: "Print the range holding every non-empty cell of a sheet",
		Long:  "Prints the columns and rows descriptors of the used range, ready for add-pair.\n\n" + sheetHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := c.store.UsedRange(xlpair.ParseSheetRef(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.Columns(), r.Rows())
			return nil
		},
	}
}

// report prints the outcome of a mutation and any persist failure.
func (c *cli) report(cmd *cobra.Command, res xlpair.Result, subject string) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", res.Outcome, subject)
	if err := res.Persist.Err(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := document.MarshalIndent(v)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

// pairArgs accepts SHEET alone (ranges from --src and --mt) or SHEET with
// four descriptors.
func pairArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 && len(args) != 5 {
		return fmt.Errorf("accepts SHEET or SHEET with 4 range descriptors, received %d args", len(args))
	}
	return nil
}

// pairRanges builds the source and target ranges from four descriptors or
// from two A1 references.
func pairRanges(descriptors []string, src, mt string) (models.DataPair, error) {
	if len(descriptors) == 4 {
		if src != "" || mt != "" {
			return models.DataPair{}, fmt.Errorf("--src and --mt cannot be combined with range descriptors")
		}
		return models.NewDataPair(descriptors[0], descriptors[1], descriptors[2], descriptors[3]), nil
	}
	if src == "" || mt == "" {
		return models.DataPair{}, fmt.Errorf("both --src and --mt are required without range descriptors")
	}
	srcRange, err := a1Range(src)
	if err != nil {
		return models.DataPair{}, fmt.Errorf("--src: %w", err)
	}
	mtRange, err := a1Range(mt)
	if err != nil {
		return models.DataPair{}, fmt.Errorf("--mt: %w", err)
	}
	return models.DataPair{Src: srcRange, Mt: mtRange}, nil
}

func a1Range(ref string) (models.CellRange, error) {
	columns, rows, err := parser.ParseA1Range(ref)
	if err != nil {
		return models.CellRange{}, err
	}
	return models.NewCellRange(columns, rows), nil
}

// parseCellValue converts the command line text of a cell value to the
// requested type.
func parseCellValue(s, valueType string) (any, error) {
	switch valueType {
	case "string":
		return s, nil
	case "int":
		return strconv.ParseInt(s, 10, 64)
	case "float":
		return strconv.ParseFloat(s, 64)
	case "bool":
		return strconv.ParseBool(s)
	case "auto":
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f, nil
		}
		switch strings.ToLower(s) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return s, nil
	default:
		return nil, fmt.Errorf("invalid type: %s (must be auto, string, int, float, or bool)", valueType)
	}
}
