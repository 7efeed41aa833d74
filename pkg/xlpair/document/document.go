// Package document reads and writes schema documents: the JSON form of a
// models.FileSchema.
package document

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/xeipuuv/gojsonschema"

	"github.com/ukaji3/xlpair-go/pkg/xlpair/models"
)

// ErrDocumentNotFound indicates the schema document does not exist.
var ErrDocumentNotFound = errors.New("schema document not found")

// ErrSchemaValidation indicates a document does not satisfy the schema.
var ErrSchemaValidation = errors.New("schema validation failed")

// ErrDocumentWrite indicates a schema document could not be written.
var ErrDocumentWrite = errors.New("failed to write schema document")

// ValidationError lists every constraint a document violated.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrSchemaValidation, strings.Join(e.Violations, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrSchemaValidation
}

var schemaLoader = gojsonschema.NewStringLoader(schemaJSON)

// Encode serializes fs with a fixed field order and indentation, followed
// by a newline. Encoding unchanged content always yields the same bytes.
func Encode(fs *models.FileSchema) ([]byte, error) {
	if fs == nil {
		return nil, errors.New("nil file schema")
	}
	c := withDefaults(fs.Clone())
	for i := range c.FileData {
		for j := range c.FileData[i].SheetData {
			pair := &c.FileData[i].SheetData[j]
			markFloats(pair.Src.Values)
			markFloats(pair.Mt.Values)
		}
	}
	data, err := MarshalIndent(c)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Decode validates data against the document schema and decodes it.
// Missing optional collections default to empty.
func Decode(data []byte) (*models.FileSchema, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var fs models.FileSchema
	if err := Unmarshal(data, &fs); err != nil {
		return nil, &ValidationError{Violations: []string{err.Error()}}
	}
	withDefaults(&fs)
	for i := range fs.FileData {
		for j := range fs.FileData[i].SheetData {
			pair := &fs.FileData[i].SheetData[j]
			normalizeValues(pair.Src.Values)
			normalizeValues(pair.Mt.Values)
		}
	}
	return &fs, nil
}

// Validate checks data against the document schema.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &ValidationError{Violations: []string{fmt.Sprintf("invalid JSON: %v", err)}}
	}
	if result.Valid() {
		return nil
	}
	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, desc.String())
	}
	return &ValidationError{Violations: violations}
}

// ReadFile reads and decodes the document at path.
func ReadFile(path string) (*models.FileSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, path)
		}
		return nil, err
	}
	return Decode(data)
}

// WriteFile encodes fs and writes it to path.
func WriteFile(path string, fs *models.FileSchema) error {
	data, err := Encode(fs)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentWrite, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrDocumentWrite, err)
	}
	return nil
}

// withDefaults replaces nil collections with empty ones so the encoded
// document always satisfies the schema.
func withDefaults(fs *models.FileSchema) *models.FileSchema {
	if fs.FileData == nil {
		fs.FileData = []models.SheetSchema{}
	}
	for i := range fs.FileData {
		if fs.FileData[i].SheetData == nil {
			fs.FileData[i].SheetData = []models.DataPair{}
		}
	}
	return fs
}

// number is satisfied by json.Number.
type number interface {
	String() string
	Int64() (int64, error)
	Float64() (float64, error)
}

// markFloats replaces float64 values with number literals that always carry
// a fraction or exponent, so 2.0 is written as "2.0" and decodes as float64.
func markFloats(values []any) {
	for i, v := range values {
		f, ok := v.(float64)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		lit := strconv.FormatFloat(f, 'g', -1, 64)
		if !isFloatLiteral(lit) {
			lit += ".0"
		}
		values[i] = jsoniter.Number(lit)
	}
}

// normalizeValues converts decoded numbers to int64 when written without a
// fraction or exponent, float64 otherwise.
func normalizeValues(values []any) {
	for i, v := range values {
		n, ok := v.(number)
		if !ok {
			continue
		}
		if !isFloatLiteral(n.String()) {
			if iv, err := n.Int64(); err == nil {
				values[i] = iv
				continue
			}
		}
		if fv, err := n.Float64(); err == nil {
			values[i] = fv
		}
	}
}

func isFloatLiteral(s string) bool {
	return strings.ContainsAny(s, ".eE")
}
