package document

import (
	jsoniter "github.com/json-iterator/go"
)

// Indent is the fixed indentation of schema documents.
const Indent = "    "

// handler decodes numbers as json.Number so integral values survive a
// round trip as int64 instead of collapsing to float64.
var handler = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// Marshal converts v to compact JSON.
func Marshal(v any) ([]byte, error) {
	return handler.Marshal(v)
}

// MarshalIndent converts v to JSON indented with Indent.
func MarshalIndent(v any) ([]byte, error) {
	return handler.MarshalIndent(v, "", Indent)
}

// Unmarshal decodes JSON data into v.
func Unmarshal(data []byte, v any) error {
	return handler.Unmarshal(data, v)
}
