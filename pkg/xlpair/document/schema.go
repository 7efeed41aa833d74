package document

// schemaJSON is the JSON Schema every schema document must satisfy.
// Only file_path is required; everything else falls back to defaults.
const schemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "FileSchema",
  "type": "object",
  "required": ["file_path"],
  "properties": {
    "file_path": {"type": "string"},
    "file_data": {
      "type": "array",
      "items": {"$ref": "#/definitions/sheet_schema"}
    }
  },
  "definitions": {
    "sheet_schema": {
      "type": "object",
      "properties": {
        "sheet_id": {"type": ["string", "null"]},
        "sheet_data": {
          "type": "array",
          "items": {"$ref": "#/definitions/data_pair"}
        }
      }
    },
    "data_pair": {
      "type": "object",
      "properties": {
        "src": {"$ref": "#/definitions/cell_range"},
        "mt": {"$ref": "#/definitions/cell_range"}
      }
    },
    "cell_range": {
      "type": "object",
      "properties": {
        "columns_range": {"type": ["string", "null"]},
        "rows_range": {"type": ["string", "null"]},
        "values": {
          "type": ["array", "null"],
          "items": {"type": ["string", "number", "boolean", "null"]}
        }
      }
    }
  }
}`
