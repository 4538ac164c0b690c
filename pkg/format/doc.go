// Package format knows how to parse and serialize the file formats cfgkit
// handles.
//
// Structured formats (json, yaml, toml) always decode to a
// map[string]interface{} whose nested values are normalized: mappings are
// map[string]interface{} and sequences are []interface{}. The text format
// carries its payload as a raw string and never goes through a codec.
package format
