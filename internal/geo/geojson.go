// Package geo handles GeoJSON feature collections.
package geo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// TypeFeatureCollection is the type tag of every collection written.
const TypeFeatureCollection = "FeatureCollection"

var (
	// ErrRead is returned when the input is missing, unreadable or not well-formed JSON.
	ErrRead = errors.New("read input")

	// ErrSchema is returned when the input has no features array.
	ErrSchema = errors.New("invalid collection")
)

// FeatureCollection represents a collection of geographic features.
// Features and CRS are kept as raw JSON and passed through untouched.
type FeatureCollection struct {
	Type     string            `json:"type"`
	Name     string            `json:"name"`
	CRS      json.RawMessage   `json:"crs,omitempty"`
	Features []json.RawMessage `json:"features"`
}

var encodeOptions = &pretty.Options{
	Width:  80,
	Prefix: "",
	Indent: "  ",
}

// Load reads a feature collection from path.
func Load(path string) (*FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s: not valid UTF-8", ErrRead, path)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s: malformed JSON", ErrRead, path)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: %s: top-level value is not an object", ErrSchema, path)
	}

	features := root.Get("features")
	if !features.Exists() {
		return nil, fmt.Errorf("%w: %s: missing features array", ErrSchema, path)
	}
	if !features.IsArray() {
		return nil, fmt.Errorf("%w: %s: features is not an array", ErrSchema, path)
	}

	fc := &FeatureCollection{
		Type:     root.Get("type").String(),
		Name:     root.Get("name").String(),
		Features: make([]json.RawMessage, 0),
	}

	if crs := root.Get("crs"); crs.Exists() {
		fc.CRS = json.RawMessage(crs.Raw)
	}

	features.ForEach(func(_, feature gjson.Result) bool {
		fc.Features = append(fc.Features, json.RawMessage(feature.Raw))
		return true
	})

	return fc, nil
}

// Property returns properties[name] of a feature as a string.
// It reports false if the feature has no properties object, the property is
// absent or its value is null. Non-string values yield their JSON text.
func Property(feature json.RawMessage, name string) (string, bool) {
	props := gjson.GetBytes(feature, "properties")
	if !props.IsObject() {
		return "", false
	}

	// walk keys instead of building a path, names may hold gjson syntax
	var value gjson.Result
	found := false
	props.ForEach(func(key, v gjson.Result) bool {
		if key.String() == name {
			value, found = v, true
		}
		return true
	})

	if !found || value.Type == gjson.Null {
		return "", false
	}
	if value.Type == gjson.String {
		return value.Str, true
	}

	return value.Raw, true
}

// Encode marshals the collection as indented UTF-8 JSON ending with a newline.
func Encode(fc *FeatureCollection) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(fc); err != nil {
		return nil, err
	}

	return pretty.PrettyOptions(buf.Bytes(), encodeOptions), nil
}
