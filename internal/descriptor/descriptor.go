// Package descriptor exposes the capability descriptor that host integration
// tools read to learn what the counter widget is and how it can be configured.
package descriptor

import (
	_ "embed"
	"fmt"

	"counterapp/internal/jsonutil"
)

// Tag is the element name the descriptor describes.
const Tag = "counter-app"

//go:embed lib/counter-app.haxProperties.json
var raw []byte

// Descriptor is the parsed capability descriptor.
type Descriptor struct {
	Type          string       `json:"type"`
	CanScale      bool         `json:"canScale"`
	CanEditSource bool         `json:"canEditSource"`
	Gizmo         Gizmo        `json:"gizmo"`
	Settings      Settings     `json:"settings"`
	DemoSchema    []DemoSchema `json:"demoSchema"`
}

// Gizmo is the catalog entry shown by the host.
type Gizmo struct {
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Icon        string                 `json:"icon"`
	Color       string                 `json:"color"`
	Tags        []string               `json:"tags"`
	Handles     []interface{}          `json:"handles"`
	Meta        map[string]interface{} `json:"meta"`
}

// Settings lists the editable properties.
type Settings struct {
	Configure []Setting `json:"configure"`
	Advanced  []Setting `json:"advanced"`
}

// Setting describes one editable property.
type Setting struct {
	Property    string `json:"property"`
	Title       string `json:"title"`
	Description string `json:"description"`
	InputMethod string `json:"inputMethod"`
	Required    bool   `json:"required"`
}

// DemoSchema is an example instantiation.
type DemoSchema struct {
	Tag        string                 `json:"tag"`
	Properties map[string]interface{} `json:"properties"`
	Content    string                 `json:"content"`
}

// Ref returns the static reference to the descriptor resource.
func Ref() string {
	return "lib/" + Tag + ".haxProperties.json"
}

// Raw returns a copy of the embedded descriptor bytes.
func Raw() []byte {
	return append([]byte(nil), raw...)
}

// Load parses the embedded descriptor.
func Load() (*Descriptor, error) {
	return Parse(raw)
}

// Parse parses descriptor JSON. A descriptor without a gizmo title is rejected.
func Parse(data []byte) (*Descriptor, error) {
	var d Descriptor
	if err := jsonutil.UnmarshalWithContext(data, &d, "parse descriptor"); err != nil {
		return nil, err
	}
	if d.Gizmo.Title == "" {
		return nil, fmt.Errorf("parse descriptor: gizmo title is empty")
	}
	return &d, nil
}

// Author returns gizmo.meta.author, or "" when absent.
func (d *Descriptor) Author() string {
	return jsonutil.GetStringOr(d.Gizmo.Meta, "author", "")
}

// DemoCount returns the count of the first demo for Tag, if any.
func (d *Descriptor) DemoCount() (int, bool) {
	for _, s := range d.DemoSchema {
		if s.Tag != Tag {
			continue
		}
		if v, ok := s.Properties["count"].(float64); ok {
			return int(v), true
		}
	}
	return 0, false
}

// Configurable lists the property names in settings.configure.
func (d *Descriptor) Configurable() []string {
	out := make([]string, 0, len(d.Settings.Configure))
	for _, s := range d.Settings.Configure {
		out = append(out, s.Property)
	}
	return out
}
