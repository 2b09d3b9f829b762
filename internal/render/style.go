package render

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Style controls the visual appearance of the generated timeline
// document. All values have defaults matching the original palette; a
// YAML style file overrides individual fields.
type Style struct {
	Font struct {
		Family string `yaml:"family"` // CSS font-family for all text
		Size   int    `yaml:"size"`   // base font size in pixels
	} `yaml:"font"`
	Colors struct {
		Background  string `yaml:"background"`  // page background
		Line        string `yaml:"line"`        // center timeline line
		Dot         string `yaml:"dot"`         // event markers on the line
		Card        string `yaml:"card"`        // card background
		CardBorder  string `yaml:"card_border"` // card border
		Period      string `yaml:"period"`      // period label text
		Title       string `yaml:"title"`       // event title text
		Description string `yaml:"description"` // description text
		Theme       string `yaml:"theme"`       // theme tag text
	} `yaml:"colors"`
	Layout struct {
		MaxWidth  int `yaml:"max_width"`  // timeline container width in pixels
		RowHeight int `yaml:"row_height"` // vertical budget per event row
		Padding   int `yaml:"padding"`    // container top/bottom padding
	} `yaml:"layout"`
}

// DefaultStyle returns the built-in style.
func DefaultStyle() Style {
	var s Style
	s.Font.Family = "system-ui, sans-serif"
	s.Font.Size = 15
	s.Colors.Background = "#f9fafb"
	s.Colors.Line = "#d1d5db"
	s.Colors.Dot = "#9ca3af"
	s.Colors.Card = "#ffffff"
	s.Colors.CardBorder = "#e5e7eb"
	s.Colors.Period = "#6b7280"
	s.Colors.Title = "#111827"
	s.Colors.Description = "#374151"
	s.Colors.Theme = "#8b5cf6"
	s.Layout.MaxWidth = 960
	s.Layout.RowHeight = 150
	s.Layout.Padding = 24
	return s
}

// LoadStyle reads a YAML style file, layering it over the defaults so
// a partial file only overrides what it names.
func LoadStyle(path string) (Style, error) {
	style := DefaultStyle()

	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("read style file: %w", err)
	}
	if err := yaml.Unmarshal(data, &style); err != nil {
		return Style{}, fmt.Errorf("parse style file: %w", err)
	}
	return style, nil
}
