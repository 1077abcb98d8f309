// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared configuration structures and error kinds for
// the HanwenPDF conversion pipeline.
package types

// FontConfig identifies the CJK-capable font used for all text. The
// repository ships no fonts; the operator supplies a TTF file.
type FontConfig struct {
	// Path is the filesystem path to a TrueType font file with CJK coverage.
	Path string `json:"path" yaml:"path"`

	// Family is the name the font is registered under in the PDF
	// (default "CJK").
	Family string `json:"family" yaml:"family"`
}

// PageConfig holds the page geometry for a conversion run. All lengths are
// in points (72 pt = 1 in). Immutable once a run starts.
type PageConfig struct {
	// Size is the gofpdf page size name (default "Letter").
	Size string `json:"size" yaml:"size"`

	MarginLeft   float64 `json:"margin_left" yaml:"margin_left"`
	MarginRight  float64 `json:"margin_right" yaml:"margin_right"`
	MarginTop    float64 `json:"margin_top" yaml:"margin_top"`
	MarginBottom float64 `json:"margin_bottom" yaml:"margin_bottom"`
}

// StyleConfig holds the text styles applied during layout. Sizes and
// leadings are in points.
type StyleConfig struct {
	TitleSize    float64 `json:"title_size" yaml:"title_size"`
	TitleLeading float64 `json:"title_leading" yaml:"title_leading"`

	ChapterSize    float64 `json:"chapter_size" yaml:"chapter_size"`
	ChapterLeading float64 `json:"chapter_leading" yaml:"chapter_leading"`

	BodySize    float64 `json:"body_size" yaml:"body_size"`
	BodyLeading float64 `json:"body_leading" yaml:"body_leading"`

	FooterSize float64 `json:"footer_size" yaml:"footer_size"`

	// SpaceAfterChapter is the vertical gap after a chapter heading.
	SpaceAfterChapter float64 `json:"space_after_chapter" yaml:"space_after_chapter"`

	// SpaceAfterPara is the vertical gap after a body paragraph.
	SpaceAfterPara float64 `json:"space_after_para" yaml:"space_after_para"`
}

// LayoutConfig groups everything the layout stage needs to render a document.
type LayoutConfig struct {
	Font  FontConfig  `json:"font" yaml:"font"`
	Page  PageConfig  `json:"page" yaml:"page"`
	Style StyleConfig `json:"style" yaml:"style"`
}

// DefaultLayoutConfig returns the standard layout: Letter pages, 1 in
// margins, 12 pt body text with 18 pt leading. The font path is left empty;
// the operator must supply one.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		Font: FontConfig{
			Family: "CJK",
		},
		Page: PageConfig{
			Size:         "Letter",
			MarginLeft:   72,
			MarginRight:  72,
			MarginTop:    72,
			MarginBottom: 72,
		},
		Style: StyleConfig{
			TitleSize:         24,
			TitleLeading:      30,
			ChapterSize:       18,
			ChapterLeading:    22,
			BodySize:          12,
			BodyLeading:       18,
			FooterSize:        9,
			SpaceAfterChapter: 20,
			SpaceAfterPara:    6,
		},
	}
}

// ConvertConfig holds settings for one conversion run.
type ConvertConfig struct {
	// Mode is the OpenCC conversion profile (default "s2twp").
	Mode string `json:"mode" yaml:"mode"`

	// OutputDir is the directory the PDF is written to (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// PatternFile optionally points at a YAML chapter-pattern file. When
	// empty the built-in pattern set is used.
	PatternFile string `json:"pattern_file,omitempty" yaml:"pattern_file,omitempty"`

	Layout LayoutConfig `json:"layout" yaml:"layout"`
}

// DefaultConvertConfig returns the standard run configuration.
func DefaultConvertConfig() ConvertConfig {
	return ConvertConfig{
		Mode:      "s2twp",
		OutputDir: ".",
		Layout:    DefaultLayoutConfig(),
	}
}
