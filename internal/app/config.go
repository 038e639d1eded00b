package app

import (
	"github.com/hyperifyio/docxtext/internal/extract"
)

// Config holds runtime configuration for the converter.
type Config struct {
	// Extraction
	Entry           string
	ParagraphMarker string
	Encoding        string
	Stripper        string

	// Output
	OutputSuffix string
	ManifestPath string
	PDF          bool

	// Behavior
	Verbose  bool
	EnvFiles []string
}

const (
	defaultOutputSuffix = ".txt"
	defaultStripper     = "regex"
)

// DefaultConfig returns the settings that reproduce plain `<path>.txt`
// extraction of word/document.xml.
func DefaultConfig() Config {
	return Config{
		Entry:           extract.DefaultEntry,
		ParagraphMarker: extract.DefaultParagraphMarker,
		Encoding:        extract.DefaultEncoding,
		Stripper:        defaultStripper,
		OutputSuffix:    defaultOutputSuffix,
	}
}

// extractOptions converts cfg into extraction options. cfg must be valid.
func (cfg Config) extractOptions() extract.Options {
	s, _ := extract.StripperByName(cfg.Stripper)
	return extract.Options{
		Entry:           cfg.Entry,
		ParagraphMarker: cfg.ParagraphMarker,
		Encoding:        cfg.Encoding,
		Stripper:        s,
	}
}
