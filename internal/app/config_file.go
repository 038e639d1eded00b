package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/docxtext/internal/extract"
)

// FileConfig represents the optional configuration file schema.
type FileConfig struct {
	Entry           string   `yaml:"entry" json:"entry"`
	ParagraphMarker string   `yaml:"paragraphMarker" json:"paragraphMarker"`
	Encoding        string   `yaml:"encoding" json:"encoding"`
	Stripper        string   `yaml:"stripper" json:"stripper"`
	OutputSuffix    string   `yaml:"outputSuffix" json:"outputSuffix"`
	Manifest        string   `yaml:"manifest" json:"manifest"`
	PDF             bool     `yaml:"pdf" json:"pdf"`
	Verbose         bool     `yaml:"verbose" json:"verbose"`
	EnvFiles        []string `yaml:"envFiles" json:"envFiles"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays every value set in fc onto cfg.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if fc.Entry != "" {
		cfg.Entry = fc.Entry
	}
	if fc.ParagraphMarker != "" {
		cfg.ParagraphMarker = fc.ParagraphMarker
	}
	if fc.Encoding != "" {
		cfg.Encoding = fc.Encoding
	}
	if fc.Stripper != "" {
		cfg.Stripper = fc.Stripper
	}
	if fc.OutputSuffix != "" {
		cfg.OutputSuffix = fc.OutputSuffix
	}
	if fc.Manifest != "" {
		cfg.ManifestPath = fc.Manifest
	}
	if fc.PDF {
		cfg.PDF = true
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
	if len(fc.EnvFiles) > 0 {
		cfg.EnvFiles = append([]string{}, fc.EnvFiles...)
	}
}

// ValidateConfig rejects settings that would make every extraction fail or
// every output collide with its input.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.Entry) == "" {
		return errors.New("config: entry is required")
	}
	if cfg.ParagraphMarker == "" {
		return errors.New("config: paragraphMarker is required")
	}
	if _, _, err := extract.LookupEncoding(cfg.Encoding); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, ok := extract.StripperByName(cfg.Stripper); !ok {
		return fmt.Errorf("config: unknown stripper %q (want regex or stream)", cfg.Stripper)
	}
	if cfg.OutputSuffix == "" {
		return errors.New("config: outputSuffix is required")
	}
	return nil
}
