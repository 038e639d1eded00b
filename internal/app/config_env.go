package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// Environment variables recognised by the converter.
const (
	EnvConfig   = "DOCXTEXT_CONFIG"
	EnvEntry    = "DOCXTEXT_ENTRY"
	EnvEncoding = "DOCXTEXT_ENCODING"
	EnvStripper = "DOCXTEXT_STRIPPER"
	EnvSuffix   = "DOCXTEXT_SUFFIX"
	EnvManifest = "DOCXTEXT_MANIFEST"
	EnvPDF      = "DOCXTEXT_PDF"
	EnvVerbose  = "DOCXTEXT_VERBOSE"
)

const defaultDotenv = ".env"

// ApplyEnvOverrides overrides cfg fields with environment variables when the
// corresponding variables are set. Env takes precedence over the config file.
func ApplyEnvOverrides(cfg *Config) {
	if cfg == nil {
		return
	}
	if v := os.Getenv(EnvEntry); v != "" {
		cfg.Entry = v
	}
	if v := os.Getenv(EnvEncoding); v != "" {
		cfg.Encoding = v
	}
	if v := os.Getenv(EnvStripper); v != "" {
		cfg.Stripper = v
	}
	if v := os.Getenv(EnvSuffix); v != "" {
		cfg.OutputSuffix = v
	}
	if v := os.Getenv(EnvManifest); v != "" {
		cfg.ManifestPath = v
	}

	// Booleans override when env present and truthy/falsey
	setBool := func(dst *bool, envKey string) {
		if s := strings.ToLower(strings.TrimSpace(os.Getenv(envKey))); s != "" {
			switch s {
			case "1", "true", "yes", "on":
				*dst = true
			case "0", "false", "no", "off":
				*dst = false
			}
		}
	}
	setBool(&cfg.PDF, EnvPDF)
	setBool(&cfg.Verbose, EnvVerbose)
}

// LoadConfig builds the effective configuration: defaults, then ./.env, then
// the file named by DOCXTEXT_CONFIG and any envFiles it lists, then env.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	loadDefaultDotenv()
	if p := strings.TrimSpace(os.Getenv(EnvConfig)); p != "" {
		fc, err := LoadConfigFile(p)
		if err != nil {
			return cfg, fmt.Errorf("config file %s: %w", p, err)
		}
		ApplyFileConfig(&cfg, fc)
		if err := LoadEnvFiles(cfg.EnvFiles...); err != nil {
			return cfg, fmt.Errorf("load env files: %w", err)
		}
	}
	ApplyEnvOverrides(&cfg)
	if err := ValidateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadDefaultDotenv loads ./.env when it is a regular file. Unlike files
// listed in envFiles, problems with it are logged and never stop a run.
func loadDefaultDotenv() {
	fi, err := os.Stat(defaultDotenv)
	if err != nil || !fi.Mode().IsRegular() {
		return
	}
	if err := LoadEnvFiles(defaultDotenv); err != nil {
		log.Warn().Err(err).Str("path", defaultDotenv).Msg("ignoring dotenv file")
	}
}
