package app

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hyperifyio/docxtext/internal/extract"
)

// manifestEntry records what happened to one input.
type manifestEntry struct {
	Index  int    `json:"index"`
	Input  string `json:"input"`
	Output string `json:"output"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
	SHA256 string `json:"sha256"`
	Bytes  int    `json:"bytes"`

	WriteError string `json:"write_error,omitempty"`
}

// manifestMeta captures run details that aid reproducibility.
type manifestMeta struct {
	Version     string    `json:"version"`
	Commit      string    `json:"commit"`
	Entry       string    `json:"entry"`
	Encoding    string    `json:"encoding"`
	Stripper    string    `json:"stripper"`
	FileCount   int       `json:"file_count"`
	GeneratedAt time.Time `json:"generated_at"`
}

// computeSHA256Hex returns a lowercase hex-encoded SHA-256 of the given text.
func computeSHA256Hex(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}

// newManifestEntry describes the text written for one input. The digest
// covers exactly what went to disk, error messages included.
func newManifestEntry(index int, input, output string, res extract.Result, written string) manifestEntry {
	e := manifestEntry{
		Index:  index,
		Input:  input,
		Output: output,
		OK:     res.OK(),
		SHA256: computeSHA256Hex(written),
		Bytes:  len(written),
	}
	if res.Err != nil {
		e.Error = written
	}
	return e
}

// marshalManifestJSON encodes the machine-readable manifest.
func marshalManifestJSON(meta manifestMeta, entries []manifestEntry) ([]byte, error) {
	payload := struct {
		Meta  manifestMeta    `json:"meta"`
		Files []manifestEntry `json:"files"`
	}{Meta: meta, Files: entries}
	return json.MarshalIndent(payload, "", "  ")
}

func writeManifest(path string, meta manifestMeta, entries []manifestEntry) error {
	data, err := marshalManifestJSON(meta, entries)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}
