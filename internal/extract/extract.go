package extract

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Defaults describing where the body text lives inside a .docx archive.
const (
	DefaultEntry           = "word/document.xml"
	DefaultParagraphMarker = "</w:p>"
	DefaultEncoding        = "utf-8"
)

// Options controls which entry is read and how it is turned into text.
// The zero value behaves like DefaultOptions.
type Options struct {
	Entry           string
	ParagraphMarker string
	Encoding        string
	Stripper        Stripper
}

// DefaultOptions returns the options that read word/document.xml as UTF-8
// and strip tags with the regex stripper.
func DefaultOptions() Options {
	return Options{
		Entry:           DefaultEntry,
		ParagraphMarker: DefaultParagraphMarker,
		Encoding:        DefaultEncoding,
		Stripper:        RegexStripper{},
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Entry == "" {
		o.Entry = d.Entry
	}
	if o.ParagraphMarker == "" {
		o.ParagraphMarker = d.ParagraphMarker
	}
	if o.Encoding == "" {
		o.Encoding = d.Encoding
	}
	if o.Stripper == nil {
		o.Stripper = d.Stripper
	}
	return o
}

// NotFoundError reports that nothing exists at the input path.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string { return "file not found: " + e.Path }

// ReadError wraps any failure to open the archive, locate the body entry or
// decode it.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string { return fmt.Sprintf("reading %s: %v", e.Path, e.Err) }
func (e *ReadError) Unwrap() error { return e.Err }

// ErrEntryNotFound is wrapped by ReadError when the archive lacks the body entry.
var ErrEntryNotFound = errors.New("entry not found")

// Result is the outcome of extracting one document. Err is nil on success.
type Result struct {
	Path string
	Text string
	Err  error
}

// OK reports whether extraction succeeded.
func (r Result) OK() bool { return r.Err == nil }

// String renders the result the way it is written to disk: the extracted
// text, or a one-line message starting with "Error".
func (r Result) String() string {
	if r.Err == nil {
		return r.Text
	}
	var nf *NotFoundError
	if errors.As(r.Err, &nf) {
		return "Error: File not found: " + r.Path
	}
	var re *ReadError
	if errors.As(r.Err, &re) {
		return fmt.Sprintf("Error reading %s: %v", r.Path, re.Err)
	}
	return fmt.Sprintf("Error reading %s: %v", r.Path, r.Err)
}

// Text extracts a document with default options and returns the rendered
// string. It never fails; failures come back as "Error..." text.
func Text(path string) string {
	return File(path, DefaultOptions()).String()
}

// File extracts the visible text of the document at path.
func File(path string, opts Options) Result {
	opts = opts.withDefaults()
	res := Result{Path: path}
	if _, err := os.Stat(path); err != nil {
		res.Err = &NotFoundError{Path: path}
		return res
	}
	raw, err := readEntry(path, opts.Entry)
	if err != nil {
		res.Err = &ReadError{Path: path, Err: err}
		return res
	}
	body, err := Decode(raw, opts.Encoding)
	if err != nil {
		res.Err = &ReadError{Path: path, Err: err}
		return res
	}
	res.Text = Transform(body, opts.ParagraphMarker, opts.Stripper)
	return res
}

// Transform turns every paragraph marker into a newline and then strips all
// remaining tags. No other whitespace handling is done.
func Transform(body, marker string, s Stripper) string {
	if s == nil {
		s = RegexStripper{}
	}
	if marker != "" {
		body = strings.ReplaceAll(body, marker, "\n")
	}
	return s.Strip(body)
}

func readEntry(path, name string) ([]byte, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	// A duplicated name resolves to the last entry in the central directory.
	var entry *zip.File
	for _, f := range zr.File {
		if f.Name == name {
			entry = f
		}
	}
	if entry == nil {
		return nil, fmt.Errorf("there is no item named %q in the archive: %w", name, ErrEntryNotFound)
	}
	rc, err := entry.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return b, nil
}
