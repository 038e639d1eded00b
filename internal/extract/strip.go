package extract

import (
	"bytes"
	"io"
	"regexp"
	"strings"
)

// Stripper removes markup tags from decoded body text.
type Stripper interface {
	Strip(s string) string
}

var tagRe = regexp.MustCompile(`<[^>]+>`)

// RegexStripper deletes every `<[^>]+>` match.
type RegexStripper struct{}

func (RegexStripper) Strip(s string) string { return tagRe.ReplaceAllString(s, "") }

// StreamStripper runs text through a TagWriter. Output matches RegexStripper.
type StreamStripper struct{}

func (StreamStripper) Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	tw := NewTagWriter(&b)
	_, _ = io.WriteString(tw, s)
	_ = tw.Close()
	return b.String()
}

// StripperByName maps a config value to a Stripper. ok is false for unknown names.
func StripperByName(name string) (s Stripper, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "regex":
		return RegexStripper{}, true
	case "stream":
		return StreamStripper{}, true
	}
	return nil, false
}

// TagWriter is an io.WriteCloser that forwards everything outside of tags to
// the underlying writer. A tag is '<', one or more bytes other than '>', then
// '>'. Bytes after an unmatched '<' are held until the tag closes or Close is
// called; on Close they are written through unchanged. A bare "<>" is kept.
type TagWriter struct {
	w       io.Writer
	inTag   bool
	pending bytes.Buffer // "<" plus tag body while inTag
	err     error
}

// NewTagWriter returns a TagWriter writing to w.
func NewTagWriter(w io.Writer) *TagWriter { return &TagWriter{w: w} }

func (t *TagWriter) Write(p []byte) (int, error) {
	if t.err != nil {
		return 0, t.err
	}
	n := len(p)
	for len(p) > 0 {
		if !t.inTag {
			i := bytes.IndexByte(p, '<')
			if i < 0 {
				t.emit(p)
				break
			}
			t.emit(p[:i])
			t.inTag = true
			t.pending.WriteByte('<')
			p = p[i+1:]
			continue
		}
		i := bytes.IndexByte(p, '>')
		if i < 0 {
			t.pending.Write(p)
			break
		}
		if t.pending.Len() == 1 && i == 0 {
			// "<>" is not a tag. The '<' goes out and scanning restarts at '>'.
			t.emit([]byte{'<'})
			t.pending.Reset()
			t.inTag = false
			continue
		}
		t.pending.Reset()
		t.inTag = false
		p = p[i+1:]
	}
	if t.err != nil {
		return 0, t.err
	}
	return n, nil
}

// Close flushes an unterminated tag verbatim.
func (t *TagWriter) Close() error {
	if t.err != nil {
		return t.err
	}
	if t.inTag {
		t.inTag = false
		t.flushPending()
	}
	return t.err
}

// No '>' follows the pending run, so none of its '<' can open a tag.
func (t *TagWriter) flushPending() {
	t.emit(t.pending.Bytes())
	t.pending.Reset()
}

func (t *TagWriter) emit(p []byte) {
	if t.err != nil || len(p) == 0 {
		return
	}
	_, t.err = t.w.Write(p)
}
