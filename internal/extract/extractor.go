package extract

// Extractor turns one document path into a Result. Implementations must not
// panic or write to disk; all failures are carried in Result.Err.
type Extractor interface {
	Extract(path string) Result
}

// ArchiveExtractor reads the body entry of a zip-based document using Options.
type ArchiveExtractor struct {
	Options Options
}

func (e ArchiveExtractor) Extract(path string) Result {
	return File(path, e.Options)
}
