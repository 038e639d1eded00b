package app

// outputPath appends suffix to the input path. The input extension is kept,
// so report.docx becomes report.docx.txt.
func outputPath(input, suffix string) string {
	return input + suffix
}

func pdfPath(input string) string {
	return input + ".pdf"
}
