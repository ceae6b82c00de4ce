package models

import "time"

// ContentCategory classifies what an extracted image likely depicts,
// based on the text found around it.
type ContentCategory string

const (
	// CategoryScientific marks images surrounded by scientific vocabulary
	// (formulas, charts, lab terminology).
	CategoryScientific ContentCategory = "Cientifica"
	// CategoryGeneral marks everything else (decorative or unclassified).
	CategoryGeneral ContentCategory = "General"
)

// Point is a position on a page, in page units with the origin at the
// top-left corner.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ImageRecord describes one image written to the output directory.
// Records are created by the extraction pipeline and are never mutated
// afterwards; the report generator only reads them.
type ImageRecord struct {
	// Sequence is the 1-based position of the image among all images that
	// survived filtering, across the whole document.
	Sequence int `json:"sequence"`
	// Page is the 1-based page number the image was found on.
	Page int `json:"page"`
	// Filename is the name of the written file, without directory.
	Filename string `json:"filename"`
	// BankLabel is the sanitized question-bank label used in the filename.
	BankLabel string `json:"bank_label"`
	// DocPrefix is the sanitized source-document prefix used in the filename.
	DocPrefix string `json:"doc_prefix"`
	// QuestionTag is "Pregunta_<n>" or the sentinel "Pregunta_Desconocida".
	QuestionTag string `json:"question_tag"`
	// Category is the keyword-based content classification.
	Category ContentCategory `json:"category"`
	// Position is the top-left corner of the image placement on the page.
	Position Point `json:"position"`
	// Width and Height are the pixel dimensions of the embedded image.
	Width  int `json:"width"`
	Height int `json:"height"`
	// Format is the lowercase image format used as the file extension.
	Format string `json:"format"`
	// Context is a bounded excerpt of the text found near the image,
	// kept for human review of the question assignment.
	Context string `json:"context,omitempty"`
}

// ParsedFilename holds the metadata recognized in an existing image
// filename. Fields are empty when the corresponding pattern is absent;
// absence is not an error.
type ParsedFilename struct {
	Question string `json:"question,omitempty"`
	Page     string `json:"page,omitempty"`
	Type     string `json:"type,omitempty"`
}

// RunInfo carries the metadata of one extraction run, for the report header.
type RunInfo struct {
	SourcePath  string    `json:"source_path"`
	BankLabel   string    `json:"bank_label"`
	DocPrefix   string    `json:"doc_prefix"`
	OutputDir   string    `json:"output_dir"`
	ProcessedAt time.Time `json:"processed_at"`
}
