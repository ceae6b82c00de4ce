// Package pdfdoc abstracts the PDF library behind small Document/Page
// interfaces so the extraction pipeline only depends on what it actually
// consumes: page count, per-page embedded images, and text clipped to a
// rectangle. The real backend combines pdfcpu (validation and raw image
// extraction) with a positioned text layer; an in-memory implementation
// backs the tests.
package pdfdoc

// ImageRef is one embedded image found on a page: its raw bytes as stored
// in the document, pixel dimensions, lowercase format tag, and zero or
// more placement rectangles on the page. Backends that cannot recover
// placement leave Rects empty and callers fall back to a default.
type ImageRef struct {
	Data   []byte
	Width  int
	Height int
	Format string
	Rects  []Rect
}

// Page is one page of an open document.
type Page interface {
	// Number is the 1-based page number.
	Number() int
	// Bounds is the page rectangle, top-left origin.
	Bounds() Rect
	// Images returns the embedded images referenced by this page.
	Images() ([]ImageRef, error)
	// Text returns the page text clipped to the given rectangle, in
	// reading order. An empty string means no text layer intersects it.
	Text(clip Rect) string
	// FullText returns the whole page's text in reading order.
	FullText() string
}

// Document is an open PDF document. Implementations are not safe for
// concurrent use; one pipeline run owns the document for its lifetime.
type Document interface {
	PageCount() int
	// Page returns the page with 1-based number n.
	Page(n int) (Page, error)
	Close() error
}
