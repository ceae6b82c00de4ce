// Package extract drives the per-page, per-image extraction pass over a
// document and renders the run report. One Pipeline owns one document and
// one output directory for the duration of a run; runs are sequential and
// single-threaded.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/eduextract/bancoimg/internal/classify"
	"github.com/eduextract/bancoimg/internal/filename"
	"github.com/eduextract/bancoimg/internal/locate"
	"github.com/eduextract/bancoimg/internal/logger"
	"github.com/eduextract/bancoimg/internal/pdfdoc"
	"github.com/eduextract/bancoimg/internal/sanitize"
	"github.com/eduextract/bancoimg/models"
)

const (
	// MinImageSize filters out decorative images: anything narrower or
	// shorter than this many pixels is skipped without consuming a
	// sequence number.
	MinImageSize = 50

	// contextSnippetLen bounds the context excerpt kept on each record.
	contextSnippetLen = 200
)

// defaultPlacement is used when a backend reports no placement rectangle
// for an image.
var defaultPlacement = pdfdoc.Rect{X0: 0, Y0: 0, X1: 100, Y1: 100}

// OpenFunc opens a document for extraction. It exists so tests can swap
// in an in-memory document.
type OpenFunc func(path string) (pdfdoc.Document, error)

// Options configures one extraction run.
type Options struct {
	// SourcePath is the document to extract from. Must exist.
	SourcePath string
	// OutputDir receives the image files and the report. Created if absent.
	OutputDir string
	// BankLabel is the free-text question-bank name; it is sanitized into
	// the filename token.
	BankLabel string
	// Margin overrides the context search margin when positive.
	Margin float64
	// Log receives progress and per-image skip/error events. Defaults to
	// a no-op logger.
	Log logger.Logger
	// Open overrides the document backend. Defaults to pdfdoc.Open.
	Open OpenFunc
}

// Pipeline extracts the images of one document into descriptive files.
type Pipeline struct {
	sourcePath string
	outputDir  string
	bankLabel  string
	docPrefix  string

	locator locate.Locator
	log     logger.Logger
	open    OpenFunc

	// seq numbers only the images actually written; it is pipeline-scoped
	// so concurrent pipelines on different documents stay isolated.
	seq int
}

// NewPipeline validates the source path, prepares the output directory
// and resolves the filename tokens. A missing source is the fatal,
// non-crashing error path: the constructor fails and nothing is written.
func NewPipeline(opts Options) (*Pipeline, error) {
	if _, err := os.Stat(opts.SourcePath); err != nil {
		return nil, fmt.Errorf("source document not found: %w", err)
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = "extracted_images"
	}
	absDir, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output directory: %w", err)
	}
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	log := opts.Log
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	open := opts.Open
	if open == nil {
		open = pdfdoc.Open
	}

	return &Pipeline{
		sourcePath: opts.SourcePath,
		outputDir:  absDir,
		bankLabel:  sanitize.BankLabel(opts.BankLabel),
		docPrefix:  sanitize.DocPrefix(opts.SourcePath),
		locator:    locate.Locator{Margin: opts.Margin},
		log:        log,
		open:       open,
		seq:        1,
	}, nil
}

// BankLabel returns the sanitized question-bank token used in filenames.
func (p *Pipeline) BankLabel() string { return p.bankLabel }

// DocPrefix returns the sanitized document token used in filenames.
func (p *Pipeline) DocPrefix() string { return p.docPrefix }

// OutputDir returns the resolved output directory.
func (p *Pipeline) OutputDir() string { return p.outputDir }

// Run performs the full single-pass extraction and writes the report.
// An unopenable document is terminal: no records, no report. Every other
// failure is contained: a bad page or image is logged and skipped so one
// corrupt reference cannot lose the rest of the document's images.
func (p *Pipeline) Run() ([]models.ImageRecord, error) {
	doc, err := p.open(p.sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer doc.Close()

	p.log.Info("opened %s: %d pages", p.sourcePath, doc.PageCount())

	var records []models.ImageRecord
	for pageNum := 1; pageNum <= doc.PageCount(); pageNum++ {
		page, err := doc.Page(pageNum)
		if err != nil {
			p.log.Error("failed to load page %d: %v", pageNum, err)
			continue
		}
		records = append(records, p.extractPage(page)...)
	}

	p.log.Info("extraction finished: %d images written to %s", len(records), p.outputDir)

	info := models.RunInfo{
		SourcePath:  p.sourcePath,
		BankLabel:   p.bankLabel,
		DocPrefix:   p.docPrefix,
		OutputDir:   p.outputDir,
		ProcessedAt: time.Now(),
	}
	if err := WriteReportFile(records, info); err != nil {
		// The images are already on disk; a failed report should not
		// invalidate the run.
		p.log.Error("failed to write report: %v", err)
	}

	return records, nil
}

// extractPage processes every image reference on one page. Per-image
// errors are logged with their page and index and do not stop the page.
func (p *Pipeline) extractPage(page pdfdoc.Page) []models.ImageRecord {
	images, err := page.Images()
	if err != nil {
		p.log.Error("failed to list images on page %d: %v", page.Number(), err)
		return nil
	}

	var records []models.ImageRecord
	for i, img := range images {
		record, err := p.extractImage(page, img)
		if err != nil {
			p.log.Error("failed to extract image %d on page %d: %v", i+1, page.Number(), err)
			continue
		}
		if record == nil {
			p.log.Info("skipped image %d on page %d (too small: %dx%d)",
				i+1, page.Number(), img.Width, img.Height)
			continue
		}
		p.log.Info("extracted image %d: %s", record.Sequence, record.Filename)
		records = append(records, *record)
	}
	return records
}

// extractImage writes one image to disk and builds its record. A nil
// record with nil error means the image was filtered out by the minimum
// size threshold.
func (p *Pipeline) extractImage(page pdfdoc.Page, img pdfdoc.ImageRef) (*models.ImageRecord, error) {
	if img.Width < MinImageSize || img.Height < MinImageSize {
		return nil, nil
	}

	placement := defaultPlacement
	if len(img.Rects) > 0 {
		placement = img.Rects[0]
	}

	context, fullPage := p.locator.Surrounding(page, placement)
	questionTag := classify.IdentifyQuestion(context + "\n" + fullPage)
	category := classify.ClassifyContent(context + fullPage)

	name := filename.Synthesize(p.seq, p.bankLabel, p.docPrefix, questionTag,
		category, page.Number(), img.Format)
	path := filepath.Join(p.outputDir, name)
	if err := os.WriteFile(path, img.Data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", name, err)
	}

	record := &models.ImageRecord{
		Sequence:    p.seq,
		Page:        page.Number(),
		Filename:    name,
		BankLabel:   p.bankLabel,
		DocPrefix:   p.docPrefix,
		QuestionTag: questionTag,
		Category:    category,
		Position:    models.Point{X: placement.X0, Y: placement.Y0},
		Width:       img.Width,
		Height:      img.Height,
		Format:      img.Format,
		Context:     snippet(context, contextSnippetLen),
	}
	p.seq++
	return record, nil
}

// snippet bounds a context excerpt, marking truncation.
func snippet(s string, limit int) string {
	r := []rune(s)
	if len(r) > limit {
		return string(r[:limit]) + "..."
	}
	return s
}
