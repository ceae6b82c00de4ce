package extract

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/eduextract/bancoimg/internal/pdfdoc"
	"github.com/eduextract/bancoimg/models"
)

// imageBytes builds distinguishable fake image payloads. The pipeline
// never decodes them; dimensions come from the ImageRef.
func imageBytes(tag string) []byte {
	return []byte("img:" + tag)
}

// testDocument builds a 3-page document carrying 5 images, one of them
// under the size threshold.
func testDocument() *pdfdoc.MemDocument {
	return &pdfdoc.MemDocument{
		Pages: []*pdfdoc.MemPage{
			{
				Num:        1,
				PageBounds: pdfdoc.Rect{X1: 600, Y1: 800},
				Fragments: []pdfdoc.MemFragment{
					{Rect: pdfdoc.NewRect(100, 150, 260, 162), Text: "1.21 Pregunta 21"},
					{Rect: pdfdoc.NewRect(100, 200, 280, 212), Text: "la ecuación química"},
				},
				ImageRefs: []pdfdoc.ImageRef{
					{Data: imageBytes("icon"), Width: 10, Height: 10, Format: "png"},
					{
						Data: imageBytes("diagrama"), Width: 200, Height: 100, Format: "png",
						Rects: []pdfdoc.Rect{{X0: 100, Y0: 300, X1: 300, Y1: 400}},
					},
				},
			},
			{
				Num:        2,
				PageBounds: pdfdoc.Rect{X1: 600, Y1: 800},
				ImageRefs: []pdfdoc.ImageRef{
					{Data: imageBytes("foto"), Width: 80, Height: 80, Format: "jpg"},
				},
			},
			{
				Num:        3,
				PageBounds: pdfdoc.Rect{X1: 600, Y1: 800},
				Fragments: []pdfdoc.MemFragment{
					{Rect: pdfdoc.NewRect(50, 100, 170, 112), Text: "Pregunta 7"},
				},
				ImageRefs: []pdfdoc.ImageRef{
					{Data: imageBytes("mapa-a"), Width: 120, Height: 90, Format: "png"},
					{Data: imageBytes("mapa-b"), Width: 64, Height: 64, Format: "png"},
				},
			},
		},
	}
}

// newTestPipeline wires a pipeline against an in-memory document. The
// source file only has to exist for the constructor's stat check.
func newTestPipeline(t *testing.T, outDir string, open OpenFunc) *Pipeline {
	t.Helper()

	source := filepath.Join(t.TempDir(), "ciencias.pdf")
	if err := os.WriteFile(source, []byte("%PDF-1.4 stub"), 0644); err != nil {
		t.Fatalf("failed to write stub source: %v", err)
	}

	p, err := NewPipeline(Options{
		SourcePath: source,
		OutputDir:  outDir,
		BankLabel:  "banco ciencias",
		Open:       open,
	})
	if err != nil {
		t.Fatalf("NewPipeline() error: %v", err)
	}
	return p
}

func openTestDocument(string) (pdfdoc.Document, error) {
	return testDocument(), nil
}

func TestPipelineRun(t *testing.T) {
	outDir := t.TempDir()
	p := newTestPipeline(t, outDir, openTestDocument)

	records, err := p.Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// 5 images minus 1 under the threshold.
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4", len(records))
	}

	// Sequence numbers are consecutive from 1; the filtered image
	// consumed none.
	for i, r := range records {
		if r.Sequence != i+1 {
			t.Errorf("record %d has sequence %d, want %d", i, r.Sequence, i+1)
		}
	}

	expected := []string{
		"001_BancoCiencias_Ciencias_Pregunta_21_Cientifica_Pag1.png",
		"002_BancoCiencias_Ciencias_Pregunta_Desconocida_General_Pag2.jpg",
		"003_BancoCiencias_Ciencias_Pregunta_7_General_Pag3.png",
		"004_BancoCiencias_Ciencias_Pregunta_7_General_Pag3.png",
	}
	for i, want := range expected {
		if records[i].Filename != want {
			t.Errorf("record %d filename = %q, want %q", i, records[i].Filename, want)
		}
		if _, err := os.Stat(filepath.Join(outDir, want)); err != nil {
			t.Errorf("expected output file %s: %v", want, err)
		}
	}

	// The report is written alongside the images.
	if _, err := os.Stat(filepath.Join(outDir, ReportFileName)); err != nil {
		t.Errorf("expected report file: %v", err)
	}

	// The placed image keeps its placement, the rest fall back to the
	// default rectangle.
	if records[0].Position != (models.Point{X: 100, Y: 300}) {
		t.Errorf("record 0 position = %+v, want placement corner", records[0].Position)
	}
	if records[1].Position != (models.Point{X: 0, Y: 0}) {
		t.Errorf("record 1 position = %+v, want default rect corner", records[1].Position)
	}

	// Context snippet from page 1 should carry the question header.
	if records[0].Context == "" {
		t.Errorf("record 0 context should not be empty")
	}
}

func TestPipelineRerunIsByteIdentical(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	recordsA, err := newTestPipeline(t, dirA, openTestDocument).Run()
	if err != nil {
		t.Fatalf("first Run() error: %v", err)
	}
	recordsB, err := newTestPipeline(t, dirB, openTestDocument).Run()
	if err != nil {
		t.Fatalf("second Run() error: %v", err)
	}

	if len(recordsA) != len(recordsB) {
		t.Fatalf("runs produced %d vs %d records", len(recordsA), len(recordsB))
	}

	names := func(dir string) []string {
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir: %v", err)
		}
		var out []string
		for _, e := range entries {
			if e.Name() == ReportFileName {
				continue // report carries a timestamp
			}
			out = append(out, e.Name())
		}
		sort.Strings(out)
		return out
	}

	namesA, namesB := names(dirA), names(dirB)
	if len(namesA) != len(namesB) {
		t.Fatalf("runs produced %d vs %d files", len(namesA), len(namesB))
	}
	for i := range namesA {
		if namesA[i] != namesB[i] {
			t.Fatalf("file name mismatch: %q vs %q", namesA[i], namesB[i])
		}
		a, err := os.ReadFile(filepath.Join(dirA, namesA[i]))
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		b, err := os.ReadFile(filepath.Join(dirB, namesB[i]))
		if err != nil {
			t.Fatalf("ReadFile: %v", err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("file %s differs between runs", namesA[i])
		}
	}
}

func TestPipelineOpenFailure(t *testing.T) {
	outDir := t.TempDir()
	p := newTestPipeline(t, outDir, func(string) (pdfdoc.Document, error) {
		return nil, errors.New("damaged xref table")
	})

	records, err := p.Run()
	if err == nil {
		t.Fatalf("Run() should fail when the document cannot be opened")
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want none", len(records))
	}
	if _, statErr := os.Stat(filepath.Join(outDir, ReportFileName)); statErr == nil {
		t.Errorf("no report should be written for an unopenable document")
	}
}

func TestPipelineSurvivesBrokenPage(t *testing.T) {
	doc := testDocument()
	doc.Pages[1].ImagesErr = fmt.Errorf("corrupt image reference")

	outDir := t.TempDir()
	p := newTestPipeline(t, outDir, func(string) (pdfdoc.Document, error) {
		return doc, nil
	})

	records, err := p.Run()
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	// Page 2's single image is lost, the other pages still extract, and
	// the sequence stays gapless.
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	for i, r := range records {
		if r.Sequence != i+1 {
			t.Errorf("record %d has sequence %d, want %d", i, r.Sequence, i+1)
		}
	}
}

func TestNewPipelineMissingSource(t *testing.T) {
	_, err := NewPipeline(Options{
		SourcePath: filepath.Join(t.TempDir(), "no-such.pdf"),
		OutputDir:  t.TempDir(),
	})
	if err == nil {
		t.Fatalf("NewPipeline() should fail for a missing source document")
	}
}
