package pdfdoc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Default page size used when a page carries no usable MediaBox (US Letter
// in PDF units).
const (
	defaultPageWidth  = 612
	defaultPageHeight = 792
)

// fileDocument is the production Document implementation. pdfcpu handles
// validation, page count and raw embedded-image extraction; the positioned
// text layer comes from a separate reader. Image placement rectangles are
// not recoverable through either library, so ImageRef.Rects stays empty
// and callers use their default-rectangle fallback.
type fileDocument struct {
	path         string
	pageCount    int
	imagesByPage map[int][]ImageRef

	textFile   *os.File
	textReader *lpdf.Reader
}

// Open reads and validates the document at path and prepares per-page
// image references. A validation failure is the single fatal error path;
// an unreadable text layer only degrades context lookup to empty text.
func Open(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	conf := model.NewDefaultConfiguration()
	pdfContext, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("failed to open document %s: %w", path, err)
	}

	doc := &fileDocument{
		path:         path,
		pageCount:    pdfContext.PageCount,
		imagesByPage: make(map[int][]ImageRef),
	}

	if err := doc.loadImages(data, conf); err != nil {
		return nil, err
	}

	// The text layer is best effort: documents that defeat the text
	// reader still yield their images, with empty context.
	doc.textFile, doc.textReader = openTextLayer(path)

	return doc, nil
}

// openTextLayer opens the positioned-text reader, absorbing both errors
// and the reader's panics on malformed documents.
func openTextLayer(path string) (f *os.File, r *lpdf.Reader) {
	defer func() {
		if recover() != nil {
			if f != nil {
				f.Close()
			}
			f, r = nil, nil
		}
	}()
	f, r, err := lpdf.Open(path)
	if err != nil {
		return nil, nil
	}
	return f, r
}

// loadImages pulls every embedded image out of the document and buckets
// them by page, sorted by object number so sequence numbering is stable
// across runs.
func (d *fileDocument) loadImages(data []byte, conf *model.Configuration) error {
	pageImages, err := api.ExtractImagesRaw(bytes.NewReader(data), nil, conf)
	if err != nil {
		return fmt.Errorf("failed to extract images from %s: %w", d.path, err)
	}

	type numbered struct {
		objNr int
		ref   ImageRef
	}
	byPage := make(map[int][]numbered)

	for _, imagesByObj := range pageImages {
		for objNr, img := range imagesByObj {
			if img.Thumb {
				continue
			}
			raw, err := io.ReadAll(img)
			if err != nil {
				// One unreadable image stream must not lose the rest of
				// the document's images.
				continue
			}
			w, h, format := Sniff(raw, img.FileType)
			byPage[img.PageNr] = append(byPage[img.PageNr], numbered{
				objNr: objNr,
				ref:   ImageRef{Data: raw, Width: w, Height: h, Format: format},
			})
		}
	}

	for pageNr, imgs := range byPage {
		sort.Slice(imgs, func(i, j int) bool { return imgs[i].objNr < imgs[j].objNr })
		refs := make([]ImageRef, 0, len(imgs))
		for _, n := range imgs {
			refs = append(refs, n.ref)
		}
		d.imagesByPage[pageNr] = refs
	}
	return nil
}

func (d *fileDocument) PageCount() int {
	return d.pageCount
}

func (d *fileDocument) Page(n int) (Page, error) {
	if n < 1 || n > d.pageCount {
		return nil, fmt.Errorf("page %d out of range [1, %d]", n, d.pageCount)
	}
	page := &filePage{
		num:    n,
		bounds: Rect{X1: defaultPageWidth, Y1: defaultPageHeight},
		images: d.imagesByPage[n],
	}
	page.loadText(d.textReader)
	return page, nil
}

func (d *fileDocument) Close() error {
	if d.textFile != nil {
		return d.textFile.Close()
	}
	return nil
}

// textFrag is one positioned run of text, with its box already converted
// to the top-left-origin coordinate space.
type textFrag struct {
	rect Rect
	text string
}

type filePage struct {
	num    int
	bounds Rect
	images []ImageRef
	frags  []textFrag
}

// loadText converts the page's positioned text runs from the reader's
// bottom-up PDF coordinates into top-down fragments. The text reader
// panics on malformed content streams; a page that defeats it simply has
// no text layer.
func (p *filePage) loadText(r *lpdf.Reader) {
	if r == nil {
		return
	}
	defer func() {
		if recover() != nil {
			p.frags = nil
		}
	}()
	page := r.Page(p.num)
	if page.V.IsNull() {
		return
	}

	if mb := page.V.Key("MediaBox"); mb.Len() == 4 {
		w := mb.Index(2).Float64() - mb.Index(0).Float64()
		h := mb.Index(3).Float64() - mb.Index(1).Float64()
		if w > 0 && h > 0 {
			p.bounds = Rect{X1: w, Y1: h}
		}
	}
	pageHeight := p.bounds.Y1

	for _, t := range page.Content().Text {
		if t.S == "" {
			continue
		}
		size := t.FontSize
		if size <= 0 {
			size = 10
		}
		p.frags = append(p.frags, textFrag{
			rect: NewRect(t.X, pageHeight-t.Y-size, t.X+t.W, pageHeight-t.Y),
			text: t.S,
		})
	}
}

func (p *filePage) Number() int {
	return p.num
}

func (p *filePage) Bounds() Rect {
	return p.bounds
}

func (p *filePage) Images() ([]ImageRef, error) {
	return p.images, nil
}

func (p *filePage) Text(clip Rect) string {
	var inside []textFrag
	for _, f := range p.frags {
		if f.rect.Intersects(clip) {
			inside = append(inside, f)
		}
	}
	return assemble(inside)
}

func (p *filePage) FullText() string {
	return assemble(p.frags)
}

// assemble joins positioned fragments into lines in reading order:
// fragments whose vertical positions are close share a line, lines run
// top to bottom, fragments within a line left to right.
func assemble(frags []textFrag) string {
	if len(frags) == 0 {
		return ""
	}

	sorted := make([]textFrag, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].rect.Y0 != sorted[j].rect.Y0 {
			return sorted[i].rect.Y0 < sorted[j].rect.Y0
		}
		return sorted[i].rect.X0 < sorted[j].rect.X0
	})

	const lineTolerance = 2.0

	var b strings.Builder
	lineStart := sorted[0].rect.Y0
	prevEnd := sorted[0].rect.X0
	for i, f := range sorted {
		if i > 0 {
			if f.rect.Y0-lineStart > lineTolerance {
				b.WriteString("\n")
				lineStart = f.rect.Y0
			} else if f.rect.X0-prevEnd > 1.0 && !strings.HasPrefix(f.text, " ") {
				// Visible horizontal gap between runs on the same line.
				b.WriteString(" ")
			}
		}
		b.WriteString(f.text)
		prevEnd = f.rect.X1
	}
	return b.String()
}
