package pdfdoc

import "fmt"

// MemFragment is a positioned run of text on a MemPage.
type MemFragment struct {
	Rect Rect
	Text string
}

// MemPage is an in-memory Page implementation used by tests and by any
// caller that wants to drive the pipeline without a real document.
type MemPage struct {
	Num        int
	PageBounds Rect
	Fragments  []MemFragment
	ImageRefs  []ImageRef

	// ImagesErr, when set, is returned by Images to exercise per-page
	// failure handling.
	ImagesErr error
}

func (p *MemPage) Number() int {
	return p.Num
}

func (p *MemPage) Bounds() Rect {
	if p.PageBounds.IsEmpty() {
		return Rect{X1: defaultPageWidth, Y1: defaultPageHeight}
	}
	return p.PageBounds
}

func (p *MemPage) Images() ([]ImageRef, error) {
	if p.ImagesErr != nil {
		return nil, p.ImagesErr
	}
	return p.ImageRefs, nil
}

func (p *MemPage) Text(clip Rect) string {
	var inside []textFrag
	for _, f := range p.Fragments {
		if f.Rect.Intersects(clip) {
			inside = append(inside, textFrag{rect: f.Rect, text: f.Text})
		}
	}
	return assemble(inside)
}

func (p *MemPage) FullText() string {
	return p.Text(p.Bounds())
}

// MemDocument is an in-memory Document built from MemPages.
type MemDocument struct {
	Pages  []*MemPage
	closed bool
}

func (d *MemDocument) PageCount() int {
	return len(d.Pages)
}

func (d *MemDocument) Page(n int) (Page, error) {
	if n < 1 || n > len(d.Pages) {
		return nil, fmt.Errorf("page %d out of range [1, %d]", n, len(d.Pages))
	}
	return d.Pages[n-1], nil
}

func (d *MemDocument) Close() error {
	d.closed = true
	return nil
}
