// Package locate finds the text spatially related to an image on a page.
// Question headers and titles sit above their images far more often than
// below, so the search region stretches three margins upward but only one
// margin sideways and down, and a second full-width band above the image
// is scanned independently of the horizontal margin.
package locate

import (
	"github.com/eduextract/bancoimg/internal/pdfdoc"
)

// DefaultMargin is the search margin around an image, in page units.
const DefaultMargin = 100.0

// Locator computes the surrounding-text region for an image rectangle.
type Locator struct {
	// Margin is the base search distance; zero means DefaultMargin.
	Margin float64
}

func (l Locator) margin() float64 {
	if l.Margin > 0 {
		return l.Margin
	}
	return DefaultMargin
}

// Surrounding returns the text found near the image and the page's full
// text for fallback use. Both strings are empty when the page has no text
// layer; callers must treat that as the absence of contextual evidence,
// not as an error.
func (l Locator) Surrounding(page pdfdoc.Page, image pdfdoc.Rect) (context string, fullPage string) {
	margin := l.margin()
	bounds := page.Bounds()

	expanded := pdfdoc.Rect{
		X0: image.X0 - margin,
		Y0: image.Y0 - margin*3,
		X1: image.X1 + margin,
		Y1: image.Y1 + margin,
	}.Intersect(bounds)

	// Full page width, from two margins above the image down to its top
	// edge, regardless of the horizontal margin.
	above := pdfdoc.Rect{
		X0: bounds.X0,
		Y0: image.Y0 - margin*2,
		X1: bounds.X1,
		Y1: image.Y0,
	}.Intersect(bounds)

	return page.Text(expanded) + "\n" + page.Text(above), page.FullText()
}
