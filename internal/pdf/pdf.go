// Package pdf renders pitch decks into paginated PDF documents.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/launchforge/startup-builder/internal/plan"
)

// Page geometry in points (US Letter).
const (
	pageWidth    = 612.0
	pageHeight   = 792.0
	marginX      = 50.0
	titleY       = 80.0  // below top edge
	bodyTop      = 120.0 // below top edge
	lineHeight   = 20.0
	bottomMargin = 80.0
)

const (
	titleFontSize = 20.0
	bodyFontSize  = 12.0
)

// Rendering is a pure function of the slide list, so the embedded document
// dates are pinned to a constant.
var fixedDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Deck is a rendered pitch deck held entirely in memory.
type Deck struct {
	Data  []byte
	Pages int
}

// Renderer lays out slides across pages. Each slide starts a new page; when
// content overflows the bottom margin the slide title is re-drawn as a header
// on a continuation page.
type Renderer struct{}

// NewRenderer creates a new deck renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render converts an ordered slide list into a PDF document. Every slide must
// have both title and content populated; a missing field aborts the whole
// render rather than producing a partial document.
func (r *Renderer) Render(slides []plan.Slide) (*Deck, error) {
	if len(slides) == 0 {
		return nil, fmt.Errorf("no slides to render")
	}

	for i, slide := range slides {
		if slide.Title == "" || slide.Content == "" {
			return nil, fmt.Errorf("slide %d: title and content are required", i)
		}
	}

	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	doc.SetCreationDate(fixedDate)
	doc.SetModificationDate(fixedDate)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCompression(false)

	for _, slide := range slides {
		r.drawSlide(doc, slide)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}

	return &Deck{Data: buf.Bytes(), Pages: doc.PageCount()}, nil
}

func (r *Renderer) drawSlide(doc *fpdf.Fpdf, slide plan.Slide) {
	r.startPage(doc, slide.Title)
	y := bodyTop

	// Content is split strictly on explicit newlines; long lines are drawn
	// verbatim, never word-wrapped.
	for _, line := range strings.Split(slide.Content, "\n") {
		doc.Text(marginX, y, line)
		y += lineHeight
		if y > pageHeight-bottomMargin {
			r.startPage(doc, slide.Title)
			y = bodyTop
		}
	}
}

// startPage opens a fresh page with the slide title drawn as a header and the
// font reset for body text.
func (r *Renderer) startPage(doc *fpdf.Fpdf, title string) {
	doc.AddPage()
	doc.SetFont("Helvetica", "B", titleFontSize)
	doc.Text(marginX, titleY, title)
	doc.SetFont("Helvetica", "", bodyFontSize)
}
