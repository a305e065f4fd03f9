// Package document turns a workout plan into printable exports: a paginated
// A4 PDF and a spreadsheet.
package document

import (
	"alcyxob/workout-planner/internal/domain"
	"fmt"
	"strings"
	"time"
)

// Page geometry in millimetres (A4 portrait).
const (
	PageWidth  = 210.0
	PageHeight = 297.0
	Margin     = 15.0

	footerBaseline = PageHeight - 10
	lineHeight     = 4.0 // wrapped text
	detailHeight   = 5.0
)

// File names under which exports are delivered.
const (
	PDFFileName      = "plano-de-treino.pdf"
	WorkbookFileName = "plano-de-treino.xlsx"
)

// Font styles understood by the renderer.
const (
	StyleRegular = ""
	StyleBold    = "B"
	StyleItalic  = "I"
)

// Font is a style and a size in points; the family is fixed by the renderer.
type Font struct {
	Style string
	Size  float64
}

var (
	fontTitle    = Font{Style: StyleBold, Size: 20}
	fontSubtitle = Font{Style: StyleRegular, Size: 12}
	fontDay      = Font{Style: StyleBold, Size: 16}
	fontTip      = Font{Style: StyleItalic, Size: 10}
	fontExercise = Font{Style: StyleBold, Size: 12}
	fontBody     = Font{Style: StyleRegular, Size: 10}
	fontFooter   = Font{Style: StyleRegular, Size: 8}
)

// Measurer reports the rendered width of text in millimetres. The same
// Measurer must be used for layout and drawing.
type Measurer interface {
	TextWidth(text string, font Font) float64
}

// Line is one piece of text placed on a page. X is the left edge after
// alignment and Y the baseline.
type Line struct {
	Text string
	X, Y float64
	Font Font
}

// Page holds the lines placed on one page, footer included.
type Page struct {
	Number int
	Lines  []Line
}

// Layout is the result of one layout pass.
type Layout struct {
	Pages []Page
}

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

// cursor tracks the vertical position on the current page.
type cursor struct {
	m     Measurer
	pages []Page
	y     float64
}

func newCursor(m Measurer) *cursor {
	return &cursor{m: m, pages: []Page{{Number: 1}}, y: Margin}
}

// ensure starts a new page when a block of height h does not fit above the
// bottom margin. A block that fits exactly stays on the current page.
func (c *cursor) ensure(h float64) {
	if c.y+h > PageHeight-Margin {
		c.footer()
		c.pages = append(c.pages, Page{Number: len(c.pages) + 1})
		c.y = Margin
	}
}

func (c *cursor) footer() {
	n := len(c.pages)
	c.place(fmt.Sprintf("Página %d", n), PageWidth-Margin, footerBaseline, fontFooter, alignRight)
}

func (c *cursor) text(s string, x float64, font Font, a align) {
	c.place(s, x, c.y, font, a)
}

func (c *cursor) place(s string, x, y float64, font Font, a align) {
	switch a {
	case alignCenter:
		x -= c.m.TextWidth(s, font) / 2
	case alignRight:
		x -= c.m.TextWidth(s, font)
	}
	page := &c.pages[len(c.pages)-1]
	page.Lines = append(page.Lines, Line{Text: s, X: x, Y: y, Font: font})
}

// lines writes wrapped text one line at a time, checking the page before
// each so long blocks break only between lines.
func (c *cursor) lines(text []string, x float64, font Font) {
	for _, l := range text {
		c.ensure(lineHeight)
		c.text(l, x, font, alignLeft)
		c.y += lineHeight
	}
}

// BuildLayout lays the plan out for profile. ref is the date the age on the
// cover line is computed for. The result depends only on its arguments.
func BuildLayout(plan domain.WorkoutPlan, profile domain.UserProfile, ref time.Time, m Measurer) (Layout, error) {
	age, err := profile.AgeOn(ref)
	if err != nil {
		return Layout{}, err
	}

	c := newCursor(m)
	printable := PageWidth - 2*Margin

	c.text("Plano de Treino Personalizado", PageWidth/2, fontTitle, alignCenter)
	c.y += 10
	c.text(fmt.Sprintf("Para: %s (Idade: %d anos)", profile.Name, age), PageWidth/2, fontSubtitle, alignCenter)
	c.y += 15

	for i, day := range plan.Days {
		c.ensure(20)
		c.text(day.Label+": "+day.FocusArea, Margin, fontDay, alignLeft)
		c.y += 8

		c.ensure(10)
		c.lines(wrapText("Dica: "+day.Summary, printable, fontTip, m), Margin, fontTip)
		c.y += 5

		for _, ex := range day.Exercises {
			c.ensure(35)
			c.text(ex.Name, Margin, fontExercise, alignLeft)
			c.y += 6

			details := []string{
				"Séries/Repetições: " + ex.SetsReps,
				"Descanso: " + ex.RestInterval,
				"Equipamento: " + ex.EquipmentNeeded,
				"Músculos: " + ex.MusclesWorked,
			}
			for _, d := range details {
				c.ensure(detailHeight)
				c.text(d, Margin+5, fontBody, alignLeft)
				c.y += detailHeight
			}

			c.ensure(detailHeight)
			c.text("Descrição:", Margin+5, fontBody, alignLeft)
			c.y += detailHeight

			desc := wrapText(ex.Description, printable-10, fontBody, m)
			c.ensure(float64(len(desc))*lineHeight + 8)
			c.lines(desc, Margin+10, fontBody)
			c.y += 8
		}

		if i < len(plan.Days)-1 {
			c.y += 5
		}
	}

	c.footer()
	return Layout{Pages: c.pages}, nil
}

// wrapText splits text greedily into the fewest lines no wider than
// maxWidth. Words wider than a line are split between characters.
func wrapText(text string, maxWidth float64, font Font, m Measurer) []string {
	var out []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, w := range words {
			candidate := w
			if line != "" {
				candidate = line + " " + w
			}
			if m.TextWidth(candidate, font) <= maxWidth {
				line = candidate
				continue
			}
			if line != "" {
				out = append(out, line)
				line = ""
			}
			if m.TextWidth(w, font) <= maxWidth {
				line = w
				continue
			}
			pieces := splitWord(w, maxWidth, font, m)
			out = append(out, pieces[:len(pieces)-1]...)
			line = pieces[len(pieces)-1]
		}
		out = append(out, line)
	}
	return out
}

func splitWord(w string, maxWidth float64, font Font, m Measurer) []string {
	var pieces []string
	chunk := ""
	for _, r := range w {
		next := chunk + string(r)
		if chunk != "" && m.TextWidth(next, font) > maxWidth {
			pieces = append(pieces, chunk)
			next = string(r)
		}
		chunk = next
	}
	return append(pieces, chunk)
}
