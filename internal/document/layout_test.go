package document

import (
	"alcyxob/workout-planner/internal/domain"
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// fixedMeasurer gives every character the same width: a tenth of the font
// size in millimetres.
type fixedMeasurer struct{}

func (fixedMeasurer) TextWidth(text string, font Font) float64 {
	return float64(utf8.RuneCountInString(text)) * font.Size / 10
}

var refDate = time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)

func testProfile() domain.UserProfile {
	return domain.UserProfile{Name: "Ana", WeightKg: 60, HeightCm: 165, DateOfBirth: "2000-06-15"}
}

func testPlan(days, exercises int) domain.WorkoutPlan {
	var plan domain.WorkoutPlan
	for d := 1; d <= days; d++ {
		day := domain.DailyWorkout{
			Label:     fmt.Sprintf("Dia %d", d),
			FocusArea: "Peito e Tríceps",
			Summary:   "Mantenha a postura e respire de forma controlada durante todas as séries do treino.",
		}
		for e := 1; e <= exercises; e++ {
			day.Exercises = append(day.Exercises, domain.Exercise{
				Name:             fmt.Sprintf("Supino %d", e),
				Description:      strings.Repeat("Deite no banco e empurre a barra com controle. ", 6),
				SetsReps:         "4x10",
				RestInterval:     "60 segundos",
				EquipmentNeeded:  "Barra e banco",
				MusclesWorked:    "Peitoral, tríceps",
				VideoReferenceID: "abc123",
			})
		}
		plan.Days = append(plan.Days, day)
	}
	return plan
}

func TestEnsureExactFitDoesNotBreak(t *testing.T) {
	c := newCursor(fixedMeasurer{})
	c.y = PageHeight - Margin - 5

	c.ensure(5)
	assert.Len(t, c.pages, 1)
	assert.Equal(t, PageHeight-Margin-5, c.y)
}

func TestEnsureBreaksWhenShort(t *testing.T) {
	c := newCursor(fixedMeasurer{})
	c.y = PageHeight - Margin - 4

	c.ensure(5)
	require.Len(t, c.pages, 2)
	assert.Equal(t, Margin, c.y)

	footer := c.pages[0].Lines[len(c.pages[0].Lines)-1]
	assert.Equal(t, "Página 1", footer.Text)
	assert.Equal(t, fontFooter, footer.Font)
	assert.Equal(t, footerBaseline, footer.Y)
	assert.InDelta(t, PageWidth-Margin, footer.X+fixedMeasurer{}.TextWidth(footer.Text, fontFooter), 1e-9)
	assert.Empty(t, c.pages[1].Lines)
}

func TestBuildLayoutHeader(t *testing.T) {
	layout, err := BuildLayout(testPlan(1, 1), testProfile(), refDate, fixedMeasurer{})
	require.NoError(t, err)
	require.Len(t, layout.Pages, 1)

	lines := layout.Pages[0].Lines
	assert.Equal(t, "Plano de Treino Personalizado", lines[0].Text)
	assert.Equal(t, Margin, lines[0].Y)
	assert.Equal(t, "Para: Ana (Idade: 24 anos)", lines[1].Text)
	assert.Equal(t, Margin+10, lines[1].Y)
	assert.Equal(t, "Dia 1: Peito e Tríceps", lines[2].Text)
	assert.Equal(t, Margin+25, lines[2].Y)
	assert.Equal(t, "Página 1", lines[len(lines)-1].Text)
}

func TestBuildLayoutAgeDayBefore(t *testing.T) {
	layout, err := BuildLayout(testPlan(1, 1), testProfile(), time.Date(2024, 6, 14, 0, 0, 0, 0, time.Local), fixedMeasurer{})
	require.NoError(t, err)
	assert.Equal(t, "Para: Ana (Idade: 23 anos)", layout.Pages[0].Lines[1].Text)
}

func TestBuildLayoutPaginates(t *testing.T) {
	layout, err := BuildLayout(testPlan(5, 6), testProfile(), refDate, fixedMeasurer{})
	require.NoError(t, err)
	require.Greater(t, len(layout.Pages), 1)

	for i, page := range layout.Pages {
		assert.Equal(t, i+1, page.Number)
		var footers int
		for _, l := range page.Lines {
			if l.Font == fontFooter {
				footers++
				assert.Equal(t, fmt.Sprintf("Página %d", i+1), l.Text)
				continue
			}
			assert.LessOrEqual(t, l.Y, PageHeight-Margin, "page %d: %q below margin", page.Number, l.Text)
			assert.GreaterOrEqual(t, l.Y, Margin)
			assert.LessOrEqual(t, l.X+fixedMeasurer{}.TextWidth(l.Text, l.Font), PageWidth-Margin+1e-9, "%q too wide", l.Text)
		}
		assert.Equal(t, 1, footers, "page %d", page.Number)
	}
}

func TestBuildLayoutSplitsTallDescriptionAtLines(t *testing.T) {
	description := strings.TrimSpace(strings.Repeat("palavra ", 4000))
	plan := testPlan(1, 1)
	plan.Days[0].Exercises[0].Description = description

	layout, err := BuildLayout(plan, testProfile(), refDate, fixedMeasurer{})
	require.NoError(t, err)

	var (
		descLines []string
		descPages = map[int]bool{}
	)
	for _, page := range layout.Pages {
		var content int
		prevY := 0.0
		for _, l := range page.Lines {
			if l.Font == fontFooter {
				continue
			}
			content++
			assert.LessOrEqual(t, l.Y, PageHeight-Margin, "page %d: %q below margin", page.Number, l.Text)
			if l.X == Margin+10 {
				if descPages[page.Number] {
					assert.Equal(t, prevY+lineHeight, l.Y, "page %d: description lines are contiguous", page.Number)
				}
				descPages[page.Number] = true
				descLines = append(descLines, l.Text)
				prevY = l.Y
			}
		}
		assert.Positive(t, content, "page %d holds only its footer", page.Number)
	}

	assert.GreaterOrEqual(t, len(descPages), 3, "block continues across at least two page breaks")
	assert.Equal(t, description, strings.Join(descLines, " "), "no line lost or split mid-word")
}

func TestBuildLayoutIsIdempotent(t *testing.T) {
	plan, profile := testPlan(5, 4), testProfile()
	first, err := BuildLayout(plan, profile, refDate, fixedMeasurer{})
	require.NoError(t, err)
	second, err := BuildLayout(plan, profile, refDate, fixedMeasurer{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildLayoutInvalidBirthDate(t *testing.T) {
	profile := testProfile()
	profile.DateOfBirth = "15/06/2000"
	_, err := BuildLayout(testPlan(1, 1), profile, refDate, fixedMeasurer{})
	require.Error(t, err)
}

func TestWrapText(t *testing.T) {
	font := Font{Size: 10} // 1mm per character

	assert.Equal(t, []string{"aaa bbb", "ccc"}, wrapText("aaa bbb ccc", 7, font, fixedMeasurer{}))
	assert.Equal(t, []string{"aaa bbb ccc"}, wrapText("aaa bbb ccc", 11, font, fixedMeasurer{}))
	assert.Equal(t, []string{"abcd", "efgh", "ij x"}, wrapText("abcdefghij x", 4, font, fixedMeasurer{}))
	assert.Equal(t, []string{"um", "", "dois"}, wrapText("um\n\ndois", 10, font, fixedMeasurer{}))
	assert.Equal(t, []string{""}, wrapText("", 10, font, fixedMeasurer{}))
}

func TestRenderPDF(t *testing.T) {
	plan, profile := testPlan(5, 5), testProfile()

	out, err := RenderPDF(plan, profile, refDate)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))

	pdf, m := newPDF(refDate)
	layout, err := BuildLayout(plan, profile, refDate, m)
	require.NoError(t, err)
	draw(pdf, m, layout)
	assert.Equal(t, len(layout.Pages), pdf.PageCount())
	assert.NoError(t, pdf.Error())

	again, err := RenderPDF(plan, profile, refDate)
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestWorkbook(t *testing.T) {
	plan := testPlan(3, 2)
	out, err := Workbook(plan, testProfile(), refDate)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Resumo", "Dia 1", "Dia 2", "Dia 3"}, f.GetSheetList())

	v, err := f.GetCellValue("Resumo", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Para: Ana (Idade: 24 anos)", v)

	v, err = f.GetCellValue("Dia 2", "A5")
	require.NoError(t, err)
	assert.Equal(t, "Supino 1", v)
	v, err = f.GetCellValue("Dia 2", "G6")
	require.NoError(t, err)
	assert.Equal(t, "abc123", v)
}
