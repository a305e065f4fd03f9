package document

import (
	"alcyxob/workout-planner/internal/domain"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

const overviewSheet = "Resumo"

var exerciseColumns = []struct {
	title string
	width float64
}{
	{"Exercício", 28},
	{"Séries/Repetições", 18},
	{"Descanso", 14},
	{"Equipamento", 20},
	{"Músculos", 24},
	{"Descrição", 60},
	{"Vídeo", 30},
}

// Workbook exports the plan as a spreadsheet: an overview sheet followed by
// one sheet per day listing its exercises.
func Workbook(plan domain.WorkoutPlan, profile domain.UserProfile, ref time.Time) ([]byte, error) {
	age, err := profile.AgeOn(ref)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", overviewSheet); err != nil {
		return nil, fmt.Errorf("rename overview sheet: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2E75B6"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	wrap, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})
	if err != nil {
		return nil, fmt.Errorf("create text style: %w", err)
	}

	if err := writeOverview(f, plan, profile, age, header); err != nil {
		return nil, err
	}
	for i, day := range plan.Days {
		if err := writeDay(f, daySheetName(i), day, header, wrap); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// daySheetName is positional; model labels may hold characters sheet names
// cannot.
func daySheetName(i int) string {
	return fmt.Sprintf("Dia %d", i+1)
}

func writeOverview(f *excelize.File, plan domain.WorkoutPlan, profile domain.UserProfile, age, header int) error {
	rows := [][]any{
		{"Plano de Treino Personalizado"},
		{fmt.Sprintf("Para: %s (Idade: %d anos)", profile.Name, age)},
		{},
		{"Dia", "Foco", "Dica", "Exercícios"},
	}
	for _, day := range plan.Days {
		rows = append(rows, []any{day.Label, day.FocusArea, day.Summary, len(day.Exercises)})
	}
	if err := writeRows(f, overviewSheet, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(overviewSheet, "A4", "D4", header); err != nil {
		return fmt.Errorf("style overview header: %w", err)
	}
	for col, width := range map[string]float64{"A": 14, "B": 24, "C": 60, "D": 12} {
		if err := f.SetColWidth(overviewSheet, col, col, width); err != nil {
			return fmt.Errorf("set overview width: %w", err)
		}
	}
	return nil
}

func writeDay(f *excelize.File, sheet string, day domain.DailyWorkout, header, wrap int) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	titles := make([]any, len(exerciseColumns))
	for i, c := range exerciseColumns {
		titles[i] = c.title
	}
	rows := [][]any{
		{day.Label + ": " + day.FocusArea},
		{"Dica: " + day.Summary},
		{},
		titles,
	}
	for _, ex := range day.Exercises {
		rows = append(rows, []any{ex.Name, ex.SetsReps, ex.RestInterval, ex.EquipmentNeeded, ex.MusclesWorked, ex.Description, ex.VideoReferenceID})
	}
	if err := writeRows(f, sheet, rows); err != nil {
		return err
	}

	for i, c := range exerciseColumns {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, c.width); err != nil {
			return fmt.Errorf("set width of %s!%s: %w", sheet, col, err)
		}
	}
	last, err := excelize.ColumnNumberToName(len(exerciseColumns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A4", last+"4", header); err != nil {
		return fmt.Errorf("style %s header: %w", sheet, err)
	}
	if len(day.Exercises) > 0 {
		end := fmt.Sprintf("%s%d", last, 4+len(day.Exercises))
		if err := f.SetCellStyle(sheet, "A5", end, wrap); err != nil {
			return fmt.Errorf("style %s rows: %w", sheet, err)
		}
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      4,
		TopLeftCell: "A5",
		ActivePane:  "bottomLeft",
	})
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write %s!%s: %w", sheet, cell, err)
			}
		}
	}
	return nil
}
