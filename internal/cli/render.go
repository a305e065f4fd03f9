package cli

import (
	"alcyxob/workout-planner/internal/domain"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const videoURLPrefix = "https://www.youtube.com/watch?v="

func renderPlan(w io.Writer, plan domain.WorkoutPlan) error {
	var b strings.Builder
	for i, day := range plan.Days {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "== %s: %s ==\n", day.Label, day.FocusArea)
		fmt.Fprintf(&b, "Dica: %s\n\n", day.Summary)

		tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
		for _, ex := range day.Exercises {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", ex.Name, ex.SetsReps, ex.RestInterval)
			fmt.Fprintf(tw, "\tEquipamento: %s\tMúsculos: %s\n", ex.EquipmentNeeded, ex.MusclesWorked)
			fmt.Fprintf(tw, "\t%s\t\n", ex.Description)
			fmt.Fprintf(tw, "\tVídeo: %s%s\t\n", videoURLPrefix, ex.VideoReferenceID)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
