package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/godilite/gradegen/internal/service"
)

// PrintSummary renders the results block shown after collection.
func PrintSummary(w io.Writer, s service.Summary) error {
	status := "FAIL"
	if s.Passed {
		status = "PASS"
	}

	lines := []string{
		"",
		"--- RESULTS ---",
		fmt.Sprintf("Total Formative: %s / %d", s.Formative.WeightedSum.StringFixed(2), s.Formative.WeightSum),
		fmt.Sprintf("Total Summative: %s / %d", s.Summative.WeightedSum.StringFixed(2), s.Summative.WeightSum),
		strings.Repeat("-", 27),
		fmt.Sprintf("%-20s%s / %d", "Total Grade:", s.TotalGrade.StringFixed(2), s.TotalWeight),
		fmt.Sprintf("%-20s%s", "GPA:", s.ScaledScore.StringFixed(4)),
		fmt.Sprintf("%-20s%s", s.Formative.Category.Label()+":", s.Formative.Message),
		fmt.Sprintf("%-20s%s", s.Summative.Category.Label()+":", s.Summative.Message),
		fmt.Sprintf("%-20s%s", "Status:", status),
	}

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
