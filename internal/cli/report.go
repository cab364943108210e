package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/yigit/curricuforge/internal/app/curriculum"
	"github.com/yigit/curricuforge/internal/app/models"
)

// writeReport prints a per-semester summary of c followed by its violations
func writeReport(w io.Writer, c *models.Curriculum, vs curriculum.Violations) {
	header := fmt.Sprintf("%s %s - %s (%s)", c.Degree, c.Branch, c.Specialization, c.Mode())
	fmt.Fprintln(w, titleStyle.Render(header))

	var rows []string
	for _, sem := range c.Semesters {
		rows = append(rows, fmt.Sprintf("Semester %d  %2d subjects  %3d credits", sem.Number, len(sem.Subjects), sem.SubjectCredits()))
	}
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("Total %d credits, industry score %.0f", c.SemesterCredits(), c.IndustryScore)))
	fmt.Fprintln(w, boxStyle.Render(strings.Join(rows, "\n")))

	if len(vs) == 0 {
		fmt.Fprintln(w, successStyle.Render("No violations"))
		return
	}
	fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("%d violation(s)", len(vs))))
	for _, v := range vs {
		fmt.Fprintf(w, "  %s %s\n", subtitleStyle.Render(string(v.Rule)), v.String())
	}
}

func writeError(w io.Writer, err error) {
	fmt.Fprintln(w, errorStyle.Render("Error: "+err.Error()))
}
