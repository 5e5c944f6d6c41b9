package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/scholarmatch/scholarmatch/internal/export"
	"github.com/scholarmatch/scholarmatch/internal/matcher"
	"github.com/scholarmatch/scholarmatch/internal/model"
)

// RenderMatches prints the tabular projection of a match list.
func RenderMatches(w io.Writer, matches []model.Match) {
	if len(matches) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No scholarships matched this profile."))
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(export.Header)
	for i := range matches {
		table.Append(export.Row(&matches[i]))
	}
	table.Render()
}

// RenderSummary prints aggregate statistics for a match list.
func RenderSummary(w io.Writer, summary matcher.Summary) {
	fmt.Fprintln(w, TitleStyle.Render("Match Summary"))
	fmt.Fprintf(w, "  Matches:          %s\n", BoldStyle.Render(strconv.Itoa(summary.TotalMatches)))
	fmt.Fprintf(w, "  Potential value:  %s\n",
		SuccessStyle.Render(model.NewAmount(summary.TotalPotentialValue).Display()))
	fmt.Fprintf(w, "  Average score:    %d%%\n", summary.AverageScore)
	if summary.UrgentDeadlines > 0 {
		fmt.Fprintf(w, "  Urgent deadlines: %s\n",
			WarningStyle.Render(strconv.Itoa(summary.UrgentDeadlines)))
	} else {
		fmt.Fprintln(w, "  Urgent deadlines: 0")
	}

	if len(summary.Categories) > 0 {
		fmt.Fprintln(w, SubtleStyle.Render("  By category:"))
		for _, category := range sortedKeys(summary.Categories) {
			fmt.Fprintf(w, "    %-24s %d\n", category, summary.Categories[category])
		}
	}
}

// RenderHardFailures prints the hard-filter exclusion report.
func RenderHardFailures(w io.Writer, failures []matcher.HardFailure) {
	if len(failures) == 0 {
		return
	}

	fmt.Fprintln(w, TitleStyle.Render(fmt.Sprintf("Not Eligible (%d)", len(failures))))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Scholarship", "Amount", "Category", "Reason"})
	for _, f := range failures {
		table.Append([]string{f.Scholarship, f.Amount.Display(), f.Category, f.Reason})
	}
	table.Render()
}

// RenderProfiles prints saved profiles.
func RenderProfiles(w io.Writer, profiles []model.Profile) {
	if len(profiles) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No saved profiles."))
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Email", "GPA", "Grade Level", "Major", "State"})
	for i := range profiles {
		p := &profiles[i]
		table.Append([]string{
			strconv.FormatInt(p.ID, 10), p.Name, p.Email,
			fmt.Sprintf("%.2f", p.GPA), p.GradeLevel, p.Major, p.State,
		})
	}
	table.Render()
}

// RenderScholarships prints catalog records (no match annotations).
func RenderScholarships(w io.Writer, scholarships []model.Scholarship) {
	if len(scholarships) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No scholarships found."))
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Scholarship", "Amount", "Deadline", "Days Left", "Category", "Min GPA"})
	for i := range scholarships {
		s := &scholarships[i]
		minGPA := "-"
		if s.MinGPA > 0 {
			minGPA = fmt.Sprintf("%.1f", s.MinGPA)
		}
		table.Append([]string{
			s.Name, s.Amount.Display(), s.Deadline,
			strconv.Itoa(s.DeadlineDays), s.CategoryOrDefault(), minGPA,
		})
	}
	table.Render()
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
