package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/d-fine/dataland-sourcing-service/internal/cli/types"
)

var (
	stateColors = map[string]lipgloss.Style{
		"Open":             lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // blue
		"Processing":       lipgloss.NewStyle().Foreground(lipgloss.Color("220")), // yellow
		"Initialized":      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		"DocumentSourcing": lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // orange
		"DataExtraction":   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		"Processed":        lipgloss.NewStyle().Foreground(lipgloss.Color("42")), // green
		"Done":             lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		"Withdrawn":        lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // grey
	}

	priorityStyles = map[string]lipgloss.Style{
		"High": lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		"Low":  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}

	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	// Bold is shared with the command help templates.
	Bold = lipgloss.NewStyle().Bold(true)
)

// renderState colors a state name by lifecycle stage.
func renderState(state string) string {
	if style, ok := stateColors[state]; ok {
		return style.Render(state)
	}
	return state
}

// renderPriority colors a priority name.
func renderPriority(priority string) string {
	if style, ok := priorityStyles[priority]; ok {
		return style.Render(priority)
	}
	return priority
}

// formatTimestamp renders epoch milliseconds as local time.
func formatTimestamp(millis int64) string {
	return time.UnixMilli(millis).Format("2006-01-02 15:04:05")
}

// RenderRequestTable renders requests as an aligned table.
func RenderRequestTable(requests []types.Request) string {
	if len(requests) == 0 {
		return dimStyle.Render("No requests found.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-38s %-22s %-18s %-10s %-12s %-10s %s\n",
		headerStyle.Render("ID"),
		headerStyle.Render("COMPANY"),
		headerStyle.Render("DATA TYPE"),
		headerStyle.Render("PERIOD"),
		headerStyle.Render("STATE"),
		headerStyle.Render("PRIORITY"),
		headerStyle.Render("CREATED"),
	))

	for _, r := range requests {
		b.WriteString(fmt.Sprintf("%-38s %-22s %-18s %-10s %-12s %-10s %s\n",
			r.ID,
			truncate(r.CompanyID, 22),
			truncate(r.DataType, 18),
			r.ReportingPeriod,
			renderState(r.State),
			renderPriority(r.Priority),
			formatTimestamp(r.CreationTimestamp),
		))
	}
	return b.String()
}

// RenderRequestDetails renders one request as a field list.
func RenderRequestDetails(r *types.Request) string {
	var b strings.Builder
	field := func(name, value string) {
		b.WriteString(fmt.Sprintf("  %-22s %s\n", Bold.Render(name+":"), value))
	}

	b.WriteString(Bold.Render("Data Request") + "\n")
	field("ID", r.ID)
	field("Company", r.CompanyID)
	field("Data type", r.DataType)
	field("Reporting period", r.ReportingPeriod)
	field("Requested by", r.UserID)
	field("State", renderState(r.State))
	field("Priority", renderPriority(r.Priority))
	if r.MemberComment != nil {
		field("Member comment", *r.MemberComment)
	}
	if r.AdminComment != nil {
		field("Admin comment", *r.AdminComment)
	}
	if r.DataSourcingID != nil {
		field("Data sourcing", *r.DataSourcingID)
	}
	field("Created", formatTimestamp(r.CreationTimestamp))
	field("Last modified", formatTimestamp(r.LastModifiedDate))
	return b.String()
}

// RenderDataSourcingTree renders a sourcing entity with its associated
// requests as a tree.
func RenderDataSourcingTree(d *types.DataSourcing) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s [%s]\n",
		Bold.Render("DataSourcing"),
		d.ID,
		renderState(d.State),
	))
	b.WriteString(fmt.Sprintf("├── Dimension: %s / %s / %s\n", d.CompanyID, d.DataType, d.ReportingPeriod))
	if d.Priority != nil {
		b.WriteString(fmt.Sprintf("├── Priority: %s\n", renderPriority(*d.Priority)))
	}
	if d.DocumentCollector != nil {
		b.WriteString(fmt.Sprintf("├── Document collector: %s\n", *d.DocumentCollector))
	}
	if d.DataExtractor != nil {
		b.WriteString(fmt.Sprintf("├── Data extractor: %s\n", *d.DataExtractor))
	}
	if d.DateOfNextDocumentSourcingAttempt != nil {
		b.WriteString(fmt.Sprintf("├── Next sourcing attempt: %s\n",
			d.DateOfNextDocumentSourcingAttempt.Format("2006-01-02")))
	}
	if d.AdminComment != nil {
		b.WriteString(fmt.Sprintf("├── Admin comment: %s\n", *d.AdminComment))
	}

	if len(d.Documents) > 0 {
		b.WriteString("├── Documents\n")
		for i, doc := range d.Documents {
			b.WriteString(fmt.Sprintf("│   %s %s\n", branch(i, len(d.Documents)), doc))
		}
	}

	b.WriteString(fmt.Sprintf("└── Associated requests (%d)\n", len(d.AssociatedRequestIDs)))
	for i, id := range d.AssociatedRequestIDs {
		b.WriteString(fmt.Sprintf("    %s %s\n", branch(i, len(d.AssociatedRequestIDs)), id))
	}

	return b.String()
}

// RenderDataSourcingTable renders sourcing entities as an aligned table.
func RenderDataSourcingTable(sourcings []types.DataSourcing) string {
	if len(sourcings) == 0 {
		return dimStyle.Render("No data sourcing entities found.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-38s %-22s %-18s %-10s %-18s %s\n",
		headerStyle.Render("ID"),
		headerStyle.Render("COMPANY"),
		headerStyle.Render("DATA TYPE"),
		headerStyle.Render("PERIOD"),
		headerStyle.Render("STATE"),
		headerStyle.Render("REQUESTS"),
	))
	for _, d := range sourcings {
		b.WriteString(fmt.Sprintf("%-38s %-22s %-18s %-10s %-18s %d\n",
			d.ID,
			truncate(d.CompanyID, 22),
			truncate(d.DataType, 18),
			d.ReportingPeriod,
			renderState(d.State),
			len(d.AssociatedRequestIDs),
		))
	}
	return b.String()
}

// RenderHistoryTimeline renders a request's reconciled timeline.
func RenderHistoryTimeline(entries []types.HistoryEntry) string {
	if len(entries) == 0 {
		return dimStyle.Render("No history entries.")
	}

	var b strings.Builder
	b.WriteString(Bold.Render("History") + "\n")
	for i, entry := range entries {
		marker := "├──"
		if i == len(entries)-1 {
			marker = "└──"
		}
		b.WriteString(fmt.Sprintf("%s %s  %s", marker,
			dimStyle.Render(formatTimestamp(entry.Timestamp)),
			renderState(entry.DisplayedState),
		))
		if entry.AdminComment != nil {
			b.WriteString(dimStyle.Render("  # " + *entry.AdminComment))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderListSummary renders a one-line result count.
func RenderListSummary(shown, total int) string {
	return dimStyle.Render(fmt.Sprintf("Showing %d of %d.", shown, total))
}

// branch picks the tree branch marker for element i of n.
func branch(i, n int) string {
	if i == n-1 {
		return "└──"
	}
	return "├──"
}

// truncate shortens a value to fit a table column.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
