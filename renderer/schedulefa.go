package renderer

import (
	file2fa "github.com/TheAlakazam/file2fa"
)

// ScheduleFA is the report view model: one table row per disclosure, all
// values preformatted as strings.
type ScheduleFA struct {
	Symbol string
	Rows   []ScheduleFARow
}

type ScheduleFARow struct {
	Country       string
	Entity        string
	Nature        string
	SharesHeld    string
	Acquired      string
	InitialValue  string
	PeakValue     string
	ClosingValue  string
	GrossProceeds string
}

// NewScheduleFA builds the view model from a conversion report.
func NewScheduleFA(report *file2fa.Report) *ScheduleFA {
	view := &ScheduleFA{Symbol: report.Symbol}
	for _, row := range report.Rows {
		view.Rows = append(view.Rows, ScheduleFARow{
			Country:       row.CountryName,
			Entity:        row.NameOfEntity,
			Nature:        row.NatureOfEntity,
			SharesHeld:    row.SharesHeld.String(),
			Acquired:      row.DateOfAcquisition.String(),
			InitialValue:  "₹" + row.InitialValueINR.StringFixed(2),
			PeakValue:     "₹" + row.PeakValueINR.StringFixed(2),
			ClosingValue:  "₹" + row.ClosingValueINR.StringFixed(2),
			GrossProceeds: "₹" + row.TotalGrossProceedsINR.StringFixed(2),
		})
	}
	return view
}

// ScheduleFAMarkdown renders the report to a markdown string.
func ScheduleFAMarkdown(view *ScheduleFA) string {
	partials := map[string]string{
		"schedule_fa_title": "schedule_fa_title.md",
		"schedule_fa_rows":  "schedule_fa_rows.md",
	}
	return renderTemplate("scheduleFA", "schedule_fa.md", partials, view)
}
