package renderer

import (
	"strings"
	"testing"

	file2fa "github.com/TheAlakazam/file2fa"
	"github.com/TheAlakazam/file2fa/date"
	"github.com/shopspring/decimal"
)

func TestScheduleFAMarkdown(t *testing.T) {
	report := &file2fa.Report{
		Symbol: "NVDA",
		Rows: []file2fa.Row{{
			CountryName:       "United States",
			NameOfEntity:      "NVIDIA CORP",
			NatureOfEntity:    file2fa.NatureOfEntity,
			DateOfAcquisition: date.MustParse("2024-01-15"),
			InitialValueINR:   decimal.RequireFromString("211650"),
			PeakValueINR:      decimal.RequireFromString("1252500"),
			ClosingValueINR:   decimal.RequireFromString("585900"),
			SharesHeld:        decimal.RequireFromString("50"),
		}},
	}

	md := ScheduleFAMarkdown(NewScheduleFA(report))

	for _, want := range []string{
		"# Schedule FA (NVDA)",
		"| United States | NVIDIA CORP | Listed Company | 50 | 2024-01-15 |",
		"₹211650.00",
		"₹585900.00",
		"₹0.00", // gross proceeds placeholder
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown is missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "error") {
		t.Errorf("markdown contains a template error:\n%s", md)
	}
}

func TestScheduleFAMarkdownEmpty(t *testing.T) {
	md := ScheduleFAMarkdown(NewScheduleFA(&file2fa.Report{Symbol: "NVDA"}))
	if !strings.Contains(md, "No foreign holdings to disclose.") {
		t.Errorf("empty report markdown = %q", md)
	}
}
