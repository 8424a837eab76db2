package date

import (
	"testing"
	"time"
)

func TestNewNormalizes(t *testing.T) {
	// Day 0 of a month must normalize to the last day of the previous month.
	d := New(2024, time.March, 0)
	if got, want := d.String(), "2024-02-29"; got != want {
		t.Errorf("New(2024, March, 0) = %v want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2024-7-1")
	if err != nil {
		t.Fatalf("Parse() unexpected error = %v", err)
	}
	if got, want := d.String(), "2024-07-01"; got != want {
		t.Errorf("Parse(2024-7-1).String() = %v want %v", got, want)
	}

	if _, err := Parse("07/01/2024"); err == nil {
		t.Errorf("Parse(07/01/2024) expected an error, got none")
	}
}

func TestYearEnd(t *testing.T) {
	d := MustParse("2024-06-15")
	if got, want := d.YearEnd().String(), "2024-12-31"; got != want {
		t.Errorf("YearEnd() = %v want %v", got, want)
	}
}

func TestPrevMonthEnd(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2024-06-15", "2024-05-31"},
		{"2024-03-01", "2024-02-29"},
		{"2024-01-10", "2023-12-31"},
	}
	for _, c := range cases {
		if got := MustParse(c.in).PrevMonthEnd().String(); got != c.want {
			t.Errorf("PrevMonthEnd(%s) = %v want %v", c.in, got, c.want)
		}
	}
}

func TestAdd(t *testing.T) {
	d := MustParse("2024-12-31").Add(1)
	if got, want := d.String(), "2025-01-01"; got != want {
		t.Errorf("Add(1) = %v want %v", got, want)
	}
}
