package yahoo

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// chartPayload builds a minimal chart response with the given samples.
func chartPayload(timestamps []int64, highs, closes []any) string {
	ts, hs, cs := "", "", ""
	for i, t := range timestamps {
		if i > 0 {
			ts, hs, cs = ts+",", hs+",", cs+","
		}
		ts += fmt.Sprint(t)
		hs += fmt.Sprint(highs[i])
		cs += fmt.Sprint(closes[i])
	}
	return fmt.Sprintf(`{"chart":{"result":[{"timestamp":[%s],"indicators":{"quote":[{"high":[%s],"close":[%s]}]}}],"error":null}}`, ts, hs, cs)
}

func unix(day string) int64 {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return t.Unix()
}

func TestPeakAndYearEnd(t *testing.T) {
	payload := chartPayload(
		[]int64{unix("2024-11-29"), unix("2024-12-31"), unix("2025-01-02")},
		[]any{150.456, 148.0, 149.0},
		[]any{145.0, 140.0, 141.0},
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/NVDA" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("range"); got != "1y" {
			t.Errorf("range = %q want 1y", got)
		}
		fmt.Fprint(w, payload)
	}))
	defer server.Close()

	c := &Client{HTTP: server.Client(), URL: server.URL}
	summary, err := c.PeakAndYearEnd("NVDA")
	if err != nil {
		t.Fatalf("PeakAndYearEnd() unexpected error = %v", err)
	}
	if got := summary.Peak.String(); got != "150.46" {
		t.Errorf("summary.Peak = %v want 150.46 (max high, 2dp)", got)
	}
	if got := summary.YearEnd.String(); got != "140" {
		t.Errorf("summary.YearEnd = %v want 140 (Dec 31 close)", got)
	}
}

func TestPeakAndYearEndWithoutDec31(t *testing.T) {
	payload := chartPayload(
		[]int64{unix("2025-03-03"), unix("2025-03-04")},
		[]any{150.0, 151.0},
		[]any{149.0, 150.0},
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, payload)
	}))
	defer server.Close()

	c := &Client{HTTP: server.Client(), URL: server.URL}
	summary, err := c.PeakAndYearEnd("NVDA")
	if err != nil {
		t.Fatalf("PeakAndYearEnd() unexpected error = %v", err)
	}
	if !summary.YearEnd.IsZero() {
		t.Errorf("summary.YearEnd = %v want 0 when the window has no Dec 31 sample", summary.YearEnd)
	}
}

func TestPeakAndYearEndNullSamples(t *testing.T) {
	payload := chartPayload(
		[]int64{unix("2024-12-30"), unix("2024-12-31")},
		[]any{"null", 148.0},
		[]any{"null", 140.0},
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, payload)
	}))
	defer server.Close()

	c := &Client{HTTP: server.Client(), URL: server.URL}
	summary, err := c.PeakAndYearEnd("NVDA")
	if err != nil {
		t.Fatalf("PeakAndYearEnd() unexpected error = %v", err)
	}
	if got := summary.Peak.String(); got != "148" {
		t.Errorf("summary.Peak = %v want 148", got)
	}
}

func TestPeakAndYearEndFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(http.NotFound))
	defer server.Close()

	c := &Client{HTTP: server.Client(), URL: server.URL}
	if _, err := c.PeakAndYearEnd("NVDA"); err == nil {
		t.Errorf("PeakAndYearEnd() expected an error on HTTP failure, got none")
	}
}
