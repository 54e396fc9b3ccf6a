package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"moodgarden/internal/models"
	"moodgarden/internal/period"
	"moodgarden/internal/service"
)

func TestReportsHandler_Weekly(t *testing.T) {
	reports := &mockReports{weekly: models.EmotionReport{
		ReportID:  "r1",
		Kind:      models.PeriodWeekly,
		PeriodKey: "2026-02-22",
		Dominant:  models.EmotionJoy,
	}}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Reports: reports}
	r := newTestRouter(s)

	t.Run("default ref is the zero time", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/reports/weekly", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		if !reports.lastRef.IsZero() {
			t.Fatalf("ref=%v, want zero (service falls back to its clock)", reports.lastRef)
		}
		var out models.EmotionReport
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if out.ReportID != "r1" || out.Dominant != models.EmotionJoy {
			t.Fatalf("unexpected report: %s", w.Body.String())
		}
	})

	t.Run("explicit ref is forwarded", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/reports/weekly?ref=2026-03-04T12:00:00Z", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
		}
		want := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
		if !reports.lastRef.Equal(want) {
			t.Fatalf("ref=%v, want %v", reports.lastRef, want)
		}
	})

	t.Run("bad ref is a 400", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/reports/weekly?ref=yesterday", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestReportsHandler_Monthly(t *testing.T) {
	reports := &mockReports{monthly: models.EmotionReport{
		ReportID:  "r2",
		Kind:      models.PeriodMonthly,
		PeriodKey: "2026-02-01",
	}}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, Reports: reports}
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodGet, "/api/v1/reports/monthly", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var out models.EmotionReport
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Kind != models.PeriodMonthly || out.PeriodKey != "2026-02-01" {
		t.Fatalf("unexpected report: %s", w.Body.String())
	}
}

func TestPeriodsHandler(t *testing.T) {
	weekStart := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	periods := &mockMyWebPeriods{
		curWeek:  period.Range{Start: weekStart, End: weekStart.AddDate(0, 0, 7).Add(-time.Millisecond)},
		doneWeek: period.Range{Start: weekStart.AddDate(0, 0, -7), End: weekStart.Add(-time.Millisecond)},
	}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, MyWebPeriods: periods}
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodGet, "/api/v1/periods/weekly", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Current   period.Range `json:"current"`
		Completed period.Range `json:"completed"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if !out.Current.Start.Equal(weekStart) {
		t.Fatalf("current start=%v, want %v", out.Current.Start, weekStart)
	}
	if !out.Completed.End.Equal(weekStart.Add(-time.Millisecond)) {
		t.Fatalf("completed end=%v", out.Completed.End)
	}
}
