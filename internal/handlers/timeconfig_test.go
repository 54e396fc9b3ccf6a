package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"moodgarden/internal/service"
	"moodgarden/internal/timesource"
)

func TestTimeConfigHandler_Get(t *testing.T) {
	policy := &mockTimePolicy{resolved: map[string]timesource.Config{
		"input":  {Mode: timesource.ModeSnapshot},
		"myweb":  {Mode: timesource.ModeSnapshot},
		"flower": {Mode: timesource.ModeInterval, IntervalMs: 60000},
	}}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, TimePolicy: policy}
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodGet, "/api/v1/time-config/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var out map[string]timesource.Config
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out["flower"].Mode != timesource.ModeInterval || out["flower"].IntervalMs != 60000 {
		t.Fatalf("unexpected resolved config: %s", w.Body.String())
	}
}

func TestTimeConfigHandler_Put(t *testing.T) {
	policy := &mockTimePolicy{resolved: map[string]timesource.Config{}}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, TimePolicy: policy}
	r := newTestRouter(s)

	body := `{
		"default": {"mode": "interval", "interval_ms": 5000},
		"per_feature": {"flower": {"freeze_to": "2026-03-01T07:00:00Z"}}
	}`
	w := doJSON(t, r, http.MethodPut, "/api/v1/time-config/", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if policy.calls != 1 {
		t.Fatalf("Configure called %d times, want 1", policy.calls)
	}

	p := policy.lastPatch
	if p.Default == nil || p.Default.Mode == nil || *p.Default.Mode != timesource.ModeInterval {
		t.Fatalf("default mode not bound: %+v", p.Default)
	}
	if p.Default.IntervalMs == nil || *p.Default.IntervalMs != 5000 {
		t.Fatalf("default interval not bound: %+v", p.Default)
	}
	fl, ok := p.PerFeature["flower"]
	if !ok || fl.FreezeTo == nil {
		t.Fatalf("flower freeze not bound: %+v", p.PerFeature)
	}
	if got := timesource.ParseFreeze(fl.FreezeTo); got.IsZero() {
		t.Fatalf("bound freeze value %v does not parse", fl.FreezeTo)
	}

	var out struct {
		Status string `json:"status"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Status != "configured" {
		t.Fatalf("unexpected response: %s", w.Body.String())
	}
}

func TestTimeConfigHandler_PutBadBody(t *testing.T) {
	policy := &mockTimePolicy{}
	s := &service.Service{Authorization: &mockAuth{parseID: 7}, TimePolicy: policy}
	r := newTestRouter(s)

	w := doJSON(t, r, http.MethodPut, "/api/v1/time-config/", `{"default": "snapshot"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if policy.calls != 0 {
		t.Fatal("Configure must not run on a bad body")
	}
}
