package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"studio/internal/domain"
	"studio/internal/providers/assistant"
)

type stubScenarios struct {
	got       domain.ScenarioBrief
	scenarios []domain.Scenario
	err       error
	calls     int
}

func (s *stubScenarios) GenerateScenarios(ctx context.Context, brief domain.ScenarioBrief) ([]domain.Scenario, error) {
	s.calls++
	s.got = brief
	return s.scenarios, s.err
}

func postScenarios(t *testing.T, app *App, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/v1/scenarios/generate", bytes.NewReader(raw))
	rr := httptest.NewRecorder()
	app.ScenariosGenerate(rr, req)
	return rr
}

func TestScenariosGenerateSuccess(t *testing.T) {
	source := &stubScenarios{scenarios: []domain.Scenario{
		{ID: "scn-1", Title: "A", Summary: "a"},
		{ID: "scn-2", Title: "B", Summary: "b"},
	}}
	app := &App{Logger: zerolog.Nop(), Scenarios: source}

	rr := postScenarios(t, app, map[string]any{
		"threadId":       "thread_abc",
		"audience":       "busy parents",
		"productDetails": "insulated bottle",
		"shots":          20,
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body=%s", rr.Code, rr.Body.String())
	}

	var resp scenariosResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ThreadID != "thread_abc" || len(resp.Scenarios) != 2 {
		t.Fatalf("response mismatch: %+v", resp)
	}
	if source.got.Shots != domain.MaxShots {
		t.Fatalf("shots = %d, want clamped to %d", source.got.Shots, domain.MaxShots)
	}
	if source.got.FocusOnProduct != domain.DefaultFocus {
		t.Fatalf("focus = %d, want default %d", source.got.FocusOnProduct, domain.DefaultFocus)
	}
}

func TestScenariosGenerateValidation(t *testing.T) {
	source := &stubScenarios{}
	app := &App{Logger: zerolog.Nop(), Scenarios: source}

	rr := postScenarios(t, app, map[string]any{"audience": "  "})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body=%s", rr.Code, rr.Body.String())
	}
	var resp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Details) != 3 {
		t.Fatalf("details = %v, want threadId, audience and productDetails", resp.Details)
	}
	if source.calls != 0 {
		t.Fatalf("assistant called %d times on invalid input", source.calls)
	}
}

func TestScenariosGenerateNotConfigured(t *testing.T) {
	app := &App{Logger: zerolog.Nop()}
	rr := postScenarios(t, app, map[string]any{
		"threadId":       "thread_abc",
		"audience":       "a",
		"productDetails": "b",
	})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
}

func TestScenariosGenerateRunFailureIsGeneric(t *testing.T) {
	source := &stubScenarios{err: &assistant.RunError{Status: "expired"}}
	app := &App{Logger: zerolog.Nop(), Scenarios: source}

	rr := postScenarios(t, app, map[string]any{
		"threadId":       "thread_abc",
		"audience":       "a",
		"productDetails": "b",
	})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	var resp errorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error != "unable to generate scenarios" {
		t.Fatalf("error = %q, want generic message", resp.Error)
	}
}
