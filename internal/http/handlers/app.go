package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"studio/internal/domain"
	"studio/internal/infra"
	"studio/internal/middleware"
)

// ThreadOpener opens a conversational session with the assistant provider.
type ThreadOpener interface {
	CreateThread(ctx context.Context) (string, error)
}

// ScenarioSource asks the assistant for a validated scenario batch.
type ScenarioSource interface {
	GenerateScenarios(ctx context.Context, brief domain.ScenarioBrief) ([]domain.Scenario, error)
}

// ImageRenderer renders one image from a prompt and the inline product photo.
type ImageRenderer interface {
	GenerateImage(ctx context.Context, prompt string, product domain.ProductImage) (domain.GeneratedImage, error)
	Model() string
}

// App wires the handlers to their collaborators. A nil provider means the
// matching credential is absent; the handler that needs it answers with a
// configuration error before any network call.
type App struct {
	Config    *infra.Config
	Logger    zerolog.Logger
	Assistant ThreadOpener
	Scenarios ScenarioSource
	Images    ImageRenderer
	Repo      domain.GenerationRepository // nil disables persistence
}

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, errorResponse{Error: msg})
}

// fail logs the real cause with the request id and answers with a user-safe
// message. Validation errors carry their field list; everything else stays
// generic so provider bodies never leak to callers.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	a.Logger.Error().
		Err(err).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Str("path", r.URL.Path).
		Msg(msg)

	if v, ok := domain.AsValidation(err); ok {
		a.json(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Details: v.Fields})
		return
	}
	a.error(w, http.StatusInternalServerError, msg)
}
