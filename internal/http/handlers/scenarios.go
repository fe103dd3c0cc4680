package handlers

import (
	"encoding/json"
	"net/http"

	"studio/internal/domain"
)

type scenariosResponse struct {
	ThreadID  string            `json:"threadId"`
	Scenarios []domain.Scenario `json:"scenarios"`
}

// ScenariosGenerate turns a creative brief into a batch of scenario concepts
// authored by the assistant on the given thread.
func (a *App) ScenariosGenerate(w http.ResponseWriter, r *http.Request) {
	var brief domain.ScenarioBrief
	if err := json.NewDecoder(r.Body).Decode(&brief); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}
	brief.Normalize()
	if err := brief.Validate(); err != nil {
		a.fail(w, r, err, "unable to generate scenarios")
		return
	}

	if a.Scenarios == nil {
		a.Logger.Error().Msg("scenario generation requested but assistant credentials are not configured")
		a.error(w, http.StatusInternalServerError, "assistant provider is not configured")
		return
	}

	scenarios, err := a.Scenarios.GenerateScenarios(r.Context(), brief)
	if err != nil {
		a.fail(w, r, err, "unable to generate scenarios")
		return
	}

	a.json(w, http.StatusOK, scenariosResponse{ThreadID: brief.ThreadID, Scenarios: scenarios})
}
