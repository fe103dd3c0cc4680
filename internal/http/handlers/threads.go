package handlers

import "net/http"

type threadResponse struct {
	ThreadID string `json:"threadId"`
}

// ThreadCreate opens a new assistant thread. The UI calls this once at mount
// time and reuses the id for every scenario request of the session.
func (a *App) ThreadCreate(w http.ResponseWriter, r *http.Request) {
	if a.Assistant == nil {
		a.Logger.Error().Msg("thread create requested but assistant credentials are not configured")
		a.error(w, http.StatusInternalServerError, "assistant provider is not configured")
		return
	}

	threadID, err := a.Assistant.CreateThread(r.Context())
	if err != nil {
		a.fail(w, r, err, "unable to create thread")
		return
	}
	a.json(w, http.StatusOK, threadResponse{ThreadID: threadID})
}
