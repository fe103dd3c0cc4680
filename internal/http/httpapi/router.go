package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"studio/internal/http/handlers"
	"studio/internal/middleware"
	"studio/web"
)

func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		middleware.RequestID,
		middleware.Logger(app.Logger),
		middleware.CORS(app.Config.CORSAllowedOrigins),
	)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Post("/threads", app.ThreadCreate)
		r.Post("/scenarios/generate", app.ScenariosGenerate)
		r.Post("/images/generate", app.ImagesGenerate)
	})

	// Bundled single-page UI.
	r.Handle("/*", web.Handler())

	return r
}
