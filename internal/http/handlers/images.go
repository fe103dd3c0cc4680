package handlers

import (
	"encoding/json"
	"net/http"

	"studio/internal/domain"
	imageprovider "studio/internal/providers/image"
)

type imagesGenerateRequest struct {
	ThreadID     string                    `json:"threadId,omitempty"`
	ProductName  string                    `json:"productName,omitempty"`
	ProductImage domain.ProductImage       `json:"productImage"`
	Scenarios    []domain.Scenario         `json:"scenarios"`
	Settings     domain.GenerationSettings `json:"settings"`
}

type imagesGenerateResponse struct {
	Images []domain.GeneratedImage `json:"images"`
}

// ImagesGenerate renders one image per selected scenario, strictly in input
// order. Any provider failure aborts the whole batch; there is no partial
// result. Metadata persistence happens only after every render succeeded and
// never fails the request.
func (a *App) ImagesGenerate(w http.ResponseWriter, r *http.Request) {
	var req imagesGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "invalid payload")
		return
	}

	req.ProductImage.Normalize()
	req.Settings.Normalize()

	var v domain.ValidationError
	if err := domain.ValidateBatch(req.Scenarios); err != nil {
		if batch, ok := domain.AsValidation(err); ok {
			v.Fields = append(v.Fields, batch.Fields...)
		}
	}
	if err := domain.ValidateProductImage(req.ProductImage); err != nil {
		if img, ok := domain.AsValidation(err); ok {
			v.Fields = append(v.Fields, img.Fields...)
		}
	}
	if err := v.OrNil(); err != nil {
		a.fail(w, r, err, "unable to generate images")
		return
	}

	if a.Images == nil {
		a.Logger.Error().Msg("image generation requested but the image provider key is not configured")
		a.error(w, http.StatusInternalServerError, "image provider is not configured")
		return
	}

	// One provider call per scenario, sequentially. Each request inlines the
	// same product photo and depends on no other scenario's output.
	images := make([]domain.GeneratedImage, 0, len(req.Scenarios))
	for _, scenario := range req.Scenarios {
		prompt := imageprovider.BuildScenarioPrompt(scenario, req.ProductName, req.Settings)
		img, err := a.Images.GenerateImage(r.Context(), prompt, req.ProductImage)
		if err != nil {
			a.fail(w, r, err, "unable to generate images")
			return
		}
		img.Scenario = scenario
		images = append(images, img)
	}

	a.persistMetadata(r, req, images)

	a.json(w, http.StatusOK, imagesGenerateResponse{Images: images})
}

// persistMetadata mirrors one metadata row per rendered image into the
// datastore. Failures are logged and swallowed: the rendered images are the
// user-visible contract, metadata is best-effort telemetry.
func (a *App) persistMetadata(r *http.Request, req imagesGenerateRequest, images []domain.GeneratedImage) {
	if a.Repo == nil {
		return
	}

	records := make([]domain.GenerationRecord, len(images))
	for i, img := range images {
		records[i] = domain.GenerationRecord{
			ThreadID: req.ThreadID,
			Scenario: img.Scenario,
			Settings: req.Settings,
			Model:    a.Images.Model(),
			MimeType: img.MimeType,
		}
	}
	if err := a.Repo.SaveAll(r.Context(), records); err != nil {
		a.Logger.Warn().Err(err).Int("records", len(records)).Msg("generation metadata persistence failed")
	}
}
