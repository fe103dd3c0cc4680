package domain

import "context"

// GenerationRecord is the metadata row mirrored to the datastore for one
// generated image. Image bytes are never persisted.
type GenerationRecord struct {
	ThreadID string
	Scenario Scenario
	Settings GenerationSettings
	Model    string
	MimeType string
}

// GenerationRepository persists generation metadata. Implementations are
// best-effort: callers log and swallow failures, they never fail a request
// over telemetry.
type GenerationRepository interface {
	SaveAll(ctx context.Context, records []GenerationRecord) error
}
