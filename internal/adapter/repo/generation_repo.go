package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"studio/internal/domain"
)

// DBTX is the executor contract the repository needs. Both *pgxpool.Pool and
// the lazily-connecting infra.LazyPool satisfy it.
type DBTX interface {
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
}

// GenerationRepositoryPG implements domain.GenerationRepository using PostgreSQL.
type GenerationRepositoryPG struct {
	db DBTX
}

// NewGenerationRepository constructs a new generation metadata repository.
func NewGenerationRepository(db DBTX) *GenerationRepositoryPG {
	return &GenerationRepositoryPG{db: db}
}

// SaveAll persists one metadata row per generated image. Image bytes are
// never stored, only the scenario and settings that produced them.
func (r *GenerationRepositoryPG) SaveAll(ctx context.Context, records []domain.GenerationRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
INSERT INTO generated_images (id, thread_id, scenario_id, scenario_title, scenario_summary, settings, model, mime_type, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now());
`

	for _, record := range records {
		settings, err := json.Marshal(record.Settings)
		if err != nil {
			return fmt.Errorf("marshal settings: %w", err)
		}
		if _, err := r.db.Exec(ctx, query,
			uuid.New(),
			record.ThreadID,
			record.Scenario.ID,
			record.Scenario.Title,
			record.Scenario.Summary,
			settings,
			record.Model,
			record.MimeType,
		); err != nil {
			return err
		}
	}

	return nil
}

var _ domain.GenerationRepository = (*GenerationRepositoryPG)(nil)
