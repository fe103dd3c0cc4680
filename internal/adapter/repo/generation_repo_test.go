package repo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"studio/internal/domain"
)

type stubExec struct {
	calls [][]any
	err   error
}

func (s *stubExec) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	if !strings.Contains(query, "INSERT INTO generated_images") {
		return pgconn.CommandTag{}, errors.New("unexpected query: " + query)
	}
	s.calls = append(s.calls, args)
	return pgconn.CommandTag{}, s.err
}

func TestSaveAllInsertsOneRowPerRecord(t *testing.T) {
	exec := &stubExec{}
	r := NewGenerationRepository(exec)

	records := []domain.GenerationRecord{
		{ThreadID: "thread_1", Scenario: domain.Scenario{ID: "scn-1", Title: "A", Summary: "a"}, Model: "gemini-test", MimeType: "image/png"},
		{ThreadID: "thread_1", Scenario: domain.Scenario{ID: "scn-2", Title: "B", Summary: "b"}, Model: "gemini-test", MimeType: "image/png"},
	}
	if err := r.SaveAll(context.Background(), records); err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}
	if len(exec.calls) != 2 {
		t.Fatalf("inserts = %d, want 2", len(exec.calls))
	}
	if exec.calls[1][2] != "scn-2" {
		t.Fatalf("second insert scenario id = %v, want scn-2", exec.calls[1][2])
	}
}

func TestSaveAllPropagatesExecError(t *testing.T) {
	exec := &stubExec{err: errors.New("connection refused")}
	r := NewGenerationRepository(exec)
	err := r.SaveAll(context.Background(), []domain.GenerationRecord{{
		Scenario: domain.Scenario{ID: "scn-1", Title: "A", Summary: "a"},
	}})
	if err == nil {
		t.Fatal("expected error from executor")
	}
}

func TestSaveAllNoRecordsIsNoop(t *testing.T) {
	exec := &stubExec{}
	if err := NewGenerationRepository(exec).SaveAll(context.Background(), nil); err != nil {
		t.Fatalf("SaveAll returned error: %v", err)
	}
	if len(exec.calls) != 0 {
		t.Fatalf("inserts = %d, want 0", len(exec.calls))
	}
}
