package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"

	"studio/internal/domain"
)

const (
	defaultPollInterval = time.Second
	defaultPollTimeout  = 90 * time.Second
)

// Options controls how the assistant client is configured.
type Options struct {
	APIKey       string
	AssistantID  string
	BaseURL      string
	HTTPClient   *http.Client
	PollInterval time.Duration
	PollTimeout  time.Duration
	Logger       zerolog.Logger
}

// Client drives one OpenAI assistant: it opens threads and runs the
// scenario-authoring conversation on them. Thread state lives entirely on the
// provider side; the client never closes threads and relies on provider
// expiry.
type Client struct {
	api          *openai.Client
	assistantID  string
	pollInterval time.Duration
	pollTimeout  time.Duration
	logger       zerolog.Logger
}

// RunError reports an assistant run that reached a terminal state other than
// completed. Each terminal status stays distinct for diagnostics.
type RunError struct {
	Status string
}

func (e *RunError) Error() string {
	return fmt.Sprintf("assistant run ended with status %q", e.Status)
}

func (e *RunError) Unwrap() error { return domain.ErrProviderFailure }

// New constructs an assistant client. Both credentials are required; callers
// treat a construction failure as a configuration error.
func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("assistant api key: %w", domain.ErrProviderNotConfigured)
	}
	if strings.TrimSpace(opts.AssistantID) == "" {
		return nil, fmt.Errorf("assistant id: %w", domain.ErrProviderNotConfigured)
	}

	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	if opts.HTTPClient != nil {
		cfg.HTTPClient = opts.HTTPClient
	}

	interval := opts.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	timeout := opts.PollTimeout
	if timeout <= 0 {
		timeout = defaultPollTimeout
	}

	return &Client{
		api:          openai.NewClientWithConfig(cfg),
		assistantID:  opts.AssistantID,
		pollInterval: interval,
		pollTimeout:  timeout,
		logger:       opts.Logger,
	}, nil
}

// CreateThread opens a new conversational session and returns its identifier.
func (c *Client) CreateThread(ctx context.Context) (string, error) {
	thread, err := c.api.CreateThread(ctx, openai.ThreadRequest{})
	if err != nil {
		return "", fmt.Errorf("create thread: %w", err)
	}
	c.logger.Debug().Str("thread_id", thread.ID).Msg("assistant: thread created")
	return thread.ID, nil
}

// GenerateScenarios posts the brief on the given thread, runs the assistant
// to completion and returns the validated scenario batch.
func (c *Client) GenerateScenarios(ctx context.Context, brief domain.ScenarioBrief) ([]domain.Scenario, error) {
	if _, err := c.api.CreateMessage(ctx, brief.ThreadID, openai.MessageRequest{
		Role:    openai.ChatMessageRoleUser,
		Content: BuildBrief(brief),
	}); err != nil {
		return nil, fmt.Errorf("post brief: %w", err)
	}

	run, err := c.api.CreateRun(ctx, brief.ThreadID, openai.RunRequest{AssistantID: c.assistantID})
	if err != nil {
		return nil, fmt.Errorf("start run: %w", err)
	}

	if err := c.awaitRun(ctx, brief.ThreadID, run.ID); err != nil {
		return nil, err
	}

	raw, err := c.latestAssistantText(ctx, brief.ThreadID)
	if err != nil {
		return nil, err
	}

	scenarios, err := parseScenarioPayload(raw)
	if err != nil {
		c.logger.Error().Err(err).Str("thread_id", brief.ThreadID).Str("payload", raw).Msg("assistant: scenario payload rejected")
		return nil, err
	}
	if len(scenarios) != domain.DefaultShots {
		c.logger.Warn().Int("count", len(scenarios)).Msg("assistant: scenario count differs from the six requested")
	}
	return scenarios, nil
}

// awaitRun polls the run at a fixed interval until it reaches a terminal
// state or the bounded wait is exhausted.
func (c *Client) awaitRun(ctx context.Context, threadID, runID string) error {
	deadline := time.Now().Add(c.pollTimeout)
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		run, err := c.api.RetrieveRun(ctx, threadID, runID)
		if err != nil {
			return fmt.Errorf("retrieve run: %w", err)
		}
		switch run.Status {
		case openai.RunStatusCompleted:
			return nil
		case openai.RunStatusFailed, openai.RunStatusCancelled,
			openai.RunStatusExpired, openai.RunStatusIncomplete,
			openai.RunStatusRequiresAction:
			return &RunError{Status: string(run.Status)}
		}

		if time.Now().After(deadline) {
			return &RunError{Status: "poll_timeout"}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// latestAssistantText returns the text content of the most recent message
// authored by the assistant on the thread.
func (c *Client) latestAssistantText(ctx context.Context, threadID string) (string, error) {
	limit := 10
	order := "desc"
	list, err := c.api.ListMessage(ctx, threadID, &limit, &order, nil, nil, nil)
	if err != nil {
		return "", fmt.Errorf("list messages: %w", err)
	}
	for _, msg := range list.Messages {
		if msg.Role != openai.ChatMessageRoleAssistant {
			continue
		}
		for _, part := range msg.Content {
			if part.Text != nil && strings.TrimSpace(part.Text.Value) != "" {
				return part.Text.Value, nil
			}
		}
	}
	return "", fmt.Errorf("no assistant message on thread: %w", domain.ErrBadProviderPayload)
}

type scenarioPayload struct {
	Scenarios []domain.Scenario `json:"scenarios"`
}

// parseScenarioPayload strips fence artifacts, parses the JSON body and
// validates it against the batch schema. Both the documented object shape and
// a bare top-level array are accepted.
func parseScenarioPayload(raw string) ([]domain.Scenario, error) {
	cleaned := extractJSONFragment(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("empty scenario payload: %w", domain.ErrBadProviderPayload)
	}

	var scenarios []domain.Scenario
	if strings.HasPrefix(cleaned, "[") {
		if err := json.Unmarshal([]byte(cleaned), &scenarios); err != nil {
			return nil, fmt.Errorf("parse scenario payload: %w", errors.Join(err, domain.ErrBadProviderPayload))
		}
	} else {
		var payload scenarioPayload
		if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
			return nil, fmt.Errorf("parse scenario payload: %w", errors.Join(err, domain.ErrBadProviderPayload))
		}
		scenarios = payload.Scenarios
	}

	if err := domain.ValidateBatch(scenarios); err != nil {
		return nil, fmt.Errorf("scenario batch schema: %w", errors.Join(err, domain.ErrBadProviderPayload))
	}
	return scenarios, nil
}

func extractJSONFragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = trimCodeFence(text)
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
