// Package summarizer sends a rendered Markdown summary report to an LLM
// and returns a free-text diagnosis. It is a single outbound call with no
// retry loop; the categorization pipeline neither depends on it nor is
// affected by its failures.
package summarizer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cloudwego/eino-ext/components/model/openrouter"
	"github.com/cloudwego/eino/schema"
	"github.com/go-errors/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/psalmeida/logtriage/pkg/config"
)

const systemPrompt = "You are an SRE engineer focused on diagnosis and action plans. " +
	"Be direct, assertive, and prioritize practical recommendations."

const userPrefix = "Analyze the content below (a summary report in Markdown). " +
	"For each error mentioned, produce in Markdown:\n" +
	"1) Likely root causes; 2) Evidence/checks to collect; " +
	"3) Immediate mitigations (quick wins) and definitive fixes; " +
	"4) Indicators/KPIs to monitor; 5) Priority (High/Medium/Low). " +
	"Be concise and objective. Content to analyze:\n\n"

// chunkSize caps how much report text goes into a single user message.
const chunkSize = 12000

// Sentinel failure kinds for the AI boundary. Callers distinguish them
// with errors.Is.
var (
	ErrUnauthorized  = errors.New("API key rejected (invalid or expired)")
	ErrQuotaExceeded = errors.New("quota or rate limit exceeded")
)

// Config holds configuration for the summarizer.
type Config struct {
	APIKey string
	Model  string
	// HTTPClient overrides the default instrumented client, mainly for tests.
	HTTPClient *http.Client
	// Timeout bounds the single outbound call. Zero means 2 minutes.
	Timeout time.Duration
}

// Summarize sends the Markdown report to the configured chat model and
// returns the analysis text. Exactly one attempt is made; failures surface
// to the caller classified as auth, quota, or other.
func Summarize(ctx context.Context, cfg Config, markdown string) (string, error) {
	if cfg.APIKey == "" {
		return "", errors.New("API key is required")
	}
	cfg.Model = config.ResolveModel(cfg.Model)

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatModel, err := openrouter.NewChatModel(ctx, &openrouter.Config{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		HTTPClient: client,
	})
	if err != nil {
		return "", errors.Errorf("create chat model: %w", err)
	}

	resp, err := chatModel.Generate(ctx, buildMessages(markdown))
	if err != nil {
		return "", classifyFailure(err)
	}

	analysis := strings.TrimSpace(resp.Content)
	if analysis == "" {
		return "", errors.New("empty analysis returned by model")
	}
	return analysis, nil
}

// buildMessages splits long reports into sequential user messages so a
// large summary still fits the model's context handling.
func buildMessages(markdown string) []*schema.Message {
	messages := []*schema.Message{schema.SystemMessage(systemPrompt)}

	if len(markdown) <= chunkSize {
		messages = append(messages, schema.UserMessage(userPrefix+markdown))
		return messages
	}

	parts := chunk(markdown, chunkSize)
	for i, p := range parts {
		header := fmt.Sprintf("(Part %d of %d)\n\n", i+1, len(parts))
		if i == 0 {
			header = userPrefix + header
		}
		messages = append(messages, schema.UserMessage(header+p))
	}
	return messages
}

func chunk(s string, size int) []string {
	var parts []string
	for len(s) > size {
		parts = append(parts, s[:size])
		s = s[size:]
	}
	return append(parts, s)
}

// classifyFailure maps provider errors onto the boundary's failure kinds.
// Matching on message text is unavoidable; the provider surfaces HTTP
// status only inside the error string.
func classifyFailure(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "Unauthorized") || strings.Contains(msg, "unauthorized"):
		return &boundaryError{kind: ErrUnauthorized, err: err}
	case strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "limit"):
		return &boundaryError{kind: ErrQuotaExceeded, err: err}
	}
	return errors.Errorf("call model: %w", err)
}

type boundaryError struct {
	kind error
	err  error
}

func (b *boundaryError) Error() string {
	return b.kind.Error() + ": " + b.err.Error()
}

func (b *boundaryError) Unwrap() []error {
	return []error{b.kind, b.err}
}
