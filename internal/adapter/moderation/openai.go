// Package moderation wraps the OpenAI moderation endpoint behind the
// small interface the entitlement gate consumes.
package moderation

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/techconnect-india/backend/internal/domain"
)

const requestTimeout = 10 * time.Second

// moderationAPI is the slice of the OpenAI client used here. Narrowed
// for tests.
type moderationAPI interface {
	Moderations(ctx context.Context, req openai.ModerationRequest) (openai.ModerationResponse, error)
}

// Client checks message text against the OpenAI moderation endpoint.
type Client struct {
	api moderationAPI
}

// New creates a moderation client with the given API key.
func New(apiKey string) *Client {
	return &Client{api: openai.NewClient(apiKey)}
}

// newWithAPI is used by tests to inject a fake endpoint.
func newWithAPI(api moderationAPI) *Client {
	return &Client{api: api}
}

// Moderate classifies the text. A non-nil error means the endpoint was
// unreachable or returned garbage; callers fall back to local checks.
func (c *Client) Moderate(ctx context.Context, text string) (domain.ModerationVerdict, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := c.api.Moderations(ctx, openai.ModerationRequest{
		Input: text,
		Model: openai.ModerationTextStable,
	})
	if err != nil {
		return domain.ModerationVerdict{}, fmt.Errorf("moderation request: %w", err)
	}
	if len(resp.Results) == 0 {
		return domain.ModerationVerdict{}, fmt.Errorf("moderation request: empty result set")
	}

	r := resp.Results[0]
	return domain.ModerationVerdict{
		Flagged:    r.Flagged,
		Categories: toCategoryMap(r.Categories),
	}, nil
}

func toCategoryMap(c openai.ResultCategories) map[string]bool {
	return map[string]bool{
		"hate":                   c.Hate,
		"hate/threatening":       c.HateThreatening,
		"harassment":             c.Harassment,
		"harassment/threatening": c.HarassmentThreatening,
		"self-harm":              c.SelfHarm,
		"self-harm/intent":       c.SelfHarmIntent,
		"self-harm/instructions": c.SelfHarmInstructions,
		"sexual":                 c.Sexual,
		"sexual/minors":          c.SexualMinors,
		"violence":               c.Violence,
		"violence/graphic":       c.ViolenceGraphic,
	}
}
