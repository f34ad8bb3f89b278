package service

import (
	"context"
	"fmt"

	"techmatch/pkg/config"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// AgentVariant selects which pre-configured system instruction is used.
type AgentVariant string

const (
	// AgentSummary produces a structured per-résumé summary.
	AgentSummary AgentVariant = "summary"
	// AgentQuery answers one comparative question over all résumés.
	AgentQuery AgentVariant = "query"
)

// Part is one ordered element of an agent request: plain text, or an inline
// image identified by its MIME type.
type Part struct {
	Text     string
	MIMEType string
	Data     []byte
}

func TextPart(text string) Part {
	return Part{Text: text}
}

func ImagePart(mimeType string, data []byte) Part {
	return Part{MIMEType: mimeType, Data: data}
}

func (p Part) IsImage() bool {
	return p.Data != nil
}

const noResponseSentinel = "Sem resposta"

type Agent interface {
	Invoke(ctx context.Context, variant AgentVariant, parts []Part) (string, error)
}

type geminiAgent struct {
	client      *genai.Client
	model       string
	temperature float32
	logger      *zap.Logger
}

// NewAgent creates the shared Gemini-backed agent client. Both variants run
// on the same model; only the system instruction differs per call.
func NewAgent(cfg *config.GeminiConfig, logger *zap.Logger) (Agent, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiAgent{
		client:      client,
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		logger:      logger,
	}, nil
}

// Invoke sends the ordered parts to the selected agent variant and returns
// the reply text. Errors from the model call propagate to the caller; an
// empty reply is coerced to the "Sem resposta" sentinel instead.
func (a *geminiAgent) Invoke(ctx context.Context, variant AgentVariant, parts []Part) (string, error) {
	instruction := queryAgentPrompt
	if variant == AgentSummary {
		instruction = summaryAgentPrompt
	}

	content := make([]*genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.IsImage() {
			content = append(content, &genai.Part{
				InlineData: &genai.Blob{MIMEType: p.MIMEType, Data: p.Data},
			})
			continue
		}
		content = append(content, &genai.Part{Text: p.Text})
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(a.temperature),
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{Role: genai.RoleUser, Parts: content}}, genConfig)
	if err != nil {
		return "", fmt.Errorf("agent call failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return noResponseSentinel, nil
	}

	text := resp.Text()
	if text == "" {
		return noResponseSentinel, nil
	}

	a.logger.Debug("Agent reply received",
		zap.String("variant", string(variant)),
		zap.Int("parts", len(parts)),
		zap.Int("reply_length", len(text)),
	)

	return text, nil
}
