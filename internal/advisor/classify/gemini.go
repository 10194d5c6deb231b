package classify

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/schema"
	"google.golang.org/genai"

	errx "github.com/vat-advisor-poc/server/internal/core/error"
	logx "github.com/vat-advisor-poc/server/pkg/logger"

	"github.com/vat-advisor-poc/server/internal/advisor/model"
)

// Gemini delegates classification to a Gemini structured-extraction call.
// Provider failures of any kind (request, timeout, malformed output) are
// absorbed into Fallback so the dialogue layer follows the identical code
// path as a successful classification.
type Gemini struct {
	cm        *gemini.ChatModel
	modelName string
}

// NewGemini constructs the provider-backed classifier. Construction errors
// (bad credentials, bad model name) do propagate: without a client there is
// no classifier to fall back from.
func NewGemini(ctx context.Context, apiKey, baseURL string, cfg model.ClassifierConfig) (*Gemini, error) {
	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		clientCfg.HTTPOptions.BaseURL = baseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, errx.WrapClassifier(fmt.Errorf("create gemini client: %w", err))
	}

	cm, err := gemini.NewChatModel(ctx, &gemini.Config{
		Client:      client,
		Model:       cfg.Model,
		Temperature: &cfg.Temperature,
		MaxTokens:   &cfg.MaxTokens,
	})
	if err != nil {
		logx.Error().Err(err).Str("model", cfg.Model).Msg("Error creating extraction model")
		return nil, errx.WrapClassifier(fmt.Errorf("create extraction model: %w", err))
	}

	registerModelObserver()

	return &Gemini{cm: cm, modelName: cfg.Model}, nil
}

func (g *Gemini) Classify(ctx context.Context, text string) (model.Classification, error) {
	msgs, err := renderExtractionMessages(ctx, text)
	if err != nil {
		logx.Error().Err(err).Msg("extraction prompt render failed, using fallback classification")
		return Fallback(err), nil
	}

	out, err := g.cm.Generate(ctx, msgs)
	if err != nil {
		logx.Warn().Err(err).Str("model", g.modelName).
			Msg("extraction call failed, using fallback classification")
		return Fallback(err), nil
	}

	g.logUsage(out.ResponseMeta)

	cls, err := parseExtraction(out.Content)
	if err != nil {
		logx.Warn().Err(err).Str("model", g.modelName).
			Msg("extraction output unusable, using fallback classification")
		return Fallback(err), nil
	}
	return cls, nil
}

// logUsage records token usage and USD cost for the extraction call.
func (g *Gemini) logUsage(meta *schema.ResponseMeta) {
	if meta == nil || meta.Usage == nil {
		return
	}
	pricing := model.ResolvePricing(g.modelName)
	inC, outC, totalC := model.ComputeCost(meta.Usage, pricing)
	logx.Debug().
		Str("model", g.modelName).
		Int("prompt_tokens", meta.Usage.PromptTokens).
		Int("completion_tokens", meta.Usage.CompletionTokens).
		Float64("input_cost_usd", inC).
		Float64("output_cost_usd", outC).
		Float64("total_cost_usd", totalC).
		Msg("extraction model usage")
}

// Fallback is the safe classification used when the provider cannot be
// trusted: a plain passenger car (the conservative non-deductible default),
// seats unknown, with the failure noted in the rationale.
func Fallback(cause error) model.Classification {
	rationale := "분류 실패: 기본값(세단) 적용"
	if cause != nil {
		rationale = snippet(fmt.Sprintf("분류 실패(%v): 기본값(세단) 적용", cause))
	}
	return model.Classification{
		Tags:      []model.Tag{model.TagSedan},
		Scores:    map[model.Tag]int{model.TagSedan: providerTagScore},
		Seats:     model.SeatsUnknown,
		Rationale: rationale,
	}
}

var _ model.Classifier = (*Gemini)(nil)
