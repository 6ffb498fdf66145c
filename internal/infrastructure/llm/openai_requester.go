package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"mockapi/app/config"
	"mockapi/internal/domain/entity"
	"mockapi/internal/domain/repository"
	"mockapi/internal/infrastructure/metrics"
)

type OpenAIRequester struct {
	client      openai.Client
	model       string
	temperature float64
}

func NewOpenAIRequester(cfg config.LLMConfig) repository.CompletionRequester {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// Exactly one provider call per generation. The SDK retries 429s by
		// default, which would break the no-retry contract.
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIRequester{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

func (r *OpenAIRequester) RequestCompletion(ctx context.Context, description string, prompt entity.Prompt) (string, error) {
	metrics.IncLLMRequest(r.model)

	resp, err := r.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(r.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.UserMessage(description)),
		},
		Temperature: openai.Float(r.temperature),
		// Structured output is requested but not relied on; recovery still has
		// to tolerate free text from providers that ignore it.
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			metrics.IncError("llm", "rate_limited")
			return "", fmt.Errorf("%w: %s", entity.ErrRateLimited, apiErr.Error())
		}
		metrics.IncError("llm", "request")
		return "", &entity.UpstreamError{Detail: err.Error()}
	}
	if len(resp.Choices) == 0 {
		metrics.IncError("llm", "empty_choices")
		return "", &entity.UpstreamError{Detail: "completion response contained no choices"}
	}

	return resp.Choices[0].Message.Content, nil
}
