package repository

import (
	"context"

	"mockapi/internal/domain/entity"
)

// CompletionRequester — интерфейс одного обращения к completion-провайдеру.
type CompletionRequester interface {
	// RequestCompletion sends exactly one request to the completion provider
	// and returns the raw text of the model's reply. No retries, no caching.
	RequestCompletion(ctx context.Context, description string, prompt entity.Prompt) (string, error)
}
