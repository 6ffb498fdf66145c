package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"mockapi/internal/domain/entity"
	"mockapi/internal/domain/repository"
	"mockapi/internal/infrastructure/metrics"
	"mockapi/internal/infrastructure/recovery"
)

// MockGenerator is the single operation this service exposes.
type MockGenerator interface {
	Generate(ctx context.Context, description string) (entity.MockSpec, error)
}

// MockGeneratorService chains the completion round trip with tolerant JSON
// recovery. It holds no mutable state; concurrent requests share only the
// provider client, which carries static configuration.
type MockGeneratorService struct {
	llm    repository.CompletionRequester
	logger *slog.Logger
}

func NewMockGeneratorService(llm repository.CompletionRequester, logger *slog.Logger) *MockGeneratorService {
	return &MockGeneratorService{llm: llm, logger: logger}
}

func (s *MockGeneratorService) Generate(ctx context.Context, description string) (entity.MockSpec, error) {
	start := time.Now()

	raw, err := s.llm.RequestCompletion(ctx, description, entity.MockAPIPrompt)
	if err != nil {
		return nil, err
	}

	spec, err := recovery.Recover(raw)
	if err != nil {
		var formatErr *recovery.FormatError
		if errors.As(err, &formatErr) {
			// Full text on purpose: the only way to diagnose a reply that no
			// strategy could salvage.
			s.logger.Error("mock spec recovery failed",
				"raw_response", formatErr.OriginalText,
				"err", formatErr.Err,
			)
		}
		metrics.IncError("usecase", "recovery")
		return nil, err
	}

	metrics.IncSpecGenerated()
	metrics.ObserveGenerationDuration(time.Since(start))
	return spec, nil
}
