// Package root answers bounded integer square root queries.
package root

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"checkpoints/internal/core/isqrt"
	"checkpoints/internal/domain"
)

// Service wraps isqrt.Root with logging.
type Service struct {
	logger *zap.Logger
}

// New returns a root service. A nil logger discards output.
func New(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger.Named("root")}
}

// SquareRoot returns the exact integer root of n.
func (s *Service) SquareRoot(ctx context.Context, n int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r, err := isqrt.Root(n)
	if err != nil {
		s.logger.Debug("no root", zap.Int("n", n), zap.Error(err))
		return 0, fmt.Errorf("square root of %d: %w", n, err)
	}
	s.logger.Debug("root found", zap.Int("n", n), zap.Int("root", r))
	return r, nil
}

var _ domain.RootService = (*Service)(nil)
