package usecase

import (
	"context"
	"log/slog"

	"github.com/rakasatria/eventum/internal/pkg/goerror"
)

// SweepExpiredOTPs removes every code past its expiry and returns how many
// were deleted. Invoked by the scheduler, not by any HTTP endpoint.
func (s *Usecase) SweepExpiredOTPs(ctx context.Context) (int64, error) {
	ctx, span := s.startSpan(ctx, "SweepExpiredOTPs")
	defer span.End()

	count, err := s.repoDB.SweepExpiredOTPs(ctx, s.clock.Now())
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo sweep expired otps", "error", err)
		return 0, goerror.NewServer(err)
	}

	if count > 0 {
		slog.InfoContext(ctx, "swept expired otps", "count", count)
	}

	return count, nil
}
