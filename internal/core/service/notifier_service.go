package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/staffdesk/workforce-api/internal/api/metrics"
	"github.com/staffdesk/workforce-api/internal/core/ports"
)

type notifierService struct {
	verification VerificationStore
	log          zerolog.Logger
}

// NewNotifierService returns a NotifierService. Email delivery is simulated:
// a verification notification records the pending flag and logs the send; a
// resolution notification only logs.
func NewNotifierService(verification VerificationStore, log zerolog.Logger) ports.NotifierService {
	return &notifierService{verification: verification, log: log}
}

func (s *notifierService) Process(ctx context.Context, n ports.NotificationInput) error {
	switch n.Kind {
	case ports.NotifyVerification:
		if s.verification != nil {
			if err := s.verification.MarkPending(ctx, n.Email); err != nil {
				metrics.NotificationsErrorsTotal.WithLabelValues("mark_pending_failed").Inc()
				return fmt.Errorf("process notification: %w", err)
			}
		}
		s.log.Info().Str("email", n.Email).Msg("verification email sent (simulated)")

	case ports.NotifyRequestResolved:
		s.log.Info().
			Str("email", n.Email).
			Str("request_id", n.RequestID).
			Str("status", n.Status).
			Msg("request resolution email sent (simulated)")

	default:
		metrics.NotificationsErrorsTotal.WithLabelValues("unknown_kind").Inc()
		return fmt.Errorf("process notification: unknown kind %q", n.Kind)
	}

	metrics.NotificationsProcessedTotal.WithLabelValues(n.Kind).Inc()
	return nil
}
