package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffdesk/workforce-api/internal/core/domain"
	"github.com/staffdesk/workforce-api/internal/core/ports"
)

// newID returns a unique record identifier in the format <prefix>-XXXXXXXX.
func newID(prefix string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%s-%08X", prefix, time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("%s-%08X", prefix, b)
}

// recordAudit inserts an audit event. Failures are logged, never propagated:
// the audit trail must not block the mutation that triggered it.
func recordAudit(ctx context.Context, repo ports.AuditRepository, log zerolog.Logger, actor, action, entity, entityID string) {
	if repo == nil {
		return
	}
	event := &domain.AuditEvent{
		Actor:     actor,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
	if err := repo.InsertEvent(ctx, event); err != nil {
		log.Warn().Err(err).Str("action", action).Str("entity", entity).Msg("failed to insert audit event")
	}
}
