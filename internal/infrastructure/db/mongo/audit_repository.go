package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/staffdesk/workforce-api/internal/core/domain"
)

const auditCollection = "audit_events"

// MongoAuditRepository persists the audit trail to the audit_events
// collection. The trail is append-only.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEvent struct {
	Actor     string `bson:"actor"`
	Action    string `bson:"action"`
	Entity    string `bson:"entity"`
	EntityID  string `bson:"entity_id"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *MongoAuditRepository) InsertEvent(ctx context.Context, event *domain.AuditEvent) error {
	doc := mongoAuditEvent{
		Actor:     event.Actor,
		Action:    event.Action,
		Entity:    event.Entity,
		EntityID:  event.EntityID,
		Timestamp: event.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}
