package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DanielMb24/SchoolManager/internal/core/domain"
)

const auditCollection = "audit_events"

// MongoAuditRepository stores the auth event audit trail.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuthEvent struct {
	Kind      string `bson:"kind"`
	Subject   string `bson:"subject"`
	AccountID string `bson:"account_id,omitempty"`
	Role      string `bson:"role,omitempty"`
	At        int64  `bson:"at"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	doc := mongoAuthEvent{
		Kind:      string(event.Kind),
		Subject:   event.Subject,
		AccountID: event.AccountID,
		Role:      string(event.Role),
		At:        event.At.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (r *MongoAuditRepository) ListBySubject(ctx context.Context, subject string, limit int) ([]domain.AuthEvent, error) {
	if limit <= 0 {
		limit = 50
	}

	cur, err := r.coll.Find(ctx, bson.M{"subject": subject},
		options.Find().SetSort(bson.D{{Key: "at", Value: -1}}).SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer cur.Close(ctx)

	var events []domain.AuthEvent
	for cur.Next(ctx) {
		var me mongoAuthEvent
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode audit event: %w", err)
		}
		events = append(events, domain.AuthEvent{
			Kind:      domain.AuthEventKind(me.Kind),
			Subject:   me.Subject,
			AccountID: me.AccountID,
			Role:      domain.Role(me.Role),
			At:        unixToTime(me.At),
		})
	}
	return events, cur.Err()
}
