package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DanielMb24/SchoolManager/internal/core/domain"
)

const accountCollection = "accounts"

// MongoAccountRepository persists accounts. Identifier uniqueness is enforced
// by a unique partial index, so Create is a single constraint-backed insert:
// under concurrent registrations with the same identifier exactly one insert
// wins and the other surfaces domain.ErrIdentifierTaken.
type MongoAccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *MongoAccountRepository {
	return &MongoAccountRepository{coll: db.Collection(accountCollection)}
}

// EnsureIndexes creates the unique index backing identifier uniqueness. The
// index is partial: it only covers documents that carry an identifier, so any
// number of student accounts without one can coexist.
func (r *MongoAccountRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "identifier", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"identifier": bson.M{"$type": "string"}}),
	})
	if err != nil {
		return fmt.Errorf("create identifier index: %w", err)
	}
	return nil
}

type mongoAccount struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Surname          string             `bson:"surname"`
	GivenName        string             `bson:"given_name"`
	Role             string             `bson:"role"`
	Identifier       string             `bson:"identifier,omitempty"`
	CredentialDigest string             `bson:"credential_digest"`
	CreatedAt        int64              `bson:"created_at"`
}

func (r *MongoAccountRepository) Create(ctx context.Context, account *domain.Account) (string, error) {
	doc := mongoAccount{
		Surname:          account.Surname,
		GivenName:        account.GivenName,
		Role:             string(account.Role),
		Identifier:       account.Identifier,
		CredentialDigest: account.CredentialDigest,
		CreatedAt:        account.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", domain.ErrIdentifierTaken
		}
		return "", fmt.Errorf("insert account: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert account: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *MongoAccountRepository) FindByIdentifier(ctx context.Context, identifier string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"identifier": identifier})
}

func (r *MongoAccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoAccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	var ma mongoAccount
	if err := r.coll.FindOne(ctx, filter).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	return &domain.Account{
		ID:               ma.ID.Hex(),
		Surname:          ma.Surname,
		GivenName:        ma.GivenName,
		Role:             domain.Role(ma.Role),
		Identifier:       ma.Identifier,
		CredentialDigest: ma.CredentialDigest,
		CreatedAt:        unixToTime(ma.CreatedAt),
	}, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
