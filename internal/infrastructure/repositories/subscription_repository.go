package repositories

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dheerendra45/news-analyzer/domain"
)

// SubscriptionRepositoryImpl implements domain.SubscriptionRepository using MongoDB.
type SubscriptionRepositoryImpl struct {
	collection *mongo.Collection
}

// DBSubscription represents the subscription document stored in MongoDB.
type DBSubscription struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	Role      string             `bson:"role"`
	Interest  string             `bson:"interest"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// NewSubscriptionRepository creates a new subscription repository.
func NewSubscriptionRepository(db *mongo.Database) domain.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{collection: db.Collection("subscriptions")}
}

// Create implements domain.SubscriptionRepository.
func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *domain.Subscription) error {
	now := time.Now().UTC()
	dbSub := &DBSubscription{
		Email:     strings.ToLower(sub.Email),
		Role:      sub.Role,
		Interest:  sub.Interest,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := r.collection.InsertOne(ctx, dbSub)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrSubscriptionExists
		}
		return err
	}
	sub.ID = result.InsertedID.(primitive.ObjectID).Hex()
	sub.Email = dbSub.Email
	sub.CreatedAt = now
	sub.UpdatedAt = now
	return nil
}

// List implements domain.SubscriptionRepository.
func (r *SubscriptionRepositoryImpl) List(ctx context.Context, page domain.Page) ([]*domain.Subscription, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Size))

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []*domain.Subscription
	for cursor.Next(ctx) {
		var dbSub DBSubscription
		if err := cursor.Decode(&dbSub); err != nil {
			return nil, 0, err
		}
		items = append(items, &domain.Subscription{
			ID:        dbSub.ID.Hex(),
			Email:     dbSub.Email,
			Role:      dbSub.Role,
			Interest:  dbSub.Interest,
			CreatedAt: dbSub.CreatedAt,
			UpdatedAt: dbSub.UpdatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
