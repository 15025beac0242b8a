package repositories

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dheerendra45/news-analyzer/domain"
)

// UserRepositoryImpl implements domain.UserRepository using MongoDB.
type UserRepositoryImpl struct {
	collection *mongo.Collection
}

// DBUser represents the user document stored in MongoDB.
type DBUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"hashed_password"`
	Role         string             `bson:"role"`
	IsActive     bool               `bson:"is_active"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *mongo.Database) domain.UserRepository {
	return &UserRepositoryImpl{collection: db.Collection("users")}
}

// Create implements domain.UserRepository. Emails are stored lower-cased so
// the unique index doubles as a case-insensitive uniqueness constraint. A
// duplicate-key error from a concurrent insert is translated to the same
// conflict outcome the pre-insert check produces.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	now := time.Now().UTC()
	dbUser := &DBUser{
		Email:        strings.ToLower(user.Email),
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		IsActive:     user.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	result, err := r.collection.InsertOne(ctx, dbUser)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserAlreadyExists
		}
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID).Hex()
	user.Email = dbUser.Email
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

// FindByEmail implements domain.UserRepository.
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.collection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByEmailOrUsername implements domain.UserRepository. Used as the
// fast-path uniqueness pre-check before insert.
func (r *UserRepositoryImpl) FindByEmailOrUsername(ctx context.Context, email, username string) (*domain.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": strings.ToLower(email)},
		bson.M{"username": username},
	}}

	var dbUser DBUser
	err := r.collection.FindOne(ctx, filter).Decode(&dbUser)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository.
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var dbUser DBUser
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&dbUser)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID.Hex(),
		Email:        dbUser.Email,
		Username:     dbUser.Username,
		PasswordHash: dbUser.PasswordHash,
		Role:         domain.Role(dbUser.Role),
		IsActive:     dbUser.IsActive,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
