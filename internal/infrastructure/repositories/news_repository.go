package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dheerendra45/news-analyzer/domain"
)

// NewsRepositoryImpl implements domain.NewsRepository using MongoDB.
type NewsRepositoryImpl struct {
	collection *mongo.Collection
}

// DBNews represents the news document stored in MongoDB.
type DBNews struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Description   string             `bson:"description"`
	Summary       string             `bson:"summary"`
	Source        string             `bson:"source"`
	SourceURL     string             `bson:"source_url,omitempty"`
	ImageURL      string             `bson:"image_url,omitempty"`
	Category      string             `bson:"category"`
	Tier          string             `bson:"tier"`
	Status        string             `bson:"status"`
	Tags          []string           `bson:"tags"`
	AffectedRoles []string           `bson:"affected_roles"`
	Companies     []string           `bson:"companies"`
	KeyStat       *domain.Stat       `bson:"key_stat,omitempty"`
	SecondaryStat *domain.Stat       `bson:"secondary_stat,omitempty"`
	PublishedDate time.Time          `bson:"published_date"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
	CreatedBy     string             `bson:"created_by,omitempty"`
}

// NewNewsRepository creates a new news repository.
func NewNewsRepository(db *mongo.Database) domain.NewsRepository {
	return &NewsRepositoryImpl{collection: db.Collection("news")}
}

// Create implements domain.NewsRepository.
func (r *NewsRepositoryImpl) Create(ctx context.Context, news *domain.News) error {
	now := time.Now().UTC()
	if news.PublishedDate.IsZero() {
		news.PublishedDate = now
	}
	dbNews := r.domainToDB(news)
	dbNews.CreatedAt = now
	dbNews.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, dbNews)
	if err != nil {
		return err
	}
	news.ID = result.InsertedID.(primitive.ObjectID).Hex()
	news.CreatedAt = now
	news.UpdatedAt = now
	return nil
}

// FindByID implements domain.NewsRepository.
func (r *NewsRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.News, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var dbNews DBNews
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&dbNews)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNewsNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbNews), nil
}

// List implements domain.NewsRepository. Results are sorted newest first by
// published date.
func (r *NewsRepositoryImpl) List(ctx context.Context, filter domain.NewsFilter, page domain.Page) ([]*domain.News, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Tier != "" {
		query["tier"] = string(filter.Tier)
	}
	if filter.Search != "" {
		regex := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"title": regex},
			bson.M{"description": regex},
			bson.M{"summary": regex},
		}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "published_date", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Size))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []*domain.News
	for cursor.Next(ctx) {
		var dbNews DBNews
		if err := cursor.Decode(&dbNews); err != nil {
			return nil, 0, err
		}
		items = append(items, r.dbToDomain(&dbNews))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update implements domain.NewsRepository.
func (r *NewsRepositoryImpl) Update(ctx context.Context, news *domain.News) error {
	objectID, err := primitive.ObjectIDFromHex(news.ID)
	if err != nil {
		return domain.ErrInvalidID
	}

	news.UpdatedAt = time.Now().UTC()
	dbNews := r.domainToDB(news)
	dbNews.ID = objectID
	dbNews.UpdatedAt = news.UpdatedAt

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": objectID}, dbNews)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}

// Delete implements domain.NewsRepository.
func (r *NewsRepositoryImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrNewsNotFound
	}
	return nil
}

func (r *NewsRepositoryImpl) domainToDB(news *domain.News) *DBNews {
	return &DBNews{
		Title:         news.Title,
		Description:   news.Description,
		Summary:       news.Summary,
		Source:        news.Source,
		SourceURL:     news.SourceURL,
		ImageURL:      news.ImageURL,
		Category:      news.Category,
		Tier:          string(news.Tier),
		Status:        string(news.Status),
		Tags:          news.Tags,
		AffectedRoles: news.AffectedRoles,
		Companies:     news.Companies,
		KeyStat:       news.KeyStat,
		SecondaryStat: news.SecondaryStat,
		PublishedDate: news.PublishedDate,
		CreatedAt:     news.CreatedAt,
		UpdatedAt:     news.UpdatedAt,
		CreatedBy:     news.CreatedBy,
	}
}

func (r *NewsRepositoryImpl) dbToDomain(dbNews *DBNews) *domain.News {
	return &domain.News{
		ID:            dbNews.ID.Hex(),
		Title:         dbNews.Title,
		Description:   dbNews.Description,
		Summary:       dbNews.Summary,
		Source:        dbNews.Source,
		SourceURL:     dbNews.SourceURL,
		ImageURL:      dbNews.ImageURL,
		Category:      dbNews.Category,
		Tier:          domain.Tier(dbNews.Tier),
		Status:        domain.Status(dbNews.Status),
		Tags:          dbNews.Tags,
		AffectedRoles: dbNews.AffectedRoles,
		Companies:     dbNews.Companies,
		KeyStat:       dbNews.KeyStat,
		SecondaryStat: dbNews.SecondaryStat,
		PublishedDate: dbNews.PublishedDate,
		CreatedAt:     dbNews.CreatedAt,
		UpdatedAt:     dbNews.UpdatedAt,
		CreatedBy:     dbNews.CreatedBy,
	}
}
