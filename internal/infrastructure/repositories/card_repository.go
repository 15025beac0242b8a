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

// CardRepositoryImpl implements domain.CardRepository using MongoDB.
type CardRepositoryImpl struct {
	collection *mongo.Collection
}

// DBCard represents the intelligence card document stored in MongoDB.
type DBCard struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	TitleHighlight  string             `bson:"title_highlight"`
	Company         string             `bson:"company"`
	CompanyIcon     string             `bson:"company_icon"`
	CompanyGradient string             `bson:"company_gradient"`
	CompanyLogo     string             `bson:"company_logo,omitempty"`
	Category        string             `bson:"category"`
	Excerpt         string             `bson:"excerpt"`
	Tier            string             `bson:"tier"`
	TierLabel       string             `bson:"tier_label"`
	Status          string             `bson:"status"`
	Stat1           *domain.Stat       `bson:"stat1,omitempty"`
	Stat2           *domain.Stat       `bson:"stat2,omitempty"`
	Stat2Type       string             `bson:"stat2_type,omitempty"`
	Stat3           *domain.Stat       `bson:"stat3,omitempty"`
	RPIScore        int                `bson:"rpi_score,omitempty"`
	JobsAffected    string             `bson:"jobs_affected,omitempty"`
	AIInvestment    string             `bson:"ai_investment,omitempty"`
	ReportID        string             `bson:"report_id,omitempty"`
	AnalysisURL     string             `bson:"analysis_url,omitempty"`
	IsFeatured      bool               `bson:"is_featured"`
	DisplayOrder    int                `bson:"display_order"`
	Industry        string             `bson:"industry,omitempty"`
	Tags            []string           `bson:"tags"`
	PublishedDate   time.Time          `bson:"published_date"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
	CreatedBy       string             `bson:"created_by,omitempty"`
}

// NewCardRepository creates a new intelligence card repository.
func NewCardRepository(db *mongo.Database) domain.CardRepository {
	return &CardRepositoryImpl{collection: db.Collection("intelligence_cards")}
}

// Create implements domain.CardRepository.
func (r *CardRepositoryImpl) Create(ctx context.Context, card *domain.IntelligenceCard) error {
	now := time.Now().UTC()
	if card.PublishedDate.IsZero() {
		card.PublishedDate = now
	}
	dbCard := r.domainToDB(card)
	dbCard.CreatedAt = now
	dbCard.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, dbCard)
	if err != nil {
		return err
	}
	card.ID = result.InsertedID.(primitive.ObjectID).Hex()
	card.CreatedAt = now
	card.UpdatedAt = now
	return nil
}

// FindByID implements domain.CardRepository.
func (r *CardRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.IntelligenceCard, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var dbCard DBCard
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&dbCard)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCardNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbCard), nil
}

// List implements domain.CardRepository. Featured cards sort by display order
// first, then newest published date.
func (r *CardRepositoryImpl) List(ctx context.Context, filter domain.CardFilter, page domain.Page) ([]*domain.IntelligenceCard, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.Tier != "" {
		query["tier"] = string(filter.Tier)
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Featured != nil {
		query["is_featured"] = *filter.Featured
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{
			{Key: "display_order", Value: 1},
			{Key: "published_date", Value: -1},
		}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Size))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []*domain.IntelligenceCard
	for cursor.Next(ctx) {
		var dbCard DBCard
		if err := cursor.Decode(&dbCard); err != nil {
			return nil, 0, err
		}
		items = append(items, r.dbToDomain(&dbCard))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update implements domain.CardRepository.
func (r *CardRepositoryImpl) Update(ctx context.Context, card *domain.IntelligenceCard) error {
	objectID, err := primitive.ObjectIDFromHex(card.ID)
	if err != nil {
		return domain.ErrInvalidID
	}

	card.UpdatedAt = time.Now().UTC()
	dbCard := r.domainToDB(card)
	dbCard.ID = objectID
	dbCard.UpdatedAt = card.UpdatedAt

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": objectID}, dbCard)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrCardNotFound
	}
	return nil
}

// Delete implements domain.CardRepository.
func (r *CardRepositoryImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrCardNotFound
	}
	return nil
}

func (r *CardRepositoryImpl) domainToDB(card *domain.IntelligenceCard) *DBCard {
	return &DBCard{
		Title:           card.Title,
		TitleHighlight:  card.TitleHighlight,
		Company:         card.Company,
		CompanyIcon:     card.CompanyIcon,
		CompanyGradient: card.CompanyGradient,
		CompanyLogo:     card.CompanyLogo,
		Category:        card.Category,
		Excerpt:         card.Excerpt,
		Tier:            string(card.Tier),
		TierLabel:       card.TierLabel,
		Status:          string(card.Status),
		Stat1:           card.Stat1,
		Stat2:           card.Stat2,
		Stat2Type:       card.Stat2Type,
		Stat3:           card.Stat3,
		RPIScore:        card.RPIScore,
		JobsAffected:    card.JobsAffected,
		AIInvestment:    card.AIInvestment,
		ReportID:        card.ReportID,
		AnalysisURL:     card.AnalysisURL,
		IsFeatured:      card.IsFeatured,
		DisplayOrder:    card.DisplayOrder,
		Industry:        card.Industry,
		Tags:            card.Tags,
		PublishedDate:   card.PublishedDate,
		CreatedAt:       card.CreatedAt,
		UpdatedAt:       card.UpdatedAt,
		CreatedBy:       card.CreatedBy,
	}
}

func (r *CardRepositoryImpl) dbToDomain(dbCard *DBCard) *domain.IntelligenceCard {
	return &domain.IntelligenceCard{
		ID:              dbCard.ID.Hex(),
		Title:           dbCard.Title,
		TitleHighlight:  dbCard.TitleHighlight,
		Company:         dbCard.Company,
		CompanyIcon:     dbCard.CompanyIcon,
		CompanyGradient: dbCard.CompanyGradient,
		CompanyLogo:     dbCard.CompanyLogo,
		Category:        dbCard.Category,
		Excerpt:         dbCard.Excerpt,
		Tier:            domain.Tier(dbCard.Tier),
		TierLabel:       dbCard.TierLabel,
		Status:          domain.Status(dbCard.Status),
		Stat1:           dbCard.Stat1,
		Stat2:           dbCard.Stat2,
		Stat2Type:       dbCard.Stat2Type,
		Stat3:           dbCard.Stat3,
		RPIScore:        dbCard.RPIScore,
		JobsAffected:    dbCard.JobsAffected,
		AIInvestment:    dbCard.AIInvestment,
		ReportID:        dbCard.ReportID,
		AnalysisURL:     dbCard.AnalysisURL,
		IsFeatured:      dbCard.IsFeatured,
		DisplayOrder:    dbCard.DisplayOrder,
		Industry:        dbCard.Industry,
		Tags:            dbCard.Tags,
		PublishedDate:   dbCard.PublishedDate,
		CreatedAt:       dbCard.CreatedAt,
		UpdatedAt:       dbCard.UpdatedAt,
		CreatedBy:       dbCard.CreatedBy,
	}
}
