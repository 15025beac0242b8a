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

// ReportRepositoryImpl implements domain.ReportRepository using MongoDB.
type ReportRepositoryImpl struct {
	collection *mongo.Collection
}

// DBReport represents the report document stored in MongoDB.
type DBReport struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Summary       string             `bson:"summary"`
	Content       string             `bson:"content,omitempty"`
	FileURL       string             `bson:"file_url,omitempty"`
	PDFURL        string             `bson:"pdf_url,omitempty"`
	CoverImageURL string             `bson:"cover_image_url,omitempty"`
	Tags          []string           `bson:"tags"`
	Status        string             `bson:"status"`
	ReadingTime   int                `bson:"reading_time,omitempty"`
	Author        string             `bson:"author,omitempty"`
	PublishedDate time.Time          `bson:"published_date"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
	CreatedBy     string             `bson:"created_by,omitempty"`
}

// NewReportRepository creates a new report repository.
func NewReportRepository(db *mongo.Database) domain.ReportRepository {
	return &ReportRepositoryImpl{collection: db.Collection("reports")}
}

// Create implements domain.ReportRepository.
func (r *ReportRepositoryImpl) Create(ctx context.Context, report *domain.Report) error {
	now := time.Now().UTC()
	if report.PublishedDate.IsZero() {
		report.PublishedDate = now
	}
	dbReport := r.domainToDB(report)
	dbReport.CreatedAt = now
	dbReport.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, dbReport)
	if err != nil {
		return err
	}
	report.ID = result.InsertedID.(primitive.ObjectID).Hex()
	report.CreatedAt = now
	report.UpdatedAt = now
	return nil
}

// FindByID implements domain.ReportRepository.
func (r *ReportRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Report, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var dbReport DBReport
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&dbReport)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbReport), nil
}

// List implements domain.ReportRepository.
func (r *ReportRepositoryImpl) List(ctx context.Context, filter domain.ReportFilter, page domain.Page) ([]*domain.Report, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}
	if filter.Tag != "" {
		query["tags"] = filter.Tag
	}
	if filter.Search != "" {
		regex := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"title": regex},
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

	var items []*domain.Report
	for cursor.Next(ctx) {
		var dbReport DBReport
		if err := cursor.Decode(&dbReport); err != nil {
			return nil, 0, err
		}
		items = append(items, r.dbToDomain(&dbReport))
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Update implements domain.ReportRepository.
func (r *ReportRepositoryImpl) Update(ctx context.Context, report *domain.Report) error {
	objectID, err := primitive.ObjectIDFromHex(report.ID)
	if err != nil {
		return domain.ErrInvalidID
	}

	report.UpdatedAt = time.Now().UTC()
	dbReport := r.domainToDB(report)
	dbReport.ID = objectID
	dbReport.UpdatedAt = report.UpdatedAt

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": objectID}, dbReport)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

// Delete implements domain.ReportRepository.
func (r *ReportRepositoryImpl) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}

func (r *ReportRepositoryImpl) domainToDB(report *domain.Report) *DBReport {
	return &DBReport{
		Title:         report.Title,
		Summary:       report.Summary,
		Content:       report.Content,
		FileURL:       report.FileURL,
		PDFURL:        report.PDFURL,
		CoverImageURL: report.CoverImageURL,
		Tags:          report.Tags,
		Status:        string(report.Status),
		ReadingTime:   report.ReadingTime,
		Author:        report.Author,
		PublishedDate: report.PublishedDate,
		CreatedAt:     report.CreatedAt,
		UpdatedAt:     report.UpdatedAt,
		CreatedBy:     report.CreatedBy,
	}
}

func (r *ReportRepositoryImpl) dbToDomain(dbReport *DBReport) *domain.Report {
	return &domain.Report{
		ID:            dbReport.ID.Hex(),
		Title:         dbReport.Title,
		Summary:       dbReport.Summary,
		Content:       dbReport.Content,
		FileURL:       dbReport.FileURL,
		PDFURL:        dbReport.PDFURL,
		CoverImageURL: dbReport.CoverImageURL,
		Tags:          dbReport.Tags,
		Status:        domain.Status(dbReport.Status),
		ReadingTime:   dbReport.ReadingTime,
		Author:        dbReport.Author,
		PublishedDate: dbReport.PublishedDate,
		CreatedAt:     dbReport.CreatedAt,
		UpdatedAt:     dbReport.UpdatedAt,
		CreatedBy:     dbReport.CreatedBy,
	}
}
