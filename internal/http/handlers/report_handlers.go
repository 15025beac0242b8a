package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dheerendra45/news-analyzer/domain"
	"github.com/dheerendra45/news-analyzer/internal/http/middleware"
)

// ReportHandlers handles report HTTP requests.
type ReportHandlers struct {
	repo domain.ReportRepository
}

// NewReportHandlers creates new report handlers.
func NewReportHandlers(repo domain.ReportRepository) *ReportHandlers {
	return &ReportHandlers{repo: repo}
}

// ReportBody is the create/update payload for reports.
type ReportBody struct {
	Title         string     `json:"title" binding:"required,max=300"`
	Summary       string     `json:"summary" binding:"required"`
	Content       string     `json:"content"`
	FileURL       string     `json:"file_url"`
	PDFURL        string     `json:"pdf_url"`
	CoverImageURL string     `json:"cover_image_url"`
	Tags          []string   `json:"tags"`
	Status        string     `json:"status" binding:"omitempty,oneof=draft published"`
	ReadingTime   int        `json:"reading_time"`
	Author        string     `json:"author"`
	PublishedDate *time.Time `json:"published_date"`
}

func (b *ReportBody) toDomain(createdBy string) *domain.Report {
	report := &domain.Report{
		Title:         b.Title,
		Summary:       b.Summary,
		Content:       b.Content,
		FileURL:       b.FileURL,
		PDFURL:        b.PDFURL,
		CoverImageURL: b.CoverImageURL,
		Tags:          b.Tags,
		Status:        domain.Status(b.Status),
		ReadingTime:   b.ReadingTime,
		Author:        b.Author,
		CreatedBy:     createdBy,
	}
	if b.PublishedDate != nil {
		report.PublishedDate = *b.PublishedDate
	}
	if report.Status == "" {
		report.Status = domain.StatusDraft
	}
	return report
}

type reportResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary"`
	Content       string    `json:"content,omitempty"`
	FileURL       string    `json:"file_url,omitempty"`
	PDFURL        string    `json:"pdf_url,omitempty"`
	CoverImageURL string    `json:"cover_image_url,omitempty"`
	Tags          []string  `json:"tags"`
	Status        string    `json:"status"`
	ReadingTime   int       `json:"reading_time,omitempty"`
	Author        string    `json:"author,omitempty"`
	PublishedDate time.Time `json:"published_date"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	CreatedBy     string    `json:"created_by,omitempty"`
}

func toReportResponse(r *domain.Report) reportResponse {
	return reportResponse{
		ID:            r.ID,
		Title:         r.Title,
		Summary:       r.Summary,
		Content:       r.Content,
		FileURL:       r.FileURL,
		PDFURL:        r.PDFURL,
		CoverImageURL: r.CoverImageURL,
		Tags:          r.Tags,
		Status:        string(r.Status),
		ReadingTime:   r.ReadingTime,
		Author:        r.Author,
		PublishedDate: r.PublishedDate,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		CreatedBy:     r.CreatedBy,
	}
}

// List returns paginated reports. Anonymous callers only see published ones.
func (h *ReportHandlers) List(c *gin.Context) {
	page := bindPage(c)

	filter := domain.ReportFilter{
		Tag:    c.Query("tag"),
		Search: c.Query("search"),
	}
	if middleware.IsAdmin(c) {
		filter.Status = domain.Status(c.Query("status"))
	} else {
		filter.Status = domain.StatusPublished
	}

	items, total, err := h.repo.List(c.Request.Context(), filter, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reports"})
		return
	}

	out := make([]reportResponse, 0, len(items))
	for _, r := range items {
		out = append(out, toReportResponse(r))
	}
	c.JSON(http.StatusOK, listResponse(out, total, page))
}

// Get returns a single report; drafts are hidden from non-admins.
func (h *ReportHandlers) Get(c *gin.Context) {
	report, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOrError(c, err)
		return
	}

	if report.Status != domain.StatusPublished && !middleware.IsAdmin(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	c.JSON(http.StatusOK, toReportResponse(report))
}

// Create creates a report (admin only).
func (h *ReportHandlers) Create(c *gin.Context) {
	var body ReportBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := body.toDomain(c.GetString(middleware.CtxUserID))
	if err := h.repo.Create(c.Request.Context(), report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}
	c.JSON(http.StatusCreated, toReportResponse(report))
}

// Update replaces a report (admin only).
func (h *ReportHandlers) Update(c *gin.Context) {
	var body ReportBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOrError(c, err)
		return
	}

	report := body.toDomain(existing.CreatedBy)
	report.ID = existing.ID
	report.CreatedAt = existing.CreatedAt
	if body.PublishedDate == nil {
		report.PublishedDate = existing.PublishedDate
	}

	if err := h.repo.Update(c.Request.Context(), report); err != nil {
		h.notFoundOrError(c, err)
		return
	}
	c.JSON(http.StatusOK, toReportResponse(report))
}

// Delete removes a report (admin only).
func (h *ReportHandlers) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.notFoundOrError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Report deleted successfully"})
}

func (h *ReportHandlers) notFoundOrError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID format"})
	case errors.Is(err, domain.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Report operation failed"})
	}
}
