package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dheerendra45/news-analyzer/domain"
	"github.com/dheerendra45/news-analyzer/internal/http/middleware"
)

// NewsHandlers handles news article HTTP requests.
type NewsHandlers struct {
	repo domain.NewsRepository
}

// NewNewsHandlers creates new news handlers.
func NewNewsHandlers(repo domain.NewsRepository) *NewsHandlers {
	return &NewsHandlers{repo: repo}
}

// NewsBody is the create/update payload for news articles.
type NewsBody struct {
	Title         string       `json:"title" binding:"required,max=300"`
	Description   string       `json:"description" binding:"required"`
	Summary       string       `json:"summary"`
	Source        string       `json:"source" binding:"required"`
	SourceURL     string       `json:"source_url"`
	ImageURL      string       `json:"image_url"`
	Category      string       `json:"category"`
	Tier          string       `json:"tier" binding:"omitempty,oneof=tier_1 tier_2 tier_3"`
	Status        string       `json:"status" binding:"omitempty,oneof=draft published"`
	Tags          []string     `json:"tags"`
	AffectedRoles []string     `json:"affected_roles"`
	Companies     []string     `json:"companies"`
	KeyStat       *domain.Stat `json:"key_stat"`
	SecondaryStat *domain.Stat `json:"secondary_stat"`
	PublishedDate *time.Time   `json:"published_date"`
}

func (b *NewsBody) toDomain(createdBy string) *domain.News {
	news := &domain.News{
		Title:         b.Title,
		Description:   b.Description,
		Summary:       b.Summary,
		Source:        b.Source,
		SourceURL:     b.SourceURL,
		ImageURL:      b.ImageURL,
		Category:      b.Category,
		Tier:          domain.Tier(b.Tier),
		Status:        domain.Status(b.Status),
		Tags:          b.Tags,
		AffectedRoles: b.AffectedRoles,
		Companies:     b.Companies,
		KeyStat:       b.KeyStat,
		SecondaryStat: b.SecondaryStat,
		CreatedBy:     createdBy,
	}
	if b.PublishedDate != nil {
		news.PublishedDate = *b.PublishedDate
	}
	if news.Category == "" {
		news.Category = "General"
	}
	if news.Tier == "" {
		news.Tier = domain.Tier2
	}
	if news.Status == "" {
		news.Status = domain.StatusDraft
	}
	return news
}

type newsResponse struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	Summary       string       `json:"summary"`
	Source        string       `json:"source"`
	SourceURL     string       `json:"source_url,omitempty"`
	ImageURL      string       `json:"image_url,omitempty"`
	Category      string       `json:"category"`
	Tier          string       `json:"tier"`
	Status        string       `json:"status"`
	Tags          []string     `json:"tags"`
	AffectedRoles []string     `json:"affected_roles"`
	Companies     []string     `json:"companies"`
	KeyStat       *domain.Stat `json:"key_stat,omitempty"`
	SecondaryStat *domain.Stat `json:"secondary_stat,omitempty"`
	PublishedDate time.Time    `json:"published_date"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
	CreatedBy     string       `json:"created_by,omitempty"`
}

func toNewsResponse(n *domain.News) newsResponse {
	return newsResponse{
		ID:            n.ID,
		Title:         n.Title,
		Description:   n.Description,
		Summary:       n.Summary,
		Source:        n.Source,
		SourceURL:     n.SourceURL,
		ImageURL:      n.ImageURL,
		Category:      n.Category,
		Tier:          string(n.Tier),
		Status:        string(n.Status),
		Tags:          n.Tags,
		AffectedRoles: n.AffectedRoles,
		Companies:     n.Companies,
		KeyStat:       n.KeyStat,
		SecondaryStat: n.SecondaryStat,
		PublishedDate: n.PublishedDate,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
		CreatedBy:     n.CreatedBy,
	}
}

// List returns paginated news. Anonymous callers only see published
// articles; admins may filter by status.
func (h *NewsHandlers) List(c *gin.Context) {
	page := bindPage(c)

	filter := domain.NewsFilter{
		Category: c.Query("category"),
		Tier:     domain.Tier(c.Query("tier")),
		Search:   c.Query("search"),
	}
	if middleware.IsAdmin(c) {
		filter.Status = domain.Status(c.Query("status"))
	} else {
		filter.Status = domain.StatusPublished
	}

	items, total, err := h.repo.List(c.Request.Context(), filter, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list news"})
		return
	}

	out := make([]newsResponse, 0, len(items))
	for _, n := range items {
		out = append(out, toNewsResponse(n))
	}
	c.JSON(http.StatusOK, listResponse(out, total, page))
}

// Get returns a single article. Drafts are hidden from non-admins as if they
// did not exist.
func (h *NewsHandlers) Get(c *gin.Context) {
	news, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOrError(c, err)
		return
	}

	if news.Status != domain.StatusPublished && !middleware.IsAdmin(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
		return
	}

	c.JSON(http.StatusOK, toNewsResponse(news))
}

// Create creates a news article (admin only).
func (h *NewsHandlers) Create(c *gin.Context) {
	var body NewsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	news := body.toDomain(c.GetString(middleware.CtxUserID))
	if err := h.repo.Create(c.Request.Context(), news); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create news"})
		return
	}
	c.JSON(http.StatusCreated, toNewsResponse(news))
}

// Update replaces a news article (admin only).
func (h *NewsHandlers) Update(c *gin.Context) {
	var body NewsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOrError(c, err)
		return
	}

	news := body.toDomain(existing.CreatedBy)
	news.ID = existing.ID
	news.CreatedAt = existing.CreatedAt
	if body.PublishedDate == nil {
		news.PublishedDate = existing.PublishedDate
	}

	if err := h.repo.Update(c.Request.Context(), news); err != nil {
		h.notFoundOrError(c, err)
		return
	}
	c.JSON(http.StatusOK, toNewsResponse(news))
}

// Delete removes a news article (admin only).
func (h *NewsHandlers) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.notFoundOrError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "News deleted successfully"})
}

func (h *NewsHandlers) notFoundOrError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid news ID format"})
	case errors.Is(err, domain.ErrNewsNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "News operation failed"})
	}
}
