package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dheerendra45/news-analyzer/domain"
	"github.com/dheerendra45/news-analyzer/internal/http/middleware"
)

// CardHandlers handles intelligence card HTTP requests.
type CardHandlers struct {
	repo domain.CardRepository
}

// NewCardHandlers creates new intelligence card handlers.
func NewCardHandlers(repo domain.CardRepository) *CardHandlers {
	return &CardHandlers{repo: repo}
}

// CardBody is the create/update payload for intelligence cards.
type CardBody struct {
	Title           string       `json:"title" binding:"required,max=300"`
	TitleHighlight  string       `json:"title_highlight" binding:"required"`
	Company         string       `json:"company" binding:"required"`
	CompanyIcon     string       `json:"company_icon"`
	CompanyGradient string       `json:"company_gradient"`
	CompanyLogo     string       `json:"company_logo"`
	Category        string       `json:"category" binding:"required"`
	Excerpt         string       `json:"excerpt" binding:"required"`
	Tier            string       `json:"tier" binding:"omitempty,oneof=tier_1 tier_2 tier_3"`
	TierLabel       string       `json:"tier_label"`
	Status          string       `json:"status" binding:"omitempty,oneof=draft published"`
	Stat1           *domain.Stat `json:"stat1"`
	Stat2           *domain.Stat `json:"stat2"`
	Stat2Type       string       `json:"stat2_type"`
	Stat3           *domain.Stat `json:"stat3"`
	RPIScore        int          `json:"rpi_score"`
	JobsAffected    string       `json:"jobs_affected"`
	AIInvestment    string       `json:"ai_investment"`
	ReportID        string       `json:"report_id"`
	AnalysisURL     string       `json:"analysis_url"`
	IsFeatured      bool         `json:"is_featured"`
	DisplayOrder    int          `json:"display_order"`
	Industry        string       `json:"industry"`
	Tags            []string     `json:"tags"`
	PublishedDate   *time.Time   `json:"published_date"`
}

func (b *CardBody) toDomain(createdBy string) *domain.IntelligenceCard {
	card := &domain.IntelligenceCard{
		Title:           b.Title,
		TitleHighlight:  b.TitleHighlight,
		Company:         b.Company,
		CompanyIcon:     b.CompanyIcon,
		CompanyGradient: b.CompanyGradient,
		CompanyLogo:     b.CompanyLogo,
		Category:        b.Category,
		Excerpt:         b.Excerpt,
		Tier:            domain.Tier(b.Tier),
		TierLabel:       b.TierLabel,
		Status:          domain.Status(b.Status),
		Stat1:           b.Stat1,
		Stat2:           b.Stat2,
		Stat2Type:       b.Stat2Type,
		Stat3:           b.Stat3,
		RPIScore:        b.RPIScore,
		JobsAffected:    b.JobsAffected,
		AIInvestment:    b.AIInvestment,
		ReportID:        b.ReportID,
		AnalysisURL:     b.AnalysisURL,
		IsFeatured:      b.IsFeatured,
		DisplayOrder:    b.DisplayOrder,
		Industry:        b.Industry,
		Tags:            b.Tags,
		CreatedBy:       createdBy,
	}
	if b.PublishedDate != nil {
		card.PublishedDate = *b.PublishedDate
	}
	if card.Tier == "" {
		card.Tier = domain.Tier2
	}
	if card.TierLabel == "" {
		card.TierLabel = "Tier 2 Elevated"
	}
	if card.Status == "" {
		card.Status = domain.StatusDraft
	}
	return card
}

type cardResponse struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	TitleHighlight  string       `json:"title_highlight"`
	Company         string       `json:"company"`
	CompanyIcon     string       `json:"company_icon,omitempty"`
	CompanyGradient string       `json:"company_gradient,omitempty"`
	CompanyLogo     string       `json:"company_logo,omitempty"`
	Category        string       `json:"category"`
	Excerpt         string       `json:"excerpt"`
	Tier            string       `json:"tier"`
	TierLabel       string       `json:"tier_label"`
	Status          string       `json:"status"`
	Stat1           *domain.Stat `json:"stat1,omitempty"`
	Stat2           *domain.Stat `json:"stat2,omitempty"`
	Stat2Type       string       `json:"stat2_type,omitempty"`
	Stat3           *domain.Stat `json:"stat3,omitempty"`
	RPIScore        int          `json:"rpi_score,omitempty"`
	JobsAffected    string       `json:"jobs_affected,omitempty"`
	AIInvestment    string       `json:"ai_investment,omitempty"`
	ReportID        string       `json:"report_id,omitempty"`
	AnalysisURL     string       `json:"analysis_url,omitempty"`
	IsFeatured      bool         `json:"is_featured"`
	DisplayOrder    int          `json:"display_order"`
	Industry        string       `json:"industry,omitempty"`
	Tags            []string     `json:"tags"`
	PublishedDate   time.Time    `json:"published_date"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	CreatedBy       string       `json:"created_by,omitempty"`
}

func toCardResponse(card *domain.IntelligenceCard) cardResponse {
	return cardResponse{
		ID:              card.ID,
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

// List returns paginated intelligence cards.
func (h *CardHandlers) List(c *gin.Context) {
	page := bindPage(c)

	filter := domain.CardFilter{
		Tier:     domain.Tier(c.Query("tier")),
		Category: c.Query("category"),
	}
	if featured := c.Query("featured"); featured != "" {
		if v, err := strconv.ParseBool(featured); err == nil {
			filter.Featured = &v
		}
	}
	if middleware.IsAdmin(c) {
		filter.Status = domain.Status(c.Query("status"))
	} else {
		filter.Status = domain.StatusPublished
	}

	items, total, err := h.repo.List(c.Request.Context(), filter, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list intelligence cards"})
		return
	}

	out := make([]cardResponse, 0, len(items))
	for _, card := range items {
		out = append(out, toCardResponse(card))
	}
	c.JSON(http.StatusOK, listResponse(out, total, page))
}

// Get returns a single card; drafts are hidden from non-admins.
func (h *CardHandlers) Get(c *gin.Context) {
	card, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOrError(c, err)
		return
	}

	if card.Status != domain.StatusPublished && !middleware.IsAdmin(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Intelligence card not found"})
		return
	}

	c.JSON(http.StatusOK, toCardResponse(card))
}

// Create creates a card (admin only).
func (h *CardHandlers) Create(c *gin.Context) {
	var body CardBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card := body.toDomain(c.GetString(middleware.CtxUserID))
	if err := h.repo.Create(c.Request.Context(), card); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create intelligence card"})
		return
	}
	c.JSON(http.StatusCreated, toCardResponse(card))
}

// Update replaces a card (admin only).
func (h *CardHandlers) Update(c *gin.Context) {
	var body CardBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.repo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.notFoundOrError(c, err)
		return
	}

	card := body.toDomain(existing.CreatedBy)
	card.ID = existing.ID
	card.CreatedAt = existing.CreatedAt
	if body.PublishedDate == nil {
		card.PublishedDate = existing.PublishedDate
	}

	if err := h.repo.Update(c.Request.Context(), card); err != nil {
		h.notFoundOrError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCardResponse(card))
}

// Delete removes a card (admin only).
func (h *CardHandlers) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.notFoundOrError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Intelligence card deleted successfully"})
}

func (h *CardHandlers) notFoundOrError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card ID format"})
	case errors.Is(err, domain.ErrCardNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Intelligence card not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Intelligence card operation failed"})
	}
}
