package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dheerendra45/news-analyzer/domain"
)

// SubscriptionHandlers handles newsletter subscription HTTP requests.
type SubscriptionHandlers struct {
	repo domain.SubscriptionRepository
}

// NewSubscriptionHandlers creates new subscription handlers.
func NewSubscriptionHandlers(repo domain.SubscriptionRepository) *SubscriptionHandlers {
	return &SubscriptionHandlers{repo: repo}
}

// SubscriptionBody is the subscription signup payload.
type SubscriptionBody struct {
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required,max=100"`
	Interest string `json:"interest" binding:"required,max=200"`
}

type subscriptionResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Interest  string    `json:"interest"`
	CreatedAt time.Time `json:"created_at"`
}

// Create registers a newsletter subscription.
func (h *SubscriptionHandlers) Create(c *gin.Context) {
	var body SubscriptionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub := &domain.Subscription{
		Email:    body.Email,
		Role:     body.Role,
		Interest: body.Interest,
	}
	if err := h.repo.Create(c.Request.Context(), sub); err != nil {
		if errors.Is(err, domain.ErrSubscriptionExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already subscribed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscription"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": subscriptionResponse{
		ID:        sub.ID,
		Email:     sub.Email,
		Role:      sub.Role,
		Interest:  sub.Interest,
		CreatedAt: sub.CreatedAt,
	}})
}

// List returns all subscriptions (admin only).
func (h *SubscriptionHandlers) List(c *gin.Context) {
	page := bindPage(c)

	items, total, err := h.repo.List(c.Request.Context(), page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list subscriptions"})
		return
	}

	out := make([]subscriptionResponse, 0, len(items))
	for _, sub := range items {
		out = append(out, subscriptionResponse{
			ID:        sub.ID,
			Email:     sub.Email,
			Role:      sub.Role,
			Interest:  sub.Interest,
			CreatedAt: sub.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, listResponse(out, total, page))
}
