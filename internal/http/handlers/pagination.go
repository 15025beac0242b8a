package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dheerendra45/news-analyzer/domain"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// bindPage reads page/size query parameters with clamped defaults.
func bindPage(c *gin.Context) domain.Page {
	page := domain.Page{Number: 1, Size: defaultPageSize}

	if n, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && n >= 1 {
		page.Number = n
	}
	if s, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize))); err == nil && s >= 1 {
		if s > maxPageSize {
			s = maxPageSize
		}
		page.Size = s
	}
	return page
}

// listResponse builds the shared pagination envelope.
func listResponse[T any](items []T, total int64, page domain.Page) gin.H {
	return gin.H{
		"items": items,
		"total": total,
		"page":  page.Number,
		"size":  page.Size,
		"pages": page.Pages(total),
	}
}
