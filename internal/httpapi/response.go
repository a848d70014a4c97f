package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/tuffpuff/internal/domain"
)

const msgInternal = "Internal server error"

// envelope is the body of every API response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Meta    *meta  `json:"meta,omitempty"`
}

type meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func respond(c *gin.Context, status int, data any) {
	c.JSON(status, envelope{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, data any, message string) {
	c.JSON(status, envelope{Success: true, Data: data, Message: message})
}

func respondPage[T, D any](c *gin.Context, page domain.Page[T], mapFn func(T) D) {
	items := make([]D, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, mapFn(item))
	}

	c.JSON(http.StatusOK, envelope{
		Success: true,
		Data:    items,
		Meta: &meta{
			Page:       page.Page,
			Limit:      page.Limit,
			Total:      page.Total,
			TotalPages: page.TotalPages(),
		},
	})
}

func respondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, envelope{Success: false, Error: msg})
}

// fail maps domain errors to status codes. Anything unrecognised is logged
// and reported as a generic 500.
func (s *Server) fail(c *gin.Context, err error) {
	var (
		notFound *domain.NotFoundError
		invalid  *domain.InvalidRequestError
		stock    *domain.InsufficientStockError
		conflict *domain.ConflictError
	)

	switch {
	case errors.As(err, &notFound):
		respondError(c, http.StatusNotFound, notFound.Error())
	case errors.As(err, &stock):
		respondError(c, http.StatusBadRequest, stock.Error())
	case errors.As(err, &invalid):
		respondError(c, http.StatusBadRequest, invalid.Reason)
	case errors.As(err, &conflict):
		respondError(c, http.StatusConflict, conflict.Reason)
	case errors.Is(err, domain.ErrUnauthorized):
		respondError(c, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		respondError(c, http.StatusForbidden, "Forbidden")
	default:
		s.logger.ErrorContext(c.Request.Context(), "request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Any("error", err),
		)
		respondError(c, http.StatusInternalServerError, msgInternal)
	}
}
