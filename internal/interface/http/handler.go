package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/luan-api/internal/domain/faq"
	apperrors "github.com/yanqian/luan-api/pkg/errors"
)

const rootMessage = "LUAN API is running successfully"

// Handler wires the HTTP transport to the FAQ service.
type Handler struct {
	faqSvc faq.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(faqSvc faq.Service, logger *slog.Logger) *Handler {
	return &Handler{
		faqSvc: faqSvc,
		logger: logger.With("component", "http.handler"),
	}
}

// Root reports liveness.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": rootMessage})
}

// Greet returns the welcome message with example queries sampled from live FAQ data.
func (h *Handler) Greet(c *gin.Context) {
	token, ok := getBearerToken(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "Missing Authorization header", nil))
		return
	}

	greeting, err := h.faqSvc.Greet(c.Request.Context(), token)
	if err != nil {
		abortWithError(c, faqError(err))
		return
	}

	c.JSON(http.StatusOK, greeting)
}

// Search runs a loosely structured query against the FAQ set.
func (h *Handler) Search(c *gin.Context) {
	token, ok := getBearerToken(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "Missing Authorization header", nil))
		return
	}
	query, ok := c.GetQuery("query")
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "query parameter is required", nil))
		return
	}

	resp, err := h.faqSvc.Search(c.Request.Context(), token, query)
	if err != nil {
		abortWithError(c, faqError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

func faqError(err error) *HTTPError {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeUnauthorized:
		return NewHTTPError(http.StatusUnauthorized, "unauthorized", "Missing Authorization header", err)
	case apperrors.CodeUpstream:
		return NewHTTPError(http.StatusInternalServerError, "faq_unavailable", "Could not load FAQ data", err)
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal_error", "something went wrong", err)
	}
}
