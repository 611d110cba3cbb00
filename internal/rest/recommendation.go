package rest

import (
	"context"
	"net/http"
	"time"

	"crochetCorner/business/recommend"
	"crochetCorner/domain"
	"crochetCorner/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

type (
	RecommendationHandler struct {
		validate    *validator.Validate
		recoService RecommendationService
	}

	RecommendationService interface {
		Recommendations(ctx context.Context, userID uint, recommendationType string, limit int) []domain.ScoredProduct
		TrackInteraction(ctx context.Context, userID uint, productID uint64, interactionType string, rating int) recommend.TrackResult
	}

	RecommendQuery struct {
		Type string `query:"type" validate:"omitempty,oneof=content_based collaborative hybrid"`
		N    int    `query:"n"`
	}

	InteractionRequest struct {
		ProductID       uint64 `json:"product_id" validate:"required"`
		InteractionType string `json:"interaction_type" validate:"required,oneof=view cart_add like purchase"`
		Rating          int    `json:"rating" validate:"omitempty,min=1,max=5"`
	}
)

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:    validator.New(),
		recoService: svc,
	}
}

// GET /api/v1/recommendations?type=hybrid&n=10
//
// Always answers 200 with a list; scorer failures degrade to an empty list
// on purpose, so the storefront can render its "no recommendations yet"
// state instead of an error page.
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.Type == "" {
		q.Type = domain.RecommendationHybrid
	}

	timer := prometheus.NewTimer(metrics.RecommendationLatency)
	defer timer.ObserveDuration()
	metrics.RecommendationRequests.Inc()

	recs := h.recoService.Recommendations(c.Request().Context(), userID, q.Type, q.N)

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// POST /api/v1/recommendations/interactions
//
// Runs behind optional auth: anonymous callers get a skipped result, not an
// error, and storage failures are swallowed by the tracker.
func (h *RecommendationHandler) TrackInteraction(c echo.Context) error {
	userID, _ := c.Get("user_id").(uint)

	var req InteractionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	result := h.recoService.TrackInteraction(ctx, userID, req.ProductID, req.InteractionType, req.Rating)

	return c.JSON(http.StatusAccepted, fres.Response.StatusOK(result))
}
