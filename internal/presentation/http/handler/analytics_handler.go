package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/autocare-api/internal/application/service"
	"github.com/sangkips/autocare-api/internal/presentation/http/dto/request"
	"github.com/sangkips/autocare-api/internal/presentation/http/dto/response"
	"github.com/sangkips/autocare-api/pkg/apperror"
)

// AnalyticsHandler handles analytics dashboard HTTP requests
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// GetOverview handles GET /analytics/overview?from=YYYY-MM-DD&to=YYYY-MM-DD&groupBy=day|week|month
func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	var req request.AnalyticsOverviewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ValidationError(c, bindingFieldErrors(err))
		return
	}

	analyticsReq, fieldErrors := req.ToAnalyticsRequest()
	if len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	payload, err := h.analyticsService.GetOverview(c.Request.Context(), analyticsReq)
	if err != nil {
		_ = c.Error(err)
		response.Error(c, apperror.ErrAnalyticsUnavailable)
		return
	}

	response.OK(c, "Analytics overview retrieved successfully", payload)
}
