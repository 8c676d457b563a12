package handlers

import (
	"net/http"

	"github.com/ayakimenko/route-weather-bot/internal/forecast"
	"github.com/ayakimenko/route-weather-bot/internal/server/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReportHandler struct {
	agg    *forecast.Aggregator
	logger *zap.Logger
}

func NewReportHandler(agg *forecast.Aggregator, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		agg:    agg,
		logger: logger,
	}
}

// GetReport renders a route report from query parameters. Development use
// only; the bot dialogue is the primary front-end.
func (h *ReportHandler) GetReport(c *gin.Context) {
	requestID := utils.GetRequestIDFromGinContext(c)
	reqLogger := h.logger.With(zap.String("request_id", requestID))

	var req ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		reqLogger.Warn("Invalid report request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request parameters",
			Code:    "INVALID_PARAMS",
			Details: utils.ValidationDetails(err),
		})
		return
	}

	route := forecast.Route{
		Start:         req.Start,
		Intermediates: req.Via,
		End:           req.End,
	}

	reqLogger.Info("Building report over HTTP",
		zap.String("start", req.Start),
		zap.String("end", req.End),
		zap.Int("via", len(req.Via)),
		zap.Int("days", req.Days))

	report, err := h.agg.BuildReport(c.Request.Context(), route, req.Days)
	if err != nil {
		reqLogger.Error("Failed to build report", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to build report",
			Code:  "REPORT_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, ReportResponse{Report: report})
}
