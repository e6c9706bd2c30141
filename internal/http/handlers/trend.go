package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lineboard/lineboard-backend/internal/domain"
	"github.com/lineboard/lineboard-backend/internal/http/response"
	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
	"github.com/lineboard/lineboard-backend/internal/services"
)

type TrendHandler struct {
	log    *logger.Logger
	trends services.TrendService
}

func NewTrendHandler(log *logger.Logger, trendService services.TrendService) *TrendHandler {
	return &TrendHandler{
		log:    log.With("handler", "TrendHandler"),
		trends: trendService,
	}
}

func (h *TrendHandler) GetMonth(c *gin.Context) {
	entries, err := h.trends.GetMonthEntries(c.Request.Context(), c.Param("month"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, entries)
}

func (h *TrendHandler) PutMonth(c *gin.Context) {
	var body struct {
		TrendData []services.CustomerEntryInput `json:"trend_data"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if len(body.TrendData) == 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("missing trend_data payload"))
		return
	}

	entries, err := h.trends.ReplaceMonthEntries(c.Request.Context(), c.Param("month"), body.TrendData)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, entries)
}

func (h *TrendHandler) UploadMonth(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "missing_file", fmt.Errorf("multipart field 'file' required"))
		return
	}
	defer file.Close()

	entries, err := h.trends.IngestMonthUpload(c.Request.Context(), c.Param("month"), file, header.Filename)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, entries)
}

func (h *TrendHandler) GetChart(c *gin.Context) {
	points, err := h.trends.GetSeries(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, points)
}

func (h *TrendHandler) PutChart(c *gin.Context) {
	var body struct {
		TrendData []*domain.TrendPoint `json:"trend_data"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if len(body.TrendData) == 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("missing trend_data payload"))
		return
	}

	points, err := h.trends.ReplaceSeries(c.Request.Context(), body.TrendData)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, points)
}

func (h *TrendHandler) UploadChart(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "missing_file", fmt.Errorf("multipart field 'file' required"))
		return
	}
	defer file.Close()

	points, err := h.trends.IngestSeriesUpload(c.Request.Context(), file, header.Filename)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, points)
}
