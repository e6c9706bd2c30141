package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lineboard/lineboard-backend/internal/dashboard"
	"github.com/lineboard/lineboard-backend/internal/http/response"
	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
	"github.com/lineboard/lineboard-backend/internal/services"
)

type DashboardHandler struct {
	log        *logger.Logger
	dashboards services.DashboardService
}

func NewDashboardHandler(log *logger.Logger, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		log:        log.With("handler", "DashboardHandler"),
		dashboards: dashboardService,
	}
}

// GetData serves one day's record with its derived block. Unknown days get
// zero-valued defaults rather than a 404 so the frontend can always render.
func (h *DashboardHandler) GetData(c *gin.Context) {
	view, err := h.dashboards.GetRecord(c.Request.Context(), c.Param("date"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, view)
}

func (h *DashboardHandler) GetSnapshot(c *gin.Context) {
	snap, err := h.dashboards.GetSnapshot(c.Request.Context(), c.Param("date"))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, snap)
}

func (h *DashboardHandler) PutData(c *gin.Context) {
	var body struct {
		Daily *dashboard.SectionPatch `json:"daily"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if body.Daily == nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_body", fmt.Errorf("missing daily payload"))
		return
	}

	view, err := h.dashboards.SaveRecord(c.Request.Context(), c.Param("date"), *body.Daily)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, view)
}

func (h *DashboardHandler) UploadData(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "missing_file", fmt.Errorf("multipart field 'file' required"))
		return
	}
	defer file.Close()

	view, err := h.dashboards.IngestDailyUpload(c.Request.Context(), c.Param("date"), file, header.Filename)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, view)
}
