package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dailywell/backend/internal/models"
	"github.com/dailywell/backend/internal/service"
)

type SleepHandler struct {
	sleepService service.SleepService
	dates        dateParser
}

// NewSleepHandler creates a new sleep and screen time handler
func NewSleepHandler(sleepService service.SleepService, opts service.Options) *SleepHandler {
	return &SleepHandler{
		sleepService: sleepService,
		dates:        newDateParser(opts),
	}
}

// CreateSleepRecord handles POST /api/v1/sleep
func (h *SleepHandler) CreateSleepRecord(c *gin.Context) {
	var req models.CreateSleepRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.sleepService.CreateSleepRecord(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err, "sleep record")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListSleepRecords handles GET /api/v1/sleep?start_date=&end_date=
func (h *SleepHandler) ListSleepRecords(c *gin.Context) {
	start, end, ok := h.dates.rangeQuery(c)
	if !ok {
		return
	}

	records, err := h.sleepService.ListSleepRecords(c.Request.Context(), start, end)
	if err != nil {
		writeServiceError(c, err, "sleep record")
		return
	}

	c.JSON(http.StatusOK, records)
}

// GetStats handles GET /api/v1/sleep/stats
func (h *SleepHandler) GetStats(c *gin.Context) {
	stats, err := h.sleepService.GetStats(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "sleep record")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// CreateScreenTime handles POST /api/v1/screen-time
func (h *SleepHandler) CreateScreenTime(c *gin.Context) {
	var req models.CreateScreenTimeRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.sleepService.CreateScreenTime(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err, "screen time")
		return
	}

	c.JSON(http.StatusCreated, record)
}

// ListScreenTime handles GET /api/v1/screen-time?start_date=&end_date=
func (h *SleepHandler) ListScreenTime(c *gin.Context) {
	start, end, ok := h.dates.rangeQuery(c)
	if !ok {
		return
	}

	records, err := h.sleepService.ListScreenTime(c.Request.Context(), start, end)
	if err != nil {
		writeServiceError(c, err, "screen time")
		return
	}

	c.JSON(http.StatusOK, records)
}
