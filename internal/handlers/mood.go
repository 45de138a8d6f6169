package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dailywell/backend/internal/models"
	"github.com/dailywell/backend/internal/service"
)

type MoodHandler struct {
	moodService service.MoodService
}

// NewMoodHandler creates a new mood handler
func NewMoodHandler(moodService service.MoodService) *MoodHandler {
	return &MoodHandler{
		moodService: moodService,
	}
}

// AddMood handles POST /api/v1/moods
func (h *MoodHandler) AddMood(c *gin.Context) {
	var req models.CreateMoodRequest
	if !bindJSON(c, &req) {
		return
	}

	mood, err := h.moodService.AddMood(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err, "mood")
		return
	}

	c.JSON(http.StatusCreated, mood)
}

// GetMoods handles GET /api/v1/moods
func (h *MoodHandler) GetMoods(c *gin.Context) {
	moods, err := h.moodService.GetMoods(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "mood")
		return
	}

	c.JSON(http.StatusOK, moods)
}

// GetStats handles GET /api/v1/moods/stats
func (h *MoodHandler) GetStats(c *gin.Context) {
	stats, err := h.moodService.GetStats(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "mood")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetAnalytics handles GET /api/v1/moods/analytics
func (h *MoodHandler) GetAnalytics(c *gin.Context) {
	profile, err := h.moodService.GetAnalytics(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "mood")
		return
	}

	c.JSON(http.StatusOK, profile)
}
