package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dailywell/backend/internal/models"
	"github.com/dailywell/backend/internal/service"
)

type FoodHandler struct {
	foodService service.FoodService
	dates       dateParser
}

// NewFoodHandler creates a new food intake handler
func NewFoodHandler(foodService service.FoodService, opts service.Options) *FoodHandler {
	return &FoodHandler{
		foodService: foodService,
		dates:       newDateParser(opts),
	}
}

// ListFoodIntake handles GET /api/v1/food?start_date=&end_date=
func (h *FoodHandler) ListFoodIntake(c *gin.Context) {
	start, end, ok := h.dates.rangeQuery(c)
	if !ok {
		return
	}

	intakes, err := h.foodService.ListFoodIntake(c.Request.Context(), start, end)
	if err != nil {
		writeServiceError(c, err, "food intake")
		return
	}

	c.JSON(http.StatusOK, intakes)
}

// GetFoodIntake handles GET /api/v1/food/:date
func (h *FoodHandler) GetFoodIntake(c *gin.Context) {
	day, ok := h.dates.dayParam(c, "date")
	if !ok {
		return
	}

	intake, err := h.foodService.GetFoodIntake(c.Request.Context(), day)
	if err != nil {
		writeServiceError(c, err, "food intake")
		return
	}

	c.JSON(http.StatusOK, intake)
}

// UpdateFoodIntake handles PUT /api/v1/food/:date. Only the fields
// present in the body change; null resets a field.
func (h *FoodHandler) UpdateFoodIntake(c *gin.Context) {
	day, ok := h.dates.dayParam(c, "date")
	if !ok {
		return
	}

	var req models.UpdateFoodIntakeRequest
	if !bindJSON(c, &req) {
		return
	}

	intake, err := h.foodService.UpdateFoodIntake(c.Request.Context(), day, &req)
	if err != nil {
		writeServiceError(c, err, "food intake")
		return
	}

	c.JSON(http.StatusOK, intake)
}
