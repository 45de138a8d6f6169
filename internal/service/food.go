package service

import (
	"context"
	"errors"
	"time"

	"github.com/dailywell/backend/internal/logger"
	"github.com/dailywell/backend/internal/metrics"
	"github.com/dailywell/backend/internal/models"
	"github.com/dailywell/backend/internal/repository"
)

type foodService struct {
	foodRepo repository.FoodIntakeRepository
	opts     Options
}

// NewFoodService creates a new food intake service
func NewFoodService(foodRepo repository.FoodIntakeRepository, opts Options) FoodService {
	return &foodService{
		foodRepo: foodRepo,
		opts:     opts.WithDefaults(),
	}
}

func (s *foodService) UpdateFoodIntake(ctx context.Context, day time.Time, req *models.UpdateFoodIntakeRequest) (*models.FoodIntake, error) {
	if req.IsEmpty() {
		return nil, invalidf("no fields to update")
	}
	if req.WaterIntake.Valid && (req.WaterIntake.Value < 0 || req.WaterIntake.Value > models.MaxWaterIntake) {
		return nil, invalidf("water_intake must be between 0 and %d, got %d", models.MaxWaterIntake, req.WaterIntake.Value)
	}

	intake, err := s.foodRepo.Upsert(ctx, s.opts.day(day), req)
	if err != nil {
		return nil, err
	}
	intake.Date = s.opts.day(intake.Date)

	metrics.RecordEntry("food")
	logger.Ctx(ctx).Debug("food intake updated",
		logger.String("date", intake.Date.Format(models.DateLayout)),
		logger.Int("water_intake", intake.WaterIntake),
	)
	return intake, nil
}

func (s *foodService) GetFoodIntake(ctx context.Context, day time.Time) (*models.FoodIntake, error) {
	intake, err := s.foodRepo.GetByDate(ctx, s.opts.day(day))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	intake.Date = s.opts.day(intake.Date)
	return intake, nil
}

func (s *foodService) ListFoodIntake(ctx context.Context, start, end time.Time) ([]models.FoodIntake, error) {
	if err := checkRange(start, end); err != nil {
		return nil, err
	}

	intakes, err := s.foodRepo.ListByDateRange(ctx, start.In(s.opts.Location), end.In(s.opts.Location))
	if err != nil {
		return nil, err
	}
	for i := range intakes {
		intakes[i].Date = s.opts.day(intakes[i].Date)
	}
	if intakes == nil {
		intakes = []models.FoodIntake{}
	}
	return intakes, nil
}
