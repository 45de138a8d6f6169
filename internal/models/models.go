package models

import "time"

// DateLayout is the wire and storage format of calendar-day fields
const DateLayout = "2006-01-02"

// Mood is a single mood check-in (1 = very low, 5 = great)
type Mood struct {
	ID        int64     `json:"id"`
	Mood      int       `json:"mood"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SleepRecord is one night of sleep attributed to a calendar day
type SleepRecord struct {
	ID         int64     `json:"id"`
	Date       time.Time `json:"date"`
	SleepTime  time.Time `json:"sleep_time"`
	WakeTime   time.Time `json:"wake_time"`
	TotalSleep int       `json:"total_sleep"` // in minutes
	Quality    int       `json:"quality"`     // 1-5 rating
	CreatedAt  time.Time `json:"created_at"`
}

// ScreenTimeRecord is a block of screen usage. Date keeps the time of
// day the usage was logged so hourly peaks can be derived from it.
type ScreenTimeRecord struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Minutes   int       `json:"minutes"`
	Category  string    `json:"category"` // work, entertainment, social, ...
	CreatedAt time.Time `json:"created_at"`
}

// FoodIntake tracks meals and water for a single day; there is at most
// one row per day
type FoodIntake struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	Breakfast   bool      `json:"breakfast"`
	Lunch       bool      `json:"lunch"`
	Snacks      bool      `json:"snacks"`
	Dinner      bool      `json:"dinner"`
	WaterIntake int       `json:"water_intake"` // 0-4 representing empty to full
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MaxWaterIntake is the "full glass" level of FoodIntake.WaterIntake
const MaxWaterIntake = 4

// CreateMoodRequest represents the request to log a mood
type CreateMoodRequest struct {
	Mood int     `json:"mood" binding:"required,min=1,max=5"`
	Note *string `json:"note" binding:"omitempty,max=500"`
}

// CreateSleepRecordRequest represents the request to log a night of sleep.
// Date is optional and defaults to the calendar day of WakeTime.
type CreateSleepRecordRequest struct {
	Date      string    `json:"date" binding:"omitempty,calendar_date"`
	SleepTime time.Time `json:"sleep_time" binding:"required"`
	WakeTime  time.Time `json:"wake_time" binding:"required"`
	Quality   int       `json:"quality" binding:"required,min=1,max=5"`
}

// CreateScreenTimeRequest represents the request to log screen usage
type CreateScreenTimeRequest struct {
	Date     time.Time `json:"date" binding:"required"`
	Minutes  int       `json:"minutes" binding:"min=0,max=1440"`
	Category string    `json:"category" binding:"required,max=64"`
}

// UpdateFoodIntakeRequest is a partial update of a day's food intake.
// Absent fields are left untouched; explicit nulls reset the column.
type UpdateFoodIntakeRequest struct {
	Breakfast   NullableBool `json:"breakfast"`
	Lunch       NullableBool `json:"lunch"`
	Snacks      NullableBool `json:"snacks"`
	Dinner      NullableBool `json:"dinner"`
	WaterIntake NullableInt  `json:"water_intake"`
}

// IsEmpty reports whether no field was supplied at all
func (r *UpdateFoodIntakeRequest) IsEmpty() bool {
	return !r.Breakfast.Set && !r.Lunch.Set && !r.Snacks.Set && !r.Dinner.Set && !r.WaterIntake.Set
}

// Apply copies the supplied fields onto intake
func (r *UpdateFoodIntakeRequest) Apply(intake *FoodIntake) {
	if r.Breakfast.Set {
		intake.Breakfast = r.Breakfast.OrDefault(false)
	}
	if r.Lunch.Set {
		intake.Lunch = r.Lunch.OrDefault(false)
	}
	if r.Snacks.Set {
		intake.Snacks = r.Snacks.OrDefault(false)
	}
	if r.Dinner.Set {
		intake.Dinner = r.Dinner.OrDefault(false)
	}
	if r.WaterIntake.Set {
		intake.WaterIntake = r.WaterIntake.OrDefault(0)
	}
}
