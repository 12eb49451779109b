package services

import (
	"context"
	"log"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/models"
)

// GoalTolerance is the fraction of the calorie target a day must reach to
// count as a goal-reached day (5% under-target tolerance, boundary inclusive).
const GoalTolerance = 0.95

// DailyLogSource is the slice of the document store the aggregator needs.
// Satisfied by *MobileStore; faked in tests.
type DailyLogSource interface {
	Users(ctx context.Context) ([]models.MobileUser, error)
	User(ctx context.Context, userID string) (*models.MobileUser, error)
	UserCaloriesTarget(ctx context.Context, userID string) float64
	UserDailyLogs(ctx context.Context, userID string, limit int) ([]models.DailyLog, error)
	AllUserDailyLogs(ctx context.Context, userID string) ([]models.DailyLog, error)
}

// NutritionStats is derived on demand and never written back to any store.
type NutritionStats struct {
	UserID         string  `json:"user_id"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	CaloriesTarget float64 `json:"calories_target"`

	AvgCalories float64 `json:"avg_calories"`
	AvgProtein  float64 `json:"avg_protein"`
	AvgFat      float64 `json:"avg_fat"`
	AvgCarbs    float64 `json:"avg_carbs"`

	DaysTracked     int     `json:"days_tracked"`
	DaysReachedGoal int     `json:"days_reached_goal"`
	AchievementRate float64 `json:"achievement_rate"`

	Status string `json:"status"`

	// Most recent week of logs, ascending by date, for charting.
	Weekly []models.DailyLog `json:"weekly"`
}

type NutritionService struct {
	source DailyLogSource
}

func NewNutritionService(source DailyLogSource) *NutritionService {
	return &NutritionService{source: source}
}

// UserDailyLogs returns the newest limit logs re-ordered oldest-first.
func (s *NutritionService) UserDailyLogs(ctx context.Context, userID string, limit int) ([]models.DailyLog, error) {
	return s.source.UserDailyLogs(ctx, userID, limit)
}

func (s *NutritionService) AllUserDailyLogs(ctx context.Context, userID string) ([]models.DailyLog, error) {
	return s.source.AllUserDailyLogs(ctx, userID)
}

func (s *NutritionService) UserCaloriesTarget(ctx context.Context, userID string) float64 {
	return s.source.UserCaloriesTarget(ctx, userID)
}

// CalculateStats aggregates every daily log the user has. A day is "tracked"
// only when its calories are positive; a zero-calorie day is treated as not
// logged at all, even if other macros are set. No rounding here, presentation
// formats the numbers.
func (s *NutritionService) CalculateStats(ctx context.Context, userID string) (*NutritionStats, error) {
	logs, err := s.source.AllUserDailyLogs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.statsFromLogs(ctx, userID, logs), nil
}

// statsFromLogs aggregates logs the caller already holds, so batch callers do
// not fetch each user's history twice.
func (s *NutritionService) statsFromLogs(ctx context.Context, userID string, logs []models.DailyLog) *NutritionStats {
	stats := &NutritionStats{UserID: userID, Status: "no data"}

	// Display fields are best effort; a missing user document leaves them blank.
	if user, err := s.source.User(ctx, userID); err == nil {
		stats.FullName = user.FullName
		stats.Email = user.Email
	}

	target := s.source.UserCaloriesTarget(ctx, userID)
	stats.CaloriesTarget = target

	if len(logs) == 0 {
		return stats
	}

	weekly := len(logs)
	if weekly > 7 {
		weekly = 7
	}
	stats.Weekly = logs[len(logs)-weekly:]

	var sumCalories, sumProtein, sumFat, sumCarbs float64
	for _, day := range logs {
		if day.Calories <= 0 {
			continue
		}
		stats.DaysTracked++
		sumCalories += day.Calories
		sumProtein += day.Protein
		sumFat += day.Fat
		sumCarbs += day.Carbs
		if day.Calories >= target*GoalTolerance {
			stats.DaysReachedGoal++
		}
	}

	if stats.DaysTracked > 0 {
		n := float64(stats.DaysTracked)
		stats.AvgCalories = sumCalories / n
		stats.AvgProtein = sumProtein / n
		stats.AvgFat = sumFat / n
		stats.AvgCarbs = sumCarbs / n
		stats.AchievementRate = float64(stats.DaysReachedGoal) * 100 / n
	}

	stats.Status = CaloriesStatus(stats.AvgCalories, target)
	return stats
}

// AllUsersStats computes stats for every mobile user with at least one daily
// log. One user's failure is logged and skipped; the call itself only fails
// when the user listing does.
func (s *NutritionService) AllUsersStats(ctx context.Context) ([]NutritionStats, error) {
	users, err := s.source.Users(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]NutritionStats, 0, len(users))
	for _, user := range users {
		logs, err := s.source.AllUserDailyLogs(ctx, user.UserID)
		if err != nil {
			log.Printf("daily logs for user %s unavailable: %v", user.UserID, err)
			continue
		}
		if len(logs) == 0 {
			continue
		}
		stats = append(stats, *s.statsFromLogs(ctx, user.UserID, logs))
	}
	return stats, nil
}

// CaloriesStatus classifies average intake against the target for display
// coloring. Derived only, never stored.
func CaloriesStatus(avgCalories, target float64) string {
	if avgCalories == 0 {
		return "no data"
	}
	if target <= 0 {
		target = DefaultCaloriesTarget
	}
	switch r := avgCalories / target; {
	case r >= 1.0:
		return "exceeded"
	case r >= 0.9:
		return "near"
	case r >= 0.7:
		return "average"
	default:
		return "under"
	}
}
