package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/NguyenHoangLe0701/NutriCook-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogSource struct {
	users    []models.MobileUser
	logs     map[string][]models.DailyLog // ascending by date
	targets  map[string]float64
	usersErr error
	logsErr  map[string]error

	logFetches int
}

func (f *fakeLogSource) Users(ctx context.Context) ([]models.MobileUser, error) {
	return f.users, f.usersErr
}

func (f *fakeLogSource) User(ctx context.Context, userID string) (*models.MobileUser, error) {
	for _, u := range f.users {
		if u.UserID == userID {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%w: mobile user %q", ErrNotFound, userID)
}

func (f *fakeLogSource) UserCaloriesTarget(ctx context.Context, userID string) float64 {
	if t, ok := f.targets[userID]; ok {
		return t
	}
	return DefaultCaloriesTarget
}

func (f *fakeLogSource) UserDailyLogs(ctx context.Context, userID string, limit int) ([]models.DailyLog, error) {
	logs, err := f.AllUserDailyLogs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(logs) > limit {
		logs = logs[len(logs)-limit:]
	}
	return logs, nil
}

func (f *fakeLogSource) AllUserDailyLogs(ctx context.Context, userID string) ([]models.DailyLog, error) {
	f.logFetches++
	if userID == "" {
		return nil, nil
	}
	if err := f.logsErr[userID]; err != nil {
		return nil, err
	}
	return f.logs[userID], nil
}

func weekOfLogs(calories ...float64) []models.DailyLog {
	logs := make([]models.DailyLog, len(calories))
	for i, cal := range calories {
		logs[i] = models.DailyLog{
			Date:     fmt.Sprintf("2025-01-%02d", i+1),
			Calories: cal,
			Protein:  cal / 20,
			Fat:      cal / 30,
			Carbs:    cal / 10,
		}
	}
	return logs
}

func TestCalculateStatsTypicalWeek(t *testing.T) {
	source := &fakeLogSource{
		users:   []models.MobileUser{{UserID: "u1", FullName: "An Nguyen", Email: "an@example.com"}},
		logs:    map[string][]models.DailyLog{"u1": weekOfLogs(1800, 0, 2100, 1900, 2200, 1850, 2000)},
		targets: map[string]float64{"u1": 2000},
	}
	svc := NewNutritionService(source)

	stats, err := svc.CalculateStats(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, "An Nguyen", stats.FullName)
	assert.Equal(t, "an@example.com", stats.Email)
	assert.Equal(t, 2000.0, stats.CaloriesTarget)

	// The zero-calorie day is not tracked.
	assert.Equal(t, 6, stats.DaysTracked)
	// Days at or above 1900 (= 2000 * 0.95): 2100, 1900, 2200, 2000.
	assert.Equal(t, 4, stats.DaysReachedGoal)
	assert.InDelta(t, 400.0/6.0, stats.AchievementRate, 1e-9)

	// Average bounded by the tracked days' extremes.
	assert.GreaterOrEqual(t, stats.AvgCalories, 1800.0)
	assert.LessOrEqual(t, stats.AvgCalories, 2200.0)
	assert.InDelta(t, (1800+2100+1900+2200+1850+2000)/6.0, stats.AvgCalories, 1e-9)

	// Weekly window keeps the most recent seven entries, oldest first.
	require.Len(t, stats.Weekly, 7)
	assert.Equal(t, "2025-01-01", stats.Weekly[0].Date)
	assert.Equal(t, "2025-01-07", stats.Weekly[6].Date)
}

func TestCalculateStatsGoalBoundaryInclusive(t *testing.T) {
	source := &fakeLogSource{
		logs: map[string][]models.DailyLog{
			"u1": weekOfLogs(1900, 1899.999),
		},
		targets: map[string]float64{"u1": 2000},
	}
	svc := NewNutritionService(source)

	stats, err := svc.CalculateStats(context.Background(), "u1")
	require.NoError(t, err)

	// Exactly 95% of target reaches the goal; just under does not.
	assert.Equal(t, 2, stats.DaysTracked)
	assert.Equal(t, 1, stats.DaysReachedGoal)
	assert.InDelta(t, 50.0, stats.AchievementRate, 1e-9)
}

func TestCalculateStatsNoLogs(t *testing.T) {
	source := &fakeLogSource{logs: map[string][]models.DailyLog{}}
	svc := NewNutritionService(source)

	stats, err := svc.CalculateStats(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.DaysTracked)
	assert.Equal(t, 0, stats.DaysReachedGoal)
	assert.Zero(t, stats.AvgCalories)
	assert.Zero(t, stats.AchievementRate)
	assert.Equal(t, "no data", stats.Status)
	assert.Empty(t, stats.Weekly)
}

func TestCalculateStatsZeroCalorieDaysNotTracked(t *testing.T) {
	// Zero calories means "not tracked" even when other macros are present.
	logs := []models.DailyLog{
		{Date: "2025-02-01", Calories: 0, Protein: 80, Fat: 40, Carbs: 200},
		{Date: "2025-02-02", Calories: 0, Protein: 90, Fat: 35, Carbs: 180},
	}
	source := &fakeLogSource{logs: map[string][]models.DailyLog{"u1": logs}}
	svc := NewNutritionService(source)

	stats, err := svc.CalculateStats(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.DaysTracked)
	assert.Zero(t, stats.AvgCalories)
	assert.Zero(t, stats.AvgProtein)
	assert.Zero(t, stats.AchievementRate)
	// Logs exist, so the weekly window is still populated for charting.
	assert.Len(t, stats.Weekly, 2)
}

func TestCalculateStatsDefaultTarget(t *testing.T) {
	source := &fakeLogSource{logs: map[string][]models.DailyLog{"u1": weekOfLogs(1900)}}
	svc := NewNutritionService(source)

	stats, err := svc.CalculateStats(context.Background(), "u1")
	require.NoError(t, err)

	assert.Equal(t, DefaultCaloriesTarget, stats.CaloriesTarget)
	// 1900 == 2000 * 0.95, so the default target still counts it.
	assert.Equal(t, 1, stats.DaysReachedGoal)
}

func TestUserDailyLogsLimitAndOrder(t *testing.T) {
	source := &fakeLogSource{
		logs: map[string][]models.DailyLog{
			"u1": weekOfLogs(1500, 1600, 1700, 1800, 1900, 2000, 2100, 2200, 2300, 2400),
		},
	}
	svc := NewNutritionService(source)

	logs, err := svc.UserDailyLogs(context.Background(), "u1", 5)
	require.NoError(t, err)

	// At most limit entries, drawn from the newest dates, ascending.
	require.Len(t, logs, 5)
	assert.Equal(t, "2025-01-06", logs[0].Date)
	assert.Equal(t, "2025-01-10", logs[4].Date)
	for i := 1; i < len(logs); i++ {
		assert.Less(t, logs[i-1].Date, logs[i].Date)
	}
}

func TestUserDailyLogsEmptyUserID(t *testing.T) {
	svc := NewNutritionService(&fakeLogSource{})

	logs, err := svc.UserDailyLogs(context.Background(), "", 7)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestAllUsersStatsSkipsFailingUsers(t *testing.T) {
	source := &fakeLogSource{
		users: []models.MobileUser{
			{UserID: "u1"},
			{UserID: "u2"},
			{UserID: "u3"},
			{UserID: "u4"},
		},
		logs: map[string][]models.DailyLog{
			"u1": weekOfLogs(2000, 2100),
			"u2": weekOfLogs(1500),
			// u3 has no logs at all.
		},
		logsErr: map[string]error{"u4": fmt.Errorf("%w: store down", ErrUnavailable)},
	}
	svc := NewNutritionService(source)

	stats, err := svc.AllUsersStats(context.Background())
	require.NoError(t, err)

	// u3 (no logs) and u4 (store failure) are skipped, the call succeeds.
	require.Len(t, stats, 2)
	assert.Equal(t, "u1", stats[0].UserID)
	assert.Equal(t, "u2", stats[1].UserID)
}

func TestAllUsersStatsFetchesEachHistoryOnce(t *testing.T) {
	source := &fakeLogSource{
		users: []models.MobileUser{{UserID: "u1"}, {UserID: "u2"}},
		logs: map[string][]models.DailyLog{
			"u1": weekOfLogs(2000),
			"u2": weekOfLogs(1500, 1600),
		},
	}
	svc := NewNutritionService(source)

	stats, err := svc.AllUsersStats(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// One history read per user, reused for the aggregation.
	assert.Equal(t, 2, source.logFetches)
}

func TestAllUsersStatsListingFailurePropagates(t *testing.T) {
	source := &fakeLogSource{usersErr: fmt.Errorf("%w: store down", ErrUnavailable)}
	svc := NewNutritionService(source)

	_, err := svc.AllUsersStats(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCaloriesStatus(t *testing.T) {
	cases := []struct {
		avg, target float64
		want        string
	}{
		{0, 2000, "no data"},
		{2000, 2000, "exceeded"},
		{2500, 2000, "exceeded"},
		{1800, 2000, "near"},
		{1999, 2000, "near"},
		{1400, 2000, "average"},
		{1799, 2000, "average"},
		{1399, 2000, "under"},
		{500, 2000, "under"},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, CaloriesStatus(tc.avg, tc.target), "avg=%v target=%v", tc.avg, tc.target)
	}
}
