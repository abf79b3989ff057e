package schedule

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(dbmetrics.Wrap(db, nil)), mock
}

func TestGetConfig(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT company_id, slot_interval_minutes, max_advance_days, resource_scoped, created_at, updated_at FROM schedule_configs WHERE company_id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"company_id", "slot_interval_minutes", "max_advance_days", "resource_scoped", "created_at", "updated_at"}).
			AddRow(int64(5), 45, 60, true, now, now))

	cfg, err := repo.GetConfig(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, 45, cfg.SlotIntervalMinutes)
	assert.Equal(t, 60, cfg.MaxAdvanceDays)
	assert.True(t, cfg.ResourceScoped)
}

func TestGetConfig_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM schedule_configs").
		WillReturnRows(sqlmock.NewRows([]string{"company_id"}))

	_, err := repo.GetConfig(context.Background(), 5)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestUpsertConfig(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO schedule_configs (company_id,slot_interval_minutes,max_advance_days,resource_scoped) VALUES ($1,$2,$3,$4) ON CONFLICT (company_id) DO UPDATE")).
		WithArgs(int64(5), 20, 90, false).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	cfg, err := repo.UpsertConfig(context.Background(), &domain.ScheduleConfig{
		CompanyID:           5,
		SlotIntervalMinutes: 20,
		MaxAdvanceDays:      90,
	})
	require.NoError(t, err)
	assert.Equal(t, now, cfg.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWeeklySchedule(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM working_hours WHERE company_id = $1 ORDER BY weekday ASC")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"weekday", "is_open", "opens_at", "closes_at"}).
			AddRow(0, false, nil, nil).
			AddRow(1, true, "08:00:00", "20:00:00").
			AddRow(6, true, "10:00:00", "16:00:00"))

	schedule, err := repo.GetWeeklySchedule(context.Background(), 5)
	require.NoError(t, err)

	require.NotNil(t, schedule[0])
	assert.False(t, schedule[0].IsOpen)
	require.NotNil(t, schedule[1])
	assert.Equal(t, "08:00", schedule[1].OpensAt.String())
	assert.Equal(t, "20:00", schedule[1].ClosesAt.String())
	assert.Nil(t, schedule[2])
	assert.Equal(t, "16:00", schedule[6].ClosesAt.String())
}

func TestGetWeeklySchedule_InvalidWeekday(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM working_hours").
		WillReturnRows(sqlmock.NewRows([]string{"weekday", "is_open", "opens_at", "closes_at"}).
			AddRow(9, true, "08:00:00", "20:00:00"))

	_, err := repo.GetWeeklySchedule(context.Background(), 5)
	assert.ErrorIs(t, err, ErrScanRow)
}

func TestReplaceWorkingHours(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM working_hours WHERE company_id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 7))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO working_hours (company_id,weekday,is_open,opens_at,closes_at) VALUES ($1,$2,$3,$4,$5),($6,$7,$8,$9,$10)")).
		WithArgs(int64(5), 0, false, nil, nil, int64(5), 1, true, "09:00", "18:00").
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.ReplaceWorkingHours(context.Background(), 5, []*domain.WorkingHoursRule{
		{Weekday: 0, IsOpen: false},
		{Weekday: 1, IsOpen: true, OpensAt: "09:00", ClosesAt: "18:00"},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceWorkingHours_Empty(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec("DELETE FROM working_hours").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.ReplaceWorkingHours(context.Background(), 5, nil))
	require.NoError(t, mock.ExpectationsWereMet())
}
