package appointment

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func newRepo(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), wrapped, mock
}

func appointmentRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func TestCreate(t *testing.T) {
	repo, _, mock := newRepo(t)
	now := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO appointments (id,company_id,appointment_date,start_time,resource_id,status,customer_name,notes) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING created_at, updated_at")).
		WithArgs(sqlmock.AnyArg(), int64(7), "2024-06-20", "10:00", "bay-1", "confirmed", "Иван", nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	appt, err := repo.Create(context.Background(), &domain.Appointment{
		CompanyID:    7,
		Date:         types.MustCivilDate(2024, 6, 20),
		StartTime:    "10:00",
		ResourceID:   ptr.Ptr("bay-1"),
		Status:       domain.StatusConfirmed,
		CustomerName: "Иван",
	})

	require.NoError(t, err)
	assert.Len(t, appt.ID, 36)
	assert.Equal(t, now, appt.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO appointments").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "appointments_active_slot_uniq"})

	_, err := repo.Create(context.Background(), &domain.Appointment{
		ID:        "a1",
		CompanyID: 1,
		Date:      types.MustCivilDate(2024, 6, 20),
		StartTime: "10:00",
		Status:    domain.StatusConfirmed,
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreate_SerializationFailureKeepsDriverError(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO appointments").WillReturnError(&pq.Error{Code: "40001"})

	_, err := repo.Create(context.Background(), &domain.Appointment{
		ID:        "a1",
		CompanyID: 1,
		Date:      types.MustCivilDate(2024, 6, 20),
		StartTime: "10:00",
		Status:    domain.StatusConfirmed,
	})

	assert.ErrorIs(t, err, ErrExecQuery)
	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestGetByID(t *testing.T) {
	repo, _, mock := newRepo(t)
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM appointments WHERE id = $1")).
		WithArgs("a1").
		WillReturnRows(appointmentRows().AddRow(
			"a1", int64(3), time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), "10:30:00", nil,
			"pending", "Пётр", "шумоизоляция", nil, nil, created, created,
		))

	appt, err := repo.GetByID(context.Background(), "a1")
	require.NoError(t, err)

	assert.Equal(t, int64(3), appt.CompanyID)
	assert.Equal(t, types.MustCivilDate(2024, 6, 20), appt.Date)
	assert.Equal(t, types.TimeString("10:30"), appt.StartTime)
	assert.Nil(t, appt.ResourceID)
	assert.Equal(t, domain.StatusPending, appt.Status)
	require.NotNil(t, appt.Notes)
	assert.Equal(t, "шумоизоляция", *appt.Notes)
	assert.Nil(t, appt.CancelledAt)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("FROM appointments").WillReturnRows(appointmentRows())

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_Filters(t *testing.T) {
	repo, _, mock := newRepo(t)
	start := types.MustCivilDate(2024, 6, 1)
	end := types.MustCivilDate(2024, 6, 30)

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE company_id = $1 AND appointment_date >= $2 AND appointment_date <= $3 AND resource_id = $4 AND status <> $5 ORDER BY appointment_date DESC, start_time DESC")).
		WithArgs(int64(1), "2024-06-01", "2024-06-30", "bay-2", "cancelled").
		WillReturnRows(appointmentRows())

	list, err := repo.List(context.Background(), domain.AppointmentsFilter{
		CompanyID:  1,
		StartDate:  &start,
		EndDate:    &end,
		ResourceID: ptr.Ptr("bay-2"),
	})

	require.NoError(t, err)
	assert.Empty(t, list)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_StatusOverridesCancelledExclusion(t *testing.T) {
	repo, _, mock := newRepo(t)
	status := domain.StatusCancelled

	mock.ExpectQuery(regexp.QuoteMeta("WHERE company_id = $1 AND status = $2 ORDER BY")).
		WithArgs(int64(1), "cancelled").
		WillReturnRows(appointmentRows())

	_, err := repo.List(context.Background(), domain.AppointmentsFilter{CompanyID: 1, Status: &status})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveByDate_LocksInsideTransaction(t *testing.T) {
	repo, db, mock := newRepo(t)
	date := types.MustCivilDate(2024, 6, 20)
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY start_time ASC, created_at ASC FOR UPDATE")).
		WithArgs(int64(1), "2024-06-20", "2024-06-20", "cancelled").
		WillReturnRows(appointmentRows().
			AddRow("a1", int64(1), "2024-06-20", "09:00:00", "bay-1", "confirmed", "A", nil, nil, nil, created, created).
			AddRow("a2", int64(1), "2024-06-20", "09:30:00", nil, "pending", "B", nil, nil, nil, created, created))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	list, err := repo.ListActiveByDate(ctx, 1, date)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	require.Len(t, list, 2)
	assert.Equal(t, "bay-1", *list[0].ResourceID)
	assert.Equal(t, types.TimeString("09:30"), list[1].StartTime)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListActiveByDate_NoLockOutsideTransaction(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`ORDER BY start_time ASC, created_at ASC$`).WillReturnRows(appointmentRows())

	_, err := repo.ListActiveByDate(context.Background(), 1, types.MustCivilDate(2024, 6, 20))
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReschedule(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET appointment_date = $1, start_time = $2, resource_id = $3, updated_at = NOW() WHERE id = $4")).
		WithArgs("2024-06-21", "11:00", nil, "a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Reschedule(context.Background(), "a1", types.MustCivilDate(2024, 6, 21), "11:00", nil)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReschedule_Errors(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec("UPDATE appointments").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE appointments").WillReturnError(&pq.Error{Code: "23505"})

	err := repo.Reschedule(context.Background(), "missing", types.MustCivilDate(2024, 6, 21), "11:00", nil)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	err = repo.Reschedule(context.Background(), "a1", types.MustCivilDate(2024, 6, 21), "11:00", nil)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestUpdateStatus(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET status = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs("completed", "a1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), "a1", domain.StatusCompleted))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE appointments SET status = $1, cancellation_reason = $2, cancelled_at = NOW(), updated_at = NOW() WHERE id = $3")).
		WithArgs("cancelled", "клиент заболел", "a1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE appointments").WillReturnError(errors.New("connection reset"))

	require.NoError(t, repo.Cancel(context.Background(), "a1", ptr.Ptr("клиент заболел")))

	err := repo.Cancel(context.Background(), "a2", nil)
	assert.ErrorIs(t, err, ErrExecQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}
