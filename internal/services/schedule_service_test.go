package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campusconnect/portal-be/internal/models"
)

func TestScheduleService_Create(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewScheduleService(db, NewEventService(db))

	schedule, err := svc.CreateSchedule(models.Schedule{
		Name:           "morning menu",
		CronExpression: "0 8 * * *",
		Message:        "Breakfast is served",
		IsActive:       true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, schedule.ID)
	require.NotNil(t, schedule.NextRunAt)
	require.True(t, schedule.NextRunAt.After(time.Now()))
	require.Nil(t, schedule.LastRunAt)
}

func TestScheduleService_Create_InvalidCron(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewScheduleService(db, NewEventService(db))

	_, err := svc.CreateSchedule(models.Schedule{
		Name:           "bad",
		CronExpression: "not a cron",
		Message:        "x",
		IsActive:       true,
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid cron expression")
}

func TestScheduleService_UpdateRunTimes(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewScheduleService(db, NewEventService(db))

	schedule, err := svc.CreateSchedule(models.Schedule{
		Name:           "hourly",
		CronExpression: "@hourly",
		Message:        "tick",
		IsActive:       true,
	})
	require.NoError(t, err)

	lastRun := time.Now().Truncate(time.Second)
	nextRun := lastRun.Add(time.Hour)
	require.NoError(t, svc.UpdateScheduleRunTimes(schedule.ID, lastRun, nextRun))

	updated, err := svc.GetScheduleByID(schedule.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastRunAt)
	require.NotNil(t, updated.NextRunAt)
}

func TestScheduleService_ActiveFilter(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewScheduleService(db, NewEventService(db))

	_, err := svc.CreateSchedule(models.Schedule{Name: "on", CronExpression: "@daily", Message: "a", IsActive: true})
	require.NoError(t, err)
	_, err = svc.CreateSchedule(models.Schedule{Name: "off", CronExpression: "@daily", Message: "b", IsActive: false})
	require.NoError(t, err)

	all, err := svc.GetAllSchedules()
	require.NoError(t, err)
	require.Len(t, all, 2)

	active, err := svc.GetAllActiveSchedules()
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, "on", active[0].Name)
}
