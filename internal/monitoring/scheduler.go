package monitoring

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/campusconnect/portal-be/internal/models"
	"github.com/campusconnect/portal-be/internal/services"
	ws "github.com/campusconnect/portal-be/internal/websocket"
)

// Scheduler checks for and fires due scheduled announcements.
type Scheduler struct {
	scheduleSvc services.ScheduleServiceProvider
	eventSvc    services.EventServiceProvider
	hub         *ws.Hub
	ticker      *time.Ticker
	done        chan bool
}

// NewScheduler creates a new scheduler instance. The hub may be nil when the
// broadcast module is disabled; due announcements are then only recorded in
// the activity log.
func NewScheduler(scheduleSvc services.ScheduleServiceProvider, eventSvc services.EventServiceProvider, hub *ws.Hub) *Scheduler {
	return &Scheduler{
		scheduleSvc: scheduleSvc,
		eventSvc:    eventSvc,
		hub:         hub,
		done:        make(chan bool),
	}
}

// Run starts the scheduler's ticking loop.
func (s *Scheduler) Run() {
	log.Info().Msg("Starting background scheduler...")
	s.ticker = time.NewTicker(1 * time.Minute)
	defer s.ticker.Stop()

	// Run once immediately on start
	s.checkAndRunSchedules()

	for {
		select {
		case <-s.done:
			log.Info().Msg("Stopping background scheduler.")
			return
		case <-s.ticker.C:
			s.checkAndRunSchedules()
		}
	}
}

// Stop halts the scheduler.
func (s *Scheduler) Stop() {
	s.done <- true
}

// checkAndRunSchedules queries for due announcements and broadcasts them.
func (s *Scheduler) checkAndRunSchedules() {
	schedules, err := s.scheduleSvc.GetAllActiveSchedules()
	if err != nil {
		log.Error().Err(err).Msg("Scheduler: failed to retrieve active schedules")
		return
	}

	for _, schedule := range schedules {
		cronSchedule, err := cron.ParseStandard(schedule.CronExpression)
		if err != nil {
			log.Error().Err(err).Str("schedule_id", schedule.ID).Msg("Scheduler: invalid cron expression")
			continue
		}

		now := time.Now()
		// If NextRunAt is in the past, it's time to run
		if schedule.NextRunAt != nil && now.After(*schedule.NextRunAt) {
			s.fire(schedule)

			lastRun := now
			nextRun := cronSchedule.Next(now)
			if err := s.scheduleSvc.UpdateScheduleRunTimes(schedule.ID, lastRun, nextRun); err != nil {
				log.Error().Err(err).Str("schedule_id", schedule.ID).Msg("Scheduler: failed to update run times")
			}
		}
	}
}

// fire broadcasts the schedule's announcement and records it.
func (s *Scheduler) fire(schedule models.Schedule) {
	log.Info().Str("schedule_id", schedule.ID).Str("name", schedule.Name).Msg("Scheduler: firing announcement")

	if s.hub != nil {
		s.hub.Broadcast <- ws.NewAnnouncementMessage(schedule.Message)
	}

	msg := fmt.Sprintf("Scheduled announcement '%s' sent.", schedule.Name)
	if err := s.eventSvc.Record("schedule.fired", "info", msg); err != nil {
		log.Error().Err(err).Str("schedule_id", schedule.ID).Msg("Scheduler: failed to record event")
	}
}
