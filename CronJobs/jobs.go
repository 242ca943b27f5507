package CronJobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"Sanle/DocStore"
)

// HealthProbe periodically pings the document store while it is in the
// degraded state so reads can switch back before the cooldown elapses.
type HealthProbe struct {
	cronScheduler *cron.Cron
	store         *DocStore.Store
	timeout       time.Duration
	jobID         cron.EntryID
}

// NewHealthProbe creates a probe for the given store.
func NewHealthProbe(store *DocStore.Store) *HealthProbe {
	return &HealthProbe{
		cronScheduler: cron.New(cron.WithSeconds()),
		store:         store,
		timeout:       10 * time.Second,
	}
}

// Start schedules the probe to run every five minutes.
func (p *HealthProbe) Start() error {
	var err error
	p.jobID, err = p.cronScheduler.AddFunc("0 */5 * * * *", func() {
		p.runProbe()
	})

	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	p.cronScheduler.Start()
	log.Println("Document store health probe started - will run every 5 minutes")
	return nil
}

// Stop terminates the probe scheduler.
func (p *HealthProbe) Stop() {
	if p.cronScheduler != nil {
		p.cronScheduler.Stop()
		log.Println("Document store health probe stopped")
	}
}

// UpdateSchedule changes the probe interval.
// Format: "0 */5 * * * *" = every five minutes.
func (p *HealthProbe) UpdateSchedule(schedule string) error {
	p.cronScheduler.Remove(p.jobID)

	var err error
	p.jobID, err = p.cronScheduler.AddFunc(schedule, func() {
		p.runProbe()
	})

	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}

	log.Printf("Health probe schedule updated to: %s\n", schedule)
	return nil
}

// RunManualProbe executes a probe outside the schedule.
func (p *HealthProbe) RunManualProbe() {
	log.Println("Running manual document store probe")
	p.runProbe()
}

func (p *HealthProbe) runProbe() {
	if p.store == nil || !p.store.Breaker.Degraded() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.store.Ping(ctx); err != nil {
		log.Printf("Document store still unreachable: %v\n", err)
		return
	}

	p.store.Breaker.Reset()
	log.Println("Document store reachable again, resuming mirrored reads")
}
