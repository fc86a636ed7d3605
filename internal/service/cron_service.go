package service

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/syntaxkim/project1/internal/config"
	"github.com/syntaxkim/project1/pkg/utils/zaplogger"
	"gorm.io/gorm"
)

// CronService runs the background jobs: the location reference-data import
// at startup and once a day.
type CronService struct {
	cfg           *config.Config
	c             *cron.Cron
	importService *ImportService
}

// NewCronService creates a new CronService
func NewCronService(cfg *config.Config, db *gorm.DB) *CronService {
	var importService *ImportService
	if cfg.LocationsCsvPath != "" {
		importService = NewImportService(db, cfg.LocationsCsvPath)
	}

	return &CronService{
		cfg:           cfg,
		c:             cron.New(),
		importService: importService,
	}
}

// Start queues the jobs and starts the scheduler.
func (cs *CronService) Start() {
	zaplogger.Info("Initializing CronService")

	if cs.importService == nil {
		zaplogger.Info("  * no locations csv configured, import job disabled")
		return
	}

	cs.addScheduledJob("Locations UPDATE Job", cs.locationsUpdateJob, "0 5 * * *") // Once at 05:00am daily
	cs.addStartupJob("Locations UPDATE Job", cs.locationsUpdateJob, 1*time.Second)

	cs.c.Start()
}

// addStartupJob adds a startup job to the cron service
func (cs *CronService) addStartupJob(name string, job func(), delay time.Duration) {
	go func() {
		time.Sleep(delay)
		zaplogger.Info("STARTED STARTUP job", zaplogger.Fields{"job": name})
		job()
		zaplogger.Info("COMPLETED STARTUP job", zaplogger.Fields{"job": name})
	}()
	zaplogger.Info("QUEUED STARTUP job", zaplogger.Fields{"job": name})
}

// addScheduledJob adds a scheduled job to the cron service
func (cs *CronService) addScheduledJob(name string, job func(), schedule string) {
	_, err := cs.c.AddFunc(schedule, func() {
		zaplogger.Info("STARTED SCHEDULED job", zaplogger.Fields{"job": name})
		job()
		zaplogger.Info("COMPLETED SCHEDULED job", zaplogger.Fields{"job": name})
	})
	if err != nil {
		zaplogger.Error("FAILED TO QUEUE SCHEDULED job", zaplogger.Fields{
			"job":   name,
			"error": err.Error(),
		})
		return
	}
	zaplogger.Info("QUEUED SCHEDULED job", zaplogger.Fields{"job": name})
}

func (cs *CronService) locationsUpdateJob() {
	totalInserted, err := cs.importService.UpdateLocations()
	if err != nil {
		zaplogger.Error("Locations UPDATE Job failed", zaplogger.Fields{"error": err.Error()})
		return
	}
	if totalInserted > 0 {
		zaplogger.Info("Locations UPDATE Job inserted rows", zaplogger.Fields{
			"totalInserted": totalInserted,
		})
	}
}
