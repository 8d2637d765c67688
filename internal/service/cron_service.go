package service

import (
	"context"
	"time"

	"github.com/civicstack/cityportal/internal/config"
	"github.com/civicstack/cityportal/pkg/utils/zaplogger"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// CronService owns the background jobs that keep cached city data warm
type CronService struct {
	cfg         *config.Config
	redisClient *redis.Client
	c           *cron.Cron
	cityService *CityService
}

// NewCronService creates a new CronService
func NewCronService(cfg *config.Config, redisClient *redis.Client, cityService *CityService) *CronService {
	return &CronService{
		cfg:         cfg,
		redisClient: redisClient,
		c:           cron.New(),
		cityService: cityService,
	}
}

// Start starts the cron service
func (cs *CronService) Start() {
	zaplogger.Info("Initializing CronService")

	// ------------------------------------------------------------
	// SCHEDULED jobs
	// ------------------------------------------------------------
	cs.addScheduledJob("Traffic Snapshot REFRESH Job", cs.trafficRefreshJob, "*/5 * * * *") // every 5 minutes

	// ------------------------------------------------------------
	// STARTUP jobs
	// ------------------------------------------------------------
	cs.addStartupJob("Traffic Snapshot WARMUP Job", cs.trafficRefreshJob, 2*time.Second)

	cs.c.Start()
}

// Stop stops the cron service
func (cs *CronService) Stop() {
	cs.c.Stop()
}

// addStartupJob adds a startup job to the cron service
func (cs *CronService) addStartupJob(name string, job func(), delay time.Duration) {
	go func() {
		time.Sleep(delay)
		zaplogger.Info("STARTED STARTUP job", zaplogger.Fields{
			"job": name,
		})
		job()
		zaplogger.Info("COMPLETED STARTUP job", zaplogger.Fields{
			"job": name,
		})
	}()
	zaplogger.Info("QUEUED STARTUP job", zaplogger.Fields{
		"job": name,
	})
}

func (cs *CronService) addScheduledJob(name string, job func(), schedule string) {
	_, err := cs.c.AddFunc(schedule, func() {
		zaplogger.Info("STARTED SCHEDULED JOB", zaplogger.Fields{
			"job": name,
		})
		job()
		zaplogger.Info("COMPLETED SCHEDULED JOB", zaplogger.Fields{
			"job": name,
		})
	})
	if err != nil {
		zaplogger.Error("FAILED TO QUEUE SCHEDULED JOB", zaplogger.Fields{
			"job":   name,
			"error": err.Error(),
		})
		return
	}
	zaplogger.Info("QUEUED SCHEDULED job", zaplogger.Fields{
		"job": name,
	})
}

// trafficRefreshJob recomputes the traffic snapshot and rewrites the cache
func (cs *CronService) trafficRefreshJob() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := cs.cityService.RefreshTraffic(ctx); err != nil {
		zaplogger.Error("traffic snapshot refresh failed", zaplogger.Fields{
			"error": err.Error(),
		})
	}
}
