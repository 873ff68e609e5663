package services

import (
	"log"

	"github.com/robfig/cron/v3"
)

// StartScheduler wires the background maintenance jobs: GDPR request
// processing every five minutes and the audit retention sweep nightly.
func StartScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("*/5 * * * *", func() {
		ProcessPendingExports()
		ProcessPendingDeletions()
	}); err != nil {
		log.Printf("scheduler: failed to register gdpr worker: %v", err)
	}

	if _, err := c.AddFunc("30 3 * * *", SweepExpiredAuditLogs); err != nil {
		log.Printf("scheduler: failed to register audit sweep: %v", err)
	}

	c.Start()
	return c
}
