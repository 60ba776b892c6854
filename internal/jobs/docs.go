// Package jobs provides scheduled background tasks for the fulfillment engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the fulfillment service.
//
// # Available Jobs
//
// 1. OutboxDispatchJob - Drains pending outbox messages to the Kafka broker
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the unit of work factory and publisher
//	jobManager := jobs.NewJobManager(uowFactory, publisher, "*/5 * * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatch job uses a second-granularity cron expression, "*/5 * * * * *"
// by default. Notifications are therefore near real time without coupling
// order operations to broker availability.
//
// # Error Handling
//
// - A failed publish leaves the message pending and retries on the next tick
// - Messages are marked published only after broker acknowledgement, so
//   consumers must tolerate duplicates
// - Failed job starts will stop any already running jobs
package jobs
