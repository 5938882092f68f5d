// Package jobs provides scheduled background tasks for the sales service.
//
// Jobs are cron-based, using github.com/robfig/cron/v3 with second precision.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to publish order status events written to the
// outbox by confirm and deliver, then marks them published
//
// # Usage
//
//	jobManager := jobs.NewJobManager(relayHandler, cfg.OutboxBatchSize, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// An empty outbox is expected and not logged. Publishing failures are logged and the
// batch stays unpublished, so the next tick retries it. Consumers must tolerate duplicates.
package jobs
