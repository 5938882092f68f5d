package jobs

import (
	"context"
	"errors"
	"log/slog"

	"sales/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OutboxRelayer publishes one batch of outbox messages.
type OutboxRelayer interface {
	Handle(ctx context.Context, command commands.RelayOutboxCommand) (int, error)
}

// OutboxRelayJob publishes pending order events every second.
// A tick that is still relaying when the next one fires causes that next tick to be skipped.
type OutboxRelayJob struct {
	handler   OutboxRelayer
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOutboxRelayJob(handler OutboxRelayer, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		handler:   handler,
		batchSize: batchSize,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins relaying every second.
func (j *OutboxRelayJob) Start() error {
	if _, err := commands.NewRelayOutboxCommand(j.batchSize); err != nil {
		return err
	}

	_, err := j.cron.AddFunc("* * * * * *", func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)", "batch_size", j.batchSize)
	return nil
}

// RunOnce relays a single batch. An empty outbox is not an error.
func (j *OutboxRelayJob) RunOnce(ctx context.Context) {
	cmd, err := commands.NewRelayOutboxCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return
	}

	relayed, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		if !errors.Is(err, commands.ErrNoOutboxMessages) {
			j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		}
		return
	}

	j.logger.DebugContext(ctx, "Outbox messages relayed", "count", relayed)
}

// Stop waits for a running relay to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}
