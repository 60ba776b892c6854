package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// dispatchBatchSize limits how many pending messages one tick drains.
const dispatchBatchSize = 100

// OutboxDispatchJob drains the transactional outbox into the message broker.
// State changes enqueue their notifications in the same database transaction;
// this job is the only component that talks to the broker, so a broker outage
// delays notifications without failing any order operation.
type OutboxDispatchJob struct {
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.MessagePublisher
	schedule   string
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOutboxDispatchJob creates the dispatch job with a cron schedule using
// second granularity, for example "*/5 * * * * *".
func NewOutboxDispatchJob(
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.MessagePublisher,
	schedule string,
	logger *slog.Logger,
) *OutboxDispatchJob {
	return &OutboxDispatchJob{
		uowFactory: uowFactory,
		publisher:  publisher,
		schedule:   schedule,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "outbox_dispatch_job"),
	}
}

// Start begins draining the outbox on the configured schedule.
func (j *OutboxDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.drain(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox drain failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox dispatch job started", "schedule", j.schedule)
	return nil
}

// Stop stops the outbox dispatch job.
func (j *OutboxDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox dispatch job stopped")
}

// drain publishes one batch of pending messages, oldest first. Messages that
// fail to publish stay pending and retry on the next tick; a message is
// marked published only after the broker acknowledged it, so delivery is
// at-least-once.
func (j *OutboxDispatchJob) drain(ctx context.Context) error {
	uow := j.uowFactory.Create()
	outboxRepo := uow.OutboxRepository()

	pending, err := outboxRepo.GetPending(ctx, dispatchBatchSize)
	if err != nil {
		return err
	}

	for _, message := range pending {
		publishErr := j.publisher.Publish(ctx, message.Topic(), message.Key(), message.Payload())
		if publishErr != nil {
			metrics.OutboxPublishFailuresTotal.Inc()
			j.logger.WarnContext(ctx, "Outbox publish failed, will retry",
				"message_id", message.ID().String(),
				"topic", message.Topic(),
				"error", publishErr)
			continue
		}

		message.MarkPublished(time.Now().UTC())
		if updateErr := outboxRepo.Update(ctx, message); updateErr != nil {
			return updateErr
		}
		metrics.OutboxPublishedTotal.Inc()
	}

	return nil
}
