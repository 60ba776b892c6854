package cmd

import (
	"log/slog"

	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  *kafka.Publisher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  kafka.NewPublisher(config.KafkaBrokers),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateRegisterOrderCommandHandler() commands.RegisterOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRequestTransitionCommandHandler() commands.RequestTransitionCommandHandler {
	var f commands.TransitionUoWFactory = FuncTransitionUoWFactory(func() commands.TransitionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRequestTransitionCommandHandler(f)
}

func (c *CompositionRoot) CreateBuildChecklistCommandHandler() commands.BuildChecklistCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBuildChecklistCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordScanCommandHandler() commands.RecordScanCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordScanCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateReassignDeliveryCommandHandler() commands.ReassignDeliveryCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReassignDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordCollectionCommandHandler() commands.RecordCollectionCommandHandler {
	var f commands.CollectionUoWFactory = FuncCollectionUoWFactory(func() commands.CollectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordCollectionCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmCollectionCommandHandler() commands.ConfirmCollectionCommandHandler {
	var f commands.CollectionUoWFactory = FuncCollectionUoWFactory(func() commands.CollectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmCollectionCommandHandler(f)
}

func (c *CompositionRoot) CreateCloseCollectionCommandHandler() commands.CloseCollectionCommandHandler {
	var f commands.CollectionUoWFactory = FuncCollectionUoWFactory(func() commands.CollectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseCollectionCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderProgressQueryHandler() queries.GetOrderProgressQueryHandler {
	return queries.NewGetOrderProgressQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMessengerCandidatesQueryHandler() queries.GetMessengerCandidatesQueryHandler {
	return queries.NewGetMessengerCandidatesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMessengerBalanceQueryHandler() queries.GetMessengerBalanceQueryHandler {
	return queries.NewGetMessengerBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingCollectionsQueryHandler() queries.GetPendingCollectionsQueryHandler {
	return queries.NewGetPendingCollectionsQueryHandler(c.gormDB)
}

// CreateJobManager wires the outbox dispatch job to the broker publisher.
func (c *CompositionRoot) CreateJobManager(config Config) *jobs.JobManager {
	return jobs.NewJobManager(&c.uowFactory, c.publisher, config.OutboxSchedule, c.logger)
}

// Publisher exposes the Kafka publisher for shutdown.
func (c *CompositionRoot) Publisher() *kafka.Publisher {
	return c.publisher
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTransitionUoWFactory func() commands.TransitionUoW

func (f FuncTransitionUoWFactory) Create() commands.TransitionUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncCollectionUoWFactory func() commands.CollectionUoW

func (f FuncCollectionUoWFactory) Create() commands.CollectionUoW {
	return f()
}
