package cmd

import (
	"log/slog"

	httpin "backoffice/internal/adapters/in/http"
	"backoffice/internal/adapters/out/postgres"
	"backoffice/internal/core/application/coordinator"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReviewedOrdersQueryHandler() queries.GetReviewedOrdersQueryHandler {
	return queries.NewGetReviewedOrdersQueryHandler(c.gormDB)
}

// CreateCoordinator assembles the lifecycle coordinator for the HTTP surface.
// Confirmation decisions arrive with each request, so the confirmer reads
// them from the request context.
func (c *CompositionRoot) CreateCoordinator() *coordinator.Coordinator {
	pendingHandler := c.CreateGetPendingOrdersQueryHandler()
	reviewedHandler := c.CreateGetReviewedOrdersQueryHandler()
	confirmHandler := c.CreateConfirmOrderCommandHandler()
	removeHandler := c.CreateRemoveOrderCommandHandler()
	changeStatusHandler := c.CreateChangeOrderStatusCommandHandler()
	updateHandler := c.CreateUpdateOrderCommandHandler()

	return coordinator.NewCoordinator(
		&pendingHandler,
		&reviewedHandler,
		&confirmHandler,
		&removeHandler,
		&changeStatusHandler,
		&updateHandler,
		httpin.HeaderConfirmer{},
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager(refresher jobs.BoardRefresher) *jobs.JobManager {
	return jobs.NewJobManager(refresher, c.logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
