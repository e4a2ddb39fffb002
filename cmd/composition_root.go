package cmd

import (
	"log/slog"

	"osonish/internal/adapters/out/postgres"
	"osonish/internal/adapters/out/postgres/orderrepo"
	"osonish/internal/core/application/usecases/commands"
	"osonish/internal/core/application/usecases/queries"
	"osonish/internal/core/domain/services"
	"osonish/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	dispatcher ports.NotificationDispatcher
	clock      ports.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	dispatcher ports.NotificationDispatcher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		dispatcher: dispatcher,
		clock:      ports.SystemClock{},
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateAutoTransitionOrdersCommandHandler() commands.AutoTransitionOrdersCommandHandler {
	return commands.NewAutoTransitionOrdersCommandHandler(
		orderrepo.NewGormOrderRepository(c.gormDB, nil),
		services.NewTransitionResolver(),
		c.dispatcher,
		c.clock,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrdersDueQueryHandler() queries.GetOrdersDueQueryHandler {
	return queries.NewGetOrdersDueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAutoTransitionedOrdersQueryHandler() queries.GetAutoTransitionedOrdersQueryHandler {
	return queries.NewGetAutoTransitionedOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
