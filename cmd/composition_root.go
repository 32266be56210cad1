package cmd

import (
	"log/slog"

	httpin "orderdesk/internal/adapters/in/http"
	memlock "orderdesk/internal/adapters/out/memory/editlock"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/adapters/out/postgres/clientrepo"
	"orderdesk/internal/adapters/out/postgres/editlockrepo"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/services"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	clock      kernel.Clock
	uowFactory *postgres.GormUnitOfWorkFactory
	locks      ports.EditLockRepository
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	var locks ports.EditLockRepository
	if cfg.EditLockBackend == LockBackendMemory {
		locks = memlock.NewStore()
	} else {
		locks = editlockrepo.NewGormEditLockRepository(gormDB)
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		logger:     logger,
		clock:      kernel.SystemClock,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		locks:      locks,
	}
}

// WithClock replaces the clock every handler created afterwards reads.
func (c *CompositionRoot) WithClock(clock kernel.Clock) *CompositionRoot {
	c.clock = clock
	return c
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderDetailsCommandHandler() commands.UpdateOrderDetailsCommandHandler {
	return commands.NewUpdateOrderDetailsCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReconcileItemsCommandHandler() commands.ReconcileItemsCommandHandler {
	var f commands.ItemsUoWFactory = FuncItemsUoWFactory(func() commands.ItemsUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReconcileItemsCommandHandler(
		f,
		services.NewReconciliationPlanner(c.cfg.SortNumbering),
		c.clock,
	)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateAcquireEditLockCommandHandler() commands.AcquireEditLockCommandHandler {
	return commands.NewAcquireEditLockCommandHandler(c.locks, c.cfg.EditLockTTL, c.clock)
}

func (c *CompositionRoot) CreateReleaseEditLockCommandHandler() commands.ReleaseEditLockCommandHandler {
	return commands.NewReleaseEditLockCommandHandler(c.locks)
}

func (c *CompositionRoot) CreatePurgeExpiredEditLocksCommandHandler() commands.PurgeExpiredEditLocksCommandHandler {
	return commands.NewPurgeExpiredEditLocksCommandHandler(c.locks, c.cfg.EditLockTTL, c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB, clientrepo.NewGormClientDirectory(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrderItemsQueryHandler() queries.GetOrderItemsQueryHandler {
	return queries.NewGetOrderItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateRenderDocumentTotalsQueryHandler() queries.RenderDocumentTotalsQueryHandler {
	return queries.NewRenderDocumentTotalsQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every use case the HTTP adapter serves.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		UpdateOrderDetails: c.CreateUpdateOrderDetailsCommandHandler(),
		TransitionOrder:    c.CreateTransitionOrderCommandHandler(),
		ReconcileItems:     c.CreateReconcileItemsCommandHandler(),
		AcquireEditLock:    c.CreateAcquireEditLockCommandHandler(),
		ReleaseEditLock:    c.CreateReleaseEditLockCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetOrderItems:      c.CreateGetOrderItemsQueryHandler(),
		RenderDocument:     c.CreateRenderDocumentTotalsQueryHandler(),
	}
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(c.CreateHTTPHandlers())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePurgeExpiredEditLocksCommandHandler(),
		c.cfg.LockSweepSchedule,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncItemsUoWFactory func() commands.ItemsUoW

func (f FuncItemsUoWFactory) Create() commands.ItemsUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}
