// Package postgres provides the GORM-based Unit of Work shared by the order
// command handlers, plus connection and schema setup.
//
// A unit of work wraps one database transaction. Repositories obtained from it
// run inside that transaction once Begin has been called, and outside of any
// transaction otherwise.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if _, err := uow.LineItemRepository().DeleteWhere(ctx, o.ID(), kind, keep); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Rollback after a successful Commit is a no-op, which is what makes the
// deferred rollback above safe.
//
// Each UnitOfWork instance belongs to a single goroutine; concurrent callers
// must create their own.
package postgres

import (
	"context"
	"log/slog"

	"orderdesk/internal/adapters/out/postgres/chatrepo"
	"orderdesk/internal/adapters/out/postgres/lineitemrepo"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances over one GORM connection pool.
type GormUnitOfWorkFactory struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGormUnitOfWorkFactory(db *gorm.DB, logger *slog.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, logger: logger}
}

// Create returns a fresh unit of work with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:     f.db,
		logger: f.logger,
	}
}

// GormUnitOfWork coordinates one transaction and records the aggregates the
// repositories wrote through it. A successful Commit logs them at debug level.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	logger  *slog.Logger
	written []int64
}

// Begin opens the transaction. Calling it again while a transaction is open
// does nothing.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.NewStorageErrorWithCause("begin transaction", tx.Error)
	}
	uow.tx = tx
	uow.written = uow.written[:0]

	return nil
}

// Commit makes the transaction's writes permanent.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return errs.NewStorageErrorWithCause("commit transaction", gorm.ErrInvalidTransaction)
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return errs.NewStorageErrorWithCause("commit transaction", err)
	}

	if uow.logger != nil && len(uow.written) > 0 {
		uow.logger.DebugContext(ctx, "Unit of work committed",
			"component", "UnitOfWork",
			"aggregates", uow.written,
		)
	}
	uow.written = uow.written[:0]

	return nil
}

// Rollback discards the open transaction. Without one it returns nil.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.written = uow.written[:0]
	if err != nil {
		return errs.NewStorageErrorWithCause("rollback transaction", err)
	}

	return nil
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) LineItemRepository() ports.LineItemRepository {
	return lineitemrepo.NewGormLineItemRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ChatRecordRepository() ports.ChatRecordRepository {
	return chatrepo.NewGormChatRecordRepository(uow.conn())
}

// TrackAggregate is called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.ID, _ any) {
	uow.written = append(uow.written, id.Int64())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
