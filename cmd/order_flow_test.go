package cmd_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"orderdesk/cmd"
	"orderdesk/internal/adapters/out/postgres/chatrepo"
	"orderdesk/internal/adapters/out/postgres/editlockrepo"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/editlock"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/lineitem"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/jobs"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/testdb"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrderFlowTestSuite drives the handlers wired by the composition root
// against SQLite, with edit locks stored in the edit_locks table.
type OrderFlowTestSuite struct {
	suite.Suite
	db   *gorm.DB
	root *cmd.CompositionRoot

	mu  sync.Mutex
	now time.Time
}

func (suite *OrderFlowTestSuite) SetupTest() {
	suite.db = testdb.OpenSQLite(suite.T())
	suite.now = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

	cfg := cmd.Config{
		EditLockTTL:     editlock.DefaultTTL,
		EditLockBackend: cmd.LockBackendPostgres,
	}
	suite.root = cmd.NewCompositionRoot(cfg, suite.db, slog.New(slog.DiscardHandler)).WithClock(suite.clock)
}

func (suite *OrderFlowTestSuite) clock() time.Time {
	suite.mu.Lock()
	defer suite.mu.Unlock()
	return suite.now
}

func (suite *OrderFlowTestSuite) advance(d time.Duration) {
	suite.mu.Lock()
	defer suite.mu.Unlock()
	suite.now = suite.now.Add(d)
}

func (suite *OrderFlowTestSuite) createOrder() kernel.ID {
	command, err := commands.NewCreateOrderCommand(order.Details{CustomerName: "Acme K.K.", ProjectName: "Harbour signage"})
	suite.Require().NoError(err)
	id, err := suite.root.CreateCreateOrderCommandHandler().Handle(suite.T().Context(), command)
	suite.Require().NoError(err)
	return id
}

func (suite *OrderFlowTestSuite) reconcile(id kernel.ID, kind kernel.ItemKind, items ...lineitem.Submission) commands.ReconcileResult {
	command, err := commands.NewReconcileItemsCommand(id, kind, items)
	suite.Require().NoError(err)
	result, err := suite.root.CreateReconcileItemsCommandHandler().Handle(suite.T().Context(), command)
	suite.Require().NoError(err)
	return result
}

func (suite *OrderFlowTestSuite) items(id kernel.ID, kind kernel.ItemKind) []queries.GetOrderItemsQueryResponse {
	query, err := queries.NewGetOrderItemsQuery(id, kind)
	suite.Require().NoError(err)
	items, err := suite.root.CreateGetOrderItemsQueryHandler().Handle(suite.T().Context(), query)
	suite.Require().NoError(err)
	return items
}

func (suite *OrderFlowTestSuite) acquire(id kernel.ID, holder string) (*editlock.Lock, error) {
	command, err := commands.NewAcquireEditLockCommand(id, holder)
	suite.Require().NoError(err)
	return suite.root.CreateAcquireEditLockCommandHandler().Handle(context.Background(), command)
}

func item(id int64, name string, price, qty int64) lineitem.Submission {
	return lineitem.Submission{
		ID: id,
		Fields: lineitem.Fields{
			ProductName: name,
			UnitPrice:   decimal.NewFromInt(price),
			Quantity:    decimal.NewFromInt(qty),
		},
	}
}

func names(items []queries.GetOrderItemsQueryResponse) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ProductName
	}
	return out
}

func (suite *OrderFlowTestSuite) TestReconcile_StoredSetEqualsSubmission() {
	id := suite.createOrder()
	suite.reconcile(id, kernel.KindInvoice, item(0, "Flyer", 100, 3), item(0, "Poster", 500, 1), item(0, "Banner", 2000, 1))
	stored := suite.items(id, kernel.KindInvoice)
	suite.Require().Len(stored, 3)

	result := suite.reconcile(id, kernel.KindInvoice,
		item(stored[2].ID.Int64(), "Banner", 2500, 1),
		item(0, "Sticker", 10, 50),
		item(stored[0].ID.Int64(), "Flyer", 100, 3),
	)

	suite.Equal(2, result.Updated)
	suite.Equal(1, result.Inserted)
	suite.Equal(1, result.Deleted)

	after := suite.items(id, kernel.KindInvoice)
	suite.Equal([]string{"Banner", "Sticker", "Flyer"}, names(after))
	suite.True(stored[2].ID.IsEqual(after[0].ID))
	suite.True(stored[0].ID.IsEqual(after[2].ID))
	suite.Equal("2500", after[0].UnitPrice.String())
}

func (suite *OrderFlowTestSuite) TestReconcile_SameSubmissionTwiceIsStable() {
	id := suite.createOrder()
	suite.reconcile(id, kernel.KindCost, item(0, "Paper", 10, 100), item(0, "Ink", 300, 2))
	first := suite.items(id, kernel.KindCost)

	resubmit := make([]lineitem.Submission, len(first))
	for i, it := range first {
		resubmit[i] = lineitem.Submission{ID: it.ID.Int64(), Fields: lineitem.Fields{
			ProductName: it.ProductName, UnitPrice: it.UnitPrice, Quantity: it.Quantity,
		}}
	}
	result := suite.reconcile(id, kernel.KindCost, resubmit...)
	second := suite.items(id, kernel.KindCost)

	suite.Equal(0, result.Inserted)
	suite.Equal(0, result.Deleted)
	suite.Require().Len(second, len(first))
	for i := range first {
		suite.True(first[i].ID.IsEqual(second[i].ID))
		suite.Equal(first[i].SortOrder, second[i].SortOrder)
		suite.True(first[i].CreatedAt.Equal(second[i].CreatedAt))
	}
}

func (suite *OrderFlowTestSuite) TestReconcile_BlankNamesAreSkipped() {
	id := suite.createOrder()

	result := suite.reconcile(id, kernel.KindInvoice,
		item(0, "", 100, 1),
		item(0, "Flyer", 100, 3),
		item(0, "   ", 0, 0),
	)

	suite.Equal(2, result.Skipped)
	suite.Equal(1, result.Inserted)
	stored := suite.items(id, kernel.KindInvoice)
	suite.Require().Len(stored, 1)
	suite.Equal(2, stored[0].SortOrder)
}

func (suite *OrderFlowTestSuite) TestReconcile_EmptySubmissionClearsCollection() {
	id := suite.createOrder()
	suite.reconcile(id, kernel.KindInvoice, item(0, "Flyer", 100, 3))
	suite.reconcile(id, kernel.KindCost, item(0, "Paper", 10, 100))

	result := suite.reconcile(id, kernel.KindInvoice)

	suite.Equal(1, result.Deleted)
	suite.Empty(suite.items(id, kernel.KindInvoice))
	suite.Len(suite.items(id, kernel.KindCost), 1, "other collection untouched")
}

func (suite *OrderFlowTestSuite) TestDeleteOrder_CascadesEverything() {
	ctx := suite.T().Context()
	id := suite.createOrder()
	suite.reconcile(id, kernel.KindInvoice, item(0, "Flyer", 100, 3))
	suite.reconcile(id, kernel.KindCost, item(0, "Paper", 10, 100))
	suite.Require().NoError(suite.db.Create(&chatrepo.ChatRecordDTO{
		OrderID: id.Int64(), Author: "alice", Body: "proof attached", CreatedAt: suite.now,
	}).Error)

	deleteCmd, err := commands.NewDeleteOrderCommand(id)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.root.CreateDeleteOrderCommandHandler().Handle(ctx, deleteCmd))

	var chats int64
	suite.Require().NoError(suite.db.Model(&chatrepo.ChatRecordDTO{}).Count(&chats).Error)
	suite.Zero(chats)

	query, err := queries.NewGetOrderItemsQuery(id, kernel.KindInvoice)
	suite.Require().NoError(err)
	_, err = suite.root.CreateGetOrderItemsQueryHandler().Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	reconcileCmd, err := commands.NewReconcileItemsCommand(id, kernel.KindInvoice, []lineitem.Submission{item(0, "Flyer", 1, 1)})
	suite.Require().NoError(err)
	_, err = suite.root.CreateReconcileItemsCommandHandler().Handle(ctx, reconcileCmd)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.root.CreateDeleteOrderCommandHandler().Handle(ctx, deleteCmd)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderFlowTestSuite) TestEditLock_OneWinnerAmongConcurrentHolders() {
	id := suite.createOrder()
	const holders = 8

	handler := suite.root.CreateAcquireEditLockCommandHandler()

	var wg sync.WaitGroup
	errsCh := make(chan error, holders)
	for i := range holders {
		command, err := commands.NewAcquireEditLockCommand(id, fmt.Sprintf("holder-%d", i))
		suite.Require().NoError(err)

		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := handler.Handle(context.Background(), command)
			errsCh <- err
		}()
	}
	wg.Wait()
	close(errsCh)

	won, held := 0, 0
	for err := range errsCh {
		switch {
		case err == nil:
			won++
		case errors.Is(err, errs.ErrLockHeld):
			held++
		default:
			suite.Failf("unexpected error", "%v", err)
		}
	}
	suite.Equal(1, won)
	suite.Equal(holders-1, held)
}

func (suite *OrderFlowTestSuite) TestEditLock_ExpiresAndIsSwept() {
	ctx := suite.T().Context()
	id := suite.createOrder()
	other := suite.createOrder()
	_, err := suite.acquire(id, "alice")
	suite.Require().NoError(err)
	_, err = suite.acquire(other, "alice")
	suite.Require().NoError(err)

	suite.advance(editlock.DefaultTTL)
	_, err = suite.acquire(id, "bob")
	suite.Require().True(errors.Is(err, errs.ErrLockHeld), "lock is held for the whole ttl")

	suite.advance(time.Second)
	lock, err := suite.acquire(id, "bob")
	suite.Require().NoError(err)
	suite.Equal("bob", lock.HolderID())

	sweeper := jobs.NewEditLockSweeperJob(suite.root.CreatePurgeExpiredEditLocksCommandHandler(), "", slog.New(slog.DiscardHandler))
	suite.Equal(int64(1), sweeper.RunOnce(ctx), "only the stale lock on the other order is purged")

	var remaining []editlockrepo.EditLockDTO
	suite.Require().NoError(suite.db.Find(&remaining).Error)
	suite.Require().Len(remaining, 1)
	suite.Equal(id.Int64(), remaining[0].OrderID)
}

func (suite *OrderFlowTestSuite) TestRenderDocument_FollowsProgress() {
	ctx := suite.T().Context()
	id := suite.createOrder()
	suite.reconcile(id, kernel.KindInvoice, item(0, "Flyer", 100, 3), item(0, "", 999, 9))

	transition, err := commands.NewTransitionOrderCommand(id, int(order.Paid))
	suite.Require().NoError(err)
	_, err = suite.root.CreateTransitionOrderCommandHandler().Handle(ctx, transition)
	suite.Require().NoError(err)

	query, err := queries.NewRenderDocumentTotalsQuery(id, kernel.KindInvoice)
	suite.Require().NoError(err)
	doc, err := suite.root.CreateRenderDocumentTotalsQueryHandler().Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("Receipt", doc.Title)
	suite.Equal("Regarding Harbour signage, we confirm receipt of your payment. Thank you.", doc.Message)
	suite.Equal("Flyer：100円 × 3 = 300円\n合計：300円", doc.LineText)
}

func TestOrderFlowTestSuite(t *testing.T) {
	suite.Run(t, new(OrderFlowTestSuite))
}
