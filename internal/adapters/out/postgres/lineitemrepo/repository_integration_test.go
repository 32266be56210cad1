package lineitemrepo_test

import (
	"context"
	"testing"
	"time"

	"orderdesk/internal/adapters/out/postgres/lineitemrepo"
	"orderdesk/internal/adapters/out/postgres/orderrepo"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/lineitem"
	"orderdesk/internal/pkg/testdb"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate any) {
	m.Called(id, aggregate)
}

var now = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

type LineItemRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *testdb.Postgres
	repository *lineitemrepo.GormLineItemRepository
	tracker    *MockAggregateTracker
	orderID    kernel.ID
}

func (suite *LineItemRepositoryIntegrationTestSuite) SetupSuite() {
	pg, err := testdb.StartPostgres(context.Background())
	suite.Require().NoError(err)
	suite.pg = pg
}

func (suite *LineItemRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = lineitemrepo.NewGormLineItemRepository(suite.pg.DB, suite.tracker)
	suite.orderID = suite.insertOrder()
}

func (suite *LineItemRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pg != nil {
		suite.Require().NoError(suite.pg.Terminate(context.Background()))
	}
}

func (suite *LineItemRepositoryIntegrationTestSuite) TestUpsert_InsertsNewRow() {
	ctx := context.Background()
	item := suite.item(0, "Flyer", 1)

	id, err := suite.repository.Upsert(ctx, item)
	suite.Require().NoError(err)
	suite.False(id.IsZero())

	items, err := suite.repository.Get(ctx, suite.orderID, kernel.KindInvoice)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.True(id.IsEqual(items[0].ID()))
	suite.Equal("Flyer", items[0].ProductName())
	suite.True(decimal.NewFromInt(100).Equal(items[0].UnitPrice()))
	suite.True(decimal.NewFromInt(3).Equal(items[0].Quantity()))
	suite.True(decimal.NewFromInt(300).Equal(items[0].Amount()))
	suite.Equal("pcs", items[0].Unit())
	suite.Equal(1, items[0].SortOrder())
}

func (suite *LineItemRepositoryIntegrationTestSuite) TestUpsert_StoresExactDecimals() {
	ctx := context.Background()
	item, err := lineitem.FromSubmission(suite.orderID, kernel.KindInvoice, lineitem.Submission{
		Fields: lineitem.Fields{
			ProductName: "Ink",
			UnitPrice:   decimal.RequireFromString("0.125"),
			Quantity:    decimal.RequireFromString("1203.4567"),
			Amount:      decimal.RequireFromString("150.456"),
		},
	}, 1, now)
	suite.Require().NoError(err)
	big, err := lineitem.FromSubmission(suite.orderID, kernel.KindInvoice, lineitem.Submission{
		Fields: lineitem.Fields{
			ProductName: "Campaign",
			Amount:      decimal.RequireFromString("123456789012345678.25"),
		},
	}, 2, now)
	suite.Require().NoError(err)

	_, err = suite.repository.Upsert(ctx, item)
	suite.Require().NoError(err)
	_, err = suite.repository.Upsert(ctx, big)
	suite.Require().NoError(err)

	items, err := suite.repository.Get(ctx, suite.orderID, kernel.KindInvoice)
	suite.Require().NoError(err)
	suite.Require().Len(items, 2)
	suite.Equal("0.125", items[0].UnitPrice().String())
	suite.Equal("1203.4567", items[0].Quantity().String())
	suite.Equal("150.456", items[0].Amount().String())
	suite.Equal("123456789012345678.25", items[1].Amount().String())
}

func (suite *LineItemRepositoryIntegrationTestSuite) TestUpsert_UpdatesExistingRowKeepingCreatedAt() {
	ctx := context.Background()
	id, err := suite.repository.Upsert(ctx, suite.item(0, "Flyer", 1))
	suite.Require().NoError(err)

	later := now.Add(time.Hour)
	updated, err := lineitem.FromSubmission(suite.orderID, kernel.KindInvoice, lineitem.Submission{
		ID:     id.Int64(),
		Fields: lineitem.Fields{ProductName: "Flyer A4", Quantity: decimal.NewFromInt(5)},
	}, 2, later)
	suite.Require().NoError(err)

	gotID, err := suite.repository.Upsert(ctx, updated)
	suite.Require().NoError(err)
	suite.True(id.IsEqual(gotID))

	items, err := suite.repository.Get(ctx, suite.orderID, kernel.KindInvoice)
	suite.Require().NoError(err)
	suite.Require().Len(items, 1)
	suite.Equal("Flyer A4", items[0].ProductName())
	suite.Equal(2, items[0].SortOrder())
	suite.True(now.Equal(items[0].CreatedAt()))
	suite.True(later.Equal(items[0].UpdatedAt()))
}

func (suite *LineItemRepositoryIntegrationTestSuite) TestUpsert_UnknownIDInsertsInstead() {
	ctx := context.Background()

	id, err := suite.repository.Upsert(ctx, suite.item(555, "Poster", 1))
	suite.Require().NoError(err)

	suite.NotEqual(int64(555), id.Int64())
	items, err := suite.repository.Get(ctx, suite.orderID, kernel.KindInvoice)
	suite.Require().NoError(err)
	suite.Len(items, 1)
}

func (suite *LineItemRepositoryIntegrationTestSuite) TestUpsert_IDFromOtherKindIsNotTouched() {
	ctx := context.Background()
	costID, err := suite.repository.Upsert(ctx, suite.itemOfKind(kernel.KindCost, 0, "Paper", 1))
	suite.Require().NoError(err)

	invoiceID, err := suite.repository.Upsert(ctx, suite.item(costID.Int64(), "Flyer", 1))
	suite.Require().NoError(err)
	suite.False(costID.IsEqual(invoiceID))

	costs, err := suite.repository.Get(ctx, suite.orderID, kernel.KindCost)
	suite.Require().NoError(err)
	suite.Require().Len(costs, 1)
	suite.Equal("Paper", costs[0].ProductName())
}

func (suite *LineItemRepositoryIntegrationTestSuite) TestGet_OrdersBySortOrderThenID() {
	ctx := context.Background()
	third, err := suite.repository.Upsert(ctx, suite.item(0, "C", 2))
	suite.Require().NoError(err)
	first, err := suite.repository.Upsert(ctx, suite.item(0, "A", 1))
	suite.Require().NoError(err)
	fourth, err := suite.repository.Upsert(ctx, suite.item(0, "D", 2))
	suite.Require().NoError(err)

	items, err := suite.repository.Get(ctx, suite.orderID, kernel.KindInvoice)
	suite.Require().NoError(err)

	suite.Require().Len(items, 3)
	suite.True(first.IsEqual(items[0].ID()))
	suite.True(third.IsEqual(items[1].ID()))
	suite.True(fourth.IsEqual(items[2].ID()))
}

func (suite *LineItemRepositoryIntegrationTestSuite) TestDeleteWhere() {
	ctx := context.Background()
	keep, err := suite.repository.Upsert(ctx, suite.item(0, "Keep", 1))
	suite.Require().NoError(err)
	_, err = suite.repository.Upsert(ctx, suite.item(0, "Drop", 2))
	suite.Require().NoError(err)
	_, err = suite.repository.Upsert(ctx, suite.itemOfKind(kernel.KindCost, 0, "Other kind", 1))
	suite.Require().NoError(err)

	deleted, err := suite.repository.DeleteWhere(ctx, suite.orderID, kernel.KindInvoice, []kernel.ID{keep})
	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)

	invoices, err := suite.repository.Get(ctx, suite.orderID, kernel.KindInvoice)
	suite.Require().NoError(err)
	suite.Require().Len(invoices, 1)
	suite.True(keep.IsEqual(invoices[0].ID()))

	deleted, err = suite.repository.DeleteWhere(ctx, suite.orderID, kernel.KindInvoice, nil)
	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)

	costs, err := suite.repository.Get(ctx, suite.orderID, kernel.KindCost)
	suite.Require().NoError(err)
	suite.Len(costs, 1)
}

func (suite *LineItemRepositoryIntegrationTestSuite) insertOrder() kernel.ID {
	dto := orderrepo.OrderDTO{CustomerName: "Acme K.K.", Progress: 1, CreatedAt: now}
	suite.Require().NoError(suite.pg.DB.Create(&dto).Error)
	id, err := kernel.NewID(dto.ID)
	suite.Require().NoError(err)
	return id
}

func (suite *LineItemRepositoryIntegrationTestSuite) item(id int64, name string, sortOrder int) *lineitem.LineItem {
	return suite.itemOfKind(kernel.KindInvoice, id, name, sortOrder)
}

func (suite *LineItemRepositoryIntegrationTestSuite) itemOfKind(
	kind kernel.ItemKind,
	id int64,
	name string,
	sortOrder int,
) *lineitem.LineItem {
	item, err := lineitem.FromSubmission(suite.orderID, kind, lineitem.Submission{
		ID: id,
		Fields: lineitem.Fields{
			ProductName: name,
			UnitPrice:   decimal.NewFromInt(100),
			Quantity:    decimal.NewFromInt(3),
			Amount:      decimal.NewFromInt(300),
			Unit:        "pcs",
		},
	}, sortOrder, now)
	suite.Require().NoError(err)
	return item
}

func TestLineItemRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LineItemRepositoryIntegrationTestSuite))
}
