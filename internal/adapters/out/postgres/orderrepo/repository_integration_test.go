package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"sales/internal/adapters/out/postgres/orderrepo"
	"sales/internal/adapters/out/postgres/outboxrepo"
	"sales/internal/adapters/out/postgres/pgtest"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker

	dealerID  kernel.UUID
	productA  kernel.UUID
	productB  kernel.UUID
	sequence  int
	unitPrice kernel.Money
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	suite.unitPrice, err = kernel.MoneyFromString("12.50")
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker)

	suite.dealerID = kernel.NewUUID()
	suite.productA = kernel.NewUUID()
	suite.productB = kernel.NewUUID()

	db := suite.database.DB
	suite.Require().NoError(db.Exec(
		"INSERT INTO dealers (id, name, email) VALUES (?, 'Dealer', 'dealer@example.com')",
		suite.dealerID.Bytes(),
	).Error)
	suite.Require().NoError(db.Exec(
		"INSERT INTO products (id, sku, name, price) VALUES (?, 'SKU-A', 'A', 12.50), (?, 'SKU-B', 'B', 12.50)",
		suite.productA.Bytes(), suite.productB.Bytes(),
	).Error)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DraftWithItems_RoundTrips() {
	ctx := context.Background()
	o := suite.newDraft()
	_, err := o.AddItem(suite.productA, 2, suite.unitPrice)
	suite.Require().NoError(err)
	_, err = o.AddItem(suite.productB, 1, suite.unitPrice)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", o.ID(), o).Once()

	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(o.IsEqual(loaded))
	suite.Equal(order.Draft, loaded.Status())
	suite.Equal(o.Number().String(), loaded.Number().String())
	suite.Equal("37.50", loaded.TotalAmount().String())

	items := loaded.Items()
	suite.Require().Len(items, 2)
	suite.Equal(suite.productA, items[0].ProductID())
	suite.Equal(2, items[0].Quantity())
	suite.Equal("25.00", items[0].LineTotal().String())
	suite.Equal(suite.productB, items[1].ProductID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnknownDealer_ReturnsNotFound() {
	number, err := order.NewNumber(time.Now(), 999)
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), number, kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repository.Add(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.tracker.AssertNotCalled(suite.T(), "TrackAggregate", mock.Anything, mock.Anything)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsValueIsInvalid() {
	ctx := context.Background()
	first := suite.newDraft()
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := order.NewOrder(kernel.NewUUID(), first.Number(), suite.dealerID, time.Now().UTC())
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ItemMutations_ReplaceStoredLines() {
	ctx := context.Background()
	o := suite.newDraft()
	itemA, err := o.AddItem(suite.productA, 2, suite.unitPrice)
	suite.Require().NoError(err)
	_, err = o.AddItem(suite.productB, 1, suite.unitPrice)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", o.ID(), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	loaded, err := suite.repository.GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.RemoveItem(itemA.ID()))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().Len(reloaded.Items(), 1)
	suite.Equal(suite.productB, reloaded.Items()[0].ProductID())
	suite.Equal("12.50", reloaded.TotalAmount().String())

	var stored int64
	suite.Require().NoError(suite.database.DB.Model(&orderrepo.ItemDTO{}).Count(&stored).Error)
	suite.Equal(int64(1), stored)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_RemoveLastItem_LeavesEmptyOrder() {
	ctx := context.Background()
	o := suite.newDraft()
	item, err := o.AddItem(suite.productA, 1, suite.unitPrice)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", o.ID(), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.RemoveItem(item.ID()))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Empty(reloaded.Items())
	suite.True(reloaded.TotalAmount().IsZero())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Transition_WritesOutboxMessage() {
	ctx := context.Background()
	o := suite.newDraft()
	_, err := o.AddItem(suite.productA, 3, suite.unitPrice)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", o.ID(), mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.Confirm())
	suite.Require().NoError(suite.repository.Update(ctx, o))
	suite.Len(o.DomainEvents(), 1, "events stay pending until the transaction commits")

	// Writing the same pending event again keeps one outbox row.
	suite.Require().NoError(suite.repository.Update(ctx, o))

	reloaded, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, reloaded.Status())

	var messages []outboxrepo.MessageDTO
	suite.Require().NoError(suite.database.DB.Find(&messages).Error)
	suite.Require().Len(messages, 1)
	suite.Equal(order.StatusChangedEventType, messages[0].EventType)
	suite.Equal(o.ID().Bytes(), messages[0].AggregateID)
	suite.Nil(messages[0].PublishedAt)
	suite.Contains(string(messages[0].Payload), `"to": "confirmed"`)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	o := suite.newDraft()

	err := suite.repository.Update(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) newDraft() *order.Order {
	suite.sequence++
	number, err := order.NewNumber(time.Now(), suite.sequence)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), number, suite.dealerID, time.Now().UTC())
	suite.Require().NoError(err)
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
