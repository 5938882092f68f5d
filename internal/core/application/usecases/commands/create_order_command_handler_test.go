package commands_test

import (
	"errors"
	"testing"
	"time"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/dealer"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID, dealerID := kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, dealerID)
	require.NoError(t, err)

	d, err := dealer.NewDealer(dealerID, "Acme", "acme@example.com", "", "")
	require.NoError(t, err)
	number, err := order.NewNumber(time.Now(), 5)
	require.NoError(t, err)

	dealerRepo := new(MockDealerRepository)
	sequence := new(MockOrderNumberSequence)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DealerRepository").Return(dealerRepo).Once(),
		dealerRepo.On("Get", ctx, dealerID).Return(d, nil).Once(),
		uow.On("OrderNumberSequence").Return(sequence).Once(),
		sequence.On("Next", ctx, mock.AnythingOfType("time.Time")).Return(number, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID().IsEqual(orderID) && o.Status() == order.Draft && o.TotalAmount().IsZero() &&
				o.Number() == number
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory, discardLogger)
	got, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, number, got)
	dealerRepo.AssertExpectations(t)
	sequence.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DealerNotFound(t *testing.T) {
	ctx := t.Context()
	dealerID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), dealerID)
	require.NoError(t, err)

	dealerRepo := new(MockDealerRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DealerRepository").Return(dealerRepo).Once(),
		dealerRepo.On("Get", ctx, dealerID).Return(nil, errs.NewObjectNotFoundError("dealer", dealerID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewCreateOrderCommandHandler(factory, discardLogger).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	_, err = commands.NewCreateOrderCommandHandler(factory, discardLogger).Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockOrderUoWFactory)

	_, err := commands.NewCreateOrderCommandHandler(factory, discardLogger).Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
