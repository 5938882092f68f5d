package commands_test

import (
	"testing"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/domain/model/dealer"
	"sales/internal/core/domain/model/inventory"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/product"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProductCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should store product and inventory in one transaction", func(t *testing.T) {
		productID := kernel.NewUUID()
		cmd, err := commands.NewCreateProductCommand(productID, "SKU-1", "Filter", "", mustMoney(t, "9.90"), 25)
		require.NoError(t, err)

		productRepo := new(MockProductRepository)
		inventoryRepo := new(MockInventoryRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ProductRepository").Return(productRepo).Once(),
			productRepo.On("Add", ctx, mock.MatchedBy(func(p *product.Product) bool {
				return p.ID().IsEqual(productID) && p.SKU() == "SKU-1" && p.Price().String() == "9.90"
			})).Return(nil).Once(),
			uow.On("InventoryRepository").Return(inventoryRepo).Once(),
			inventoryRepo.On("Add", ctx, mock.MatchedBy(func(s *inventory.Stock) bool {
				return s.ProductID().IsEqual(productID) && s.Quantity() == 25
			})).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockCatalogUoWFactory)
		factory.On("Create").Return(uow).Once()

		require.NoError(t, commands.NewCreateProductCommandHandler(factory).Handle(ctx, cmd))
		productRepo.AssertExpectations(t)
		inventoryRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("should surface duplicate sku without committing", func(t *testing.T) {
		cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), "SKU-1", "Filter", "", mustMoney(t, "9.90"), 0)
		require.NoError(t, err)

		productRepo := new(MockProductRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("ProductRepository").Return(productRepo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		productRepo.On("Add", ctx, mock.Anything).Return(errs.NewValueIsInvalidError("sku")).Once()
		factory := new(MockCatalogUoWFactory)
		factory.On("Create").Return(uow).Once()

		err = commands.NewCreateProductCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("should reject invalid arguments", func(t *testing.T) {
		_, err := commands.NewCreateProductCommand(kernel.NewUUID(), "", " ", "", kernel.Money{}, -1)
		require.ErrorIs(t, err, product.ErrSKUIsRequired)
		require.ErrorIs(t, err, product.ErrNameIsRequired)
		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestChangeProductPriceCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	p := newProduct(t, "1.00")
	cmd, err := commands.NewChangeProductPriceCommand(p.ID(), mustMoney(t, "1.50"))
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	productRepo.On("Get", ctx, p.ID()).Return(p, nil).Once()
	productRepo.On("Update", ctx, p).Return(nil).Once()
	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	require.NoError(t, commands.NewChangeProductPriceCommandHandler(factory).Handle(ctx, cmd))
	assert.Equal(t, "1.50", p.Price().String())
	productRepo.AssertExpectations(t)
}

func TestRemoveProductCommandHandler_Handle_Referenced(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewRemoveProductCommand(productID)
	require.NoError(t, err)

	productRepo := new(MockProductRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ProductRepository").Return(productRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	productRepo.On("Delete", ctx, productID).Return(errs.NewObjectIsReferencedError("product", productID.String())).Once()
	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewRemoveProductCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectIsReferenced)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateDealerCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should store dealer", func(t *testing.T) {
		dealerID := kernel.NewUUID()
		cmd, err := commands.NewCreateDealerCommand(dealerID, "Acme", "Acme@Example.com", "", "")
		require.NoError(t, err)

		dealerRepo := new(MockDealerRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DealerRepository").Return(dealerRepo).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		dealerRepo.On("Add", ctx, mock.MatchedBy(func(d *dealer.Dealer) bool {
			return d.ID().IsEqual(dealerID) && d.Email() == "acme@example.com"
		})).Return(nil).Once()
		factory := new(MockCatalogUoWFactory)
		factory.On("Create").Return(uow).Once()

		require.NoError(t, commands.NewCreateDealerCommandHandler(factory).Handle(ctx, cmd))
		dealerRepo.AssertExpectations(t)
	})

	t.Run("should reject malformed email before opening a transaction", func(t *testing.T) {
		cmd, err := commands.NewCreateDealerCommand(kernel.NewUUID(), "Acme", "nope", "", "")
		require.NoError(t, err)
		factory := new(MockCatalogUoWFactory)

		err = commands.NewCreateDealerCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestRemoveDealerCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	dealerID := kernel.NewUUID()
	cmd, err := commands.NewRemoveDealerCommand(dealerID)
	require.NoError(t, err)

	dealerRepo := new(MockDealerRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DealerRepository").Return(dealerRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	dealerRepo.On("Delete", ctx, dealerID).Return(nil).Once()
	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	require.NoError(t, commands.NewRemoveDealerCommandHandler(factory).Handle(ctx, cmd))
	uow.AssertExpectations(t)
	dealerRepo.AssertExpectations(t)
}

func TestUpdateDealerCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("should store the new contact details", func(t *testing.T) {
		d, err := dealer.NewDealer(kernel.NewUUID(), "Acme", "sales@acme.example", "", "")
		require.NoError(t, err)
		cmd, err := commands.NewUpdateDealerCommand(d.ID(), "Acme North", "north@acme.example", "+1 555 0101", "2 High St")
		require.NoError(t, err)

		dealerRepo := new(MockDealerRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DealerRepository").Return(dealerRepo).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		dealerRepo.On("Get", ctx, d.ID()).Return(d, nil).Once()
		dealerRepo.On("Update", ctx, d).Return(nil).Once()
		factory := new(MockCatalogUoWFactory)
		factory.On("Create").Return(uow).Once()

		require.NoError(t, commands.NewUpdateDealerCommandHandler(factory).Handle(ctx, cmd))
		assert.Equal(t, "Acme North", d.Name())
		assert.Equal(t, "north@acme.example", d.Email())
		dealerRepo.AssertExpectations(t)
	})

	t.Run("should surface a taken email without committing", func(t *testing.T) {
		d, err := dealer.NewDealer(kernel.NewUUID(), "Acme", "sales@acme.example", "", "")
		require.NoError(t, err)
		cmd, err := commands.NewUpdateDealerCommand(d.ID(), "Acme", "taken@acme.example", "", "")
		require.NoError(t, err)

		dealerRepo := new(MockDealerRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("DealerRepository").Return(dealerRepo).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		dealerRepo.On("Get", ctx, d.ID()).Return(d, nil).Once()
		dealerRepo.On("Update", ctx, d).Return(errs.NewValueIsInvalidError("dealers_email_key")).Once()
		factory := new(MockCatalogUoWFactory)
		factory.On("Create").Return(uow).Once()

		err = commands.NewUpdateDealerCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("should require name and email", func(t *testing.T) {
		_, err := commands.NewUpdateDealerCommand(kernel.NewUUID(), " ", "", "", "")
		require.ErrorIs(t, err, dealer.ErrNameIsRequired)
		require.ErrorIs(t, err, dealer.ErrEmailIsRequired)
	})
}
