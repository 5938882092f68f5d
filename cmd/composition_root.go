package cmd

import (
	"log/slog"
	"strings"

	"sales/internal/adapters/in/http"
	"sales/internal/adapters/out/kafka"
	"sales/internal/adapters/out/postgres"
	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/ports"
	"sales/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  *kafka.OrderEventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	publisher, err := kafka.NewOrderEventPublisher(strings.Split(configs.KafkaHost, ","), configs.KafkaOrderChangedTopic)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, configs.DBLockTimeout),
		publisher:  publisher,
		logger:     logger,
	}, nil
}

// Close releases the broker connection.
func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateAddOrderItemCommandHandler() commands.AddOrderItemCommandHandler {
	return commands.NewAddOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderItemCommandHandler() commands.UpdateOrderItemCommandHandler {
	return commands.NewUpdateOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	return commands.NewRemoveOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateChangeProductPriceCommandHandler() commands.ChangeProductPriceCommandHandler {
	return commands.NewChangeProductPriceCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateRemoveProductCommandHandler() commands.RemoveProductCommandHandler {
	return commands.NewRemoveProductCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateDealerCommandHandler() commands.CreateDealerCommandHandler {
	return commands.NewCreateDealerCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDealerCommandHandler() commands.UpdateDealerCommandHandler {
	return commands.NewUpdateDealerCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateRemoveDealerCommandHandler() commands.RemoveDealerCommandHandler {
	return commands.NewRemoveDealerCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	var publisher ports.EventPublisher = c.publisher
	return commands.NewRelayOutboxCommandHandler(c.outboxUoWFactory(), publisher)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInventoryQueryHandler() queries.GetInventoryQueryHandler {
	return queries.NewGetInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListInventoryQueryHandler() queries.ListInventoryQueryHandler {
	return queries.NewListInventoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return queries.NewListProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDealerQueryHandler() queries.GetDealerQueryHandler {
	return queries.NewGetDealerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDealersQueryHandler() queries.ListDealersQueryHandler {
	return queries.NewListDealersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		AddOrderItem:       c.CreateAddOrderItemCommandHandler(),
		UpdateOrderItem:    c.CreateUpdateOrderItemCommandHandler(),
		RemoveOrderItem:    c.CreateRemoveOrderItemCommandHandler(),
		ConfirmOrder:       c.CreateConfirmOrderCommandHandler(),
		DeliverOrder:       c.CreateDeliverOrderCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		CreateProduct:      c.CreateCreateProductCommandHandler(),
		ChangeProductPrice: c.CreateChangeProductPriceCommandHandler(),
		RemoveProduct:      c.CreateRemoveProductCommandHandler(),
		CreateDealer:       c.CreateCreateDealerCommandHandler(),
		UpdateDealer:       c.CreateUpdateDealerCommandHandler(),
		RemoveDealer:       c.CreateRemoveDealerCommandHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetInventory:       c.CreateGetInventoryQueryHandler(),
		ListInventory:      c.CreateListInventoryQueryHandler(),
		GetProduct:         c.CreateGetProductQueryHandler(),
		ListProducts:       c.CreateListProductsQueryHandler(),
		GetDealer:          c.CreateGetDealerQueryHandler(),
		ListDealers:        c.CreateListDealersQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRelayOutboxCommandHandler(), c.configs.OutboxBatchSize, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
