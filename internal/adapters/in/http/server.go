package http

import (
	"log/slog"
	"net/http"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/generated/servers"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements servers.ServerInterface on top of the command and query handlers.
type Server struct {
	// Order commands
	createOrderHandler     commands.CreateOrderCommandHandler
	addOrderItemHandler    commands.AddOrderItemCommandHandler
	updateOrderItemHandler commands.UpdateOrderItemCommandHandler
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler
	confirmOrderHandler    commands.ConfirmOrderCommandHandler
	deliverOrderHandler    commands.DeliverOrderCommandHandler
	deleteOrderHandler     commands.DeleteOrderCommandHandler

	// Catalog commands
	createProductHandler      commands.CreateProductCommandHandler
	changeProductPriceHandler commands.ChangeProductPriceCommandHandler
	removeProductHandler      commands.RemoveProductCommandHandler
	createDealerHandler       commands.CreateDealerCommandHandler
	updateDealerHandler       commands.UpdateDealerCommandHandler
	removeDealerHandler       commands.RemoveDealerCommandHandler

	// Query handlers
	getOrderHandler      queries.GetOrderQueryHandler
	listOrdersHandler    queries.ListOrdersQueryHandler
	getInventoryHandler  queries.GetInventoryQueryHandler
	listInventoryHandler queries.ListInventoryQueryHandler
	getProductHandler    queries.GetProductQueryHandler
	listProductsHandler  queries.ListProductsQueryHandler
	getDealerHandler     queries.GetDealerQueryHandler
	listDealersHandler   queries.ListDealersQueryHandler

	logger *slog.Logger
}

// Handlers groups everything NewServer needs.
type Handlers struct {
	CreateOrder     commands.CreateOrderCommandHandler
	AddOrderItem    commands.AddOrderItemCommandHandler
	UpdateOrderItem commands.UpdateOrderItemCommandHandler
	RemoveOrderItem commands.RemoveOrderItemCommandHandler
	ConfirmOrder    commands.ConfirmOrderCommandHandler
	DeliverOrder    commands.DeliverOrderCommandHandler
	DeleteOrder     commands.DeleteOrderCommandHandler

	CreateProduct      commands.CreateProductCommandHandler
	ChangeProductPrice commands.ChangeProductPriceCommandHandler
	RemoveProduct      commands.RemoveProductCommandHandler
	CreateDealer       commands.CreateDealerCommandHandler
	UpdateDealer       commands.UpdateDealerCommandHandler
	RemoveDealer       commands.RemoveDealerCommandHandler

	GetOrder      queries.GetOrderQueryHandler
	ListOrders    queries.ListOrdersQueryHandler
	GetInventory  queries.GetInventoryQueryHandler
	ListInventory queries.ListInventoryQueryHandler
	GetProduct    queries.GetProductQueryHandler
	ListProducts  queries.ListProductsQueryHandler
	GetDealer     queries.GetDealerQueryHandler
	ListDealers   queries.ListDealersQueryHandler
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		createOrderHandler:        h.CreateOrder,
		addOrderItemHandler:       h.AddOrderItem,
		updateOrderItemHandler:    h.UpdateOrderItem,
		removeOrderItemHandler:    h.RemoveOrderItem,
		confirmOrderHandler:       h.ConfirmOrder,
		deliverOrderHandler:       h.DeliverOrder,
		deleteOrderHandler:        h.DeleteOrder,
		createProductHandler:      h.CreateProduct,
		changeProductPriceHandler: h.ChangeProductPrice,
		removeProductHandler:      h.RemoveProduct,
		createDealerHandler:       h.CreateDealer,
		updateDealerHandler:       h.UpdateDealer,
		removeDealerHandler:       h.RemoveDealer,
		getOrderHandler:           h.GetOrder,
		listOrdersHandler:         h.ListOrders,
		getInventoryHandler:       h.GetInventory,
		listInventoryHandler:      h.ListInventory,
		getProductHandler:         h.GetProduct,
		listProductsHandler:       h.ListProducts,
		getDealerHandler:          h.GetDealer,
		listDealersHandler:        h.ListDealers,
		logger:                    logger.With("component", "http_server"),
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	dealerID, err := toKernelUUID(body.DealerId)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, dealerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	number, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedOrder{Id: orderID.Bytes(), Number: number.String()})
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var status *order.Status
	if params.Status != nil {
		parsed, err := order.StatusFromString(string(*params.Status))
		if err != nil {
			return s.fail(ctx, err)
		}
		status = &parsed
	}

	var dealerID *kernel.UUID
	if params.DealerId != nil {
		parsed, err := toKernelUUID(*params.DealerId)
		if err != nil {
			return s.fail(ctx, err)
		}
		dealerID = &parsed
	}

	query, err := queries.NewListOrdersQuery(status, dealerID, deref(params.Limit), deref(params.Offset))
	if err != nil {
		return s.fail(ctx, err)
	}

	summaries, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.OrderSummary, len(summaries))
	for i, summary := range summaries {
		response[i] = toOrderSummary(summary)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	summary := toOrderSummary(resp.OrderSummary)
	items := make([]servers.OrderItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = servers.OrderItem{
			Id:        item.ID.Bytes(),
			ProductId: item.ProductID.Bytes(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
			LineTotal: item.LineTotal.String(),
		}
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:          summary.Id,
		Number:      summary.Number,
		DealerId:    summary.DealerId,
		Status:      summary.Status,
		TotalAmount: summary.TotalAmount,
		CreatedAt:   summary.CreatedAt,
		UpdatedAt:   summary.UpdatedAt,
		Items:       items,
	})
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}. Only drafts can be deleted.
func (s *Server) DeleteOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderItem handles POST /api/v1/orders/{orderId}/items.
func (s *Server) AddOrderItem(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.NewOrderItem
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}
	productID, err := toKernelUUID(body.ProductId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, productID, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	itemID, err := s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: itemID.Bytes()})
}

// UpdateOrderItem handles PUT /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) UpdateOrderItem(ctx echo.Context, orderId servers.OrderId, itemId servers.ItemId) error {
	var body servers.ItemQuantity
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	orderID, itemID, err := toOrderAndItem(orderId, itemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderItemCommand(orderID, itemID, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.updateOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/{orderId}/items/{itemId}.
func (s *Server) RemoveOrderItem(ctx echo.Context, orderId servers.OrderId, itemId servers.ItemId) error {
	orderID, itemID, err := toOrderAndItem(orderId, itemId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, itemID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.removeOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmOrder handles POST /api/v1/orders/{orderId}/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/{orderId}/deliver.
func (s *Server) DeliverOrder(ctx echo.Context, orderId servers.OrderId) error {
	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetInventory handles GET /api/v1/inventory/{productId}.
func (s *Server) GetInventory(ctx echo.Context, productId servers.ProductId) error {
	productID, err := toKernelUUID(productId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetInventoryQuery(productID)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.getInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toInventory(resp))
}

// ListInventory handles GET /api/v1/inventory.
func (s *Server) ListInventory(ctx echo.Context, params servers.ListInventoryParams) error {
	query, err := queries.NewListInventoryQuery(deref(params.Limit), deref(params.Offset))
	if err != nil {
		return s.fail(ctx, err)
	}

	stock, err := s.listInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Inventory, len(stock))
	for i, entry := range stock {
		response[i] = toInventory(entry)
	}

	return ctx.JSON(http.StatusOK, response)
}

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(ctx echo.Context, params servers.ListProductsParams) error {
	query, err := queries.NewListProductsQuery(deref(params.Limit), deref(params.Offset))
	if err != nil {
		return s.fail(ctx, err)
	}

	products, err := s.listProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Product, len(products))
	for i, p := range products {
		response[i] = toProduct(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/v1/products/{productId}.
func (s *Server) GetProduct(ctx echo.Context, productId servers.ProductId) error {
	productID, err := toKernelUUID(productId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.getProductHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProduct(p))
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.NewProduct
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	price, err := kernel.MoneyFromString(body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID, body.Sku, body.Name, deref(body.Description), price, body.InitialStock,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: productID.Bytes()})
}

// ChangeProductPrice handles PUT /api/v1/products/{productId}/price.
func (s *Server) ChangeProductPrice(ctx echo.Context, productId servers.ProductId) error {
	var body servers.ProductPrice
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	productID, err := toKernelUUID(productId)
	if err != nil {
		return s.fail(ctx, err)
	}

	price, err := kernel.MoneyFromString(body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeProductPriceCommand(productID, price)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.changeProductPriceHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveProduct handles DELETE /api/v1/products/{productId}.
func (s *Server) RemoveProduct(ctx echo.Context, productId servers.ProductId) error {
	productID, err := toKernelUUID(productId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveProductCommand(productID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.removeProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateDealer handles POST /api/v1/dealers.
func (s *Server) CreateDealer(ctx echo.Context) error {
	var body servers.NewDealer
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	dealerID := kernel.NewUUID()
	cmd, err := commands.NewCreateDealerCommand(
		dealerID, body.Name, string(body.Email), deref(body.Phone), deref(body.Address),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.createDealerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: dealerID.Bytes()})
}

// ListDealers handles GET /api/v1/dealers.
func (s *Server) ListDealers(ctx echo.Context, params servers.ListDealersParams) error {
	query, err := queries.NewListDealersQuery(deref(params.Limit), deref(params.Offset))
	if err != nil {
		return s.fail(ctx, err)
	}

	dealers, err := s.listDealersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Dealer, len(dealers))
	for i, d := range dealers {
		response[i] = toDealer(d)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDealer handles GET /api/v1/dealers/{dealerId}.
func (s *Server) GetDealer(ctx echo.Context, dealerId servers.DealerId) error {
	dealerID, err := toKernelUUID(dealerId)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetDealerQuery(dealerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.getDealerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDealer(d))
}

// UpdateDealer handles PUT /api/v1/dealers/{dealerId}. Omitted phone and address are cleared.
func (s *Server) UpdateDealer(ctx echo.Context, dealerId servers.DealerId) error {
	var body servers.NewDealer
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	dealerID, err := toKernelUUID(dealerId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateDealerCommand(
		dealerID, body.Name, string(body.Email), deref(body.Phone), deref(body.Address),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.updateDealerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveDealer handles DELETE /api/v1/dealers/{dealerId}.
func (s *Server) RemoveDealer(ctx echo.Context, dealerId servers.DealerId) error {
	dealerID, err := toKernelUUID(dealerId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRemoveDealerCommand(dealerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.removeDealerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// bind decodes the request body into dst and validates it.
func (s *Server) bind(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		return &malformedRequestError{cause: err}
	}
	return ctx.Validate(dst)
}

func toOrderSummary(summary queries.OrderSummary) servers.OrderSummary {
	return servers.OrderSummary{
		Id:          summary.ID.Bytes(),
		Number:      summary.Number,
		DealerId:    summary.DealerID.Bytes(),
		Status:      servers.OrderStatus(summary.Status.String()),
		TotalAmount: summary.TotalAmount.String(),
		CreatedAt:   summary.CreatedAt,
		UpdatedAt:   summary.UpdatedAt,
	}
}

func toInventory(entry queries.GetInventoryQueryResponse) servers.Inventory {
	return servers.Inventory{
		ProductId: entry.ProductID.Bytes(),
		Sku:       entry.SKU,
		Name:      entry.Name,
		Quantity:  entry.Quantity,
		UpdatedAt: entry.UpdatedAt,
	}
}

func toProduct(p queries.ProductResponse) servers.Product {
	return servers.Product{
		Id:          p.ID.Bytes(),
		Sku:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		CreatedAt:   p.CreatedAt,
	}
}

func toDealer(d queries.DealerResponse) servers.Dealer {
	return servers.Dealer{
		Id:        d.ID.Bytes(),
		Name:      d.Name,
		Email:     openapi_types.Email(d.Email),
		Phone:     d.Phone,
		Address:   d.Address,
		CreatedAt: d.CreatedAt,
	}
}

func toKernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOrderAndItem(orderId, itemId uuid.UUID) (kernel.UUID, kernel.UUID, error) {
	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	itemID, err := toKernelUUID(itemId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return orderID, itemID, nil
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}
