// Package http exposes the application use cases over a REST API.
package http

import (
	"net/http"
	"time"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// defaultReportWindow is the trailing period used when a report request
// carries no explicit start and end.
const defaultReportWindow = 30 * 24 * time.Hour

type Server struct {
	placeOrderHandler       commands.PlaceOrderCommandHandler
	addItemsHandler         commands.AddItemsCommandHandler
	updateItemStatusHandler commands.UpdateItemStatusCommandHandler
	createMenuItemHandler   commands.CreateMenuItemCommandHandler
	createTableHandler      commands.CreateTableCommandHandler

	getOrderHandler        queries.GetOrderQueryHandler
	getMenuHandler         queries.GetMenuQueryHandler
	getKitchenQueueHandler queries.GetKitchenQueueQueryHandler
	getReportHandler       queries.GetReportQueryHandler
}

func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	addItemsHandler commands.AddItemsCommandHandler,
	updateItemStatusHandler commands.UpdateItemStatusCommandHandler,
	createMenuItemHandler commands.CreateMenuItemCommandHandler,
	createTableHandler commands.CreateTableCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getKitchenQueueHandler queries.GetKitchenQueueQueryHandler,
	getReportHandler queries.GetReportQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:       placeOrderHandler,
		addItemsHandler:         addItemsHandler,
		updateItemStatusHandler: updateItemStatusHandler,
		createMenuItemHandler:   createMenuItemHandler,
		createTableHandler:      createTableHandler,
		getOrderHandler:         getOrderHandler,
		getMenuHandler:          getMenuHandler,
		getKitchenQueueHandler:  getKitchenQueueHandler,
		getReportHandler:        getReportHandler,
	}
}

// RegisterRoutes wires the API surface into the echo instance. Everything
// under /api/v1 requires a Bearer token resolved by the identity provider.
func (s *Server) RegisterRoutes(e *echo.Echo, identity ports.IdentityProvider) {
	e.Use(middleware.Recover())

	e.GET("/health", s.Health)

	api := e.Group("/api/v1", AuthMiddleware(identity))

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/items", s.AddItems)
	api.PATCH("/order-items/:itemId/status", s.UpdateItemStatus)

	api.GET("/kitchen/queue", s.GetKitchenQueue)
	api.GET("/reports", s.GetReport)

	api.GET("/menu", s.GetMenu)
	api.POST("/menu-items", s.CreateMenuItem)
	api.POST("/tables", s.CreateTable)
}

func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) PlaceOrder(ctx echo.Context) error {
	restaurant, ok := restaurantID(ctx)
	if !ok {
		return badRequest(ctx, "restaurant identity is missing")
	}

	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err.Error())
	}

	tableID, err := kernel.UUIDFromString(request.TableID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	lines, err := linesFromRequest(request.Items)
	if err != nil {
		return problem(ctx, err)
	}

	command, err := commands.NewPlaceOrderCommand(
		kernel.NewUUID(), restaurant, tableID, request.CustomerNote, lines)
	if err != nil {
		return problem(ctx, err)
	}

	placed, err := s.placeOrderHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(placed))
}

func (s *Server) GetOrder(ctx echo.Context) error {
	restaurant, ok := restaurantID(ctx)
	if !ok {
		return badRequest(ctx, "restaurant identity is missing")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID, restaurant)
	if err != nil {
		return problem(ctx, err)
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(found))
}

func (s *Server) AddItems(ctx echo.Context) error {
	restaurant, ok := restaurantID(ctx)
	if !ok {
		return badRequest(ctx, "restaurant identity is missing")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var request AddItemsRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err.Error())
	}

	lines, err := linesFromRequest(request.Items)
	if err != nil {
		return problem(ctx, err)
	}

	command, err := commands.NewAddItemsCommand(orderID, restaurant, lines)
	if err != nil {
		return problem(ctx, err)
	}

	result, err := s.addItemsHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AddItemsResponse{
		Batch: result.Batch,
		Order: orderToResponse(result.Order),
	})
}

func (s *Server) UpdateItemStatus(ctx echo.Context) error {
	restaurant, ok := restaurantID(ctx)
	if !ok {
		return badRequest(ctx, "restaurant identity is missing")
	}

	itemID, err := kernel.UUIDFromString(ctx.Param("itemId"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var request UpdateItemStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err.Error())
	}

	status, err := order.ParseItemStatus(request.Status)
	if err != nil {
		return problem(ctx, err)
	}

	command, err := commands.NewUpdateItemStatusCommand(itemID, restaurant, status)
	if err != nil {
		return problem(ctx, err)
	}

	result, err := s.updateItemStatusHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, UpdateItemStatusResponse{
		Item:  orderItemToResponse(result.Item),
		Order: orderToResponse(result.Order),
	})
}

func (s *Server) GetKitchenQueue(ctx echo.Context) error {
	restaurant, ok := restaurantID(ctx)
	if !ok {
		return badRequest(ctx, "restaurant identity is missing")
	}

	statusFilter := order.StatusUnknown
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			return problem(ctx, err)
		}
		statusFilter = parsed
	}

	query, err := queries.NewGetKitchenQueueQuery(restaurant, statusFilter, ctx.QueryParam("category"))
	if err != nil {
		return problem(ctx, err)
	}

	queue, err := s.getKitchenQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, queueToResponse(queue))
}

func (s *Server) GetReport(ctx echo.Context) error {
	restaurant, ok := restaurantID(ctx)
	if !ok {
		return badRequest(ctx, "restaurant identity is missing")
	}

	start, end, err := reportWindow(ctx.QueryParam("start"), ctx.QueryParam("end"))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetReportQuery(restaurant, start, end)
	if err != nil {
		return problem(ctx, err)
	}

	report, err := s.getReportHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, reportToResponse(report))
}

func (s *Server) GetMenu(ctx echo.Context) error {
	restaurant, ok := restaurantID(ctx)
	if !ok {
		return badRequest(ctx, "restaurant identity is missing")
	}

	query, err := queries.NewGetMenuQuery(restaurant)
	if err != nil {
		return problem(ctx, err)
	}

	menu, err := s.getMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusOK, menuToResponse(menu))
}

func (s *Server) CreateMenuItem(ctx echo.Context) error {
	restaurant, ok := restaurantID(ctx)
	if !ok {
		return badRequest(ctx, "restaurant identity is missing")
	}

	var request CreateMenuItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err.Error())
	}

	price, err := kernel.NewMoneyFromCents(request.PriceCents)
	if err != nil {
		return problem(ctx, err)
	}

	command, err := commands.NewCreateMenuItemCommand(
		kernel.NewUUID(), restaurant, request.Name, request.Category, price)
	if err != nil {
		return problem(ctx, err)
	}

	created, err := s.createMenuItemHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, MenuItemResponse{
		ID:         created.ID().String(),
		Name:       created.Name(),
		Category:   created.Category(),
		PriceCents: created.Price().Cents(),
		Price:      created.Price().String(),
		Available:  created.IsAvailable(),
	})
}

func (s *Server) CreateTable(ctx echo.Context) error {
	restaurant, ok := restaurantID(ctx)
	if !ok {
		return badRequest(ctx, "restaurant identity is missing")
	}

	var request CreateTableRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, err.Error())
	}

	command, err := commands.NewCreateTableCommand(kernel.NewUUID(), restaurant, request.Label)
	if err != nil {
		return problem(ctx, err)
	}

	created, err := s.createTableHandler.Handle(ctx.Request().Context(), command)
	if err != nil {
		return problem(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, TableResponse{
		ID:     created.ID().String(),
		Label:  created.Label(),
		Active: created.IsActive(),
	})
}

func linesFromRequest(items []OrderLineRequest) ([]commands.OrderLine, error) {
	lines := make([]commands.OrderLine, 0, len(items))
	for _, item := range items {
		menuItemID, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("menuItemId", err)
		}

		line, err := commands.NewOrderLine(kernel.NewUUID(), menuItemID, item.Quantity, item.Notes)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func reportWindow(rawStart, rawEnd string) (time.Time, time.Time, error) {
	if rawStart == "" && rawEnd == "" {
		end := time.Now().UTC()
		return end.Add(-defaultReportWindow), end, nil
	}

	start, err := time.Parse(time.RFC3339, rawStart)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := time.Parse(time.RFC3339, rawEnd)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return start, end, nil
}
