// Package http exposes the order lifecycle over a REST API.
// It translates HTTP requests into commands and queries and maps domain
// errors onto response status codes.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"orderservice/internal/core/application/usecases/commands"
	"orderservice/internal/core/application/usecases/queries"
	"orderservice/internal/core/domain/model/kernel"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// customerIDHeader carries the identity of the caller. There is no session
// layer; ownership checks rely entirely on this header.
const customerIDHeader = "X-Customer-Id"

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// CreateOrderRequest is the payload for placing a new order.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

// OrderItemRequest describes a single requested order line.
type OrderItemRequest struct {
	ProductName     string          `json:"productName"`
	ProductID       int             `json:"productId"`
	ProductQuantity int             `json:"productQuantity"`
	ProductPrice    decimal.Decimal `json:"productPrice"`
}

// CreateOrderResponse carries the identifier assigned to a new order.
type CreateOrderResponse struct {
	OrderID string `json:"orderId"`
}

// OrderResponse is the read representation of an order.
type OrderResponse struct {
	OrderID     string              `json:"orderId"`
	CustomerID  string              `json:"customerId"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	CreatedAt   time.Time           `json:"createdAt"`
	Items       []OrderItemResponse `json:"items"`
}

// OrderItemResponse is the read representation of one order line.
type OrderItemResponse struct {
	ProductName     string          `json:"productName"`
	ProductPrice    decimal.Decimal `json:"productPrice"`
	ProductQuantity int             `json:"productQuantity"`
	ProductID       int             `json:"productId"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	cancelOrderHandler commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler     queries.GetOrderQueryHandler
	getAllOrdersHandler queries.GetAllOrdersQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		cancelOrderHandler:  cancelOrderHandler,
		getOrderHandler:     getOrderHandler,
		getAllOrdersHandler: getAllOrdersHandler,
		logger:              logger.With("component", "http_server"),
	}
}

// RegisterRoutes attaches the order endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/orders")
	api.POST("", s.CreateOrder)
	api.GET("", s.GetOrders)
	api.GET("/:orderId", s.GetOrder)
	api.PATCH("/:orderId/cancel", s.CancelOrder)
}

// CreateOrder handles POST /api/orders - places a new order for the calling customer.
func (s *Server) CreateOrder(ctx echo.Context) error {
	customerID := ctx.Request().Header.Get(customerIDHeader)
	if customerID == "" {
		return s.respondError(ctx, errs.NewValueIsRequiredError(customerIDHeader+" header"))
	}

	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, APIResponse{Message: "Invalid request body"})
	}

	items := make([]commands.NewOrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, commands.NewOrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.ProductQuantity,
			UnitPrice:   item.ProductPrice,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(customerID, items)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orderID, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	s.logger.Info("order created", "orderId", orderID.String(), "customerId", customerID)

	return ctx.JSON(http.StatusCreated, APIResponse{
		Message: "Order placed successfully",
		Data:    CreateOrderResponse{OrderID: orderID.String()},
	})
}

// GetOrder handles GET /api/orders/:orderId - retrieves one order with its lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, APIResponse{
		Message: "Order retrieved successfully",
		Data:    toOrderResponse(result),
	})
}

// GetOrders handles GET /api/orders?status= - lists orders, optionally by status.
func (s *Server) GetOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return s.respondError(ctx, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetAllOrdersQuery(statusFilter)
	if err != nil {
		return s.respondError(ctx, err)
	}

	results, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	responses := make([]OrderResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, toOrderResponse(result))
	}

	return ctx.JSON(http.StatusOK, APIResponse{
		Message: "All orders retrieved successfully",
		Data:    responses,
	})
}

// CancelOrder handles PATCH /api/orders/:orderId/cancel - cancels a pending
// order on behalf of its owner.
func (s *Server) CancelOrder(ctx echo.Context) error {
	customerID := ctx.Request().Header.Get(customerIDHeader)
	if customerID == "" {
		return s.respondError(ctx, errs.NewValueIsRequiredError(customerIDHeader+" header"))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return s.respondError(ctx, errs.NewValueIsInvalidErrorWithCause("orderId", err))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, customerID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	s.logger.Info("order cancelled", "orderId", orderID.String(), "customerId", customerID)

	return ctx.JSON(http.StatusOK, APIResponse{Message: "Order cancelled successfully"})
}

// respondError maps domain errors onto HTTP status codes. Unknown errors are
// answered with a generic 500 so internals never leak to callers.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	default:
		s.logger.Error("request failed", "error", err)
		return ctx.JSON(http.StatusInternalServerError, APIResponse{Message: "Internal server error"})
	}

	return ctx.JSON(status, APIResponse{Message: err.Error()})
}

func toOrderResponse(result queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, OrderItemResponse{
			ProductName:     item.ProductName,
			ProductPrice:    item.UnitPrice,
			ProductQuantity: item.Quantity,
			ProductID:       item.ProductID,
		})
	}

	return OrderResponse{
		OrderID:     result.ID.String(),
		CustomerID:  result.CustomerID,
		Status:      result.Status.String(),
		TotalAmount: result.TotalAmount,
		CreatedAt:   result.CreatedAt,
		Items:       items,
	}
}
