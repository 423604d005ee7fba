package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ownplate/internal/core/application/usecases/commands"
	"ownplate/internal/core/application/usecases/queries"
	"ownplate/internal/core/domain/model/kernel"
	"ownplate/internal/core/domain/model/order"
	"ownplate/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest is the request body for placing an order.
// Tip and SendSMS are optional; an absent tip means no tip.
type PlaceOrderRequest struct {
	Tip     float64 `json:"tip"`
	SendSMS bool    `json:"sendSMS"`
}

// UpdateOrderStatusRequest is the request body for updating an order's status.
// Status carries the numeric status enum; status names are accepted as well.
// Lng is an optional locale hint for the customer notification.
type UpdateOrderStatusRequest struct {
	Status json.RawMessage `json:"status"`
	Lng    string          `json:"lng"`
}

// statusFromRequest parses the wire status value, numeric enum or name.
// Status.Validate remains the gate for numeric values.
func statusFromRequest(raw json.RawMessage) (order.Status, error) {
	var number int
	if err := json.Unmarshal(raw, &number); err == nil {
		target := order.Status(number)
		return target, target.Validate()
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return order.StatusFromString(name)
	}

	return order.Unknown, errs.NewValueIsRequiredError("status")
}

// SuccessResponse is the JSON body returned for successful commands.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ActiveOrderResponse is one element of the active orders listing.
type ActiveOrderResponse struct {
	ID          string  `json:"id"`
	OrderNumber string  `json:"orderNumber"`
	Status      string  `json:"status"`
	TotalCharge string  `json:"totalCharge"`
	TimePlaced  *string `json:"timePlaced,omitempty"`
}

// Server handles HTTP requests for the ordering subsystem.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler        commands.PlaceOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:        placeOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
	}
}

// RegisterRoutes attaches the ordering endpoints to the echo instance.
// All routes require an authenticated caller.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	api := e.Group("/api/v1", auth)
	api.POST("/restaurants/:restaurantID/orders/:orderID/place", s.PlaceOrder)
	api.PUT("/restaurants/:restaurantID/orders/:orderID/status", s.UpdateOrderStatus)
	api.GET("/restaurants/:restaurantID/orders/active", s.GetActiveOrders)
}

// PlaceOrder handles POST /api/v1/restaurants/:restaurantID/orders/:orderID/place.
// The authenticated caller must be the owner of the order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	restaurantID, orderID, err := pathIDs(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid identifier: "+err.Error())
	}

	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPlaceOrderCommand(
		restaurantID,
		orderID,
		CallerUID(ctx),
		kernel.NewMoneyFromFloat(request.Tip),
		request.SendSMS,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// UpdateOrderStatus handles PUT /api/v1/restaurants/:restaurantID/orders/:orderID/status.
// The authenticated caller must be the restaurant operator.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	restaurantID, orderID, err := pathIDs(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid identifier: "+err.Error())
	}

	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := statusFromRequest(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+string(request.Status))
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		restaurantID,
		orderID,
		CallerUID(ctx),
		target,
		request.Lng,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// GetActiveOrders handles GET /api/v1/restaurants/:restaurantID/orders/active.
// Returns the restaurant's orders that still require attention.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantID"))
	if err != nil {
		return badRequest(ctx, "Invalid identifier: "+err.Error())
	}

	query, err := queries.NewGetActiveOrdersQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		var timePlaced *string
		if o.TimePlaced != nil {
			formatted := o.TimePlaced.UTC().Format(time.RFC3339)
			timePlaced = &formatted
		}

		response[i] = ActiveOrderResponse{
			ID:          o.ID.String(),
			OrderNumber: o.OrderNumber,
			Status:      o.Status.String(),
			TotalCharge: o.TotalCharge,
			TimePlaced:  timePlaced,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func pathIDs(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	return restaurantID, orderID, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps application errors to HTTP status codes. Validation and
// lookup failures are client errors, authorization failures are forbidden,
// state conflicts are precondition failures, everything else is internal.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrPermissionDenied):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrFailedPrecondition):
		code = http.StatusConflict
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
