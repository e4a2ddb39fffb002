// Package http exposes the order store and the cutoff engine over a REST API.
// Handlers translate between JSON payloads and application use cases; no
// business logic lives here.
package http

import (
	"net/http"
	"time"

	"osonish/internal/core/application/usecases/commands"
	"osonish/internal/core/application/usecases/queries"
	"osonish/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	autoTransitionHandler commands.AutoTransitionOrdersCommandHandler

	// Query handlers
	getOrdersDueHandler        queries.GetOrdersDueQueryHandler
	getAutoTransitionedHandler queries.GetAutoTransitionedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	autoTransitionHandler commands.AutoTransitionOrdersCommandHandler,
	getOrdersDueHandler queries.GetOrdersDueQueryHandler,
	getAutoTransitionedHandler queries.GetAutoTransitionedOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		autoTransitionHandler:      autoTransitionHandler,
		getOrdersDueHandler:        getOrdersDueHandler,
		getAutoTransitionedHandler: getAutoTransitionedHandler,
	}
}

// Error is the JSON error body returned by all handlers.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the request body for order creation.
type NewOrder struct {
	CustomerID    string `json:"customer_id"`
	Title         string `json:"title"`
	ServiceDate   string `json:"service_date"`
	Budget        int    `json:"budget"`
	WorkersNeeded int    `json:"workers_needed"`
}

// CreatedOrder is the response body for a successfully created order.
type CreatedOrder struct {
	ID string `json:"id"`
}

// OrderSummary is one order in a due-orders listing.
type OrderSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// TransitionedOrder is one order in an auto-transitioned listing.
type TransitionedOrder struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Status        string    `json:"status"`
	AutoCompleted bool      `json:"auto_completed"`
	AutoCancelled bool      `json:"auto_cancelled"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AutoTransitionRequest is the request body for a manual cutoff run.
// An empty marker runs over the whole store.
type AutoTransitionRequest struct {
	Marker string `json:"marker"`
}

// AutoTransitionResult is the response body of a cutoff run.
type AutoTransitionResult struct {
	CompletedCount int                   `json:"completed_count"`
	CancelledCount int                   `json:"cancelled_count"`
	SkippedCount   int                   `json:"skipped_count"`
	Errors         []AutoTransitionError `json:"errors"`
}

// AutoTransitionError is one per-order failure of a cutoff run.
type AutoTransitionError struct {
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}

// CreateOrder handles POST /api/v1/orders - posts a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromString(newOrder.CustomerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer ID: " + err.Error(),
		})
	}

	serviceDay, err := parseServiceDate(newOrder.ServiceDate)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid service date: " + err.Error(),
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, newOrder.Title, serviceDay, newOrder.Budget, newOrder.WorkersNeeded)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create order",
		})
	}

	return ctx.JSON(http.StatusCreated, CreatedOrder{ID: orderID.String()})
}

// GetOrdersDue handles GET /api/v1/orders/due - lists the orders the next
// cutoff run for the given day would act on. The day defaults to today.
func (s *Server) GetOrdersDue(ctx echo.Context) error {
	day := kernel.ServiceDateOf(time.Now())
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := parseServiceDate(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid date: " + err.Error(),
			})
		}
		day = parsed
	}

	query, err := queries.NewGetOrdersDueQuery(day)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	orders, err := s.getOrdersDueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = OrderSummary{
			ID:     o.ID.String(),
			Title:  o.Title,
			Status: o.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAutoTransitionedOrders handles GET /api/v1/orders/auto-transitioned -
// lists the orders the cutoff engine transitioned on the given day.
func (s *Server) GetAutoTransitionedOrders(ctx echo.Context) error {
	day := kernel.ServiceDateOf(time.Now())
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := parseServiceDate(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid date: " + err.Error(),
			})
		}
		day = parsed
	}

	query, err := queries.NewGetAutoTransitionedOrdersQuery(day)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	orders, err := s.getAutoTransitionedHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]TransitionedOrder, len(orders))
	for i, o := range orders {
		response[i] = TransitionedOrder{
			ID:            o.ID.String(),
			Title:         o.Title,
			Status:        o.Status,
			AutoCompleted: o.AutoCompleted,
			AutoCancelled: o.AutoCancelled,
			UpdatedAt:     o.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RunAutoTransitions handles POST /api/v1/auto-transitions - runs the cutoff
// engine immediately. A marker in the body restricts the run to orders whose
// title contains it, which is how sandbox runs stay off real orders.
func (s *Server) RunAutoTransitions(ctx echo.Context) error {
	var request AutoTransitionRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	scope := kernel.NewAllScope()
	if request.Marker != "" {
		restricted, err := kernel.NewRestrictedScope(request.Marker)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid marker: " + err.Error(),
			})
		}
		scope = restricted
	}

	cmd, err := commands.NewAutoTransitionOrdersCommand(scope)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	result, err := s.autoTransitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Cutoff run failed: " + err.Error(),
		})
	}

	response := AutoTransitionResult{
		CompletedCount: result.CompletedCount,
		CancelledCount: result.CancelledCount,
		SkippedCount:   result.SkippedCount,
		Errors:         make([]AutoTransitionError, len(result.Errors)),
	}
	for i, orderErr := range result.Errors {
		response.Errors[i] = AutoTransitionError{
			OrderID: orderErr.OrderID.String(),
			Message: orderErr.Message,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// parseServiceDate parses a "2006-01-02" date string into a ServiceDate.
func parseServiceDate(raw string) (kernel.ServiceDate, error) {
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return kernel.ServiceDate{}, err
	}
	return kernel.NewServiceDate(parsed.Date())
}
