// Package http exposes the back-office order boards and actions over an
// echo admin API. Handlers translate HTTP to coordinator calls; all business
// rules live below this layer.
package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"backoffice/internal/core/application/coordinator"
	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/core/application/usecases/queries"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the admin HTTP API. Board reads are served from the
// coordinator snapshot; mutations go through the coordinator so every write
// is confirmation-gated and followed by a board reload.
type Server struct {
	coordinator *coordinator.Coordinator
}

// NewServer creates a new HTTP server on top of the lifecycle coordinator.
func NewServer(c *coordinator.Coordinator) *Server {
	return &Server{coordinator: c}
}

// RegisterRoutes mounts the admin API on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(ConfirmDecisionMiddleware())

	api := e.Group("/api/v1")
	api.GET("/orders/pending", s.GetPendingOrders)
	api.GET("/orders/in-progress", s.GetInProgressOrders)
	api.GET("/orders/completed", s.GetCompletedOrders)
	api.POST("/orders/:id/confirm", s.ConfirmOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.PUT("/orders/:id/status", s.ChangeOrderStatus)
	api.PUT("/orders/:id", s.UpdateOrder)
}

// errorResponse is the uniform error body of the admin API.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// orderResponse is one board row as rendered to the client. Totals are
// rounded here, at the display boundary; stored values stay exact.
type orderResponse struct {
	ID            string             `json:"id"`
	Client        clientResponse     `json:"client"`
	PaymentMethod string             `json:"paymentMethod"`
	Status        string             `json:"status"`
	TotalPrice    float64            `json:"totalPrice"`
	CreatedAt     time.Time          `json:"createdAt"`
	Products      []productsResponse `json:"products"`
}

type clientResponse struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	City    string `json:"city"`
	Address string `json:"address"`
}

type productsResponse struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ProductID string  `json:"productId,omitempty"`
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, renderBoard(s.coordinator.Snapshot().Pending))
}

// GetInProgressOrders handles GET /api/v1/orders/in-progress.
func (s *Server) GetInProgressOrders(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, renderBoard(s.coordinator.Snapshot().InProgress))
}

// GetCompletedOrders handles GET /api/v1/orders/completed.
func (s *Server) GetCompletedOrders(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, renderBoard(s.coordinator.Snapshot().Completed))
}

// ConfirmOrder handles POST /api/v1/orders/:id/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	if err = s.coordinator.Confirm(ctx.Request().Context(), id); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
//
// With ?intent=reject the action is the review-stage rejection of a Pending
// order; otherwise it is the general delete offered on every board. Both
// remove the record, they differ only in the confirmation prompt.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	reqCtx := ctx.Request().Context()
	if ctx.QueryParam("intent") == "reject" {
		err = s.coordinator.Reject(reqCtx, id)
	} else {
		err = s.coordinator.Delete(reqCtx, id)
	}
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// changeStatusRequest is the body of PUT /api/v1/orders/:id/status.
type changeStatusRequest struct {
	Status string `json:"status"`
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req changeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+req.Status)
	}

	if err = s.coordinator.ChangeStatus(ctx.Request().Context(), id, target); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// updateOrderRequest is the body of PUT /api/v1/orders/:id: the complete
// edited content of one Pending order.
type updateOrderRequest struct {
	Client        clientRequest     `json:"client"`
	PaymentMethod string            `json:"paymentMethod"`
	Products      []lineItemRequest `json:"products"`
}

type clientRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	City    string `json:"city"`
	Address string `json:"address"`
}

// lineItemRequest keeps price and quantity as raw JSON: the editing form
// submits blanks and strings as well as numbers, and the edit session owns
// the coercion rules.
type lineItemRequest struct {
	Name      string          `json:"name"`
	Price     json.RawMessage `json:"price"`
	Quantity  json.RawMessage `json:"quantity"`
	ProductID string          `json:"productId"`
}

// UpdateOrder handles PUT /api/v1/orders/:id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req updateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return badRequest(ctx, "Invalid payment method: "+req.PaymentMethod)
	}

	products := make([]commands.LineItemInput, 0, len(req.Products))
	for _, item := range req.Products {
		products = append(products, commands.LineItemInput{
			Name:      item.Name,
			Price:     rawScalar(item.Price),
			Quantity:  rawScalar(item.Quantity),
			ProductID: item.ProductID,
		})
	}

	cmd, err := commands.NewUpdateOrderCommand(
		id,
		order.Client{
			Name:    req.Client.Name,
			Contact: req.Client.Contact,
			City:    req.Client.City,
			Address: req.Client.Address,
		},
		paymentMethod,
		products,
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.coordinator.SaveEdits(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func parseOrderID(ctx echo.Context) (kernel.ObjectID, error) {
	return kernel.ObjectIDFromHex(ctx.Param("id"))
}

func renderBoard(rows []queries.OrderResponse) []orderResponse {
	out := make([]orderResponse, 0, len(rows))
	for _, row := range rows {
		products := make([]productsResponse, 0, len(row.Products))
		for _, item := range row.Products {
			products = append(products, productsResponse{
				Name:      item.Name,
				Price:     item.Price,
				Quantity:  item.Quantity,
				ProductID: item.ProductID,
			})
		}

		out = append(out, orderResponse{
			ID: row.ID.Hex(),
			Client: clientResponse{
				Name:    row.ClientName,
				Contact: row.ClientContact,
				City:    row.ClientCity,
				Address: row.ClientAddress,
			},
			PaymentMethod: row.PaymentMethod.String(),
			Status:        row.Status.String(),
			TotalPrice:    kernel.RoundMoney(row.TotalPrice),
			CreatedAt:     row.CreatedAt,
			Products:      products,
		})
	}
	return out
}

// rawScalar renders a raw JSON scalar as the string the edit session
// expects: quoted strings are unwrapped, numbers pass through literally,
// null and absent values become empty.
func rawScalar(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	}
	return string(raw)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps coordinator failures onto the API's status codes. A
// declined confirmation is its own code so clients can tell "not done by
// choice" from "failed".
func writeError(ctx echo.Context, err error) error {
	var notFound *errs.ObjectNotFoundError

	switch {
	case errors.Is(err, ports.ErrConfirmationDeclined):
		return ctx.JSON(http.StatusPreconditionFailed, errorResponse{
			Code:    http.StatusPreconditionFailed,
			Message: "Action declined at confirmation",
		})
	case errors.As(err, &notFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, order.ErrOrderIsNotEditable):
		return ctx.JSON(http.StatusConflict, errorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case order.IsValidationError(err):
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}
