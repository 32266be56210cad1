package http

import (
	"context"
	"net/http"
	"time"

	"orderdesk/internal/adapters/in/http/api"
	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/editlock"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/lineitem"
	"orderdesk/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

var _ api.ServerInterface = (*Server)(nil)

// Handlers are the use cases the HTTP adapter exposes.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	UpdateOrderDetails commands.UpdateOrderDetailsCommandHandler
	TransitionOrder    commands.TransitionOrderCommandHandler
	ReconcileItems     commands.ReconcileItemsCommandHandler
	AcquireEditLock    commands.AcquireEditLockCommandHandler
	ReleaseEditLock    commands.ReleaseEditLockCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler

	GetOrder       queries.GetOrderQueryHandler
	GetOrderItems  queries.GetOrderItemsQueryHandler
	RenderDocument queries.RenderDocumentTotalsQueryHandler
}

// Server implements api.ServerInterface on top of the command and query handlers.
type Server struct {
	h       Handlers
	session commands.EditSession
}

func NewServer(h Handlers) *Server {
	return &Server{
		h:       h,
		session: commands.NewEditSession(h.AcquireEditLock, h.ReleaseEditLock),
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body api.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	details := order.Details{
		CustomerName:         body.CustomerName,
		ContactName:          deref(body.ContactName),
		ProjectName:          deref(body.ProjectName),
		DesiredDeliveryDate:  body.DesiredDeliveryDate,
		ExpectedDeliveryDate: body.ExpectedDeliveryDate,
	}
	if body.ClientId != nil {
		clientID, err := kernel.NewID(*body.ClientId)
		if err != nil {
			return writeError(ctx, err)
		}
		details.ClientID = &clientID
	}

	cmd, err := commands.NewCreateOrderCommand(details)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, api.OrderCreated{Id: id.Int64()})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId api.OrderId) error {
	id, err := kernel.NewID(orderId)
	if err != nil {
		return writeError(ctx, err)
	}
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	out := api.Order{
		Id:                   resp.ID.Int64(),
		CustomerName:         resp.CustomerName,
		ContactName:          resp.ContactName,
		ProjectName:          resp.ProjectName,
		Progress:             int(resp.Progress),
		ProgressName:         resp.Progress.String(),
		DocumentTitle:        resp.Document.Title,
		DocumentMessage:      resp.Document.Message,
		CreatedAt:            resp.CreatedAt,
		DesiredDeliveryDate:  resp.DesiredDeliveryDate,
		ExpectedDeliveryDate: resp.ExpectedDeliveryDate,
	}
	if resp.ClientID != nil {
		v := resp.ClientID.Int64()
		out.ClientId = &v
	}
	if resp.Client != nil {
		out.Client = &api.Client{Id: resp.Client.ID.Int64(), Name: resp.Client.Name}
	}

	return ctx.JSON(http.StatusOK, out)
}

// UpdateOrderDetails handles PATCH /api/v1/orders/{orderId}.
func (s *Server) UpdateOrderDetails(ctx echo.Context, orderId api.OrderId) error {
	id, err := kernel.NewID(orderId)
	if err != nil {
		return writeError(ctx, err)
	}

	var body api.OrderDetailsPatch
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var changes []commands.DetailsChange
	if body.ProjectName != nil {
		changes = append(changes, commands.ChangeProjectName(*body.ProjectName))
	}
	if body.DesiredDeliveryDate.Set {
		changes = append(changes, commands.ChangeDesiredDeliveryDate(body.DesiredDeliveryDate.Value))
	}
	if body.ExpectedDeliveryDate.Set {
		changes = append(changes, commands.ChangeExpectedDeliveryDate(body.ExpectedDeliveryDate.Value))
	}

	cmd, err := commands.NewUpdateOrderDetailsCommand(id, changes...)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.h.UpdateOrderDetails.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId api.OrderId) error {
	id, err := kernel.NewID(orderId)
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionOrder handles PUT /api/v1/orders/{orderId}/progress.
func (s *Server) TransitionOrder(ctx echo.Context, orderId api.OrderId) error {
	id, err := kernel.NewID(orderId)
	if err != nil {
		return writeError(ctx, err)
	}

	var body api.ProgressChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewTransitionOrderCommand(id, body.Progress)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.h.TransitionOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, api.Transition{
		OrderId:         result.OrderID.Int64(),
		Previous:        int(result.Previous),
		PreviousName:    result.Previous.String(),
		Current:         int(result.Current),
		CurrentName:     result.Current.String(),
		DocumentTitle:   result.Document.Title,
		DocumentMessage: result.Document.Message,
	})
}

// GetOrderItems handles GET /api/v1/orders/{orderId}/items/{kind}.
func (s *Server) GetOrderItems(ctx echo.Context, orderId api.OrderId, kind api.ItemKind) error {
	id, itemKind, err := collection(orderId, kind)
	if err != nil {
		return writeError(ctx, err)
	}
	query, err := queries.NewGetOrderItemsQuery(id, itemKind)
	if err != nil {
		return writeError(ctx, err)
	}

	items, err := s.h.GetOrderItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	out := make([]api.LineItem, len(items))
	for i, item := range items {
		out[i] = api.LineItem{
			Id:          item.ID.Int64(),
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Amount:      item.Amount,
			Unit:        item.Unit,
			Remarks:     item.Remarks,
			SortOrder:   item.SortOrder,
			CreatedAt:   item.CreatedAt,
			UpdatedAt:   item.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, out)
}

// ReconcileOrderItems handles PUT /api/v1/orders/{orderId}/items/{kind}.
// The write runs inside an edit session held by the submitting holder.
func (s *Server) ReconcileOrderItems(ctx echo.Context, orderId api.OrderId, kind api.ItemKind) error {
	id, itemKind, err := collection(orderId, kind)
	if err != nil {
		return writeError(ctx, err)
	}

	var body api.ItemsSubmission
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	submissions := make([]lineitem.Submission, len(body.Items))
	for i, item := range body.Items {
		submissions[i] = lineitem.Submission{
			ID: deref(item.Id),
			Fields: lineitem.Fields{
				ProductName: item.ProductName,
				UnitPrice:   item.UnitPrice,
				Quantity:    item.Quantity,
				Amount:      item.Amount,
				Unit:        item.Unit,
				Remarks:     item.Remarks,
			},
		}
	}

	cmd, err := commands.NewReconcileItemsCommand(id, itemKind, submissions)
	if err != nil {
		return writeError(ctx, err)
	}

	var result commands.ReconcileResult
	err = s.session.Run(ctx.Request().Context(), id, body.HolderId, func(c context.Context) error {
		var handleErr error
		result, handleErr = s.h.ReconcileItems.Handle(c, cmd)
		return handleErr
	})
	if err != nil {
		return writeError(ctx, err)
	}

	kept := make([]int64, len(result.Kept))
	for i, k := range result.Kept {
		kept[i] = k.Int64()
	}

	return ctx.JSON(http.StatusOK, api.ReconcileResult{
		Kept:     kept,
		Inserted: result.Inserted,
		Updated:  result.Updated,
		Deleted:  result.Deleted,
		Skipped:  result.Skipped,
	})
}

// AcquireEditLock handles POST /api/v1/orders/{orderId}/lock.
func (s *Server) AcquireEditLock(ctx echo.Context, orderId api.OrderId) error {
	id, err := kernel.NewID(orderId)
	if err != nil {
		return writeError(ctx, err)
	}

	var body api.LockRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAcquireEditLockCommand(id, body.HolderId)
	if err != nil {
		return writeError(ctx, err)
	}

	lock, err := s.h.AcquireEditLock.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toEditLock(lock, s.h.AcquireEditLock.TTL()))
}

// ReleaseEditLock handles DELETE /api/v1/orders/{orderId}/lock.
func (s *Server) ReleaseEditLock(ctx echo.Context, orderId api.OrderId) error {
	id, err := kernel.NewID(orderId)
	if err != nil {
		return writeError(ctx, err)
	}
	cmd, err := commands.NewReleaseEditLockCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.ReleaseEditLock.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RenderDocument handles GET /api/v1/orders/{orderId}/documents/{kind}.
func (s *Server) RenderDocument(ctx echo.Context, orderId api.OrderId, kind api.ItemKind) error {
	id, itemKind, err := collection(orderId, kind)
	if err != nil {
		return writeError(ctx, err)
	}
	query, err := queries.NewRenderDocumentTotalsQuery(id, itemKind)
	if err != nil {
		return writeError(ctx, err)
	}

	doc, err := s.h.RenderDocument.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]api.DocumentLine, len(doc.Lines))
	for i, line := range doc.Lines {
		lines[i] = api.DocumentLine{
			ProductName: line.ProductName,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			Amount:      line.Amount,
			Unit:        line.Unit,
			Text:        line.Text,
		}
	}

	return ctx.JSON(http.StatusOK, api.Document{
		OrderId:    doc.OrderID.Int64(),
		Kind:       api.ItemKind(doc.Kind),
		Progress:   int(doc.Progress),
		Title:      doc.Title,
		Message:    doc.Message,
		LineText:   doc.LineText,
		Body:       doc.Body,
		GrandTotal: doc.GrandTotal,
		Lines:      lines,
	})
}

func collection(orderId api.OrderId, kind api.ItemKind) (kernel.ID, kernel.ItemKind, error) {
	id, err := kernel.NewID(orderId)
	if err != nil {
		return kernel.ID{}, "", err
	}
	itemKind, err := kernel.ParseItemKind(string(kind))
	if err != nil {
		return kernel.ID{}, "", err
	}
	return id, itemKind, nil
}

func toEditLock(lock *editlock.Lock, ttl time.Duration) api.EditLock {
	return api.EditLock{
		OrderId:    lock.OrderID().Int64(),
		HolderId:   lock.HolderID(),
		Token:      lock.Token().String(),
		AcquiredAt: lock.AcquiredAt(),
		ExpiresAt:  lock.ExpiresAt(ttl),
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
