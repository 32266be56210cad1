package api

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface is implemented by the HTTP adapter, one method per operation.
type ServerInterface interface {
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error
	// (PATCH /api/v1/orders/{orderId})
	UpdateOrderDetails(ctx echo.Context, orderId OrderId) error
	// (DELETE /api/v1/orders/{orderId})
	DeleteOrder(ctx echo.Context, orderId OrderId) error
	// (PUT /api/v1/orders/{orderId}/progress)
	TransitionOrder(ctx echo.Context, orderId OrderId) error
	// (GET /api/v1/orders/{orderId}/items/{kind})
	GetOrderItems(ctx echo.Context, orderId OrderId, kind ItemKind) error
	// (PUT /api/v1/orders/{orderId}/items/{kind})
	ReconcileOrderItems(ctx echo.Context, orderId OrderId, kind ItemKind) error
	// (POST /api/v1/orders/{orderId}/lock)
	AcquireEditLock(ctx echo.Context, orderId OrderId) error
	// (DELETE /api/v1/orders/{orderId}/lock)
	ReleaseEditLock(ctx echo.Context, orderId OrderId) error
	// (GET /api/v1/orders/{orderId}/documents/{kind})
	RenderDocument(ctx echo.Context, orderId OrderId, kind ItemKind) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindOrderID(ctx echo.Context) (OrderId, error) {
	var orderId OrderId
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}
	return orderId, nil
}

func bindKind(ctx echo.Context) (ItemKind, error) {
	var kind ItemKind
	err := runtime.BindStyledParameterWithOptions("simple", "kind", ctx.Param("kind"), &kind,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter kind: %s", err))
	}
	return kind, nil
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) UpdateOrderDetails(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderDetails(ctx, orderId)
}

func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeleteOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) TransitionOrder(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.TransitionOrder(ctx, orderId)
}

func (w *ServerInterfaceWrapper) GetOrderItems(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	kind, err := bindKind(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrderItems(ctx, orderId, kind)
}

func (w *ServerInterfaceWrapper) ReconcileOrderItems(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	kind, err := bindKind(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ReconcileOrderItems(ctx, orderId, kind)
}

func (w *ServerInterfaceWrapper) AcquireEditLock(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.AcquireEditLock(ctx, orderId)
}

func (w *ServerInterfaceWrapper) ReleaseEditLock(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ReleaseEditLock(ctx, orderId)
}

func (w *ServerInterfaceWrapper) RenderDocument(ctx echo.Context) error {
	orderId, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	kind, err := bindKind(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RenderDocument(ctx, orderId, kind)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.PATCH(baseURL+"/api/v1/orders/:orderId", wrapper.UpdateOrderDetails)
	router.DELETE(baseURL+"/api/v1/orders/:orderId", wrapper.DeleteOrder)
	router.PUT(baseURL+"/api/v1/orders/:orderId/progress", wrapper.TransitionOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId/items/:kind", wrapper.GetOrderItems)
	router.PUT(baseURL+"/api/v1/orders/:orderId/items/:kind", wrapper.ReconcileOrderItems)
	router.POST(baseURL+"/api/v1/orders/:orderId/lock", wrapper.AcquireEditLock)
	router.DELETE(baseURL+"/api/v1/orders/:orderId/lock", wrapper.ReleaseEditLock)
	router.GET(baseURL+"/api/v1/orders/:orderId/documents/:kind", wrapper.RenderDocument)
}
