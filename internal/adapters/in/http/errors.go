package http

import (
	"errors"
	"net/http"

	"orderdesk/internal/adapters/in/http/api"
	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps core errors to status codes: invalid input 400, missing
// order 404, held lock 423, anything else 500 with an opaque message.
func writeError(ctx echo.Context, err error) error {
	var held *errs.LockHeldError
	switch {
	case errs.IsInvalidArgument(err):
		return badRequest(ctx, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, api.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.As(err, &held):
		body := api.Error{
			Code:    http.StatusLocked,
			Message: held.Error(),
		}
		if held.HolderID != "" {
			holder, since := held.HolderID, held.AcquiredAt
			body.HolderId = &holder
			body.LockedSince = &since
		}
		return ctx.JSON(http.StatusLocked, body)
	default:
		ctx.Logger().Error(err)
		return ctx.JSON(http.StatusInternalServerError, api.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, api.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorHandler renders errors returned by middleware and parameter binding
// in the same shape as handler errors.
func errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal error"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	} else {
		ctx.Logger().Error(err)
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(code)
		return
	}
	_ = ctx.JSON(code, api.Error{Code: code, Message: message})
}
