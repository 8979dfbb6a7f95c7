package handler

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"portfolio/internal/errors"
	"portfolio/internal/service"
)

// HeaderDataSource tells clients whether a list came from the database or the snapshot.
const HeaderDataSource = "X-Data-Source"

// MutationResponse is returned by create and update endpoints.
type MutationResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MessageResponse is returned by delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

var (
	errInvalidBody = echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "Corps de requête invalide",
		Code:  "INVALID_REQUEST",
	})
	errInvalidID = echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: "Identifiant invalide",
		Code:  "INVALID_ID",
	})
)

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

func setSource(c echo.Context, source service.Source) {
	c.Response().Header().Set(HeaderDataSource, string(source))
}

// NewHTTPErrorHandler renders every error in the ErrorResponse envelope. Application
// errors are mapped by kind; echo errors keep their status.
func NewHTTPErrorHandler(l *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := render(err)
		if status >= http.StatusInternalServerError {
			l.Error("request failed",
				zap.Error(err),
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			l.Warn("write error response", zap.Error(err))
		}
	}
}

func render(err error) (int, errors.ErrorResponse) {
	var he *echo.HTTPError
	if stderrors.As(err, &he) {
		if resp, ok := he.Message.(errors.ErrorResponse); ok {
			return he.Code, resp
		}
		msg, ok := he.Message.(string)
		if !ok || he.Code >= http.StatusInternalServerError {
			msg = http.StatusText(he.Code)
		}
		return he.Code, errors.ErrorResponse{Error: msg, Code: statusCode(he.Code)}
	}

	httpErr := errors.MapErrorToHTTP(err)
	return httpErr.StatusCode, httpErr.ToErrorResponse()
}

func statusCode(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "INVALID_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case http.StatusTooManyRequests:
		return "RATE_LIMITED"
	default:
		return "INTERNAL_ERROR"
	}
}
