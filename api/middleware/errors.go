package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/twisterdot/leaderboard/internal/apperrors"
)

// HTTPErrorHandler maps domain errors onto the wire taxonomy. Responses carry
// a human-readable "error" field and nothing else; internal error text and
// stack traces stay in the logs.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Err != nil {
			log.Printf("%s %s: %v", c.Request().Method, c.Request().URL.Path, appErr)
		}
		c.JSON(appErr.Code, echo.Map{"error": appErr.Message})
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		c.JSON(httpErr.Code, echo.Map{"error": msg})
		return
	}

	log.Printf("%s %s: unhandled error: %v", c.Request().Method, c.Request().URL.Path, err)
	c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
}
