package v1

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jsarmiento/globetrotter/internal/apperrors"
)

// HTTPErrorHandler translates service errors into the three status classes
// the API exposes: 400 bad input, 404 not found, 500 everything else. No
// detail beyond the mapped message leaves the process.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= 500 {
			slog.Error("request failed", "path", c.Path(), "error", err)
			_ = c.JSON(appErr.Code, echo.Map{"error": appErr.Message})
			return
		}
		_ = c.JSON(appErr.Code, echo.Map{"error": appErr.Message})
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, echo.Map{"error": httpErr.Message})
		return
	}

	slog.Error("unhandled error", "path", c.Path(), "error", err)
	_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
