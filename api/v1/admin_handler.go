package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	api_middleware "github.com/jsarmiento/globetrotter/api/middleware"
	"github.com/jsarmiento/globetrotter/internal/auth"
	"github.com/jsarmiento/globetrotter/internal/config"
	"github.com/jsarmiento/globetrotter/internal/destination"
)

var adminConfig *config.Config

type AdminLoginRequest struct {
	Password string `json:"password"`
}

// RegisterAdminRoutes exposes destination management behind a JWT guard.
// Login itself is the only unguarded route in the group.
func RegisterAdminRoutes(g *echo.Group, cfg *config.Config, destinations *destination.DestinationService) {
	adminConfig = cfg
	DestinationService = destinations

	g.POST("/login", AdminLoginHandler)

	guarded := g.Group("/destinations")
	guarded.Use(api_middleware.SetupJWTMiddleware(cfg.JWTSecret))
	guarded.POST("", CreateDestinationHandler)
	guarded.DELETE("/:id", DeleteDestinationHandler)
}

func AdminLoginHandler(c echo.Context) error {
	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	if err := auth.VerifyAdminPassword(adminConfig.AdminPasswordHash, req.Password); err != nil {
		return err
	}

	token, err := auth.GenerateAdminToken(adminConfig.JWTSecret)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "error creating jwt token")
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func CreateDestinationHandler(c echo.Context) error {
	var req destination.CreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	d, err := DestinationService.CreateDestination(&req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, d)
}

func DeleteDestinationHandler(c echo.Context) error {
	if err := DestinationService.DeleteDestination(c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
