package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jsarmiento/globetrotter/internal/destination"
)

var DestinationService *destination.DestinationService

func RegisterDestinationRoutes(g *echo.Group, svc *destination.DestinationService) {
	DestinationService = svc
	g.GET("/random", GetRandomDestinationHandler)
	g.GET("/:id", GetDestinationHandler)
}

func GetRandomDestinationHandler(c echo.Context) error {
	d, err := DestinationService.GetRandomDestination()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func GetDestinationHandler(c echo.Context) error {
	d, err := DestinationService.GetDestination(c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}
