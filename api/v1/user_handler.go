package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jsarmiento/globetrotter/internal/user"
)

var UserService *user.UserService

func RegisterUserRoutes(g *echo.Group, svc *user.UserService) {
	UserService = svc
	g.POST("/register", RegisterUserHandler)
	g.GET("/check-username", CheckUsernameHandler)
	g.GET("/leaderboard", GetLeaderboardHandler)
	g.GET("/:userId/stats", GetUserStatsHandler)
	g.POST("", CreateUserHandler)
}

func CreateUserHandler(c echo.Context) error {
	var req user.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	u, err := UserService.CreateUser(req.Username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, u)
}

func RegisterUserHandler(c echo.Context) error {
	var req user.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	u, created, err := UserService.Register(req.Username)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, u)
}

func CheckUsernameHandler(c echo.Context) error {
	check, err := UserService.CheckUsername(c.QueryParam("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, check)
}

func GetLeaderboardHandler(c echo.Context) error {
	entries, err := UserService.Leaderboard()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

func GetUserStatsHandler(c echo.Context) error {
	userID := c.Param("userId")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	stats, err := UserService.GetStats(userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
