package v1

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jsarmiento/globetrotter/internal/game"
)

const INVALID_REQUEST = "invalid request"

var GameService *game.GameService

func RegisterGameRoutes(g *echo.Group, svc *game.GameService) {
	GameService = svc
	// Specific routes first so "session" and "share" never match :sessionId.
	g.GET("/session/:id", GetGameHandler)
	g.GET("/share/:shareCode", GetSharedGameHandler)
	g.POST("/start", StartGameHandler)
	g.POST("/:sessionId/answer", SubmitAnswerHandler)
	g.POST("/:sessionId/end", EndGameHandler)
}

func StartGameHandler(c echo.Context) error {
	var req game.StartGameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	session, err := GameService.StartGame(&req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, session)
}

func SubmitAnswerHandler(c echo.Context) error {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session ID is required")
	}

	var req game.AnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	result, err := GameService.SubmitAnswer(sessionID, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

func EndGameHandler(c echo.Context) error {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session ID is required")
	}

	session, err := GameService.EndGame(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, session)
}

func GetGameHandler(c echo.Context) error {
	state, err := GameService.GetGame(c.Param("id"))
	if err != nil {
		var noMore *game.NoMoreQuestionsError
		if errors.As(err, &noMore) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":     "No more questions available",
				"gameState": noMore.State,
			})
		}
		return err
	}
	return c.JSON(http.StatusOK, state)
}

func GetSharedGameHandler(c echo.Context) error {
	shared, err := GameService.GetSharedGame(c.Param("shareCode"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, shared)
}
