package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	api_middleware "github.com/twisterdot/leaderboard/api/middleware"
	"github.com/twisterdot/leaderboard/internal/score"
)

var ScoreService *score.ScoreService

func RegisterScoreRoutes(public *echo.Group, protected *echo.Group) {
	public.GET("/leaderboard", GetLeaderboardHandler)
	protected.POST("/submit_score", SubmitScoreHandler)
}

func SubmitScoreHandler(c echo.Context) error {
	accountID, err := api_middleware.AccountID(c)
	if err != nil {
		return err
	}

	var req score.SubmitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	if err := ScoreService.SubmitScore(c.Request().Context(), accountID, req.Score); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Score submitted successfully"})
}

func GetLeaderboardHandler(c echo.Context) error {
	limit := score.DefaultLimit
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
		}
		limit = n
	}

	entries, err := ScoreService.GetLeaderboard(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
