package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	api_middleware "github.com/twisterdot/leaderboard/api/middleware"
	"github.com/twisterdot/leaderboard/internal/user"
)

const INVALID_REQUEST = "invalid request"

var UserService *user.UserService

func RegisterUserRoutes(public *echo.Group, protected *echo.Group) {
	public.POST("/register", RegisterHandler)
	public.POST("/login", LoginHandler)
	protected.GET("/stats", GetStatsHandler)
}

func RegisterHandler(c echo.Context) error {
	var creds user.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	if err := UserService.Signup(c.Request().Context(), creds); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Account created successfully"})
}

func LoginHandler(c echo.Context) error {
	var creds user.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, INVALID_REQUEST)
	}

	token, err := UserService.Login(c.Request().Context(), creds)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"access_token": token})
}

func GetStatsHandler(c echo.Context) error {
	accountID, err := api_middleware.AccountID(c)
	if err != nil {
		return err
	}

	stats, err := UserService.GetUserStats(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
