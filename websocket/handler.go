package websocket

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/twisterdot/leaderboard/internal/user"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// LeaderboardFeedHandler upgrades an authenticated connection and keeps it
// subscribed until the client disconnects. Browsers cannot set headers on a
// websocket handshake, so the token travels as a query parameter.
func (h *Hub) LeaderboardFeedHandler(c echo.Context) error {
	tokenString := c.QueryParam("token")

	if _, err := ValidateJWT(tokenString); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Println("WebSocket upgrade failed:", err)
		return err
	}

	sub := &subscriber{conn: ws}
	h.add(sub)
	go h.listen(sub)
	return nil
}

// listen drains incoming frames so pings and close messages are processed; the
// feed itself is one-way.
func (h *Hub) listen(sub *subscriber) {
	defer func() {
		h.remove(sub)
		sub.conn.Close()
	}()

	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			break
		}
	}
}

func ValidateJWT(tokenString string) (uint, error) {
	if tokenString == "" {
		return 0, errors.New("empty token")
	}

	claims := &user.JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	return claims.Id, nil
}
