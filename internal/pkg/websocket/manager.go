package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/fleetdispatch/internal/pkg/constants"
	"github.com/piresc/fleetdispatch/internal/pkg/logger"
	"github.com/piresc/fleetdispatch/internal/pkg/metrics"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Manager tracks the live websocket connections of every user
type Manager struct {
	sync.RWMutex
	clients  map[string]map[*models.WebSocketClient]struct{}
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]map[*models.WebSocketClient]struct{}),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates, upgrades and serves a connection until the
// peer goes away. Incoming frames only support ping.
func (m *Manager) HandleConnection(c echo.Context) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	client.Conn = ws

	m.AddClient(client)
	defer func() {
		m.RemoveClient(client)
		ws.Close()
	}()

	logger.Info("WebSocket client connected",
		logger.String("user_id", client.UserID),
		logger.String("role", string(client.Role)))

	done := make(chan struct{})
	defer close(done)
	go m.keepAlive(client, done)

	ws.SetReadLimit(4096)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg models.WSMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("WebSocket read failed", logger.String("user_id", client.UserID), logger.Err(err))
			}
			return nil
		}

		switch msg.Event {
		case constants.EventPing:
			_ = m.SendMessage(client, constants.EventPong, map[string]int64{"ts": time.Now().Unix()})
		default:
			_ = m.SendCategorizedError(client, fmt.Errorf("unsupported event %q", msg.Event),
				constants.ErrorInvalidFormat, constants.ErrorSeverityClient)
		}
	}
}

func (m *Manager) keepAlive(client *models.WebSocketClient, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := client.Conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// authenticateClient accepts the JWT from the Authorization header or the
// token query parameter, since browsers cannot set headers on upgrade
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	tokenString := c.QueryParam("token")
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		tokenString = parts[1]
	}
	if tokenString == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	claims, err := m.validateToken(tokenString)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		UserID: claims.UserID,
		Role:   claims.Role,
	}, nil
}

func (m *Manager) validateToken(tokenString string) (*models.WebSocketClaims, error) {
	claims := &models.WebSocketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// AddClient registers a connection for its user
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	conns, ok := m.clients[client.UserID]
	if !ok {
		conns = make(map[*models.WebSocketClient]struct{})
		m.clients[client.UserID] = conns
	}
	if _, dup := conns[client]; !dup {
		conns[client] = struct{}{}
		metrics.WebSocketConnections.Inc()
	}
}

// RemoveClient unregisters one connection
func (m *Manager) RemoveClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	conns := m.clients[client.UserID]
	if _, ok := conns[client]; ok {
		delete(conns, client)
		metrics.WebSocketConnections.Dec()
	}
	if len(conns) == 0 {
		delete(m.clients, client.UserID)
	}
}

// IsOnline reports whether the user has at least one open connection
func (m *Manager) IsOnline(userID string) bool {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients[userID]) > 0
}

// SendMessage writes one event to a connection
func (m *Manager) SendMessage(client *models.WebSocketClient, event string, data interface{}) error {
	if client == nil || client.Conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	return client.WriteJSON(models.WSMessage{Event: event, Data: rawData}, writeWait)
}

// SendCategorizedError logs err and sends the client as much detail as its
// severity allows
func (m *Manager) SendCategorizedError(client *models.WebSocketClient, err error, code string, severity constants.ErrorSeverity) error {
	logger.Error("WebSocket operation failed",
		logger.String("user_id", client.UserID),
		logger.String("error_code", code),
		logger.Err(err))

	message := "Operation failed"
	switch severity {
	case constants.ErrorSeverityClient:
		message = err.Error()
	case constants.ErrorSeveritySecurity:
		message = "Access denied"
	}
	return m.SendMessage(client, constants.EventError, models.WSErrorMessage{Code: code, Message: message})
}

// NotifyUser pushes an event to every connection of userID and returns how
// many connections received it
func (m *Manager) NotifyUser(userID string, event string, data interface{}) int {
	m.RLock()
	targets := make([]*models.WebSocketClient, 0, len(m.clients[userID]))
	for client := range m.clients[userID] {
		targets = append(targets, client)
	}
	m.RUnlock()

	delivered := 0
	for _, client := range targets {
		if err := m.SendMessage(client, event, data); err != nil {
			logger.Warn("Error sending message to client",
				logger.String("user_id", userID),
				logger.Err(err))
			continue
		}
		delivered++
	}
	return delivered
}
