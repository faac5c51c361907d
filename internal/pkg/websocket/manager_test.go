package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	gws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/fleetdispatch/internal/pkg/constants"
	"github.com/piresc/fleetdispatch/internal/pkg/jwt"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = models.JWTConfig{Secret: "ws-secret", Expiration: 60, Issuer: "fleetdispatch"}

func newTestServer(t *testing.T) (*Manager, *httptest.Server) {
	t.Helper()
	m := NewManager(testJWT)
	e := echo.New()
	e.GET("/ws/notifications", m.HandleConnection)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return m, srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/notifications"
}

func TestHandleConnection_RejectsMissingToken(t *testing.T) {
	_, srv := newTestServer(t)
	_, resp, err := gws.DefaultDialer.Dial(wsURL(srv), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandleConnection_RejectsBadToken(t *testing.T) {
	_, srv := newTestServer(t)
	header := http.Header{"Authorization": []string{"Bearer nope"}}
	_, resp, err := gws.DefaultDialer.Dial(wsURL(srv), header)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestNotifyUser_DeliversToEveryConnection(t *testing.T) {
	m, srv := newTestServer(t)
	userID := uuid.New()
	token, _, err := jwt.GenerateToken(userID, "a@fleet.local", models.RoleUser, testJWT)
	require.NoError(t, err)

	header := http.Header{"Authorization": []string{"Bearer " + token}}
	first, _, err := gws.DefaultDialer.Dial(wsURL(srv), header)
	require.NoError(t, err)
	defer first.Close()
	second, _, err := gws.DefaultDialer.Dial(wsURL(srv)+"?token="+token, nil)
	require.NoError(t, err)
	defer second.Close()

	require.Eventually(t, func() bool {
		m.RLock()
		defer m.RUnlock()
		return len(m.clients[userID.String()]) == 2
	}, time.Second, 10*time.Millisecond)
	assert.True(t, m.IsOnline(userID.String()))

	delivered := m.NotifyUser(userID.String(), constants.EventNotification, map[string]string{"title": "Ride assigned"})
	assert.Equal(t, 2, delivered)

	for _, conn := range []*gws.Conn{first, second} {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var msg models.WSMessage
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, constants.EventNotification, msg.Event)
		var data map[string]string
		require.NoError(t, json.Unmarshal(msg.Data, &data))
		assert.Equal(t, "Ride assigned", data["title"])
	}

	assert.Equal(t, 0, m.NotifyUser(uuid.NewString(), constants.EventNotification, nil))
}

func TestHandleConnection_PingPongAndUnknownEvent(t *testing.T) {
	m, srv := newTestServer(t)
	userID := uuid.New()
	token, _, err := jwt.GenerateToken(userID, "d@fleet.local", models.RoleDriver, testJWT)
	require.NoError(t, err)

	conn, _, err := gws.DefaultDialer.Dial(wsURL(srv)+"?token="+token, nil)
	require.NoError(t, err)

	require.NoError(t, conn.WriteJSON(models.WSMessage{Event: constants.EventPing}))
	var msg models.WSMessage
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventPong, msg.Event)

	require.NoError(t, conn.WriteJSON(models.WSMessage{Event: "subscribe"}))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventError, msg.Event)
	var wsErr models.WSErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &wsErr))
	assert.Equal(t, constants.ErrorInvalidFormat, wsErr.Code)

	conn.Close()
	require.Eventually(t, func() bool {
		return !m.IsOnline(userID.String())
	}, time.Second, 10*time.Millisecond)
}
