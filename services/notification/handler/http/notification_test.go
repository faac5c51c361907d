package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/fleetdispatch/internal/pkg/apperror"
	"github.com/piresc/fleetdispatch/internal/pkg/middleware"
	"github.com/piresc/fleetdispatch/internal/pkg/models"
	"github.com/piresc/fleetdispatch/services/notification"
	"github.com/piresc/fleetdispatch/services/notification/mocks"
)

func newContext(method, target string, a *models.Actor) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if a != nil {
		c.Set(middleware.ContextUserID, a.UserID)
		c.Set(middleware.ContextUserRole, a.Role)
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestListNotifications(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockNotificationUC(ctrl)
	h := NewNotificationHandler(mockUC)
	actor := models.Actor{UserID: uuid.New(), Role: models.RoleUser}
	c, rec := newContext(http.MethodGet, "/api/notifications?unread=true&page=2&limit=5", &actor)

	mockUC.EXPECT().
		ListNotifications(gomock.Any(), actor, models.NotificationFilter{UnreadOnly: true, Page: 2, Limit: 5}).
		Return(&models.NotificationList{
			Notifications: []*models.Notification{{ID: uuid.New(), Title: "Ride started"}},
			Total:         6,
			Unread:        6,
			Page:          2,
		}, nil)

	// Act
	err := h.ListNotifications(c)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.EqualValues(t, 6, data["unread"])
	assert.Len(t, data["notifications"], 1)
}

func TestListNotifications_RequiresActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewNotificationHandler(mocks.NewMockNotificationUC(ctrl))
	c, rec := newContext(http.MethodGet, "/api/notifications", nil)

	require.NoError(t, h.ListNotifications(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockNotificationUC(ctrl)
	h := NewNotificationHandler(mockUC)
	actor := models.Actor{UserID: uuid.New(), Role: models.RoleDriver}
	id := uuid.New()

	tests := []struct {
		name       string
		param      string
		setup      func()
		wantStatus int
		wantCode   string
	}{
		{
			name:  "marks read",
			param: id.String(),
			setup: func() {
				mockUC.EXPECT().MarkRead(gomock.Any(), actor, id).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad id",
			param:      "not-a-uuid",
			setup:      func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:  "someone else's notification",
			param: id.String(),
			setup: func() {
				mockUC.EXPECT().MarkRead(gomock.Any(), actor, id).Return(notification.ErrNotificationNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "notification_not_found",
		},
		{
			name:  "storage failure",
			param: id.String(),
			setup: func() {
				mockUC.EXPECT().MarkRead(gomock.Any(), actor, id).
					Return(apperror.Downstream("Notification storage failure", errors.New("conn reset")))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			c, rec := newContext(http.MethodPut, "/api/notifications/"+tt.param+"/read", &actor)
			c.SetParamNames("id")
			c.SetParamValues(tt.param)

			require.NoError(t, h.MarkRead(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decode(t, rec)["errorCode"])
			}
		})
	}
}

func TestMarkAllRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockNotificationUC(ctrl)
	h := NewNotificationHandler(mockUC)
	actor := models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}
	c, rec := newContext(http.MethodPut, "/api/notifications/read-all", &actor)

	mockUC.EXPECT().MarkAllRead(gomock.Any(), actor).Return(int64(4), nil)

	require.NoError(t, h.MarkAllRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decode(t, rec)["data"].(map[string]interface{})
	assert.EqualValues(t, 4, data["updated"])
}
