package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kranthik10/campusconnect/internal/app/controllers"
	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/app/services"
	"github.com/kranthik10/campusconnect/internal/app/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stores := store.NewStores()
	stores.Users.Add(models.NewUser("u1", "Alex Johnson", "alex@example.edu", "Stanford University", "Computer Science", 3,
		[]string{"AI", "Music"}, []string{"u2"}))
	stores.Users.Add(models.NewUser("u2", "Maya Patel", "maya@example.edu", "UC Berkeley", "Cognitive Science", 2,
		[]string{"AI"}, nil))
	stores.Communities.Add(&models.Community{ID: "c1", Name: "AI Enthusiasts", Category: "Technology"})
	stores.Events.Add(&models.Event{ID: "e1", Title: "Hackathon", MaxAttendees: 1, Attendees: []string{"u2"}})
	stores.Posts.Add(&models.Post{ID: "p1", AuthorID: "u1", Content: "hello campus"})
	stores.Notifications.Add(&models.Notification{ID: "n1", UserID: "u1", Type: "message", Message: "Maya Patel sent you a message", RelatedID: "m1"})

	nop := zerolog.Nop()
	userService := services.NewUserService(stores.Users, []string{"AI", "Music"}, []string{"Stanford University"}, nop)
	matchService := services.NewMatchService(stores.Users, 5, 50, nop)
	communityService := services.NewCommunityService(stores.Communities, stores.Users, nop)
	eventService := services.NewEventService(stores.Events, stores.Users, nop)
	postService := services.NewPostService(stores.Posts, stores.Users, stores.Communities, nop)
	messageService := services.NewMessageService(stores.Messages, stores.Users, nop)
	engagementService := services.NewEngagementService(stores.Engagement, nop)
	referralService := services.NewReferralService(stores.Referrals, stores.Users, stores.Engagement, "https://campusconnect.app/referral", 50, nop)
	notificationService := services.NewNotificationService(stores.Notifications, nop)

	router := gin.New()
	SetupRouter(
		router,
		controllers.NewUserController(userService, matchService),
		controllers.NewCommunityController(communityService),
		controllers.NewEventController(eventService),
		controllers.NewPostController(postService),
		controllers.NewMessageController(messageService),
		controllers.NewEngagementController(engagementService),
		controllers.NewReferralController(referralService),
		controllers.NewNotificationController(notificationService),
	)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetUserRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/users/u1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "Alex Johnson", body.Data.Name)
}

func TestGetUserNotFoundMapsTo404(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/users/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "RES_001", body.Error.Code)
}

func TestJoinEventConflictsMapTo409(t *testing.T) {
	router := newTestRouter(t)

	// e1 holds its single attendee already
	w := doRequest(router, http.MethodPost, "/api/v1/events/e1/attendees", `{"userId":"u1"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/events/e1/attendees", `{"userId":"u2"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAddPointsRejectsNegativeAmount(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/users/u1/points", `{"amount":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMatchesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/users/u1/matches?limit=10", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Matches []struct {
				Score int `json:"score"`
				User  struct {
					ID string `json:"id"`
				} `json:"user"`
			} `json:"matches"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Matches, 1)
	assert.Equal(t, "u2", body.Data.Matches[0].User.ID)
	assert.Equal(t, 1, body.Data.Matches[0].Score)
}

func TestCommentOnPostEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/posts/p1/comments", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			CommentCount int `json:"commentCount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.CommentCount)

	w = doRequest(router, http.MethodPost, "/api/v1/posts/missing/comments", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNotificationRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/users/u1/notifications", "")
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Data struct {
			Notifications []struct {
				ID   string `json:"id"`
				Read bool   `json:"read"`
			} `json:"notifications"`
			UnreadCount int `json:"unreadCount"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data.Notifications, 1)
	assert.Equal(t, 1, list.Data.UnreadCount)

	w = doRequest(router, http.MethodPost, "/api/v1/notifications/n1/read", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/users/u1/notifications", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Data.UnreadCount)
	assert.True(t, list.Data.Notifications[0].Read)

	w = doRequest(router, http.MethodPost, "/api/v1/notifications/missing/read", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
