package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/campusconnect/portal-be/internal/auth"
	"github.com/campusconnect/portal-be/internal/database"
	"github.com/campusconnect/portal-be/internal/models"
	"github.com/campusconnect/portal-be/internal/services"
	ws "github.com/campusconnect/portal-be/internal/websocket"
)

type testEnv struct {
	server *httptest.Server
	db     *sql.DB
}

func newTestEnv(t *testing.T, summarizer *services.Summarizer, withHub bool) *testEnv {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.Migrate(db))

	var hub *ws.Hub
	if withHub {
		hub = ws.NewHub()
		go hub.Run()
	}

	eventService := services.NewEventService(db)
	router := NewRouter(Deps{
		Tokens:      auth.NewManager("test-secret", 2*time.Hour),
		Hub:         hub,
		Users:       services.NewUserService(db),
		LostFound:   services.NewLostFoundService(db),
		Marketplace: services.NewMarketplaceService(db),
		Rides:       services.NewRideService(db),
		Exchange:    services.NewExchangeService(db),
		Events:      eventService,
		Schedules:   services.NewScheduleService(db, eventService),
		Summarizer:  summarizer,
		CORSOrigin:  "http://localhost:3000",
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testEnv{server: srv, db: db}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, e.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func (e *testEnv) doList(t *testing.T, path, token string) (*http.Response, []map[string]interface{}) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, e.server.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded []map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()

	resp, body := e.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestAuthAndRideScenario(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, services.NewSummarizer(50, false), false)

	// Register alice.
	resp, body := env.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"username": "alice", "password": "pw123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])

	// Duplicate registration fails.
	resp, body = env.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"username": "alice", "password": "pw123",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body["error"], "already exists")

	// Missing fields fail.
	resp, _ = env.do(t, http.MethodPost, "/auth/register", "", map[string]string{"username": "bob"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Wrong password.
	resp, _ = env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "alice", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Unknown username.
	resp, body = env.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "carol", "password": "pw123",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "user not found", body["error"])

	token := env.login(t, "alice", "pw123")

	// Create a ride with the token.
	resp, body = env.do(t, http.MethodPost, "/api/rides", token, map[string]string{
		"departure": "A", "destination": "B", "time": "9am",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])
	ride, ok := body["ride"].(map[string]interface{})
	require.True(t, ok)
	require.NotEmpty(t, ride["id"])
	require.NotEmpty(t, ride["createdAt"])

	// List returns it.
	resp, rides := env.doList(t, "/api/rides", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, rides, 1)
	require.Equal(t, "A", rides[0]["departure"])
	require.Equal(t, "B", rides[0]["destination"])
	require.Equal(t, "9am", rides[0]["time"])
}

func TestResourceRoutesRequireToken(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, services.NewSummarizer(50, false), false)

	env.do(t, http.MethodPost, "/auth/register", "", map[string]string{"username": "alice", "password": "pw123"})
	token := env.login(t, "alice", "pw123")

	for _, path := range []string{"/api/lostfound", "/api/marketplace", "/api/rides", "/api/exchange", "/api/schedules"} {
		resp, _ := env.do(t, http.MethodPost, path, "", map[string]string{})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "POST %s without token", path)

		resp, _ = env.doList(t, path, "")
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "GET %s without token", path)
	}

	// The rejected create must not have written anything.
	env.do(t, http.MethodPost, "/api/rides", "", map[string]string{"departure": "X", "destination": "Y", "time": "1pm"})
	resp, rides := env.doList(t, "/api/rides", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, rides)
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, services.NewSummarizer(50, false), false)

	// A token signed with the right secret but already expired.
	expired, err := auth.NewManager("test-secret", -time.Minute).Generate(models.User{ID: "u1", Role: "student"})
	require.NoError(t, err)

	resp, body := env.do(t, http.MethodGet, "/api/rides", expired, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "invalid token", body["error"])
}

func TestResourceCreateRejectsUnknownFields(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, services.NewSummarizer(50, false), false)

	env.do(t, http.MethodPost, "/auth/register", "", map[string]string{"username": "alice", "password": "pw123"})
	token := env.login(t, "alice", "pw123")

	resp, body := env.do(t, http.MethodPost, "/api/rides", token, map[string]string{
		"departure": "A", "destination": "B", "time": "9am", "seats": "4",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body["error"], "invalid request body")
}

func TestMessMenu(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, services.NewSummarizer(50, false), false)

	resp, body := env.do(t, http.MethodGet, "/api/mess-menu", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, field := range []string{"breakfast", "lunch", "snacks", "dinner"} {
		require.NotEmpty(t, body[field], "missing %s", field)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, services.NewSummarizer(50, false), false)

	resp, body := env.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", body["status"])
	require.Contains(t, body, "cpuPercent")
	require.Contains(t, body, "memUsedMb")
	require.Contains(t, body, "memTotalMb")
	require.Contains(t, body, "uptime")
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, services.NewSummarizer(50, false), false)

	longText := strings.Repeat("z", 80)
	resp, body := env.do(t, http.MethodPost, "/ai/summarize", "", map[string]string{"text": longText})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "General", body["category"])
	require.Equal(t, "Low", body["priority"])
	require.Equal(t, strings.Repeat("z", 50)+"...", body["summary"])

	// Missing text is a validation error.
	resp, body = env.do(t, http.MethodPost, "/ai/summarize", "", map[string]string{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "text is required", body["error"])
}

func TestSummarizeTemplateMode(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, services.NewSummarizer(60, true), false)

	resp, body := env.do(t, http.MethodPost, "/ai/summarize", "", map[string]string{"text": "Library closes early today."})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result, _ := body["result"].(string)
	require.True(t, strings.HasPrefix(result, "Summary: Library closes early today."))
	require.Contains(t, result, "Action: Please check the mentioned tasks.")
	require.Contains(t, result, "Category: Academic Notice")
	require.Contains(t, result, "Deadline: Extracted dates if present")
}

func TestScheduleEndpoints(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, services.NewSummarizer(50, false), false)

	env.do(t, http.MethodPost, "/auth/register", "", map[string]string{"username": "alice", "password": "pw123"})
	token := env.login(t, "alice", "pw123")

	resp, body := env.do(t, http.MethodPost, "/api/schedules", token, map[string]string{
		"name": "menu ping", "cronExpression": "0 8 * * *", "message": "Breakfast is served",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, body["success"])

	resp, body = env.do(t, http.MethodPost, "/api/schedules", token, map[string]string{
		"name": "bad", "cronExpression": "never", "message": "x",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, body["error"], "invalid cron expression")

	resp, schedules := env.doList(t, "/api/schedules", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, schedules, 1)
	require.Equal(t, "menu ping", schedules[0]["name"])
}

func TestEventsFeed(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, services.NewSummarizer(50, false), false)

	env.do(t, http.MethodPost, "/auth/register", "", map[string]string{"username": "alice", "password": "pw123"})
	token := env.login(t, "alice", "pw123")
	env.do(t, http.MethodPost, "/api/rides", token, map[string]string{"departure": "A", "destination": "B", "time": "9am"})

	resp, events := env.doList(t, "/api/events", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var types []string
	for _, e := range events {
		types = append(types, e["type"].(string))
	}
	require.Contains(t, types, "user.registered")
	require.Contains(t, types, "ride.created")
}

func TestAnnounceFanOut(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, services.NewSummarizer(50, false), true)

	// Zero connected clients: still acknowledged.
	resp, body := env.do(t, http.MethodPost, "/announce", "", map[string]string{"message": "hello"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "sent", body["status"])

	// Empty message is a validation error.
	resp, _ = env.do(t, http.MethodPost, "/announce", "", map[string]string{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Connect two clients; both must receive the event payload verbatim.
	wsURL := "ws" + strings.TrimPrefix(env.server.URL, "http") + "/ws"
	var conns []*websocket.Conn
	for i := 0; i < 2; i++ {
		conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
		require.NoError(t, err)
		t.Cleanup(func() { conn.Close() })
		conns = append(conns, conn)
	}

	// Give the hub a moment to process registrations.
	time.Sleep(100 * time.Millisecond)

	resp, body = env.do(t, http.MethodPost, "/announce", "", map[string]string{"message": "exam tomorrow"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "sent", body["status"])

	for _, conn := range conns {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		var msg struct {
			Event   string `json:"event"`
			Payload string `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(data, &msg))
		require.Equal(t, "announcement", msg.Event)
		require.Equal(t, "exam tomorrow", msg.Payload)
	}
}

func TestBroadcastDisabled(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, services.NewSummarizer(50, false), false)

	resp, _ := env.do(t, http.MethodPost, "/announce", "", map[string]string{"message": "hello"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
