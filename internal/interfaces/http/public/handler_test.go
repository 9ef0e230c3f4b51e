package public_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sngm3741/fitness-directory/api/internal/infrastructure/memory"
	"github.com/sngm3741/fitness-directory/api/internal/interfaces/http/common"
	publichttp "github.com/sngm3741/fitness-directory/api/internal/interfaces/http/public"
	publicapp "github.com/sngm3741/fitness-directory/api/internal/public/application"
	publicdomain "github.com/sngm3741/fitness-directory/api/internal/public/domain"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Total   *int            `json:"total"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

type compareBody struct {
	Items []struct {
		ID int `json:"id"`
	} `json:"items"`
	Count      int   `json:"count"`
	ModalOpen  bool  `json:"modalOpen"`
	CanAdd     bool  `json:"canAdd"`
	CanCompare bool  `json:"canCompare"`
	Changed    *bool `json:"changed"`
}

func testBusinesses() []publicdomain.Business {
	return []publicdomain.Business{
		{ID: 1, Name: "Iron Temple Gym", Category: "Gym", Location: "Downtown", Price: 45, Rating: 4.8,
			Services: []string{"Sauna", "PT"}, Vibe: publicdomain.VibePerformance,
			Details: publicdomain.BusinessDetails{Reviews: 120}},
		{ID: 2, Name: "Zen Flow Yoga Studio", Category: "Yoga", Location: "Riverside", Price: 35, Rating: 4.9,
			Services: []string{"Hot Yoga"}, Vibe: publicdomain.VibeCalm},
		{ID: 3, Name: "Pulse Cycle", Category: "Cycling", Location: "Midtown", Price: 60, Rating: 4.6,
			Services: []string{"Group Classes"}, Vibe: publicdomain.VibeModern},
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	catalog := publicapp.NewCatalog(testBusinesses())
	tokens := common.NewSessionTokens([]byte("test-secret"), "test")
	handler := publichttp.NewHandler(publichttp.Config{
		Logger:     log.New(io.Discard, "", 0),
		Businesses: publicapp.NewBusinessQueryService(catalog),
		Compare:    publicapp.NewCompareService(catalog, memory.NewCompareSessionStore(time.Hour)),
		Tokens:     tokens,
	})

	sessionMiddleware := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := common.BearerToken(r.Header.Get("Authorization"))
			if err != nil {
				common.WriteError(nil, w, http.StatusUnauthorized, "Unauthorized", err.Error())
				return
			}
			id, err := tokens.Parse(raw)
			if err != nil {
				common.WriteError(nil, w, http.StatusUnauthorized, "Unauthorized", err.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(common.ContextWithSession(r.Context(), id)))
		})
	}
	passthrough := func(next http.Handler) http.Handler { return next }

	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		handler.Register(r, sessionMiddleware, passthrough)
	})
	return router
}

func do(t *testing.T, router http.Handler, method, path, token string, body []byte) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func decodeIDs(t *testing.T, raw json.RawMessage) []int {
	t.Helper()
	var items []struct {
		ID int `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &items))
	ids := make([]int, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	return ids
}

func TestBusinessList(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name  string
		path  string
		want  []int
		count int
	}{
		{name: "defaults", path: "/api/businesses", want: []int{2, 1, 3}, count: 3},
		{name: "category", path: "/api/businesses?category=yoga", want: []int{2}, count: 1},
		{name: "price range", path: "/api/businesses?minPrice=40&maxPrice=60", want: []int{1, 3}, count: 2},
		{name: "malformed price falls back", path: "/api/businesses?minPrice=abc&maxPrice=", want: []int{2, 1, 3}, count: 3},
		{name: "services comma joined", path: "/api/businesses?services=sauna,group", want: []int{1, 3}, count: 2},
		{name: "services repeated", path: "/api/businesses?services=sauna&services=hot", want: []int{2, 1}, count: 2},
		{name: "search heuristic", path: "/api/businesses?search=cheap", want: []int{2}, count: 1},
		{name: "no match", path: "/api/businesses?category=Boxing", want: []int{}, count: 0},
		{name: "column sort", path: "/api/businesses?sort=price&order=desc", want: []int{3, 1, 2}, count: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := do(t, router, http.MethodGet, tt.path, "", nil)
			require.Equal(t, http.StatusOK, status)
			assert.True(t, env.Success)
			assert.Equal(t, tt.want, decodeIDs(t, env.Data))
			require.NotNil(t, env.Count)
			require.NotNil(t, env.Total)
			assert.Equal(t, tt.count, *env.Count)
			assert.Equal(t, 3, *env.Total)
		})
	}
}

func TestBusinessDetail(t *testing.T) {
	router := newTestRouter(t)

	status, env := do(t, router, http.MethodGet, "/api/businesses/1", "", nil)
	require.Equal(t, http.StatusOK, status)
	var detail map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &detail))
	assert.Equal(t, "Iron Temple Gym", detail["name"])
	assert.EqualValues(t, 120, detail["reviews"])
	assert.NotContains(t, detail, "hours")

	status, env = do(t, router, http.MethodGet, "/api/businesses/99", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)

	status, _ = do(t, router, http.MethodGet, "/api/businesses/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestMetadataEndpoints(t *testing.T) {
	router := newTestRouter(t)

	_, env := do(t, router, http.MethodGet, "/api/businesses/meta/categories", "", nil)
	var categories []string
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.Equal(t, []string{"Gym", "Yoga", "Cycling"}, categories)

	_, env = do(t, router, http.MethodGet, "/api/businesses/meta/vibes", "", nil)
	var vibes []string
	require.NoError(t, json.Unmarshal(env.Data, &vibes))
	assert.Len(t, vibes, 5)

	_, env = do(t, router, http.MethodGet, "/api/businesses/meta/price-range", "", nil)
	var bounds struct{ Min, Max int }
	require.NoError(t, json.Unmarshal(env.Data, &bounds))
	assert.Equal(t, 35, bounds.Min)
	assert.Equal(t, 60, bounds.Max)

	_, env = do(t, router, http.MethodGet, "/api/businesses/suggestions?q=yoga", "", nil)
	var suggestions []string
	require.NoError(t, json.Unmarshal(env.Data, &suggestions))
	assert.Equal(t, []string{"Zen Flow Yoga Studio", "Yoga", "Yoga with Hot Yoga"}, suggestions)
}

func startSession(t *testing.T, router http.Handler) string {
	t.Helper()
	status, env := do(t, router, http.MethodPost, "/api/compare/sessions", "", nil)
	require.Equal(t, http.StatusCreated, status)
	var session struct {
		SessionID string `json:"sessionId"`
		Token     string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &session))
	require.NotEmpty(t, session.SessionID)
	require.NotEmpty(t, session.Token)
	return session.Token
}

func decodeCompare(t *testing.T, env envelope) compareBody {
	t.Helper()
	var body compareBody
	require.NoError(t, json.Unmarshal(env.Data, &body))
	return body
}

func TestCompareFlow(t *testing.T) {
	router := newTestRouter(t)
	token := startSession(t, router)

	for _, id := range []string{"1", "2"} {
		status, env := do(t, router, http.MethodPost, "/api/compare/items", token, []byte(`{"id":`+id+`}`))
		require.Equal(t, http.StatusOK, status)
		assert.True(t, *decodeCompare(t, env).Changed)
	}

	status, env := do(t, router, http.MethodPost, "/api/compare/items", token, []byte(`{"id":3}`))
	require.Equal(t, http.StatusOK, status)
	body := decodeCompare(t, env)
	assert.False(t, *body.Changed)
	assert.Equal(t, 2, body.Count)
	assert.True(t, body.CanCompare)
	assert.False(t, body.CanAdd)

	_, env = do(t, router, http.MethodPost, "/api/compare/modal", token, nil)
	assert.True(t, decodeCompare(t, env).ModalOpen)

	_, env = do(t, router, http.MethodDelete, "/api/compare/items/1", token, nil)
	body = decodeCompare(t, env)
	assert.False(t, body.ModalOpen)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.Items[0].ID)

	_, env = do(t, router, http.MethodPost, "/api/compare/items/2/toggle", token, nil)
	assert.Equal(t, 0, decodeCompare(t, env).Count)

	_, env = do(t, router, http.MethodPost, "/api/compare/modal", token, nil)
	body = decodeCompare(t, env)
	assert.False(t, *body.Changed)
	assert.False(t, body.ModalOpen)

	_, env = do(t, router, http.MethodPost, "/api/compare/items/3/toggle", token, nil)
	assert.Equal(t, 1, decodeCompare(t, env).Count)

	_, env = do(t, router, http.MethodDelete, "/api/compare/items", token, nil)
	assert.Equal(t, 0, decodeCompare(t, env).Count)

	status, env = do(t, router, http.MethodGet, "/api/compare", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, decodeCompare(t, env).Changed)

	status, _ = do(t, router, http.MethodDelete, "/api/compare", token, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, router, http.MethodGet, "/api/compare", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCompareErrors(t *testing.T) {
	router := newTestRouter(t)

	status, env := do(t, router, http.MethodGet, "/api/compare", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.False(t, env.Success)

	status, _ = do(t, router, http.MethodGet, "/api/compare", "forged", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	token := startSession(t, router)

	status, _ = do(t, router, http.MethodPost, "/api/compare/items", token, []byte(`{"id":`))
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, router, http.MethodPost, "/api/compare/items", token, []byte(`{"id":0}`))
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, router, http.MethodPost, "/api/compare/items", token, []byte(`{"id":42}`))
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, router, http.MethodDelete, "/api/compare/items/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
