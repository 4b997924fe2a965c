package http

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/devfolio/internal/adapters/memory"
	"github.com/aretw0/devfolio/internal/logging"
	"github.com/aretw0/devfolio/internal/testutils"
	"github.com/aretw0/devfolio/pkg/observability"
	"github.com/aretw0/devfolio/pkg/portfolio"
)

func newTestServer(t *testing.T, opts ...Option) (*httptest.Server, *portfolio.Manager) {
	t.Helper()
	streams := NewStreamManager(logging.NewNop())
	mgr := portfolio.NewManager(memory.New(), portfolio.WithLifecycleHooks(streams.Hooks()))

	handler, err := NewHandler(mgr, append([]Option{WithStreams(streams)}, opts...)...)
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, mgr
}

func do(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&out)
	}
	return resp, out
}

func TestValidate(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantErrors []any
	}{
		{"valid", `{"basics": {"name": "Jane"}}`, http.StatusOK, nil},
		{"invalid", `{"basics": {"email": "nope"}}`, http.StatusUnprocessableEntity,
			[]any{"basics.name: Required", "basics.email: Invalid email"}},
		{"root array", `[]`, http.StatusUnprocessableEntity, []any{": Expected object, received array"}},
		{"not json", `{"basics":`, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, out := do(t, http.MethodPost, srv.URL+"/validate", tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantErrors != nil {
				assert.Equal(t, tt.wantErrors, out["errors"])
				assert.Equal(t, false, out["success"])
			}
		})
	}
}

func TestValidate_ReturnsNormalizedData(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, out := do(t, http.MethodPost, srv.URL+"/validate", `{"basics": {"name": "Jane"}, "x-extra": 1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data := out["data"].(map[string]any)
	assert.NotEmpty(t, data["$schema"], "default $schema is filled in")
	assert.Equal(t, 1.0, data["x-extra"], "unknown keys pass through")
}

func TestValidate_BodyTooLarge(t *testing.T) {
	srv, _ := newTestServer(t, WithMaxBodyBytes(16))

	resp, _ := do(t, http.MethodPost, srv.URL+"/validate", `{"basics": {"name": "Jane Doe"}}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestPortfolioLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)
	base := srv.URL + "/portfolios"

	resp, out := do(t, http.MethodPut, base+"/jane", `{"basics": {"name": "Jane"}}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "jane", out["id"])
	assert.Contains(t, out["diff"].(map[string]any)["added"], "basics")

	resp, out = do(t, http.MethodGet, base+"/jane", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Jane", out["basics"].(map[string]any)["name"])

	resp, out = do(t, http.MethodPut, base+"/jane", `{"basics": {}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, []any{"basics.name: Required"}, out["errors"])

	resp, _ = do(t, http.MethodDelete, base+"/jane", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, out = do(t, http.MethodGet, base+"/jane", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "portfolio not found", out["error"])
}

func TestCreateAndList(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, out := do(t, http.MethodPost, srv.URL+"/portfolios", `{"basics": {"name": "Jane"}}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := out["id"].(string)
	assert.Equal(t, "/portfolios/"+id, resp.Header.Get("Location"))

	resp, err := http.Get(srv.URL + "/portfolios")
	require.NoError(t, err)
	defer resp.Body.Close()

	var ids []string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&ids))
	assert.Equal(t, []string{id}, ids)
}

func TestInvalidID(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := do(t, http.MethodPut, srv.URL+"/portfolios/-bad", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStaticEndpoints(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		path        string
		contentType string
		contains    string
	}{
		{"/health", "application/json", `"ok"`},
		{"/info", "application/json", `"devfolio-http"`},
		{"/schema.json", "application/schema+json", `"title": "DevFolio"`},
		{"/openapi.yaml", "text/yaml", "openapi: 3.0.3"},
		{"/swagger", "text/html", "swagger-ui"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Contains(t, resp.Header.Get("Content-Type"), tt.contentType)

			var sb strings.Builder
			_, _ = bufio.NewReader(resp.Body).WriteTo(&sb)
			assert.Contains(t, sb.String(), tt.contains)
		})
	}
}

func TestSchemaEndpoint_ValidatesSample(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/schema.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	var schema map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&schema))
	props := schema["properties"].(map[string]any)
	for key := range testutils.LoadSample(t) {
		assert.Contains(t, props, key)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, WithMetrics(observability.NewMetrics()))

	do(t, http.MethodGet, srv.URL+"/health", "")

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	var sb strings.Builder
	_, _ = bufio.NewReader(resp.Body).WriteTo(&sb)
	assert.Contains(t, sb.String(), `devfolio_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestCORS_Preflight(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := do(t, http.MethodOptions, srv.URL+"/validate", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestSubscribeEvents(t *testing.T) {
	srv, mgr := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events?id=jane", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "event: ping\n", line)

	// Other portfolios are filtered out; jane's store is delivered.
	_, err = mgr.Put(ctx, "john", map[string]any{"basics": map[string]any{"name": "John"}})
	require.NoError(t, err)
	_, err = mgr.Put(ctx, "jane", map[string]any{"basics": map[string]any{"name": "Jane"}})
	require.NoError(t, err)

	for {
		line, err = reader.ReadString('\n')
		require.NoError(t, err)
		if strings.HasPrefix(line, "data: {") {
			break
		}
	}
	assert.Contains(t, line, `"id":"jane"`)
	assert.Contains(t, line, `"type":"stored"`)
}

func TestStreamManager_Unsubscribe(t *testing.T) {
	sm := NewStreamManager(logging.NewNop())
	ch, cancel := sm.Subscribe("jane")
	global, cancelGlobal := sm.Subscribe("")

	sm.Broadcast("jane", "hello")
	assert.Equal(t, "hello", <-ch)
	assert.Equal(t, "hello", <-global)

	cancel()
	cancelGlobal()
	_, ok := <-ch
	assert.False(t, ok)
	assert.Empty(t, sm.subscribers)
}
