package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fahicart/fahicart-web/internal/log"
	"github.com/fahicart/fahicart-web/pkg/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type okBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

type errBody struct {
	Error string `json:"error"`
}

func mountTestController(rs *RouterService) {
	ctrl := NewRESTController("TestController", "/", func(rs *RouterService, c *RESTController) {
		rs.AddGetHandler(c, nil, "ip", func(ctx *RequestContext) *ServiceResult {
			return OKResult(ctx.ClientIP(), "ok")
		})

		rs.AddPostHandler(c, nil, "echo", func(ctx *RequestContext) *ServiceResult {
			var payload map[string]any
			if err := ctx.ShouldBindJSON(&payload); err != nil {
				return BadRequestResult("bad")
			}
			return OKResult(payload, "ok")
		})

		rs.AddPostHandler(c, ratelimit.NewFixedWindowRateLimiter(1, time.Hour), "limited", func(ctx *RequestContext) *ServiceResult {
			return OKResult(nil, "accepted")
		})

		rs.AddPostHandler(c, nil, "upload", func(ctx *RequestContext) *ServiceResult {
			if _, err := ctx.GetRawData(); err != nil {
				return BadRequestResult("body too large")
			}
			return OKResult(nil, "stored")
		})
		rs.DeferBodyLimit(c, http.MethodPost, "upload")

		rs.AddGetHandler(c, nil, "nil-result", func(ctx *RequestContext) *ServiceResult {
			return nil
		})
	})

	rs.MountController(ctrl)
}

func newTestRouterService(t *testing.T) *RouterService {
	t.Helper()

	logger := log.NewLoggerWithJSONOutput()
	return CreateRouterService(logger, nil, &RouterConfig{
		RateLimitRequests: 1000,
		RateLimitWindow:   time.Minute,
		RequestTimeout:    5 * time.Second,
	})
}

func serve(rs *RouterService, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	rs.GetEngine().ServeHTTP(w, req)
	return w
}

func TestTrustedProxies_DisabledByDefault(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "")

	rs := newTestRouterService(t)
	mountTestController(rs)

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	req.Header.Set("X-Forwarded-For", "1.1.1.1")

	w := serve(rs, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp okBody
	require.NoError(t, json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(&resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "10.0.0.2", resp.Data, "ClientIP should use RemoteAddr when trusted proxies are disabled")
}

func TestTrustedProxies_StarTrustsForwardedFor(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "*")

	rs := newTestRouterService(t)
	mountTestController(rs)

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	req.Header.Set("X-Forwarded-For", "1.1.1.1")

	w := serve(rs, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp okBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1.1.1.1", resp.Data)
}

func TestParseTrustedProxiesEnv(t *testing.T) {
	assert.Nil(t, parseTrustedProxiesEnv(""))
	assert.Nil(t, parseTrustedProxiesEnv(" , "))
	assert.Equal(t, []string{"0.0.0.0/0", "::/0"}, parseTrustedProxiesEnv("*"))
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.1"}, parseTrustedProxiesEnv(" 10.0.0.0/8, 192.168.1.1 "))
}

func TestMaxBodySize_Returns413(t *testing.T) {
	t.Setenv("MAX_REQUEST_BODY_BYTES", "10")

	rs := newTestRouterService(t)
	mountTestController(rs)

	body := bytes.Repeat([]byte{'a'}, 50)
	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := serve(rs, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code, w.Body.String())
}

func TestMaxBodySize_DeferredRouteReadsCappedBody(t *testing.T) {
	t.Setenv("MAX_REQUEST_BODY_BYTES", "10")

	rs := newTestRouterService(t)
	mountTestController(rs)

	w := serve(rs, httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(bytes.Repeat([]byte{'a'}, 50))))
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.JSONEq(t, `{"error":"body too large"}`, w.Body.String())

	w = serve(rs, httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader([]byte("small"))))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestErrorResultsRenderErrorKey(t *testing.T) {
	rs := newTestRouterService(t)
	mountTestController(rs)

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")

	w := serve(rs, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"bad"}`, w.Body.String())
}

func TestNilHandlerResultIs500(t *testing.T) {
	rs := newTestRouterService(t)
	mountTestController(rs)

	w := serve(rs, httptest.NewRequest(http.MethodGet, "/nil-result", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp errBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "undefined result")
}

func TestHandlerRateLimitOverride(t *testing.T) {
	rs := newTestRouterService(t)
	mountTestController(rs)

	first := serve(rs, httptest.NewRequest(http.MethodPost, "/limited", nil))
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))

	second := serve(rs, httptest.NewRequest(http.MethodPost, "/limited", nil))
	require.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"error":"Too many requests. Please try again later."}`, second.Body.String())
	assert.Equal(t, "3600", second.Header().Get("Retry-After"))
}

func TestUnknownRouteIs404(t *testing.T) {
	rs := newTestRouterService(t)
	mountTestController(rs)

	w := serve(rs, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp errBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestCorrelationIDIsEchoed(t *testing.T) {
	rs := newTestRouterService(t)
	mountTestController(rs)

	req := httptest.NewRequest(http.MethodGet, "/ip", nil)
	req.Header.Set("X-Correlation-ID", "req-42")

	w := serve(rs, req)
	assert.Equal(t, "req-42", w.Header().Get("X-Correlation-ID"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestMetricsEndpoint(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "true")

	rs := newTestRouterService(t)
	mountTestController(rs)

	serve(rs, httptest.NewRequest(http.MethodGet, "/ip", nil))

	w := serve(rs, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestServiceResult_ToJSON(t *testing.T) {
	ok := OKResult(nil, "done").ToJSON()
	assert.Equal(t, true, ok["success"])
	assert.Equal(t, "done", ok["message"])
	assert.NotContains(t, ok, "data")

	withData := OKResult(map[string]int{"n": 1}, "done").ToJSON()
	assert.Contains(t, withData, "data")

	failed := InternalServerErrorResult("nope").ToJSON()
	assert.Equal(t, "nope", failed["error"])
	assert.NotContains(t, failed, "success")
}
