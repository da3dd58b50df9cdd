package middlewares

import (
	"bytes"
	"diagnosis-service/internal/app/config"
	"diagnosis-service/internal/pkg/constvars"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		App: config.App{
			Timezone:                   "UTC",
			MaxRequests:                2,
			RequestBodyLimitInKilobyte: 1,
		},
	})
}

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()
	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	t.Run("Generates an ID when the client sends none", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rr.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("Keeps the client supplied ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "client-id", seen)
		assert.Equal(t, "client-id", rr.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares()

	tests := []struct {
		name  string
		panic interface{}
	}{
		{"string panic", "boom"},
		{"error panic", errors.New("boom")},
		{"other panic", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.panic)
			}))
			rr := httptest.NewRecorder()

			assert.NotPanics(t, func() {
				handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
			})
			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Equal(t, constvars.ErrClientSomethingWrongWithApplication, decodeErrorBody(t, rr)["error"])
		})
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	m := newTestMiddlewares()

	rr := httptest.NewRecorder()
	m.NotFound(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, constvars.MIMEApplicationJSON, rr.Header().Get(constvars.HeaderContentType))

	rr = httptest.NewRecorder()
	m.MethodNotAllowed(rr, httptest.NewRequest(http.MethodDelete, "/predict", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestLoggingRecordsStatus(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.Logging(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestRequestLogger(t *testing.T) {
	m := newTestMiddlewares()
	var out bytes.Buffer
	log := logrus.New()
	log.SetOutput(&out)

	handler := m.RequestLogger(m.InternalConfig.App, log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/predict", nil))

	assert.Contains(t, out.String(), "{POST} ==> {/predict} | {201}")
}

func TestBodyLimit(t *testing.T) {
	m := newTestMiddlewares()
	var readErr error
	handler := m.BodyLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	}))

	t.Run("Body within the limit", func(t *testing.T) {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(make([]byte, 512))))
		assert.NoError(t, readErr)
	})

	t.Run("Body over the limit", func(t *testing.T) {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(make([]byte, 2048))))
		var maxBytesErr *http.MaxBytesError
		assert.ErrorAs(t, readErr, &maxBytesErr)
	})
}

func TestRateLimiter(t *testing.T) {
	limiter := NewRateLimiter(zap.NewNop(), 2, time.Minute, time.Minute)
	handler := limiter.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/predict", nil)
		req.RemoteAddr = remoteAddr
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, send("10.0.0.1:1235").Code)

	rr := send("10.0.0.1:1236")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "1", rr.Header().Get(constvars.HeaderRetryAfter))

	assert.Equal(t, http.StatusOK, send("10.0.0.2:1234").Code, "other addresses keep their own bucket")
}

func TestRateLimiterReleasesBlockAfterBlockTime(t *testing.T) {
	limiter := NewRateLimiter(zap.NewNop(), 1, time.Second, time.Minute)
	now := time.Now()

	assert.True(t, limiter.allow("10.0.0.1", now))
	assert.False(t, limiter.allow("10.0.0.1", now))
	assert.False(t, limiter.allow("10.0.0.1", now.Add(30*time.Second)))
	assert.True(t, limiter.allow("10.0.0.1", now.Add(2*time.Minute)))
}

func TestRateLimiterForgetsIdleAddresses(t *testing.T) {
	limiter := NewRateLimiter(zap.NewNop(), 1, time.Second, time.Minute)
	now := time.Now()

	assert.True(t, limiter.allow("10.0.0.1", now))
	assert.True(t, limiter.allow("10.0.0.2", now.Add(10*time.Millisecond)))
	assert.False(t, limiter.allow("10.0.0.2", now.Add(20*time.Millisecond)))
	assert.Len(t, limiter.visitors, 2)
	assert.Len(t, limiter.blocked, 1)

	assert.True(t, limiter.allow("10.0.0.3", now.Add(2*time.Minute)))

	assert.Len(t, limiter.visitors, 1, "only the address seen after the idle window is kept")
	assert.Empty(t, limiter.blocked, "expired blocks are dropped")
	assert.Contains(t, limiter.visitors, "10.0.0.3")
}

func TestGlobalRateLimit(t *testing.T) {
	m := newTestMiddlewares()
	handler := m.GlobalRateLimit()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "10.0.0.9:5555"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
