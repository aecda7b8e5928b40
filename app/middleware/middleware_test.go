package middleware

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestLogger(t *testing.T) {
	buf := captureLog(t)

	handler := RequestID(Logger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	logOutput := buf.String()
	assert.Contains(t, logOutput, "GET")
	assert.Contains(t, logOutput, "/test")
	assert.Contains(t, logOutput, "418")
	assert.Contains(t, logOutput, "req-1")
	assert.Contains(t, logOutput, "took")
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get(RequestIDHeader)
	}))

	t.Run("generates an id", func(t *testing.T) {
		rw := httptest.NewRecorder()
		handler.ServeHTTP(rw, httptest.NewRequest("GET", "/", nil))
		assert.Len(t, seen, 36)
		assert.Equal(t, seen, rw.Header().Get(RequestIDHeader))
	})

	t.Run("keeps the client id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(RequestIDHeader, "abc")
		rw := httptest.NewRecorder()
		handler.ServeHTTP(rw, req)
		assert.Equal(t, "abc", seen)
		assert.Equal(t, "abc", rw.Header().Get(RequestIDHeader))
	})
}

func TestRecoverer(t *testing.T) {
	captureLog(t)

	handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	}))

	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, httptest.NewRequest("GET", "/api/gallery", nil))

	assert.Equal(t, http.StatusInternalServerError, rw.Code)
	assert.JSONEq(t, `{"error":"Erro interno do servidor"}`, rw.Body.String())
}

func TestContentTypeJSON(t *testing.T) {
	handler := ContentTypeJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	tests := []struct {
		path string
		want string
	}{
		{path: "/api/products", want: "application/json"},
		{path: "/metrics", want: ""},
		{path: "/", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rw := httptest.NewRecorder()
			handler.ServeHTTP(rw, httptest.NewRequest("GET", tt.path, nil))
			assert.Equal(t, tt.want, rw.Header().Get("Content-Type"))
		})
	}
}
