// Package testutil provides testing utilities for the crypto API.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// MockLCW is a configurable mock LiveCoinWatch server for testing.
// Handlers are registered per endpoint path; everything else returns 404.
type MockLCW struct {
	server   *httptest.Server
	mu       sync.Mutex
	handlers map[string]http.HandlerFunc

	requestCount map[string]int
	lastBody     map[string][]byte
	lastHeader   http.Header
}

// NewMockLCW creates a new mock upstream server.
func NewMockLCW() *MockLCW {
	mock := &MockLCW{
		handlers:     make(map[string]http.HandlerFunc),
		requestCount: make(map[string]int),
		lastBody:     make(map[string][]byte),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		mock.mu.Lock()
		mock.requestCount[r.URL.Path]++
		mock.lastBody[r.URL.Path] = body
		mock.lastHeader = r.Header.Clone()
		handler, ok := mock.handlers[r.URL.Path]
		mock.mu.Unlock()

		if ok {
			handler(w, r)
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))

	return mock
}

// URL returns the mock server base URL.
func (m *MockLCW) URL() string {
	return m.server.URL
}

// Close shuts the mock server down.
func (m *MockLCW) Close() {
	m.server.Close()
}

// Handle registers a handler for an endpoint path (e.g. "/coins/single").
func (m *MockLCW) Handle(path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// RespondJSON registers a fixed JSON response for an endpoint path.
func (m *MockLCW) RespondJSON(path string, status int, body string) {
	m.Handle(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// Requests returns how many requests hit the given endpoint path.
func (m *MockLCW) Requests(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requestCount[path]
}

// LastBody returns the most recent request body sent to the path.
func (m *MockLCW) LastBody(path string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastBody[path]
}

// LastHeader returns the headers of the most recent request.
func (m *MockLCW) LastHeader() http.Header {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastHeader.Clone()
}
