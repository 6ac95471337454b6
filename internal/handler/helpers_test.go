package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/techq/techq-be/internal/model"
	"github.com/techq/techq-be/internal/service"
)

const testOrigin = "https://techq.co.za"

type mockChatReplier struct {
	mock.Mock
}

func (m *mockChatReplier) Reply(ctx context.Context, message string, history []model.ChatTurn) (string, error) {
	args := m.Called(ctx, message, history)
	return args.String(0), args.Error(1)
}

type mockContactSubmitter struct {
	mock.Mock
}

func (m *mockContactSubmitter) Submit(ctx context.Context, sub model.ContactSubmission) (*model.ContactResult, error) {
	args := m.Called(ctx, sub)
	result, _ := args.Get(0).(*model.ContactResult)
	return result, args.Error(1)
}

// stubLimiter admits while allow is true and records every call.
type stubLimiter struct {
	mu       sync.Mutex
	allow    bool
	ips      []string
	policies []service.Policy
}

func (l *stubLimiter) Allow(_ context.Context, ip string, p service.Policy) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ips = append(l.ips, ip)
	l.policies = append(l.policies, p)
	return l.allow
}

func (l *stubLimiter) calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.ips)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newRequest(method, path string, body []byte) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", testOrigin)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	return req
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}
