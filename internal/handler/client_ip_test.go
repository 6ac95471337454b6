package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"first forwarded hop", map[string]string{"X-Forwarded-For": " 198.51.100.4 , 10.0.0.1"}, "198.51.100.4"},
		{"forwarded wins over real ip", map[string]string{"X-Forwarded-For": "198.51.100.4", "X-Real-IP": "192.0.2.9"}, "198.51.100.4"},
		{"real ip", map[string]string{"X-Real-IP": "192.0.2.9"}, "192.0.2.9"},
		{"empty first hop falls through", map[string]string{"X-Forwarded-For": " , 10.0.0.1", "X-Real-IP": "192.0.2.9"}, "192.0.2.9"},
		{"no headers", nil, "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIP(req))
		})
	}
}

func TestReadBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 10)))
	body, err := readBody(req, 10)
	require.NoError(t, err)
	assert.Len(t, body, 10)

	// chunked bodies carry no Content-Length
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("a", 11)))
	req.ContentLength = -1
	_, err = readBody(req, 10)
	assert.ErrorIs(t, err, errBodyTooLarge)
}
