package lcw

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/ammarcodes29/cryptoAPI/internal/testutil"
)

func TestClient_Post_Success(t *testing.T) {
	mock := testutil.NewMockLCW()
	defer mock.Close()

	mock.RespondJSON("/coins/single", http.StatusOK, `{"name":"Bitcoin","rate":45000.5}`)

	c := NewClient(mock.URL(), "test-key")

	data, err := c.post(context.Background(), "coins/single", singleCoinRequest{
		Currency: "USD",
		Code:     "BTC",
		Meta:     true,
	})
	if err != nil {
		t.Fatalf("post() error = %v", err)
	}

	var coin coinPayload
	if err := json.Unmarshal(data, &coin); err != nil {
		t.Fatalf("response not decodable: %v", err)
	}
	if coin.Name != "Bitcoin" {
		t.Errorf("name = %q, want Bitcoin", coin.Name)
	}

	// The API key travels in the x-api-key header, the body as JSON.
	if got := mock.LastHeader().Get("X-Api-Key"); got != "test-key" {
		t.Errorf("X-Api-Key = %q, want test-key", got)
	}
	if got := mock.LastHeader().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}

	var sent singleCoinRequest
	if err := json.Unmarshal(mock.LastBody("/coins/single"), &sent); err != nil {
		t.Fatalf("request body not decodable: %v", err)
	}
	if sent.Code != "BTC" || sent.Currency != "USD" || !sent.Meta {
		t.Errorf("request body = %+v, want code BTC, currency USD, meta true", sent)
	}
}

func TestClient_Post_StatusClassification(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantKind    ErrorKind
		wantMessage string
	}{
		{
			name:        "401 unauthorized",
			status:      http.StatusUnauthorized,
			wantKind:    KindUnauthorized,
			wantMessage: "invalid API key or unauthorized access",
		},
		{
			name:        "404 not found",
			status:      http.StatusNotFound,
			wantKind:    KindNotFound,
			wantMessage: "endpoint not found",
		},
		{
			name:        "429 rate limited",
			status:      http.StatusTooManyRequests,
			wantKind:    KindRateLimited,
			wantMessage: "rate limit exceeded",
		},
		{
			name:        "500 with upstream description",
			status:      http.StatusInternalServerError,
			body:        `{"error":{"description":"database on fire"}}`,
			wantKind:    KindUpstream,
			wantMessage: "API error (500): database on fire",
		},
		{
			name:        "503 without body",
			status:      http.StatusServiceUnavailable,
			wantKind:    KindUpstream,
			wantMessage: "API error (503): unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testutil.NewMockLCW()
			defer mock.Close()
			mock.RespondJSON("/overview", tt.status, tt.body)

			c := NewClient(mock.URL(), "test-key")

			_, err := c.post(context.Background(), "overview", overviewRequest{Currency: "USD"})
			if err == nil {
				t.Fatal("post() error = nil, want classified error")
			}

			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("post() error = %v, want *Error", err)
			}
			if perr.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", perr.Kind, tt.wantKind)
			}
			if perr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", perr.Message, tt.wantMessage)
			}
			if tt.status >= 400 && perr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", perr.StatusCode, tt.status)
			}
		})
	}
}

func TestClient_Post_Timeout(t *testing.T) {
	mock := testutil.NewMockLCW()
	defer mock.Close()

	mock.Handle("/overview", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	c := NewClient(mock.URL(), "test-key")
	c.SetHTTPClient(&http.Client{Timeout: 20 * time.Millisecond})

	_, err := c.post(context.Background(), "overview", overviewRequest{Currency: "USD"})

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("post() error = %v, want *Error", err)
	}
	if perr.Kind != KindTimeout {
		t.Errorf("Kind = %q, want %q", perr.Kind, KindTimeout)
	}
}

func TestClient_Post_NetworkError(t *testing.T) {
	mock := testutil.NewMockLCW()
	url := mock.URL()
	mock.Close() // nothing is listening anymore

	c := NewClient(url, "test-key")

	_, err := c.post(context.Background(), "overview", overviewRequest{Currency: "USD"})

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("post() error = %v, want *Error", err)
	}
	if perr.Kind != KindNetwork {
		t.Errorf("Kind = %q, want %q", perr.Kind, KindNetwork)
	}
	if perr.Err == nil {
		t.Error("network error should carry its underlying cause")
	}
}

func TestClient_Post_ContextDeadline(t *testing.T) {
	mock := testutil.NewMockLCW()
	defer mock.Close()

	mock.Handle("/overview", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	c := NewClient(mock.URL(), "test-key")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.post(ctx, "overview", overviewRequest{Currency: "USD"})

	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("post() error = %v, want *Error", err)
	}
	if perr.Kind != KindTimeout {
		t.Errorf("Kind = %q, want %q", perr.Kind, KindTimeout)
	}
}
