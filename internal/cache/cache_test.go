package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClient_FailsSafe(t *testing.T) {
	tests := []struct {
		name   string
		client *Client
	}{
		{"nil client", nil},
		{"disabled", New("", "", 0)},
		// Nothing listens on port 1.
		{"unreachable", New("127.0.0.1:1", "", 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			assert.NoError(t, tt.client.Set(ctx, "k", []byte("v"), time.Minute))

			assert.False(t, tt.client.Exists(ctx, "k"))
			assert.Error(t, tt.client.Ping(ctx))
			assert.NoError(t, tt.client.Close())
		})
	}
}
