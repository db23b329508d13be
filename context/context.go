package context

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

const (
	ContextKeyCorrelationID ContextKey = "Correlation-Id"
	DefaultHttpTimeout                 = 30 * time.Second
)

type ContextKey string

// NewCorrelationID builds a fresh correlation id. Both the client (one id
// per user-visible operation) and the dev server (requests arriving
// without one) generate ids with the same shape so log lines correlate
// across the wire.
func NewCorrelationID() string {
	return fmt.Sprintf("%d.%d", rand.Int31(), time.Now().UTC().Unix())
}

// NewContext returns a background context carrying the given correlation
// id. An empty id gets a generated one.
func NewContext(correlationID string) context.Context {
	if correlationID == "" {
		correlationID = NewCorrelationID()
	}
	return context.WithValue(context.Background(), ContextKeyCorrelationID, correlationID)
}

func NewContextWithTimeOut(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func SetContextWithValue(ctx context.Context, key ContextKey, value string) context.Context {
	return context.WithValue(ctx, key, value)
}

func GetContextValue(ctx context.Context, key ContextKey) string {
	v := ctx.Value(key)
	if v != nil {
		if ret, ok := v.(string); ok {
			return ret
		}
	}
	return ""
}
