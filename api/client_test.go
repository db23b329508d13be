package api

import (
	"context"
	"errors"
	appcontext "eventbook-client/context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsEmptyBaseURL(t *testing.T) {
	_, err := New("", time.Second)
	assert.Error(t, err)
}

func TestErrorDecodingUsesBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"message":"not enough seats available","status":"NOT_ENOUGH_SEATS"}`))
	}))
	defer server.Close()

	client, err := New(server.URL, time.Second)
	require.NoError(t, err)

	_, err = client.Events(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "not enough seats available", apiErr.Message)
	assert.Equal(t, "NOT_ENOUGH_SEATS", apiErr.Status)
	assert.Equal(t, "not enough seats available", UserMessage(err))
}

func TestErrorDecodingFallsBackToGeneric(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer server.Close()

	client, err := New(server.URL, time.Second)
	require.NoError(t, err)

	_, err = client.Events(context.Background())
	require.Error(t, err)
	assert.Equal(t, "request failed", UserMessage(err))
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	client, err := New("http://127.0.0.1:1", 200*time.Millisecond)
	require.NoError(t, err)

	_, err = client.Events(context.Background())
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr))
	assert.False(t, IsAuthError(err))
	assert.Equal(t, "request failed", UserMessage(err))
}

func TestCorrelationIDHeaderForwarded(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Correlation-Id")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, err := New(server.URL, time.Second)
	require.NoError(t, err)

	ctx := appcontext.NewContext("12345.678")
	_, err = client.Events(ctx)
	require.NoError(t, err)
	assert.Equal(t, "12345.678", got)
}

func TestContextCancellationAborts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client, err := New(server.URL, 5*time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err = client.Events(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
