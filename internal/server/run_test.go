package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_HandlesRequestsUntilCancelled(t *testing.T) {
	deps := newTestDeps()
	router := New(deps)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- Serve(ctx, ln, &deps.Config.Server, router)
	}()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/user/42?q=live")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"user_id": 42, "q": "live"}`, string(body))

	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after context cancellation")
	}

	_, err = client.Get("http://" + ln.Addr().String() + "/")
	assert.Error(t, err, "listener should be closed after shutdown")
}

func TestListenAndServe_InvalidAddress(t *testing.T) {
	cfg := newTestConfig().Server
	cfg.Port = "-1"

	err := ListenAndServe(context.Background(), &cfg, http.NotFoundHandler())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}
