package server

import (
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-jportal/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoAddress(t *testing.T) {
	s, err := NewServer(http.NotFoundHandler(), "", logger.Nop())

	assert.ErrorIs(t, err, errNoAddress)
	assert.Nil(t, s)
}

func TestServer_RunAndShutdown(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	address := l.Addr().String()
	require.NoError(t, l.Close())

	s, err := NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}), address, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- s.RunServer() }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + address + "/")
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusNoContent
	}, 2*time.Second, 20*time.Millisecond)

	s.Shutdown()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ListenFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	s, err := NewServer(http.NotFoundHandler(), l.Addr().String(), logger.Nop())
	require.NoError(t, err)

	assert.Error(t, s.RunServer())
}
