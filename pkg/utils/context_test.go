package utils

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUpContextSignals(t *testing.T) {
	codes := make(chan int, 1)
	exit = func(code int) { codes <- code }
	t.Cleanup(func() { exit = os.Exit })

	ctx := SetUpContext(context.Background(), syscall.SIGUSR1)
	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGUSR1))
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context not cancelled by the first signal")
	}

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGUSR1))
	select {
	case code := <-codes:
		assert.Equal(t, 1, code)
	case <-time.After(5 * time.Second):
		t.Fatal("second signal did not exit")
	}
}

func TestSetUpContextParent(t *testing.T) {
	parent, cancel := context.WithCancel(context.Background())
	ctx := SetUpContext(parent, syscall.SIGUSR2)
	assert.NoError(t, ctx.Err())

	cancel()
	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}
