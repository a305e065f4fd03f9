package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectDBHonoursCallerContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	client, err := ConnectDB(ctx, "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=60000")
	require.Error(t, err)
	assert.Nil(t, client)
	assert.Less(t, time.Since(start), 5*time.Second, "cancelled context must not wait for server selection")
}

func TestOpenReportsUnreachableServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	store, err := Open(ctx, "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=60000", "planner", "kiosk")
	require.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "mongodb")
}
