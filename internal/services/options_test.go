package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/autocat-service/internal/config"
)

func TestNewServiceOptions_Memory(t *testing.T) {
	cfg := &config.Config{
		Store:   config.StoreConfig{Driver: config.DriverMemory},
		Contact: config.ContactConfig{MaxAttempts: 3, Window: 10 * time.Minute},
	}

	opts, err := NewServiceOptions(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer opts.Close()

	assert.NotNil(t, opts.CatalogHandler)
	assert.NotNil(t, opts.HTTPHandler)

	all, err := opts.Store.AllSummaries(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 15)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	_, _, err := OpenStore(context.Background(), config.StoreConfig{Driver: "sqlite"}, zap.NewNop())
	assert.Error(t, err)
}
