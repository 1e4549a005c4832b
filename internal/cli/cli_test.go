package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/autocat-service/internal/config"
)

func TestRootCmd_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["seed"])

	require.NotNil(t, RootCmd.PersistentFlags().Lookup("config"))
}

func TestSeed_MemoryDriver(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.DriverMemory}}
	err := seed(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestSeed_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "sqlite"}}
	err := seed(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}
