package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscoverCmd_OfflineNeedsNoRuntime(t *testing.T) {
	configPath := ""
	verbose := false

	cmd := discoverCmd(context.Background(), &configPath, &verbose)
	cmd.SetArgs([]string{"--offline"})
	require.NoError(t, cmd.Execute(), "offline mode must not touch config or live sources")
}
