package main

import (
	"io"
	"testing"

	"github.com/forestrie/go-bloomhex/bloom"
	"github.com/stretchr/testify/require"
)

func TestParseConfigBuild(t *testing.T) {
	cfg, err := parseConfig([]string{"build", "-p", "0.01", "-hash", "xxhash64", "-in", "elems.txt"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, cmdBuild, cfg.Command)
	require.Equal(t, 0.01, cfg.Probability)
	require.Equal(t, bloom.HashNameXXHash64, cfg.HashName)
	require.Equal(t, "elems.txt", cfg.In)
	require.Equal(t, "INFO", cfg.LogLevel)

	cfg, err = parseConfig([]string{"build"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, bloom.DefaultProbability, cfg.Probability)
	require.Equal(t, bloom.HashNameMurmur3, cfg.HashName)
}

func TestParseConfigQuery(t *testing.T) {
	cfg, err := parseConfig([]string{"query", "-filter", "f.hex", "a", "b"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, cfg.Values)
	require.Equal(t, "f.hex", cfg.FilterFile)

	cfg, err = parseConfig([]string{"inspect", "-store", "dir", "-name", "daily"}, io.Discard)
	require.NoError(t, err)
	require.Equal(t, "dir", cfg.StoreDir)
	require.Equal(t, "daily", cfg.Name)
}

func TestParseConfigErrors(t *testing.T) {
	_, err := parseConfig(nil, io.Discard)
	require.ErrorIs(t, err, ErrNoCommand)

	_, err = parseConfig([]string{"delete"}, io.Discard)
	require.ErrorIs(t, err, ErrUnknownCommand)

	_, err = parseConfig([]string{"query", "-filter", "f.hex"}, io.Discard)
	require.ErrorIs(t, err, ErrNoValues)

	_, err = parseConfig([]string{"query", "a"}, io.Discard)
	require.ErrorIs(t, err, ErrNoFilterSource)

	_, err = parseConfig([]string{"inspect", "-store", "dir"}, io.Discard)
	require.ErrorIs(t, err, ErrNameRequired)

	_, err = parseConfig([]string{"build", "-hash", "sha1"}, io.Discard)
	require.ErrorIs(t, err, bloom.ErrUnknownHash)

	// -p only exists for build
	_, err = parseConfig([]string{"inspect", "-p", "0.1", "-filter", "f"}, io.Discard)
	require.Error(t, err)
}
