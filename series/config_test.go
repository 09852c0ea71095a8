// Copyright 2023 Seriate Authors.

package series_test

import (
	"testing"

	"seriate/series"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
[default]
format=pretty
max_rows=20

[wide]
format=json
`

func TestLoadConfigString(t *testing.T) {
	var cfg series.Config
	require.NoError(t, series.LoadConfigString(testConfig, "default", &cfg))
	assert.Equal(t, "pretty", cfg.Format)
	assert.Equal(t, 20, cfg.MaxRows)

	cfg = series.Config{}
	require.NoError(t, series.LoadConfigString(testConfig, "wide", &cfg))
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, 0, cfg.MaxRows)
}

func TestLoadConfigMissingProfile(t *testing.T) {
	var cfg series.Config
	err := series.LoadConfigString(testConfig, "nope", &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile 'nope' not found")
}

func TestLoadConfigBadMaxRows(t *testing.T) {
	var cfg series.Config
	err := series.LoadConfigString("[default]\nmax_rows=lots\n", "default", &cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_rows")
}
