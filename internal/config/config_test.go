package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nacmd.yaml")
	doc := "policy-file: /etc/nacm/policy.yaml\nrecovery-user: super\nlogging:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/etc/nacm/policy.yaml", cfg.PolicyFile)
	assert.Equal(t, "super", cfg.RecoveryUser)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format, "unset fields keep their default")
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	t.Setenv("NACMD_RECOVERY_USER", "envuser")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "envuser", cfg.RecoveryUser)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
