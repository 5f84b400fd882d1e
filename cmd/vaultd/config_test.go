package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vaultd.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
home = "/var/lib/vault"
chain_id = "file-chain"
log_level = "debug"
`), 0600))
	broken := filepath.Join(dir, "broken.toml")
	require.NoError(t, os.WriteFile(broken, []byte(`home = `), 0600))

	cases := map[string]struct {
		path    string
		environ map[string]string
		want    Config
		wantErr bool
	}{
		"defaults": {
			environ: map[string]string{"HOME": "/home/alice"},
			want: Config{
				Home:     "/home/alice/.vaultd",
				Genesis:  "/home/alice/.vaultd/genesis.json",
				LogLevel: "info",
			},
		},
		"file": {
			path:    path,
			environ: map[string]string{},
			want: Config{
				Home:     "/var/lib/vault",
				Genesis:  "/var/lib/vault/genesis.json",
				ChainID:  "file-chain",
				LogLevel: "debug",
			},
		},
		"environment overrides file": {
			path: path,
			environ: map[string]string{
				"VAULT_CHAIN_ID":  "env-chain",
				"VAULT_GENESIS":   "/etc/vault/genesis.json",
				"VAULT_LOG_LEVEL": "error",
			},
			want: Config{
				Home:     "/var/lib/vault",
				Genesis:  "/etc/vault/genesis.json",
				ChainID:  "env-chain",
				LogLevel: "error",
			},
		},
		"missing file": {
			path:    filepath.Join(dir, "missing.toml"),
			wantErr: true,
		},
		"broken file": {
			path:    broken,
			wantErr: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			cfg, err := loadConfig(tc.path, tc.environ)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, cfg)
		})
	}
}

func TestNewLogger(t *testing.T) {
	_, err := newLogger(os.Stderr, "debug")
	require.NoError(t, err)
	_, err = newLogger(os.Stderr, "loud")
	require.Error(t, err)
}
