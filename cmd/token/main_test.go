package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"conference-admin/internal/config"
	"conference-admin/internal/model"
	"conference-admin/internal/service"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database_url: db\njwt_secret: s\n"), 0o600))
	t.Setenv(config.EnvConfigFile, path)
}

func TestRunIssuesVerifiableToken(t *testing.T) {
	writeConfig(t)
	var out bytes.Buffer
	require.NoError(t, run([]string{"--username", "ops", "--roles", "ADMINISTRATOR,PROGRAM_COMMITTEE", "--ttl", "5m"}, &out))

	claims, err := service.VerifyAccessToken("s", strings.TrimSpace(out.String()))
	require.NoError(t, err)
	require.Equal(t, "ops", claims.Username)
	require.Equal(t, []string{model.RoleAdministrator, model.RoleProgramCommittee}, claims.Roles)
}

func TestRunDefaultsToAdministrator(t *testing.T) {
	writeConfig(t)
	var out bytes.Buffer
	require.NoError(t, run([]string{"--username", "ops"}, &out))
	claims, err := service.VerifyAccessToken("s", strings.TrimSpace(out.String()))
	require.NoError(t, err)
	require.Equal(t, []string{model.RoleAdministrator}, claims.Roles)
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(func() { loadConfig = config.Load })

	require.ErrorIs(t, run(nil, &bytes.Buffer{}), errNoUsername)
	require.Error(t, run([]string{"--bogus"}, &bytes.Buffer{}))

	loadConfig = func(string) (*config.Config, error) { return nil, errors.New("boom") }
	require.ErrorContains(t, run([]string{"--username", "ops"}, &bytes.Buffer{}), "boom")

	loadConfig = func(string) (*config.Config, error) { return &config.Config{}, nil }
	require.ErrorIs(t, run([]string{"--username", "ops"}, &bytes.Buffer{}), service.ErrEmptySecret)
}

func TestMainExit(t *testing.T) {
	t.Cleanup(func() {
		loadConfig = config.Load
		exitFunc = os.Exit
	})
	code := 0
	exitFunc = func(c int) { code = c }
	old := os.Args
	t.Cleanup(func() { os.Args = old })
	os.Args = []string{"token"}
	main()
	require.Equal(t, 1, code)
}
