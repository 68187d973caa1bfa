// Command token 以設定檔中的 jwt_secret 簽發存取令牌，供維運人員呼叫管理 API
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"conference-admin/internal/config"
	"conference-admin/internal/model"
	"conference-admin/internal/service"

	"github.com/spf13/pflag"
)

var (
	loadConfig = config.Load
	exitFunc   = os.Exit
)

var errNoUsername = errors.New("--username is required")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "token:", err)
		exitFunc(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("token", pflag.ContinueOnError)
	username := fs.String("username", "", "token subject")
	roles := fs.StringSlice("roles", []string{model.RoleAdministrator}, "roles carried by the token")
	ttl := fs.Duration("ttl", time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if strings.TrimSpace(*username) == "" {
		return errNoUsername
	}

	cfg, err := loadConfig(os.Getenv(config.EnvConfigFile))
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}
	tok, err := service.IssueAccessToken(cfg.JWTSecret, *username, *roles, *ttl)
	if err != nil {
		return fmt.Errorf("簽發失敗: %w", err)
	}
	_, err = fmt.Fprintln(out, tok)
	return err
}
