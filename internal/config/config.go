package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvConfigFile 指定設定檔路徑的環境變數，必須設定
const EnvConfigFile = "ADMIN_CONFIG_FILE"

// EnvPrefix 任何設定鍵都可以用 ADMIN_<KEY> 覆寫，例如 ADMIN_MAIL_HOST
const EnvPrefix = "ADMIN"

var ErrNoConfigFile = errors.New(EnvConfigFile + " is not set")

type Config struct {
	HTTPAddr    string        `mapstructure:"http_addr" validate:"required"`
	DatabaseURL string        `mapstructure:"database_url" validate:"required"`
	JWTSecret   string        `mapstructure:"jwt_secret" validate:"required"`
	LogLevel    string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	WorkerCount int           `mapstructure:"worker_count" validate:"gte=1"`
	MailTimeout time.Duration `mapstructure:"mail_timeout" validate:"gt=0"`
	Mail        MailConfig    `mapstructure:"mail"`

	// ResetDatabase 啟動時先回滾所有 migration 再重新執行；僅供開發環境
	ResetDatabase bool `mapstructure:"reset_database"`
}

// MailConfig 留空 Host 表示不寄信，只寫 log
type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port" validate:"gte=0,lte=65535"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Sender   string `mapstructure:"sender" validate:"required_with=Host"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("database_url", "")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("worker_count", 2)
	v.SetDefault("mail_timeout", 30*time.Second)
	v.SetDefault("reset_database", false)
	v.SetDefault("mail.host", "")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.sender", "")
}

// Load 讀取 path 指定的設定檔，套用環境變數覆寫並驗證
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, ErrNoConfigFile
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
