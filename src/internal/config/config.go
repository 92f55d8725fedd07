package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPAddr              string   `env:"HTTP_ADDR" envDefault:":8080"`
	StorageDriver         string   `env:"STORAGE_DRIVER" envDefault:"memory"`
	DatabaseDSN           string   `env:"DATABASE_DSN" envDefault:"Host=localhost;Port=5432;Database=pension_payments_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"`
	MigrationsDir         string   `env:"MIGRATIONS_DIR"`
	ChannelID             string   `env:"CHANNEL_ID" envDefault:"PensionApp"`
	ChannelKey            string   `env:"CHANNEL_KEY" envDefault:"PensionKey001"`
	DefaultDocumentNumber string   `env:"DEFAULT_DOCUMENT_NUMBER" envDefault:"3644"`
	SenderAccounts        []string `env:"SENDER_ACCOUNTS" envSeparator:"," envDefault:"KZ50551Z127012909KZT,KZ86125KZT3006123456,KZ44185EUR3000987654"`
	TaxOfficeName         string   `env:"TAX_OFFICE_NAME" envDefault:"НАО Государственная корпорация \"Правительство для граждан\""`
	TaxOfficeBIN          string   `env:"TAX_OFFICE_BIN" envDefault:"160440007161"`
	TaxOfficeAccount      string   `env:"TAX_OFFICE_ACCOUNT" envDefault:"KZ12009NPS041360981б"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	if cfg.StorageDriver != StorageMemory && cfg.StorageDriver != StoragePostgres {
		return Config{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	if strings.TrimSpace(cfg.MigrationsDir) == "" {
		cfg.MigrationsDir = filepath.Join("src", "migrations")
	}

	accounts := make([]string, 0, len(cfg.SenderAccounts))
	for _, account := range cfg.SenderAccounts {
		if trimmed := strings.TrimSpace(account); trimmed != "" {
			accounts = append(accounts, trimmed)
		}
	}
	if len(accounts) == 0 {
		return Config{}, fmt.Errorf("at least one sender account is required")
	}
	cfg.SenderAccounts = accounts

	cfg.DatabaseDSN = normalizeConnectionString(strings.TrimSpace(cfg.DatabaseDSN))

	return cfg, nil
}

// connectionKeys maps semicolon connection-string keys to lib/pq keywords.
var connectionKeys = map[string]string{
	"server":          "host",
	"database":        "dbname",
	"username":        "user",
	"user id":         "user",
	"timeout":         "connect_timeout",
	"connect timeout": "connect_timeout",
	"commandtimeout":  "statement_timeout",
	"command timeout": "statement_timeout",
	"ssl mode":        "sslmode",
}

// normalizeConnectionString rewrites "Host=..;Database=.." into the lib/pq
// keyword form. Anything without a semicolon is assumed to be a URL or
// keyword DSN already and is returned unchanged.
func normalizeConnectionString(raw string) string {
	if !strings.Contains(raw, ";") {
		return raw
	}

	out := make([]string, 0, 8)
	hasSSLMode := false
	for _, part := range strings.Split(raw, ";") {
		key, val, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}

		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.TrimSpace(val)
		if keyword, known := connectionKeys[key]; known {
			key = keyword
		}

		switch key {
		case "statement_timeout":
			val += "s"
		case "sslmode":
			hasSSLMode = true
		}
		out = append(out, key+"="+val)
	}

	if len(out) == 0 {
		return raw
	}
	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
