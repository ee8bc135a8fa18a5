package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays configuration values from ACCOUNTS_* environment
// variables. Secrets (JWT key, SMTP password) are usually supplied
// this way rather than via flags.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ACCOUNTS_ADDR"); ok {
		config.Addr = v
	}
	if v, ok := os.LookupEnv("ACCOUNTS_DATABASE_PATH"); ok {
		config.DatabasePath = v
	}
	if v, ok := os.LookupEnv("ACCOUNTS_SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ACCOUNTS_SESSION_TOKEN_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.SessionTokenTTL = d
	}
	if v, ok := os.LookupEnv("ACCOUNTS_RESET_TOKEN_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.ResetTokenTTL = d
	}
	if v, ok := os.LookupEnv("ACCOUNTS_SMTP_HOST"); ok {
		config.SMTPHost = v
	}
	if v, ok := os.LookupEnv("ACCOUNTS_SMTP_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.SMTPPort = port
	}
	if v, ok := os.LookupEnv("ACCOUNTS_SMTP_USERNAME"); ok {
		config.SMTPUsername = v
	}
	if v, ok := os.LookupEnv("ACCOUNTS_SMTP_PASSWORD"); ok {
		config.SMTPPassword = v
	}
	if v, ok := os.LookupEnv("ACCOUNTS_MAIL_FROM"); ok {
		config.MailFrom = v
	}
	if v, ok := os.LookupEnv("ACCOUNTS_ORIGIN"); ok {
		config.Origin = v
	}
}
