// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the accounts server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DatabasePath: path to the SQLite database file.
//   - SecretKey: HMAC secret for signing session JWTs (HS256). Do not use test defaults in prod.
//   - SessionTokenTTL / ResetTokenTTL: token lifetimes.
//   - SMTPHost / SMTPPort / SMTPUsername / SMTPPassword: outgoing mail settings.
//   - MailFrom: From address for notification emails.
//   - Origin: public base URL of the service, used to build links in emails.
//     Empty means emails carry the bare token instead of a link.
type Config struct {
	Addr            string
	DatabasePath    string
	SecretKey       string
	SessionTokenTTL time.Duration
	ResetTokenTTL   time.Duration
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	MailFrom        string
	Origin          string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.DatabasePath = "accounts.db"
	c.SecretKey = "secretKey"
	c.SessionTokenTTL = 7 * 24 * time.Hour
	c.ResetTokenTTL = 24 * time.Hour
	c.SMTPHost = "localhost"
	c.SMTPPort = 1025
	c.SMTPUsername = ""
	c.SMTPPassword = ""
	c.MailFrom = "noreply@localhost"
	c.Origin = ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
