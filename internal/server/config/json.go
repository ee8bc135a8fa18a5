package config

import (
	"encoding/json"
	"os"
	"time"
)

// jsonConfig defines a configuration structure tailored for JSON
// unmarshalling. Duration fields are given as strings such as "24h"
// or "168h" and parsed with time.ParseDuration.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied
// into the runtime Config struct.
type jsonConfig struct {
	Addr            *string `json:"addr"`
	DatabasePath    *string `json:"database_path"`
	SecretKey       *string `json:"secret_key"`
	SessionTokenTTL *string `json:"session_token_ttl"`
	ResetTokenTTL   *string `json:"reset_token_ttl"`
	SMTPHost        *string `json:"smtp_host"`
	SMTPPort        *int    `json:"smtp_port"`
	SMTPUsername    *string `json:"smtp_username"`
	SMTPPassword    *string `json:"smtp_password"`
	MailFrom        *string `json:"mail_from"`
	Origin          *string `json:"origin"`
}

// configFilePath scans os.Args for the -c/-config flags without
// consuming them, so parseFlags can still run over the full argument
// list later.
func configFilePath() string {
	args := os.Args[1:]
	for i, arg := range args {
		switch arg {
		case "-c", "-config", "--config":
			if i+1 < len(args) {
				return args[i+1]
			}
		}
	}
	return os.Getenv("ACCOUNTS_CONFIG")
}

// parseJSON loads configuration values from a JSON file into the
// provided Config instance.
//
// The file path comes from the -c/-config command-line flags or the
// ACCOUNTS_CONFIG environment variable. If neither is set, no JSON
// file is loaded. Only fields present in the file override the
// current values. If the file cannot be read or contains invalid
// JSON, the function panics.
func parseJSON(config *Config) {
	jsonConfigFile := configFilePath()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Addr != nil {
		config.Addr = *c.Addr
	}
	if c.DatabasePath != nil {
		config.DatabasePath = *c.DatabasePath
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.SessionTokenTTL != nil {
		d, err := time.ParseDuration(*c.SessionTokenTTL)
		if err != nil {
			panic(err)
		}
		config.SessionTokenTTL = d
	}
	if c.ResetTokenTTL != nil {
		d, err := time.ParseDuration(*c.ResetTokenTTL)
		if err != nil {
			panic(err)
		}
		config.ResetTokenTTL = d
	}
	if c.SMTPHost != nil {
		config.SMTPHost = *c.SMTPHost
	}
	if c.SMTPPort != nil {
		config.SMTPPort = *c.SMTPPort
	}
	if c.SMTPUsername != nil {
		config.SMTPUsername = *c.SMTPUsername
	}
	if c.SMTPPassword != nil {
		config.SMTPPassword = *c.SMTPPassword
	}
	if c.MailFrom != nil {
		config.MailFrom = *c.MailFrom
	}
	if c.Origin != nil {
		config.Origin = *c.Origin
	}
}
