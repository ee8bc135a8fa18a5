package config

import (
	"flag"
	"os"
	"time"
)

// parseFlags populates selected server Config fields from
// command-line flags.
//
// Supported flags:
//
//	-a string        HTTP bind address (e.g., ":8080")
//	-d string        SQLite database path
//	-s string        JWT HMAC secret key
//	-session-ttl     session token validity, hours
//	-reset-ttl       password reset token validity, hours
//	-smtp-host       SMTP server host
//	-smtp-port       SMTP server port
//	-mail-from       From address for notification emails
//	-origin          public base URL used in email links
//	-c/-config       path to a JSON config file (consumed by parseJSON)
//
// Duration flags are accepted as integers in hours and converted to
// time.Duration values.
func parseFlags(config *Config) {
	fs := flag.NewFlagSet("server", flag.ExitOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DatabasePath, "d", config.DatabasePath, "SQLite database path")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionTTL := fs.Int("session-ttl", int(config.SessionTokenTTL.Hours()), "session token validity (in hours)")
	resetTTL := fs.Int("reset-ttl", int(config.ResetTokenTTL.Hours()), "reset token validity (in hours)")

	fs.StringVar(&config.SMTPHost, "smtp-host", config.SMTPHost, "SMTP server host")
	fs.IntVar(&config.SMTPPort, "smtp-port", config.SMTPPort, "SMTP server port")
	fs.StringVar(&config.SMTPUsername, "smtp-username", config.SMTPUsername, "SMTP username")
	fs.StringVar(&config.SMTPPassword, "smtp-password", config.SMTPPassword, "SMTP password")
	fs.StringVar(&config.MailFrom, "mail-from", config.MailFrom, "From address for notification emails")
	fs.StringVar(&config.Origin, "origin", config.Origin, "public base URL used in email links")

	// Already handled by parseJSON, registered so Parse accepts it.
	fs.String("c", "", "path to JSON config file")
	fs.String("config", "", "path to JSON config file")

	// Игнорируем флаги, не относящиеся к конфигурации (например -version)
	args := filterArgs(os.Args[1:])
	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTokenTTL = time.Duration(*sessionTTL) * time.Hour
	config.ResetTokenTTL = time.Duration(*resetTTL) * time.Hour
}

// filterArgs drops flags that belong to main (such as -version) so
// the config FlagSet only sees what it understands.
func filterArgs(args []string) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			continue
		}
		out = append(out, arg)
	}
	return out
}
