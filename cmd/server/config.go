package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	backendInmem = "inmem"
	backendBunt  = "bunt"
)

type Config struct {
	Addr         string
	Debug        bool
	Backend      string
	Syslog       bool
	AllowOrigins string
}

// loadDotEnvs loads .env files of the current SOCIAL_ENV. Variables that
// are already set win, so earlier files take precedence over later ones.
func loadDotEnvs(rootPath string) {
	env := os.Getenv("SOCIAL_ENV")
	if env == "" {
		env = "dev"
	}
	for _, name := range []string{".env." + env + ".local", ".env.local", ".env." + env, ".env"} {
		// missing files are fine
		_ = godotenv.Load(rootPath + name)
	}
}

func configFromEnv() Config {
	return Config{
		Addr:         os.Getenv("SOCIAL_ADDR"),
		Debug:        os.Getenv("DEBUG") == "true",
		Backend:      os.Getenv("SOCIAL_BACKEND"),
		Syslog:       os.Getenv("SOCIAL_SYSLOG") == "true",
		AllowOrigins: os.Getenv("SOCIAL_ALLOW_ORIGINS"),
	}
}

func (c *Config) validate() error {
	if c.Addr == "" {
		if c.Debug {
			c.Addr = "127.0.0.1:2137"
		} else {
			c.Addr = ":2137"
		}
	}
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		c.Backend = backendInmem
	}
	if c.Backend != backendInmem && c.Backend != backendBunt {
		return fmt.Errorf("unknown backend %q, expected %s or %s", c.Backend, backendInmem, backendBunt)
	}
	if c.AllowOrigins == "" {
		c.AllowOrigins = "*"
	}
	return nil
}

// newServerCommand builds the root command. Flags default to the values
// found in the environment.
func newServerCommand(run func(cfg Config) error) *cobra.Command {
	cfg := configFromEnv()
	cmd := &cobra.Command{
		Use:          "server",
		Short:        "Serve the social graph over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address (env SOCIAL_ADDR)")
	flags.BoolVar(&cfg.Debug, "debug", cfg.Debug, "debug logging and loopback listen address (env DEBUG)")
	flags.StringVar(&cfg.Backend, "backend", cfg.Backend, "record backend, inmem or bunt (env SOCIAL_BACKEND)")
	flags.BoolVar(&cfg.Syslog, "syslog", cfg.Syslog, "also log to syslog (env SOCIAL_SYSLOG)")
	flags.StringVar(&cfg.AllowOrigins, "allow-origins", cfg.AllowOrigins, "CORS allowed origins (env SOCIAL_ALLOW_ORIGINS)")
	return cmd
}
