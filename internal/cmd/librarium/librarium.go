// Package librarium parses client flags and launches the interactive shell.
package librarium

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/openshelf/librarium/internal/api"
	"github.com/openshelf/librarium/internal/platform/config"
	"github.com/openshelf/librarium/internal/platform/otel"
	"github.com/openshelf/librarium/internal/screens"
	"github.com/openshelf/librarium/internal/session"
	"github.com/openshelf/librarium/internal/storage"
	boltstore "github.com/openshelf/librarium/internal/storage/bbolt"
	memorystore "github.com/openshelf/librarium/internal/storage/memory"
	sqlitestore "github.com/openshelf/librarium/internal/storage/sqlite"
)

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (config.Config, error) {
	cfg, err := config.ParseEnv()
	if err != nil {
		return config.Config{}, err
	}
	fs.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "Remote library service origin")
	fs.StringVar(&cfg.StateDriver, "state-driver", cfg.StateDriver, "Client state backend: bbolt, sqlite or memory")
	fs.StringVar(&cfg.StatePath, "state", cfg.StatePath, "Client state file path")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Message locale, e.g. en-US or ru-RU")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Run starts the interactive client and blocks until it exits.
func Run(ctx context.Context, cfg config.Config) error {
	shutdown, err := otel.Setup(ctx, "librarium", cfg.OTelEndpoint, cfg.OTelEnabled)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	state, err := openState(cfg)
	if err != nil {
		return fmt.Errorf("open state store: %w", err)
	}
	defer func() {
		if err := state.Close(); err != nil {
			log.Printf("close state store: %v", err)
		}
	}()

	sessions, err := session.New(state)
	if err != nil {
		return err
	}
	sessions.Init(ctx)

	gateway, err := api.New(api.Config{
		BaseURL: cfg.APIBaseURL,
		Token:   sessions.AccessToken,
	})
	if err != nil {
		return fmt.Errorf("create gateway client: %w", err)
	}

	// The masked prompt reads the terminal directly, so it is only wired
	// in when stdin actually is one; piped input goes through the shell's
	// own line reader.
	var password screens.PasswordReader
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password = readPassword
	}

	shell, err := screens.New(screens.Config{
		Session:  sessions,
		Gateway:  gateway,
		Locale:   cfg.Locale,
		In:       os.Stdin,
		Out:      os.Stdout,
		Logger:   log.Default(),
		Password: password,
	})
	if err != nil {
		return err
	}
	return shell.Run(ctx)
}

func openState(cfg config.Config) (storage.Store, error) {
	switch cfg.StateDriver {
	case config.DriverBBolt:
		return boltstore.Open(cfg.StatePath)
	case config.DriverSQLite:
		return sqlitestore.Open(cfg.StatePath)
	case config.DriverMemory:
		return memorystore.New(), nil
	default:
		return nil, fmt.Errorf("unknown state driver %q", cfg.StateDriver)
	}
}

// readPassword prompts for a secret without echoing it.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
