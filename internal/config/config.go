package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/joho/godotenv"
)

var ErrInvalid = errors.New("invalid configuration")

const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Options holds everything the binary can be told from env, .env, or flags.
// Flags win over the environment.
type Options struct {
	DataDir  string
	Store    string
	LogLevel string
	LogFile  string
	Theme    string
	Currency string
	Feedback time.Duration
}

// Load reads .env (if present) and the environment, then lets flags in args
// override. fs is usually flag.CommandLine; remaining args are in fs.Args().
func Load(fs *flag.FlagSet, args []string) (*Options, error) {
	loadEnvFile()

	o := &Options{}
	feedback, err := time.ParseDuration(getEnvOrDefault("SHOP_FEEDBACK", "1.5s"))
	if err != nil {
		return nil, fmt.Errorf("%w: SHOP_FEEDBACK: %v", ErrInvalid, err)
	}

	fs.StringVar(&o.DataDir, "data", getEnvOrDefault("SHOP_DATA_DIR", defaultDataDir()), "directory holding the cart and logs")
	fs.StringVar(&o.Store, "store", getEnvOrDefault("SHOP_STORE", StoreJSON), "cart storage: json, sqlite or memory")
	fs.StringVar(&o.LogLevel, "log-level", getEnvOrDefault("SHOP_LOG_LEVEL", "info"), "log level")
	fs.StringVar(&o.LogFile, "log-file", getEnvOrDefault("SHOP_LOG_FILE", ""), "log file (default <data>/shop.log)")
	fs.StringVar(&o.Theme, "theme", getEnvOrDefault("SHOP_THEME", "classic"), "color theme: classic, neon or mono")
	fs.StringVar(&o.Currency, "currency", getEnvOrDefault("SHOP_CURRENCY", "₹"), "currency symbol shown before prices")
	fs.DurationVar(&o.Feedback, "feedback", feedback, "how long an add button shows \"Added!\"")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.LogFile == "" && o.DataDir != "" {
		o.LogFile = filepath.Join(o.DataDir, "shop.log")
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Options) Validate() error {
	switch o.Store {
	case StoreJSON, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("%w: unknown store %q", ErrInvalid, o.Store)
	}
	if !slices.Contains([]string{"classic", "neon", "mono"}, o.Theme) {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalid, o.Theme)
	}
	if o.Feedback <= 0 {
		return fmt.Errorf("%w: feedback must be positive, got %s", ErrInvalid, o.Feedback)
	}
	if o.DataDir == "" && o.Store != StoreMemory {
		return fmt.Errorf("%w: data directory is required for the %s store", ErrInvalid, o.Store)
	}
	return nil
}

// SQLitePath is where the sqlite store keeps its database.
func (o *Options) SQLitePath() string {
	return filepath.Join(o.DataDir, "shop.db")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shopfront")
}

// getEnvOrDefault reads an environment variable or returns a default value if the variable is not set or is empty.
func getEnvOrDefault(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// loadEnvFile loads .env from the working directory. Existing variables are
// not overridden and a missing file is fine.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}
	_ = godotenv.Load(filepath.Join(cwd, ".env"))
}
