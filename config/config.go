package config

import (
	"flag"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultServerAddress    = ":8080"
	defaultDatabaseDSN      = ""
	defaultLogLevel         = "debug"
	defaultOrderIDPrefix    = "AQ-"
	defaultOrderIDWidth     = 4
	defaultMinFilledFields  = 3
	defaultAutosaveInterval = 30 * time.Second
	defaultHistorySize      = 5
	defaultSessionTTL       = 30 * time.Minute
)

type Config struct {
	ServerAddr  string
	DatabaseDSN string
	LogLevel    string
	OperatorKey string

	// order identifier shape: prefix plus zero-padded counter
	OrderIDPrefix string
	OrderIDWidth  int

	// draft capture thresholds, tunable rather than structural
	MinFilledFields  int
	AutosaveInterval time.Duration
	HistorySize      int

	// idle sessions past this age are reaped
	SessionTTL time.Duration

	// when set, the binary prints an operator token for this subject
	// and exits instead of serving
	MintTokenSubject string
}

var (
	once      sync.Once
	singleton *Config
)

// New returns new Config. It parses command line and environment variables only once.
func New() (*Config, error) {
	once.Do(func() {
		// a local .env is optional
		_ = godotenv.Load()

		cfg := Config{
			MinFilledFields:  defaultMinFilledFields,
			AutosaveInterval: defaultAutosaveInterval,
			HistorySize:      defaultHistorySize,
			SessionTTL:       defaultSessionTTL,
		}

		// initialize flags
		flag.StringVar(&cfg.ServerAddr, "a", defaultServerAddress, "storefront server address")
		flag.StringVar(&cfg.DatabaseDSN, "d", defaultDatabaseDSN, "storefront database DSN")
		flag.StringVar(&cfg.LogLevel, "l", defaultLogLevel, "log level")
		flag.StringVar(&cfg.OrderIDPrefix, "p", defaultOrderIDPrefix, "order identifier prefix")
		flag.IntVar(&cfg.OrderIDWidth, "w", defaultOrderIDWidth, "order identifier zero-pad width")
		flag.StringVar(&cfg.MintTokenSubject, "t", "", "mint an operator token for subject and exit")

		flag.Parse()

		// if environment variable is set, then using it
		if runAddrEnv := os.Getenv("RUN_ADDRESS"); runAddrEnv != "" {
			cfg.ServerAddr = runAddrEnv
		}
		if dataBaseURIEnv := os.Getenv("DATABASE_URI"); dataBaseURIEnv != "" {
			cfg.DatabaseDSN = dataBaseURIEnv
		}
		if logLevelEnv := os.Getenv("LOG_LEVEL"); logLevelEnv != "" {
			cfg.LogLevel = logLevelEnv
		}
		if keyEnv := os.Getenv("OPERATOR_KEY"); keyEnv != "" {
			cfg.OperatorKey = keyEnv
		}
		if prefixEnv := os.Getenv("ORDER_ID_PREFIX"); prefixEnv != "" {
			cfg.OrderIDPrefix = prefixEnv
		}
		if widthEnv := os.Getenv("ORDER_ID_WIDTH"); widthEnv != "" {
			if w, err := strconv.Atoi(widthEnv); err == nil && w > 0 {
				cfg.OrderIDWidth = w
			}
		}
		if minEnv := os.Getenv("DRAFT_MIN_FILLED_FIELDS"); minEnv != "" {
			if n, err := strconv.Atoi(minEnv); err == nil && n > 0 {
				cfg.MinFilledFields = n
			}
		}
		if intervalEnv := os.Getenv("AUTOSAVE_INTERVAL"); intervalEnv != "" {
			if d, err := time.ParseDuration(intervalEnv); err == nil && d > 0 {
				cfg.AutosaveInterval = d
			}
		}
		if histEnv := os.Getenv("ORDER_HISTORY_SIZE"); histEnv != "" {
			if n, err := strconv.Atoi(histEnv); err == nil && n > 0 {
				cfg.HistorySize = n
			}
		}
		if ttlEnv := os.Getenv("SESSION_TTL"); ttlEnv != "" {
			if d, err := time.ParseDuration(ttlEnv); err == nil && d > 0 {
				cfg.SessionTTL = d
			}
		}

		singleton = &cfg
	})

	return singleton, nil
}
