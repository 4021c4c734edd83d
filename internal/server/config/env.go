package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/dmitrijs2005/groupauth/internal/flagx"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every variable, e.g. GROUPAUTH_DATABASE_DSN.
const EnvPrefix = "GROUPAUTH"

// EnvConfig lists the variables understood by parseEnv. Unset variables leave
// the current value alone.
type EnvConfig struct {
	EndpointAddrGRPC *string        `envconfig:"ENDPOINT_ADDR_GRPC"`
	DatabaseDSN      *string        `envconfig:"DATABASE_DSN"`
	MaxWorkers       *int           `envconfig:"MAX_WORKERS"`
	PhraseLength     *int           `envconfig:"PHRASE_LENGTH"`
	DBMaxOpenConns   *int           `envconfig:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns   *int           `envconfig:"DB_MAX_IDLE_CONNS"`
	TxAttempts       *int           `envconfig:"TX_ATTEMPTS"`
	LogLevel         *string        `envconfig:"LOG_LEVEL"`
	RootUserEmail    *string        `envconfig:"ROOT_USER_EMAIL"`
	RootUserPassword *string        `envconfig:"ROOT_USER_PASSWORD"`
	ShutdownTimeout  *time.Duration `envconfig:"SHUTDOWN_TIMEOUT"`
}

// parseEnv loads the dotenv file named by -env (or ./.env when present) into
// the process environment, then overlays GROUPAUTH_* variables.
func parseEnv(config *Config, args []string) {
	loadDotEnv(flagx.EnvFileFlags(args))

	c := &EnvConfig{}
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		panic(err)
	}

	setIf(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.MaxWorkers, c.MaxWorkers)
	setIf(&config.PhraseLength, c.PhraseLength)
	setIf(&config.DBMaxOpenConns, c.DBMaxOpenConns)
	setIf(&config.DBMaxIdleConns, c.DBMaxIdleConns)
	setIf(&config.TxAttempts, c.TxAttempts)
	setIf(&config.LogLevel, c.LogLevel)
	setIf(&config.RootUserEmail, c.RootUserEmail)
	setIf(&config.RootUserPassword, c.RootUserPassword)
	setIf(&config.ShutdownTimeout, c.ShutdownTimeout)
}

// loadDotEnv never overrides variables already present in the environment.
// An explicitly named file must exist; the implicit ./.env is optional.
func loadDotEnv(path string) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
		return
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
}
