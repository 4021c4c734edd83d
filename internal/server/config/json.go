package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/groupauth/internal/flagx"
	"github.com/dmitrijs2005/groupauth/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields let a
// file override only the settings it mentions.
type JsonConfig struct {
	EndpointAddrGRPC *string         `json:"endpoint_addr_grpc"`
	DatabaseDSN      *string         `json:"database_dsn"`
	MaxWorkers       *int            `json:"max_workers"`
	PhraseLength     *int            `json:"phrase_length"`
	DBMaxOpenConns   *int            `json:"db_max_open_conns"`
	DBMaxIdleConns   *int            `json:"db_max_idle_conns"`
	TxAttempts       *int            `json:"tx_attempts"`
	LogLevel         *string         `json:"log_level"`
	RootUserEmail    *string         `json:"root_user_email"`
	RootUserPassword *string         `json:"root_user_password"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays the file named by -c/-config, if any.
// A missing or malformed file is a startup error and panics.
func parseJson(config *Config, args []string) {
	path := flagx.JsonConfigFlags(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
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
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
