package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config reúne todo lo configurable por entorno.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// Si DB_DSN está vacío se usa el repo en memoria (modo dev).
	DBDSN          string        `env:"DB_DSN"`
	DBQueryTimeout time.Duration `env:"DB_QUERY_TIMEOUT" envDefault:"5s"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`

	// Búsqueda sin filtros: true => no se ejecuta; false => top 50 sin filtrar.
	SearchRequireFilter bool `env:"SEARCH_REQUIRE_FILTER" envDefault:"true"`

	ColumnsFile string `env:"COLUMNS_FILE"`
	DevSeed     bool   `env:"DEV_SEED" envDefault:"false"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	AppName   string `env:"APP_NAME" envDefault:"procuraduria"`
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// Load lee un .env opcional y después las variables de entorno.
// Las variables ya definidas en el entorno tienen prioridad sobre el archivo.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBQueryTimeout <= 0 {
		cfg.DBQueryTimeout = 5 * time.Second
	}
	if cfg.DBMaxOpenConns <= 0 {
		cfg.DBMaxOpenConns = 10
	}
	return cfg, nil
}
