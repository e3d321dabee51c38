// Package app arma repos y services a partir de la configuración.
// Lo usan tanto la API como el CLI.
package app

import (
	"database/sql"
	"time"

	mem "procuraduria/internal/adapters/storage/memory"
	pg "procuraduria/internal/adapters/storage/postgres"
	"procuraduria/internal/domain/legajos"
	"procuraduria/internal/domain/movimientos"
	"procuraduria/internal/platform/config"
	"procuraduria/internal/platform/logger"
	"procuraduria/internal/presentation"
)

type Deps struct {
	// Si viene, usa Postgres. Si no, in-memory (Memory, o vacío).
	DB     *sql.DB
	Memory *mem.Store

	QueryTimeout     time.Duration
	AllowEmptySearch bool
}

type Services struct {
	Legajos     *legajos.Service
	Movimientos *movimientos.Service
}

func NewServices(d Deps) Services {
	var (
		legajosRepo legajos.Repository
		movRepo     movimientos.Repository
	)

	if d.DB != nil {
		legajosRepo = pg.NewLegajosRepo(d.DB, d.QueryTimeout)
		movRepo = pg.NewMovimientosRepo(d.DB, d.QueryTimeout)
	} else {
		store := d.Memory
		if store == nil {
			store = mem.NewStore(mem.Dataset{})
		}
		legajosRepo = mem.NewLegajosRepo(store)
		movRepo = mem.NewMovimientosRepo(store)
	}

	return Services{
		Legajos:     legajos.NewService(legajosRepo, legajos.WithRequireFilter(!d.AllowEmptySearch)),
		Movimientos: movimientos.NewService(movRepo),
	}
}

// Runtime es lo que necesita un proceso para atender consultas.
type Runtime struct {
	DB       *sql.DB
	Services Services
	Layout   presentation.Layout
}

// Close cierra el pool si hay uno.
func (rt *Runtime) Close() error {
	if rt == nil || rt.DB == nil {
		return nil
	}
	return rt.DB.Close()
}

// Open conecta a la base (si hay DSN) y arma los services.
// Un error de conexión se devuelve tal cual (errs.KindConnection); el caller decide cortar.
func Open(cfg config.Config, log logger.Logger) (*Runtime, error) {
	layout := legajos.DefaultLayout()
	if cfg.ColumnsFile != "" {
		l, err := presentation.LoadLayout(cfg.ColumnsFile)
		if err != nil {
			return nil, err
		}
		layout = l
	}

	deps := Deps{
		QueryTimeout:     cfg.DBQueryTimeout,
		AllowEmptySearch: !cfg.SearchRequireFilter,
	}

	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN, pg.Options{MaxOpenConns: cfg.DBMaxOpenConns})
		if err != nil {
			return nil, err
		}
		deps.DB = db
		log.Info("connected to postgres", map[string]any{"max_open_conns": cfg.DBMaxOpenConns})
	} else {
		data := mem.Dataset{}
		if cfg.DevSeed {
			data = mem.DevDataset()
		}
		deps.Memory = mem.NewStore(data)
		log.Warn("DB_DSN not set, using in-memory repos", map[string]any{"dev_seed": cfg.DevSeed})
	}

	return &Runtime{
		DB:       deps.DB,
		Services: NewServices(deps),
		Layout:   layout,
	}, nil
}
