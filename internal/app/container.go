package app

import (
	"context"
	"fmt"
	"log"

	"skill-roadmap/internal/config"
	"skill-roadmap/internal/database"
	dbpostgres "skill-roadmap/internal/database/postgres"
	dbsqlite "skill-roadmap/internal/database/sqlite"
	"skill-roadmap/internal/dataset"
	"skill-roadmap/internal/domain/matching"
	"skill-roadmap/internal/domain/role"
	"skill-roadmap/internal/infrastructure/cache"
	"skill-roadmap/internal/usecase"
)

type Container struct {
	Config  config.Config
	Logger  *log.Logger
	Catalog *role.Catalog
	Matcher *matching.RoleMatcher
	Cache   *cache.Redis

	Recommendation *usecase.RecommendationUsecase
}

// NewContainer loads the role catalog and wires the services around it. The
// catalog is read once; a load failure returns an error and nothing is served.
func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	loadCtx := ctx
	if cfg.Data.LoadTimeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(ctx, cfg.Data.LoadTimeout)
		defer cancel()
	}

	catalog, err := LoadCatalog(loadCtx, cfg, logger)
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, Logger: logger, Catalog: catalog}
	c.Matcher = matching.NewRoleMatcher(catalog, nil, cfg.Match.Threshold)

	var recCache usecase.RecommendationCache
	if cfg.Redis.Enabled() {
		c.Cache = cache.NewRedis(ctx, cfg.Redis, logger)
		recCache = c.Cache
	}

	c.Recommendation = usecase.NewRecommendationUsecase(c.Matcher, catalog.Fingerprint(), recCache, cfg.Redis.TTL, logger)
	return c, nil
}

// LoadCatalog reads the dataset from the configured source. Database
// connections are closed once the tables are in memory.
func LoadCatalog(ctx context.Context, cfg config.Config, logger *log.Logger) (*role.Catalog, error) {
	source, closeSource, err := openSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := closeSource(); err != nil {
			logger.Printf("[Dataset] close source error: %v", err)
		}
	}()

	return dataset.NewLoader(source, specsFor(cfg.Data), logger).Load(ctx)
}

func openSource(ctx context.Context, cfg config.Config) (dataset.Source, func() error, error) {
	noop := func() error { return nil }

	var (
		db  database.DB
		err error
	)
	switch cfg.Data.Source {
	case config.DataSourceCSV, "":
		return dataset.NewCSVSource(dataset.NewHTTPFetcher(cfg.Data.FetchTimeout)), noop, nil
	case config.DataSourcePostgres:
		db, err = dbpostgres.Connect(ctx, cfg.Database)
	case config.DataSourceSQLite:
		db, err = dbsqlite.Open(ctx, cfg.Data.SQLitePath)
	default:
		return nil, nil, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: connect %s: %w", dataset.ErrLoad, cfg.Data.Source, err)
	}
	return dataset.NewSQLSource(db), db.Close, nil
}

func specsFor(cfg config.DataConfig) dataset.Specs {
	if cfg.Source == config.DataSourceCSV || cfg.Source == "" {
		specs := dataset.Specs{
			Skills:   dataset.TableSpec{Name: "skills", Locations: cfg.SkillsCSV},
			Postings: dataset.TableSpec{Name: "postings", Locations: cfg.PostingsCSV},
		}
		if len(cfg.SummaryCSV) > 0 {
			specs.Summary = dataset.TableSpec{Name: "summary", Locations: cfg.SummaryCSV}
		}
		return specs
	}

	specs := dataset.Specs{
		Skills:   dataset.TableSpec{Name: cfg.SkillsTable},
		Postings: dataset.TableSpec{Name: cfg.PostingsTable},
	}
	if cfg.SummaryTable != "" {
		specs.Summary = dataset.TableSpec{Name: cfg.SummaryTable}
	}
	return specs
}

func (c *Container) Close() error {
	if c == nil || c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
