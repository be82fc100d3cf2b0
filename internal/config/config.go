package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DataSourceCSV      = "csv"
	DataSourcePostgres = "postgres"
	DataSourceSQLite   = "sqlite"
)

type Config struct {
	App      AppConfig
	Data     DataConfig
	Database DatabaseConfig
	Match    MatchConfig
	Redis    RedisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// DataConfig selects where the role dataset is read from. CSV locations are
// comma separated paths, globs or http(s) URLs.
type DataConfig struct {
	Source string

	SkillsCSV   []string
	PostingsCSV []string
	SummaryCSV  []string

	SkillsTable   string
	PostingsTable string
	SummaryTable  string

	SQLitePath string

	FetchTimeout time.Duration
	LoadTimeout  time.Duration
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type MatchConfig struct {
	Threshold float64
}

// RedisConfig enables the response cache when Host is set.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variable")
)

type env struct {
	missing []string
	invalid []error
}

func (e *env) req(key string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		e.missing = append(e.missing, key)
	}
	return v
}

func (e *env) opt(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func (e *env) optDefault(key, def string) string {
	if v := e.opt(key); v != "" {
		return v
	}
	return def
}

func (e *env) list(key string, required bool) []string {
	raw := e.opt(key)
	if raw == "" {
		if required {
			e.missing = append(e.missing, key)
		}
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (e *env) duration(key string, def time.Duration) time.Duration {
	raw := e.opt(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		e.invalid = append(e.invalid, fmt.Errorf("%w: %s=%q", errInvalidEnv, key, raw))
		return def
	}
	return d
}

// seconds accepts a bare integer number of seconds or a Go duration.
func (e *env) seconds(key string, def time.Duration) time.Duration {
	raw := e.opt(key)
	if raw == "" {
		return def
	}
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return e.duration(key, def)
}

func (e *env) integer(key string, def int) int {
	raw := e.opt(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		e.invalid = append(e.invalid, fmt.Errorf("%w: %s=%q", errInvalidEnv, key, raw))
		return def
	}
	return n
}

func (e *env) err() error {
	if len(e.missing) > 0 {
		return fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(e.missing, ", "))
	}
	if len(e.invalid) > 0 {
		return errors.Join(e.invalid...)
	}
	return nil
}

func Load() (Config, error) {
	e := &env{}
	cfg := Config{}

	cfg.App = AppConfig{
		AppName:     e.req("APP_NAME"),
		Environment: e.req("APP_ENV"),
		HTTPPort:    e.req("HTTP_PORT"),
	}

	cfg.Data = loadData(e)
	cfg.Database = loadDatabase(e)
	cfg.Match = loadMatch(e)
	cfg.Redis = loadRedis(e)

	if err := e.err(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadDatabase reads only the DB_* variables, for tools that need a
// connection without the rest of the service configuration.
func LoadDatabase() (DatabaseConfig, error) {
	e := &env{}
	cfg := loadDatabase(e)
	if err := e.err(); err != nil {
		return DatabaseConfig{}, err
	}
	return cfg, nil
}

func loadData(e *env) DataConfig {
	source := strings.ToLower(e.optDefault("DATA_SOURCE", DataSourceCSV))

	cfg := DataConfig{
		Source:        source,
		SkillsTable:   e.optDefault("SKILLS_TABLE", "job_skills"),
		PostingsTable: e.optDefault("POSTINGS_TABLE", "linkedin_job_postings"),
		SummaryTable:  e.opt("SUMMARY_TABLE"),
		FetchTimeout:  e.duration("DATA_FETCH_TIMEOUT", 60*time.Second),
		LoadTimeout:   e.duration("DATA_LOAD_TIMEOUT", 5*time.Minute),
	}

	switch source {
	case DataSourceCSV:
		cfg.SkillsCSV = e.list("SKILLS_CSV", true)
		cfg.PostingsCSV = e.list("POSTINGS_CSV", true)
		cfg.SummaryCSV = e.list("SUMMARY_CSV", false)
	case DataSourceSQLite:
		cfg.SQLitePath = e.req("SQLITE_PATH")
	case DataSourcePostgres:
	default:
		e.invalid = append(e.invalid, fmt.Errorf("%w: DATA_SOURCE=%q (want csv, postgres or sqlite)", errInvalidEnv, source))
	}

	return cfg
}

func loadDatabase(e *env) DatabaseConfig {
	return DatabaseConfig{
		DBHost:     e.opt("DB_HOST"),
		DBPort:     e.opt("DB_PORT"),
		DBName:     e.opt("DB_NAME"),
		DBUser:     e.opt("DB_USER"),
		DBPassword: e.opt("DB_PASSWORD"),
		DBSSLMode:  e.opt("DB_SSL_MODE"),

		ConnectTimeout:        e.duration("DB_CONNECT_TIMEOUT", 0),
		PoolMaxConns:          int32(e.integer("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(e.integer("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   e.duration("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   e.duration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: e.duration("DB_POOL_HEALTH_CHECK_PERIOD", 0),
	}
}

func loadMatch(e *env) MatchConfig {
	raw := e.opt("MATCH_THRESHOLD")
	if raw == "" {
		return MatchConfig{Threshold: 0.5}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 || v > 1 {
		e.invalid = append(e.invalid, fmt.Errorf("%w: MATCH_THRESHOLD=%q (want a number in (0,1])", errInvalidEnv, raw))
		return MatchConfig{Threshold: 0.5}
	}
	return MatchConfig{Threshold: v}
}

func loadRedis(e *env) RedisConfig {
	return RedisConfig{
		Host:     e.opt("REDIS_HOST"),
		Port:     e.optDefault("REDIS_PORT", "6379"),
		Password: e.opt("REDIS_PASSWORD"),
		DB:       e.integer("REDIS_DB", 0),
		TTL:      e.seconds("REDIS_TTL", 600*time.Second),
	}
}
