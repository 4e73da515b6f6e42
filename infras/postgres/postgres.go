package postgres

//nolint:revive
import (
	"errors"
	"net"
	"net/url"
	"time"

	"resort/config"
	"resort/shared/constant"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	defaultMaxOpenConns = 10
	defaultMaxIdleConns = 10
	connMaxIdleTime     = 5 * time.Minute
)

// Connection splits catalog reads onto a replica. Bookings read from Write
// whenever they must see their own writes.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read:  connect("read", DSN(cfg, pg.Read, nil), cfg),
		Write: connect("write", DSN(cfg, pg.Write, nil), cfg),
	}
}

// DSN builds a postgres URL for node. Extra params are appended to the
// query string, e.g. the migrate table name.
func DSN(cfg *config.Config, node config.PostgresNode, params url.Values) string {
	query := url.Values{}
	if node.SSLMode != constant.Empty {
		query.Set("sslmode", node.SSLMode)
	}
	if node.Timezone != constant.Empty {
		query.Set("timezone", node.Timezone)
	}
	for key, values := range params {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(node.Username, node.Password),
		Host:     net.JoinHostPort(node.Host, node.Port),
		Path:     "/" + cfg.DB.Postgres.Prefix + node.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func connect(name, dsn string, cfg *config.Config) *sqlx.DB {
	pg := cfg.DB.Postgres
	attempts := max(pg.MaxRetry, 1)

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxOpenConns(withDefault(pg.MaxOpenConns, defaultMaxOpenConns))
			db.SetMaxIdleConns(withDefault(pg.MaxIdleConns, defaultMaxIdleConns))
			db.SetConnMaxIdleTime(connMaxIdleTime)

			log.Info().Str("name", name).Int("attempt", attempt).Msg("Connected to database")

			return db
		}

		log.Error().Err(err).Str("name", name).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	log.Fatal().Str("name", name).Int("attempts", attempts).Msg("Giving up connecting to database")

	return nil
}

func withDefault(value, fallback int) int {
	if value > 0 {
		return value
	}

	return fallback
}

// Close releases both pools. Read and Write may share one pool.
func (c *Connection) Close() error {
	var errs []error
	if c.Write != nil {
		errs = append(errs, c.Write.Close())
	}
	if c.Read != nil && c.Read != c.Write {
		errs = append(errs, c.Read.Close())
	}

	return errors.Join(errs...)
}
