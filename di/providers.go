package di

import (
	"resort/infras/kafka"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/transport/http"

	goRedis "github.com/redis/go-redis/v9"
)

// provideClosers lists the clients released on shutdown, producers first
// so pending booking events are flushed before the stores go away. Spans
// are flushed last.
func provideClosers(k kafka.Client, r *goRedis.Client, db *postgres.Connection, o otel.Otel) http.Closers {
	return http.Closers{k, r, db, otel.Closer(o)}
}
