package config

import (
    "context"
    "crypto/tls"
    "strings"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis for rate limiting and response caching.
// Address resolution order: REDIS_HOST+REDIS_PORT, then REDIS_ADDR, then
// localhost:6379.  REDIS_PASSWORD, REDIS_DB and REDIS_TLS are honoured when
// set.  Redis is optional infrastructure for this service: if the ping
// fails the function returns nil and the middleware constructors treat a
// nil client as "disabled", so bookings keep working without it.
func NewRedisClient() *redis.Client {
    addr := envStr("REDIS_ADDR", "localhost:6379")
    if host, port := envStr("REDIS_HOST", ""), envStr("REDIS_PORT", ""); host != "" && port != "" {
        addr = host + ":" + port
    }

    var tlsConf *tls.Config
    if v := envStr("REDIS_TLS", ""); strings.EqualFold(v, "true") || v == "1" {
        tlsConf = &tls.Config{InsecureSkipVerify: true}
    }

    client := redis.NewClient(&redis.Options{
        Addr:      addr,
        Password:  envStr("REDIS_PASSWORD", ""),
        DB:        envInt("REDIS_DB", 0),
        TLSConfig: tlsConf,
    })

    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        return nil
    }
    return client
}
