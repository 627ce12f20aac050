package config

import (
    "log"
    "os"
    "strconv"
)

// Config collects every environment-driven setting the server needs at
// startup.  Database fields cover the MySQL account store only; the
// booking ledgers resolve their files relative to DataDir.
type Config struct {
    Env            string // dev / test / prod
    Port           string // HTTP listen port
    DBUser         string
    DBPass         string // optional, empty means no password
    DBHost         string
    DBPort         string
    DBName         string
    JWTSecret      string // HS256 signing key for access tokens
    AccessTTLMin   int    // access token lifetime, minutes
    RefreshTTLDays int    // refresh token lifetime, days
    BcryptCost     int
    DataDir        string // directory holding venue.txt and the other ledgers
    AdminCode      string // shared code required to self-register an ADMIN
}

// Load reads the configuration from the environment.  Every field except
// DBPass is required; a missing variable aborts startup, since a server
// without its data directory or signing key cannot limp along.
func Load() Config {
    return Config{
        Env:            must("APP_ENV"),
        Port:           must("APP_PORT"),
        DBUser:         must("DB_USER"),
        DBPass:         os.Getenv("DB_PASS"),
        DBHost:         must("DB_HOST"),
        DBPort:         must("DB_PORT"),
        DBName:         must("DB_NAME"),
        JWTSecret:      must("JWT_SECRET"),
        AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),
        RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"),
        BcryptCost:     mustInt("BCRYPT_COST"),
        DataDir:        must("DATA_DIR"),
        AdminCode:      must("ADMIN_SIGNUP_CODE"),
    }
}

func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}
