package cfg

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type ConfigDatabase struct {
	DbConn string `env:"DB_CONNECTION_STRING" env-default:"mongodb://localhost:27017"`
}

type HTTPConfig struct {
	Addr string `env:"HTTP_ADDR" env-default:":4444"`
}

type ListCacheConfig struct {
	// TTL bounds how stale a cached list page may be.
	TTL time.Duration `env:"LIST_CACHE_TTL" env-default:"10s"`
	// MaxEntries caps the cache when pagination parameters are
	// caller-controlled; 0 disables the bound.
	MaxEntries int `env:"LIST_CACHE_MAX_ENTRIES" env-default:"1024"`
}

type Config struct {
	ConfigDatabase ConfigDatabase
	HTTP           HTTPConfig
	ListCache      ListCacheConfig
}

var cfg Config

func Get() Config {
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic(err)
	}

	return cfg
}

func SetConfig(c Config) {
	cfg = c
}
