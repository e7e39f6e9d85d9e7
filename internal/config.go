package internal

import (
	"flag"
	"fmt"
	"os"
	"time"
)

var c *config

const (
	RunAddress      = "RUN_ADDRESS"
	DatabaseURI     = "DATABASE_URI"
	BackendAddress  = "BACKEND_ADDRESS"
	RedisAddress    = "REDIS_ADDRESS"
	JWTSecret       = "JWT_SECRET"
	CheckoutTimeout = "CHECKOUT_TIMEOUT"
)

const (
	defaultRunAddress      = "localhost:8080"
	defaultBackendAddress  = "http://localhost:8000"
	defaultRedisAddress    = "localhost:6379"
	defaultJWTSecret       = "dev-only-secret"
	defaultCheckoutTimeout = "30s"
)

const (
	host     = "localhost"
	port     = 5432
	user     = "postgres"
	password = "12345"
)

type config struct {
	RunAddress      string
	DatabaseURI     string
	BackendAddress  string
	RedisAddress    string
	JWTSecret       string
	CheckoutTimeout time.Duration
}

func NewConfig() *config {
	c = new(config)

	defaultConn := fmt.Sprintf("host=%s port=%d user=%s "+
		"password=%s sslmode=disable", // database=storefront
		host, port, user, password)

	var timeout string
	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", setEnvOrDefault(DatabaseURI, defaultConn), "postgres connection path")
	flag.StringVar(&c.BackendAddress, "b", setEnvOrDefault(BackendAddress, defaultBackendAddress), "shop backend address")
	flag.StringVar(&c.RedisAddress, "r", setEnvOrDefault(RedisAddress, defaultRedisAddress), "redis address for sessions")
	flag.StringVar(&c.JWTSecret, "s", setEnvOrDefault(JWTSecret, defaultJWTSecret), "secret for session cookies")
	flag.StringVar(&timeout, "t", setEnvOrDefault(CheckoutTimeout, defaultCheckoutTimeout), "per-call checkout timeout")

	flag.Parse()

	d, err := time.ParseDuration(timeout)
	if err != nil {
		d, _ = time.ParseDuration(defaultCheckoutTimeout)
	}
	c.CheckoutTimeout = d

	return c
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}
