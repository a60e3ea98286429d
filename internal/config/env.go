package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devJWTSecret = "transportpro-dev-secret-change-me"

type Env struct {
	AppAddr     string
	GinMode     string
	JWTSecret   string
	JWTTTL      time.Duration
	CORSOrigins []string
	SeedDSN     string
}

// LoadEnv reads settings from the process environment, after loading an
// optional .env file from the working directory.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[CONFIG] cannot read .env: %v", err)
	}

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		log.Println("[CONFIG] JWT_SECRET empty, using development secret")
		secret = devJWTSecret
	}

	ttl := 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("JWT_TTL_HOURS")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Hour
		} else {
			log.Printf("[CONFIG] invalid JWT_TTL_HOURS %q, using 24", raw)
		}
	}

	return Env{
		AppAddr:     appAddr,
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		JWTSecret:   secret,
		JWTTTL:      ttl,
		CORSOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		SeedDSN:     strings.TrimSpace(os.Getenv("SEED_DSN")),
	}
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
