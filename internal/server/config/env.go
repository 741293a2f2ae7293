package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays configuration from environment variables. Only variables
// that are set override earlier layers.
//
// Recognized variables:
//
//	ADDRESS         HTTP bind address
//	DATABASE_DSN    PostgreSQL DSN
//	SECRET_KEY      JWT HMAC secret
//	TOKEN_TTL       access token validity (Go duration, e.g. "4h")
//	ADMIN_EMAIL     bootstrap administrator email
//	ADMIN_PASSWORD  bootstrap administrator password
//	BCRYPT_COST     bcrypt work factor
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("ADMIN_EMAIL"); ok {
		config.AdminEmail = v
	}
	if v, ok := os.LookupEnv("ADMIN_PASSWORD"); ok {
		config.AdminPassword = v
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BCryptCost = n
		}
	}
}
