package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	DBUrl      string
	JWTSecret  string
	ServerPort string

	// CORSOrigins is empty when any origin may call the API.
	CORSOrigins []string

	RedisURL string

	S3Bucket          string
	S3Region          string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3PublicBaseURL   string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	GeocoderURL       string
	GeocoderUserAgent string

	RecountSchedule string
}

// Load reads .env.local then .env (both optional) and builds the config from
// the process environment.
func Load() *Config {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	return &Config{
		Env:        getEnv("APP_ENV", "development"),
		DBUrl:      getEnv("DATABASE_URL", os.Getenv("SUPABASE_DB_URL")),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		CORSOrigins: splitList(os.Getenv("CORS_ORIGINS")),

		RedisURL: os.Getenv("REDIS_URL"),

		S3Bucket:          os.Getenv("S3_BUCKET"),
		S3Region:          getEnv("S3_REGION", "ap-southeast-2"),
		S3Endpoint:        os.Getenv("S3_ENDPOINT"),
		S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		S3PublicBaseURL:   os.Getenv("S3_PUBLIC_BASE_URL"),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),

		GeocoderURL:       getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org/search"),
		GeocoderUserAgent: getEnv("GEOCODER_USER_AGENT", "NailNav Directory App (contact@nailnav.com)"),

		RecountSchedule: getEnv("RECOUNT_SCHEDULE", "@every 1h"),
	}
}

// Validate reports configuration that makes every binary unusable.
func (c *Config) Validate() error {
	if c.DBUrl == "" {
		return errors.New("DATABASE_URL is not set (check .env.local)")
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) StorageEnabled() bool {
	return c.S3Bucket != ""
}

func (c *Config) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}
