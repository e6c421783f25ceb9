package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the process-wide configuration. It is loaded once at startup
// and never mutated afterwards; every component that signs or verifies
// tokens receives it by reference.
type Config struct {
	Env  string `envconfig:"ENV" default:"development"`
	Port string `envconfig:"PORT" default:"8080"`

	DBURI  string `envconfig:"DB_URI" required:"true"`
	DBName string `envconfig:"DB_NAME" required:"true"`

	// Access and refresh tokens are signed with separate secrets, so a token
	// of one kind can never verify where the other is expected.
	AccessSecret  string `envconfig:"ACCESS_SECRET" required:"true"`
	RefreshSecret string `envconfig:"REFRESH_SECRET" required:"true"`

	JWTIssuer       string        `envconfig:"JWT_ISSUER" default:"messages-backend"`
	JWTAudience     string        `envconfig:"JWT_AUDIENCE" default:"messages-backend"`
	AccessTokenTTL  time.Duration `envconfig:"ACCESS_TOKEN_TTL" default:"15m"`
	RefreshTokenTTL time.Duration `envconfig:"REFRESH_TOKEN_TTL" default:"72h"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost"`

	UploadDir string `envconfig:"UPLOAD_DIR" default:"pictures"`

	SSL      bool   `envconfig:"SSL" default:"false"`
	CertFile string `envconfig:"CERT_FILE" default:"./cert/myCA.cer"`
	KeyFile  string `envconfig:"KEY_FILE" default:"./cert/myCA.key"`
}

// AllowedOrigins splits the CORS origin list on commas.
func (c *Config) AllowedOrigins() []string {
	origins := strings.Split(strings.ReplaceAll(c.CORSAllowedOrigins, " ", ""), ",")
	return origins
}

// Load reads the optional .env file and then processes environment
// variables into a Config.
func Load(envFilePath string) (*Config, error) {
	if _, err := os.Stat(envFilePath); err == nil {
		if err := godotenv.Load(envFilePath); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", envFilePath, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("error processing env vars: %w", err)
	}

	return &cfg, nil
}
