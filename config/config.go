package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	SecretKey      string   `env:"HMS_SECRET" envDefault:"dev-secret-change-me"`
	Port           string   `env:"PORT" envDefault:"8080"`
	DatabaseURL    string   `env:"DATABASE_URL"`
	DBHost         string   `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort         string   `env:"DB_PORT" envDefault:"3306"`
	DBUser         string   `env:"DB_USER" envDefault:"root"`
	DBPass         string   `env:"DB_PASS"`
	DBName         string   `env:"DB_NAME" envDefault:"hostel_db"`
	UploadDir      string   `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxUploadBytes int64    `env:"MAX_UPLOAD_BYTES" envDefault:"10485760"` // 10 MiB
	CorsOrigins    []string `env:"CORS_ORIGINS" envSeparator:","`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MySQLDSN resolves the connection string. DATABASE_URL may be a mysql://
// URL or a raw DSN; otherwise the DSN is assembled from the DB_* parts.
func (c Config) MySQLDSN() (string, error) {
	raw := strings.TrimSpace(c.DatabaseURL)
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName,
	), nil
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}
