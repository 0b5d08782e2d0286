package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Database Database `toml:"database" yaml:"database"`
	Storage  Storage  `toml:"storage" yaml:"storage"`
	App      App      `toml:"app" yaml:"app"`
	Admin    Admin    `toml:"admin" yaml:"admin"`
	Auth     Auth     `toml:"auth" yaml:"auth"`
	Live     Live     `toml:"live" yaml:"live"`
}

type Database struct {
	URL             string `toml:"url" yaml:"url"`
	PoolSize        int    `toml:"poolSize" yaml:"poolSize"`
	MaxConnLifetime int    `toml:"maxConnLifetime" yaml:"maxConnLifetime"` // seconds
	LogQueries      bool   `toml:"logQueries" yaml:"logQueries"`
}

type Storage struct {
	Driver string `toml:"driver" yaml:"driver"`
	Path   string `toml:"path" yaml:"path"`
}

type App struct {
	Host string `toml:"host" yaml:"host"`
	Port int    `toml:"port" yaml:"port"`
}

// Admin holds the deploy-time allow-list of admin emails.
type Admin struct {
	Emails []string `toml:"emails" yaml:"emails"`
}

// Auth describes the authenticating proxy in front of the service.
type Auth struct {
	EmailHeader   string `toml:"emailHeader" yaml:"emailHeader"`
	SubjectHeader string `toml:"subjectHeader" yaml:"subjectHeader"`
	SignInURL     string `toml:"signInURL" yaml:"signInURL"`
	SignOutURL    string `toml:"signOutURL" yaml:"signOutURL"`
}

type Live struct {
	PingInterval int `toml:"pingInterval" yaml:"pingInterval"` // seconds
}

// Load decodes the file at path (TOML, or YAML for .yaml/.yml), fills defaults and validates.
func Load(path string) (*Config, error) {
	var cfg Config

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("decode yaml config: %w", err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("decode toml config: %w", err)
		}
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverPostgres
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "news.db"
	}
	if c.Database.PoolSize == 0 {
		c.Database.PoolSize = 5
	}
	if c.Database.MaxConnLifetime == 0 {
		c.Database.MaxConnLifetime = 300
	}
	if c.App.Host == "" {
		c.App.Host = "0.0.0.0"
	}
	if c.App.Port == 0 {
		c.App.Port = 3000
	}
	if c.Auth.EmailHeader == "" {
		c.Auth.EmailHeader = "X-Forwarded-Email"
	}
	if c.Auth.SubjectHeader == "" {
		c.Auth.SubjectHeader = "X-Forwarded-User"
	}
	if c.Auth.SignInURL == "" {
		c.Auth.SignInURL = "/oauth2/start"
	}
	if c.Auth.SignOutURL == "" {
		c.Auth.SignOutURL = "/oauth2/sign_out"
	}
	if c.Live.PingInterval == 0 {
		c.Live.PingInterval = 30
	}
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Database.URL == "" {
			return errors.New("database.url is required for the postgres driver")
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unknown storage.driver %q", c.Storage.Driver)
	}

	if c.App.Port < 0 || c.App.Port > 65535 {
		return fmt.Errorf("invalid app.port %d", c.App.Port)
	}
	if c.Live.PingInterval < 0 {
		return fmt.Errorf("invalid live.pingInterval %d", c.Live.PingInterval)
	}

	return nil
}

// PGOptions builds go-pg options from database.url and the pool settings.
func (c *Config) PGOptions() (*pg.Options, error) {
	opt, err := pg.ParseURL(c.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	opt.MaxRetries = 3
	opt.PoolSize = c.Database.PoolSize
	opt.MaxConnAge = time.Duration(c.Database.MaxConnLifetime) * time.Second

	return opt, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func (c *Config) PingInterval() time.Duration {
	return time.Duration(c.Live.PingInterval) * time.Second
}
