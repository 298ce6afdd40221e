package config

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/linesmerrill/la-crime-api/models"
)

// Config holds the project config values
type Config struct {
	URL               string     `yaml:"db_uri"`
	DatabaseName      string     `yaml:"db_name"`
	BaseURL           string     `yaml:"base_url"`
	Port              string     `yaml:"port"`
	Env               string     `yaml:"env"`
	LogLevel          string     `yaml:"log_level"`
	QueryTimeoutSec   int        `yaml:"query_timeout_sec"`
	RequestTimeoutSec int        `yaml:"request_timeout_sec"`
	DigestSchedule    string     `yaml:"digest_schedule"`
	Auth              AuthConfig `yaml:"auth"`

	// fileErr is a CONFIG_FILE load failure, reported by Validate
	fileErr error
}

// AuthConfig holds the credentials accepted on the write routes
type AuthConfig struct {
	Username     string `yaml:"username"`
	PasswordHash string `yaml:"password_hash"`
}

// New sets up all config related services
func New() *Config {
	conf := fromEnv()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		conf.fileErr = conf.overlayFile(path)
	}
	conf.ApplyDefaults()

	//setup zap logger and replace default logger
	logger, err := setLogger(conf.Env, conf.LogLevel)
	if err != nil {
		logger = zap.NewExample()
	}
	_ = zap.ReplaceGlobals(logger)

	return conf
}

func fromEnv() *Config {
	return &Config{
		URL:               os.Getenv("DB_URI"),
		DatabaseName:      os.Getenv("DB_NAME"),
		BaseURL:           os.Getenv("BASE_URL"),
		Port:              os.Getenv("PORT"),
		Env:               os.Getenv("ENV"),
		LogLevel:          os.Getenv("LOG_LEVEL"),
		QueryTimeoutSec:   atoi(os.Getenv("QUERY_TIMEOUT_SEC")),
		RequestTimeoutSec: atoi(os.Getenv("REQUEST_TIMEOUT_SEC")),
		DigestSchedule:    os.Getenv("DIGEST_SCHEDULE"),
		Auth: AuthConfig{
			Username:     os.Getenv("AUTH_USERNAME"),
			PasswordHash: os.Getenv("AUTH_PASSWORD_HASH"),
		},
	}
}

// overlayFile reads a YAML file and lets any value it sets win over the environment
func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	data = expandEnvVars(data)

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	c.merge(file)
	return nil
}

func (c *Config) merge(o Config) {
	setString(&c.URL, o.URL)
	setString(&c.DatabaseName, o.DatabaseName)
	setString(&c.BaseURL, o.BaseURL)
	setString(&c.Port, o.Port)
	setString(&c.Env, o.Env)
	setString(&c.LogLevel, o.LogLevel)
	setString(&c.DigestSchedule, o.DigestSchedule)
	setString(&c.Auth.Username, o.Auth.Username)
	setString(&c.Auth.PasswordHash, o.Auth.PasswordHash)
	if o.QueryTimeoutSec > 0 {
		c.QueryTimeoutSec = o.QueryTimeoutSec
	}
	if o.RequestTimeoutSec > 0 {
		c.RequestTimeoutSec = o.RequestTimeoutSec
	}
}

// ApplyDefaults fills empty fields with default values
func (c *Config) ApplyDefaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.DatabaseName == "" {
		c.DatabaseName = "la_crime_db"
	}
	if c.Env == "" {
		c.Env = "local"
	}
	if c.QueryTimeoutSec <= 0 {
		c.QueryTimeoutSec = 10
	}
	if c.RequestTimeoutSec <= 0 {
		c.RequestTimeoutSec = 30
	}
	if c.DigestSchedule == "" {
		c.DigestSchedule = "15 0 * * *"
	}
}

// Validate checks the configuration for correctness
func (c *Config) Validate() error {
	if c.fileErr != nil {
		return c.fileErr
	}
	if c.URL == "" {
		return fmt.Errorf("DB_URI is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	if (c.Auth.Username == "") != (c.Auth.PasswordHash == "") {
		return fmt.Errorf("AUTH_USERNAME and AUTH_PASSWORD_HASH must be set together")
	}
	return nil
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().Errorw(message, "error", err, "status", httpStatusCode)
	WriteError(w, httpStatusCode, models.MessageError{Message: message, Error: errString(err)})
}

// WriteError writes an ErrorMessageResponse with the given status code
func WriteError(w http.ResponseWriter, httpStatusCode int, msg models.MessageError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	b, _ := json.Marshal(models.ErrorMessageResponse{Response: msg})
	_, _ = w.Write(b)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1])
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
