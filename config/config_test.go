package config

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/linesmerrill/la-crime-api/models"
)

func TestNew(t *testing.T) {
	t.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("DB_NAME", "test")
	conf := New()

	assert.Equal(t, "mongodb://127.0.0.1:27017", conf.URL)
	assert.Equal(t, "test", conf.DatabaseName)
	assert.Equal(t, "8080", conf.Port)
	assert.Equal(t, 10, conf.QueryTimeoutSec)
}

func TestNewWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
db_uri: ${TEST_MONGO_URI:-mongodb://localhost:27017}
db_name: la_crime_test
query_timeout_sec: 3
auth:
  username: analyst
`), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("DB_NAME", "from_env")
	t.Setenv("PORT", "9090")

	conf := New()

	assert.Equal(t, "mongodb://localhost:27017", conf.URL)
	assert.Equal(t, "la_crime_test", conf.DatabaseName)
	assert.Equal(t, "9090", conf.Port)
	assert.Equal(t, 3, conf.QueryTimeoutSec)
	assert.Equal(t, 30, conf.RequestTimeoutSec)
	assert.Equal(t, "analyst", conf.Auth.Username)
	assert.EqualError(t, conf.Validate(), "AUTH_USERNAME and AUTH_PASSWORD_HASH must be set together")
}

func TestNewWithBadConfigFile(t *testing.T) {
	malformed := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(malformed, []byte("db_uri: [unterminated"), 0o600))

	for name, path := range map[string]string{
		"missing":   filepath.Join(t.TempDir(), "nope.yaml"),
		"malformed": malformed,
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv("CONFIG_FILE", path)
			t.Setenv("DB_URI", "mongodb://127.0.0.1:27017")

			conf := New()

			assert.Error(t, conf.Validate())
		})
	}
}

func TestOverlayFileMissing(t *testing.T) {
	c := &Config{}
	err := c.overlayFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		conf    Config
		wantErr bool
	}{
		{name: "valid", conf: Config{URL: "mongodb://localhost", Port: "8080"}},
		{name: "missing uri", conf: Config{Port: "8080"}, wantErr: true},
		{name: "port not numeric", conf: Config{URL: "mongodb://localhost", Port: "http"}, wantErr: true},
		{
			name:    "username without hash",
			conf:    Config{URL: "mongodb://localhost", Port: "8080", Auth: AuthConfig{Username: "analyst"}},
			wantErr: true,
		},
		{
			name: "username and hash",
			conf: Config{URL: "mongodb://localhost", Port: "8080", Auth: AuthConfig{Username: "analyst", PasswordHash: "$2a$10$x"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.conf.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	ErrorStatus("error it borked", http.StatusBadRequest, rr, errors.New("bad request"))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp models.ErrorMessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, models.MessageError{Message: "error it borked", Error: "bad request"}, resp.Response)
}

func TestSetLoggerSetsDevelopmentLogger(t *testing.T) {
	l, err := setLogger("development", "")
	assert.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestSetLoggerSetsProductionLogger(t *testing.T) {
	l, err := setLogger("production", "")
	assert.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestSetLoggerLevelOverride(t *testing.T) {
	l, err := setLogger("local", "warn")
	assert.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestSetLoggerRejectsUnknownInput(t *testing.T) {
	_, err := setLogger("staging", "")
	assert.Error(t, err)

	_, err = setLogger("local", "loud")
	assert.Error(t, err)
}
