package api

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/basic"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/linesmerrill/la-crime-api/config"
	"github.com/linesmerrill/la-crime-api/logging"
	"github.com/linesmerrill/la-crime-api/models"
)

// DefaultTokenTTL is how long an issued bearer token stays valid
const DefaultTokenTTL = 24 * time.Hour

var errInvalidCredentials = errors.New("invalid credentials")

// Guard protects the write routes with basic auth and cached bearer tokens.
// A Guard built without credentials lets every request through.
type Guard struct {
	username      string
	passwordHash  string
	authenticator auth.Authenticator
	cache         store.Cache
}

// NewGuard sets up go-guardian with a basic strategy checked against the
// configured bcrypt hash and a bearer strategy backed by the token cache
func NewGuard(ctx context.Context, conf config.AuthConfig, tokenTTL time.Duration) *Guard {
	g := &Guard{
		username:     conf.Username,
		passwordHash: conf.PasswordHash,
	}
	if !g.Enabled() {
		zap.S().Warn("write routes are not protected: AUTH_USERNAME and AUTH_PASSWORD_HASH are unset")
		return g
	}
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}

	g.authenticator = auth.New()
	g.cache = store.NewFIFO(ctx, tokenTTL)
	basicStrategy := basic.New(g.ValidateUser, g.cache)
	tokenStrategy := bearer.New(bearer.NoOpAuthenticate, g.cache)

	g.authenticator.EnableStrategy(basic.StrategyKey, basicStrategy)
	g.authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)
	return g
}

// Enabled reports whether credentials were configured
func (g *Guard) Enabled() bool {
	return g.username != "" && g.passwordHash != ""
}

// Middleware rejects requests that carry neither valid basic credentials nor a known bearer token
func (g *Guard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.Enabled() {
			next.ServeHTTP(w, r)
			return
		}
		user, err := g.authenticator.Authenticate(r)
		if err != nil {
			logging.FromContext(r.Context()).Warnw("unauthorized",
				"url", r.URL.String())
			config.WriteError(w, http.StatusUnauthorized, models.MessageError{Message: "unauthorized"})
			return
		}
		logging.FromContext(r.Context()).Debugw("user authenticated", "user", user.UserName())
		next.ServeHTTP(w, r)
	})
}

// ValidateUser checks basic credentials against the configured username and bcrypt hash
func (g *Guard) ValidateUser(ctx context.Context, r *http.Request, username, password string) (auth.Info, error) {
	usernameHash := sha256.Sum256([]byte(username))
	expectedUsernameHash := sha256.Sum256([]byte(g.username))
	usernameMatch := subtle.ConstantTimeCompare(usernameHash[:], expectedUsernameHash[:]) == 1

	if err := bcrypt.CompareHashAndPassword([]byte(g.passwordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}
	if !usernameMatch {
		return nil, errInvalidCredentials
	}
	return auth.NewDefaultUser(username, "1", nil, nil), nil
}

// CreateToken issues a bearer token for a caller that passed basic auth
func (g *Guard) CreateToken(w http.ResponseWriter, r *http.Request) {
	if !g.Enabled() {
		config.ErrorStatus("authentication is disabled", http.StatusNotFound, w, nil)
		return
	}
	username, _, ok := r.BasicAuth()
	if !ok {
		config.ErrorStatus("basic auth failed", http.StatusUnauthorized, w, nil)
		return
	}

	token := uuid.New().String()
	authUser := auth.NewDefaultUser(username, "1", nil, nil)
	tokenStrategy := g.authenticator.Strategy(bearer.CachedStrategyKey)
	if err := auth.Append(tokenStrategy, token, authUser, r); err != nil {
		config.ErrorStatus("failed to store token", http.StatusInternalServerError, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// RevokeToken drops the bearer token of the request from the cache
func (g *Guard) RevokeToken(w http.ResponseWriter, r *http.Request) {
	if !g.Enabled() {
		config.ErrorStatus("authentication is disabled", http.StatusNotFound, w, nil)
		return
	}
	reqToken := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if reqToken == "" || reqToken == r.Header.Get("Authorization") {
		config.ErrorStatus("bearer token is required", http.StatusBadRequest, w, nil)
		return
	}

	tokenStrategy := g.authenticator.Strategy(bearer.CachedStrategyKey)
	if err := auth.Revoke(tokenStrategy, reqToken, r); err != nil {
		config.ErrorStatus("failed to revoke token", http.StatusInternalServerError, w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"revoked token": reqToken})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
