// Package identity owns the anonymous user token. No accounts exist: the
// token is generated once per installation and reused for its lifetime.
package identity

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	tokenPrefix = "user_"
	tokenFile   = "user_id"
	suffixLen   = 8
)

// Session supplies a stable anonymous user id. The token has the form
// user_<unix-ms>_<random-suffix> and is persisted under the state directory
// so it survives restarts. If storage is unavailable the session degrades to
// an ephemeral in-memory token for the run.
type Session struct {
	stateDir string
	logger   *zap.Logger

	once  sync.Once
	token string
}

// NewSession creates a session storing its token under stateDir. An empty
// stateDir falls back to the user config directory.
func NewSession(stateDir string, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{stateDir: stateDir, logger: logger}
}

// UserID returns the installation's user token, generating and persisting
// it on first use. Repeated calls return the identical token.
func (s *Session) UserID() string {
	s.once.Do(s.load)
	return s.token
}

func (s *Session) load() {
	dir := s.stateDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			s.logger.Warn("state_dir_unavailable", zap.Error(err))
			s.token = newToken()
			return
		}
		dir = filepath.Join(base, "foodbridge")
	}

	path := filepath.Join(dir, tokenFile)
	if data, err := os.ReadFile(path); err == nil {
		if token := strings.TrimSpace(string(data)); token != "" {
			s.token = token
			return
		}
	}

	s.token = newToken()
	if err := os.MkdirAll(dir, 0o700); err != nil {
		s.logger.Warn("identity_persist_failed", zap.Error(err))
		return
	}
	if err := os.WriteFile(path, []byte(s.token+"\n"), 0o600); err != nil {
		// Ephemeral token for this run only.
		s.logger.Warn("identity_persist_failed", zap.Error(err))
	}
}

func newToken() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:suffixLen]
	return fmt.Sprintf("%s%d_%s", tokenPrefix, time.Now().UnixMilli(), suffix)
}
