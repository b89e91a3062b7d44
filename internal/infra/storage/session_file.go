package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"app/internal/domain/model"

	"go.uber.org/zap"
)

// SessionStoreのファイル実装。
// トークンとユーザーミラーは別ファイル（カートとは独立）。
type SessionFileStore struct {
	tokenPath string
	userPath  string
	log       *zap.Logger
}

// DI
func NewSessionFileStore(dir string, log *zap.Logger) *SessionFileStore {
	return &SessionFileStore{
		tokenPath: filepath.Join(dir, "access_token"),
		userPath:  filepath.Join(dir, "user.json"),
		log:       log,
	}
}

func (s *SessionFileStore) Token() string {
	data, err := os.ReadFile(s.tokenPath)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// ユーザーミラーが壊れていたらセッションごと捨てて未ログイン扱い
func (s *SessionFileStore) User() (model.User, bool) {
	data, err := os.ReadFile(s.userPath)
	if err != nil {
		return model.User{}, false
	}

	var u model.User
	if err := json.Unmarshal(data, &u); err != nil {
		s.log.Warn("user file is corrupt, clearing session", zap.String("path", s.userPath), zap.Error(err))
		s.Clear()
		return model.User{}, false
	}
	return u, true
}

// ベストエフォート保存。失敗はログのみ。
func (s *SessionFileStore) SaveSession(token string, user model.User) {
	if err := os.MkdirAll(filepath.Dir(s.tokenPath), 0o755); err != nil {
		s.log.Warn("session dir create failed", zap.Error(err))
		return
	}

	if err := os.WriteFile(s.tokenPath, []byte(token), 0o600); err != nil {
		s.log.Warn("token save failed", zap.Error(err))
	}

	data, err := json.Marshal(user)
	if err != nil {
		s.log.Warn("user marshal failed", zap.Error(err))
		return
	}
	if err := os.WriteFile(s.userPath, data, 0o600); err != nil {
		s.log.Warn("user save failed", zap.Error(err))
	}
}

func (s *SessionFileStore) Clear() {
	_ = os.Remove(s.tokenPath)
	_ = os.Remove(s.userPath)
}
