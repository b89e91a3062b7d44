package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	APIBaseURL string // リモートAPIのベースURL（http://localhost:8000）

	StateDir string // ローカル状態の保存先ディレクトリ

	HTTPTimeoutSeconds int // 0ならトランスポートのデフォルトに任せる
}

// Loadは環境変数から読む。未設定はデフォルトで補う。
func Load() (Config, error) {
	cfg := Config{
		APIBaseURL: getenv("API_BASE_URL", "http://localhost:8000"),
		StateDir:   os.Getenv("STATE_DIR"),
	}

	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("STATE_DIR is required when home dir is unknown: %w", err)
		}
		cfg.StateDir = filepath.Join(home, ".laptop-store")
	}

	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("HTTP_TIMEOUT_SECONDS must be a non-negative number")
		}
		cfg.HTTPTimeoutSeconds = n
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
