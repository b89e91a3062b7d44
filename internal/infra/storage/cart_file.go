package storage

import (
	"encoding/json"
	"os"
	"path/filepath"

	"app/internal/domain/model"

	"go.uber.org/zap"
)

// CartStoreのファイル実装。スナップショット全体を1つのJSONで持つ。
type CartFileStore struct {
	path string
	log  *zap.Logger
}

// DI
func NewCartFileStore(dir string, log *zap.Logger) *CartFileStore {
	return &CartFileStore{
		path: filepath.Join(dir, "cart.json"),
		log:  log,
	}
}

// 無い・読めない・パースできない場合は空を返す。
// 壊れたファイルは捨てる。
func (s *CartFileStore) Load() model.CartSnapshot {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return model.CartSnapshot{}
	}

	var snap model.CartSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.log.Warn("cart file is corrupt, discarding", zap.String("path", s.path), zap.Error(err))
		_ = os.Remove(s.path)
		return model.CartSnapshot{}
	}
	if snap == nil {
		snap = model.CartSnapshot{}
	}
	return snap
}

// ベストエフォート保存。失敗はログだけ残して握りつぶす。
func (s *CartFileStore) Save(snapshot model.CartSnapshot) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		s.log.Warn("cart snapshot marshal failed", zap.Error(err))
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.log.Warn("cart dir create failed", zap.String("path", s.path), zap.Error(err))
		return
	}

	// 半端な書き込みを残さないよう一時ファイル経由で置き換える
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		s.log.Warn("cart save failed", zap.String("path", s.path), zap.Error(err))
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.log.Warn("cart save failed", zap.String("path", s.path), zap.Error(err))
	}
}
