package repository

import "app/internal/domain/model"

// カートのローカル永続化。
// Loadは保存データが無い・壊れているとき空を返す（エラーは伝播しない）。
// Saveはベストエフォート。失敗してもメモリ上のスナップショットが正。
type CartStore interface {
	Load() model.CartSnapshot
	Save(snapshot model.CartSnapshot)
}
