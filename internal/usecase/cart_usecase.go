package usecase

import (
	"app/internal/domain/model"
	"app/internal/repository"
)

// CartUsecase はカートの業務ロジックです。
// スナップショットはメモリ上が正で、変更のたびにStoreへ反映する。
type CartUsecase struct {
	store repository.CartStore
	lines model.CartSnapshot
}

// 起動時に保存済みスナップショットを読み込む
func NewCartUsecase(store repository.CartStore) *CartUsecase {
	return &CartUsecase{
		store: store,
		lines: store.Load(),
	}
}

// 追加（同一の種別×商品IDは数量加算）。
// 在庫上限のクランプは表示層の責務なのでここでは見ない。
func (u *CartUsecase) AddLine(p model.Product, kind model.ProductKind, quantity int64) {
	if quantity < 1 {
		quantity = 1
	}

	id := model.LineID(kind, p.ID)
	for i := range u.lines {
		if u.lines[i].ID == id {
			u.lines[i].Quantity += quantity
			u.store.Save(u.lines)
			return
		}
	}

	u.lines = append(u.lines, model.CartLine{
		ID:       id,
		Kind:     kind,
		Product:  p,
		Quantity: quantity,
	})
	u.store.Save(u.lines)
}

// 明細削除（無ければ何もしない）
func (u *CartUsecase) RemoveLine(lineID string) {
	kept := make(model.CartSnapshot, 0, len(u.lines))
	for _, l := range u.lines {
		if l.ID != lineID {
			kept = append(kept, l)
		}
	}
	u.lines = kept
	u.store.Save(u.lines)
}

// 数量変更。0以下は削除と同じ。
func (u *CartUsecase) SetQuantity(lineID string, quantity int64) {
	if quantity <= 0 {
		u.RemoveLine(lineID)
		return
	}

	for i := range u.lines {
		if u.lines[i].ID == lineID {
			u.lines[i].Quantity = quantity
			break
		}
	}
	u.store.Save(u.lines)
}

func (u *CartUsecase) Clear() {
	u.lines = model.CartSnapshot{}
	u.store.Save(u.lines)
}

// 現在の明細のコピーを返す
func (u *CartUsecase) Lines() model.CartSnapshot {
	out := make(model.CartSnapshot, len(u.lines))
	copy(out, u.lines)
	return out
}

func (u *CartUsecase) IsEmpty() bool {
	return len(u.lines) == 0
}

// 合計点数。読み取りのたびに計算する（キャッシュしない）。
func (u *CartUsecase) TotalItems() int64 {
	var sum int64
	for _, l := range u.lines {
		sum += l.Quantity
	}
	return sum
}

// 合計金額。追加時点の価格×数量の総和。
func (u *CartUsecase) TotalAmount() float64 {
	var sum float64
	for _, l := range u.lines {
		sum += l.Product.Price * float64(l.Quantity)
	}
	return sum
}
