package model

import "fmt"

// カートの明細。
// 同一の (Kind, Product.ID) は必ず1行に集約される。
type CartLine struct {
	ID       string      `json:"id"`
	Kind     ProductKind `json:"type"`
	Product  Product     `json:"product"`
	Quantity int64       `json:"quantity"`
}

// カート全体の状態。保存対象はこれだけ。
type CartSnapshot []CartLine

// 明細IDは "laptop-1" / "mice-3" の形
func LineID(kind ProductKind, productID int64) string {
	return fmt.Sprintf("%s-%d", kind, productID)
}
