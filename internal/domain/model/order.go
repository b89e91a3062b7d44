package model

import "time"

// 注文ステータス（リモートが管理）
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// 注文作成リクエストの明細。
// laptop_id / mice_id はどちらか一方だけ。価格はクライアントからは送らない。
type OrderItemCreate struct {
	LaptopID *int64 `json:"laptop_id,omitempty"`
	MiceID   *int64 `json:"mice_id,omitempty"`
	Quantity int64  `json:"quantity"`
}

// POST /api/v1/orders のリクエストボディ
type OrderCreate struct {
	Items []OrderItemCreate `json:"items"`
}

// 注文明細（リモートのレスポンス）。
// laptop / mice は該当側だけ埋まる。
type OrderItem struct {
	ID        int64   `json:"id"`
	LaptopID  *int64  `json:"laptop_id,omitempty"`
	MiceID    *int64  `json:"mice_id,omitempty"`
	Quantity  int64   `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Laptop    *Laptop `json:"laptop,omitempty"`
	Mice      *Mouse  `json:"mice,omitempty"`
}

// 注文レコード。合計はリモートが計算した値をそのまま使う。
type Order struct {
	ID          int64       `json:"id"`
	UserID      int64       `json:"user_id"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status"`
	Items       []OrderItem `json:"items"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
