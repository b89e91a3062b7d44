package usecase

import (
	"context"
	"fmt"
	"strings"

	"app/internal/domain/model"
	"app/internal/repository"
)

// OrderHistoryUsecase は注文履歴の表示用状態を持つ。
// 展開中の注文ID集合は取得結果とは独立したローカル状態。
type OrderHistoryUsecase struct {
	api      repository.StoreAPI
	orders   []model.Order
	lastErr  *Failure
	expanded map[int64]struct{}
}

func NewOrderHistoryUsecase(api repository.StoreAPI) *OrderHistoryUsecase {
	return &OrderHistoryUsecase{
		api:      api,
		expanded: map[int64]struct{}{},
	}
}

// 一覧を取り直す。失敗はFailureとして保持し、Retryで再実行できる。
func (u *OrderHistoryUsecase) Fetch(ctx context.Context) *Failure {
	orders, err := u.api.ListOrders(ctx)
	if err != nil {
		u.lastErr = normalizeError(err, "Failed to load orders")
		return u.lastErr
	}

	u.orders = orders
	u.lastErr = nil
	return nil
}

// 同じ取得をもう一度
func (u *OrderHistoryUsecase) Retry(ctx context.Context) *Failure {
	return u.Fetch(ctx)
}

func (u *OrderHistoryUsecase) Orders() []model.Order {
	return u.orders
}

func (u *OrderHistoryUsecase) Err() *Failure {
	return u.lastErr
}

// 展開トグル（集合に有る＝展開中）
func (u *OrderHistoryUsecase) ToggleExpanded(orderID int64) {
	if _, ok := u.expanded[orderID]; ok {
		delete(u.expanded, orderID)
		return
	}
	u.expanded[orderID] = struct{}{}
}

func (u *OrderHistoryUsecase) IsExpanded(orderID int64) bool {
	_, ok := u.expanded[orderID]
	return ok
}

// 注文キャンセル（pendingのみ。可否はリモートが判定する）
func (u *OrderHistoryUsecase) Cancel(ctx context.Context, orderID int64) (string, *Failure) {
	msg, err := u.api.CancelOrder(ctx, orderID)
	if err != nil {
		return "", normalizeError(err, "Failed to cancel order")
	}
	return msg, nil
}

// ステータス→表示クラス。未知の値はpending扱い。
func StatusBadgeClass(status string) string {
	switch strings.ToLower(status) {
	case model.OrderStatusProcessing:
		return "status-processing"
	case model.OrderStatusShipped:
		return "status-shipped"
	case model.OrderStatusDelivered:
		return "status-delivered"
	case model.OrderStatusCancelled:
		return "status-cancelled"
	default:
		return "status-pending"
	}
}

// 注文内の商品点数（表示用の集計）
func ItemCount(o model.Order) int64 {
	var sum int64
	for _, it := range o.Items {
		sum += it.Quantity
	}
	return sum
}

// 明細の表示名。レスポンスに埋まっている商品レコードから作る。
func ProductName(it model.OrderItem) string {
	switch {
	case it.Laptop != nil:
		return fmt.Sprintf("%s %s", it.Laptop.Brand, it.Laptop.Model)
	case it.Mice != nil:
		return fmt.Sprintf("%s %s", it.Mice.Brand, it.Mice.Model)
	default:
		return "unknown product"
	}
}

func ProductType(it model.OrderItem) model.ProductKind {
	if it.MiceID != nil || it.Mice != nil {
		return model.KindMouse
	}
	return model.KindLaptop
}

// 明細の表示用小計。履歴の正式な合計はリモートのtotal_amountを使うこと。
func LineTotal(it model.OrderItem) float64 {
	return it.UnitPrice * float64(it.Quantity)
}
