package repository

import (
	"context"

	"app/internal/domain/model"
)

// リモートの注文サービスへの約束。
// 認証が必要な呼び出しはBearerトークンを実装側が付ける。
type StoreAPI interface {
	ListLaptops(ctx context.Context) ([]model.Laptop, error)
	ListMice(ctx context.Context) ([]model.Mouse, error)

	Register(ctx context.Context, in model.UserCreate) (model.User, error)
	Login(ctx context.Context, in model.UserLogin) (model.Token, error)

	CreateOrder(ctx context.Context, in model.OrderCreate) (model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, orderID int64) (model.Order, error)
	CancelOrder(ctx context.Context, orderID int64) (string, error)
}
