package usecase

import (
	"context"

	"app/internal/domain/model"
	"app/internal/repository"
)

// チェックアウト1回分の状態
type CheckoutState int

const (
	CheckoutIdle CheckoutState = iota
	CheckoutSubmitting
	CheckoutSucceeded
	CheckoutFailed
)

// ログイン状態を教えてくれる約束
type Authenticator interface {
	IsAuthenticated() bool
}

type CheckoutResult struct {
	Success bool     `json:"success"`
	OrderID int64    `json:"order_id,omitempty"`
	Failure *Failure `json:"failure,omitempty"`
}

// CheckoutUsecase はカートを注文に変換する。
// 自動リトライはしない。失敗してもカートは崩さない。
type CheckoutUsecase struct {
	cart  *CartUsecase
	auth  Authenticator
	api   repository.StoreAPI
	state CheckoutState
}

func NewCheckoutUsecase(cart *CartUsecase, auth Authenticator, api repository.StoreAPI) *CheckoutUsecase {
	return &CheckoutUsecase{
		cart:  cart,
		auth:  auth,
		api:   api,
		state: CheckoutIdle,
	}
}

func (u *CheckoutUsecase) State() CheckoutState {
	return u.state
}

// チェックアウト実行。
// 前提条件（ログイン済み・カート非空）を満たさないときはリモートを呼ばない。
func (u *CheckoutUsecase) Checkout(ctx context.Context) CheckoutResult {
	u.state = CheckoutIdle

	if !u.auth.IsAuthenticated() {
		u.state = CheckoutFailed
		return CheckoutResult{Failure: NewFailure(FailureAuthRequired, "Please login to checkout")}
	}

	lines := u.cart.Lines()
	if len(lines) == 0 {
		u.state = CheckoutFailed
		return CheckoutResult{Failure: NewFailure(FailureEmptyCart, "Cart is empty")}
	}

	u.state = CheckoutSubmitting

	//明細を送信形へ変換。該当する側のIDだけ入れる
	in := model.OrderCreate{Items: make([]model.OrderItemCreate, 0, len(lines))}
	for _, l := range lines {
		pid := l.Product.ID
		item := model.OrderItemCreate{Quantity: l.Quantity}
		if l.Kind == model.KindMouse {
			item.MiceID = &pid
		} else {
			item.LaptopID = &pid
		}
		in.Items = append(in.Items, item)
	}

	order, err := u.api.CreateOrder(ctx, in)
	if err != nil {
		u.state = CheckoutFailed
		return CheckoutResult{Failure: normalizeError(err, "checkout failed")}
	}

	//送信済みの明細が残らないように空にする
	u.cart.Clear()
	u.state = CheckoutSucceeded

	return CheckoutResult{Success: true, OrderID: order.ID}
}
