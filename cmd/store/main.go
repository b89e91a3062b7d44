package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/infra/api"
	"app/internal/infra/storage"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// カートの数量上限（表示層の責務としてここでクランプする）
const maxQuantityPerLine = 10

type app struct {
	cart     *usecase.CartUsecase
	auth     *usecase.AuthUsecase
	checkout *usecase.CheckoutUsecase
	history  *usecase.OrderHistoryUsecase
	api      *api.Client
}

func main() {
	//.envは有れば読む
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	//ローカル保存（カートとセッションは別ファイル）
	cartStore := storage.NewCartFileStore(cfg.StateDir, logger)
	sessionStore := storage.NewSessionFileStore(cfg.StateDir, logger)

	//401を受けたらセッションを破棄してログインを促す
	var auth *usecase.AuthUsecase
	client := api.NewClient(
		cfg.APIBaseURL,
		time.Duration(cfg.HTTPTimeoutSeconds)*time.Second,
		sessionStore.Token,
		func() {
			if auth != nil {
				auth.ForceLogout()
			}
			fmt.Fprintln(os.Stderr, "session expired, please login again")
		},
		logger,
	)
	auth = usecase.NewAuthUsecase(client, sessionStore)

	//Usecase生成
	cart := usecase.NewCartUsecase(cartStore)
	a := &app{
		cart:     cart,
		auth:     auth,
		checkout: usecase.NewCheckoutUsecase(cart, auth, client),
		history:  usecase.NewOrderHistoryUsecase(client),
		api:      client,
	}

	if err := a.run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError()
	}

	switch args[0] {
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: store login <username> <password>")
		}
		res := a.auth.Login(ctx, model.UserLogin{Username: args[1], Password: args[2]})
		if !res.Success {
			return res.Failure
		}
		fmt.Println("logged in")
		return nil

	case "register":
		if len(args) != 4 {
			return fmt.Errorf("usage: store register <username> <email> <password>")
		}
		res := a.auth.Register(ctx, model.UserCreate{Username: args[1], Email: args[2], Password: args[3]})
		if !res.Success {
			return res.Failure
		}
		fmt.Println("registered, please login")
		return nil

	case "logout":
		a.auth.Logout()
		fmt.Println("logged out")
		return nil

	case "laptops":
		laptops, err := a.api.ListLaptops(ctx)
		if err != nil {
			return err
		}
		for _, l := range laptops {
			fmt.Printf("%d\t%s %s\t%.2f\tstock:%d\n", l.ID, l.Brand, l.Model, l.Price, l.StockQuantity)
		}
		return nil

	case "mice":
		mice, err := a.api.ListMice(ctx)
		if err != nil {
			return err
		}
		for _, m := range mice {
			fmt.Printf("%d\t%s %s\t%.2f\tstock:%d\n", m.ID, m.Brand, m.Model, m.Price, m.StockQuantity)
		}
		return nil

	case "cart":
		return a.runCart(ctx, args[1:])

	case "checkout":
		res := a.checkout.Checkout(ctx)
		if !res.Success {
			return res.Failure
		}
		fmt.Printf("order placed: #%d\n", res.OrderID)
		return nil

	case "orders":
		return a.runOrders(ctx, args[1:])

	case "cancel":
		if len(args) != 2 {
			return fmt.Errorf("usage: store cancel <order-id>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id")
		}
		msg, fail := a.history.Cancel(ctx, id)
		if fail != nil {
			return fail
		}
		fmt.Println(msg)
		return nil

	default:
		return usageError()
	}
}

func (a *app) runCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"show"}
	}

	switch args[0] {
	case "show":
		for _, l := range a.cart.Lines() {
			fmt.Printf("%s\t%s\t%.2f x %d\n", l.ID, l.Product.Name, l.Product.Price, l.Quantity)
		}
		fmt.Printf("items: %d  total: %.2f\n", a.cart.TotalItems(), a.cart.TotalAmount())
		return nil

	case "add":
		if len(args) < 3 {
			return fmt.Errorf("usage: store cart add <laptop|mice> <product-id> [qty]")
		}
		kind := model.ProductKind(args[1])
		if kind != model.KindLaptop && kind != model.KindMouse {
			return fmt.Errorf("unknown product kind: %s", args[1])
		}
		id, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id")
		}
		qty := int64(1)
		if len(args) > 3 {
			qty, err = strconv.ParseInt(args[3], 10, 64)
			if err != nil || qty < 1 {
				return fmt.Errorf("invalid quantity")
			}
		}

		p, err := a.findProduct(ctx, kind, id)
		if err != nil {
			return err
		}
		if p.Stock <= 0 {
			return fmt.Errorf("out of stock")
		}
		//数量はmin(在庫, 10)でクランプ
		if limit := min(p.Stock, maxQuantityPerLine); qty > limit {
			qty = limit
		}

		a.cart.AddLine(p, kind, qty)
		fmt.Printf("added %s x %d\n", p.Name, qty)
		return nil

	case "qty":
		if len(args) != 3 {
			return fmt.Errorf("usage: store cart qty <line-id> <quantity>")
		}
		qty, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid quantity")
		}
		a.cart.SetQuantity(args[1], qty)
		return nil

	case "rm":
		if len(args) != 2 {
			return fmt.Errorf("usage: store cart rm <line-id>")
		}
		a.cart.RemoveLine(args[1])
		return nil

	case "clear":
		a.cart.Clear()
		return nil

	default:
		return fmt.Errorf("unknown cart command: %s", args[0])
	}
}

func (a *app) runOrders(ctx context.Context, args []string) error {
	if len(args) == 1 {
		// 個別表示
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid order id")
		}
		o, err := a.api.GetOrder(ctx, id)
		if err != nil {
			return err
		}
		printOrder(o, true)
		return nil
	}

	if fail := a.history.Fetch(ctx); fail != nil {
		return fail
	}
	for _, o := range a.history.Orders() {
		printOrder(o, a.history.IsExpanded(o.ID))
	}
	return nil
}

func printOrder(o model.Order, expanded bool) {
	fmt.Printf("#%d\t%s(%s)\t%.2f\titems:%d\t%s\n",
		o.ID, o.Status, usecase.StatusBadgeClass(o.Status), o.TotalAmount,
		usecase.ItemCount(o), o.CreatedAt.Format(time.RFC3339))

	if !expanded {
		return
	}
	for _, it := range o.Items {
		fmt.Printf("\t%s\t%s\t%.2f x %d = %.2f\n",
			usecase.ProductType(it), usecase.ProductName(it),
			it.UnitPrice, it.Quantity, usecase.LineTotal(it))
	}
}

// 一覧から商品を探してカート用スナップショットにする
func (a *app) findProduct(ctx context.Context, kind model.ProductKind, id int64) (model.Product, error) {
	if kind == model.KindMouse {
		mice, err := a.api.ListMice(ctx)
		if err != nil {
			return model.Product{}, err
		}
		for _, m := range mice {
			if m.ID == id {
				return model.MouseProduct(m), nil
			}
		}
		return model.Product{}, fmt.Errorf("mouse %d not found", id)
	}

	laptops, err := a.api.ListLaptops(ctx)
	if err != nil {
		return model.Product{}, err
	}
	for _, l := range laptops {
		if l.ID == id {
			return model.LaptopProduct(l), nil
		}
	}
	return model.Product{}, fmt.Errorf("laptop %d not found", id)
}

func usageError() error {
	return fmt.Errorf("usage: store <login|register|logout|laptops|mice|cart|checkout|orders|cancel> ...")
}
