package e2e

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"app/internal/domain/model"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const fakeJWTSecret = "e2e_secret"

// リモートの注文サービスの代役。
// 商品・注文はメモリ上に持つ。
type FakeBackend struct {
	mu      sync.Mutex
	laptops []model.Laptop
	mice    []model.Mouse
	orders  []model.Order
	nextID  int64
}

func NewFakeBackend() *FakeBackend {
	return &FakeBackend{
		laptops: []model.Laptop{
			{ID: 1, Brand: "Lenovo", Model: "ThinkPad X1", Price: 999.99, StockQuantity: 20, CreatedAt: time.Now()},
			{ID: 2, Brand: "Apple", Model: "MacBook Air", Price: 1199.00, StockQuantity: 0, CreatedAt: time.Now()},
		},
		mice: []model.Mouse{
			{ID: 3, Brand: "Logitech", Model: "MX Master", Price: 49.50, StockQuantity: 5, CreatedAt: time.Now()},
		},
		nextID: 1,
	}
}

func issueToken(t *testing.T, ttl time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(fakeJWTSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// Bearerトークン検証。失敗時は401 + FastAPI風のdetail。
func requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authz := c.Request().Header.Get("Authorization")
		parts := strings.SplitN(authz, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
		}

		token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
			return []byte(fakeJWTSecret), nil
		})
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "Could not validate credentials"})
		}
		return next(c)
	}
}

// テスト用サーバーを立てる
func StartFakeBackend(t *testing.T, b *FakeBackend) string {
	t.Helper()

	e := echo.New()

	e.POST("/api/v1/users/login", func(c echo.Context) error {
		var req model.UserLogin
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid body"})
		}
		if req.Username != "alice" || req.Password != "password123" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"detail": "Incorrect username or password"})
		}
		return c.JSON(http.StatusOK, model.Token{AccessToken: issueToken(t, 15*time.Minute), TokenType: "bearer"})
	})

	e.POST("/api/v1/users/register", func(c echo.Context) error {
		var req model.UserCreate
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid body"})
		}
		return c.JSON(http.StatusCreated, model.User{ID: 2, Username: req.Username, Email: req.Email, CreatedAt: time.Now()})
	})

	e.GET("/api/v1/laptops", func(c echo.Context) error {
		return c.JSON(http.StatusOK, b.laptops)
	})

	e.GET("/api/v1/mice", func(c echo.Context) error {
		return c.JSON(http.StatusOK, b.mice)
	})

	e.POST("/api/v1/orders", requireAuth(func(c echo.Context) error {
		var req model.OrderCreate
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"detail": "invalid body"})
		}

		b.mu.Lock()
		defer b.mu.Unlock()

		order := model.Order{
			ID:        b.nextID,
			UserID:    1,
			Status:    model.OrderStatusPending,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		b.nextID++

		for _, it := range req.Items {
			switch {
			case it.LaptopID != nil:
				l, ok := b.findLaptop(*it.LaptopID)
				if !ok {
					return c.JSON(http.StatusNotFound, map[string]string{"detail": "Laptop not found"})
				}
				if l.StockQuantity < it.Quantity {
					return c.JSON(http.StatusBadRequest, map[string]string{"detail": "insufficient stock"})
				}
				id := l.ID
				order.Items = append(order.Items, model.OrderItem{
					ID: int64(len(order.Items) + 1), LaptopID: &id,
					Quantity: it.Quantity, UnitPrice: l.Price, Laptop: &l,
				})
				order.TotalAmount += l.Price * float64(it.Quantity)
			case it.MiceID != nil:
				m, ok := b.findMouse(*it.MiceID)
				if !ok {
					return c.JSON(http.StatusNotFound, map[string]string{"detail": "Mouse not found"})
				}
				if m.StockQuantity < it.Quantity {
					return c.JSON(http.StatusBadRequest, map[string]string{"detail": "insufficient stock"})
				}
				id := m.ID
				order.Items = append(order.Items, model.OrderItem{
					ID: int64(len(order.Items) + 1), MiceID: &id,
					Quantity: it.Quantity, UnitPrice: m.Price, Mice: &m,
				})
				order.TotalAmount += m.Price * float64(it.Quantity)
			default:
				return c.JSON(http.StatusUnprocessableEntity, map[string]any{
					"detail": []map[string]any{{"msg": "Either laptop_id or mice_id must be provided"}},
				})
			}
		}

		b.orders = append(b.orders, order)
		return c.JSON(http.StatusCreated, order)
	}))

	e.GET("/api/v1/orders", requireAuth(func(c echo.Context) error {
		b.mu.Lock()
		defer b.mu.Unlock()
		return c.JSON(http.StatusOK, b.orders)
	}))

	e.GET("/api/v1/orders/:id", requireAuth(func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, o := range b.orders {
			if o.ID == id {
				return c.JSON(http.StatusOK, o)
			}
		}
		return c.JSON(http.StatusNotFound, map[string]string{"detail": "Order not found"})
	}))

	e.DELETE("/api/v1/orders/:id", requireAuth(func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, o := range b.orders {
			if o.ID != id {
				continue
			}
			if o.Status != model.OrderStatusPending {
				return c.JSON(http.StatusBadRequest, map[string]string{"detail": "Only pending orders can be deleted"})
			}
			b.orders = append(b.orders[:i], b.orders[i+1:]...)
			return c.JSON(http.StatusOK, map[string]string{"message": "Order deleted successfully"})
		}
		return c.JSON(http.StatusNotFound, map[string]string{"detail": "Order not found"})
	}))

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv.URL
}

func (b *FakeBackend) findLaptop(id int64) (model.Laptop, bool) {
	for _, l := range b.laptops {
		if l.ID == id {
			return l, true
		}
	}
	return model.Laptop{}, false
}

func (b *FakeBackend) findMouse(id int64) (model.Mouse, bool) {
	for _, m := range b.mice {
		if m.ID == id {
			return m, true
		}
	}
	return model.Mouse{}, false
}
