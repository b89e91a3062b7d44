package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StoreAPIのHTTP実装。
// 認証が必要な呼び出しにはtokenSourceの値をBearerで付ける。
// どの呼び出しでも401が返ったらonUnauthorizedを呼ぶ（セッション失効）。
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokenSource    func() string
	onUnauthorized func()
	log            *zap.Logger
}

// DI。timeoutが0ならトランスポートのデフォルトに任せる。
func NewClient(
	baseURL string,
	timeout time.Duration,
	tokenSource func() string,
	onUnauthorized func(),
	log *zap.Logger,
) *Client {
	return &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		httpClient:     &http.Client{Timeout: timeout},
		tokenSource:    tokenSource,
		onUnauthorized: onUnauthorized,
		log:            log,
	}
}

func (c *Client) ListLaptops(ctx context.Context) ([]model.Laptop, error) {
	var out []model.Laptop
	if err := c.do(ctx, http.MethodGet, "/api/v1/laptops", nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListMice(ctx context.Context) ([]model.Mouse, error) {
	var out []model.Mouse
	if err := c.do(ctx, http.MethodGet, "/api/v1/mice", nil, &out, false); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, in model.UserCreate) (model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodPost, "/api/v1/users/register", in, &out, false); err != nil {
		return model.User{}, err
	}
	return out, nil
}

func (c *Client) Login(ctx context.Context, in model.UserLogin) (model.Token, error) {
	var out model.Token
	if err := c.do(ctx, http.MethodPost, "/api/v1/users/login", in, &out, false); err != nil {
		return model.Token{}, err
	}
	return out, nil
}

func (c *Client) CreateOrder(ctx context.Context, in model.OrderCreate) (model.Order, error) {
	var out model.Order
	if err := c.do(ctx, http.MethodPost, "/api/v1/orders", in, &out, true); err != nil {
		return model.Order{}, err
	}
	return out, nil
}

func (c *Client) ListOrders(ctx context.Context) ([]model.Order, error) {
	var out []model.Order
	if err := c.do(ctx, http.MethodGet, "/api/v1/orders", nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, orderID int64) (model.Order, error) {
	var out model.Order
	path := fmt.Sprintf("/api/v1/orders/%d", orderID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, true); err != nil {
		return model.Order{}, err
	}
	return out, nil
}

func (c *Client) CancelOrder(ctx context.Context, orderID int64) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	path := fmt.Sprintf("/api/v1/orders/%d", orderID)
	if err := c.do(ctx, http.MethodDelete, path, nil, &out, true); err != nil {
		return "", err
	}
	return out.Message, nil
}

// リクエスト1回分の共通処理
func (c *Client) do(ctx context.Context, method string, path string, in any, out any, authed bool) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if authed {
		if t := c.tokenSource(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	c.log.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		//トークン失効。ローカルの認証情報を破棄する
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return errorFromResponse(resp.StatusCode, data)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFromResponse(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// エラーボディからdetailを取り出す。
// detailは文字列のときだけ使う（構造化detailは捨てる）。
func errorFromResponse(status int, body []byte) error {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
		Error  string          `json:"error"`
	}

	detail := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		if len(payload.Detail) > 0 {
			var s string
			if err := json.Unmarshal(payload.Detail, &s); err == nil {
				detail = s
			}
		} else if payload.Error != "" {
			detail = payload.Error
		}
	}

	return &repository.APIError{Status: status, Detail: detail}
}
