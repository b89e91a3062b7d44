package model

import (
	"fmt"
	"time"
)

// 商品種別（カートの複合キーの片割れ）
type ProductKind string

const (
	KindLaptop ProductKind = "laptop"
	KindMouse  ProductKind = "mice"
)

// リモートAPIのノートPCレコード
type Laptop struct {
	ID            int64     `json:"id"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	Processor     string    `json:"processor"`
	RAMGB         int64     `json:"ram_gb"`
	StorageGB     int64     `json:"storage_gb"`
	Graphics      string    `json:"graphics"`
	ScreenSize    float64   `json:"screen_size"`
	Price         float64   `json:"price"`
	StockQuantity int64     `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
}

// リモートAPIのマウスレコード
type Mouse struct {
	ID            int64     `json:"id"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	MouseType     string    `json:"mouse_type"`
	Connectivity  string    `json:"connectivity"`
	DPI           int64     `json:"dpi"`
	Buttons       int64     `json:"buttons"`
	RGBLighting   bool      `json:"rgb_lighting"`
	WeightGrams   int64     `json:"weight_grams"`
	Price         float64   `json:"price"`
	StockQuantity int64     `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
}

// カートが持つ商品スナップショット。
// 価格は追加時点のものを固定で持つ。
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int64   `json:"stock"`
}

// Laptop→スナップショット変換
func LaptopProduct(l Laptop) Product {
	return Product{
		ID:    l.ID,
		Name:  fmt.Sprintf("%s %s", l.Brand, l.Model),
		Price: l.Price,
		Stock: l.StockQuantity,
	}
}

// Mouse→スナップショット変換
func MouseProduct(m Mouse) Product {
	return Product{
		ID:    m.ID,
		Name:  fmt.Sprintf("%s %s", m.Brand, m.Model),
		Price: m.Price,
		Stock: m.StockQuantity,
	}
}
