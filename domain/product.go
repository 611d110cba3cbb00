package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_name     TEXT,
//     description      TEXT,
//     category         TEXT,
//     is_made_to_order BOOLEAN,
//     price            NUMERIC,
//     sale_price       NUMERIC,
//     stock            NUMERIC,
//     image_url        TEXT,
//     created_at       TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName   string    `gorm:"column:product_name;type:text" json:"product_name"`
	Description   string    `gorm:"column:description;type:text" json:"description"`
	Category      string    `gorm:"column:category;type:text" json:"category"`
	IsMadeToOrder bool      `gorm:"column:is_made_to_order;default:false" json:"is_made_to_order"`
	Price         float64   `gorm:"column:price;type:numeric" json:"price"`
	SalePrice     float64   `gorm:"column:sale_price;type:numeric" json:"sale_price"`
	Stock         float64   `gorm:"column:stock;type:numeric" json:"stock"`
	ImageURL      string    `gorm:"column:image_url;type:text" json:"image_url"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
