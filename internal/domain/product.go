package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID          int64
	Name        string
	Description string
	Brand       string
	Image       string
	Images      []string
	Price       int64 // Цена хранится в копейках
	CategoryID  int64
	Stock       int32 // Остаток на складе, допустимый диапазон [0, 255]
	Rating      float64
	NumReviews  int32
	IsFeatured  bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func NewProduct(name, description, brand, image string, price int64, categoryID int64, stock int32, rating float64, numReviews int32, isFeatured bool) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Brand:       brand,
		Image:       image,
		Price:       price,
		CategoryID:  categoryID,
		Stock:       stock,
		Rating:      rating,
		NumReviews:  numReviews,
		IsFeatured:  isFeatured,
	}
}

const (
	// MinStock и MaxStock ограничивают допустимый остаток на складе.
	MinStock = 0
	MaxStock = 255
)
