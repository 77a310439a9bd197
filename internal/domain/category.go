package domain

import "time"

// Category описывает категорию товара
type Category struct {
	ID        int64
	Name      string
	Icon      string
	Color     string
	Image     string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewCategory(name, icon, color, image string) *Category {
	return &Category{
		Name:  name,
		Icon:  icon,
		Color: color,
		Image: image,
	}
}
