package domain

import "time"

// User описывает пользователя магазина.
// Пароль хранится только в виде bcrypt-хэша.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	IsAdmin      bool
	Street       string
	Apartment    string
	Zip          string
	City         string
	Country      string
	CreatedAt    time.Time
}

func NewUser(name, email, passwordHash, phone string, isAdmin bool, street, apartment, zip, city, country string) *User {
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Phone:        phone,
		IsAdmin:      isAdmin,
		Street:       street,
		Apartment:    apartment,
		Zip:          zip,
		City:         city,
		Country:      country,
	}
}
