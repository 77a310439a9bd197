package auth

import (
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher хэширует пароли с помощью bcrypt.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", e.Wrap("failed to hash password", err)
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return e.ErrInvalidCredentials
	}
	return nil
}
