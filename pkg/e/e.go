package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound  = fmt.Errorf("transaction not found")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 404 Not Found
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrUserNotFound     = fmt.Errorf("user not found")
	ErrOrderNotFound    = fmt.Errorf("order not found")

	// 400 Bad Request
	ErrStatusBadRequest       = fmt.Errorf("bad request")
	ErrInvalidID              = fmt.Errorf("invalid identifier")
	ErrMissingFields          = fmt.Errorf("required fields are missing")
	ErrNameRequired           = fmt.Errorf("name is required")
	ErrInvalidPrice           = fmt.Errorf("invalid price")
	ErrPricePrecision         = fmt.Errorf("price must have at most 2 decimal places")
	ErrPriceMustBePositive    = fmt.Errorf("price must be positive")
	ErrStockOutOfRange        = fmt.Errorf("stock must be between 0 and 255")
	ErrInvalidOrderStatus     = fmt.Errorf("invalid order status")
	ErrOrderWithoutItems      = fmt.Errorf("order must contain at least one item")
	ErrQuantityMustBePositive = fmt.Errorf("quantity must be positive")
	ErrDuplicateEmail         = fmt.Errorf("email is already registered")
	ErrExpectedMultipart      = fmt.Errorf("expected multipart/form-data")
	ErrNoImages               = fmt.Errorf("no images provided")
	ErrTooManyImages          = fmt.Errorf("too many images")
	ErrFileTooLarge           = fmt.Errorf("file is too large")
	ErrUnsupportedMediaType   = fmt.Errorf("unsupported media type")

	// 401 Unauthorized
	ErrMissingToken       = fmt.Errorf("missing authorization token")
	ErrInvalidToken       = fmt.Errorf("invalid token")
	ErrTokenExpired       = fmt.Errorf("token expired")
	ErrTokenRevoked       = fmt.Errorf("token revoked")
	ErrInvalidCredentials = fmt.Errorf("invalid email or password")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
