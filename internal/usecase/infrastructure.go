package usecase

import "context"

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

type ImagesInfra interface {
	UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error)
	CleanupImages(keys []string)
	WaitForCleanup(ctx context.Context) error
}

// TokenIssuer выпускает подписанный токен для пользователя.
type TokenIssuer interface {
	Issue(userID int64, isAdmin bool) (string, error)
}

// PasswordHasher хэширует и проверяет пароли.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// ProductInfoProvider отдает краткую информацию о товарах (с учетом кэша).
type ProductInfoProvider interface {
	GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
}
