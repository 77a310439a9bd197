package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/eshop-backend/internal/domain"
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/DRSN-tech/eshop-backend/pkg/logger"
)

// UserUseCase реализует бизнес-логику пользователей и входа.
type UserUseCase struct {
	userRepo UserRepository
	hasher   PasswordHasher
	issuer   TokenIssuer
	logger   logger.Logger
}

func NewUserUC(
	userRepo UserRepository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	logger logger.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		logger:   logger,
	}
}

func (u *UserUseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	const op = "UserUseCase.ListUsers"

	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return users, nil
}

func (u *UserUseCase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	const op = "UserUseCase.GetUser"

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return user, nil
}

// CreateUser создает пользователя от имени администратора,
// флаг IsAdmin берется из запроса.
func (u *UserUseCase) CreateUser(ctx context.Context, req *CreateUserReq) (*domain.User, error) {
	const op = "UserUseCase.CreateUser"

	user, err := u.createUser(ctx, req, req.IsAdmin)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return user, nil
}

// Register создает обычного пользователя, флаг IsAdmin игнорируется.
func (u *UserUseCase) Register(ctx context.Context, req *CreateUserReq) (*domain.User, error) {
	const op = "UserUseCase.Register"

	user, err := u.createUser(ctx, req, false)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return user, nil
}

// Login проверяет учетные данные и выпускает подписанный токен.
// Несуществующий email и неверный пароль неразличимы для клиента.
func (u *UserUseCase) Login(ctx context.Context, req *LoginReq) (*LoginRes, error) {
	const op = "UserUseCase.Login"

	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	if err := u.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	token, err := u.issuer.Issue(user.ID, user.IsAdmin)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &LoginRes{
		UserID: user.ID,
		Email:  user.Email,
		Token:  token,
	}, nil
}

func (u *UserUseCase) DeleteUser(ctx context.Context, id int64) error {
	const op = "UserUseCase.DeleteUser"

	if err := u.userRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (u *UserUseCase) CountUsers(ctx context.Context) (int64, error) {
	const op = "UserUseCase.CountUsers"

	count, err := u.userRepo.Count(ctx)
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	return count, nil
}

func (u *UserUseCase) createUser(ctx context.Context, req *CreateUserReq, isAdmin bool) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if strings.TrimSpace(req.Name) == "" || email == "" || req.Password == "" {
		return nil, e.ErrMissingFields
	}

	hash, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	return u.userRepo.Create(ctx, domain.NewUser(
		req.Name,
		email,
		hash,
		req.Phone,
		isAdmin,
		req.Street,
		req.Apartment,
		req.Zip,
		req.City,
		req.Country,
	))
}
