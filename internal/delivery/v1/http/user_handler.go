package http

import (
	"net/http"

	"github.com/DRSN-tech/eshop-backend/internal/usecase"
	"github.com/DRSN-tech/eshop-backend/pkg/logger"
)

type UserHandler struct {
	userUsecase usecase.UserUC
	logger      logger.Logger
}

func NewUserHandler(userUsecase usecase.UserUC, logger logger.Logger) *UserHandler {
	return &UserHandler{userUsecase: userUsecase, logger: logger}
}

func toCreateUserReq(req *UserRequest) *usecase.CreateUserReq {
	return &usecase.CreateUserReq{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
		IsAdmin:   req.IsAdmin,
		Street:    req.Street,
		Apartment: req.Apartment,
		Zip:       req.Zip,
		City:      req.City,
		Country:   req.Country,
	}
}

// listUsers
//
//	@Summary		Список пользователей
//	@Tags			users
//	@Produce		json
//	@Success		200	{array}		UserResponse
//	@Failure		401	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/users [get]
func (h *UserHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.ListUsers(r.Context())
	if err != nil {
		h.logger.Warnf("list users: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUserResponses(users))
}

// getUser
//
//	@Summary		Пользователь по идентификатору
//	@Tags			users
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор пользователя"
//	@Success		200	{object}	UserResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/users/{id} [get]
func (h *UserHandler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	user, err := h.userUsecase.GetUser(r.Context(), id)
	if err != nil {
		h.logger.Warnf("get user %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUserResponse(user))
}

// createUser
//
//	@Summary		Создание пользователя администратором
//	@Description	Создает пользователя; флаг is_admin учитывается
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		UserRequest	true	"Пользователь"
//	@Success		201		{object}	UserResponse
//	@Failure		400		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/users [post]
func (h *UserHandler) createUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	user, err := h.userUsecase.CreateUser(r.Context(), toCreateUserReq(&req))
	if err != nil {
		h.logger.Warnf("create user: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toUserResponse(user))
}

// register
//
//	@Summary		Самостоятельная регистрация
//	@Description	Создает обычного пользователя; флаг is_admin игнорируется
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		UserRequest	true	"Пользователь"
//	@Success		201		{object}	UserResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/users/register [post]
func (h *UserHandler) register(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	user, err := h.userUsecase.Register(r.Context(), toCreateUserReq(&req))
	if err != nil {
		h.logger.Warnf("register: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toUserResponse(user))
}

// login
//
//	@Summary		Вход по учетным данным
//	@Description	Возвращает подписанный токен при верной паре email/пароль
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		LoginRequest	true	"Учетные данные"
//	@Success		200			{object}	LoginResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/users/login [post]
func (h *UserHandler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.userUsecase.Login(r.Context(), &usecase.LoginReq{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Warnf("login %s: %s", req.Email, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &LoginResponse{
		UserID: res.UserID,
		Email:  res.Email,
		Token:  res.Token,
	})
}

// deleteUser
//
//	@Summary		Удаление пользователя
//	@Tags			users
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор пользователя"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/users/{id} [delete]
func (h *UserHandler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.userUsecase.DeleteUser(r.Context(), id); err != nil {
		h.logger.Warnf("delete user %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"deleted": true})
}

// countUsers
//
//	@Summary		Количество пользователей
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	CountResponse
//	@Security		BearerAuth
//	@Router			/users/get/count [get]
func (h *UserHandler) countUsers(w http.ResponseWriter, r *http.Request) {
	count, err := h.userUsecase.CountUsers(r.Context())
	if err != nil {
		h.logger.Warnf("count users: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &CountResponse{Count: count})
}
