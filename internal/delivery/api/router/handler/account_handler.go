package handler

import (
	"tutoria/internal/delivery/api/dto"
	"tutoria/internal/delivery/api/response"
	deliverycontext "tutoria/internal/delivery/context"
	domainerrors "tutoria/internal/domain/errors"
	"tutoria/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc usecase.UserUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.UserUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Register handles POST /register.
func (h *AccountHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidJSON.WithDetails(err.Error())
	}

	user, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Nome,
		Email:    req.Email,
		Password: req.Senha,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.NewUserResponse(user))
}

// Login handles POST /login.
func (h *AccountHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidJSON.WithDetails(err.Error())
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Senha,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.TokenResponse{Token: output.Token.Token})
}

// Logout handles POST /logout. Tokens are stateless, so the client just discards its copy.
func (h *AccountHandler) Logout(c echo.Context) error {
	return response.Message(c, "Logout realizado com sucesso.")
}

// Me handles GET /me.
func (h *AccountHandler) Me(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenNotProvided
	}

	user, err := h.uc.GetProfile(c.Request().Context(), identity.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.NewUserResponse(user))
}

// UpdateName handles PUT /me/nome.
func (h *AccountHandler) UpdateName(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenNotProvided
	}

	var req dto.UpdateNameRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidJSON.WithDetails(err.Error())
	}

	user, err := h.uc.UpdateName(c.Request().Context(), identity.UserID, req.Nome)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.NewUserResponse(user))
}

// UpdatePassword handles PUT /me/senha.
func (h *AccountHandler) UpdatePassword(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return domainerrors.ErrTokenNotProvided
	}

	var req dto.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrInvalidJSON.WithDetails(err.Error())
	}

	user, err := h.uc.UpdatePassword(c.Request().Context(), identity.UserID, req.Senha)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, dto.NewUserResponse(user))
}
