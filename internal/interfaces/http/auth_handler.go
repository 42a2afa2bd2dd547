package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gescop/gescop-api/internal/application/auth"
	"github.com/gescop/gescop-api/internal/application/dto"
)

// AuthHandler maneja registro y login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "email, password, nombre"
// @Success      201   {object}  dto.APIResponse{data=dto.UsuarioResponse}
// @Failure      400   {object}  dto.APIResponse
// @Failure      409   {object}  dto.APIResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return fallar(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Email == "" || in.Password == "" {
		return fallar(c, fiber.StatusBadRequest, "VALIDATION", "email y password son requeridos")
	}
	if len(in.Password) < 8 {
		return fallar(c, fiber.StatusBadRequest, "VALIDATION", "password debe tener al menos 8 caracteres")
	}
	user, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		return fallarPorError(c, err)
	}
	return creado(c, "usuario registrado", user)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.APIResponse{data=dto.LoginResponse}
// @Failure      401   {object}  dto.APIResponse
// @Failure      403   {object}  dto.APIResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fallar(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Email == "" || in.Password == "" {
		return fallar(c, fiber.StatusBadRequest, "VALIDATION", "email y password son requeridos")
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return fallarPorError(c, err)
	}
	return exito(c, "login correcto", out, nil)
}
