package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gescop/gescop-api/internal/application/dto"
	"github.com/gescop/gescop-api/internal/domain"
	"github.com/gescop/gescop-api/internal/domain/entity"
	"github.com/gescop/gescop-api/internal/domain/repository"
	"github.com/gescop/gescop-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
// El login del back-office original comparaba contraseñas en texto plano;
// acá todo pasa por bcrypt.
type AuthUseCase struct {
	userRepo repository.UsuarioRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Registrar crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrDuplicado si el email ya existe.
func (uc *AuthUseCase) Registrar(ctx context.Context, in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrValidacion
	}
	existente, _ := uc.userRepo.ObtenerPorEmail(ctx, in.Email)
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	nombre := in.Nombre
	if nombre == "" {
		nombre = in.Email
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolConsulta
	}
	u := &entity.Usuario{
		ID:            uuid.New().String(),
		Email:         in.Email,
		PasswordHash:  string(hash),
		Nombre:        nombre,
		Rol:           rol,
		Estado:        "activo",
		CreadoEn:      now,
		ActualizadoEn: now,
	}
	if err := uc.userRepo.Crear(ctx, u); err != nil {
		return nil, err
	}
	return dto.ToUsuarioResponse(u), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	u, err := uc.userRepo.ObtenerPorEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrNoAutorizado
	}
	if u.Estado != "activo" {
		return nil, domain.ErrAccesoDenegado
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *dto.ToUsuarioResponse(u),
	}, nil
}
