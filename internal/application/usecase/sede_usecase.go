package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gescop/gescop-api/internal/application/dto"
	"github.com/gescop/gescop-api/internal/domain"
	"github.com/gescop/gescop-api/internal/domain/entity"
	"github.com/gescop/gescop-api/internal/domain/repository"
)

// SedeUseCase casos de uso CRUD para sedes.
type SedeUseCase struct {
	repo repository.SedeRepository
}

// NewSedeUseCase construye el caso de uso.
func NewSedeUseCase(repo repository.SedeRepository) *SedeUseCase {
	return &SedeUseCase{repo: repo}
}

// Crear da de alta una sede.
func (uc *SedeUseCase) Crear(ctx context.Context, in dto.CrearSedeRequest) (*dto.SedeResponse, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre es requerido", domain.ErrValidacion)
	}
	fhab, err := dto.ParseFechaOpcional(in.FechaHabilitacion)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidacion, err)
	}
	fper, err := dto.ParseFechaOpcional(in.FechaPermiso)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidacion, err)
	}
	estado := in.Estado
	if estado == "" {
		estado = "activa"
	}
	now := time.Now()
	s := &entity.Sede{
		ID:                uuid.New().String(),
		Nombre:            in.Nombre,
		Direccion:         in.Direccion,
		Localidad:         in.Localidad,
		Responsable:       in.Responsable,
		Estado:            estado,
		FechaHabilitacion: fhab,
		FechaPermiso:      fper,
		CreadoEn:          now,
		ActualizadoEn:     now,
	}
	if err := uc.repo.Crear(ctx, s); err != nil {
		return nil, err
	}
	return dto.ToSedeResponse(s), nil
}

// ObtenerPorID obtiene una sede por ID.
func (uc *SedeUseCase) ObtenerPorID(ctx context.Context, id string) (*dto.SedeResponse, error) {
	s, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return dto.ToSedeResponse(s), nil
}

// Listar lista sedes con filtro de texto y paginación.
func (uc *SedeUseCase) Listar(ctx context.Context, filtro string, page dto.PageRequest) (*dto.ListaSedesResponse, error) {
	page.DefaultPage()
	lista, total, err := uc.repo.Listar(ctx, filtro, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.SedeResponse, 0, len(lista))
	for _, s := range lista {
		items = append(items, *dto.ToSedeResponse(s))
	}
	return &dto.ListaSedesResponse{
		Items: items,
		Page:  dto.NewPageResponse(total, page.Page, page.PageSize),
	}, nil
}

// Actualizar modifica una sede existente.
func (uc *SedeUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarSedeRequest) (*dto.SedeResponse, error) {
	s, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		s.Nombre = *in.Nombre
	}
	if in.Direccion != nil {
		s.Direccion = *in.Direccion
	}
	if in.Localidad != nil {
		s.Localidad = *in.Localidad
	}
	if in.Responsable != nil {
		s.Responsable = *in.Responsable
	}
	if in.Estado != nil {
		s.Estado = *in.Estado
	}
	if in.FechaHabilitacion != nil {
		f, err := dto.ParseFechaOpcional(*in.FechaHabilitacion)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidacion, err)
		}
		s.FechaHabilitacion = f
	}
	if in.FechaPermiso != nil {
		f, err := dto.ParseFechaOpcional(*in.FechaPermiso)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidacion, err)
		}
		s.FechaPermiso = f
	}
	s.ActualizadoEn = time.Now()
	if err := uc.repo.Actualizar(ctx, s); err != nil {
		return nil, err
	}
	return dto.ToSedeResponse(s), nil
}

// Eliminar borra una sede por ID.
func (uc *SedeUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.repo.Eliminar(ctx, id)
}
