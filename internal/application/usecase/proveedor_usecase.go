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

// ProveedorUseCase casos de uso CRUD para proveedores.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Crear da de alta un proveedor. El CUIT es único.
func (uc *ProveedorUseCase) Crear(ctx context.Context, in dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.CUIT == "" || in.RazonSocial == "" {
		return nil, fmt.Errorf("%w: cuit y razon_social son requeridos", domain.ErrValidacion)
	}
	fcon, err := dto.ParseFechaOpcional(in.FechaContrato)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidacion, err)
	}
	existente, _ := uc.repo.ObtenerPorCUIT(ctx, in.CUIT)
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	estado := in.Estado
	if estado == "" {
		estado = "activo"
	}
	now := time.Now()
	p := &entity.Proveedor{
		ID:            uuid.New().String(),
		CUIT:          in.CUIT,
		RazonSocial:   in.RazonSocial,
		Rubro:         in.Rubro,
		Contacto:      in.Contacto,
		Email:         in.Email,
		Telefono:      in.Telefono,
		Estado:        estado,
		FechaContrato: fcon,
		MontoContrato: in.MontoContrato,
		CreadoEn:      now,
		ActualizadoEn: now,
	}
	if err := uc.repo.Crear(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToProveedorResponse(p), nil
}

// ObtenerPorID obtiene un proveedor por ID.
func (uc *ProveedorUseCase) ObtenerPorID(ctx context.Context, id string) (*dto.ProveedorResponse, error) {
	p, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return dto.ToProveedorResponse(p), nil
}

// Listar lista proveedores con filtro de texto y paginación.
func (uc *ProveedorUseCase) Listar(ctx context.Context, filtro string, page dto.PageRequest) (*dto.ListaProveedoresResponse, error) {
	page.DefaultPage()
	lista, total, err := uc.repo.Listar(ctx, filtro, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProveedorResponse, 0, len(lista))
	for _, p := range lista {
		items = append(items, *dto.ToProveedorResponse(p))
	}
	return &dto.ListaProveedoresResponse{
		Items: items,
		Page:  dto.NewPageResponse(total, page.Page, page.PageSize),
	}, nil
}

// Actualizar modifica un proveedor existente. El CUIT no se edita.
func (uc *ProveedorUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	p, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.RazonSocial != nil {
		p.RazonSocial = *in.RazonSocial
	}
	if in.Rubro != nil {
		p.Rubro = *in.Rubro
	}
	if in.Contacto != nil {
		p.Contacto = *in.Contacto
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Telefono != nil {
		p.Telefono = *in.Telefono
	}
	if in.Estado != nil {
		p.Estado = *in.Estado
	}
	if in.FechaContrato != nil {
		f, err := dto.ParseFechaOpcional(*in.FechaContrato)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidacion, err)
		}
		p.FechaContrato = f
	}
	if in.MontoContrato != nil {
		p.MontoContrato = *in.MontoContrato
	}
	p.ActualizadoEn = time.Now()
	if err := uc.repo.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToProveedorResponse(p), nil
}

// Eliminar borra un proveedor por ID.
func (uc *ProveedorUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.repo.Eliminar(ctx, id)
}
