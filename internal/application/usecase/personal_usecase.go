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

// PersonalUseCase casos de uso CRUD e importación masiva para el personal.
type PersonalUseCase struct {
	repo repository.PersonalRepository
	tx   ImportTxRunner
}

// NewPersonalUseCase construye el caso de uso.
func NewPersonalUseCase(repo repository.PersonalRepository, tx ImportTxRunner) *PersonalUseCase {
	return &PersonalUseCase{repo: repo, tx: tx}
}

func personalDesdeRequest(in dto.CrearPersonalRequest) (*entity.Personal, error) {
	if in.Legajo == "" || in.Apellido == "" {
		return nil, fmt.Errorf("%w: legajo y apellido son requeridos", domain.ErrValidacion)
	}
	flic, err := dto.ParseFechaOpcional(in.FechaLicencia)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidacion, err)
	}
	fcar, err := dto.ParseFechaOpcional(in.FechaCarnet)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidacion, err)
	}
	estado := in.Estado
	if estado == "" {
		estado = "activo"
	}
	now := time.Now()
	return &entity.Personal{
		ID:            uuid.New().String(),
		Legajo:        in.Legajo,
		Nombre:        in.Nombre,
		Apellido:      in.Apellido,
		DNI:           in.DNI,
		Puesto:        in.Puesto,
		Estado:        estado,
		FechaLicencia: flic,
		FechaCarnet:   fcar,
		CreadoEn:      now,
		ActualizadoEn: now,
	}, nil
}

// Crear da de alta un empleado. El legajo es único.
func (uc *PersonalUseCase) Crear(ctx context.Context, in dto.CrearPersonalRequest) (*dto.PersonalResponse, error) {
	p, err := personalDesdeRequest(in)
	if err != nil {
		return nil, err
	}
	existente, _ := uc.repo.ObtenerPorLegajo(ctx, p.Legajo)
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	if err := uc.repo.Crear(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToPersonalResponse(p), nil
}

// ObtenerPorID obtiene un empleado por ID.
func (uc *PersonalUseCase) ObtenerPorID(ctx context.Context, id string) (*dto.PersonalResponse, error) {
	p, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return dto.ToPersonalResponse(p), nil
}

// Listar lista personal con filtro de texto y paginación.
func (uc *PersonalUseCase) Listar(ctx context.Context, filtro string, page dto.PageRequest) (*dto.ListaPersonalResponse, error) {
	page.DefaultPage()
	lista, total, err := uc.repo.Listar(ctx, filtro, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.PersonalResponse, 0, len(lista))
	for _, p := range lista {
		items = append(items, *dto.ToPersonalResponse(p))
	}
	return &dto.ListaPersonalResponse{
		Items: items,
		Page:  dto.NewPageResponse(total, page.Page, page.PageSize),
	}, nil
}

// Actualizar modifica un empleado existente. El legajo no se edita.
func (uc *PersonalUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarPersonalRequest) (*dto.PersonalResponse, error) {
	p, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Apellido != nil {
		p.Apellido = *in.Apellido
	}
	if in.DNI != nil {
		p.DNI = *in.DNI
	}
	if in.Puesto != nil {
		p.Puesto = *in.Puesto
	}
	if in.Estado != nil {
		p.Estado = *in.Estado
	}
	if in.FechaLicencia != nil {
		f, err := dto.ParseFechaOpcional(*in.FechaLicencia)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidacion, err)
		}
		p.FechaLicencia = f
	}
	if in.FechaCarnet != nil {
		f, err := dto.ParseFechaOpcional(*in.FechaCarnet)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidacion, err)
		}
		p.FechaCarnet = f
	}
	p.ActualizadoEn = time.Now()
	if err := uc.repo.Actualizar(ctx, p); err != nil {
		return nil, err
	}
	return dto.ToPersonalResponse(p), nil
}

// Eliminar borra un empleado por ID.
func (uc *PersonalUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.repo.Eliminar(ctx, id)
}

// Importar alta masiva best-effort: una transacción por fila, errores acumulados.
func (uc *PersonalUseCase) Importar(ctx context.Context, filas []dto.CrearPersonalRequest) (*dto.ImportarResultado, error) {
	res := &dto.ImportarResultado{Errores: []dto.ErrorDeFila{}}
	for i, fila := range filas {
		p, err := personalDesdeRequest(fila)
		if err != nil {
			res.Errores = append(res.Errores, dto.ErrorDeFila{Fila: i + 1, Mensaje: err.Error()})
			continue
		}
		err = uc.tx.Run(ctx, func(_ repository.VehiculoRepository, perRepo repository.PersonalRepository) error {
			return perRepo.Crear(ctx, p)
		})
		if err != nil {
			res.Errores = append(res.Errores, dto.ErrorDeFila{Fila: i + 1, Mensaje: err.Error()})
			continue
		}
		res.Insertados++
	}
	return res, nil
}
