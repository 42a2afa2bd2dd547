package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gescop/gescop-api/internal/application/dto"
	"github.com/gescop/gescop-api/internal/domain"
	"github.com/gescop/gescop-api/internal/domain/entity"
	"github.com/gescop/gescop-api/internal/domain/repository"
)

// VehiculoUseCase casos de uso CRUD e importación masiva para la flota.
type VehiculoUseCase struct {
	repo repository.VehiculoRepository
	tx   ImportTxRunner
}

// NewVehiculoUseCase construye el caso de uso.
func NewVehiculoUseCase(repo repository.VehiculoRepository, tx ImportTxRunner) *VehiculoUseCase {
	return &VehiculoUseCase{repo: repo, tx: tx}
}

func vehiculoDesdeRequest(in dto.CrearVehiculoRequest) (*entity.Vehiculo, error) {
	if in.Patente == "" {
		return nil, fmt.Errorf("%w: patente es requerida", domain.ErrValidacion)
	}
	fvtv, err := dto.ParseFechaOpcional(in.FechaVTV)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidacion, err)
	}
	fseg, err := dto.ParseFechaOpcional(in.FechaSeguro)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidacion, err)
	}
	fper, err := dto.ParseFechaOpcional(in.FechaPermiso)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidacion, err)
	}
	estado := in.Estado
	if estado == "" {
		estado = "activo"
	}
	now := time.Now()
	return &entity.Vehiculo{
		ID:            uuid.New().String(),
		Patente:       strings.ToUpper(strings.TrimSpace(in.Patente)),
		Marca:         in.Marca,
		Modelo:        in.Modelo,
		Anio:          in.Anio,
		Estado:        estado,
		FechaVTV:      fvtv,
		FechaSeguro:   fseg,
		FechaPermiso:  fper,
		Aseguradora:   in.Aseguradora,
		SumaAsegurada: in.SumaAsegurada,
		CreadoEn:      now,
		ActualizadoEn: now,
	}, nil
}

// Crear da de alta un vehículo. La patente es única.
func (uc *VehiculoUseCase) Crear(ctx context.Context, in dto.CrearVehiculoRequest) (*dto.VehiculoResponse, error) {
	v, err := vehiculoDesdeRequest(in)
	if err != nil {
		return nil, err
	}
	existente, _ := uc.repo.ObtenerPorPatente(ctx, v.Patente)
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	if err := uc.repo.Crear(ctx, v); err != nil {
		return nil, err
	}
	return dto.ToVehiculoResponse(v), nil
}

// ObtenerPorID obtiene un vehículo por ID.
func (uc *VehiculoUseCase) ObtenerPorID(ctx context.Context, id string) (*dto.VehiculoResponse, error) {
	v, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	return dto.ToVehiculoResponse(v), nil
}

// Listar lista vehículos con filtro de texto y paginación.
func (uc *VehiculoUseCase) Listar(ctx context.Context, filtro string, page dto.PageRequest) (*dto.ListaVehiculosResponse, error) {
	page.DefaultPage()
	lista, total, err := uc.repo.Listar(ctx, filtro, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	items := make([]dto.VehiculoResponse, 0, len(lista))
	for _, v := range lista {
		items = append(items, *dto.ToVehiculoResponse(v))
	}
	return &dto.ListaVehiculosResponse{
		Items: items,
		Page:  dto.NewPageResponse(total, page.Page, page.PageSize),
	}, nil
}

// Actualizar modifica un vehículo existente. La patente no se edita.
func (uc *VehiculoUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarVehiculoRequest) (*dto.VehiculoResponse, error) {
	v, err := uc.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	if in.Marca != nil {
		v.Marca = *in.Marca
	}
	if in.Modelo != nil {
		v.Modelo = *in.Modelo
	}
	if in.Anio != nil {
		v.Anio = *in.Anio
	}
	if in.Estado != nil {
		v.Estado = *in.Estado
	}
	if in.FechaVTV != nil {
		f, err := dto.ParseFechaOpcional(*in.FechaVTV)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidacion, err)
		}
		v.FechaVTV = f
	}
	if in.FechaSeguro != nil {
		f, err := dto.ParseFechaOpcional(*in.FechaSeguro)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidacion, err)
		}
		v.FechaSeguro = f
	}
	if in.FechaPermiso != nil {
		f, err := dto.ParseFechaOpcional(*in.FechaPermiso)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrValidacion, err)
		}
		v.FechaPermiso = f
	}
	if in.Aseguradora != nil {
		v.Aseguradora = *in.Aseguradora
	}
	if in.SumaAsegurada != nil {
		v.SumaAsegurada = *in.SumaAsegurada
	}
	v.ActualizadoEn = time.Now()
	if err := uc.repo.Actualizar(ctx, v); err != nil {
		return nil, err
	}
	return dto.ToVehiculoResponse(v), nil
}

// Eliminar borra un vehículo por ID.
func (uc *VehiculoUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.repo.Eliminar(ctx, id)
}

// Importar alta masiva best-effort: cada fila va en su propia transacción y
// los errores se acumulan por fila en vez de abortar el lote completo.
func (uc *VehiculoUseCase) Importar(ctx context.Context, filas []dto.CrearVehiculoRequest) (*dto.ImportarResultado, error) {
	res := &dto.ImportarResultado{Errores: []dto.ErrorDeFila{}}
	for i, fila := range filas {
		v, err := vehiculoDesdeRequest(fila)
		if err != nil {
			res.Errores = append(res.Errores, dto.ErrorDeFila{Fila: i + 1, Mensaje: err.Error()})
			continue
		}
		err = uc.tx.Run(ctx, func(vehRepo repository.VehiculoRepository, _ repository.PersonalRepository) error {
			return vehRepo.Crear(ctx, v)
		})
		if err != nil {
			res.Errores = append(res.Errores, dto.ErrorDeFila{Fila: i + 1, Mensaje: err.Error()})
			continue
		}
		res.Insertados++
	}
	return res, nil
}
