package dto

// APIResponse sobre estándar de todas las respuestas de la API.
// Warnings transporta fallas parciales no fatales (ej: una fuente de
// vencimientos caída durante la agregación).
type APIResponse struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Data     any      `json:"data"`
	Warnings []string `json:"warnings,omitempty"`
}

// PageRequest paginación 1-based para listados.
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

// DefaultPage aplica valores por defecto y cotas.
func (p *PageRequest) DefaultPage() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

// Offset convierte página 1-based a offset de filas.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PageResponse metadatos de página en respuestas de listado.
type PageResponse struct {
	TotalCount  int `json:"total_count"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}

// NewPageResponse calcula los metadatos a partir del total filtrado (pre-paginación).
func NewPageResponse(total, page, pageSize int) PageResponse {
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return PageResponse{
		TotalCount:  total,
		TotalPages:  pages,
		CurrentPage: page,
		PageSize:    pageSize,
	}
}

// ErrorResponse cuerpo de error HTTP (se envía dentro de APIResponse.Data).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
