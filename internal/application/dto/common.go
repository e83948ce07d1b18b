package dto

import "github.com/sistemacliente/clientes-api/internal/domain/entity"

// ClientePage página de resultados. Las claves JSON reproducen el sobre de
// página de la API original (content, totalElements, totalPages, number, size).
type ClientePage struct {
	Content       []*ClienteResponse `json:"content"`
	TotalElements int64              `json:"totalElements"`
	TotalPages    int                `json:"totalPages"`
	Number        int                `json:"number"`
	Size          int                `json:"size"`
}

// NewClientePage arma la página con sus metadatos.
func NewClientePage(list []*entity.Cliente, total int64, pagina, itens int) *ClientePage {
	totalPages := int(total) / itens
	if int(total)%itens != 0 {
		totalPages++
	}
	return &ClientePage{
		Content:       NewClienteResponseList(list),
		TotalElements: total,
		TotalPages:    totalPages,
		Number:        pagina,
		Size:          itens,
	}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
