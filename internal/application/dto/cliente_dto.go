package dto

import "github.com/sistemacliente/clientes-api/internal/domain/entity"

// ClienteRequest cuerpo de creación (POST /salvarcliente) y de actualización
// completa (PUT /clientes/{id}).
type ClienteRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

// ClienteResponse representación pública del cliente. No expone timestamps.
type ClienteResponse struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	CPF   string `json:"cpf"`
}

// NewClienteResponse construye la respuesta desde la entidad.
func NewClienteResponse(c *entity.Cliente) *ClienteResponse {
	return &ClienteResponse{
		ID:    c.ID,
		Nome:  c.Nome,
		Email: c.Email,
		CPF:   c.CPF,
	}
}

// NewClienteResponseList mapea una lista de entidades.
func NewClienteResponseList(list []*entity.Cliente) []*ClienteResponse {
	out := make([]*ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, NewClienteResponse(c))
	}
	return out
}
