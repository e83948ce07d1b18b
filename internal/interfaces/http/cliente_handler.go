package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/sistemacliente/clientes-api/internal/application/dto"
	"github.com/sistemacliente/clientes-api/internal/application/usecase"
	"github.com/sistemacliente/clientes-api/internal/domain"
)

// ClienteHandler maneja las peticiones HTTP de clientes.
type ClienteHandler struct {
	uc *usecase.ClienteUseCase
}

// NewClienteHandler construye el handler.
func NewClienteHandler(uc *usecase.ClienteUseCase) *ClienteHandler {
	return &ClienteHandler{uc: uc}
}

// List GET /listarclientes
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(list)
}

// Create POST /salvarcliente
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Corpo da requisição inválido."})
	}
	cliente, err := h.uc.Create(in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// GetByID GET /encontrarcliente/{id}
func (h *ClienteHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorResponse(c, err)
	}
	cliente, err := h.uc.GetByID(id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(cliente)
}

// GetByCPF GET /clientecpf/{cpf}
func (h *ClienteHandler) GetByCPF(c *fiber.Ctx) error {
	cliente, err := h.uc.GetByCPF(c.Params("cpf"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(cliente)
}

// Delete DELETE /deletarporid/{id}
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorResponse(c, err)
	}
	if err := h.uc.Delete(id); err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Update PUT /clientes/{id}
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorResponse(c, err)
	}
	var in dto.ClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Corpo da requisição inválido."})
	}
	cliente, err := h.uc.Update(id, in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(cliente)
}

// PartialUpdate PATCH /parcial/{id} (cuerpo: mapa campo → valor)
func (h *ClienteHandler) PartialUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorResponse(c, err)
	}
	var patch map[string]any
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Corpo da requisição inválido."})
	}
	cliente, err := h.uc.PartialUpdate(id, patch)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(cliente)
}

// UpdateEmail PATCH /atualizaremail/{id}?email=
func (h *ClienteHandler) UpdateEmail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return errorResponse(c, err)
	}
	cliente, err := h.uc.UpdateEmail(id, c.Query("email"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(cliente)
}

// ListPage GET /paginada?pagina&itens
func (h *ClienteHandler) ListPage(c *fiber.Ctx) error {
	pagina, itens, err := paging(c)
	if err != nil {
		return errorResponse(c, err)
	}
	page, err := h.uc.ListPage(pagina, itens)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(page)
}

// ListPageSorted GET /paginadaordem?pagina&itens&ordenadoPor
func (h *ClienteHandler) ListPageSorted(c *fiber.Ctx) error {
	pagina, itens, err := paging(c)
	if err != nil {
		return errorResponse(c, err)
	}
	page, err := h.uc.ListPageSorted(pagina, itens, c.Query("ordenadoPor"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(page)
}

// SearchByNome GET /buscapornome?nome&pagina&itens
func (h *ClienteHandler) SearchByNome(c *fiber.Ctx) error {
	pagina, itens, err := paging(c)
	if err != nil {
		return errorResponse(c, err)
	}
	page, err := h.uc.SearchByNome(c.Query("nome"), pagina, itens)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(page)
}

// SearchByEmail GET /buscaemail?email&pagina&itens
func (h *ClienteHandler) SearchByEmail(c *fiber.Ctx) error {
	pagina, itens, err := paging(c)
	if err != nil {
		return errorResponse(c, err)
	}
	page, err := h.uc.SearchByEmail(c.Query("email"), pagina, itens, "")
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(page)
}

// SearchByEmailSorted GET /buscarporemail?email&pagina&itens&ordenadoPor
func (h *ClienteHandler) SearchByEmailSorted(c *fiber.Ctx) error {
	pagina, itens, err := paging(c)
	if err != nil {
		return errorResponse(c, err)
	}
	page, err := h.uc.SearchByEmail(c.Query("email"), pagina, itens, c.Query("ordenadoPor"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(page)
}

// parseID lee el path param id como int64.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, domain.ArgumentoInvalido("O id informado é inválido.")
	}
	return id, nil
}

// paging lee pagina e itens con los defaults de la API original. Valores no
// numéricos son 400; los fuera de rango los rechaza el caso de uso.
func paging(c *fiber.Ctx) (int, int, error) {
	pagina, err := queryInt(c, "pagina", 0)
	if err != nil {
		return 0, 0, err
	}
	itens, err := queryInt(c, "itens", 10)
	if err != nil {
		return 0, 0, err
	}
	return pagina, itens, nil
}

// queryInt parsea un query param entero; ausente cae al default, no numérico
// es argumento inválido.
func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ArgumentoInvalido("O parâmetro " + key + " deve ser um número inteiro.")
	}
	return v, nil
}

// errorResponse traduce la taxonomía de errores de dominio a estados HTTP.
// Cualquier error no clasificado es un 500 con mensaje genérico: la causa
// se registra pero no se expone al llamador.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrArgumentoInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: domain.Mensagem(err)})
	case errors.Is(err, domain.ErrClienteNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: domain.Mensagem(err)})
	case errors.Is(err, domain.ErrCpfJaCadastrado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CPF_DUPLICADO", Message: domain.Mensagem(err)})
	case errors.Is(err, domain.ErrEmailJaCadastrado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_DUPLICADO", Message: err.Error()})
	case errors.Is(err, domain.ErrAlteracaoDeCpf):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CPF_IMUTAVEL", Message: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("erro interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Erro interno no servidor."})
	}
}
