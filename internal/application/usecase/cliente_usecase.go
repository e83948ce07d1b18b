package usecase

import (
	"time"

	"github.com/sistemacliente/clientes-api/internal/application/dto"
	"github.com/sistemacliente/clientes-api/internal/domain"
	"github.com/sistemacliente/clientes-api/internal/domain/entity"
	"github.com/sistemacliente/clientes-api/internal/domain/repository"
	"github.com/sistemacliente/clientes-api/internal/domain/validation"
)

// sortColumns lista blanca de campos aceptados en ordenadoPor.
var sortColumns = map[string]bool{
	"id":    true,
	"nome":  true,
	"email": true,
	"cpf":   true,
}

// ClienteUseCase orquesta validación, unicidad, merge-patch y persistencia
// para todas las operaciones sobre Cliente.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// List devuelve todos los clientes. Lista vacía es éxito.
func (uc *ClienteUseCase) List() ([]*dto.ClienteResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return dto.NewClienteResponseList(list), nil
}

// Create valida los tres campos, verifica unicidad de CPF y e-mail y
// persiste. Ante cualquier fallo no se escribe nada; el id lo asigna la
// base de datos.
func (uc *ClienteUseCase) Create(in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	if err := validation.ValidateNome(in.Nome); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidateCPF(in.CPF); err != nil {
		return nil, err
	}
	if err := uc.checkCPFAvailable(in.CPF); err != nil {
		return nil, err
	}
	if err := uc.checkEmailAvailable(in.Email, 0); err != nil {
		return nil, err
	}
	now := time.Now()
	saved, err := uc.repo.Create(&entity.Cliente{
		Nome:      in.Nome,
		Email:     in.Email,
		CPF:       in.CPF,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	return dto.NewClienteResponse(saved), nil
}

// GetByID busca un cliente por id.
func (uc *ClienteUseCase) GetByID(id int64) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ClienteNaoEncontradoPorID(id)
	}
	return dto.NewClienteResponse(cliente), nil
}

// GetByCPF busca un cliente por CPF (coincidencia exacta).
func (uc *ClienteUseCase) GetByCPF(cpf string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByCPF(cpf)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ClienteNaoEncontradoPorCPF(cpf)
	}
	return dto.NewClienteResponse(cliente), nil
}

// Delete elimina un cliente existente por id.
func (uc *ClienteUseCase) Delete(id int64) error {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if cliente == nil {
		return domain.ClienteNaoEncontradoPorID(id)
	}
	return uc.repo.Delete(cliente.ID)
}

// Update reemplaza nome y email de un cliente existente. El CPF del cuerpo
// debe coincidir con el almacenado: el CPF es inmutable y la comparación se
// hace antes de validar cualquier otro campo.
func (uc *ClienteUseCase) Update(id int64, in dto.ClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ClienteNaoEncontradoPorID(id)
	}
	if in.CPF != cliente.CPF {
		return nil, domain.ErrAlteracaoDeCpf
	}
	if err := validation.ValidateNome(in.Nome); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := uc.checkEmailAvailable(in.Email, cliente.ID); err != nil {
		return nil, err
	}
	cliente.Nome = in.Nome
	cliente.Email = in.Email
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return dto.NewClienteResponse(cliente), nil
}

// PartialUpdate aplica un merge-patch sobre el cliente: solo cambian los
// campos presentes en el mapa. La unicidad del e-mail se verifica únicamente
// si el patch lo modifica, excluyendo al propio registro.
func (uc *ClienteUseCase) PartialUpdate(id int64, patch map[string]any) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ClienteNaoEncontradoPorID(id)
	}
	updated, err := ApplyPatch(*cliente, patch)
	if err != nil {
		return nil, err
	}
	if updated.Email != cliente.Email {
		if err := uc.checkEmailAvailable(updated.Email, cliente.ID); err != nil {
			return nil, err
		}
	}
	updated.UpdatedAt = time.Now()
	if err := uc.repo.Update(&updated); err != nil {
		return nil, err
	}
	return dto.NewClienteResponse(&updated), nil
}

// UpdateEmail reemplaza solo el e-mail. Repetir el e-mail actual del propio
// cliente no es conflicto: la operación es idempotente.
func (uc *ClienteUseCase) UpdateEmail(id int64, email string) (*dto.ClienteResponse, error) {
	cliente, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ClienteNaoEncontradoPorID(id)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := uc.checkEmailAvailable(email, cliente.ID); err != nil {
		return nil, err
	}
	cliente.Email = email
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return dto.NewClienteResponse(cliente), nil
}

// ListPage lista paginada sin orden explícito (id ascendente).
func (uc *ClienteUseCase) ListPage(pagina, itens int) (*dto.ClientePage, error) {
	return uc.ListPageSorted(pagina, itens, "")
}

// ListPageSorted lista paginada ordenada ascendentemente por ordenadoPor,
// con desempate por id.
func (uc *ClienteUseCase) ListPageSorted(pagina, itens int, ordenadoPor string) (*dto.ClientePage, error) {
	if err := validatePaging(pagina, itens); err != nil {
		return nil, err
	}
	if err := validateSortKey(ordenadoPor); err != nil {
		return nil, err
	}
	list, total, err := uc.repo.ListPage(pagina, itens, ordenadoPor)
	if err != nil {
		return nil, err
	}
	return dto.NewClientePage(list, total, pagina, itens), nil
}

// SearchByNome busca por fragmento de nombre, sin distinguir mayúsculas.
func (uc *ClienteUseCase) SearchByNome(nome string, pagina, itens int) (*dto.ClientePage, error) {
	if err := validatePaging(pagina, itens); err != nil {
		return nil, err
	}
	list, total, err := uc.repo.SearchByNome(nome, pagina, itens)
	if err != nil {
		return nil, err
	}
	return dto.NewClientePage(list, total, pagina, itens), nil
}

// SearchByEmail busca por fragmento de e-mail, sin distinguir mayúsculas.
// El fragmento debe ser un e-mail válido según la gramática compartida.
func (uc *ClienteUseCase) SearchByEmail(email string, pagina, itens int, ordenadoPor string) (*dto.ClientePage, error) {
	if err := validatePaging(pagina, itens); err != nil {
		return nil, err
	}
	if err := validateSortKey(ordenadoPor); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	list, total, err := uc.repo.SearchByEmail(email, pagina, itens, ordenadoPor)
	if err != nil {
		return nil, err
	}
	return dto.NewClientePage(list, total, pagina, itens), nil
}

// validatePaging exige pagina >= 0 e itens >= 1 antes de tocar el
// almacenamiento.
func validatePaging(pagina, itens int) error {
	if pagina < 0 {
		return domain.ArgumentoInvalido("Página não pode ser negativa.")
	}
	if itens < 1 {
		return domain.ArgumentoInvalido("Quantidade de itens deve ser no mínimo 1.")
	}
	return nil
}

// validateSortKey acepta vacío o un campo de la lista blanca.
func validateSortKey(ordenadoPor string) error {
	if ordenadoPor == "" || sortColumns[ordenadoPor] {
		return nil
	}
	return domain.ArgumentoInvalido("Campo de ordenação inválido: " + ordenadoPor)
}
