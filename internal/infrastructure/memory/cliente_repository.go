// Package memory implementa ClienteRepository en memoria, con la misma
// semántica que el adaptador PostgreSQL (ausencia = (nil, nil), unicidad
// por cpf/email, orden de inserción por id). Se usa en los tests unitarios
// del caso de uso y de los handlers.
package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/sistemacliente/clientes-api/internal/domain"
	"github.com/sistemacliente/clientes-api/internal/domain/entity"
	"github.com/sistemacliente/clientes-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo almacenamiento en memoria protegido por mutex.
type ClienteRepo struct {
	mu       sync.Mutex
	nextID   int64
	clientes map[int64]*entity.Cliente
}

// NewClienteRepository construye el repositorio vacío.
func NewClienteRepository() *ClienteRepo {
	return &ClienteRepo{
		nextID:   1,
		clientes: make(map[int64]*entity.Cliente),
	}
}

// Create asigna el id secuencial y guarda una copia. Replica el rol de los
// índices únicos: cpf o email repetidos fallan aunque el pre-chequeo del
// caso de uso no los haya visto.
func (r *ClienteRepo) Create(cliente *entity.Cliente) (*entity.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.clientes {
		if c.CPF == cliente.CPF {
			return nil, domain.CpfJaCadastrado(cliente.CPF)
		}
		if c.Email == cliente.Email {
			return nil, domain.ErrEmailJaCadastrado
		}
	}
	cliente.ID = r.nextID
	r.nextID++
	stored := *cliente
	r.clientes[stored.ID] = &stored
	return cliente, nil
}

// GetByID devuelve una copia o (nil, nil).
func (r *ClienteRepo) GetByID(id int64) (*entity.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.clientes[id]; ok {
		copia := *c
		return &copia, nil
	}
	return nil, nil
}

// GetByCPF busca por CPF exacto.
func (r *ClienteRepo) GetByCPF(cpf string) (*entity.Cliente, error) {
	return r.find(func(c *entity.Cliente) bool { return c.CPF == cpf })
}

// GetByEmail busca por e-mail exacto (sensible a mayúsculas).
func (r *ClienteRepo) GetByEmail(email string) (*entity.Cliente, error) {
	return r.find(func(c *entity.Cliente) bool { return c.Email == email })
}

func (r *ClienteRepo) find(match func(*entity.Cliente) bool) (*entity.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.sortedLocked("") {
		if match(c) {
			copia := *c
			return &copia, nil
		}
	}
	return nil, nil
}

// List devuelve todos los clientes en orden de inserción.
func (r *ClienteRepo) List() ([]*entity.Cliente, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyAll(r.sortedLocked("")), nil
}

// ListPage lista paginada con orden opcional.
func (r *ClienteRepo) ListPage(pagina, itens int, ordenadoPor string) ([]*entity.Cliente, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.sortedLocked(ordenadoPor)
	return page(copyAll(all), pagina, itens), int64(len(all)), nil
}

// SearchByNome fragmento de nombre, case-insensitive.
func (r *ClienteRepo) SearchByNome(nome string, pagina, itens int) ([]*entity.Cliente, int64, error) {
	return r.searchPaged(nome, "", pagina, itens, func(c *entity.Cliente) string { return c.Nome })
}

// SearchByEmail fragmento de e-mail, case-insensitive, con orden opcional.
func (r *ClienteRepo) SearchByEmail(email string, pagina, itens int, ordenadoPor string) ([]*entity.Cliente, int64, error) {
	return r.searchPaged(email, ordenadoPor, pagina, itens, func(c *entity.Cliente) string { return c.Email })
}

func (r *ClienteRepo) searchPaged(fragment, ordenadoPor string, pagina, itens int, field func(*entity.Cliente) string) ([]*entity.Cliente, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	needle := strings.ToLower(fragment)
	var matched []*entity.Cliente
	for _, c := range r.sortedLocked(ordenadoPor) {
		if strings.Contains(strings.ToLower(field(c)), needle) {
			matched = append(matched, c)
		}
	}
	return page(copyAll(matched), pagina, itens), int64(len(matched)), nil
}

// Update reemplaza los campos mutables del registro existente.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.clientes[cliente.ID]
	if !ok {
		return domain.ClienteNaoEncontradoPorID(cliente.ID)
	}
	for _, c := range r.clientes {
		if c.ID != cliente.ID && c.Email == cliente.Email {
			return domain.ErrEmailJaCadastrado
		}
	}
	stored.Nome = cliente.Nome
	stored.Email = cliente.Email
	stored.UpdatedAt = cliente.UpdatedAt
	return nil
}

// Delete elimina por id.
func (r *ClienteRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clientes, id)
	return nil
}

// sortedLocked devuelve los clientes ordenados por el campo pedido, con
// desempate por id (orden de inserción). Requiere el mutex tomado.
func (r *ClienteRepo) sortedLocked(ordenadoPor string) []*entity.Cliente {
	all := make([]*entity.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool {
		var a, b string
		switch ordenadoPor {
		case "nome":
			a, b = all[i].Nome, all[j].Nome
		case "email":
			a, b = all[i].Email, all[j].Email
		case "cpf":
			a, b = all[i].CPF, all[j].CPF
		}
		if a != b {
			return a < b
		}
		return all[i].ID < all[j].ID
	})
	return all
}

func page(list []*entity.Cliente, pagina, itens int) []*entity.Cliente {
	start := pagina * itens
	if start >= len(list) {
		return nil
	}
	end := start + itens
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

func copyAll(list []*entity.Cliente) []*entity.Cliente {
	out := make([]*entity.Cliente, 0, len(list))
	for _, c := range list {
		copia := *c
		out = append(out, &copia)
	}
	return out
}
