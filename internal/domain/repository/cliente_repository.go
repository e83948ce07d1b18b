package repository

import "github.com/sistemacliente/clientes-api/internal/domain/entity"

// ClienteRepository define el puerto de persistencia para Cliente.
// Los Get* devuelven (nil, nil) cuando no hay fila; el caso de uso traduce
// esa ausencia a ErrClienteNaoEncontrado. Las consultas paginadas devuelven
// además el total de filas que cumplen el filtro, para armar la página de
// respuesta. ordenadoPor llega ya validado contra la lista blanca de campos;
// vacío significa orden de inserción (id ascendente).
type ClienteRepository interface {
	Create(cliente *entity.Cliente) (*entity.Cliente, error)
	GetByID(id int64) (*entity.Cliente, error)
	GetByCPF(cpf string) (*entity.Cliente, error)
	GetByEmail(email string) (*entity.Cliente, error)
	List() ([]*entity.Cliente, error)
	ListPage(pagina, itens int, ordenadoPor string) ([]*entity.Cliente, int64, error)
	SearchByNome(nome string, pagina, itens int) ([]*entity.Cliente, int64, error)
	SearchByEmail(email string, pagina, itens int, ordenadoPor string) ([]*entity.Cliente, int64, error)
	Update(cliente *entity.Cliente) error
	Delete(id int64) error
}
