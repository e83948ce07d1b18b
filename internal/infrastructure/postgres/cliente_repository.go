package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sistemacliente/clientes-api/internal/domain/entity"
	"github.com/sistemacliente/clientes-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteColumns = "id, nome, email, cpf, created_at, updated_at"

// ClienteRepo implementación de ClienteRepository sobre pgx (pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create inserta el cliente; la secuencia de la tabla asigna el id.
func (r *ClienteRepo) Create(cliente *entity.Cliente) (*entity.Cliente, error) {
	query := `
		INSERT INTO cliente (nome, email, cpf, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		cliente.Nome, cliente.Email, cliente.CPF, cliente.CreatedAt, cliente.UpdatedAt,
	).Scan(&cliente.ID)
	if err != nil {
		if mapped := mapUniqueViolation(err, cliente.CPF); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("insert cliente: %w", err)
	}
	return cliente, nil
}

// GetByID obtiene un cliente por id. (nil, nil) si no existe.
func (r *ClienteRepo) GetByID(id int64) (*entity.Cliente, error) {
	return r.getOne(`SELECT `+clienteColumns+` FROM cliente WHERE id = $1`, id)
}

// GetByCPF obtiene un cliente por CPF exacto. (nil, nil) si no existe.
func (r *ClienteRepo) GetByCPF(cpf string) (*entity.Cliente, error) {
	return r.getOne(`SELECT `+clienteColumns+` FROM cliente WHERE cpf = $1`, cpf)
}

// GetByEmail obtiene un cliente por e-mail exacto (sensible a mayúsculas,
// es el chequeo de unicidad). (nil, nil) si no existe.
func (r *ClienteRepo) GetByEmail(email string) (*entity.Cliente, error) {
	return r.getOne(`SELECT `+clienteColumns+` FROM cliente WHERE email = $1`, email)
}

func (r *ClienteRepo) getOne(query string, arg any) (*entity.Cliente, error) {
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Nome, &c.Email, &c.CPF, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List devuelve todos los clientes en orden de inserción.
func (r *ClienteRepo) List() ([]*entity.Cliente, error) {
	query := `SELECT ` + clienteColumns + ` FROM cliente ORDER BY id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return scanClientes(rows)
}

// ListPage lista paginada. ordenadoPor llega validado por el caso de uso;
// el desempate es siempre id ascendente (orden de inserción).
func (r *ClienteRepo) ListPage(pagina, itens int, ordenadoPor string) ([]*entity.Cliente, int64, error) {
	var total int64
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM cliente`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count clientes: %w", err)
	}
	query := `SELECT ` + clienteColumns + ` FROM cliente ` + orderBy(ordenadoPor) + ` LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, itens, pagina*itens)
	if err != nil {
		return nil, 0, fmt.Errorf("list page clientes: %w", err)
	}
	list, err := scanClientes(rows)
	return list, total, err
}

// SearchByNome busca por fragmento de nombre, case-insensitive.
func (r *ClienteRepo) SearchByNome(nome string, pagina, itens int) ([]*entity.Cliente, int64, error) {
	var total int64
	count := `SELECT COUNT(*) FROM cliente WHERE nome ILIKE $1 ESCAPE '\'`
	if err := r.q.QueryRow(context.Background(), count, likePattern(nome)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count por nome: %w", err)
	}
	query := `
		SELECT ` + clienteColumns + ` FROM cliente
		WHERE nome ILIKE $1 ESCAPE '\'
		ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, likePattern(nome), itens, pagina*itens)
	if err != nil {
		return nil, 0, fmt.Errorf("search por nome: %w", err)
	}
	list, err := scanClientes(rows)
	return list, total, err
}

// SearchByEmail busca por fragmento de e-mail, case-insensitive, con orden
// opcional.
func (r *ClienteRepo) SearchByEmail(email string, pagina, itens int, ordenadoPor string) ([]*entity.Cliente, int64, error) {
	var total int64
	count := `SELECT COUNT(*) FROM cliente WHERE email ILIKE $1 ESCAPE '\'`
	if err := r.q.QueryRow(context.Background(), count, likePattern(email)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count por email: %w", err)
	}
	query := `
		SELECT ` + clienteColumns + ` FROM cliente
		WHERE email ILIKE $1 ESCAPE '\'
		` + orderBy(ordenadoPor) + ` LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, likePattern(email), itens, pagina*itens)
	if err != nil {
		return nil, 0, fmt.Errorf("search por email: %w", err)
	}
	list, err := scanClientes(rows)
	return list, total, err
}

// Update reemplaza nome y email. El CPF nunca se actualiza: la inmutabilidad
// la garantiza el caso de uso y la columna queda fuera del SET.
func (r *ClienteRepo) Update(cliente *entity.Cliente) error {
	query := `
		UPDATE cliente SET nome = $2, email = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cliente.ID, cliente.Nome, cliente.Email, cliente.UpdatedAt,
	)
	if err != nil {
		if mapped := mapUniqueViolation(err, cliente.CPF); mapped != nil {
			return mapped
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	return nil
}

// Delete elimina un cliente por id.
func (r *ClienteRepo) Delete(id int64) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM cliente WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete cliente: %w", err)
	}
	return nil
}

// orderBy arma la cláusula ORDER BY. Solo concatena columnas del conjunto
// cerrado {nome, email, cpf}; cualquier otro valor (el caso de uso ya los
// rechazó) cae al orden de inserción.
func orderBy(ordenadoPor string) string {
	switch ordenadoPor {
	case "nome", "email", "cpf":
		return `ORDER BY ` + ordenadoPor + ` ASC, id ASC`
	}
	return `ORDER BY id`
}

func scanClientes(rows pgx.Rows) ([]*entity.Cliente, error) {
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nome, &c.Email, &c.CPF, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
