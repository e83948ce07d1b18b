package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sistemacliente/clientes-api/internal/domain"
)

// Querier abstrae pool o tx de pgx: lo mínimo que usan los repositorios.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// mapUniqueViolation traduce una violación de constraint único (23505) al
// error de dominio según el índice violado. Los índices únicos de la tabla
// cliente son el árbitro final de unicidad bajo concurrencia: el pre-chequeo
// del caso de uso es solo mejor esfuerzo.
func mapUniqueViolation(err error, cpf string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case "uq_cliente_cpf":
		return domain.CpfJaCadastrado(cpf)
	case "uq_cliente_email":
		return domain.ErrEmailJaCadastrado
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern arma el patrón de contención para ILIKE ... ESCAPE '\'.
// Los metacaracteres % y _ del fragmento se escapan: el fragmento se busca
// literal, igual que en el adaptador en memoria.
func likePattern(fragment string) string {
	return "%" + likeEscaper.Replace(fragment) + "%"
}
