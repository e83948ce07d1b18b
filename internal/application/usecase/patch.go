package usecase

import (
	"strings"

	"github.com/sistemacliente/clientes-api/internal/domain"
	"github.com/sistemacliente/clientes-api/internal/domain/entity"
	"github.com/sistemacliente/clientes-api/internal/domain/validation"
)

// ApplyPatch aplica un merge-patch sobre una copia del cliente: solo los
// campos presentes en el mapa cambian, los ausentes conservan su valor.
// El conjunto de claves permitidas es explícito (nome, email); cualquier
// otra clave se rechaza. id y cpf/taxId se rechazan por su sola presencia,
// sin importar el valor. La función es pura: nunca consulta el
// almacenamiento, la unicidad del e-mail la verifica el caso de uso.
func ApplyPatch(base entity.Cliente, patch map[string]any) (entity.Cliente, error) {
	if _, ok := patch["id"]; ok {
		return base, domain.ArgumentoInvalido("O campo id não pode ser alterado.")
	}
	if _, ok := patch["cpf"]; ok {
		return base, domain.ErrAlteracaoDeCpf
	}
	if _, ok := patch["taxId"]; ok {
		return base, domain.ErrAlteracaoDeCpf
	}
	for key := range patch {
		if key != "nome" && key != "email" {
			return base, domain.ArgumentoInvalido("O campo " + key + " não é reconhecido.")
		}
	}
	if v, ok := patch["nome"]; ok {
		nome, ok := v.(string)
		if !ok || strings.TrimSpace(nome) == "" {
			return base, domain.ArgumentoInvalido("Nome não pode ser vazio.")
		}
		base.Nome = nome
	}
	if v, ok := patch["email"]; ok {
		email, ok := v.(string)
		if !ok || strings.TrimSpace(email) == "" {
			return base, domain.ArgumentoInvalido("E-mail não pode ser vazio.")
		}
		if !validation.EmailRegex.MatchString(email) {
			return base, domain.ArgumentoInvalido("O formato do email está incorreto.")
		}
		base.Email = email
	}
	return base, nil
}
