// Package validation contiene las reglas puras de validación de campos del
// cliente. Ninguna función consulta el almacenamiento ni genera errores de
// unicidad: eso es responsabilidad del caso de uso.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/sistemacliente/clientes-api/internal/domain"
)

// EmailRegex es la gramática de e-mail compartida por la validación de
// entrada y por el merge-patch: local-part con letras/dígitos/_+&*- separada
// por puntos simples, dominio con etiquetas separadas por punto y TLD de
// 2 a 7 letras.
var EmailRegex = regexp.MustCompile(`^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`)

// cpfRegex: exactamente 11 dígitos ASCII, sin puntos ni guión.
var cpfRegex = regexp.MustCompile(`^\d{11}$`)

const (
	nomeMin = 3
	nomeMax = 60
)

// ValidateNome verifica que el nombre no sea vacío y tenga entre 3 y 60
// caracteres.
func ValidateNome(nome string) error {
	trimmed := strings.TrimSpace(nome)
	n := utf8.RuneCountInString(trimmed)
	if n < nomeMin || n > nomeMax {
		return domain.ArgumentoInvalido("Nome deve ter entre 3 e 60 caracteres, não pode ser nulo ou vazio.")
	}
	return nil
}

// ValidateEmail verifica que el e-mail no sea vacío y cumpla EmailRegex.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" || !EmailRegex.MatchString(email) {
		return domain.ArgumentoInvalido("Formato inválido do e-mail.")
	}
	return nil
}

// ValidateCPF verifica que el CPF tenga exactamente 11 dígitos.
func ValidateCPF(cpf string) error {
	if strings.TrimSpace(cpf) == "" || !cpfRegex.MatchString(cpf) {
		return domain.ArgumentoInvalido("Digite os 11 dígitos do CPF sem ponto e hífen.")
	}
	return nil
}
