package document

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Documentos-api/internal/domain"
)

// ParseAmount convierte la entrada del usuario en un decimal no negativo.
// Cadena vacía equivale a limpiar el campo numérico y devuelve cero. Entrada
// no numérica o negativa retorna error envolviendo domain.ErrInvalidInput: el
// valor inválido se rechaza de forma explícita en lugar de sustituirse por 0
// en silencio, y el valor almacenado nunca llega a ser NaN ni negativo.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}
	// Tolerar coma decimal (entrada habitual con teclado ruso/europeo).
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q no es un número", domain.ErrInvalidInput, raw)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q es negativo", domain.ErrInvalidInput, raw)
	}
	return d, nil
}
