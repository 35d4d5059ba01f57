package document

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Documentos-api/internal/domain"
	"github.com/jhoicas/Documentos-api/internal/domain/entity"
)

// Campos editables de un ítem (valores que acepta UpdateItem).
const (
	ItemFieldName        = "name"
	ItemFieldDescription = "description"
	ItemFieldCategory    = "category"
	ItemFieldUnit        = "unit"
	ItemFieldQuantity    = "quantity"
	ItemFieldPrice       = "price"
)

// NewSeedItems la lista inicial de una sesión: un único ítem con id 1,
// cantidad 1 y precio 0. La lista nunca queda vacía después.
func NewSeedItems() []entity.LineItem {
	return []entity.LineItem{newItem(1)}
}

func newItem(id int) entity.LineItem {
	return entity.LineItem{
		ID:       id,
		Unit:     entity.DefaultUnit,
		Quantity: decimal.NewFromInt(1),
		Price:    decimal.Zero,
	}
}

// NextItemID id monótono: max(ids existentes) + 1.
func NextItemID(items []entity.LineItem) int {
	max := 0
	for _, it := range items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}

// AppendItem agrega un ítem nuevo con valores por defecto y devuelve la lista
// resultante junto con el ítem creado.
func AppendItem(items []entity.LineItem) ([]entity.LineItem, entity.LineItem) {
	it := newItem(NextItemID(items))
	return append(items, it), it
}

// RemoveItem elimina el ítem con el id indicado. Es un no-op silencioso si el
// id no existe o si es el último ítem que queda: la lista nunca baja de uno.
func RemoveItem(items []entity.LineItem, id int) []entity.LineItem {
	if len(items) <= 1 {
		return items
	}
	for i, it := range items {
		if it.ID == id {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}

// UpdateItem reemplaza el campo indicado en el ítem con id coincidente.
// Si el id no existe es un no-op silencioso (ok=false, sin error). Cantidad y
// precio pasan por ParseAmount; la unidad se valida contra la lista cerrada.
func UpdateItem(items []entity.LineItem, id int, field, value string) (ok bool, err error) {
	idx := -1
	for i, it := range items {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false, nil
	}

	switch field {
	case ItemFieldName:
		items[idx].Name = value
	case ItemFieldDescription:
		items[idx].Description = value
	case ItemFieldCategory:
		items[idx].Category = value
	case ItemFieldUnit:
		if !entity.IsValidUnit(value) {
			return false, fmt.Errorf("%w: unidad %q no reconocida", domain.ErrInvalidInput, value)
		}
		items[idx].Unit = value
	case ItemFieldQuantity:
		d, perr := ParseAmount(value)
		if perr != nil {
			return false, perr
		}
		items[idx].Quantity = d
	case ItemFieldPrice:
		d, perr := ParseAmount(value)
		if perr != nil {
			return false, perr
		}
		items[idx].Price = d
	default:
		return false, fmt.Errorf("%w: campo de ítem %q", domain.ErrUnknownField, field)
	}
	return true, nil
}

// Total suma Quantity*Price sobre todos los ítems. Pura: se recalcula en cada
// lectura en vez de cachearse; la lista la llena una persona a mano y la
// exactitud importa más que el costo O(n).
func Total(items []entity.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.LineTotal())
	}
	return sum
}
