package entity

import "github.com/shopspring/decimal"

// DocumentType discrimina qué secciones del formulario y qué columnas de los
// ítems están activas. El backend de render reconoce exactamente estos tres valores.
type DocumentType string

const (
	TypePricelist DocumentType = "pricelist" // Lista de precios
	TypeInvoice   DocumentType = "invoice"   // Cuenta de cobro / factura simple
	TypeContract  DocumentType = "contract"  // Contrato (los ítems actúan como objeto del contrato)
)

// IsValidDocumentType valida el discriminador recibido por la API.
func IsValidDocumentType(t DocumentType) bool {
	switch t {
	case TypePricelist, TypeInvoice, TypeContract:
		return true
	default:
		return false
	}
}

// Unidades de medida permitidas para un ítem. DefaultUnit aplica al crear ítems.
const DefaultUnit = "piece"

var Units = []string{
	"piece", "kg", "l", "m", "m2", "m3", "hour", "day", "month", "year", "service",
}

// IsValidUnit verifica la unidad contra la lista cerrada.
func IsValidUnit(u string) bool {
	for _, known := range Units {
		if u == known {
			return true
		}
	}
	return false
}

// LineItem una fila de la tabla de ítems. Quantity y Price nunca son negativos;
// el total de línea (Quantity*Price) es derivado y no se almacena.
type LineItem struct {
	ID          int
	Name        string
	Description string
	Category    string
	Unit        string
	Quantity    decimal.Decimal
	Price       decimal.Decimal
}

// LineTotal devuelve Quantity * Price.
func (it LineItem) LineTotal() decimal.Decimal {
	return it.Quantity.Mul(it.Price)
}

// CommonFields campos compartidos por los tres tipos de documento.
type CommonFields struct {
	CompanyName string
	CompanyLogo string
	Phone       string
	Email       string
	Address     string
	Currency    string // RUB | USD | EUR
	VATIncluded bool
}

// InvoiceFields campos propios de la cuenta de cobro.
type InvoiceFields struct {
	InvoiceNumber       string
	InvoiceDate         string
	PaymentDue          string
	SupplierINN         string
	SupplierKPP         string
	SupplierBankDetails string
	CustomerName        string
	CustomerINN         string
	CustomerKPP         string
	CustomerAddress     string
}

// ContractFields campos propios del contrato.
type ContractFields struct {
	ContractNumber         string
	ContractDate           string
	ContractPlace          string
	CustomerName           string
	CustomerRepresentative string
	SupplierRepresentative string
	ContractSubject        string
	ExecutionPeriod        string
	PaymentTerms           string
	AdditionalTerms        string
}

// DocumentForm unión etiquetada por DocumentType: cada variante solo aporta sus
// campos al serializar, pero las tres secciones conviven en memoria para que
// cambiar de tipo y volver nunca pierda lo ya escrito.
type DocumentForm struct {
	Common   CommonFields
	Invoice  InvoiceFields
	Contract ContractFields
}

// NewDocumentForm formulario con los valores por defecto de una sesión nueva.
func NewDocumentForm() DocumentForm {
	return DocumentForm{
		Common: CommonFields{
			Currency:    "RUB",
			VATIncluded: true,
		},
	}
}
