package document

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/Documentos-api/internal/domain"
	"github.com/jhoicas/Documentos-api/internal/domain/entity"
)

// Monedas que ofrece el selector del formulario.
var currencies = []string{"RUB", "USD", "EUR"}

func isValidCurrency(c string) bool {
	for _, known := range currencies {
		if c == known {
			return true
		}
	}
	return false
}

// SetField asigna un campo del formulario según el tipo de documento activo.
// El nombre llega en el formato del wire (companyName, supplierInn, ...). Los
// campos comunes se aceptan con cualquier tipo activo; los de variante solo
// cuando su variante está activa. No hay validación cruzada en esta capa: la
// obligatoriedad se verifica recién al enviar (ValidateForSubmit).
func SetField(form *entity.DocumentForm, t entity.DocumentType, name string, value any) error {
	// vatIncluded es el único campo booleano del formulario.
	if name == "vatIncluded" {
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: vatIncluded debe ser booleano", domain.ErrInvalidInput)
		}
		form.Common.VATIncluded = b
		return nil
	}

	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%w: %s debe ser texto", domain.ErrInvalidInput, name)
	}

	if name == "currency" {
		if !isValidCurrency(s) {
			return fmt.Errorf("%w: moneda %q no soportada", domain.ErrInvalidInput, s)
		}
		form.Common.Currency = s
		return nil
	}

	if setCommonField(&form.Common, name, s) {
		return nil
	}

	switch t {
	case entity.TypePricelist:
		// La lista de precios solo usa los campos comunes.
	case entity.TypeInvoice:
		if setInvoiceField(&form.Invoice, name, s) {
			return nil
		}
	case entity.TypeContract:
		if setContractField(&form.Contract, name, s) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s (tipo %s)", domain.ErrUnknownField, name, t)
}

func setCommonField(c *entity.CommonFields, name, v string) bool {
	switch name {
	case "companyName":
		c.CompanyName = v
	case "companyLogo":
		c.CompanyLogo = v
	case "phone":
		c.Phone = v
	case "email":
		c.Email = v
	case "address":
		c.Address = v
	default:
		return false
	}
	return true
}

func setInvoiceField(f *entity.InvoiceFields, name, v string) bool {
	switch name {
	case "invoiceNumber":
		f.InvoiceNumber = v
	case "invoiceDate":
		f.InvoiceDate = v
	case "paymentDue":
		f.PaymentDue = v
	case "supplierInn":
		f.SupplierINN = v
	case "supplierKpp":
		f.SupplierKPP = v
	case "supplierBankDetails":
		f.SupplierBankDetails = v
	case "customerName":
		f.CustomerName = v
	case "customerInn":
		f.CustomerINN = v
	case "customerKpp":
		f.CustomerKPP = v
	case "customerAddress":
		f.CustomerAddress = v
	default:
		return false
	}
	return true
}

func setContractField(f *entity.ContractFields, name, v string) bool {
	switch name {
	case "contractNumber":
		f.ContractNumber = v
	case "contractDate":
		f.ContractDate = v
	case "contractPlace":
		f.ContractPlace = v
	case "customerName":
		f.CustomerName = v
	case "customerRepresentative":
		f.CustomerRepresentative = v
	case "supplierRepresentative":
		f.SupplierRepresentative = v
	case "contractSubject":
		f.ContractSubject = v
	case "executionPeriod":
		f.ExecutionPeriod = v
	case "paymentTerms":
		f.PaymentTerms = v
	case "additionalTerms":
		f.AdditionalTerms = v
	default:
		return false
	}
	return true
}

// WireFormData serializa el formulario al mapping formData que espera el
// backend de render. Solo viajan los campos de la variante activa (más los
// comunes): los valores "viejos" de otras variantes se quedan en memoria y
// nunca contaminan el documento.
func WireFormData(t entity.DocumentType, form entity.DocumentForm) map[string]any {
	m := map[string]any{
		"companyName": form.Common.CompanyName,
		"companyLogo": form.Common.CompanyLogo,
		"phone":       form.Common.Phone,
		"email":       form.Common.Email,
		"address":     form.Common.Address,
		"currency":    form.Common.Currency,
		"vatIncluded": form.Common.VATIncluded,
	}
	switch t {
	case entity.TypePricelist:
		// Sin campos adicionales.
	case entity.TypeInvoice:
		f := form.Invoice
		m["invoiceNumber"] = f.InvoiceNumber
		m["invoiceDate"] = f.InvoiceDate
		m["paymentDue"] = f.PaymentDue
		m["supplierInn"] = f.SupplierINN
		m["supplierKpp"] = f.SupplierKPP
		m["supplierBankDetails"] = f.SupplierBankDetails
		m["customerName"] = f.CustomerName
		m["customerInn"] = f.CustomerINN
		m["customerKpp"] = f.CustomerKPP
		m["customerAddress"] = f.CustomerAddress
	case entity.TypeContract:
		f := form.Contract
		m["contractNumber"] = f.ContractNumber
		m["contractDate"] = f.ContractDate
		m["contractPlace"] = f.ContractPlace
		m["customerName"] = f.CustomerName
		m["customerRepresentative"] = f.CustomerRepresentative
		m["supplierRepresentative"] = f.SupplierRepresentative
		m["contractSubject"] = f.ContractSubject
		m["executionPeriod"] = f.ExecutionPeriod
		m["paymentTerms"] = f.PaymentTerms
		m["additionalTerms"] = f.AdditionalTerms
	}
	return m
}

// ValidateForSubmit verifica los campos obligatorios de la variante activa
// antes de llamar al backend. Devuelve un error con la lista de faltantes.
func ValidateForSubmit(t entity.DocumentType, form entity.DocumentForm) error {
	var missing []string
	if form.Common.CompanyName == "" {
		missing = append(missing, "companyName")
	}
	switch t {
	case entity.TypePricelist:
		// companyName es el único obligatorio.
	case entity.TypeInvoice:
		f := form.Invoice
		for name, v := range map[string]string{
			"invoiceNumber": f.InvoiceNumber,
			"invoiceDate":   f.InvoiceDate,
			"supplierInn":   f.SupplierINN,
			"customerName":  f.CustomerName,
			"customerInn":   f.CustomerINN,
		} {
			if v == "" {
				missing = append(missing, name)
			}
		}
	case entity.TypeContract:
		f := form.Contract
		for name, v := range map[string]string{
			"contractNumber":  f.ContractNumber,
			"contractDate":    f.ContractDate,
			"customerName":    f.CustomerName,
			"contractSubject": f.ContractSubject,
		} {
			if v == "" {
				missing = append(missing, name)
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: faltan campos obligatorios: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}
