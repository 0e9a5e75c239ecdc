// Package form implements the authoring-form validation contract. Invalid
// input never reaches the store: a draft is only converted into a store
// input once every field passes these checks.
package form

import (
	"fmt"
	"math"
	"strings"

	"github.com/foliohq/folio/internal/invoice/domain"
)

// ErrorKind classifies a field-level validation failure.
type ErrorKind string

const (
	KindRequired      ErrorKind = "required"
	KindInvalidFormat ErrorKind = "invalid-format"
	KindOutOfRange    ErrorKind = "out-of-range"
)

// FieldError describes why a single field failed validation.
type FieldError struct {
	Kind    ErrorKind
	Message string
}

// Errors maps field names (item fields as item_<index>_<field>) to their error.
type Errors map[string]FieldError

// HasErrors reports whether any field failed.
func (e Errors) HasErrors() bool { return len(e) > 0 }

// ItemDraft is an in-progress line item. A zero quantity means the field was
// left untouched and defaults to 1 on submission.
type ItemDraft struct {
	Description string
	Quantity    float64
	Price       float64
}

// Draft is the authoring form's in-progress state.
type Draft struct {
	Customer string
	Email    string
	DueDate  string
	Notes    string
	Items    []ItemDraft
}

// NewDraft returns an empty draft with one blank line item, mirroring the
// drawer's initial state.
func NewDraft() Draft {
	return Draft{Items: []ItemDraft{{Quantity: 1}}}
}

// Validate checks every field and returns the per-field errors. An empty
// result means the draft is ready for Submit.
func (d Draft) Validate() Errors {
	errs := Errors{}
	if strings.TrimSpace(d.Customer) == "" {
		errs["customer"] = FieldError{KindRequired, "Customer name is required"}
	}
	if strings.TrimSpace(d.Email) == "" {
		errs["email"] = FieldError{KindRequired, "Email is required"}
	} else if !emailShaped(d.Email) {
		errs["email"] = FieldError{KindInvalidFormat, "Invalid email format"}
	}
	if strings.TrimSpace(d.DueDate) == "" {
		errs["dueDate"] = FieldError{KindRequired, "Due date is required"}
	}
	if len(d.Items) == 0 {
		errs["items"] = FieldError{KindRequired, "At least one item is required"}
	}
	for i, item := range d.Items {
		if strings.TrimSpace(item.Description) == "" {
			errs[itemField(i, "description")] = FieldError{KindRequired, "Description required"}
		}
		if item.Price <= 0 {
			errs[itemField(i, "price")] = FieldError{KindOutOfRange, "Price must be > 0"}
		}
		if item.Quantity < 0 {
			errs[itemField(i, "quantity")] = FieldError{KindOutOfRange, "Quantity must not be negative"}
		}
	}
	return errs
}

// Total computes the draft's amount: Σ quantity × price with unset
// quantities defaulting to 1. Full precision; rounding is display-only.
func (d Draft) Total() float64 {
	var sum float64
	for _, item := range d.Items {
		sum += effectiveQuantity(item) * item.Price
	}
	return sum
}

// Submit validates the draft and, when clean, converts it into the input
// the store accepts. The computed amount equals Total().
func (d Draft) Submit() (domain.InvoiceInput, Errors) {
	if errs := d.Validate(); errs.HasErrors() {
		return domain.InvoiceInput{}, errs
	}
	items := make([]domain.LineItem, len(d.Items))
	for i, item := range d.Items {
		items[i] = domain.LineItem{
			Description: item.Description,
			Quantity:    effectiveQuantity(item),
			Price:       item.Price,
		}
	}
	return domain.InvoiceInput{
		Customer: d.Customer,
		Email:    d.Email,
		Amount:   d.Total(),
		DueDate:  d.DueDate,
		Items:    items,
		Notes:    d.Notes,
	}, nil
}

// DisplayAmount rounds an amount to 2 decimal places for rendering. The
// stored amount keeps full precision.
func DisplayAmount(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// emailShaped applies the drawer's loose pattern: a non-space local part,
// an @, and a domain containing a dot.
func emailShaped(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || strings.ContainsAny(email, " \t") {
		return false
	}
	dom := email[at+1:]
	dot := strings.Index(dom, ".")
	return dot > 0 && dot < len(dom)-1
}

func effectiveQuantity(item ItemDraft) float64 {
	if item.Quantity == 0 {
		return 1
	}
	return item.Quantity
}

func itemField(index int, field string) string {
	return fmt.Sprintf("item_%d_%s", index, field)
}
