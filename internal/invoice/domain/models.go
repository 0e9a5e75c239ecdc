// Package domain contains the invoice model shared by the store and its views.
package domain

// Status represents invoice lifecycle states.
type Status string

const (
	StatusPaid    Status = "Paid"
	StatusPending Status = "Pending"
	StatusOverdue Status = "Overdue"
)

// FilterStatus is the list-filter enum: every Status plus FilterAll.
type FilterStatus string

const (
	FilterAll     FilterStatus = "All"
	FilterPaid    FilterStatus = FilterStatus(StatusPaid)
	FilterPending FilterStatus = FilterStatus(StatusPending)
	FilterOverdue FilterStatus = FilterStatus(StatusOverdue)
)

// Matches reports whether an invoice status passes the filter.
func (f FilterStatus) Matches(s Status) bool {
	return f == FilterAll || FilterStatus(s) == f
}

// LineItem represents a single billable entry on an invoice.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
}

// Total returns quantity × unit price.
func (i LineItem) Total() float64 {
	return i.Quantity * i.Price
}

// Invoice represents a billable record. Date and DueDate are YYYY-MM-DD
// display strings, and Amount is in decimal currency units; rendering
// concerns such as currency symbols stay in the view layer.
type Invoice struct {
	ID       string     `json:"id"`
	Customer string     `json:"customer"`
	Email    string     `json:"email"`
	Amount   float64    `json:"amount"`
	Date     string     `json:"date"`
	DueDate  string     `json:"dueDate"`
	Status   Status     `json:"status"`
	Items    []LineItem `json:"items"`
	Notes    string     `json:"notes,omitempty"`
}

// ItemsTotal sums quantity × price across all line items.
func (inv Invoice) ItemsTotal() float64 {
	return ItemsTotal(inv.Items)
}

// ItemsTotal sums quantity × price across the given items.
func ItemsTotal(items []LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Total()
	}
	return sum
}

// CloneItems returns an independent copy of the item slice.
func CloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}

// Clone returns an invoice value whose item slice does not alias the receiver's.
func (inv Invoice) Clone() Invoice {
	inv.Items = CloneItems(inv.Items)
	return inv
}

// InvoiceInput is what callers supply when creating an invoice. The store
// assigns ID, Date and Status itself.
type InvoiceInput struct {
	Customer string
	Email    string
	Amount   float64
	DueDate  string
	Items    []LineItem
	Notes    string
}

// InvoicePatch is an explicit optional-field update. ID and Date are
// deliberately absent: they are immutable once assigned.
type InvoicePatch struct {
	Customer *string
	Email    *string
	Amount   *float64
	DueDate  *string
	Status   *Status
	Items    *[]LineItem
	Notes    *string
}

// IsZero reports whether the patch carries no fields.
func (p InvoicePatch) IsZero() bool {
	return p.Customer == nil && p.Email == nil && p.Amount == nil &&
		p.DueDate == nil && p.Status == nil && p.Items == nil && p.Notes == nil
}

// Apply merges the patch into a copy of the invoice and returns it. The
// receiver invoice value is left untouched.
func (p InvoicePatch) Apply(inv Invoice) Invoice {
	out := inv.Clone()
	if p.Customer != nil {
		out.Customer = *p.Customer
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Amount != nil {
		out.Amount = *p.Amount
	}
	if p.DueDate != nil {
		out.DueDate = *p.DueDate
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Items != nil {
		out.Items = CloneItems(*p.Items)
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	return out
}

// PatchStatus builds a patch that only changes the status.
func PatchStatus(s Status) InvoicePatch {
	return InvoicePatch{Status: &s}
}
