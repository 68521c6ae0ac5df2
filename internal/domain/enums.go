package domain

// Role is the self-declared role of the local farm profile.
type Role string

const (
	RoleFarmer     Role = "farmer"
	RoleTechnician Role = "technician"
	RoleSupplier   Role = "supplier"
)

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleTechnician, RoleSupplier:
		return true
	}
	return false
}

// RecordKind identifies a persisted record collection.
type RecordKind string

const (
	RecordKindSale    RecordKind = "sale"
	RecordKindInvoice RecordKind = "invoice"
)

// ParseRecordKind maps the URL form of a record kind ("sales", "invoices")
// to its RecordKind. The singular forms are accepted too.
func ParseRecordKind(s string) (RecordKind, error) {
	switch s {
	case "sale", "sales":
		return RecordKindSale, nil
	case "invoice", "invoices":
		return RecordKindInvoice, nil
	}
	return "", ErrInvalidRecordKind
}

// RecordKinds returns the record collections reachable for the role.
func (r Role) RecordKinds() []RecordKind {
	switch r {
	case RoleFarmer:
		return []RecordKind{RecordKindSale, RecordKindInvoice}
	case RoleSupplier:
		return []RecordKind{RecordKindSale}
	case RoleTechnician:
		return []RecordKind{RecordKindInvoice}
	}
	return nil
}

// CanAccess reports whether the role may read or write the given record kind.
func (r Role) CanAccess(kind RecordKind) bool {
	for _, k := range r.RecordKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// AllowedImageTypes maps accepted image MIME types to their canonical
// file extension. Batch uploads are image-only.
var AllowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
}
