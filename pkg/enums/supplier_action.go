package enums

import "fmt"

// SupplierActionType records an explicit supplier action against a supplier request.
type SupplierActionType string

const (
	SupplierActionRejected SupplierActionType = "rejected"
)

var validSupplierActionTypes = []SupplierActionType{
	SupplierActionRejected,
}

// String implements fmt.Stringer.
func (a SupplierActionType) String() string {
	return string(a)
}

// IsValid reports whether the value is a known SupplierActionType.
func (a SupplierActionType) IsValid() bool {
	for _, candidate := range validSupplierActionTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseSupplierActionType converts raw input into a SupplierActionType.
func ParseSupplierActionType(value string) (SupplierActionType, error) {
	for _, candidate := range validSupplierActionTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid supplier action %q", value)
}
