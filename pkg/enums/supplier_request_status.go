package enums

import "fmt"

// SupplierRequestStatus tracks whether a supplier request is still open for quoting.
type SupplierRequestStatus string

const (
	SupplierRequestStatusPending  SupplierRequestStatus = "pending"
	SupplierRequestStatusAccepted SupplierRequestStatus = "accepted"
)

var validSupplierRequestStatuses = []SupplierRequestStatus{
	SupplierRequestStatusPending,
	SupplierRequestStatusAccepted,
}

// String implements fmt.Stringer.
func (s SupplierRequestStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SupplierRequestStatus.
func (s SupplierRequestStatus) IsValid() bool {
	for _, candidate := range validSupplierRequestStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSupplierRequestStatus converts raw input into a SupplierRequestStatus.
func ParseSupplierRequestStatus(value string) (SupplierRequestStatus, error) {
	for _, candidate := range validSupplierRequestStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid supplier request status %q", value)
}
