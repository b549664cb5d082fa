package enums

import "fmt"

// ClientRequestStatus tracks the lifecycle of a client's submitted request.
type ClientRequestStatus string

const (
	ClientRequestStatusPending  ClientRequestStatus = "pending"
	ClientRequestStatusApproved ClientRequestStatus = "approved"
	ClientRequestStatusRejected ClientRequestStatus = "rejected"
)

var validClientRequestStatuses = []ClientRequestStatus{
	ClientRequestStatusPending,
	ClientRequestStatusApproved,
	ClientRequestStatusRejected,
}

// String implements fmt.Stringer.
func (s ClientRequestStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ClientRequestStatus.
func (s ClientRequestStatus) IsValid() bool {
	for _, candidate := range validClientRequestStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseClientRequestStatus converts raw input into a ClientRequestStatus.
func ParseClientRequestStatus(value string) (ClientRequestStatus, error) {
	for _, candidate := range validClientRequestStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid client request status %q", value)
}
