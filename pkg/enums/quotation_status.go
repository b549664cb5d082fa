package enums

import "fmt"

// QuotationStatus tracks one supplier's priced response to a supplier request.
// Supplier declines are recorded as supplier actions, not as a quotation status.
type QuotationStatus string

const (
	QuotationStatusUnderReview QuotationStatus = "under_review"
	QuotationStatusAccepted    QuotationStatus = "accepted"
	QuotationStatusLost        QuotationStatus = "lost"
)

var validQuotationStatuses = []QuotationStatus{
	QuotationStatusUnderReview,
	QuotationStatusAccepted,
	QuotationStatusLost,
}

// String implements fmt.Stringer.
func (s QuotationStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known QuotationStatus.
func (s QuotationStatus) IsValid() bool {
	for _, candidate := range validQuotationStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseQuotationStatus converts raw input into a QuotationStatus.
func ParseQuotationStatus(value string) (QuotationStatus, error) {
	for _, candidate := range validQuotationStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid quotation status %q", value)
}
