package types

import "github.com/shopspring/decimal"

// LineItem is the snapshot of one requested catalog selection. It is copied
// verbatim down the request chain so later stages never depend on the live
// catalog entry.
type LineItem struct {
	ProductID     string `json:"product_id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	Variant       string `json:"variant"`
	Specification string `json:"specification"`
	Quantity      int    `json:"quantity"`
	Image         string `json:"image,omitempty"`
}

// LineItems is stored as a jsonb column on request rows.
type LineItems []LineItem

// PricedLineItem is a line item after a supplier has attached a unit price.
type PricedLineItem struct {
	LineItem
	UnitPrice decimal.Decimal `json:"unit_price"`
	BaseTotal decimal.Decimal `json:"base_total"`
}

// PricedLineItems is stored as a jsonb column on quotation rows.
type PricedLineItems []PricedLineItem

// OrderLineItem is a priced line item after the admin margin has been applied.
type OrderLineItem struct {
	PricedLineItem
	Margin     decimal.Decimal `json:"margin"`
	FinalTotal decimal.Decimal `json:"final_total"`
}

// OrderLineItems is stored as a jsonb column on final order rows.
type OrderLineItems []OrderLineItem
