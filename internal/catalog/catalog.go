package catalog

// Variant is a purchasable configuration of a product.
type Variant struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Features       []string `json:"features"`
	Specifications []string `json:"specifications"`
}

// Product is a catalog entry. The catalog is a fixed inventory maintained in
// code; there is no product admin surface.
type Product struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Variants    []Variant `json:"variants"`
}
