package catalog

const productImage = "https://images.unsplash.com/photo-1519143009590-e3800b9df468?auto=format&fit=crop&q=80&w=784"

var products = []Product{
	{
		ID:          "cuplock-vertical-3m",
		Slug:        "cuplock-vertical-3m",
		Title:       "M.S Cuplock Vertical – 3M",
		Category:    "M.S Cuplock",
		Description: "Durable 3-meter MS Cuplock Standard for tall scaffolding structures. Ensures maximum load-bearing strength and stability.",
		Images:      []string{productImage},
		Variants: []Variant{
			{
				Name:        "Standard",
				Description: "3-meter vertical standard with welded cups at 500mm intervals.",
				Features: []string{
					"Hot-dip galvanized finish",
					"Welded bottom cup, sliding top cup",
					"Compatible with 2M and 2.5M verticals",
				},
				Specifications: []string{"Length: 3M", "Tube OD: 48.3mm", "Wall thickness: 3.2mm"},
			},
			{
				Name:        "Heavy Duty",
				Description: "Reinforced vertical for high load-bearing towers.",
				Features: []string{
					"Higher wall thickness for slab support towers",
					"Load tested per IS 4014",
				},
				Specifications: []string{"Length: 3M", "Tube OD: 48.3mm", "Wall thickness: 4.0mm"},
			},
		},
	},
	{
		ID:          "cuplock-ledger-2m",
		Slug:        "cuplock-ledger-2m",
		Title:       "M.S Cuplock Ledger – 2M",
		Category:    "M.S Cuplock",
		Description: "High-strength ledger providing horizontal support and rigidity for modular scaffolding systems.",
		Images:      []string{productImage},
		Variants: []Variant{
			{
				Name:        "Standard",
				Description: "2-meter horizontal ledger with forged blade ends.",
				Features: []string{
					"Forged blade ends for positive cup lock",
					"Interchangeable across cuplock systems",
				},
				Specifications: []string{"Length: 2M", "Tube OD: 48.3mm", "Wall thickness: 3.2mm"},
			},
		},
	},
	{
		ID:          "u-jack-600mm",
		Slug:        "u-jack-600mm",
		Title:       "U Jack – 600mm",
		Category:    "M.S Cuplock",
		Description: "Adjustable U Jack for leveling and height adjustment in scaffolding systems. Precision threaded for smooth use.",
		Images:      []string{productImage},
		Variants: []Variant{
			{
				Name:        "Standard",
				Description: "600mm threaded jack with U head for beam seating.",
				Features: []string{
					"Rolled threads for smooth height adjustment",
					"150mm x 150mm U head plate",
				},
				Specifications: []string{"Length: 600mm", "Thread dia: 38mm", "Adjustment range: 450mm"},
			},
		},
	},
	{
		ID:          "pipe-c-channel-6m",
		Slug:        "pipe-c-channel-6m",
		Title:       "MS C Channel – 6M",
		Category:    "MS Pipes",
		Description: "6-meter mild steel C Channel for large-scale construction and fabrication projects.",
		Images:      []string{productImage},
		Variants: []Variant{
			{
				Name:        "75x40",
				Description: "General purpose channel for fabrication and supports.",
				Features: []string{
					"IS 2062 grade mild steel",
					"Uniform flange thickness",
				},
				Specifications: []string{"Length: 6M", "Section: 75x40mm", "Weight: 7.14 kg/m"},
			},
			{
				Name:        "100x50",
				Description: "Heavier section for structural runners and frames.",
				Features: []string{
					"IS 2062 grade mild steel",
					"Suited for welded structural frames",
				},
				Specifications: []string{"Length: 6M", "Section: 100x50mm", "Weight: 9.56 kg/m"},
			},
		},
	},
	{
		ID:          "pipe-round-6m",
		Slug:        "pipe-round-6m",
		Title:       "MS Round Pipe – 6M",
		Category:    "MS Pipes",
		Description: "Heavy-duty 6-meter MS round pipe ideal for scaffolding and structural support.",
		Images:      []string{productImage},
		Variants: []Variant{
			{
				Name:        "B Class",
				Description: "Medium duty pipe for general scaffolding runs.",
				Features: []string{
					"IS 1239 conformant",
					"Blue band marking",
				},
				Specifications: []string{"Length: 6M", "OD: 48.3mm", "Wall thickness: 3.2mm"},
			},
			{
				Name:        "C Class",
				Description: "Heavy duty pipe for load-bearing structures.",
				Features: []string{
					"IS 1239 conformant",
					"Red band marking",
				},
				Specifications: []string{"Length: 6M", "OD: 48.3mm", "Wall thickness: 4.0mm"},
			},
		},
	},
	{
		ID:          "formwork-slab",
		Slug:        "formwork-slab",
		Title:       "Aluminium Formwork – Slab",
		Category:    "Aluminium Formwork",
		Description: "Durable Mivan panels ensuring speed, precision, and smooth concrete finishes.",
		Images:      []string{productImage},
		Variants: []Variant{
			{
				Name:        "Slab Panel",
				Description: "Standard slab deck panel for Mivan construction.",
				Features: []string{
					"Over 200 repetitions per panel",
					"Smooth concrete finish, no plastering needed",
				},
				Specifications: []string{"Panel: 600x1200mm", "Alloy: 6061-T6", "Weight: 8.5 kg"},
			},
		},
	},
	{
		ID:          "formwork-wall",
		Slug:        "formwork-wall",
		Title:       "Aluminium Formwork – Wall",
		Category:    "Aluminium Formwork",
		Description: "Robust aluminium formwork panels for fast and consistent wall casting in modern construction.",
		Images:      []string{productImage},
		Variants: []Variant{
			{
				Name:        "Wall Panel",
				Description: "Standard wall panel with pin-and-wedge connections.",
				Features: []string{
					"Pin and wedge assembly, no skilled labour",
					"Monolithic wall and slab casting",
				},
				Specifications: []string{"Panel: 600x2400mm", "Alloy: 6061-T6", "Weight: 16 kg"},
			},
		},
	},
	{
		ID:          "walkway-jali",
		Slug:        "walkway-jali",
		Title:       "Walkway Jali",
		Category:    "Miscellaneous",
		Description: "Anti-slip galvanized MS walkway jali for safe and stable site movement.",
		Images:      []string{productImage},
		Variants: []Variant{
			{
				Name:        "Standard",
				Description: "Galvanized anti-slip walkway grating.",
				Features: []string{
					"Punched anti-slip surface",
					"Hooks for pipe mounting on both ends",
				},
				Specifications: []string{"Size: 450x2000mm", "Sheet thickness: 2mm"},
			},
		},
	},
	{
		ID:          "h-frame",
		Slug:        "h-frame",
		Title:       "H Frame",
		Category:    "Miscellaneous",
		Description: "Rigid MS H Frame used for plastering, painting, and façade work with quick setup and strong alignment.",
		Images:      []string{productImage},
		Variants: []Variant{
			{
				Name:        "Standard",
				Description: "Two-piece H frame set with cross bracing.",
				Features: []string{
					"Quick pin-lock assembly",
					"Stackable for multi-level access",
				},
				Specifications: []string{"Height: 2M", "Width: 1.2M", "Tube OD: 40mm"},
			},
		},
	},
}

// Categories preserves the storefront ordering of product categories.
var Categories = []string{
	"M.S Cuplock",
	"MS Pipes",
	"Aluminium Formwork",
	"Miscellaneous",
}
