// Package catalog is the static merch catalog. Ordering happens in person
// at the association office; the catalog only lists what exists, its price
// and whether it is currently in stock.
package catalog

// Category groups products on the storefront
type Category string

// Product categories
const (
	CategoryVetement   Category = "vetement"
	CategoryAccessoire Category = "accessoire"
	CategoryGoodies    Category = "goodies"
)

// CategoryLabel returns the French display name for a category filter.
// The empty category means "everything".
func CategoryLabel(c Category) string {
	switch c {
	case CategoryVetement:
		return "Vêtements"
	case CategoryAccessoire:
		return "Accessoires"
	case CategoryGoodies:
		return "Goodies"
	}
	return "Tout"
}

// Product is one merch item
type Product struct {
	ID          string
	Name        string
	Description string
	Price       float64 // euros
	Category    Category
	Variant     string
	New         bool
	InStock     bool
	Sizes       []string
}

var products = []Product{
	{
		ID:          "hoodie-noir",
		Name:        "Hoodie BinHarry",
		Description: "Hoodie confortable avec le logo BinHarry brodé",
		Price:       35,
		Category:    CategoryVetement,
		Variant:     "Noir",
		New:         true,
		InStock:     true,
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
	},
	{
		ID:          "tshirt-blanc",
		Name:        "T-Shirt BinHarry",
		Description: "T-shirt classique avec le logo BinHarry",
		Price:       15,
		Category:    CategoryVetement,
		Variant:     "Blanc",
		New:         true,
		InStock:     true,
		Sizes:       []string{"S", "M", "L", "XL"},
	},
	{
		ID:          "tshirt-noir",
		Name:        "T-Shirt BinHarry",
		Description: "T-shirt classique avec le logo BinHarry",
		Price:       15,
		Category:    CategoryVetement,
		Variant:     "Noir",
		InStock:     true,
		Sizes:       []string{"S", "M", "L", "XL"},
	},
	{
		ID:          "casquette",
		Name:        "Casquette BinHarry",
		Description: "Casquette brodée avec le logo BinHarry",
		Price:       12,
		Category:    CategoryAccessoire,
		Variant:     "Noir",
		New:         true,
		InStock:     true,
	},
	{
		ID:          "tote-bag",
		Name:        "Tote Bag BinHarry",
		Description: "Sac en toile réutilisable avec le logo BinHarry",
		Price:       8,
		Category:    CategoryAccessoire,
		Variant:     "Naturel",
		InStock:     true,
	},
	{
		ID:          "mug",
		Name:        "Mug BinHarry",
		Description: "Mug céramique avec le logo BinHarry",
		Price:       10,
		Category:    CategoryGoodies,
		Variant:     "Blanc",
		InStock:     true,
	},
	{
		ID:          "stickers-pack",
		Name:        "Pack de Stickers",
		Description: "5 stickers BinHarry pour décorer ton laptop",
		Price:       5,
		Category:    CategoryGoodies,
		Variant:     "Multicolore",
		New:         true,
		InStock:     true,
	},
	{
		ID:          "gourde",
		Name:        "Gourde BinHarry",
		Description: "Gourde isotherme 500ml avec le logo BinHarry",
		Price:       18,
		Category:    CategoryGoodies,
		Variant:     "Noir",
		New:         true,
	},
}

// Products returns the full catalog in display order
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// ByCategory returns the products in one category; the empty category
// returns everything
func ByCategory(c Category) []Product {
	if c == "" {
		return Products()
	}
	var out []Product
	for _, p := range products {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

// ByID looks up a product
func ByID(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
