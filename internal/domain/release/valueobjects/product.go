package valueobjects

import "fmt"

type Product string

const (
	ProductFirefox        Product = "Firefox"
	ProductFirefoxAndroid Product = "Firefox for Android"
	ProductFirefoxESR     Product = "Firefox Extended Support Release"
	ProductFirefoxOS      Product = "Firefox OS"
	ProductThunderbird    Product = "Thunderbird"
)

var validProducts = map[Product]bool{
	ProductFirefox:        true,
	ProductFirefoxAndroid: true,
	ProductFirefoxESR:     true,
	ProductFirefoxOS:      true,
	ProductThunderbird:    true,
}

// counterparts maps a product to the sibling product whose release notes
// cross-link with it. Queried instead of branching on product names.
var counterparts = map[Product]Product{
	ProductFirefox:        ProductFirefoxAndroid,
	ProductFirefoxAndroid: ProductFirefox,
}

func (p Product) String() string {
	return string(p)
}

func (p Product) IsValid() bool {
	return validProducts[p]
}

// pageSlugs maps a product to the path segment of its release notes page.
// Firefox OS pages live under a different layout and are handled by the
// release entity directly.
var pageSlugs = map[Product]string{
	ProductFirefox:        "firefox",
	ProductFirefoxESR:     "firefox",
	ProductFirefoxAndroid: "mobile",
	ProductThunderbird:    "thunderbird",
}

// PageSlug returns the product's release notes page path segment, or false
// when the product has no public page.
func (p Product) PageSlug() (string, bool) {
	slug, ok := pageSlugs[p]
	return slug, ok
}

// Counterpart returns the sibling product used for equivalent-release
// lookups, or false when the product has none.
func (p Product) Counterpart() (Product, bool) {
	c, ok := counterparts[p]
	return c, ok
}

func NewProduct(s string) (Product, error) {
	p := Product(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid product: %s", s)
	}
	return p, nil
}

// Products returns all valid products in display order.
func Products() []Product {
	return []Product{
		ProductFirefox,
		ProductFirefoxAndroid,
		ProductFirefoxESR,
		ProductFirefoxOS,
		ProductThunderbird,
	}
}
