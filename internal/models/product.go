package models

// Product is a catalog entry. Prices are integer Naira. Products are defined
// once at startup and never mutated, so values are passed around by copy.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int64    `json:"price"`
	OriginalPrice int64    `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	InStock       bool     `json:"inStock"`
	Unit          string   `json:"unit"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	Tags          []string `json:"tags"`
}

// OnSale reports whether the product carries a struck-through original price.
func (p Product) OnSale() bool {
	return p.OriginalPrice > p.Price
}
