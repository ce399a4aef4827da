package domain

// Product is one normalized catalog listing extracted from a vendor page.
// Built once inside the extraction pipeline and never mutated afterwards.
type Product struct {
	Name        string `json:"name"`
	Price       int    `json:"price"` // KRW, always > 0 for emitted products
	Unit        string `json:"unit"`
	Size        string `json:"size,omitempty"`
	Brand       string `json:"brand,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	OriginalURL string `json:"original_url,omitempty"`
	Category    string `json:"category"`
	SubCategory string `json:"sub_category,omitempty"`
	Source      string `json:"source"`
}
