package entity

// Product mahsulot entity (katalog JSON faylidan yuklanadi)
type Product struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Price            float64 `json:"price"`
	Stock            int     `json:"stock"`
	Platform         string  `json:"platform"`
	PlatformCategory string  `json:"platform_category"`

	// Oldindan tarjima qilingan variantlar (cmd/translate to'ldiradi)
	NameZH        string `json:"name_zh,omitempty"`
	DescriptionZH string `json:"description_zh,omitempty"`
	CategoryZH    string `json:"category_zh,omitempty"`
}

// InStock mahsulot omborda bormi
func (p Product) InStock() bool {
	return p.Stock > 0
}

// Catalog mahsulotlar katalogi (JSON fayl formati)
type Catalog struct {
	Shop       string    `json:"shop"`
	ExportedAt string    `json:"exported_at"`
	Products   []Product `json:"products"`
}

// PlatformStat platforma bo'yicha statistika
type PlatformStat struct {
	Platform string
	Total    int
	InStock  int
}

// CategoryStat platforma ichidagi kategoriya statistikasi
type CategoryStat struct {
	PlatformCategory string
	Total            int
	InStock          int
}

// PriceBracket narx oralig'i (statistika va browse uchun)
type PriceBracket struct {
	Label string
	Min   float64
	Max   float64
}

// Contains narx shu oraliqqa tushadimi
func (b PriceBracket) Contains(price float64) bool {
	return price >= b.Min && price <= b.Max
}

// PriceBracketStat narx oralig'i bo'yicha statistika
type PriceBracketStat struct {
	Label   string
	Min     float64
	Max     float64
	Total   int
	InStock int
}

// CatalogSummary umumiy katalog statistikasi (admin /stats uchun)
type CatalogSummary struct {
	Shop          string
	TotalProducts int
	InStock       int
	OutOfStock    int
}

// Filter mahsulot so'rovini toraytiruvchi AND-predikatlar to'plami.
// Bo'sh (zero) qiymatli maydonlar e'tiborga olinmaydi.
type Filter struct {
	Platform string
	Category string
	PriceMin *float64
	PriceMax *float64
	InStock  bool
	Search   string
}

// Pagination sahifalash metadatasi
type Pagination struct {
	Page       int
	TotalPages int
	Total      int
	HasNext    bool
	HasPrev    bool
}

// PageResult bitta sahifa natijasi
type PageResult struct {
	Products   []Product
	Pagination Pagination
}
