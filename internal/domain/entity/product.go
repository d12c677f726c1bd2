package entity

// ProductCategory is the closed set of catalog categories.
type ProductCategory string

const (
	CategorySport   ProductCategory = "esportivo"
	CategoryCasual  ProductCategory = "casual"
	CategorySkate   ProductCategory = "skate"
	CategoryRunning ProductCategory = "corrida"
	CategoryOther   ProductCategory = "outro"
)

// ProductGender is the closed set of catalog genders.
type ProductGender string

const (
	GenderMale   ProductGender = "masculino"
	GenderFemale ProductGender = "feminino"
	GenderUnisex ProductGender = "unissex"
)

// Product is a catalog entry for a sneaker model. It carries no stock by
// itself; quantities live on SKU records.
type Product struct {
	ID          string          `json:"id"`
	ModelName   string          `json:"nomeModelo"` // e.g. "Nike Air Max 90".
	Brand       string          `json:"marca"`
	BasePrice   float64         `json:"precoBase"` // Always > 0.
	Category    ProductCategory `json:"categoria"`
	Gender      ProductGender   `json:"genero"`
	ReleaseDate string          `json:"dataLancamento,omitempty"`
	ImageURL    string          `json:"imagemURL,omitempty"`
	Notes       string          `json:"observacoes,omitempty"`
}

// ValidProductCategory reports whether c is a known category.
func ValidProductCategory(c ProductCategory) bool {
	switch c {
	case CategorySport, CategoryCasual, CategorySkate, CategoryRunning, CategoryOther:
		return true
	}

	return false
}

// ValidProductGender reports whether g is a known gender.
func ValidProductGender(g ProductGender) bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnisex:
		return true
	}

	return false
}
