package catalog

// PropertyType enumerates the catalog's classification values.
const (
	TypeHouse     = "House"
	TypeApartment = "Apartment"
	TypeCondo     = "Condo"
	TypeTownhouse = "Townhouse"
)

// Listing status values.
const (
	StatusForSale = "For Sale"
	StatusForRent = "For Rent"
	StatusSold    = "Sold"
	StatusPending = "Pending"
)

// Agent is the contact block attached to every catalog record.
type Agent struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Image string `json:"image"`
}

// Property is an immutable catalog entry. Records are loaded once at startup
// and never created or mutated by the application.
type Property struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Address     string   `json:"address"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Status      string   `json:"status"`
	Price       int      `json:"price"`
	Bedrooms    int      `json:"bedrooms"`
	Bathrooms   float64  `json:"bathrooms"`
	SquareFeet  int      `json:"squareFeet"`
	Images      []string `json:"images"`
	Featured    bool     `json:"featured"`
	Agent       Agent    `json:"agent"`
	Amenities   []string `json:"amenities"`
	YearBuilt   int      `json:"yearBuilt"`

	// Extended attributes. Not every record carries them; a record without a
	// value fails any filter that constrains the attribute.
	Balconies         *int   `json:"balconies,omitempty"`
	Furnishing        string `json:"furnishing,omitempty"`
	ConstructionStage string `json:"constructionStage,omitempty"`
	CarpetArea        int    `json:"carpetArea,omitempty"`
}
