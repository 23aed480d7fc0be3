package store

// DateLayout is the calendar-day format used for sale dates.
const DateLayout = "2006-01-02"

// Product is a catalog entry. Products are created once and restocked or
// repriced afterwards; they are never deleted.
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// Sale represents a single recorded sales transaction. Sales are append-only:
// once recorded, no field changes, including Value when the product is later
// repriced.
type Sale struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Product  string  `json:"product"`
	Branch   string  `json:"branch"`
	Quantity int     `json:"quantity"`
	Value    float64 `json:"value"`
}

// Analytics holds the aggregate metrics derived from the ledger. Every value
// is recomputed from scratch on each request.
type Analytics struct {
	TotalCount      int     `json:"total_count"`
	TotalRevenue    float64 `json:"total_revenue"`
	TopProduct      string  `json:"top_product"`
	FebruaryRevenue float64 `json:"february_revenue"`
}

// Snapshot is the full read view: catalog, branch list, ledger and analytics.
// It mirrors the GET /api/data payload.
type Snapshot struct {
	Products  map[string]Product `json:"products"`
	Branches  []string           `json:"branches"`
	Sales     []Sale             `json:"sales"`
	Analytics Analytics          `json:"analytics"`
}

// DataSource is the call surface shared by the in-process Store and the
// HTTP client. Dashboard code written against it works unchanged whether the
// data lives in the same process or behind the API.
type DataSource interface {
	Snapshot() (*Snapshot, error)
	RecordSale(date, product, branch string, quantity int) (*Sale, error)
	AddProduct(name string, price float64, stock int) (*Product, error)
	RestockAndReprice(name string, addedStock int, newPrice float64) (*Product, error)
}
