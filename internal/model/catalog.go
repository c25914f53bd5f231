package model

// Inventory stock statuses.
const (
	StockInStock    = "In Stock"
	StockLowStock   = "Low Stock"
	StockOutOfStock = "Out of Stock"
)

// Supplier compliance statuses.
const (
	ComplianceCompliant    = "Compliant"
	ComplianceUnderReview  = "Under Review"
	ComplianceNonCompliant = "Non-Compliant"
)

// InventoryItem is a tracked product with its sustainability score.
type InventoryItem struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Category            string `json:"category"`
	StockLevel          int    `json:"stock_level"`
	Status              string `json:"status"`
	Supplier            string `json:"supplier"`
	SustainabilityScore int    `json:"sustainability_score"`
	LastUpdated         string `json:"last_updated"`
}

// Order is a customer order with its footprint classification.
type Order struct {
	ID              string  `json:"id"`
	Customer        string  `json:"customer"`
	Date            string  `json:"date"`
	Amount          float64 `json:"amount"`
	Status          string  `json:"status"`
	Items           int     `json:"items"`
	CarbonFootprint string  `json:"carbon_footprint"`
	PaymentStatus   string  `json:"payment_status"`
}

// Supplier is a vendor with its compliance standing.
type Supplier struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Category            string  `json:"category"`
	Location            string  `json:"location"`
	Rating              float64 `json:"rating"`
	SustainabilityScore int     `json:"sustainability_score"`
	ComplianceStatus    string  `json:"compliance_status"`
	ActiveOrders        int     `json:"active_orders"`
	LastOrderDate       string  `json:"last_order_date"`
}

// Report is a published sustainability report available for download.
type Report struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Format      string `json:"format"`
}

// KPI compares a current metric value against its target.
type KPI struct {
	Name    string  `json:"name"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Unit    string  `json:"unit"`
}

// ScorePoint is one month of the overall sustainability score trend.
type ScorePoint struct {
	Month string `json:"month"`
	Score int    `json:"score"`
}

// EmissionsPoint is one month of emissions split by GHG Protocol scope,
// in tons CO2e.
type EmissionsPoint struct {
	Month  string `json:"month"`
	Scope1 int    `json:"scope1"`
	Scope2 int    `json:"scope2"`
	Scope3 int    `json:"scope3"`
}

// FinancialPoint is one month of revenue against expenses.
type FinancialPoint struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// ResourcePoint is one month of indexed water and energy usage.
type ResourcePoint struct {
	Month  string `json:"month"`
	Water  int    `json:"water"`
	Energy int    `json:"energy"`
}

// ResourceUsage is the current utilisation of a tracked resource.
type ResourceUsage struct {
	Resource string `json:"resource"`
	Used     int    `json:"used"`
	Total    int    `json:"total"`
}

// ComplianceSlice is one segment of the supplier compliance breakdown,
// as a percentage of all active suppliers.
type ComplianceSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// FAQ is a knowledge-base question and answer.
type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
