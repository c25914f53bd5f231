// Package dataset holds the demo datasets served by the dashboard. Everything
// here is fixed in memory; accessors return copies so callers can filter and
// sort without mutating the source.
package dataset

import "greenchain/internal/model"

var inventoryData = []model.InventoryItem{
	{ID: "INV001", Name: "Organic Cotton T-shirts", Category: "Apparel", StockLevel: 234, Status: model.StockInStock, Supplier: "EcoTextiles Inc.", SustainabilityScore: 85, LastUpdated: "2024-04-01"},
	{ID: "INV002", Name: "Recycled Paper Notebooks", Category: "Stationery", StockLevel: 56, Status: model.StockLowStock, Supplier: "GreenPaper Co.", SustainabilityScore: 92, LastUpdated: "2024-04-03"},
	{ID: "INV003", Name: "Bamboo Phone Cases", Category: "Accessories", StockLevel: 189, Status: model.StockInStock, Supplier: "NatureTech Solutions", SustainabilityScore: 78, LastUpdated: "2024-04-05"},
	{ID: "INV004", Name: "Solar-Powered Chargers", Category: "Electronics", StockLevel: 12, Status: model.StockLowStock, Supplier: "SunPower Electronics", SustainabilityScore: 95, LastUpdated: "2024-04-02"},
	{ID: "INV005", Name: "Plant-based Plastic Containers", Category: "Packaging", StockLevel: 432, Status: model.StockInStock, Supplier: "BioPackaging Solutions", SustainabilityScore: 89, LastUpdated: "2024-04-06"},
	{ID: "INV006", Name: "Upcycled Denim Bags", Category: "Accessories", StockLevel: 0, Status: model.StockOutOfStock, Supplier: "ReThreaded Goods", SustainabilityScore: 82, LastUpdated: "2024-03-30"},
	{ID: "INV007", Name: "Water-Soluble Packaging Film", Category: "Packaging", StockLevel: 87, Status: model.StockInStock, Supplier: "EcoSolve Materials", SustainabilityScore: 91, LastUpdated: "2024-04-04"},
}

var orderData = []model.Order{
	{ID: "ORD-2025-1001", Customer: "EcoFashion Inc.", Date: "2025-04-10", Amount: 12500.00, Status: "Delivered", Items: 8, CarbonFootprint: "Low", PaymentStatus: "Paid"},
	{ID: "ORD-2025-1002", Customer: "Green Living Co.", Date: "2025-04-09", Amount: 8750.50, Status: "In Transit", Items: 12, CarbonFootprint: "Medium", PaymentStatus: "Paid"},
	{ID: "ORD-2025-1003", Customer: "Sustainable Home", Date: "2025-04-08", Amount: 5280.75, Status: "Processing", Items: 5, CarbonFootprint: "Low", PaymentStatus: "Pending"},
	{ID: "ORD-2025-1004", Customer: "Eco Office Solutions", Date: "2025-04-07", Amount: 15900.25, Status: "Delivered", Items: 20, CarbonFootprint: "Medium", PaymentStatus: "Paid"},
	{ID: "ORD-2025-1005", Customer: "Organic Products Ltd.", Date: "2025-04-05", Amount: 3450.00, Status: "Cancelled", Items: 4, CarbonFootprint: "Low", PaymentStatus: "Refunded"},
	{ID: "ORD-2025-1006", Customer: "Circular Economy Group", Date: "2025-04-04", Amount: 22780.50, Status: "Delivered", Items: 25, CarbonFootprint: "High", PaymentStatus: "Paid"},
}

var supplierData = []model.Supplier{
	{ID: "SUP001", Name: "EcoTextiles Inc.", Category: "Raw Materials", Location: "Portland, OR", Rating: 4.5, SustainabilityScore: 92, ComplianceStatus: model.ComplianceCompliant, ActiveOrders: 3, LastOrderDate: "2024-04-01"},
	{ID: "SUP002", Name: "GreenPaper Co.", Category: "Packaging", Location: "Seattle, WA", Rating: 4.2, SustainabilityScore: 88, ComplianceStatus: model.ComplianceCompliant, ActiveOrders: 1, LastOrderDate: "2024-03-15"},
	{ID: "SUP003", Name: "BioPackaging Solutions", Category: "Packaging", Location: "Austin, TX", Rating: 4.7, SustainabilityScore: 95, ComplianceStatus: model.ComplianceCompliant, ActiveOrders: 2, LastOrderDate: "2024-04-03"},
	{ID: "SUP004", Name: "NatureTech Solutions", Category: "Electronics", Location: "San Francisco, CA", Rating: 3.8, SustainabilityScore: 78, ComplianceStatus: model.ComplianceUnderReview, ActiveOrders: 0, LastOrderDate: "2024-02-28"},
	{ID: "SUP005", Name: "SunPower Electronics", Category: "Electronics", Location: "Denver, CO", Rating: 4.4, SustainabilityScore: 85, ComplianceStatus: model.ComplianceCompliant, ActiveOrders: 1, LastOrderDate: "2024-03-22"},
	{ID: "SUP006", Name: "ReThreaded Goods", Category: "Textiles", Location: "Brooklyn, NY", Rating: 3.9, SustainabilityScore: 81, ComplianceStatus: model.ComplianceUnderReview, ActiveOrders: 0, LastOrderDate: "2024-03-10"},
	{ID: "SUP007", Name: "EcoSolve Materials", Category: "Raw Materials", Location: "Chicago, IL", Rating: 4.1, SustainabilityScore: 83, ComplianceStatus: model.ComplianceCompliant, ActiveOrders: 2, LastOrderDate: "2024-04-05"},
	{ID: "SUP008", Name: "Green Transport Logistics", Category: "Logistics", Location: "Atlanta, GA", Rating: 4.3, SustainabilityScore: 79, ComplianceStatus: model.ComplianceUnderReview, ActiveOrders: 1, LastOrderDate: "2024-03-28"},
}

var reportData = []model.Report{
	{ID: "REP-001", Title: "Annual Sustainability Report", Description: "Comprehensive report on our environmental impact and sustainability initiatives", Date: "2025-03-15", Type: "Annual", Format: "PDF"},
	{ID: "REP-002", Title: "Carbon Emissions Q1 2025", Description: "Quarterly breakdown of carbon emissions across all operations", Date: "2025-04-05", Type: "Quarterly", Format: "XLSX"},
	{ID: "REP-003", Title: "Supplier Compliance Audit", Description: "Results of sustainability compliance audits for all active suppliers", Date: "2025-02-28", Type: "Audit", Format: "PDF"},
	{ID: "REP-004", Title: "Resource Utilization Summary", Description: "Monthly analysis of water and energy usage across all facilities", Date: "2025-03-30", Type: "Monthly", Format: "CSV"},
	{ID: "REP-005", Title: "Waste Management Report", Description: "Detailed breakdown of waste reduction and recycling initiatives", Date: "2025-03-01", Type: "Quarterly", Format: "PDF"},
}

var scoreTrend = []model.ScorePoint{
	{Month: "Jan", Score: 65}, {Month: "Feb", Score: 68}, {Month: "Mar", Score: 72},
	{Month: "Apr", Score: 75}, {Month: "May", Score: 71}, {Month: "Jun", Score: 74},
	{Month: "Jul", Score: 78}, {Month: "Aug", Score: 82},
}

var monthlyEmissions = []model.EmissionsPoint{
	{Month: "Jan", Scope1: 120, Scope2: 80, Scope3: 250},
	{Month: "Feb", Scope1: 115, Scope2: 78, Scope3: 240},
	{Month: "Mar", Scope1: 110, Scope2: 75, Scope3: 235},
	{Month: "Apr", Scope1: 105, Scope2: 70, Scope3: 230},
	{Month: "May", Scope1: 100, Scope2: 65, Scope3: 225},
	{Month: "Jun", Scope1: 95, Scope2: 60, Scope3: 220},
	{Month: "Jul", Scope1: 90, Scope2: 55, Scope3: 215},
	{Month: "Aug", Scope1: 85, Scope2: 50, Scope3: 210},
	{Month: "Sep", Scope1: 80, Scope2: 45, Scope3: 205},
	{Month: "Oct", Scope1: 75, Scope2: 42, Scope3: 200},
	{Month: "Nov", Scope1: 70, Scope2: 40, Scope3: 195},
	{Month: "Dec", Scope1: 65, Scope2: 38, Scope3: 190},
}

var monthlyFinancials = []model.FinancialPoint{
	{Month: "Jan", Revenue: 4000, Expenses: 2400, Profit: 1600},
	{Month: "Feb", Revenue: 3000, Expenses: 1398, Profit: 1602},
	{Month: "Mar", Revenue: 2000, Expenses: 9800, Profit: -7800},
	{Month: "Apr", Revenue: 2780, Expenses: 3908, Profit: -1128},
	{Month: "May", Revenue: 1890, Expenses: 4800, Profit: -2910},
	{Month: "Jun", Revenue: 2390, Expenses: 3800, Profit: -1410},
	{Month: "Jul", Revenue: 3490, Expenses: 4300, Profit: -810},
	{Month: "Aug", Revenue: 5600, Expenses: 3200, Profit: 2400},
	{Month: "Sep", Revenue: 8900, Expenses: 4100, Profit: 4800},
	{Month: "Oct", Revenue: 7800, Expenses: 3600, Profit: 4200},
	{Month: "Nov", Revenue: 6700, Expenses: 3800, Profit: 2900},
	{Month: "Dec", Revenue: 9800, Expenses: 4200, Profit: 5600},
}

var resourceTrend = []model.ResourcePoint{
	{Month: "Jan", Water: 100, Energy: 120}, {Month: "Feb", Water: 98, Energy: 118},
	{Month: "Mar", Water: 95, Energy: 115}, {Month: "Apr", Water: 92, Energy: 112},
	{Month: "May", Water: 90, Energy: 110}, {Month: "Jun", Water: 88, Energy: 108},
	{Month: "Jul", Water: 86, Energy: 105}, {Month: "Aug", Water: 85, Energy: 102},
	{Month: "Sep", Water: 83, Energy: 100}, {Month: "Oct", Water: 81, Energy: 98},
	{Month: "Nov", Water: 80, Energy: 95}, {Month: "Dec", Water: 78, Energy: 92},
}

var resourceSnapshot = []model.ResourceUsage{
	{Resource: "Water", Used: 75, Total: 100},
	{Resource: "Energy", Used: 60, Total: 100},
	{Resource: "Materials", Used: 40, Total: 100},
	{Resource: "Waste", Used: 85, Total: 100},
}

var complianceBreakdown = []model.ComplianceSlice{
	{Name: "Fully Compliant", Value: 65},
	{Name: "Partially Compliant", Value: 25},
	{Name: "Non-Compliant", Value: 10},
}

var kpiData = []model.KPI{
	{Name: "Carbon Emissions", Current: 82, Target: 75, Unit: "tons CO2e"},
	{Name: "Resource Efficiency", Current: 68, Target: 85, Unit: "%"},
	{Name: "Supplier Compliance", Current: 92, Target: 95, Unit: "%"},
	{Name: "Waste Reduction", Current: 45, Target: 35, Unit: "tons"},
}

var faqData = []model.FAQ{
	{ID: "FAQ-001", Question: "How is the sustainability score calculated?", Answer: "Scores combine emissions intensity, certified materials share, and supplier audit results on a 0-100 scale, refreshed monthly."},
	{ID: "FAQ-002", Question: "What do the carbon footprint labels on orders mean?", Answer: "Low, Medium and High classify the estimated shipping and production emissions of an order relative to its value."},
	{ID: "FAQ-003", Question: "How often is supplier compliance reviewed?", Answer: "All active suppliers go through a compliance audit at least once a year; suppliers under review are re-audited quarterly."},
	{ID: "FAQ-004", Question: "Can I export report data?", Answer: "Every published report lists its download format (PDF, XLSX or CSV) and can be fetched from the reports view."},
	{ID: "FAQ-005", Question: "Who can see the compliance breakdown?", Answer: "The compliance breakdown is restricted to administrator accounts."},
}

func Inventory() []model.InventoryItem {
	out := make([]model.InventoryItem, len(inventoryData))
	copy(out, inventoryData)
	return out
}

func Orders() []model.Order {
	out := make([]model.Order, len(orderData))
	copy(out, orderData)
	return out
}

func Suppliers() []model.Supplier {
	out := make([]model.Supplier, len(supplierData))
	copy(out, supplierData)
	return out
}

func Reports() []model.Report {
	out := make([]model.Report, len(reportData))
	copy(out, reportData)
	return out
}

func ScoreTrend() []model.ScorePoint {
	out := make([]model.ScorePoint, len(scoreTrend))
	copy(out, scoreTrend)
	return out
}

func MonthlyEmissions() []model.EmissionsPoint {
	out := make([]model.EmissionsPoint, len(monthlyEmissions))
	copy(out, monthlyEmissions)
	return out
}

func MonthlyFinancials() []model.FinancialPoint {
	out := make([]model.FinancialPoint, len(monthlyFinancials))
	copy(out, monthlyFinancials)
	return out
}

func ResourceTrend() []model.ResourcePoint {
	out := make([]model.ResourcePoint, len(resourceTrend))
	copy(out, resourceTrend)
	return out
}

func ResourceSnapshot() []model.ResourceUsage {
	out := make([]model.ResourceUsage, len(resourceSnapshot))
	copy(out, resourceSnapshot)
	return out
}

func ComplianceBreakdown() []model.ComplianceSlice {
	out := make([]model.ComplianceSlice, len(complianceBreakdown))
	copy(out, complianceBreakdown)
	return out
}

func KPIs() []model.KPI {
	out := make([]model.KPI, len(kpiData))
	copy(out, kpiData)
	return out
}

func FAQs() []model.FAQ {
	out := make([]model.FAQ, len(faqData))
	copy(out, faqData)
	return out
}
