package handler

import (
	"net/http"

	"greenchain/internal/dataset"
	"greenchain/internal/model"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the dashboard datasets: KPIs, trends, inventory,
// orders, suppliers, reports and the help knowledge base.
type DashboardHandler struct{}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Summary returns the landing dashboard: score trend, emissions trend,
// resource snapshot and top supplier standings.
func (h *DashboardHandler) Summary(c *gin.Context) {
	type supplierStanding struct {
		Name   string `json:"name"`
		Status string `json:"status"`
		Score  int    `json:"score"`
	}
	suppliers := dataset.Suppliers()
	standings := make([]supplierStanding, 0, 4)
	for _, s := range suppliers[:4] {
		standings = append(standings, supplierStanding{Name: s.Name, Status: s.ComplianceStatus, Score: s.SustainabilityScore})
	}

	c.JSON(http.StatusOK, gin.H{
		"sustainability_trend": dataset.ScoreTrend(),
		"emissions_trend":      dataset.MonthlyEmissions()[:8],
		"resources":            dataset.ResourceSnapshot(),
		"suppliers":            standings,
	})
}

// MonthlyFinancials returns revenue vs expenses for the current year.
func (h *DashboardHandler) MonthlyFinancials(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"monthly": dataset.MonthlyFinancials()})
}

// KPIs returns the sustainability KPI targets.
func (h *DashboardHandler) KPIs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"kpis": dataset.KPIs()})
}

// Inventory lists inventory items, optionally narrowed by search, category
// and status query parameters.
func (h *DashboardHandler) Inventory(c *gin.Context) {
	filter := dataset.InventoryFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}
	items := dataset.FilterInventory(dataset.Inventory(), filter)
	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"total":      len(items),
		"categories": dataset.InventoryCategories(dataset.Inventory()),
	})
}

// Orders lists orders, optionally narrowed by a search term matching the
// order ID or customer.
func (h *DashboardHandler) Orders(c *gin.Context) {
	orders := dataset.FilterOrders(dataset.Orders(), c.Query("search"))
	c.JSON(http.StatusOK, gin.H{"orders": orders, "total": len(orders)})
}

// Suppliers lists suppliers, optionally narrowed by search and category.
func (h *DashboardHandler) Suppliers(c *gin.Context) {
	filter := dataset.SupplierFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}
	suppliers := dataset.FilterSuppliers(dataset.Suppliers(), filter)
	c.JSON(http.StatusOK, gin.H{"suppliers": suppliers, "total": len(suppliers)})
}

// Reports lists the published reports.
func (h *DashboardHandler) Reports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reports": dataset.Reports()})
}

// Emissions returns the monthly emissions broken down by scope.
func (h *DashboardHandler) Emissions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"monthly": dataset.MonthlyEmissions()})
}

// Resources returns the monthly water and energy usage trend.
func (h *DashboardHandler) Resources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"monthly": dataset.ResourceTrend()})
}

// Compliance returns the supplier compliance breakdown. Admin only.
func (h *DashboardHandler) Compliance(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"breakdown": dataset.ComplianceBreakdown()})
}

// FAQs returns the help knowledge base.
func (h *DashboardHandler) FAQs(c *gin.Context) {
	search := c.Query("search")
	faqs := dataset.FAQs()
	if search != "" {
		matched := make([]model.FAQ, 0, len(faqs))
		for _, f := range faqs {
			if containsFold(f.Question, search) || containsFold(f.Answer, search) {
				matched = append(matched, f)
			}
		}
		faqs = matched
	}
	c.JSON(http.StatusOK, gin.H{"faqs": faqs})
}

// RegisterDashboardRoutes registers the protected dashboard routes.
func (h *DashboardHandler) RegisterDashboardRoutes(rg *gin.RouterGroup, jwtAuthMW, adminMW gin.HandlerFunc) {
	protected := rg.Group("")
	protected.Use(jwtAuthMW)
	{
		protected.GET("/dashboard/summary", h.Summary)
		protected.GET("/analytics/monthly", h.MonthlyFinancials)
		protected.GET("/analytics/kpis", h.KPIs)
		protected.GET("/inventory", h.Inventory)
		protected.GET("/orders", h.Orders)
		protected.GET("/suppliers", h.Suppliers)
		protected.GET("/reports", h.Reports)
		protected.GET("/reports/emissions", h.Emissions)
		protected.GET("/reports/resources", h.Resources)
		protected.GET("/reports/compliance", adminMW, h.Compliance)
		protected.GET("/help/faqs", h.FAQs)
	}
}
