package models

type TruckPerformance struct {
	TruckID string  `json:"truckId"`
	Trips   int     `json:"trips"`
	Profit  float64 `json:"profit"`
}

type MonthlyTrips struct {
	Month   string  `json:"month"`
	Trips   int     `json:"trips"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

type TransportReport struct {
	TotalTrips           int                `json:"totalTrips"`
	CompletedTrips       int                `json:"completedTrips"`
	TotalRevenue         float64            `json:"totalRevenue"`
	TotalExpenses        float64            `json:"totalExpenses"`
	TotalProfit          float64            `json:"totalProfit"`
	AverageProfitPerTrip float64            `json:"averageProfitPerTrip"`
	TopPerformingTrucks  []TruckPerformance `json:"topPerformingTrucks"`
	MonthlyData          []MonthlyTrips     `json:"monthlyData"`
	ExpenseBreakdown     TripExpenses       `json:"expenseBreakdown"`
}

type ModelPerformance struct {
	Model  string  `json:"model"`
	Count  int     `json:"count"`
	Profit float64 `json:"profit"`
}

type MonthlyPurchases struct {
	Month      string  `json:"month"`
	Purchases  int     `json:"purchases"`
	Investment float64 `json:"investment"`
}

type MonthlySales struct {
	Month   string  `json:"month"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

// InventoryExpenseBreakdown itemizes six expense heads and folds the
// other six (driver, diesel, toll, floor, fatta, builty) into Other.
type InventoryExpenseBreakdown struct {
	Transportation float64 `json:"transportation"`
	BodyWork       float64 `json:"bodyWork"`
	KamaniWork     float64 `json:"kamaniWork"`
	Tyre           float64 `json:"tyre"`
	Paint          float64 `json:"paint"`
	Insurance      float64 `json:"insurance"`
	Other          float64 `json:"other"`
}

type InventoryReport struct {
	TotalTrucks           int                       `json:"totalTrucks"`
	SoldTrucks            int                       `json:"soldTrucks"`
	AvailableTrucks       int                       `json:"availableTrucks"`
	TotalInvestment       float64                   `json:"totalInvestment"`
	TotalSalesRevenue     float64                   `json:"totalSalesRevenue"`
	TotalProfit           float64                   `json:"totalProfit"`
	AverageProfitPerTruck float64                   `json:"averageProfitPerTruck"`
	PendingNOCs           int                       `json:"pendingNOCs"`
	TopSellingModels      []ModelPerformance        `json:"topSellingModels"`
	MonthlyPurchases      []MonthlyPurchases        `json:"monthlyPurchases"`
	MonthlySales          []MonthlySales            `json:"monthlySales"`
	ExpenseBreakdown      InventoryExpenseBreakdown `json:"expenseBreakdown"`
}

type TransportMetrics struct {
	TotalTrips    int     `json:"totalTrips"`
	ActiveTrips   int     `json:"activeTrips"`
	MonthlyProfit float64 `json:"monthlyProfit"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

type InventoryMetrics struct {
	TotalTrucks int     `json:"totalTrucks"`
	SoldTrucks  int     `json:"soldTrucks"`
	PendingNOCs int     `json:"pendingNOCs"`
	TotalProfit float64 `json:"totalProfit"`
}

type OverallMetrics struct {
	TotalProfit     float64 `json:"totalProfit"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalInvestment float64 `json:"totalInvestment"`
	ROI             float64 `json:"roi"`
}

type DashboardMetrics struct {
	TransportMetrics TransportMetrics `json:"transportMetrics"`
	InventoryMetrics InventoryMetrics `json:"inventoryMetrics"`
	OverallMetrics   OverallMetrics   `json:"overallMetrics"`
}
