package controllers

import (
	"timberbill-backend/database"
	"timberbill-backend/models"
	"timberbill-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// liveBills scopes a report query to non-deleted bills, optionally clipped to
// the dateFrom/dateTo query params (bill dates are ISO strings, so lexical
// comparison is date comparison).
func liveBills(c *fiber.Ctx) *gorm.DB {
	q := database.DB.Model(&models.Bill{}).Where("NOT deleted")
	if from := c.Query("dateFrom"); from != "" {
		q = q.Where("date >= ?", from)
	}
	if to := c.Query("dateTo"); to != "" {
		q = q.Where("date <= ?", to)
	}
	return q
}

type summaryRow struct {
	TotalBills      int64           `json:"totalBills"`
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalReceived   decimal.Decimal `json:"totalReceived"`
	TotalBalance    decimal.Decimal `json:"totalBalance"`
	UniqueCustomers int64           `json:"uniqueCustomers"`
	AverageBill     decimal.Decimal `json:"averageBill"`
}

func GetSummary(c *fiber.Ctx) error {
	var row summaryRow
	err := liveBills(c).
		Select(`COUNT(*) AS total_bills,
			COALESCE(SUM(total), 0) AS total_revenue,
			COALESCE(SUM(received), 0) AS total_received,
			COALESCE(SUM(balance), 0) AS total_balance,
			COUNT(DISTINCT customer_name) AS unique_customers,
			COALESCE(AVG(total), 0) AS average_bill`).
		Scan(&row).Error
	if err != nil {
		return err
	}
	row.AverageBill = utils.Round2(row.AverageBill)
	return c.JSON(utils.Data(row))
}

type trendRow struct {
	Date    string          `json:"date"`
	Bills   int64           `json:"bills"`
	Revenue decimal.Decimal `json:"revenue"`
}

func GetRevenueTrend(c *fiber.Ctx) error {
	var rows []trendRow
	err := liveBills(c).
		Select("date, COUNT(*) AS bills, COALESCE(SUM(total), 0) AS revenue").
		Group("date").
		Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		return err
	}
	return c.JSON(utils.Data(rows))
}

type topCustomerRow struct {
	CustomerName string          `json:"customerName"`
	Bills        int64           `json:"bills"`
	Revenue      decimal.Decimal `json:"revenue"`
	Balance      decimal.Decimal `json:"balance"`
}

func GetTopCustomers(c *fiber.Ctx) error {
	limit := utils.ParseIntDefault(c.Query("limit"), 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	var rows []topCustomerRow
	err := liveBills(c).
		Select(`customer_name,
			COUNT(*) AS bills,
			COALESCE(SUM(total), 0) AS revenue,
			COALESCE(SUM(balance), 0) AS balance`).
		Group("customer_name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return err
	}
	return c.JSON(utils.Data(rows))
}

type topProductRow struct {
	ProductName string          `json:"productName"`
	Qty         decimal.Decimal `json:"qty"`
	Revenue     decimal.Decimal `json:"revenue"`
}

func GetTopProducts(c *fiber.Ctx) error {
	limit := utils.ParseIntDefault(c.Query("limit"), 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	var rows []topProductRow
	err := liveBills(c).
		Joins("JOIN bill_items ON bill_items.bill_id = bills.id").
		Select(`bill_items.product_name,
			COALESCE(SUM(bill_items.qty), 0) AS qty,
			COALESCE(SUM(bill_items.amount), 0) AS revenue`).
		Group("bill_items.product_name").
		Order("revenue DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return err
	}
	return c.JSON(utils.Data(rows))
}

type paymentStatusRow struct {
	Status  string          `json:"status"`
	Bills   int64           `json:"bills"`
	Revenue decimal.Decimal `json:"revenue"`
	Balance decimal.Decimal `json:"balance"`
}

// GetPaymentStatus buckets live bills into paid / partial / unpaid by
// balance. Zero balance means paid, including the degenerate zero-total bill.
func GetPaymentStatus(c *fiber.Ctx) error {
	var rows []paymentStatusRow
	err := liveBills(c).
		Select(`CASE
				WHEN balance <= 0 THEN 'paid'
				WHEN balance < total THEN 'partial'
				ELSE 'unpaid'
			END AS status,
			COUNT(*) AS bills,
			COALESCE(SUM(total), 0) AS revenue,
			COALESCE(SUM(balance), 0) AS balance`).
		Group("status").
		Order("status ASC").
		Scan(&rows).Error
	if err != nil {
		return err
	}
	return c.JSON(utils.Data(rows))
}

func GetRecentBills(c *fiber.Ctx) error {
	limit := utils.ParseIntDefault(c.Query("limit"), 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	var bills []models.Bill
	err := liveBills(c).
		Order("created_at DESC").
		Limit(limit).
		Find(&bills).Error
	if err != nil {
		return err
	}
	return c.JSON(utils.Data(bills))
}
