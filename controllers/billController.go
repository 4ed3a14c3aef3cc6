package controllers

import (
	"net/url"
	"time"

	"timberbill-backend/billing"
	"timberbill-backend/database"
	"timberbill-backend/middlewares"
	"timberbill-backend/models"
	"timberbill-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	priceHistoryWindow = 10 // how many recent bills to scan
	priceHistoryCap    = 5  // distinct prices to return
)

type itemRequest struct {
	ProductName string  `json:"productName" validate:"required"`
	Qty         float64 `json:"qty" validate:"min=0"`
	Unit        string  `json:"unit" validate:"omitempty,unit"`
	Price       float64 `json:"price" validate:"min=0"`
	ItemPercent float64 `json:"itemPercent" validate:"min=-100,max=1000"`
}

type customerRef struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
}

type billRequest struct {
	InvoiceNo       int           `json:"invoiceNo" validate:"required,gt=0"`
	Date            string        `json:"date" validate:"required"`
	Customer        customerRef   `json:"customer"`
	Items           []itemRequest `json:"items" validate:"required,min=1,dive"`
	DiscountPercent *float64      `json:"discountPercent" validate:"omitempty,min=0,max=100"`
	Discount        *float64      `json:"discount" validate:"omitempty,min=0"`
	Received        float64       `json:"received" validate:"min=0"`
}

// line converts a request row into a core line item. Ply metadata is
// rederived from the name (descriptive only); the quantity the client sends
// wins, so a manual correction on a ply row is not clobbered at save time.
func (r itemRequest) line() billing.LineItem {
	unit := r.Unit
	if unit == "" {
		unit = billing.UnitPcs
	}
	item := billing.LineItem{
		ProductName: r.ProductName,
		Qty:         utils.Dec(r.Qty),
		Unit:        unit,
		Price:       utils.Dec(r.Price),
		ItemPercent: utils.Dec(r.ItemPercent),
	}
	if dims, ok := billing.DetectPlyPattern(r.ProductName); ok {
		item.IsPly = true
		item.Height = dims.Height
		item.Width = dims.Width
		item.Pieces = dims.Pieces
	}
	return item
}

// snapshot rebuilds the fully derived bill state from the request. Whatever
// totals the client computed are discarded and rederived here.
func (r billRequest) snapshot() billing.Snapshot {
	items := make([]billing.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, it.line())
	}
	snap := billing.Rebuild(billing.Snapshot{
		InvoiceNo: r.InvoiceNo,
		Date:      r.Date,
		Customer:  billing.Customer{Name: r.Customer.Name, Phone: r.Customer.Phone},
		Items:     items,
		Received:  utils.Dec(r.Received),
	})
	switch {
	case r.Discount != nil:
		snap = snap.SetDiscountAmount(utils.Dec(*r.Discount))
	case r.DiscountPercent != nil:
		snap = snap.SetDiscountPercent(utils.Dec(*r.DiscountPercent))
	}
	return snap
}

// billResponse decorates a bill with its printed amount-in-words line.
type billResponse struct {
	models.Bill
	AmountWords string `json:"amountWords"`
}

func respondBill(b models.Bill) billResponse {
	return billResponse{Bill: b, AmountWords: utils.AmountInWordsIndian(b.Total.Round(0).IntPart())}
}

// invoiceNoTaken reports whether another live bill already holds the number.
func invoiceNoTaken(db *gorm.DB, invoiceNo int, excludeID uint) (bool, error) {
	var count int64
	q := db.Model(&models.Bill{}).Where("invoice_no = ? AND NOT deleted", invoiceNo)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// NextInvoiceNo suggests max+1 among non-deleted bills. Deleted numbers are
// never reused but leave gaps; the suggestion is monotonic, not gap-free.
func NextInvoiceNo(c *fiber.Ctx) error {
	var max int64
	err := database.DB.Model(&models.Bill{}).
		Where("NOT deleted").
		Select("COALESCE(MAX(invoice_no), 0)").
		Scan(&max).Error
	if err != nil {
		return err
	}
	return c.JSON(utils.Data(fiber.Map{"nextInvoiceNo": max + 1}))
}

func CreateBill(c *fiber.Ctx) error {
	var req billRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	db := middlewares.RequestDB(c)

	taken, err := invoiceNoTaken(db, req.InvoiceNo, 0)
	if err != nil {
		return err
	}
	if taken {
		return fiber.NewError(fiber.StatusConflict, "invoice number already exists")
	}

	var bill models.Bill
	bill.ApplySnapshot(req.snapshot())

	// The partial unique index still arbitrates if a concurrent create slips
	// past the check above; the loser surfaces as a 409.
	if err := db.Create(&bill).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(utils.Data(respondBill(bill)))
}

func GetBills(c *fiber.Ctx) error {
	page := utils.ParseIntDefault(c.Query("page"), 1)
	if page < 1 {
		page = 1
	}
	limit := utils.ParseIntDefault(c.Query("limit"), 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := database.DB.Model(&models.Bill{}).Where("NOT deleted").Count(&total).Error; err != nil {
		return err
	}

	var bills []models.Bill
	err := database.DB.
		Where("NOT deleted").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Find(&bills).Error
	if err != nil {
		return err
	}

	return c.JSON(utils.Page(bills, total, page, limit))
}

func GetBill(c *fiber.Ctx) error {
	var bill models.Bill
	err := database.DB.
		Where("id = ? AND NOT deleted", c.Params("id")).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&bill).Error
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusNotFound, "bill not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(utils.Data(respondBill(bill)))
}

func UpdateBill(c *fiber.Ctx) error {
	var req billRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	db := middlewares.RequestDB(c)

	var bill models.Bill
	err := db.Where("id = ? AND NOT deleted", c.Params("id")).First(&bill).Error
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusNotFound, "bill not found")
	}
	if err != nil {
		return err
	}

	taken, err := invoiceNoTaken(db, req.InvoiceNo, bill.ID)
	if err != nil {
		return err
	}
	if taken {
		return fiber.NewError(fiber.StatusConflict, "invoice number already exists")
	}

	// Replace the item rows wholesale; positions are reassigned from the
	// request order.
	if err := db.Where("bill_id = ?", bill.ID).Delete(&models.BillItem{}).Error; err != nil {
		return err
	}
	bill.ApplySnapshot(req.snapshot())
	if err := db.Session(&gorm.Session{FullSaveAssociations: true}).Save(&bill).Error; err != nil {
		return err
	}

	return c.JSON(utils.Data(respondBill(bill)))
}

// DeleteBill soft-deletes. Deleting an already-deleted bill is a reported
// conflict, not a silent no-op.
func DeleteBill(c *fiber.Ctx) error {
	db := middlewares.RequestDB(c)

	var bill models.Bill
	err := db.Where("id = ?", c.Params("id")).First(&bill).Error
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusNotFound, "bill not found")
	}
	if err != nil {
		return err
	}
	if bill.Deleted {
		return fiber.NewError(fiber.StatusConflict, "bill already deleted")
	}

	now := time.Now().UTC()
	bill.Deleted = true
	bill.DeletedAt = &now
	if err := db.Model(&bill).Select("Deleted", "DeletedAt").Updates(&bill).Error; err != nil {
		return err
	}

	return c.JSON(utils.Data(fiber.Map{
		"billId":    bill.ID,
		"invoiceNo": bill.InvoiceNo,
		"deletedAt": bill.DeletedAt,
	}))
}

// GetPriceHistory returns the most recent distinct prices charged for the
// exact product name, scanning a bounded window of recent live bills.
func GetPriceHistory(c *fiber.Ctx) error {
	productName, err := url.PathUnescape(c.Params("productName"))
	if err != nil {
		productName = c.Params("productName")
	}

	var bills []models.Bill
	err = database.DB.
		Where("NOT deleted").
		Where("id IN (?)", database.DB.Model(&models.BillItem{}).
			Select("bill_id").
			Where("product_name = ?", productName)).
		Order("created_at DESC").
		Limit(priceHistoryWindow).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Find(&bills).Error
	if err != nil {
		return err
	}

	window := make([]billing.HistoryBill, 0, len(bills))
	for _, b := range bills {
		window = append(window, billing.HistoryBill{Date: b.CreatedAt, Items: b.Lines()})
	}

	history := billing.PriceHistory(window, productName, priceHistoryCap)
	return c.JSON(utils.Data(history))
}
