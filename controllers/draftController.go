package controllers

import (
	"timberbill-backend/billing"
	"timberbill-backend/database"
	"timberbill-backend/middlewares"
	"timberbill-backend/models"
	"timberbill-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// draftCustomer relaxes customerRef: a draft may not have a customer yet.
type draftCustomer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// draftItem relaxes itemRequest the same way: a row may not be named yet.
// Range checks on the numeric fields still apply.
type draftItem struct {
	ProductName string  `json:"productName"`
	Qty         float64 `json:"qty" validate:"min=0"`
	Unit        string  `json:"unit" validate:"omitempty,unit"`
	Price       float64 `json:"price" validate:"min=0"`
	ItemPercent float64 `json:"itemPercent" validate:"min=-100,max=1000"`
}

func (r draftItem) line() billing.LineItem {
	return itemRequest(r).line()
}

// draftRequest is a relaxed billRequest: everything optional, the item list
// may be empty, the invoice number is just whatever the form holds.
type draftRequest struct {
	InvoiceNo       int           `json:"invoiceNo" validate:"min=0"`
	Date            string        `json:"date"`
	Customer        draftCustomer `json:"customer"`
	Items           []draftItem   `json:"items" validate:"dive"`
	DiscountPercent *float64      `json:"discountPercent" validate:"omitempty,min=0,max=100"`
	Discount        *float64      `json:"discount" validate:"omitempty,min=0"`
	Received        float64       `json:"received" validate:"min=0"`
}

func (r draftRequest) snapshot() billing.Snapshot {
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

func CreateDraft(c *fiber.Ctx) error {
	var req draftRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	var draft models.Draft
	if err := draft.ApplySnapshot(req.snapshot()); err != nil {
		return err
	}
	if err := middlewares.RequestDB(c).Create(&draft).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(utils.Data(draft))
}

func GetDrafts(c *fiber.Ctx) error {
	var drafts []models.Draft
	err := database.DB.Order("updated_at DESC").Find(&drafts).Error
	if err != nil {
		return err
	}
	return c.JSON(utils.Data(drafts))
}

func GetDraft(c *fiber.Ctx) error {
	var draft models.Draft
	err := database.DB.Where("id = ?", c.Params("id")).First(&draft).Error
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusNotFound, "draft not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(utils.Data(draft))
}

func UpdateDraft(c *fiber.Ctx) error {
	var req draftRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	db := middlewares.RequestDB(c)

	var draft models.Draft
	err := db.Where("id = ?", c.Params("id")).First(&draft).Error
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusNotFound, "draft not found")
	}
	if err != nil {
		return err
	}

	if err := draft.ApplySnapshot(req.snapshot()); err != nil {
		return err
	}
	if err := db.Save(&draft).Error; err != nil {
		return err
	}

	return c.JSON(utils.Data(draft))
}

func DeleteDraft(c *fiber.Ctx) error {
	res := middlewares.RequestDB(c).Where("id = ?", c.Params("id")).Delete(&models.Draft{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "draft not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PromoteDraft turns a draft into a real bill. Runs inside the request
// transaction, so the bill insert and the draft delete land together: a
// promoted draft can never survive alongside its bill.
func PromoteDraft(c *fiber.Ctx) error {
	db := middlewares.RequestDB(c)

	var draft models.Draft
	err := db.Where("id = ?", c.Params("id")).First(&draft).Error
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusNotFound, "draft not found")
	}
	if err != nil {
		return err
	}

	snap := draft.Snapshot()
	if err := snap.ValidateFinalize(); err != nil {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}

	taken, err := invoiceNoTaken(db, snap.InvoiceNo, 0)
	if err != nil {
		return err
	}
	if taken {
		return fiber.NewError(fiber.StatusConflict, "invoice number already exists")
	}

	var bill models.Bill
	bill.ApplySnapshot(snap)
	if err := db.Create(&bill).Error; err != nil {
		return err
	}
	if err := db.Delete(&draft).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(utils.Data(respondBill(bill)))
}

type applyPercentRequest struct {
	Percent float64 `json:"percent" validate:"min=-100,max=1000"`
}

// ApplyPercentToDraft bakes a uniform percent into every priced item of the
// draft. The percent is folded into the price, so applying it twice compounds;
// the per-item percent resets to zero to make that visible.
func ApplyPercentToDraft(c *fiber.Ctx) error {
	var req applyPercentRequest
	if err := middlewares.BindAndValidate(c, &req); err != nil {
		return err
	}

	db := middlewares.RequestDB(c)

	var draft models.Draft
	err := db.Where("id = ?", c.Params("id")).First(&draft).Error
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusNotFound, "draft not found")
	}
	if err != nil {
		return err
	}

	snap := draft.Snapshot().ApplyPercentToAll(utils.Dec(req.Percent))
	if err := draft.ApplySnapshot(snap); err != nil {
		return err
	}
	if err := db.Save(&draft).Error; err != nil {
		return err
	}

	return c.JSON(utils.Data(draft))
}
