package database

import (
	"fmt"

	"timberbill-backend/models"

	"gorm.io/gorm"
)

// Migrate applies idempotent schema migrations:
// - AutoMigrate (tables/columns/tag indexes)
// - partial unique index on bills.invoice_no among non-deleted rows, the
//   arbitration point for two concurrent finalizes proposing the same number
// - basic CHECK constraints on money columns
func Migrate() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.User{},
			&models.Customer{},
			&models.Category{},
			&models.Material{},
			&models.Size{},
			&models.Fitting{},
			&models.Bill{},
			&models.BillItem{},
			&models.Draft{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		indexes := []string{
			// Uniqueness holds among live bills only; a deleted bill's number
			// stays on record but no longer blocks anything.
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_bills_invoice_no_live ON bills (invoice_no) WHERE NOT deleted`,
			`CREATE INDEX IF NOT EXISTS idx_bills_created_at ON bills (created_at DESC)`,
			`CREATE INDEX IF NOT EXISTS idx_bill_items_bill_position ON bill_items (bill_id, position)`,
			`CREATE INDEX IF NOT EXISTS idx_bill_items_product ON bill_items (product_name)`,
			`CREATE INDEX IF NOT EXISTS idx_drafts_created_at ON drafts (created_at DESC)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		checks := []string{
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'bills'::regclass
					  AND conname  = 'chk_bills_invoice_no_positive'
				) THEN
					ALTER TABLE bills
					ADD CONSTRAINT chk_bills_invoice_no_positive
					CHECK (invoice_no > 0);
				END IF;
			END $$;`,
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'bills'::regclass
					  AND conname  = 'chk_bills_money_nonneg'
				) THEN
					ALTER TABLE bills
					ADD CONSTRAINT chk_bills_money_nonneg
					CHECK (sub_total >= 0 AND total >= 0 AND received >= 0 AND balance >= 0);
				END IF;
			END $$;`,
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'bill_items'::regclass
					  AND conname  = 'chk_bill_items_qty_price_nonneg'
				) THEN
					ALTER TABLE bill_items
					ADD CONSTRAINT chk_bill_items_qty_price_nonneg
					CHECK (qty >= 0 AND price >= 0);
				END IF;
			END $$;`,
		}
		for _, stmt := range checks {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint migration failed: %w", err)
			}
		}

		return nil
	})
}
