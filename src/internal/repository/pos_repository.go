package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"storefront-service/src/internal/entity"
	"storefront-service/src/pkg/databases/mysql"
)

type POSRepository struct {
	DB mysql.DBInterface
}

func NewPOSRepository(db mysql.DBInterface) *POSRepository {
	return &POSRepository{
		DB: db,
	}
}

// CreateSale inserts the sale header and its items and moves stock, all in
// one transaction. Stock guards live in the WHERE clauses.
func (r *POSRepository) CreateSale(ctx context.Context, sale *entity.POSTransaction) error {
	return withTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		header := `
			INSERT INTO pos_transactions
				(id, transaction_number, subtotal, tax, total, payment_method, payment_status, user_id, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
		`
		_, err := tx.ExecContext(ctx, header,
			sale.ID, sale.TransactionNumber, sale.Subtotal, sale.Tax, sale.Total,
			sale.PaymentMethod, sale.PaymentStatus, sale.UserID)
		if isDuplicateEntry(err) {
			return ErrDuplicateReference
		}
		if err != nil {
			return err
		}

		for _, item := range sale.Items {
			insert := `
				INSERT INTO pos_transaction_items
					(pos_transaction_id, product_id, name, price, quantity, variant, line_total)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`
			if _, err := tx.ExecContext(ctx, insert,
				sale.ID, item.ProductID, item.Name, item.Price, item.Quantity, item.Variant, item.LineTotal); err != nil {
				return err
			}

			res, err := tx.ExecContext(ctx, `
				UPDATE products
				SET stock = stock - ?, sold = sold + ?, updated_at = NOW()
				WHERE id = ? AND stock >= ?
			`, item.Quantity, item.Quantity, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if affected, _ := res.RowsAffected(); affected == 0 {
				return ErrInsufficientStock
			}

			if item.Variant != nil {
				res, err := tx.ExecContext(ctx, `
					UPDATE product_variants
					SET stock = stock - ?
					WHERE product_id = ? AND name = ? AND stock >= ?
				`, item.Quantity, item.ProductID, *item.Variant, item.Quantity)
				if err != nil {
					return err
				}
				if affected, _ := res.RowsAffected(); affected == 0 {
					return ErrInsufficientStock
				}
			}
		}

		return nil
	})
}

func (r *POSRepository) FindByID(ctx context.Context, id string) (*entity.POSTransaction, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var sale entity.POSTransaction
	header := `
		SELECT id, transaction_number, subtotal, tax, total, payment_method, payment_status, paid_at, user_id, created_at, updated_at
		FROM pos_transactions
		WHERE id = ?
	`
	err = db.GetContext(ctx, &sale, header, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	items := []entity.POSTransactionItem{}
	itemQuery := `
		SELECT id, pos_transaction_id, product_id, name, price, quantity, variant, line_total
		FROM pos_transaction_items
		WHERE pos_transaction_id = ?
		ORDER BY id ASC
	`
	if err = db.SelectContext(ctx, &items, itemQuery, id); err != nil {
		return nil, err
	}
	sale.Items = items

	return &sale, nil
}

// MarkPaid moves pending -> paid and credits product revenue from the sale
// items. A sale in any other state is left untouched.
func (r *POSRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time) error {
	return withTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		status, err := r.lockStatus(ctx, tx, id)
		if err != nil {
			return err
		}
		if status != entity.PaymentStatusPending {
			return ErrInvalidTransition
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE pos_transactions
			SET payment_status = ?, paid_at = ?, updated_at = NOW()
			WHERE id = ?
		`, entity.PaymentStatusPaid, paidAt, id); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE products p
			JOIN pos_transaction_items i ON i.product_id = p.id AND i.pos_transaction_id = ?
			SET p.revenue = p.revenue + i.line_total, p.updated_at = NOW()
		`, id)
		return err
	})
}

// Cancel moves pending -> cancelled and hands the reserved stock back.
func (r *POSRepository) Cancel(ctx context.Context, id string) error {
	return withTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		status, err := r.lockStatus(ctx, tx, id)
		if err != nil {
			return err
		}
		if status != entity.PaymentStatusPending {
			return ErrInvalidTransition
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE pos_transactions
			SET payment_status = ?, updated_at = NOW()
			WHERE id = ?
		`, entity.PaymentStatusCancelled, id); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			UPDATE products p
			JOIN pos_transaction_items i ON i.product_id = p.id AND i.pos_transaction_id = ?
			SET p.stock = p.stock + i.quantity, p.sold = p.sold - i.quantity, p.updated_at = NOW()
		`, id); err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE product_variants v
			JOIN pos_transaction_items i
				ON i.product_id = v.product_id AND i.variant = v.name AND i.pos_transaction_id = ?
			SET v.stock = v.stock + i.quantity
		`, id)
		return err
	})
}

func (r *POSRepository) lockStatus(ctx context.Context, tx *sqlx.Tx, id string) (entity.PaymentStatus, error) {
	var status entity.PaymentStatus
	err := tx.GetContext(ctx, &status, `
		SELECT payment_status FROM pos_transactions WHERE id = ? FOR UPDATE
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	return status, err
}
