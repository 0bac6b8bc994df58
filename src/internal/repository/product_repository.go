package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"storefront-service/src/internal/entity"
	"storefront-service/src/pkg/databases/mysql"
)

type ProductRepository struct {
	DB mysql.DBInterface
}

func NewProductRepository(db mysql.DBInterface) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

func (r *ProductRepository) List(ctx context.Context, category string, posOnly bool) ([]entity.Product, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, description, price, category, image_url, stock, views, sold, revenue, pos_enabled, created_at, updated_at
		FROM products
	`
	conditions := []string{}
	args := []interface{}{}
	if category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, category)
	}
	if posOnly {
		conditions = append(conditions, "pos_enabled = 1")
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	products := []entity.Product{}
	if err = db.SelectContext(ctx, &products, query, args...); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	db, err := r.DB.GetDB()
	if err != nil {
		return nil, err
	}

	var product entity.Product
	query := `
		SELECT id, name, description, price, category, image_url, stock, views, sold, revenue, pos_enabled, created_at, updated_at
		FROM products
		WHERE id = ?
	`
	err = db.GetContext(ctx, &product, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	variants := []entity.ProductVariant{}
	if err = db.SelectContext(ctx, &variants, `
		SELECT id, product_id, name, price, stock FROM product_variants WHERE product_id = ? ORDER BY id ASC
	`, id); err != nil {
		return nil, err
	}
	product.Variants = variants

	return &product, nil
}

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return withTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		insert := `
			INSERT INTO products
				(id, name, description, price, category, image_url, stock, views, sold, revenue, pos_enabled, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, 0, 0, 0, ?, NOW(), NOW())
		`
		if _, err := tx.ExecContext(ctx, insert,
			product.ID, product.Name, product.Description, product.Price, product.Category,
			product.ImageURL, product.Stock, product.POSEnabled); err != nil {
			return err
		}

		for _, v := range product.Variants {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO product_variants (product_id, name, price, stock) VALUES (?, ?, ?, ?)
			`, product.ID, v.Name, v.Price, v.Stock); err != nil {
				return err
			}
		}
		return nil
	})
}

// Update writes only the provided columns.
func (r *ProductRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	sets := make([]string, 0, len(fields)+1)
	args := make([]interface{}, 0, len(fields)+1)
	for column, value := range fields {
		sets = append(sets, fmt.Sprintf("%s = ?", column))
		args = append(args, value)
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE products SET %s WHERE id = ?", strings.Join(sets, ", "))
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementViews is best effort; callers ignore the error.
func (r *ProductRepository) IncrementViews(ctx context.Context, id string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `UPDATE products SET views = views + 1 WHERE id = ?`, id)
	return err
}
