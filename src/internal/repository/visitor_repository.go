package repository

import (
	"context"

	"storefront-service/src/internal/entity"
	"storefront-service/src/pkg/databases/mysql"
)

type VisitorRepository struct {
	DB mysql.DBInterface
}

func NewVisitorRepository(db mysql.DBInterface) *VisitorRepository {
	return &VisitorRepository{
		DB: db,
	}
}

func (r *VisitorRepository) Insert(ctx context.Context, visitor *entity.Visitor) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}

	insert := `
		INSERT INTO visitors
			(id, fingerprint, ip_hash, user_agent, path, referrer, country, session_id, created_at, last_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`
	_, err = db.ExecContext(ctx, insert,
		visitor.ID, visitor.Fingerprint, visitor.IPHash, visitor.UserAgent,
		visitor.Path, visitor.Referrer, visitor.Country, visitor.SessionID)
	return err
}

// TouchSession refreshes last_active for presence queries.
func (r *VisitorRepository) TouchSession(ctx context.Context, sessionID string) error {
	db, err := r.DB.GetDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		UPDATE visitors SET last_active = NOW() WHERE session_id = ?
	`, sessionID)
	return err
}
