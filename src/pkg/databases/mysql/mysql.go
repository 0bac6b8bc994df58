package mysql

import (
	"fmt"
	"time"

	"storefront-service/src/pkg/log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

// DBInterface hides the concrete pool so repositories can be tested with a
// mocked connection.
type DBInterface interface {
	GetDB() (*sqlx.DB, error)
	Close() error
}

type database struct {
	db *sqlx.DB
}

// InitConnection opens the MySQL pool from Viper config. clientFoundRows
// makes RowsAffected report matched rows, so a no-op UPDATE of an existing
// row is not mistaken for a missing one.
func InitConnection(v *viper.Viper, logger log.Log) (DBInterface, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC&clientFoundRows=true",
		v.GetString("database.username"),
		v.GetString("database.password"),
		v.GetString("database.host"),
		v.GetInt("database.port"),
		v.GetString("database.name"),
	)

	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		logger.Error("mysql-init", err.Error(), "connect", "")
		return nil, err
	}

	db.SetMaxOpenConns(v.GetInt("database.pool.max_open"))
	db.SetMaxIdleConns(v.GetInt("database.pool.max_idle"))
	db.SetConnMaxLifetime(time.Duration(v.GetInt("database.pool.max_lifetime_minutes")) * time.Minute)

	logger.Info("mysql-init", "database connection established", "connect", v.GetString("database.name"))
	return &database{db: db}, nil
}

// NewWithDB wraps an existing pool, used by tests with sqlmock.
func NewWithDB(db *sqlx.DB) DBInterface {
	return &database{db: db}
}

func (d *database) GetDB() (*sqlx.DB, error) {
	if d.db == nil {
		return nil, fmt.Errorf("database connection is not initialized")
	}
	return d.db, nil
}

func (d *database) Close() error {
	if d.db == nil {
		return nil
	}
	return d.db.Close()
}
