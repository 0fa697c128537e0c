package gormstore

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"posreport/internal/store"
	"posreport/internal/store/model"
	"posreport/internal/types"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultQueryTimeout bounds OpenPositions when no timeout is configured.
const DefaultQueryTimeout = 30 * time.Second

// Reader implements store.PositionReader on top of any gorm dialector.
type Reader struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

var _ store.PositionReader = (*Reader)(nil)

// Open connects through dialector with gorm logging silenced.
func Open(dialector gorm.Dialector, queryTimeout time.Duration) (*Reader, error) {
	if dialector == nil {
		return nil, store.ErrNotConfigured
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("gorm store: open %s: %w", dialector.Name(), err)
	}
	if sqlDB, err := db.DB(); err == nil {
		// One query per run.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}
	return NewFromDB(db, queryTimeout)
}

// NewFromDB wraps an existing connection.
func NewFromDB(db *gorm.DB, queryTimeout time.Duration) (*Reader, error) {
	if db == nil {
		return nil, fmt.Errorf("gorm db cannot be nil")
	}
	if queryTimeout <= 0 {
		queryTimeout = DefaultQueryTimeout
	}
	return &Reader{db: db, queryTimeout: queryTimeout}, nil
}

// OpenPositions runs store.OpenPositionsQuery under the query timeout.
func (r *Reader) OpenPositions(ctx context.Context) ([]types.Position, error) {
	if r == nil || r.db == nil {
		return nil, store.ErrNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	var rows []model.OpenPositionRow
	if err := r.db.WithContext(ctx).Raw(store.OpenPositionsQuery, store.StatusOpen).Scan(&rows).Error; err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("query open positions: %w (%v)", ctxErr, err)
		}
		return nil, fmt.Errorf("query open positions: %w", err)
	}
	return model.ToPositions(rows), nil
}

// Close closes the underlying database connection.
func (r *Reader) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SQLDB exposes the underlying *sql.DB.
func (r *Reader) SQLDB() (*sql.DB, error) {
	if r == nil || r.db == nil {
		return nil, store.ErrNotConfigured
	}
	return r.db.DB()
}
