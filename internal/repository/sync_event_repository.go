package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/leadbridge/dialer-sync-api/internal/domain"
	"gorm.io/gorm"
)

// SyncEventRepository stores the audit trail of processed webhooks
type SyncEventRepository struct {
	db *gorm.DB
}

// NewSyncEventRepository creates a new SyncEventRepository
func NewSyncEventRepository(db *gorm.DB) *SyncEventRepository {
	return &SyncEventRepository{db: db}
}

// Create inserts a sync event
func (r *SyncEventRepository) Create(ctx context.Context, event *domain.SyncEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create sync event: %w", err)
	}
	return nil
}

// SyncEventFilters narrows event listings
type SyncEventFilters struct {
	LocationID string
	Phone      string
	Action     domain.SyncAction
}

// List returns events newest first, paginated, with optional filters
func (r *SyncEventRepository) List(ctx context.Context, page, pageSize int, filters *SyncEventFilters) ([]domain.SyncEvent, int64, error) {
	query := r.db.WithContext(ctx).Model(&domain.SyncEvent{})
	if filters != nil {
		if filters.LocationID != "" {
			query = query.Where("location_id = ?", filters.LocationID)
		}
		if filters.Phone != "" {
			query = query.Where("phone = ?", filters.Phone)
		}
		if filters.Action != "" {
			query = query.Where("action = ?", filters.Action)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sync events: %w", err)
	}

	var events []domain.SyncEvent
	err := query.
		Order("created_at desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&events).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sync events: %w", err)
	}

	return events, total, nil
}

// DeleteOlderThan prunes events created before the cutoff and returns the
// number of rows removed
func (r *SyncEventRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&domain.SyncEvent{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to prune sync events: %w", result.Error)
	}
	return result.RowsAffected, nil
}
