// repository hides GORM/Redis details behind one interface.
// Data-access layer: loads and saves the whole ordered guest collection, nothing else.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"CeibaCheckIn/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotStored means no collection has been persisted yet (first boot).
var ErrNotStored = errors.New("guest collection not stored")

// GuestRepository owns load/save of the ordered guest collection.
// Save always replaces what was stored before.
type GuestRepository interface {
	Load(ctx context.Context) ([]models.Guest, error)
	Save(ctx context.Context, guests []models.Guest) error
}

// collectionID is the primary key of the one GuestCollection marker row.
const collectionID = 1

// guestRepo stores one row per guest; Position keeps the collection order.
type guestRepo struct{ db *gorm.DB }

// NewGuestRepository returns the SQL-backed repository (any GORM dialect).
func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepo{db: db}
}

// Load returns guests ordered by position. No rows and no marker row is ErrNotStored;
// no rows with a marker is a saved empty collection.
func (r *guestRepo) Load(ctx context.Context) ([]models.Guest, error) {
	db := r.db.WithContext(ctx)
	items := []models.Guest{}
	if err := db.Order("position ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("load guests: %w", err)
	}
	if len(items) > 0 {
		return items, nil
	}

	var saves int64
	if err := db.Model(&models.GuestCollection{}).Count(&saves).Error; err != nil {
		return nil, fmt.Errorf("load guests: %w", err)
	}
	if saves == 0 {
		return nil, ErrNotStored
	}
	return items, nil
}

// Save swaps the table content in one transaction.
func (r *guestRepo) Save(ctx context.Context, guests []models.Guest) error {
	rows := make([]models.Guest, len(guests))
	for i, g := range guests {
		g.ID = 0 // fresh rows, ids are not stable across saves
		g.Position = i
		rows[i] = g
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Guest{}).Error; err != nil {
			return err
		}
		if len(rows) > 0 { // GORM rejects an empty batch
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		marker := models.GuestCollection{ID: collectionID, Count: len(rows), SavedAt: time.Now().UTC()}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&marker).Error
	})
	if err != nil {
		return fmt.Errorf("save guests: %w", err)
	}
	return nil
}

// IsNotStored reports whether err means "nothing persisted yet".
func IsNotStored(err error) bool {
	return errors.Is(err, ErrNotStored)
}
