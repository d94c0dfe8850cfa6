// Package repository maps the catalog entities onto relational rows.
// Every method runs in a single statement or transaction and reports
// failures as *apperr.AppError.
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/pageza/dippingsauce/backend/internal/apperr"
	"github.com/pageza/dippingsauce/backend/internal/types"
)

// translate maps store errors onto the application taxonomy. resource
// names the entity in client-facing messages.
func translate(err error, resource string) error {
	if err == nil {
		return nil
	}

	var appErr *apperr.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(resource)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Conflict(resource + " already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperr.Conflict(resource + " is still referenced")
	default:
		return apperr.Internal(err)
	}
}

// paginate applies a clamped offset/limit window
func paginate(page types.Page) func(*gorm.DB) *gorm.DB {
	p := page.Clamp()
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Offset).Limit(p.Limit)
	}
}

// mustExist fails with NotFound(resource) when no row of model has id
func mustExist(tx *gorm.DB, model interface{}, id uint, resource string) error {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperr.Internal(err)
	}
	if count == 0 {
		return apperr.NotFound(resource)
	}
	return nil
}

// referenced reports whether any row of model has column = id
func referenced(tx *gorm.DB, model interface{}, column string, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where(column+" = ?", id).Count(&count).Error; err != nil {
		return false, apperr.Internal(err)
	}
	return count > 0, nil
}
