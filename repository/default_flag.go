package repositories

import (
	"github.com/google/uuid"
	apperrors "github.com/petbloom/backend/pkg/errors"
	"gorm.io/gorm"
)

// applyDefaultFlag enforces "at most one default row per owner" for any
// owner-scoped table with user_id and is_default columns. It must run
// inside a transaction. Serialization uses a per-owner advisory lock rather
// than row locks: row locks only cover committed rows, so two first-time
// inserts for the same owner would not see each other and could both commit
// as default. The advisory lock exists independent of the rows and is held
// until the transaction ends, so the second writer proceeds only after the
// first has committed and its rows are visible to the clearing UPDATE.
// A final count re-checks the invariant; seeing more than one default at
// that point means a logic bug, not a caller mistake.
func applyDefaultFlag(tx *gorm.DB, model interface{}, ownerID, targetID uuid.UUID) error {
	if err := tx.Exec(
		"SELECT pg_advisory_xact_lock(hashtextextended(?, 0))",
		ownerID.String(),
	).Error; err != nil {
		return err
	}

	if err := tx.Model(model).
		Where("user_id = ? AND id <> ?", ownerID, targetID).
		Update("is_default", false).Error; err != nil {
		return err
	}

	if err := tx.Model(model).
		Where("id = ?", targetID).
		Update("is_default", true).Error; err != nil {
		return err
	}

	var defaults int64
	if err := tx.Model(model).
		Where("user_id = ? AND is_default = ?", ownerID, true).
		Count(&defaults).Error; err != nil {
		return err
	}
	if defaults > 1 {
		return apperrors.ErrConflictingDefault
	}
	return nil
}
