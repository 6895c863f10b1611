package services

import (
	"github.com/JacobDishman/IS-403-Project/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SyncEventToGoals auto-logs progress on every incomplete goal whose
// category matches a newly created event's type. Fires only on event
// creation: updates never re-trigger it and deletes never compensate.
//
// The whole rule is one conditional UPDATE, so two events created at the
// same time both land their increment instead of racing a read-then-write
// loop. Goals already at or past target are filtered out by the
// current_count < target_count predicate, which also guarantees
// target_count > 0 for every row the update touches.
func SyncEventToGoals(tx *gorm.DB, userID uuid.UUID, category models.Category) (int64, error) {
	res := tx.Model(&models.Goal{}).
		Where("user_id = ? AND category = ? AND is_completed = ? AND current_count < target_count",
			userID, category, false).
		Updates(map[string]interface{}{
			"current_count": gorm.Expr("current_count + 1"),
			"is_completed":  gorm.Expr("current_count + 1 >= target_count"),
		})
	return res.RowsAffected, res.Error
}
