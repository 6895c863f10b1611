package services

import (
	"errors"
	"strings"

	"github.com/JacobDishman/IS-403-Project/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GoalProgress is the state reported back by the increment/decrement
// endpoints.
type GoalProgress struct {
	CurrentCount int  `json:"current_count"`
	TargetCount  int  `json:"target_count"`
	IsCompleted  bool `json:"is_completed"`
}

func findGoal(db *gorm.DB, userID, goalID uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	err := db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// IncrementGoal bumps current_count by one. Incrementing a goal that is
// already completed is a no-op and reports the unchanged state.
func IncrementGoal(db *gorm.DB, userID, goalID uuid.UUID) (*GoalProgress, error) {
	goal, err := findGoal(db, userID, goalID)
	if err != nil {
		return nil, err
	}

	if goal.IsCompleted {
		return &GoalProgress{
			CurrentCount: goal.CurrentCount,
			TargetCount:  goal.TargetCount,
			IsCompleted:  true,
		}, nil
	}

	newCount := goal.CurrentCount + 1
	completed := goal.TargetCount > 0 && newCount >= goal.TargetCount

	err = db.Model(goal).Updates(map[string]interface{}{
		"current_count": newCount,
		"is_completed":  completed,
	}).Error
	if err != nil {
		return nil, err
	}

	return &GoalProgress{
		CurrentCount: newCount,
		TargetCount:  goal.TargetCount,
		IsCompleted:  completed,
	}, nil
}

// DecrementGoal lowers current_count by one, clamping at zero. A goal
// already at zero is reported back without a write.
func DecrementGoal(db *gorm.DB, userID, goalID uuid.UUID) (*GoalProgress, error) {
	goal, err := findGoal(db, userID, goalID)
	if err != nil {
		return nil, err
	}

	if goal.CurrentCount <= 0 {
		return &GoalProgress{
			CurrentCount: 0,
			TargetCount:  goal.TargetCount,
			IsCompleted:  false,
		}, nil
	}

	newCount := goal.CurrentCount - 1
	completed := goal.TargetCount > 0 && newCount >= goal.TargetCount

	err = db.Model(goal).Updates(map[string]interface{}{
		"current_count": newCount,
		"is_completed":  completed,
	}).Error
	if err != nil {
		return nil, err
	}

	return &GoalProgress{
		CurrentCount: newCount,
		TargetCount:  goal.TargetCount,
		IsCompleted:  completed,
	}, nil
}

// SetGoalCompletion is the manual "mark complete" toggle. It overrides
// the count comparison and never touches current_count.
func SetGoalCompletion(db *gorm.DB, userID, goalID uuid.UUID, completed bool) (*models.Goal, error) {
	goal, err := findGoal(db, userID, goalID)
	if err != nil {
		return nil, err
	}

	if err := db.Model(goal).Update("is_completed", completed).Error; err != nil {
		return nil, err
	}
	goal.IsCompleted = completed
	return goal, nil
}

func CreateGoal(db *gorm.DB, userID uuid.UUID, req models.CreateGoalRequest) (*models.Goal, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, validationErrorf("Title is required")
	}

	category, ok := models.NormalizeCategory(req.Category)
	if !ok {
		return nil, validationErrorf("Invalid category. Must be: Spiritual, Social, Intellectual, Physical, or Romantic")
	}

	if req.TargetCount < 0 {
		return nil, validationErrorf("Target count must not be negative")
	}

	goal := models.Goal{
		UserID:      userID,
		Title:       title,
		Category:    category,
		TargetCount: req.TargetCount,
		Description: req.Description,
		Deadline:    req.Deadline,
	}

	if err := db.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateGoal is the full-field update path. Completion is recomputed as
// explicit-flag OR (target > 0 AND current >= target): a manual
// completion sticks even when the counts alone would not complete the
// goal.
func UpdateGoal(db *gorm.DB, userID, goalID uuid.UUID, req models.UpdateGoalRequest) (*models.Goal, error) {
	goal, err := findGoal(db, userID, goalID)
	if err != nil {
		return nil, err
	}

	title := ""
	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
	}
	if title == "" {
		return nil, validationErrorf("Title is required")
	}

	category := goal.Category
	if req.Category != nil {
		normalized, ok := models.NormalizeCategory(*req.Category)
		if !ok {
			return nil, validationErrorf("Invalid category. Must be: Spiritual, Social, Intellectual, Physical, or Romantic")
		}
		category = normalized
	}

	targetCount := goal.TargetCount
	if req.TargetCount != nil {
		targetCount = *req.TargetCount
	}
	currentCount := goal.CurrentCount
	if req.CurrentCount != nil {
		currentCount = *req.CurrentCount
	}
	if targetCount < 0 || currentCount < 0 {
		return nil, validationErrorf("Counts must not be negative")
	}

	explicit := req.IsCompleted != nil && *req.IsCompleted

	goal.Title = title
	goal.Category = category
	goal.TargetCount = targetCount
	goal.CurrentCount = currentCount
	if req.Description != nil {
		goal.Description = req.Description
	}
	if req.Deadline != nil {
		goal.Deadline = req.Deadline
	}
	goal.IsCompleted = explicit || (targetCount > 0 && currentCount >= targetCount)

	if err := db.Save(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

func DeleteGoal(db *gorm.DB, userID, goalID uuid.UUID) error {
	goal, err := findGoal(db, userID, goalID)
	if err != nil {
		return err
	}
	return db.Delete(goal).Error
}

// ListGoals returns every goal the user owns, newest first.
func ListGoals(db *gorm.DB, userID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

// ListOpenGoals returns the user's incomplete goals ordered by category
// then title, for populating selection controls.
func ListOpenGoals(db *gorm.DB, userID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	err := db.Where("user_id = ? AND is_completed = ?", userID, false).
		Order("category, title").
		Find(&goals).Error
	return goals, err
}
