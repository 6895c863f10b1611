package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/JacobDishman/IS-403-Project/internal/database"
	"github.com/JacobDishman/IS-403-Project/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.MigrateDB(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) uuid.UUID {
	t.Helper()

	user := models.User{
		FirstName:    name,
		LastName:     "Tester",
		Email:        name + "@example.com",
		Username:     name,
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, db.Create(&user).Error)
	return user.ID
}

func seedGoal(t *testing.T, db *gorm.DB, userID uuid.UUID, category models.Category, target, current int, completed bool) *models.Goal {
	t.Helper()

	goal := models.Goal{
		UserID:       userID,
		Title:        fmt.Sprintf("%s goal", category),
		Category:     category,
		TargetCount:  target,
		CurrentCount: current,
		IsCompleted:  completed,
	}
	require.NoError(t, db.Create(&goal).Error)
	return &goal
}

func seedContact(t *testing.T, db *gorm.DB, userID uuid.UUID, first, last string) *models.Contact {
	t.Helper()

	contact := models.Contact{
		UserID:    userID,
		FirstName: first,
		LastName:  last,
	}
	require.NoError(t, db.Create(&contact).Error)
	return &contact
}

func eventRequest(title, date, start string) models.EventRequest {
	return models.EventRequest{
		Title:     title,
		EventDate: date,
		StartTime: start,
	}
}

func strPtr(s string) *string {
	return &s
}

func reloadGoal(t *testing.T, db *gorm.DB, id uuid.UUID) *models.Goal {
	t.Helper()

	var goal models.Goal
	require.NoError(t, db.First(&goal, id).Error)
	return &goal
}
