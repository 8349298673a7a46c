// Package testutil holds fixtures shared by storage-backed tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// NewDB opens a private in-memory sqlite database with the schema migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

type Fixture struct {
	Client       models.Client
	Owner        models.User
	Customer     models.User
	Haircut      models.Service
	Color        models.Service
	Professional models.Professional
}

// Seed creates a tenant with two services and one professional working
// Monday to Friday 09:00-12:00 and 13:00-18:00.
func Seed(t *testing.T, db *gorm.DB) Fixture {
	t.Helper()

	var f Fixture
	f.Client = models.Client{Code: 1, Name: "Salon Uno", Rif: "J-1", Phone: "+580000001", Email: "salon@example.com", NotifySMS: true, NotifyEmail: true, Active: true}
	require.NoError(t, db.Create(&f.Client).Error)

	clientID := f.Client.ID
	f.Owner = models.User{ClientID: &clientID, Name: "Owner", Email: "owner@example.com", PasswordHash: "x", Roles: []string{models.RoleOwner}, Active: true}
	f.Customer = models.User{ClientID: &clientID, Name: "Ana", Email: "ana@example.com", PasswordHash: "x", Phone: "+581111111", Roles: []string{models.RoleCustomer}, Active: true}
	stylist := models.User{ClientID: &clientID, Name: "Luis", Email: "luis@example.com", PasswordHash: "x", Roles: []string{models.RoleProfessional}, Active: true}
	require.NoError(t, db.Create(&f.Owner).Error)
	require.NoError(t, db.Create(&f.Customer).Error)
	require.NoError(t, db.Create(&stylist).Error)

	f.Haircut = models.Service{ClientID: clientID, Name: "Haircut", Price: 10, Slots: 2, Active: true}
	f.Color = models.Service{ClientID: clientID, Name: "Color", Price: 40, Slots: 4, Active: true}
	require.NoError(t, db.Create(&f.Haircut).Error)
	require.NoError(t, db.Create(&f.Color).Error)

	var schedule []models.ScheduleEntry
	for d := models.Monday; d <= models.Friday; d++ {
		schedule = append(schedule,
			models.ScheduleEntry{Weekday: d, Start: "09:00", End: "12:00"},
			models.ScheduleEntry{Weekday: d, Start: "13:00", End: "18:00"},
		)
	}
	f.Professional = models.Professional{
		ClientID: clientID,
		UserID:   stylist.ID,
		Services: []models.ServiceAssignment{
			{ServiceID: f.Haircut.ID, Price: 12, SlotCount: 2},
			{ServiceID: f.Color.ID, Price: 45, SlotCount: 6},
		},
		Schedule: schedule,
		Active:   true,
	}
	require.NoError(t, db.Create(&f.Professional).Error)
	f.Professional.User = stylist

	return f
}
