package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/pkg/logging"
)

const seedPassword = "password123"

var serviceCatalogue = []struct {
	name  string
	price float64
	slots int
}{
	{"Haircut", 15, 2},
	{"Beard trim", 8, 1},
	{"Color", 45, 6},
	{"Highlights", 60, 8},
	{"Manicure", 12, 2},
	{"Pedicure", 18, 3},
	{"Blow dry", 20, 2},
}

func main() {
	tenants := flag.Int("tenants", 3, "salons to create")
	professionals := flag.Int("professionals", 4, "professionals per salon")
	customers := flag.Int("customers", 20, "customers per salon")
	flag.Parse()

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	db, err := dbpkg.Open(cfg)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	_ = gofakeit.Seed(time.Now().UnixNano())

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash seed password", "error", err)
		os.Exit(1)
	}

	for i := 0; i < *tenants; i++ {
		client, err := seedTenant(db, string(hash), *professionals, *customers)
		if err != nil {
			logger.Error("seed tenant failed", "error", err)
			os.Exit(1)
		}
		logger.Info("tenant seeded", "client_id", client.ID, "code", client.Code, "name", client.Name)
	}

	logger.Info("seed complete", "owner_password", seedPassword)
}

func seedTenant(db *gorm.DB, hash string, professionals, customers int) (*models.Client, error) {
	var client models.Client

	err := db.Transaction(func(tx *gorm.DB) error {
		var last int
		if err := tx.Model(&models.Client{}).Select("COALESCE(MAX(code), 0)").Scan(&last).Error; err != nil {
			return err
		}

		client = models.Client{
			Code:        appointment.NextClientCode(last),
			Name:        gofakeit.Company() + " Salon",
			Rif:         fmt.Sprintf("J-%08d", gofakeit.Number(10000000, 99999999)),
			Phone:       gofakeit.Phone(),
			Email:       gofakeit.Email(),
			NotifySMS:   true,
			NotifyEmail: true,
			Active:      true,
		}
		if err := tx.Create(&client).Error; err != nil {
			return err
		}

		owner := newUser(client.ID, hash, models.RoleOwner)
		if err := tx.Create(&owner).Error; err != nil {
			return err
		}

		services := make([]models.Service, 0, len(serviceCatalogue))
		for _, s := range serviceCatalogue {
			services = append(services, models.Service{
				ClientID:    client.ID,
				Name:        s.name,
				Description: fmt.Sprintf("%s, %s finish", s.name, gofakeit.Word()),
				Price:       s.price,
				Slots:       s.slots,
				Active:      true,
			})
		}
		if err := tx.Create(&services).Error; err != nil {
			return err
		}

		for i := 0; i < professionals; i++ {
			u := newUser(client.ID, hash, models.RoleProfessional)
			if err := tx.Create(&u).Error; err != nil {
				return err
			}
			p := models.Professional{
				ClientID: client.ID,
				UserID:   u.ID,
				Services: assignments(services),
				Schedule: weeklySchedule(),
				Active:   true,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
		}

		for i := 0; i < customers; i++ {
			u := newUser(client.ID, hash, models.RoleCustomer)
			if err := tx.Create(&u).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func newUser(clientID, hash, role string) models.User {
	return models.User{
		ClientID:     &clientID,
		Name:         gofakeit.Name(),
		Email:        gofakeit.UUID()[:8] + "." + gofakeit.Email(),
		PasswordHash: hash,
		Phone:        gofakeit.Phone(),
		Roles:        []string{role},
		Active:       true,
	}
}

// assignments offers a random subset of the catalogue at a small markup.
func assignments(services []models.Service) []models.ServiceAssignment {
	var out []models.ServiceAssignment
	for _, s := range services {
		if !gofakeit.Bool() {
			continue
		}
		out = append(out, models.ServiceAssignment{
			ServiceID: s.ID,
			Price:     s.Price + float64(gofakeit.Number(0, 5)),
			SlotCount: s.Slots,
		})
	}
	if len(out) == 0 {
		s := services[0]
		out = append(out, models.ServiceAssignment{ServiceID: s.ID, Price: s.Price, SlotCount: s.Slots})
	}
	return out
}

// weeklySchedule is a split shift on weekdays and a morning on Saturday.
func weeklySchedule() []models.ScheduleEntry {
	opens := []string{"08:00", "08:30", "09:00"}
	closes := []string{"17:00", "18:00", "19:30"}

	open := opens[gofakeit.Number(0, len(opens)-1)]
	closing := closes[gofakeit.Number(0, len(closes)-1)]

	var out []models.ScheduleEntry
	for d := models.Monday; d <= models.Friday; d++ {
		out = append(out,
			models.ScheduleEntry{Weekday: d, Start: open, End: "12:00"},
			models.ScheduleEntry{Weekday: d, Start: "13:00", End: closing},
		)
	}
	if gofakeit.Bool() {
		out = append(out, models.ScheduleEntry{Weekday: models.Saturday, Start: "09:00", End: "13:00"})
	}
	return out
}
