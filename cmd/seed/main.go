package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"domus/internal/config"
	"domus/internal/db"
	"domus/internal/model"
	"domus/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Customer{}, &model.House{}, &model.Wishlist{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	customerRepo := repository.NewCustomerRepository(gormDB)
	houseRepo := repository.NewHouseRepository(gormDB)

	if err := seedAdmin(ctx, customerRepo, cfg); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}
	if err := seedHouses(ctx, houseRepo); err != nil {
		log.Fatalf("Failed to seed listings: %v", err)
	}
	log.Println("Seed completed")
}

func seedAdmin(ctx context.Context, repo repository.CustomerRepository, cfg *config.Config) error {
	if _, err := repo.FindByLogin(ctx, cfg.AdminSeedLogin); err == nil {
		log.Printf("Admin account %q already exists, skipping", cfg.AdminSeedLogin)
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminSeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := &model.Customer{
		FirstName:    "Site",
		LastName:     "Administrator",
		Login:        cfg.AdminSeedLogin,
		Email:        cfg.AdminSeedEmail,
		PasswordHash: string(hash),
		Enabled:      true,
		IsAdmin:      true,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Created admin account %q (%s)", admin.Login, admin.AccountNumber)
	return nil
}

func seedHouses(ctx context.Context, repo repository.HouseRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("Listings table already has %d records, skipping", count)
		return nil
	}

	demo := []model.House{
		{
			Title:       "Brick cottage near the river",
			Price:       185000,
			Address:     "14 Willow Lane",
			Description: "Two-storey brick cottage with a landscaped garden.",
			Bedrooms:    3,
			Bathrooms:   2,
			Area:        140,
			PlotArea:    600,
			Floors:      2,
			WithRepair:  true,
			Status:      model.StatusAvailable,
			Contact:     model.Contact{Name: "Agency", Phone: "+1-555-0101", Email: "sales@domus.local"},
			Location:    &model.Location{City: "Riverside", District: "Old Town"},
			Utilities:   &model.Utilities{Gas: true, Water: true, Electricity: true},
		},
		{
			Title:         "Spacious family house",
			Price:         320000,
			Address:       "8 Chestnut Court",
			Description:   "Five bedrooms, furnished, close to schools.",
			Bedrooms:      5,
			Bathrooms:     3,
			Area:          240,
			PlotArea:      900,
			Floors:        3,
			WithFurniture: true,
			Status:        model.StatusAvailable,
			Contact:       model.Contact{Name: "Agency", Phone: "+1-555-0102", Email: "sales@domus.local"},
			Infrastructure: &model.Infrastructure{
				NearSchool:     true,
				NearTransport:  true,
				SchoolDistance: 300,
			},
		},
		{
			Title:       "Compact starter home",
			Price:       98000,
			Address:     "2 Birch Street",
			Description: "One-storey house, needs light renovation.",
			Bedrooms:    2,
			Bathrooms:   1,
			Area:        78,
			Floors:      1,
			Status:      model.StatusReserved,
			Contact:     model.Contact{Name: "Agency", Phone: "+1-555-0103", Email: "sales@domus.local"},
		},
	}
	for i := range demo {
		if err := repo.Create(ctx, &demo[i]); err != nil {
			return err
		}
	}
	log.Printf("Created %d demo listings", len(demo))
	return nil
}
