package main

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"hunthub/internal/config"
	"hunthub/internal/db"
	"hunthub/internal/model"
	"hunthub/internal/repository"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(
		gormDB,
		&model.User{},
		&model.Product{},
		&model.ProductVote{},
		&model.ProductReport{},
		&model.Review{},
		&model.Coupon{},
		&model.PaymentIntent{},
		&model.Payment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	products := repository.NewProductRepository(gormDB)
	coupons := repository.NewCouponRepository(gormDB)

	seedUsers := []model.User{
		{Name: "Admin", Email: "admin@hunthub.dev", Role: model.RoleAdmin},
		{Name: "Moderator", Email: "mod@hunthub.dev", Role: model.RoleModerator},
		{Name: "Maker", Email: "maker@hunthub.dev"},
	}
	created := 0
	for i := range seedUsers {
		if _, err := users.FindByEmail(ctx, seedUsers[i].Email); err == nil {
			continue
		}
		if err := users.Create(ctx, &seedUsers[i]); err != nil {
			log.Printf("Skipping user %s: %v", seedUsers[i].Email, err)
			continue
		}
		created++
	}
	log.Printf("Seeded %d users", created)

	seedProducts := []model.Product{
		{
			Name:        "HuntHub CLI",
			Description: "Terminal client for browsing launches",
			Tags:        []string{"cli", "developer-tools"},
			OwnerEmail:  "maker@hunthub.dev",
			OwnerName:   "Maker",
			Status:      model.ProductStatusAccepted,
			IsFeatured:  true,
		},
		{
			Name:        "TagTrail",
			Description: "Bookmark manager built around tags",
			Tags:        []string{"productivity", "web"},
			OwnerEmail:  "maker@hunthub.dev",
			OwnerName:   "Maker",
			Status:      model.ProductStatusPending,
		},
	}
	created = 0
	for i := range seedProducts {
		if err := products.Create(ctx, &seedProducts[i]); err != nil {
			log.Printf("Skipping product %s: %v", seedProducts[i].Name, err)
			continue
		}
		created++
	}
	log.Printf("Seeded %d products", created)

	launchCoupon := model.Coupon{
		Code:        "LAUNCH20",
		Discount:    decimal.NewFromInt(20),
		Description: "Launch week membership discount",
		ExpiresAt:   time.Now().AddDate(0, 1, 0),
	}
	if err := coupons.Create(ctx, &launchCoupon); err != nil {
		log.Printf("Skipping coupon %s: %v", launchCoupon.Code, err)
	} else {
		log.Printf("Seeded coupon %s", launchCoupon.Code)
	}

	log.Println("Seed complete")
}
