// Command seed creates the admin user that can trigger CSV reloads
// through the admin API.
package main

import (
	"log"
	"os"

	"insights/internal/config"
	"insights/internal/models"
	"insights/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				sqlDB.Close()
			}
		}
		if repositories.CacheService != nil {
			repositories.CacheService.Close()
		}
	}()

	admins := repositories.NewAdminUserRepository(repositories.DB)
	if _, err := admins.GetByEmail(adminEmail); err == nil {
		log.Println("Admin user already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := models.AdminUser{
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}
	if err := admins.Create(&admin); err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	log.Println("Admin account created")
}
