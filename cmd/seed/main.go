// Seed script: creates the five system prompt templates and an admin user.
// Safe to run repeatedly; existing records are left untouched.
package main

import (
	"context"
	"errors"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taralog/internal/config"
	"taralog/internal/db"
	"taralog/internal/logger"
	"taralog/internal/model"
	"taralog/internal/repository"
)

var defaultPrompts = map[string]string{
	model.ReadingTaro: "You are an experienced tarot reader. Interpret the five card cross spread " +
		"(essence, past, present, future, advice) for the client, weaving the cards into one coherent " +
		"narrative. Respect reversed cards. Be warm but concrete.",
	model.ReadingLove: "You are a compassionate tarot and astrology advisor specializing in love and " +
		"relationships. Use the client's birth data and, when given, the partner's data to answer the " +
		"question. Be supportive and honest.",
	model.ReadingMoney: "You are a pragmatic tarot advisor for questions about money and finances. " +
		"Ground your answer in the client's question and birth data. Avoid guarantees; offer perspective.",
	model.ReadingWork: "You are a seasoned tarot advisor for career and work questions. Use the " +
		"client's birth data to personalize the answer. Be encouraging and specific.",
	model.ReadingGeneral: "You are a wise tarot and astrology advisor. Answer the client's question " +
		"using their birth data for context. Keep the tone warm and grounded.",
}

func main() {
	log := logger.New()
	log.Info().Msg("starting seed script")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Reading{}, &model.Prompt{}, &model.EmailLog{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	ctx := context.Background()
	promptRepo := repository.NewPromptRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	created := 0
	for _, name := range model.ReadingTypes {
		if _, err := promptRepo.FindByName(ctx, name); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal().Err(err).Str("name", name).Msg("check prompt")
		}
		if err := promptRepo.Create(ctx, &model.Prompt{Name: name, Content: defaultPrompts[name]}); err != nil {
			log.Fatal().Err(err).Str("name", name).Msg("create prompt")
		}
		created++
	}
	log.Info().Int("created", created).Msg("prompt templates seeded")

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Info().Msg("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin user")
		return
	}

	if _, err := userRepo.FindByEmail(ctx, adminEmail); err == nil {
		log.Info().Str("email", adminEmail).Msg("admin user already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatal().Err(err).Msg("check admin user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 10)
	if err != nil {
		log.Fatal().Err(err).Msg("hash admin password")
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	admin := &model.User{
		Username:     username,
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("create admin user")
	}
	log.Info().Str("email", adminEmail).Msg("admin user created")
}
