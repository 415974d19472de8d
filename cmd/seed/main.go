package main

import (
	"context"
	"log"
	"time"

	"spendlens/internal/models"
	"spendlens/internal/repository"
	"spendlens/pkg/auth"
	"spendlens/pkg/config"
	"spendlens/pkg/logger"
	"spendlens/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	demoEmail    = "demo@spendlens.local"
	demoUsername = "demo"
	demoPassword = "demo-password"
)

// Seeds the database with the schema, a demo user and a batch of sample
// expenses for local development.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Starting database seeding")

	if err := createSchema(ctx, db); err != nil {
		appLogger.Fatal("Failed to create schema", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)

	user, err := userRepo.GetByEmail(ctx, demoEmail)
	if err != nil {
		user, err = createDemoUser(ctx, userRepo)
		if err != nil {
			appLogger.Fatal("Failed to create demo user", zap.Error(err))
		}
		appLogger.Info("Demo user created", zap.String("email", demoEmail))
	} else {
		appLogger.Info("Demo user already exists", zap.String("email", demoEmail))
	}

	expenses, err := expenseRepo.ListByUser(ctx, user.ID)
	if err != nil {
		appLogger.Fatal("Failed to list expenses", zap.Error(err))
	}
	if len(expenses) > 0 {
		appLogger.Info("Demo expenses already present, skipping", zap.Int("count", len(expenses)))
		return
	}

	if err := expenseRepo.CreateBatch(ctx, demoExpenses(user.ID)); err != nil {
		appLogger.Fatal("Failed to seed expenses", zap.Error(err))
	}

	appLogger.Info("Database seeding completed")
}

func createSchema(ctx context.Context, db *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			category TEXT NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			currency TEXT NOT NULL,
			description TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_expenses_user_date ON expenses (user_id, date DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func createDemoUser(ctx context.Context, userRepo *repository.UserRepository) (*models.User, error) {
	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Username:  demoUsername,
		Email:     demoEmail,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func demoExpenses(userID uuid.UUID) []*models.Expense {
	type entry struct {
		daysAgo     int
		category    models.ExpenseCategory
		amount      float64
		description string
	}

	entries := []entry{
		{1, models.CategoryFood, 1450, "Weekly groceries"},
		{1, models.CategoryTransport, 300, "Fuel top-up"},
		{2, models.CategoryFood, 620, "Dinner out"},
		{3, models.CategoryBills, 2800, "Electricity bill"},
		{4, models.CategoryShopping, 1999, "Running shoes"},
		{5, models.CategoryFood, 480, "Lunch with colleagues"},
		{6, models.CategoryTransport, 150, "Bus fare"},
		{8, models.CategoryBills, 1200, "Internet subscription"},
		{9, models.CategoryShopping, 750, "Kitchen supplies"},
		{10, models.CategoryOther, 500, "Charity donation"},
	}

	now := time.Now()
	expenses := make([]*models.Expense, 0, len(entries))
	for _, e := range entries {
		expenses = append(expenses, &models.Expense{
			ID:          uuid.New(),
			UserID:      userID,
			Date:        now.AddDate(0, 0, -e.daysAgo),
			Category:    e.category,
			Amount:      e.amount,
			Currency:    "PKR",
			Description: e.description,
			CreatedAt:   now,
		})
	}
	return expenses
}
