package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

const demoPassword = "testtest"

var demoAccounts = []RegisterRequest{
	{Name: "Emilija", Surname: "Lakinska", Email: "emilija.lakinska@students.finki.ukim.mk", Role: string(models.RoleStudent), Index: "211123"},
	{Name: "Matej", Surname: "Gadjovski", Email: "matej.gadjovski@students.finki.ukim.mk", Role: string(models.RoleStudent), Index: "211124"},
	{Name: "Ivan", Surname: "Chorbev", Email: "ivan.chorbev@professors.finki.ukim.mk", Role: string(models.RoleProfessor)},
}

// SeedDemoData registers the demo accounts that do not exist yet. Safe to run on every start.
func SeedDemoData(ctx context.Context, auth AuthService, repo repositories.Repository, logger *slog.Logger) error {
	created := 0
	for _, account := range demoAccounts {
		exists, err := repo.User().ExistsByEmail(ctx, nil, account.Email)
		if err != nil {
			return fmt.Errorf("failed to check demo account %s: %w", account.Email, err)
		}
		if exists {
			continue
		}

		req := account
		req.Password = demoPassword
		if _, err := auth.Register(ctx, &req); err != nil {
			return fmt.Errorf("failed to seed demo account %s: %w", account.Email, err)
		}
		created++
	}

	logger.InfoContext(ctx, "Demo data seeded", "created", created, "total", len(demoAccounts))
	return nil
}
