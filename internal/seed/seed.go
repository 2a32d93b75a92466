package seed

import (
	"context"
	"fmt"

	"github.com/campuscare/campuscare-backend/internal/locations"
	"github.com/campuscare/campuscare-backend/internal/users"
	"github.com/campuscare/campuscare-backend/pkg/db"
	"github.com/campuscare/campuscare-backend/pkg/db/models"
	"github.com/campuscare/campuscare-backend/pkg/enums"
	"github.com/campuscare/campuscare-backend/pkg/logger"
	"gorm.io/gorm"
)

func defaultUsers() []models.User {
	return []models.User{
		{ID: 1, Name: "Daming Wang", Role: enums.UserRoleCleaner},
		{ID: 2, Name: "Master Li", Role: enums.UserRoleMaintenance},
		{ID: 3, Name: "Director Chen", Role: enums.UserRoleAdmin},
		{ID: 4, Name: "Student Lin", Role: enums.UserRoleUser},
	}
}

func defaultLocations() []models.Location {
	return []models.Location{
		{ID: 1, Name: "Teaching Building A - 1F Men's Restroom"},
		{ID: 2, Name: "Teaching Building A - 1F Women's Restroom"},
		{ID: 3, Name: "Library 3F Water Dispenser"},
		{ID: 4, Name: "Gym Entrance Restroom"},
		{ID: 5, Name: "Dorm B - 2F Common Area"},
	}
}

// Run populates the fixture users and locations exactly once. The guard is
// "any users exist": a second boot (or two calls in a row) is a no-op.
func Run(ctx context.Context, client *db.Client, logg *logger.Logger) error {
	usersRepo := users.NewRepository(client.DB())
	locationsRepo := locations.NewRepository(client.DB())

	count, err := usersRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("checking for existing users: %w", err)
	}
	if count > 0 {
		if logg != nil {
			logg.Info(ctx, "seed skipped, users already present")
		}
		return nil
	}

	err = client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := usersRepo.WithTx(tx).CreateAll(ctx, defaultUsers()); err != nil {
			return fmt.Errorf("seeding users: %w", err)
		}
		if err := locationsRepo.WithTx(tx).CreateAll(ctx, defaultLocations()); err != nil {
			return fmt.Errorf("seeding locations: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if logg != nil {
		ctx = logg.WithFields(ctx, map[string]any{
			"users":     len(defaultUsers()),
			"locations": len(defaultLocations()),
		})
		logg.Info(ctx, "seeded fixture users and locations")
	}
	return nil
}
