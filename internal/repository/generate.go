package repository

import (
	"fmt"
	"os"

	"gorm.io/gen"

	"FindrHealth/internal/model"
	"FindrHealth/storage/database"
)

// ProviderQuerier is the typed query surface gorm.io/gen materializes for
// the providers table.
type ProviderQuerier interface {
	// GetByPublicID finds a provider by the snowflake ID exposed in URLs.
	//
	// SELECT * FROM @@table WHERE public_id = @publicID LIMIT 1
	GetByPublicID(publicID int64) (*gen.T, error)

	// GetByPlaceID finds a provider seeded from a business lookup result,
	// used to detect duplicate onboarding.
	//
	// SELECT * FROM @@table WHERE place_id = @placeID LIMIT 1
	GetByPlaceID(placeID string) (*gen.T, error)

	// ListByStatus pages providers in one review status.
	//
	// SELECT * FROM @@table
	// WHERE status = @status
	// ORDER BY submitted_at DESC
	// {{if limit > 0}}
	// LIMIT @limit
	// {{end}}
	// {{if offset > 0}}
	// OFFSET @offset
	// {{end}}
	ListByStatus(status string, limit, offset int) ([]*gen.T, error)

	// CountByStatus breaks down the review queue.
	//
	// SELECT status, COUNT(*) as count
	// FROM @@table
	// GROUP BY status
	CountByStatus() ([]gen.M, error)

	// ListByEmail finds every profile submitted under one email.
	//
	// SELECT * FROM @@table WHERE email = @email ORDER BY submitted_at DESC
	ListByEmail(email string) ([]*gen.T, error)
}

func Generate() error {
	if err := database.Init(); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Migrations first so the table exists for introspection.
	if err := database.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migration: %w", err)
	}

	db := database.DB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./internal/repository/query",
		ModelPkgPath:      "FindrHealth/internal/model",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface | gen.WithoutContext,
		FieldNullable:     true,
		FieldCoverable:    false,
		FieldSignable:     false,
		FieldWithIndexTag: false,
		FieldWithTypeTag:  true,
	})

	g.UseDB(db)

	g.ApplyBasic(
		&model.Provider{},
	)

	g.ApplyInterface(func(ProviderQuerier) {}, &model.Provider{})

	g.Execute()

	return nil
}

func RunGenerate() {
	if err := Generate(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate code: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Code generation completed successfully!")
}
