package pkg

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/UES-FIA-2024/placement-service/internal/config"
	"github.com/UES-FIA-2024/placement-service/internal/models"
)

// InitDatabase opens the PostgreSQL connection, runs migrations and seeds
// the reference tables. TranslateError is on so unique-index violations
// surface as gorm.ErrDuplicatedKey.
func InitDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		TranslateError: true,
	}
	if cfg.Environment == "production" {
		gormConfig.Logger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Career{},
		&models.Sector{},
		&models.User{},
		&models.Coordinator{},
		&models.Company{},
		&models.Student{},
		&models.Project{},
	); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := seedLookups(db); err != nil {
		return nil, fmt.Errorf("failed to seed lookup tables: %w", err)
	}

	return db, nil
}

// seedLookups inserts the reference rows the registration forms depend
// on. Existing rows are left untouched.
func seedLookups(db *gorm.DB) error {
	careers := []models.Career{
		{ID: 1, Name: "Ingeniería de Sistemas Informáticos"},
		{ID: 2, Name: "Ingeniería Industrial"},
		{ID: 3, Name: "Ingeniería Civil"},
		{ID: 4, Name: "Ingeniería Eléctrica"},
		{ID: 5, Name: "Ingeniería Mecánica"},
		{ID: 6, Name: "Ingeniería Química"},
		{ID: 7, Name: "Arquitectura"},
	}
	for _, career := range careers {
		row := career
		if err := db.Where(models.Career{ID: career.ID}).
			Attrs(models.Career{Name: career.Name}).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}

	sectors := []models.Sector{
		{ID: 1, Name: "Tecnología"},
		{ID: 2, Name: "Manufactura"},
		{ID: 3, Name: "Construcción"},
		{ID: 4, Name: "Energía"},
		{ID: 5, Name: "Telecomunicaciones"},
		{ID: 6, Name: "Servicios financieros"},
		{ID: 7, Name: "Agroindustria"},
	}
	for _, sector := range sectors {
		row := sector
		if err := db.Where(models.Sector{ID: sector.ID}).
			Attrs(models.Sector{Name: sector.Name}).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}

	return nil
}
