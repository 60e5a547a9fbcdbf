package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"capstone-backend/app/model"
	"capstone-backend/app/repository"
	"capstone-backend/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Database struct {
	Postgres *gorm.DB
	Mongo    *mongo.Database

	mongoClient *mongo.Client
}

// gormConfig foreign key ikut dibuat saat migrasi supaya tag
// constraint:OnDelete:CASCADE di model berlaku. TranslateError: unique
// violation -> gorm.ErrDuplicatedKey, FK violation -> gorm.ErrForeignKeyViolated.
func gormConfig() *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
	}
}

func InitDB(cfg config.Config) (*Database, error) {
	// 1. Setup PostgreSQL
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBTimeZone,
	)

	pgDB, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("gagal koneksi ke postgres: %v", err)
	}

	// Auto Migrate
	log.Println("Menjalankan migrasi database PostgreSQL...")
	err = pgDB.AutoMigrate(
		&model.User{},
		&model.Semester{},
		&model.Project{},
		&model.ProjectMember{},
		&model.TeamInvitation{},
		&model.ProjectRequirements{},
		&model.ProjectDocument{},
		&model.Rubrik{},
		&model.ReviewAssignment{},
		&model.Review{},
		&model.ReviewScore{},
		&model.ReviewComment{},
	)
	if err != nil {
		return nil, fmt.Errorf("gagal migrasi database: %v", err)
	}
	if err := migrateConstraints(pgDB); err != nil {
		return nil, fmt.Errorf("gagal migrasi constraint: %v", err)
	}

	// 2. Setup MongoDB (riwayat aktivitas project)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI)
	mongoClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("gagal koneksi ke mongo: %v", err)
	}

	err = mongoClient.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("gagal ping mongo: %v", err)
	}

	mongoDatabase := mongoClient.Database(cfg.MongoDBName)

	if err := repository.EnsureActivityIndexes(ctx, mongoDatabase); err != nil {
		// index hanya mempercepat query riwayat, aplikasi tetap jalan
		log.Printf("⚠️  gagal membuat index project_activities: %v", err)
	}

	log.Println("Berhasil terhubung ke PostgreSQL dan MongoDB!")

	return &Database{
		Postgres:    pgDB,
		Mongo:       mongoDatabase,
		mongoClient: mongoClient,
	}, nil
}

// constraintStatements constraint yang tidak bisa dinyatakan lewat tag gorm.
var constraintStatements = []string{
	// paling banyak satu semester aktif
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_semesters_single_active ON semesters (is_active) WHERE is_active`,
}

func migrateConstraints(db *gorm.DB) error {
	for _, stmt := range constraintStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}

// Close memutus koneksi PostgreSQL dan MongoDB.
func (d *Database) Close(ctx context.Context) {
	if sqlDB, err := d.Postgres.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if d.mongoClient != nil {
		_ = d.mongoClient.Disconnect(ctx)
	}
}
