package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config menampung seluruh konfigurasi aplikasi yang dibaca dari environment / .env.
type Config struct {
	AppPort string
	AppEnv  string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBTimeZone string

	MongoURI    string
	MongoDBName string

	JWTSecret string
	JWTTTL    time.Duration

	GithubToken      string
	GithubOrg        string
	GithubAPITimeout time.Duration

	CloudinaryURL  string
	UploadFolder   string
	UploadMaxBytes int64

	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string

	TeamMaxMembers int
	SeedData       bool
}

var v = newViper()

func newViper() *viper.Viper {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("APP_PORT", "8080")
	conf.SetDefault("APP_ENV", "dev")
	conf.SetDefault("DB_PORT", "5432")
	conf.SetDefault("DB_TIMEZONE", "Asia/Jakarta")
	conf.SetDefault("MONGO_DB_NAME", "capstone")
	conf.SetDefault("JWT_TTL", 24*time.Hour)
	conf.SetDefault("GITHUB_API_TIMEOUT", 20*time.Second)
	conf.SetDefault("UPLOAD_FOLDER", "capstone/documents")
	conf.SetDefault("UPLOAD_MAX_BYTES", int64(10*1024*1024))
	conf.SetDefault("KAFKA_TOPIC", "capstone.project-events")
	conf.SetDefault("TEAM_MAX_MEMBERS", 3)
	conf.SetDefault("SEED_DATA", true)

	conf.AutomaticEnv()
	return conf
}

// Load membaca .env (kalau ada) lalu mengembalikan Config lengkap.
// File .env tidak wajib ada; di production env diambil dari sistem.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		if os.IsNotExist(err) {
			log.Println("⚠️  .env tidak ditemukan, menggunakan environment sistem")
		} else {
			log.Printf("⚠️  gagal membaca .env: %v", err)
		}
	}

	return Config{
		AppPort: v.GetString("APP_PORT"),
		AppEnv:  v.GetString("APP_ENV"),

		DBHost:     v.GetString("DB_HOST"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBPort:     v.GetString("DB_PORT"),
		DBTimeZone: v.GetString("DB_TIMEZONE"),

		MongoURI:    v.GetString("MONGO_URI"),
		MongoDBName: v.GetString("MONGO_DB_NAME"),

		JWTSecret: v.GetString("JWT_SECRET"),
		JWTTTL:    v.GetDuration("JWT_TTL"),

		GithubToken:      v.GetString("GITHUB_TOKEN"),
		GithubOrg:        v.GetString("GITHUB_ORG"),
		GithubAPITimeout: v.GetDuration("GITHUB_API_TIMEOUT"),

		CloudinaryURL:  v.GetString("CLOUDINARY_URL"),
		UploadFolder:   v.GetString("UPLOAD_FOLDER"),
		UploadMaxBytes: v.GetInt64("UPLOAD_MAX_BYTES"),

		KafkaBroker:   v.GetString("KAFKA_BROKER"),
		KafkaTopic:    v.GetString("KAFKA_TOPIC"),
		KafkaUsername: v.GetString("KAFKA_USERNAME"),
		KafkaPassword: v.GetString("KAFKA_PASSWORD"),

		TeamMaxMembers: v.GetInt("TEAM_MAX_MEMBERS"),
		SeedData:       v.GetBool("SEED_DATA"),
	}
}

// JWTSecret dibaca setiap kali dipanggil supaya nilai dari .env yang
// di-load belakangan tetap terbaca.
func JWTSecret() string {
	return v.GetString("JWT_SECRET")
}

// JWTTTL masa berlaku access token.
func JWTTTL() time.Duration {
	return v.GetDuration("JWT_TTL")
}
