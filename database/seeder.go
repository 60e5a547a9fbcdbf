package database

import (
	"log"
	"time"

	"capstone-backend/app/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RunSeeders menjalankan seluruh seeder yang dibutuhkan.
// Panggil ini sekali di main.go setelah InitDB berhasil.
func RunSeeders(db *gorm.DB) {
	SeedUsers(db)
	SeedSemester(db)
	SeedRubrik(db)
}

// ===============================
//  SEED USERS
// ===============================

// SeedUsers menambahkan user awal:
// - admin
// - penguji1 (dosen penguji)
// - mahasiswa1 & mahasiswa2 (supaya fitur undangan tim bisa langsung dicoba)
func SeedUsers(db *gorm.DB) {
	var count int64
	db.Model(&model.User{}).Count(&count)
	if count > 0 {
		log.Println("[SEEDER] User sudah ada, skip seeding.")
		return
	}

	password := "123123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), 10)

	users := []model.User{
		{
			Username:     "admin",
			Email:        "admin@kampus.ac.id",
			PasswordHash: string(hash),
			FullName:     "Admin Sistem",
			Role:         model.RoleAdmin,
			IsActive:     true,
		},
		{
			Username:       "penguji1",
			Email:          "penguji1@kampus.ac.id",
			PasswordHash:   string(hash),
			FullName:       "Dosen Penguji Satu",
			IdentityNumber: strPtr("198001012005011001"),
			Role:           model.RoleDosenPenguji,
			IsActive:       true,
		},
		{
			Username:       "mahasiswa1",
			Email:          "mahasiswa1@kampus.ac.id",
			PasswordHash:   string(hash),
			FullName:       "Mahasiswa Satu",
			IdentityNumber: strPtr("2110511001"),
			GithubUsername: strPtr("mahasiswa1"),
			Role:           model.RoleMahasiswa,
			IsActive:       true,
		},
		{
			Username:       "mahasiswa2",
			Email:          "mahasiswa2@kampus.ac.id",
			PasswordHash:   string(hash),
			FullName:       "Mahasiswa Dua",
			IdentityNumber: strPtr("2110511002"),
			Role:           model.RoleMahasiswa,
			IsActive:       true,
		},
	}

	if err := db.Create(&users).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed users: %v", err)
	}

	log.Println("[SEEDER] Berhasil seed 4 user (admin, penguji1, mahasiswa1, mahasiswa2), password: 123123")
}

// ===============================
//  SEED SEMESTER
// ===============================

// SeedSemester membuat satu semester aktif agar project baru punya default
// semester & tahun akademik.
func SeedSemester(db *gorm.DB) {
	var count int64
	db.Model(&model.Semester{}).Count(&count)
	if count > 0 {
		log.Println("[SEEDER] Semester sudah ada, skip seeding.")
		return
	}

	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		loc = time.UTC
	}
	sem := model.Semester{
		Name:          "Ganjil",
		TahunAkademik: "2025/2026",
		StartDate:     time.Date(2025, time.September, 1, 0, 0, 0, 0, loc),
		EndDate:       time.Date(2026, time.January, 31, 0, 0, 0, 0, loc),
		IsActive:      true,
	}
	if err := db.Create(&sem).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed semester: %v", err)
	}

	log.Println("[SEEDER] Berhasil seed semester aktif Ganjil 2025/2026")
}

// ===============================
//  SEED RUBRIK
// ===============================

// SeedRubrik rubrik default dengan total bobot aktif 100.
func SeedRubrik(db *gorm.DB) {
	var count int64
	db.Model(&model.Rubrik{}).Count(&count)
	if count > 0 {
		log.Println("[SEEDER] Rubrik sudah ada, skip seeding.")
		return
	}

	rubriks := []model.Rubrik{
		{Name: "Kualitas Kode", Kategori: "Teknis", BobotMax: 25, Urutan: 1, IsActive: true,
			Description: "Struktur, keterbacaan, dan konsistensi kode"},
		{Name: "Fungsionalitas", Kategori: "Teknis", BobotMax: 25, Urutan: 2, IsActive: true,
			Description: "Fitur berjalan sesuai kebutuhan stakeholder"},
		{Name: "Dokumentasi", Kategori: "Non-Teknis", BobotMax: 15, Urutan: 3, IsActive: true,
			Description: "Panduan pengguna, panduan deploy, dan README"},
		{Name: "UI/UX", Kategori: "Teknis", BobotMax: 15, Urutan: 4, IsActive: true,
			Description: "Kemudahan penggunaan antarmuka"},
		{Name: "Presentasi", Kategori: "Non-Teknis", BobotMax: 20, Urutan: 5, IsActive: true,
			Description: "Penyampaian hasil ke penguji"},
	}

	if err := db.Create(&rubriks).Error; err != nil {
		log.Fatalf("[SEEDER] Gagal seed rubrik: %v", err)
	}

	log.Println("[SEEDER] Berhasil seed 5 rubrik (total bobot 100)")
}

func strPtr(s string) *string { return &s }
