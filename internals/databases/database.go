package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	schoolModel "sekolahku_backend/internals/features/lembaga/schools/model"
	classModel "sekolahku_backend/internals/features/school/classes/model"
	studentModel "sekolahku_backend/internals/features/school/students/model"
	tmodel "sekolahku_backend/internals/features/school/transfers/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("🔌 Koneksi ke PostgreSQL...")

	// ✅ Gunakan URL/DSN lengkap + statement_timeout
	// Catatan: kalau pakai PgBouncer, ganti host/port ke port PgBouncer dan biarkan PreferSimpleProtocol=true
	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=sekolahku&options=-c statement_timeout=5000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // 👍 cocok untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")

	if err := DB.AutoMigrate(
		&schoolModel.SchoolModel{},
		&classModel.ClassModel{},
		&studentModel.SchoolStudentModel{},
		&studentModel.StudentGradeRecordModel{},
		&studentModel.StudentHealthRecordModel{},
		&studentModel.StudentCounselingSessionModel{},
		&studentModel.StudentDisciplineRecordModel{},
		&studentModel.StudentExtracurricularModel{},
		&studentModel.StudentClassEnrollmentModel{},
		&studentModel.StudentClassProgressModel{},
		&studentModel.StudentPaymentModel{},
		&studentModel.StudentAttendanceModel{},
		&studentModel.StudentExamAttemptModel{},
		&tmodel.StudentTransferRequestModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi schema: %v", err)
	}

	// Index parsial penegak invarian transfer (pending unik, NISN aktif unik);
	// harus SETELAH AutoMigrate karena DDL-nya menunjuk tabel di atas.
	if err := tmodel.EnsureTransferSchema(DB); err != nil {
		log.Fatalf("❌ Gagal memasang index transfer: %v", err)
	}
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	// jalankan ringan supaya koneksi/pool “keisi” & siap
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
