package student

import (
	"encoding/json"
	"log"
	"os"

	schoolModel "sekolahku_backend/internals/features/lembaga/schools/model"
	"sekolahku_backend/internals/features/school/students/model"

	"gorm.io/gorm"
)

// Struktur baris di data_students.json; siswa menempel ke
// sekolahnya lewat NPSN supaya file seed tidak berisi UUID.
type StudentSeed struct {
	SchoolNPSN string `json:"school_npsn"`

	StudentNISN  string  `json:"school_student_nisn"`
	StudentName  string  `json:"school_student_name"`
	Gender       *string `json:"school_student_gender"`
	GuardianName *string `json:"school_student_guardian_name"`
}

func SeedStudentsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var students []StudentSeed
	if err := json.Unmarshal(file, &students); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, s := range students {
		var sch schoolModel.SchoolModel
		if err := db.Where("school_npsn = ?", s.SchoolNPSN).First(&sch).Error; err != nil {
			log.Printf("❌ Sekolah NPSN %s tidak ditemukan, siswa %s dilewati", s.SchoolNPSN, s.StudentNISN)
			continue
		}

		var existing model.SchoolStudentModel
		if err := db.Where("school_student_nisn = ? AND school_student_is_active = TRUE", s.StudentNISN).
			First(&existing).Error; err == nil {
			log.Printf("ℹ️ Siswa NISN %s sudah aktif, lewati...", s.StudentNISN)
			continue
		}

		newStudent := model.SchoolStudentModel{
			SchoolStudentSchoolID:     sch.SchoolID,
			SchoolStudentNISN:         s.StudentNISN,
			SchoolStudentName:         s.StudentName,
			SchoolStudentGender:       s.Gender,
			SchoolStudentGuardianName: s.GuardianName,
			SchoolStudentIsActive:     true,
		}

		if err := db.Create(&newStudent).Error; err != nil {
			log.Printf("❌ Gagal insert siswa %s: %v", s.StudentNISN, err)
		} else {
			log.Printf("✅ Berhasil insert siswa %s (%s)", newStudent.SchoolStudentName, newStudent.SchoolStudentNISN)
		}
	}
}
