package school

import (
	"encoding/json"
	"log"
	"os"

	"sekolahku_backend/internals/features/lembaga/schools/model"

	"gorm.io/gorm"
)

// Struktur baris di data_schools.json
type SchoolSeed struct {
	SchoolName    string  `json:"school_name"`
	SchoolSlug    string  `json:"school_slug"`
	SchoolNPSN    string  `json:"school_npsn"`
	SchoolAddress *string `json:"school_address"`
	SchoolCity    *string `json:"school_city"`
	SchoolPhone   *string `json:"school_phone"`
}

func SeedSchoolsFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var schools []SchoolSeed
	if err := json.Unmarshal(file, &schools); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, m := range schools {
		var existing model.SchoolModel
		if err := db.Where("school_npsn = ?", m.SchoolNPSN).First(&existing).Error; err == nil {
			log.Printf("ℹ️ School dengan NPSN %s sudah ada, lewati...", m.SchoolNPSN)
			continue
		}

		newSchool := model.SchoolModel{
			SchoolName:     m.SchoolName,
			SchoolSlug:     m.SchoolSlug,
			SchoolNPSN:     m.SchoolNPSN,
			SchoolAddress:  m.SchoolAddress,
			SchoolCity:     m.SchoolCity,
			SchoolPhone:    m.SchoolPhone,
			SchoolIsActive: true,
		}

		if err := db.Create(&newSchool).Error; err != nil {
			log.Printf("❌ Gagal insert school %s: %v", m.SchoolNPSN, err)
		} else {
			log.Printf("✅ Berhasil insert school %s (%s)", newSchool.SchoolName, newSchool.SchoolNPSN)
		}
	}
}
