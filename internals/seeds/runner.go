package seeds

import (
	schoolSeed "sekolahku_backend/internals/seeds/schools"
	studentSeed "sekolahku_backend/internals/seeds/students"

	"gorm.io/gorm"
)

func RunAllSeeds(db *gorm.DB) {
	//* Sekolah dulu, siswa menumpang NPSN sekolahnya
	schoolSeed.SeedSchoolsFromJSON(db, "internals/seeds/schools/data_schools.json")
	studentSeed.SeedStudentsFromJSON(db, "internals/seeds/students/data_students.json")
}
