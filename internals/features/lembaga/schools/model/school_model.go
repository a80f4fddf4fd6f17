// file: internals/features/lembaga/schools/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   Model: schools (tenant)
====================================================== */

type SchoolModel struct {
	SchoolID uuid.UUID `gorm:"column:school_id;type:uuid;default:gen_random_uuid();primaryKey" json:"school_id"`

	SchoolName string `gorm:"column:school_name;type:varchar(160);not null" json:"school_name"`
	SchoolSlug string `gorm:"column:school_slug;type:varchar(160);uniqueIndex" json:"school_slug"`

	// NPSN: nomor registrasi sekolah (public id, dipakai lookup lintas tenant)
	SchoolNPSN string `gorm:"column:school_npsn;type:varchar(20);uniqueIndex;not null" json:"school_npsn"`

	SchoolAddress *string `gorm:"column:school_address;type:text" json:"school_address,omitempty"`
	SchoolCity    *string `gorm:"column:school_city;type:varchar(80)" json:"school_city,omitempty"`
	SchoolPhone   *string `gorm:"column:school_phone;type:varchar(30)" json:"school_phone,omitempty"`

	SchoolIsActive bool `gorm:"column:school_is_active;not null;default:true" json:"school_is_active"`

	SchoolCreatedAt time.Time      `gorm:"column:school_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"school_created_at"`
	SchoolUpdatedAt time.Time      `gorm:"column:school_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"school_updated_at"`
	SchoolDeletedAt gorm.DeletedAt `gorm:"column:school_deleted_at;index" json:"school_deleted_at,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }
