// file: internals/features/school/transfers/service/transfer_validator_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateNISNConflicts(t *testing.T) {
	subject := uuid.New()
	dest := uuid.New()

	cases := []struct {
		name       string
		rows       []activeNISNRow
		wantStatus int // 0 = lolos
		wantMsg    string
	}{
		{
			name: "tidak ada pemegang NISN lain",
			rows: nil,
		},
		{
			name: "hanya baris siswa yang sedang ditransfer",
			rows: []activeNISNRow{
				{StudentID: subject, SchoolID: sourceSchool},
			},
		},
		{
			name: "NISN sudah aktif di sekolah tujuan",
			rows: []activeNISNRow{
				{StudentID: uuid.New(), SchoolID: dest},
			},
			wantStatus: fiber.StatusConflict,
			wantMsg:    "NISN sudah terdaftar aktif di sekolah tujuan",
		},
		{
			name: "NISN aktif di sekolah ketiga",
			rows: []activeNISNRow{
				{StudentID: uuid.New(), SchoolID: unrelatedSchool},
			},
			wantStatus: fiber.StatusConflict,
			wantMsg:    "NISN masih aktif di sekolah lain",
		},
		{
			name: "baris subject + hit tujuan: tujuan yang menang",
			rows: []activeNISNRow{
				{StudentID: subject, SchoolID: sourceSchool},
				{StudentID: uuid.New(), SchoolID: dest},
			},
			wantStatus: fiber.StatusConflict,
			wantMsg:    "NISN sudah terdaftar aktif di sekolah tujuan",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := evaluateNISNConflicts(tc.rows, dest, subject)
			if tc.wantStatus == 0 {
				require.NoError(t, err)
				return
			}
			fe, ok := err.(*fiber.Error)
			require.True(t, ok, "expected *fiber.Error, got %v", err)
			assert.Equal(t, tc.wantStatus, fe.Code)
			assert.Equal(t, tc.wantMsg, fe.Message)
		})
	}
}
