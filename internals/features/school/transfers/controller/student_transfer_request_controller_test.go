// file: internals/features/school/transfers/controller/student_transfer_request_controller_test.go
package controller

import (
	"testing"

	dto "sekolahku_backend/internals/features/school/transfers/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestApplyTransferNames(t *testing.T) {
	from := uuid.New()
	to := uuid.New()
	stu := uuid.New()

	items := []dto.StudentTransferRequestResponse{
		{
			StudentTransferRequestFromSchoolID: from,
			StudentTransferRequestToSchoolID:   to,
			StudentTransferRequestStudentID:    stu,
		},
		{
			// id yang tidak ada di map → nama kosong, bukan panic
			StudentTransferRequestFromSchoolID: uuid.New(),
			StudentTransferRequestToSchoolID:   uuid.New(),
			StudentTransferRequestStudentID:    uuid.New(),
		},
	}

	applyTransferNames(items,
		map[uuid.UUID]string{from: "SDN 01 Menteng", to: "SDN 03 Cikini"},
		map[uuid.UUID]string{stu: "Aisyah Putri"})

	assert.Equal(t, "SDN 01 Menteng", items[0].FromSchoolName)
	assert.Equal(t, "SDN 03 Cikini", items[0].ToSchoolName)
	assert.Equal(t, "Aisyah Putri", items[0].StudentName)

	assert.Empty(t, items[1].FromSchoolName)
	assert.Empty(t, items[1].ToSchoolName)
	assert.Empty(t, items[1].StudentName)
}
