// file: internals/features/school/transfers/service/transfer_flow_test.go
package service

import (
	"errors"
	"testing"

	tmodel "sekolahku_backend/internals/features/school/transfers/model"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sourceSchool    = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	destSchool      = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	unrelatedSchool = uuid.MustParse("33333333-3333-3333-3333-333333333333")
)

func newRequest(typ tmodel.StudentTransferType, status tmodel.StudentTransferStatus, initiatedBy uuid.UUID) *tmodel.StudentTransferRequestModel {
	return &tmodel.StudentTransferRequestModel{
		StudentTransferRequestID:                  uuid.New(),
		StudentTransferRequestStudentID:           uuid.New(),
		StudentTransferRequestFromSchoolID:        sourceSchool,
		StudentTransferRequestToSchoolID:          destSchool,
		StudentTransferRequestInitiatedBySchoolID: initiatedBy,
		StudentTransferRequestType:                typ,
		StudentTransferRequestStatus:              status,
	}
}

func pushRequest(status tmodel.StudentTransferStatus) *tmodel.StudentTransferRequestModel {
	return newRequest(tmodel.TransferTypePush, status, sourceSchool)
}

func pullRequest(status tmodel.StudentTransferStatus) *tmodel.StudentTransferRequestModel {
	return newRequest(tmodel.TransferTypePull, status, destSchool)
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "expected *fiber.Error, got %v", err)
	return fe.Code
}

func TestFlowFor(t *testing.T) {
	flow, err := FlowFor(pushRequest(tmodel.TransferPending))
	require.NoError(t, err)
	assert.False(t, flow.ApproveRunsMigration())

	flow, err = FlowFor(pullRequest(tmodel.TransferPending))
	require.NoError(t, err)
	assert.True(t, flow.ApproveRunsMigration())

	_, err = FlowFor(newRequest("ghost", tmodel.TransferPending, sourceSchool))
	require.Error(t, err)
}

func TestPushFlow_Approve(t *testing.T) {
	flow := pushFlow{}

	// sekolah tujuan, dari pending → sah
	require.NoError(t, flow.AuthorizeApprove(pushRequest(tmodel.TransferPending), destSchool))

	// sekolah asal / pihak ketiga → 403
	assert.Equal(t, fiber.StatusForbidden, httpCode(t, flow.AuthorizeApprove(pushRequest(tmodel.TransferPending), sourceSchool)))
	assert.Equal(t, fiber.StatusForbidden, httpCode(t, flow.AuthorizeApprove(pushRequest(tmodel.TransferPending), unrelatedSchool)))

	// status selain pending → 409
	for _, st := range []tmodel.StudentTransferStatus{tmodel.TransferApproved, tmodel.TransferRejected, tmodel.TransferCompleted} {
		assert.Equal(t, fiber.StatusConflict, httpCode(t, flow.AuthorizeApprove(pushRequest(st), destSchool)), "status %s", st)
	}
}

func TestPushFlow_Reject(t *testing.T) {
	flow := pushFlow{}

	require.NoError(t, flow.AuthorizeReject(pushRequest(tmodel.TransferPending), destSchool))
	assert.Equal(t, fiber.StatusForbidden, httpCode(t, flow.AuthorizeReject(pushRequest(tmodel.TransferPending), sourceSchool)))
	assert.Equal(t, fiber.StatusConflict, httpCode(t, flow.AuthorizeReject(pushRequest(tmodel.TransferApproved), destSchool)))
}

func TestPushFlow_Complete(t *testing.T) {
	flow := pushFlow{}

	// sekolah asal, dari approved → sah
	require.NoError(t, flow.AuthorizeComplete(pushRequest(tmodel.TransferApproved), sourceSchool))

	// pending belum boleh complete
	assert.Equal(t, fiber.StatusConflict, httpCode(t, flow.AuthorizeComplete(pushRequest(tmodel.TransferPending), sourceSchool)))

	// sekolah tujuan tidak boleh menuntaskan push
	assert.Equal(t, fiber.StatusForbidden, httpCode(t, flow.AuthorizeComplete(pushRequest(tmodel.TransferApproved), destSchool)))

	// completed tidak bisa dituntaskan dua kali
	assert.Equal(t, fiber.StatusConflict, httpCode(t, flow.AuthorizeComplete(pushRequest(tmodel.TransferCompleted), sourceSchool)))
}

func TestPullFlow_ApproveAndReject(t *testing.T) {
	flow := pullFlow{}

	// sekolah ASAL yang menyetujui pull
	require.NoError(t, flow.AuthorizeApprove(pullRequest(tmodel.TransferPending), sourceSchool))
	assert.Equal(t, fiber.StatusForbidden, httpCode(t, flow.AuthorizeApprove(pullRequest(tmodel.TransferPending), destSchool)))
	assert.Equal(t, fiber.StatusConflict, httpCode(t, flow.AuthorizeApprove(pullRequest(tmodel.TransferCompleted), sourceSchool)))

	require.NoError(t, flow.AuthorizeReject(pullRequest(tmodel.TransferPending), sourceSchool))
	assert.Equal(t, fiber.StatusForbidden, httpCode(t, flow.AuthorizeReject(pullRequest(tmodel.TransferPending), destSchool)))
}

func TestPullFlow_CompleteNeverValid(t *testing.T) {
	flow := pullFlow{}

	for _, st := range []tmodel.StudentTransferStatus{tmodel.TransferPending, tmodel.TransferApproved, tmodel.TransferCompleted} {
		for _, actor := range []uuid.UUID{sourceSchool, destSchool} {
			assert.Equal(t, fiber.StatusConflict, httpCode(t, flow.AuthorizeComplete(pullRequest(st), actor)))
		}
	}
}

func TestCancel(t *testing.T) {
	cases := []struct {
		name string
		req  *tmodel.StudentTransferRequestModel
	}{
		{"push", pushRequest(tmodel.TransferPending)},
		{"pull", pullRequest(tmodel.TransferPending)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			flow, err := FlowFor(tc.req)
			require.NoError(t, err)

			// sekolah asal selalu boleh membatalkan
			require.NoError(t, flow.AuthorizeCancel(tc.req, sourceSchool))
			// inisiator juga boleh
			require.NoError(t, flow.AuthorizeCancel(tc.req, tc.req.StudentTransferRequestInitiatedBySchoolID))
			// pihak ketiga tidak
			assert.Equal(t, fiber.StatusForbidden, httpCode(t, flow.AuthorizeCancel(tc.req, unrelatedSchool)))
		})
	}

	// setelah diproses tidak bisa dibatalkan
	flow := pushFlow{}
	assert.Equal(t, fiber.StatusConflict, httpCode(t, flow.AuthorizeCancel(pushRequest(tmodel.TransferApproved), sourceSchool)))
	assert.Equal(t, fiber.StatusConflict, httpCode(t, flow.AuthorizeCancel(pushRequest(tmodel.TransferCompleted), sourceSchool)))
}

func TestEnsureCrossSchool(t *testing.T) {
	v := NewTransferValidator(nil)

	require.NoError(t, v.EnsureCrossSchool(sourceSchool, destSchool))
	assert.Equal(t, fiber.StatusBadRequest, httpCode(t, v.EnsureCrossSchool(sourceSchool, sourceSchool)))
}
