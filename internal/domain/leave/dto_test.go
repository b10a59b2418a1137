package leave

import (
	"testing"
	"time"

	"github.com/staffdesk/workforce-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func TestSubmitLeaveRequest_Valid(t *testing.T) {
	req := SubmitLeaveRequest{
		LeaveType: "annual",
		StartDate: "2024-06-20",
		EndDate:   "2024-06-22",
		Reason:    "family trip",
	}
	assert.NoError(t, req.Validate(testToday))
}

func TestSubmitLeaveRequest_StartsToday(t *testing.T) {
	req := SubmitLeaveRequest{
		LeaveType: "sick",
		StartDate: "2024-06-15",
		EndDate:   "2024-06-15",
		Reason:    "flu",
	}
	assert.NoError(t, req.Validate(testToday))
}

func TestSubmitLeaveRequest_PastDate(t *testing.T) {
	req := SubmitLeaveRequest{
		LeaveType: "annual",
		StartDate: "2024-06-14", // yesterday
		EndDate:   "2024-06-16",
		Reason:    "too late",
	}
	err := req.Validate(testToday)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap()["start_date"], "past date")
}

func TestSubmitLeaveRequest_EndBeforeStart(t *testing.T) {
	req := SubmitLeaveRequest{
		LeaveType: "personal",
		StartDate: "2024-06-22",
		EndDate:   "2024-06-20",
		Reason:    "backwards",
	}
	err := req.Validate(testToday)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "end_date")
}

func TestSubmitLeaveRequest_UnknownTypeAndEmptyReason(t *testing.T) {
	req := SubmitLeaveRequest{
		LeaveType: "sabbatical",
		StartDate: "2024-06-20",
		EndDate:   "2024-06-21",
		Reason:    "  ",
	}
	err := req.Validate(testToday)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	m := errs.ToMap()
	assert.Contains(t, m, "leave_type")
	assert.Contains(t, m, "reason")
}

func TestDecideLeaveRequest_Validate(t *testing.T) {
	ok := DecideLeaveRequest{ID: "x", Status: "approved"}
	assert.NoError(t, ok.Validate())

	ok.Status = "rejected"
	assert.NoError(t, ok.Validate())

	for _, bad := range []string{"pending", "Approved", "cancelled", ""} {
		req := DecideLeaveRequest{ID: "x", Status: bad}
		assert.Error(t, req.Validate(), "status=%q", bad)
	}
}

func TestLeaveRequestDays(t *testing.T) {
	req := LeaveRequest{
		StartDate: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 22, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 3, req.Days())

	sameDay := LeaveRequest{StartDate: req.StartDate, EndDate: req.StartDate}
	assert.Equal(t, 1, sameDay.Days())
}
