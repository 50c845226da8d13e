package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestSumVisits(t *testing.T) {
	students, souls := SumVisits(nil)
	assert.Zero(t, students)
	assert.Zero(t, souls)

	students, souls = SumVisits([]VisitItem{
		{Location: "Unilag hostels", VisitDate: time.Now(), StudentsReached: 30, SoulsWon: 4},
		{Location: "Yaba tech gate", VisitDate: time.Now(), StudentsReached: 12, SoulsWon: 1},
	})
	assert.Equal(t, 42, students)
	assert.Equal(t, 5, souls)
}

func TestVisitItemValidation(t *testing.T) {
	v := validator.New()

	req := SubmitFellowshipOutreachReportRequest{
		Month: 3,
		Year:  2025,
		Visits: []VisitItem{
			{Location: "Campus gate", VisitDate: time.Now(), StudentsReached: -1},
		},
	}
	assert.Error(t, v.Struct(req), "negative students_reached must be rejected")

	req.Visits[0].StudentsReached = 0
	req.Visits[0].VisitDate = time.Time{}
	assert.Error(t, v.Struct(req), "missing visit_date must be rejected")

	req.Visits[0].VisitDate = time.Now()
	assert.NoError(t, v.Struct(req))
}
