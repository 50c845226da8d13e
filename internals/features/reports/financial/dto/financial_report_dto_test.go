package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestSumExpenses(t *testing.T) {
	assert.True(t, SumExpenses(nil).IsZero())

	total := SumExpenses([]ExpenseItem{
		{Description: "Hall rental", Amount: dec("150.00")},
		{Description: "Transport", Amount: dec("45.50")},
		{Description: "Refreshments", Amount: dec("20.25")},
	})
	assert.True(t, total.Equal(dec("215.75")), "got %s", total)
}

func TestUnmarshalExpensesEmptyColumn(t *testing.T) {
	items, err := UnmarshalExpenses(nil)
	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestSubmitRequestLineItemValidation(t *testing.T) {
	v := validator.New()

	req := SubmitFinancialReportRequest{
		Month: 3,
		Year:  2025,
		Expenses: []ExpenseItem{
			{Description: "x", Amount: dec("10.00")},
		},
	}
	assert.Error(t, v.Struct(req), "one-character description must be rejected")

	req.Expenses[0].Description = "Generator fuel"
	assert.NoError(t, v.Struct(req))
}
