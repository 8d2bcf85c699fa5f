package guardrail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTurnBudget_StartsAtZero(t *testing.T) {
	var budget TurnBudget
	assert.Equal(t, 0, budget.Calls())
}

func TestTurnBudget_RecordCallIncrementsAndReturns(t *testing.T) {
	var budget TurnBudget

	assert.Equal(t, 1, budget.RecordCall())
	assert.Equal(t, 2, budget.RecordCall())
	assert.Equal(t, 3, budget.RecordCall())
	assert.Equal(t, 3, budget.Calls())
}

func TestTurnBudget_ResetTurn(t *testing.T) {
	var budget TurnBudget
	budget.RecordCall()
	budget.RecordCall()

	budget.ResetTurn()

	assert.Equal(t, 0, budget.Calls())
	assert.Equal(t, 1, budget.RecordCall())
}
