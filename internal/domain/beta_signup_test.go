package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetaSignup_MissingRequired(t *testing.T) {
	assert.Equal(t, []string{"full_name", "email"}, BetaSignup{}.MissingRequired())
	assert.Equal(t, []string{"email"}, BetaSignup{FullName: "Ana"}.MissingRequired())
	assert.Empty(t, BetaSignup{FullName: "Ana", Email: "ana@acme.co"}.MissingRequired())
	assert.Equal(t, []string{"full_name"}, BetaSignup{FullName: "   ", Email: "ana@acme.co"}.MissingRequired())
}

func TestBetaSignup_Record(t *testing.T) {
	record := BetaSignup{
		FullName:      "Ana Souza",
		Email:         "ana@acme.co",
		Company:       "Acme",
		Role:          "founder",
		MonthlyVolume: "medium",
	}.Record()

	assert.Len(t, record, 5)
	assert.Equal(t, "Ana Souza", record["full_name"])
	assert.Equal(t, "medium", record["monthly_volume"])
}

func TestBetaSignup_Record_OptionalFieldsAreNull(t *testing.T) {
	record := BetaSignup{FullName: "Ana Souza", Email: "ana@acme.co"}.Record()

	assert.Len(t, record, len(BetaSignupColumns))
	for _, column := range BetaSignupColumns {
		assert.Contains(t, record, column)
	}
	assert.Nil(t, record["company"])
	assert.Nil(t, record["role"])
	assert.Nil(t, record["monthly_volume"])
	assert.Equal(t, "ana@acme.co", record["email"])
}
