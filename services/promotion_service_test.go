package services

import (
	"testing"
	"time"

	"hotel-frontdesk/models"
)

func validPromotion() PromotionInput {
	return PromotionInput{
		Code:      "SUMMER25",
		Name:      "Summer sale",
		Type:      models.PromotionTypePercentage,
		Value:     25,
		Scope:     models.PromotionScopeAll,
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidatePromotionInput(t *testing.T) {
	t.Parallel()

	if err := ValidatePromotionInput(validPromotion()); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*PromotionInput)
	}{
		{"missing code", func(in *PromotionInput) { in.Code = "  " }},
		{"missing name", func(in *PromotionInput) { in.Name = "" }},
		{"percentage over 100", func(in *PromotionInput) { in.Value = 101 }},
		{"percentage zero", func(in *PromotionInput) { in.Value = 0 }},
		{"negative fixed amount", func(in *PromotionInput) {
			in.Type = models.PromotionTypeFixedAmount
			in.Value = -50000
		}},
		{"unknown type", func(in *PromotionInput) { in.Type = "BOGO" }},
		{"unknown scope", func(in *PromotionInput) { in.Scope = "SPA" }},
		{"end before start", func(in *PromotionInput) {
			in.EndDate = in.StartDate.AddDate(0, 0, -1)
		}},
		{"end equals start", func(in *PromotionInput) { in.EndDate = in.StartDate }},
	}
	for _, tc := range cases {
		in := validPromotion()
		tc.mutate(&in)
		if err := ValidatePromotionInput(in); !IsValidation(err) {
			t.Errorf("%s: err = %v, want validation error", tc.name, err)
		}
	}
}

func TestValidatePromotionInputFixedAmount(t *testing.T) {
	t.Parallel()

	in := validPromotion()
	in.Type = models.PromotionTypeFixedAmount
	in.Value = 150000 // a fixed amount may exceed 100
	if err := ValidatePromotionInput(in); err != nil {
		t.Fatalf("fixed amount above 100 rejected: %v", err)
	}
}
