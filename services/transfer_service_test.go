package services

import (
	"testing"

	"hotel-frontdesk/models"
)

func TestValidateTransferReason(t *testing.T) {
	t.Parallel()

	for _, reason := range []string{
		models.TransferReasonBroken,
		models.TransferReasonUpgrade,
		models.TransferReasonGuestRequest,
		models.TransferReasonDowngrade,
	} {
		if err := ValidateTransferReason(reason, ""); err != nil {
			t.Errorf("ValidateTransferReason(%q) = %v, want nil", reason, err)
		}
	}

	if err := ValidateTransferReason(models.TransferReasonOther, "guest prefers a quieter floor"); err != nil {
		t.Errorf("other with note = %v, want nil", err)
	}
	if err := ValidateTransferReason(models.TransferReasonOther, "   "); !IsValidation(err) {
		t.Errorf("other without note = %v, want validation error", err)
	}
	if err := ValidateTransferReason("flooded", ""); !IsValidation(err) {
		t.Errorf("unknown reason = %v, want validation error", err)
	}
}
