package domain

import "testing"

func TestValidCategory(t *testing.T) {
	for _, c := range []Category{CategoryDiagnostic, CategorySurgical, CategoryTherapy, CategoryMonitoring, CategoryOther} {
		if !ValidCategory(c) {
			t.Errorf("expected %q to be valid", c)
		}
	}
	for _, c := range []Category{"", "diagnostic", "Gardening"} {
		if ValidCategory(c) {
			t.Errorf("expected %q to be invalid", c)
		}
	}
}

func TestInsufficientStockError_Message(t *testing.T) {
	err := &InsufficientStockError{Available: 3}
	if err.Error() != "insufficient stock: 3 available" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
