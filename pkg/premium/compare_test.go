package premium

import (
	"testing"

	"github.com/onestop-insurance/onestop/pkg/mathutil"
)

func TestComparePlans(t *testing.T) {
	rates := standardRates()
	totalCost := 2047.8625

	plans := ComparePlans(totalCost, rates)
	if len(plans) != 2 {
		t.Fatalf("ComparePlans() returned %d plans, expected 2", len(plans))
	}

	if plans[0].Method != Full {
		t.Errorf("plans[0].Method = %v, expected Full", plans[0].Method)
	}
	if plans[0].TotalPaid != totalCost {
		t.Errorf("Full plan TotalPaid = %v, expected %v", plans[0].TotalPaid, totalCost)
	}
	if plans[0].SurchargeOverFull != 0 {
		t.Errorf("Full plan SurchargeOverFull = %v, expected 0", plans[0].SurchargeOverFull)
	}

	if plans[1].Method != Monthly {
		t.Errorf("plans[1].Method = %v, expected Monthly", plans[1].Method)
	}
	// Eight installments each carrying the processing fee: the surcharge is
	// exactly fee * numPayments.
	expectedSurcharge := 39.99 * 8
	if !mathutil.WithinTolerance(plans[1].SurchargeOverFull, expectedSurcharge, 0.0001) {
		t.Errorf("Monthly plan SurchargeOverFull = %v, expected %v", plans[1].SurchargeOverFull, expectedSurcharge)
	}
	if !mathutil.WithinTolerance(plans[1].TotalPaid, totalCost+expectedSurcharge, 0.0001) {
		t.Errorf("Monthly plan TotalPaid = %v, expected %v", plans[1].TotalPaid, totalCost+expectedSurcharge)
	}
}
