package indicator

import "testing"

func TestClassify_BoundaryInclusive(t *testing.T) {
	v := Classify("AAPL", 102.0, 100.0, 2.0)
	if v.PercentageDiff != 2.0 {
		t.Errorf("expected percentage diff 2.0, got %v", v.PercentageDiff)
	}
	if !v.IsNear {
		t.Error("deviation exactly at threshold should classify as near")
	}
}

func TestClassify_Direction(t *testing.T) {
	tests := []struct {
		name         string
		currentPrice float64
		ema          float64
		want         string
	}{
		{"above", 102.0, 100.0, "above"},
		{"below", 98.0, 100.0, "below"},
		{"equal maps to below", 100.0, 100.0, "below"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify("SPY", tt.currentPrice, tt.ema, 2.0)
			if v.Direction != tt.want {
				t.Errorf("price %v vs ema %v: expected direction %q, got %q", tt.currentPrice, tt.ema, tt.want, v.Direction)
			}
		})
	}
}

func TestClassify_RoundingAndNotNear(t *testing.T) {
	v := Classify("MSFT", 105.0, 100.0, 2.0)
	if v.PercentageDiff != 5.0 {
		t.Errorf("expected percentage diff 5.0, got %v", v.PercentageDiff)
	}
	if v.IsNear {
		t.Error("5% deviation should not classify as near with a 2% threshold")
	}
}

func TestClassify_RoundsToTwoDecimals(t *testing.T) {
	// |101.234 - 100| / 100 * 100 = 1.234 → 1.23
	v := Classify("GOOGL", 101.234, 100.0, 2.0)
	if v.PercentageDiff != 1.23 {
		t.Errorf("expected 1.23, got %v", v.PercentageDiff)
	}
	if !v.IsNear {
		t.Error("1.23% deviation should classify as near with a 2% threshold")
	}
}

func TestClassify_ZeroEMA(t *testing.T) {
	v := Classify("JUNK", 10.0, 0.0, 2.0)
	if v.IsNear {
		t.Error("zero EMA must never classify as near")
	}
	if v.PercentageDiff != 0 {
		t.Errorf("zero EMA should report zero deviation, got %v", v.PercentageDiff)
	}
	if v.Direction != "above" {
		t.Errorf("positive price over zero EMA should read above, got %q", v.Direction)
	}
}

func TestClassify_CarriesInputs(t *testing.T) {
	v := Classify("AMZN", 198.5, 200.0, 1.5)
	if v.Symbol != "AMZN" || v.CurrentPrice != 198.5 || v.EMA != 200.0 || v.ThresholdPercent != 1.5 {
		t.Errorf("verdict should carry its inputs, got %+v", v)
	}
}
