package services

import "testing"

func TestMockProductLookupGoldenValues(t *testing.T) {
	var lookup MockProductLookup

	cases := []struct {
		code      string
		calories  int
		processed int
		rating    string
	}{
		// seed is the sum of character values:
		// "d" -> 100: calories 150, processed 30, Good
		{"d", 150, 30, "Good"},
		// "ab" -> 195: calories 245, processed 45, Moderate
		{"ab", 245, 45, "Moderate"},
		// "abc" -> 294: calories 344, processed 64, Avoid
		{"abc", 344, 64, "Avoid"},
	}

	for _, tc := range cases {
		got := lookup.Scan(tc.code)
		if got.Calories != tc.calories || got.ProcessedPercent != tc.processed || got.HealthRating != tc.rating {
			t.Errorf("Scan(%q) = %+v, want {%d %d %s}", tc.code, got, tc.calories, tc.processed, tc.rating)
		}
	}
}

func TestMockProductLookupIsDeterministic(t *testing.T) {
	var lookup MockProductLookup
	a := lookup.Scan("5901234123457")
	b := lookup.Scan("5901234123457")
	if a != b {
		t.Fatalf("same code scanned differently: %+v vs %+v", a, b)
	}
}
