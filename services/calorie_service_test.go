package services

import "testing"

func TestDailyCalorieTargetGolden(t *testing.T) {
	// BMR = 10*70 + 6.25*170 - 5*30 - 161 = 1451.5
	// TDEE = 1451.5 * 1.45 = 2104.675
	// lose: 2104.675 - 400 = 1704.675 -> truncated 1704
	got := DailyCalorieTarget("lose", 70, 170, 30, "female")
	if got != 1704 {
		t.Fatalf("DailyCalorieTarget(lose, 70, 170, 30, female) = %d, want 1704", got)
	}
}

func TestDailyCalorieTargetDefaultsNeverBelowFloor(t *testing.T) {
	for _, goal := range []string{"lose", "lean", "build", "bulk", "maintain"} {
		got := DailyCalorieTarget(goal, 0, 0, 0, "")
		if got < 1200 {
			t.Errorf("goal %q with all defaults = %d, want >= 1200", goal, got)
		}
	}
}

func TestDailyCalorieTargetGenderOffset(t *testing.T) {
	female := DailyCalorieTarget("maintain", 70, 170, 30, "female")
	unspecified := DailyCalorieTarget("maintain", 70, 170, 30, "")
	male := DailyCalorieTarget("maintain", 70, 170, 30, "male")
	other := DailyCalorieTarget("maintain", 70, 170, 30, "other")

	if female != unspecified {
		t.Errorf("unspecified gender = %d, want female offset result %d", unspecified, female)
	}
	if male != other {
		t.Errorf("gender other = %d, want same as male %d", other, male)
	}
	if male <= female {
		t.Errorf("male target %d should exceed female target %d", male, female)
	}
	// offsets differ by 166, scaled by the 1.45 activity factor:
	// 2345.375 truncated minus 2104.675 truncated
	if diff := male - female; diff != 241 {
		t.Errorf("male-female difference = %d, want 241", diff)
	}
}

func TestDailyCalorieTargetGoalAdjustments(t *testing.T) {
	maintain := DailyCalorieTarget("maintain", 70, 170, 30, "male")
	cases := []struct {
		goal string
		want int
	}{
		{"lose", maintain - 400},
		{"lean", maintain - 150},
		{"build", maintain + 200},
		{"bulk", maintain + 400},
		{"something-else", maintain}, // unknown goals behave like maintain
	}
	for _, tc := range cases {
		if got := DailyCalorieTarget(tc.goal, 70, 170, 30, "male"); got != tc.want {
			t.Errorf("goal %q = %d, want %d", tc.goal, got, tc.want)
		}
	}
}

func TestDailyCalorieTargetClampsToFloor(t *testing.T) {
	// BMR = 300 + 625 - 400 - 161 = 364, TDEE = 527.8, lose -> 127.8
	if got := DailyCalorieTarget("lose", 30, 100, 80, "female"); got != 1200 {
		t.Fatalf("low-TDEE lose target = %d, want floor 1200", got)
	}
}

func TestDailyCalorieTargetZeroInputsUseDefaults(t *testing.T) {
	withDefaults := DailyCalorieTarget("maintain", 0, 0, 0, "female")
	explicit := DailyCalorieTarget("maintain", 70, 170, 30, "female")
	if withDefaults != explicit {
		t.Fatalf("zero biometrics = %d, want default-equivalent %d", withDefaults, explicit)
	}
}
