package nutrition

import (
	"math"
	"testing"
)

func TestMifflinStJeorBMR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		age      int
		gender   Gender
		want     float64
	}{
		{
			name:     "male reference profile",
			weightKg: 80,
			heightCm: 180,
			age:      30,
			gender:   GenderMale,
			want:     1780,
		},
		{
			name:     "non-male reference profile",
			weightKg: 70,
			heightCm: 170,
			age:      30,
			gender:   GenderOther,
			want:     1451.5,
		},
		{
			name:     "older lighter male",
			weightKg: 62.5,
			heightCm: 168,
			age:      55,
			gender:   GenderMale,
			want:     10*62.5 + 6.25*168 - 5*55 + 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := MifflinStJeor{}.BMR(tt.weightKg, tt.heightCm, tt.age, tt.gender)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("BMR() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHarrisBenedictBMR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
		age      int
		gender   Gender
		want     float64
	}{
		{
			name:     "male reference profile",
			weightKg: 80,
			heightCm: 180,
			age:      30,
			gender:   GenderMale,
			want:     88.362 + 13.397*80 + 4.799*180 - 5.677*30,
		},
		{
			name:     "non-male reference profile",
			weightKg: 70,
			heightCm: 170,
			age:      30,
			gender:   GenderOther,
			want:     447.593 + 9.247*70 + 3.098*170 - 4.330*30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := HarrisBenedict{}.BMR(tt.weightKg, tt.heightCm, tt.age, tt.gender)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("BMR() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEstimatorsAreDeterministic(t *testing.T) {
	t.Parallel()

	estimators := []struct {
		name string
		e    Estimator
	}{
		{name: "mifflin-st jeor", e: MifflinStJeor{}},
		{name: "harris-benedict", e: HarrisBenedict{}},
	}

	for _, tt := range estimators {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			first := tt.e.BMR(75.5, 172.2, 41, GenderOther)
			for range 10 {
				if got := tt.e.BMR(75.5, 172.2, 41, GenderOther); got != first {
					t.Errorf("BMR() = %v, want %v on repeat call", got, first)
				}
			}
		})
	}
}
