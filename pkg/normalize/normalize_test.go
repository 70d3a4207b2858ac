package normalize

import (
	"math"
	"testing"

	"github.com/sudorandom/population-explorer/pkg/dataset"
)

var world = dataset.WorldAverages{
	Population: 47658246.33,
	Growth:     1.56,
	Density:    136.57,
	MedianAge:  27.02,
	Urban:      59.41,
	Fertility:  2.74,
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestScoresAtWorldAverage(t *testing.T) {
	n := New(world)
	tests := []struct {
		name string
		fn   func(float64) float64
		raw  float64
		want float64
	}{
		{"Population", n.Population, world.Population, 50},
		{"Density", n.Density, world.Density, 50},
		{"Urban", n.Urban, world.Urban, 50},
		{"Youth", n.Youth, world.MedianAge, 50},
		{"Growth", n.Growth, world.Growth, 50},
		{"Fertility", n.Fertility, world.Fertility, 50},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.raw); !near(got, tt.want) {
			t.Errorf("%s(%v) = %v; want %v", tt.name, tt.raw, got, tt.want)
		}
	}
}

func TestLogScoresSaturate(t *testing.T) {
	n := New(world)
	tests := []struct {
		raw, want float64
	}{
		{world.Population * 100, 100},
		{world.Population * 1000, 100},
		{world.Population / 100, 0},
		{world.Population * 10, 75},
		{world.Population / 10, 25},
		{0, 0},
		{-5, 0},
	}
	for _, tt := range tests {
		if got := n.Population(tt.raw); !near(got, tt.want) {
			t.Errorf("Population(%v) = %v; want %v", tt.raw, got, tt.want)
		}
	}
}

func TestRatioScores(t *testing.T) {
	n := New(world)
	if got := n.Growth(world.Growth * 2.5); !near(got, 100) {
		t.Errorf("Growth(2.5x) = %v; want 100", got)
	}
	if got := n.Growth(world.Growth * 1.75); !near(got, 75) {
		t.Errorf("Growth(1.75x) = %v; want 75", got)
	}
	if got := n.Growth(world.Growth / 2); !near(got, 25) {
		t.Errorf("Growth(0.5x) = %v; want 25", got)
	}
	if got := n.Growth(-1); got != 0 {
		t.Errorf("Growth(-1) = %v; want 0", got)
	}
	if got := n.Urban(world.Urban * 2); !near(got, 100) {
		t.Errorf("Urban(2x) = %v; want 100", got)
	}
	if got := n.Urban(world.Urban * 1.5); !near(got, 75) {
		t.Errorf("Urban(1.5x) = %v; want 75", got)
	}
	if got := n.Urban(0); got != 0 {
		t.Errorf("Urban(0) = %v; want 0", got)
	}
	if got := n.Fertility(world.Fertility * 5); got != 100 {
		t.Errorf("Fertility(5x) = %v; want 100", got)
	}
	if got := n.Youth(world.MedianAge / 2); !near(got, 100) {
		t.Errorf("Youth(half age) = %v; want 100", got)
	}
	if got := n.Youth(world.MedianAge * 2); !near(got, 0) {
		t.Errorf("Youth(double age) = %v; want 0", got)
	}
	if got := n.Youth(0); got != 0 {
		t.Errorf("Youth(0) = %v; want 0", got)
	}
}

func TestScoresStayInRange(t *testing.T) {
	inputs := []float64{0, -1, 1, 1e-300, 1e300, math.Inf(1), math.Inf(-1), math.NaN(), 47.3, 58000000}
	normalizers := []Normalizer{New(world), {}, New(dataset.WorldAverages{Growth: -0.5})}
	for _, n := range normalizers {
		for _, raw := range inputs {
			for _, s := range n.Scores(dataset.CountryRecord{
				Population: raw, YearlyChangePercent: raw, Density: raw,
				MedianAge: raw, UrbanPercent: raw, FertilityRate: raw,
			}) {
				if math.IsNaN(s.Value) || s.Value < 0 || s.Value > 100 {
					t.Errorf("%s(%v) with %+v = %v; want within [0,100]", s.Label, raw, n.Avg, s.Value)
				}
			}
		}
	}
}

func TestZeroAveragesScoreZero(t *testing.T) {
	var n Normalizer
	for _, s := range n.Scores(dataset.CountryRecord{Population: 1e6, YearlyChangePercent: 1, Density: 10, MedianAge: 30, UrbanPercent: 50, FertilityRate: 2}) {
		if s.Value != 0 {
			t.Errorf("%s with zero averages = %v; want 0", s.Label, s.Value)
		}
	}
}

func TestScoresOrderAndRelative(t *testing.T) {
	scores := New(world).Scores(dataset.CountryRecord{Population: world.Population, UrbanPercent: world.Urban})
	want := []string{"Population", "Pop Annual Growth", "Density (people/km²)", "Young Pop", "Urbanization", "Fertility"}
	if len(scores) != len(want) {
		t.Fatalf("got %d scores; want %d", len(scores), len(want))
	}
	for i, s := range scores {
		if s.Label != want[i] || s.ID != MetricID(i) {
			t.Errorf("scores[%d] = %s (%d); want %s", i, s.Label, s.ID, want[i])
		}
	}
	if r := scores[0].Relative(); r != 0 {
		t.Errorf("Relative() at average = %d; want 0", r)
	}
	if r := (Score{Value: 62.5}).Relative(); r != 13 {
		t.Errorf("Relative(62.5) = %d; want 13", r)
	}
	if r := (Score{Value: 10.2}).Relative(); r != -40 {
		t.Errorf("Relative(10.2) = %d; want -40", r)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(math.NaN(), 0, 100); got != 0 {
		t.Errorf("Clamp(NaN) = %v; want 0", got)
	}
	if got := Clamp(math.Inf(1), 0, 100); got != 100 {
		t.Errorf("Clamp(+Inf) = %v; want 100", got)
	}
	if got := Clamp(42, 0, 100); got != 42 {
		t.Errorf("Clamp(42) = %v; want 42", got)
	}
}
