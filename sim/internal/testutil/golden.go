// Package testutil provides shared test infrastructure for the sim packages.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenServes represents the structure of testdata/serve_golden.json.
type GoldenServes struct {
	Tests []GoldenServeCase `json:"tests"`
}

// GoldenServeCase is one hand-priced serve: a front customer's order and
// patience, the wrap handed over, and the expected outcome.
type GoldenServeCase struct {
	Name     string        `json:"name"`
	Order    []string      `json:"order"`
	Wrap     []string      `json:"wrap"`
	Patience float64       `json:"patience"`
	Outcome  GoldenOutcome `json:"outcome"`
}

// GoldenOutcome is the expected result of a golden serve.
type GoldenOutcome struct {
	Result   string `json:"result"`
	Earnings int    `json:"earnings"` // base price plus tip
	Tip      int    `json:"tip"`
	Perfect  bool   `json:"perfect"`
}

// LoadGoldenServes loads the golden serve table from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenServes(t *testing.T) *GoldenServes {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "serve_golden.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden serves: %v", err)
	}

	var golden GoldenServes
	if err := json.Unmarshal(data, &golden); err != nil {
		t.Fatalf("Failed to parse golden serves: %v", err)
	}
	if len(golden.Tests) == 0 {
		t.Fatal("golden serve table is empty")
	}
	return &golden
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
