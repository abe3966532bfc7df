package stats

import (
	"errors"
	"strings"
	"testing"

	"finstat/domain/core"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected Method
		hasError bool
	}{
		{"s", MethodStationary, false},
		{"stationary", MethodStationary, false},
		{"C", MethodCircular, false},
		{"circular", MethodCircular, false},
		{"i", MethodIID, false},
		{" IID ", MethodIID, false},
		{"x", "", true},
		{"", "", true},
	}

	for _, test := range tests {
		result, err := ParseMethod(test.input)
		if test.hasError {
			if !errors.Is(err, core.ErrUnknownMethod) {
				t.Errorf("Expected ErrUnknownMethod for input '%s', got %v", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error for input '%s': %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, result)
		}
	}
}

func TestParseMethodMessageListsChoices(t *testing.T) {
	_, err := ParseMethod("x")
	for _, choice := range []string{"'s'", "'c'", "'i'", "stationary", "circular", "iid"} {
		if !strings.Contains(err.Error(), choice) {
			t.Errorf("error message %q does not mention %s", err.Error(), choice)
		}
	}
}

func TestMethodShort(t *testing.T) {
	if MethodStationary.Short() != "s" || MethodCircular.Short() != "c" || MethodIID.Short() != "i" {
		t.Error("unexpected short codes")
	}
	if Method("bogus").Valid() {
		t.Error("bogus method should not be valid")
	}
}

func TestMaxBlockLengths(t *testing.T) {
	got := MaxBlockLengths([]BlockLengths{
		{Stationary: 3.2, Circular: 4.1},
		{Stationary: 5.5, Circular: 2.0},
		{Stationary: 1.0, Circular: 6.3},
	})
	if got.Stationary != 5.5 || got.Circular != 6.3 {
		t.Errorf("Expected {5.5 6.3}, got %+v", got)
	}
}

func TestInterval(t *testing.T) {
	iv := Interval{Lower: -1, Upper: 2}
	if iv.Width() != 3 {
		t.Errorf("Expected width 3, got %f", iv.Width())
	}
	if !iv.Contains(0) || iv.Contains(2.5) {
		t.Error("Contains misreports membership")
	}
}

func TestRegressionResultSummary(t *testing.T) {
	r := &RegressionResult{
		Params:    []float64{0.5},
		StdErrors: []float64{0.1},
		TValues:   []float64{5},
		PValues:   []float64{0.0001},
		ConfInt:   [][2]float64{{0.3, 0.7}},
		NObs:      100,
		DFResid:   99,
		CovType:   CovHAC,
		MaxLags:   1,
	}

	param, se, tv, pv := r.Intercept()
	if param != 0.5 || se != 0.1 || tv != 5 || pv != 0.0001 {
		t.Errorf("unexpected intercept tuple: %f %f %f %f", param, se, tv, pv)
	}

	summary := r.Summary()
	if !strings.Contains(summary, "HAC(maxlags=1)") {
		t.Errorf("summary missing covariance description:\n%s", summary)
	}
	if !strings.Contains(summary, "P>|z|") {
		t.Errorf("summary should use normal reference for HAC:\n%s", summary)
	}
}
