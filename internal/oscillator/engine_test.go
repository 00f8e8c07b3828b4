package oscillator

import (
	"math"
	"reflect"
	"testing"

	"KappaTrend/internal/model"
)

func risingSeries(n int, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 100 + step*float64(i)
	}
	return out
}

func fallingSeries(n int, step float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 100 + step*float64(n) - step*float64(i)
	}
	return out
}

func TestNewEngine_NeutralDefaults(t *testing.T) {
	e := NewEngine()
	if e.Value() != NeutralValue {
		t.Errorf("expected initial value %v, got %v", NeutralValue, e.Value())
	}
	if e.Signal() != model.SignalNeutral {
		t.Errorf("expected neutral signal, got %v", e.Signal())
	}
	st := e.State()
	if st.Epoch != 0 || st.Phase != 0 || st.Momentum != 0 {
		t.Errorf("unexpected initial state: %+v", st)
	}
	if len(e.History()) != 0 {
		t.Errorf("expected empty history, got %d entries", len(e.History()))
	}
}

func TestUpdate_EmptySeriesIsNoOp(t *testing.T) {
	e := NewEngine()
	e.Update(risingSeries(20, 2))
	before := e.State()
	histBefore := len(e.History())

	got := e.Update(nil)
	if !reflect.DeepEqual(got, before) {
		t.Errorf("empty update changed state: %+v -> %+v", before, got)
	}
	if !reflect.DeepEqual(e.State(), before) {
		t.Errorf("empty update mutated engine state: %+v", e.State())
	}
	if len(e.History()) != histBefore {
		t.Errorf("empty update appended to history")
	}
}

func TestUpdate_InsufficientHistoryStaysNeutral(t *testing.T) {
	demo := []float64{104.2, 106.8, 105.1, 108.9, 107.3, 110.2, 109.0, 111.5, 112.1, 110.8}

	e := NewEngine()
	st := e.Update(demo)
	if st.Value != 50.0 {
		t.Errorf("expected exactly 50.0 below the lookback, got %v", st.Value)
	}
	if st.Epoch != 1 {
		t.Errorf("expected epoch 1, got %d", st.Epoch)
	}
	if st.Momentum != 0 || st.Signal != model.SignalNeutral {
		t.Errorf("expected neutral momentum and signal, got %+v", st)
	}
}

func TestUpdate_Boundedness(t *testing.T) {
	cfg := DefaultConfig()
	series := [][]float64{
		risingSeries(20, 5),
		fallingSeries(20, 5),
		risingSeries(30, 0.001),
		{1e9, -1e9, 1e9, -1e9, 1e9, -1e9, 1e9, -1e9, 1e9, -1e9, 1e9, -1e9, 1e9, -1e9, 1e9},
	}
	e := NewEngine()
	for i, s := range series {
		st := e.Update(s)
		if st.Value < cfg.Lower || st.Value > cfg.Upper {
			t.Errorf("series %d: value %v outside [%v, %v]", i, st.Value, cfg.Lower, cfg.Upper)
		}
	}
}

func TestUpdate_CrossoverSignals(t *testing.T) {
	e := NewEngine()

	// Strong rise from the neutral start clears the 4.4 threshold upward.
	st := e.Update(risingSeries(20, 2))
	if st.Value != BandUpper {
		t.Errorf("expected value clamped to %v, got %v", BandUpper, st.Value)
	}
	if st.Signal != model.SignalBull {
		t.Errorf("expected bull signal, got %v", st.Signal)
	}

	// Same trend again: the value holds, so the change is below threshold.
	st = e.Update(risingSeries(20, 2))
	if st.Signal != model.SignalNeutral {
		t.Errorf("expected neutral signal on flat value, got %v (momentum %v)", st.Signal, st.Momentum)
	}

	// Reversal clears the threshold downward.
	st = e.Update(fallingSeries(20, 2))
	if st.Signal != model.SignalBear {
		t.Errorf("expected bear signal, got %v (momentum %v)", st.Signal, st.Momentum)
	}
	if st.Value != BandLower {
		t.Errorf("expected value clamped to %v, got %v", BandLower, st.Value)
	}
}

func TestUpdate_MomentumTracksPreviousValue(t *testing.T) {
	e := NewEngine()
	st1 := e.Update(risingSeries(20, 2))
	if math.Abs(st1.Momentum-(st1.Value-NeutralValue)) > 1e-12 {
		t.Errorf("first momentum should measure from the %v default, got %v", NeutralValue, st1.Momentum)
	}
	st2 := e.Update(fallingSeries(20, 2))
	if math.Abs(st2.Momentum-(st2.Value-st1.Value)) > 1e-12 {
		t.Errorf("momentum %v does not match value change %v", st2.Momentum, st2.Value-st1.Value)
	}
}

func TestUpdate_PhaseWraps(t *testing.T) {
	e := NewEngine()
	cfg := e.Config()

	const k = 40
	for i := 0; i < k; i++ {
		e.Update([]float64{1.0})
	}
	want := math.Mod(k*cfg.PhaseRad, 2*math.Pi)
	got := e.State().Phase
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("after %d updates expected phase %v, got %v", k, want, got)
	}
	if got < 0 || got >= 2*math.Pi {
		t.Errorf("phase %v outside [0, 2π)", got)
	}
}

func TestUpdate_MonotoneEpochAndHistory(t *testing.T) {
	e := NewEngine()
	for i := 1; i <= 5; i++ {
		st := e.Update([]float64{float64(i)})
		if st.Epoch != i {
			t.Fatalf("update %d: expected epoch %d, got %d", i, i, st.Epoch)
		}
		e.Update(nil) // no-op must not advance
		if e.State().Epoch != i {
			t.Fatalf("empty update advanced epoch to %d", e.State().Epoch)
		}
	}
	if got := len(e.History()); got != 5 {
		t.Errorf("expected 5 history entries, got %d", got)
	}

	// History returns a copy.
	h := e.History()
	h[0] = -1
	if e.History()[0] == -1 {
		t.Error("History() exposed internal storage")
	}
}

func TestOverboughtOversold_DefaultBands(t *testing.T) {
	e := NewEngine()
	e.Update(risingSeries(20, 2)) // clamps to the upper bound
	if !e.InOverbought() {
		t.Errorf("expected overbought at value %v", e.Value())
	}
	if e.InOversold() {
		t.Errorf("unexpected oversold at value %v", e.Value())
	}

	e.Update(fallingSeries(20, 2)) // clamps to the lower bound
	if !e.InOversold() {
		t.Errorf("expected oversold at value %v", e.Value())
	}
	if e.InOverbought() {
		t.Errorf("unexpected overbought at value %v", e.Value())
	}
}

func TestOverboughtMargin_UsesFixedConstants(t *testing.T) {
	// A narrow custom band: the margin stays 10% of the fixed constant
	// span (6.0), not of the configured span, so the overbought zone
	// starts at 79 rather than 84.
	cfg := DefaultConfig()
	cfg.Upper = 85
	cfg.Lower = 75

	e := NewEngineWith(cfg)
	st := e.Update(risingSeries(20, 2))
	if st.Value >= 84 {
		t.Fatalf("test premise broken: value %v too high", st.Value)
	}
	if st.Value < 79 {
		t.Fatalf("test premise broken: value %v too low", st.Value)
	}
	if !e.InOverbought() {
		t.Errorf("expected overbought at value %v with fixed-constant margin", st.Value)
	}
}

func TestDefaultConfig_WeightsSumToOne(t *testing.T) {
	cfg := DefaultConfig()
	if math.Abs(cfg.DomWeight+cfg.SecWeight-1.0) > 1e-12 {
		t.Errorf("default blend weights sum to %v", cfg.DomWeight+cfg.SecWeight)
	}
	if cfg.Upper <= cfg.Lower || cfg.Lower <= 0 {
		t.Errorf("default bounds violate Upper > Lower > 0: %+v", cfg)
	}
}
