package metrics

import (
	"testing"
	"time"
)

type testRecorder struct {
	stageDurations map[string]int
	stageResults   map[string]map[ResultLabel]int
	runDurations   int
	outcomes       map[OutcomeLabel]int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{stageDurations: map[string]int{}, stageResults: map[string]map[ResultLabel]int{}, outcomes: map[OutcomeLabel]int{}}
}

func (t *testRecorder) ObserveStageDuration(stage string, _ time.Duration) { t.stageDurations[stage]++ }
func (t *testRecorder) IncStageResult(stage string, result ResultLabel) {
	m, ok := t.stageResults[stage]
	if !ok {
		m = map[ResultLabel]int{}
		t.stageResults[stage] = m
	}
	m[result]++
}
func (t *testRecorder) ObserveRunDuration(time.Duration)    { t.runDurations++ }
func (t *testRecorder) IncRunOutcome(outcome OutcomeLabel) { t.outcomes[outcome]++ }
func (t *testRecorder) IncFieldViolation(string)           {}
func (t *testRecorder) SetFragmentFiles(int)               {}

func TestRecorderInterfaceCompliance(t *testing.T) {
	var _ Recorder = NoopRecorder{}
	var _ Recorder = (*PrometheusRecorder)(nil)
	var _ Recorder = newTestRecorder()
}

func TestTestRecorderCounts(t *testing.T) {
	r := newTestRecorder()
	r.ObserveStageDuration("load", time.Millisecond)
	r.IncStageResult("load", ResultSuccess)
	r.IncStageResult("load", ResultSuccess)
	r.IncRunOutcome(OutcomeSuccess)
	if r.stageDurations["load"] != 1 {
		t.Fatalf("expected 1 load duration, got %d", r.stageDurations["load"])
	}
	if r.stageResults["load"][ResultSuccess] != 2 {
		t.Fatalf("expected 2 load successes, got %d", r.stageResults["load"][ResultSuccess])
	}
	if r.outcomes[OutcomeSuccess] != 1 {
		t.Fatalf("expected 1 success outcome, got %d", r.outcomes[OutcomeSuccess])
	}
}
