package scenario

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/nvandessel/cruisecheck/internal/constants"
	"github.com/nvandessel/cruisecheck/internal/signal"
)

// sleepRecorder stands in for time.Sleep and remembers each requested pause.
type sleepRecorder struct {
	pauses []time.Duration
}

func (r *sleepRecorder) sleep(d time.Duration) {
	r.pauses = append(r.pauses, d)
}

// verdictRecorder captures StepVerdict calls in order.
type verdictRecorder struct {
	steps  []int
	passed []bool
}

func (v *verdictRecorder) StepVerdict(step int, passed bool) {
	v.steps = append(v.steps, step)
	v.passed = append(v.passed, passed)
}

// fakeECU wraps a MemoryStore and reacts to a SET press the way a healthy
// cruise-control ECU would: it engages and stores the current vehicle speed.
type fakeECU struct {
	*signal.MemoryStore
	setSpeedOffset int
}

func newFakeECU(offset int) *fakeECU {
	return &fakeECU{MemoryStore: signal.NewMemoryStore(signal.Defaults()), setSpeedOffset: offset}
}

func (f *fakeECU) Write(name string, value int) {
	f.MemoryStore.Write(name, value)
	if name == signal.CruiseControlSetButton && value == 1 {
		speed, _ := f.MemoryStore.Read(signal.VehicleSpeed)
		f.MemoryStore.Write(signal.CruiseControlActive, 1)
		f.MemoryStore.Write(signal.CruiseControlEnabledSwitch, 1)
		f.MemoryStore.Write(signal.CruiseControlStates, constants.StateActive)
		f.MemoryStore.Write(signal.CruiseControlSetSpeed, speed+f.setSpeedOffset)
	}
}

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// assertSignal asserts that name is present with the given value.
func assertSignal(t *testing.T, s signal.Store, name string, want int) {
	t.Helper()
	got, ok := s.Read(name)
	if !ok {
		t.Errorf("assertSignal: %s absent, want %d", name, want)
		return
	}
	if got != want {
		t.Errorf("assertSignal: %s = %d, want %d", name, got, want)
	}
}

// assertAbsent asserts that name was never written.
func assertAbsent(t *testing.T, s signal.Store, name string) {
	t.Helper()
	if got, ok := s.Read(name); ok {
		t.Errorf("assertAbsent: %s = %d, want absent", name, got)
	}
}

// assertPauses asserts the exact sequence of settling pauses.
func assertPauses(t *testing.T, got []time.Duration, want ...time.Duration) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("assertPauses: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("assertPauses: pause %d = %v, want %v", i, got[i], want[i])
		}
	}
}
