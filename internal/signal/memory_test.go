package signal

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// recordingObserver captures every notification for assertions.
type recordingObserver struct {
	writes []string
	reads  []string
}

func (r *recordingObserver) SignalWritten(name string, value int) {
	r.writes = append(r.writes, name)
}

func (r *recordingObserver) SignalRead(name string, value int, present bool) {
	r.reads = append(r.reads, name)
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	want := []string{
		CruiseControlActive,
		CruiseControlEnabledSwitch,
		CruiseControlStates,
		CruiseControlSetSpeed,
		VehicleSpeed,
	}
	if len(d) != len(want) {
		t.Fatalf("len(Defaults()) = %d, want %d", len(d), len(want))
	}
	for _, name := range want {
		v, ok := d[name]
		if !ok {
			t.Errorf("Defaults() missing %s", name)
			continue
		}
		if v != 0 {
			t.Errorf("Defaults()[%s] = %d, want 0", name, v)
		}
	}

	// Each call must hand out an independent map.
	d[VehicleSpeed] = 99
	if Defaults()[VehicleSpeed] != 0 {
		t.Error("Defaults() returned a shared map")
	}
}

func TestMemoryStore_SeededReadsZero(t *testing.T) {
	s := NewMemoryStore(Defaults())
	for name := range Defaults() {
		v, ok := s.Read(name)
		if !ok || v != 0 {
			t.Errorf("Read(%s) = (%d, %v), want (0, true)", name, v, ok)
		}
	}
}

func TestMemoryStore_UnknownReadsAbsent(t *testing.T) {
	s := NewMemoryStore(Defaults())
	names := []string{PowerSupply, EngineStart, GearIncreaseOne, AccPedal, CruiseControlSetButton, "NoSuchSignal", ""}
	for _, name := range names {
		v, ok := s.Read(name)
		if ok {
			t.Errorf("Read(%q) ok = true, want absent", name)
		}
		if v != 0 {
			t.Errorf("Read(%q) value = %d, want zero value alongside absent", name, v)
		}
	}
}

func TestMemoryStore_WriteThenRead(t *testing.T) {
	tests := []struct {
		name  string
		sig   string
		value int
	}{
		{"seeded signal", VehicleSpeed, 33},
		{"unseeded signal is created", AccPedal, 40},
		{"negative value", CruiseControlSetSpeed, -5},
		{"zero overwrite", CruiseControlActive, 0},
		{"large value", "Odometer", 1 << 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemoryStore(Defaults())
			s.Write(tt.sig, tt.value)
			got, ok := s.Read(tt.sig)
			if !ok || got != tt.value {
				t.Errorf("Read(%s) = (%d, %v), want (%d, true)", tt.sig, got, ok, tt.value)
			}
		})
	}
}

func TestMemoryStore_OverwriteKeepsLatest(t *testing.T) {
	s := NewMemoryStore(nil)
	s.Write(VehicleSpeed, 10)
	s.Write(VehicleSpeed, 20)
	if got, _ := s.Read(VehicleSpeed); got != 20 {
		t.Errorf("Read(VehicleSpeed) = %d, want 20", got)
	}
}

func TestMemoryStore_DoesNotAliasSeed(t *testing.T) {
	seed := Defaults()
	s := NewMemoryStore(seed)
	s.Write(VehicleSpeed, 30)
	if seed[VehicleSpeed] != 0 {
		t.Error("Write mutated the caller's seed map")
	}
}

func TestMemoryStore_Snapshot(t *testing.T) {
	s := NewMemoryStore(Defaults())
	s.Write(AccPedal, 40)

	snap := s.Snapshot()
	if len(snap) != 6 {
		t.Errorf("len(Snapshot()) = %d, want 6", len(snap))
	}
	if snap[AccPedal] != 40 {
		t.Errorf("Snapshot()[AccPedal] = %d, want 40", snap[AccPedal])
	}

	snap[AccPedal] = 0
	if v, _ := s.Read(AccPedal); v != 40 {
		t.Error("Snapshot() returned a map aliased to the store")
	}
}

func TestMemoryStore_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewMemoryStore(Defaults(), WithLogger(logger))

	s.Write(VehicleSpeed, 31)
	s.Read(VehicleSpeed)
	s.Read(AccPedal)

	out := buf.String()
	for _, want := range []string{
		`msg="signal write" signal=VehicleSpeed value=31`,
		`msg="signal read" signal=VehicleSpeed value=31`,
		`msg="signal read" signal=AccPedal present=false`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q\n%s", want, out)
		}
	}
}

func TestMemoryStore_InfoLevelHidesAccessLines(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	s := NewMemoryStore(Defaults(), WithLogger(logger))

	s.Write(VehicleSpeed, 31)
	s.Read(VehicleSpeed)

	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}

func TestMemoryStore_Observers(t *testing.T) {
	a := &recordingObserver{}
	b := &recordingObserver{}
	s := NewMemoryStore(Defaults(), WithObserver(a), WithObserver(b), WithObserver(nil))

	s.Write(AccPedal, 40)
	s.Read(AccPedal)
	s.Read("Missing")

	for i, obs := range []*recordingObserver{a, b} {
		if len(obs.writes) != 1 || obs.writes[0] != AccPedal {
			t.Errorf("observer %d writes = %v, want [%s]", i, obs.writes, AccPedal)
		}
		if len(obs.reads) != 2 {
			t.Errorf("observer %d reads = %v, want 2 entries", i, obs.reads)
		}
	}
}

func TestMemoryStore_ImplementsStore(t *testing.T) {
	var _ Store = NewMemoryStore(nil)
	var _ Store = (*SQLiteStore)(nil)
}
