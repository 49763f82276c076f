// Package scenario runs the two-step cruise-control acceptance test.
//
// Step 1 powers the vehicle up and checks that cruise control is idle. If
// that baseline does not hold the run stops there. Step 2 brings the vehicle
// into the activation window, presses SET and checks that cruise control
// engaged. The run is one-shot: no retries, no rollback, no cancellation.
//
// The store, the randomness source and the sleeper are all injected, so a
// test can drive the whole scenario deterministically and without pausing:
//
//	store := signal.NewMemoryStore(signal.Defaults())
//	r := scenario.NewRunner(store, scenario.Options{
//	    Rand:  rand.New(rand.NewPCG(1, 2)),
//	    Sleep: func(time.Duration) {},
//	})
//	result := r.Run()
//	if result.State != scenario.StateStep2Checked { ... }
package scenario
