package testutils

// ScriptedRandomizer replays queued values. When a queue runs dry Float64
// returns 0.999 (no chance ever procs) and IntRange returns min. Queued
// integers are clamped into the requested range.
type ScriptedRandomizer struct {
	floats []float64
	ints   []int

	FloatCalls int
	IntCalls   int
}

// NewScriptedRandomizer creates an empty ScriptedRandomizer
func NewScriptedRandomizer() *ScriptedRandomizer {
	return &ScriptedRandomizer{}
}

// QueueFloats appends values returned by Float64
func (r *ScriptedRandomizer) QueueFloats(values ...float64) *ScriptedRandomizer {
	r.floats = append(r.floats, values...)
	return r
}

// QueueInts appends values returned by IntRange
func (r *ScriptedRandomizer) QueueInts(values ...int) *ScriptedRandomizer {
	r.ints = append(r.ints, values...)
	return r
}

// Float64 returns the next queued float
func (r *ScriptedRandomizer) Float64() float64 {
	r.FloatCalls++
	if len(r.floats) == 0 {
		return 0.999
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// IntRange returns the next queued int, clamped into [min,max]
func (r *ScriptedRandomizer) IntRange(min, max int) int {
	r.IntCalls++
	if len(r.ints) == 0 {
		return min
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
