package storage

import "math"

// ComputeStats derives completion statistics from a task list. Statistics are
// never stored; they are always recomputed from the current bucket. An empty
// list yields all zeroes rather than a division fault.
func ComputeStats(tasks []Task) Stats {
	st := Stats{Total: len(tasks)}
	if st.Total == 0 {
		return st
	}
	for _, t := range tasks {
		if t.Done {
			st.Done++
		}
	}
	st.Percent = int(math.Round(float64(st.Done) / float64(st.Total) * 100))
	return st
}
