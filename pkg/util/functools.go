// Package util holds small generic helpers shared by the editor front ends.
package util

// Map applies fn to every element of ts, keeping the order.
func Map[T, V any](ts []T, fn func(T) V) []V {
	result := make([]V, len(ts))
	for i, t := range ts {
		result[i] = fn(t)
	}
	return result
}
