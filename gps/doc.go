// SPDX-License-Identifier: MIT

// Package gps provides a high-resolution instant made of whole seconds and
// nanoseconds, with a total order and exact equality.
//
// What is a gps.Time?
//
//	A pair (Sec, Nano) where Sec is a signed 64-bit count of seconds and
//	Nano ∈ [0, 999 999 999] is the sub-second part. The value denotes
//	Sec + Nano·10⁻⁹ seconds; negative instants keep Nano non-negative,
//	so -0.5 s is stored as {Sec: -1, Nano: 500000000}.
//
// Key features:
//   - lexicographic ordering via Cmp and the nil-aware Compare
//   - carry-normalizing arithmetic with time.Duration (Add, Sub)
//   - exact decimal rendering (Format, String) and parsing (Parse)
//   - DecimalPlaces: the shortest of 0/3/6/9 fractional digits that prints
//     the value without loss
//
// Usage:
//
//	t, err := gps.New(794285000, 602350000)
//	if err != nil {
//	  // handle ErrNanoRange
//	}
//	u := t.Add(10 * time.Second)
//	fmt.Println(u.Cmp(t), u) // 1 794285010.602350000
//
// Complexity: every operation is O(1) except Parse/Format, which are linear in
// the length of the decimal text.
package gps
