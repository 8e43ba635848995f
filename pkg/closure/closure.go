// Package closure shows functions that keep their enclosing variables alive.
package closure

// Outer declares a local and hands back an inner function that still reads it.
// Calling the result returns 10 + 40 = 50.
func Outer() func() int {
	a := 10
	return func() int {
		b := 40
		return a + b
	}
}

// Counter returns a function that increments the captured value on every call.
func Counter(start int) func() int {
	n := start
	return func() int {
		n++
		return n
	}
}
