// Package callback passes a function as an argument and lets the callee report what it received.
package callback

// DefaultResult is the value Dispatch hands to its callback unless configured otherwise.
const DefaultResult = 20

// Printer is the subset of console.Printer the callbacks need.
type Printer interface {
	Line(label string, values ...any)
}

// Dispatch announces itself, then calls fn with result.
func Dispatch(p Printer, result int, fn func(int)) {
	p.Line("A - console for higher order")
	fn(result)
}

// Receiver builds the callback Dispatch invokes.
func Receiver(p Printer) func(int) {
	return func(result int) {
		p.Line("b - console from the function")
		p.Line("Result received from A:", result)
	}
}
