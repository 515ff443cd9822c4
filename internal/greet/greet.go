package greet

import "fmt"

// DefaultOrigin is the name used in greetings when none is configured.
const DefaultOrigin = "Go"

// Greeter builds greeting messages.
type Greeter struct {
	origin string
}

// NewGreeter creates a new Greeter. An empty origin falls back to DefaultOrigin.
func NewGreeter(origin string) *Greeter {
	if origin == "" {
		origin = DefaultOrigin
	}
	return &Greeter{origin: origin}
}

// Greet returns a greeting for name. Any name is accepted, including the empty string.
func (g *Greeter) Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from %s!", name, g.origin)
}
