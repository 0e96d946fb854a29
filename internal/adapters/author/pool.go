package author

import (
	"math/rand/v2"

	"verge/internal/ports"
)

// DefaultNames is the pool new comments are attributed from
var DefaultNames = []string{
	"Sarah M.", "Mike T.", "Emily R.", "Tom B.",
	"Jasmine K.", "Liam P.", "Olivia W.", "Noah C.",
	"Grace L.", "Ethan J.",
}

// RandomPool picks a name uniformly at random for every comment
type RandomPool struct {
	names []string
	intN  func(n int) int
}

// Ensure RandomPool implements AuthorResolver
var _ ports.AuthorResolver = (*RandomPool)(nil)

// NewRandomPool creates a resolver over names (DefaultNames when empty)
func NewRandomPool(names ...string) *RandomPool {
	if len(names) == 0 {
		names = DefaultNames
	}
	return &RandomPool{names: names, intN: rand.IntN}
}

// Resolve returns one name from the pool
func (p *RandomPool) Resolve() string {
	return p.names[p.intN(len(p.names))]
}

// Fixed attributes every comment to the same name
type Fixed string

// Resolve returns the fixed name
func (f Fixed) Resolve() string {
	return string(f)
}
