package lives

import (
	"strings"
	"sync"

	"github.com/df-mc/dragonfly/server/cmd"
)

// Operators is the set of player names allowed to run the /lives command.
// Sources that are not players, such as the console, are always allowed.
type Operators struct {
	names map[string]struct{}
	mu    sync.RWMutex
}

// NewOperators creates an operator set from names. Names are matched
// case-insensitively.
func NewOperators(names ...string) *Operators {
	o := &Operators{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		o.Add(n)
	}
	return o
}

// Add grants operator rights to name.
func (o *Operators) Add(name string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return
	}
	o.mu.Lock()
	o.names[name] = struct{}{}
	o.mu.Unlock()
}

// Contains reports whether name is an operator.
func (o *Operators) Contains(name string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.names[strings.ToLower(name)]
	return ok
}

// Allow reports whether src may run operator commands.
func (o *Operators) Allow(src cmd.Source) bool {
	p, ok := sourcePlayer(src)
	if !ok {
		return true
	}
	return o != nil && o.Contains(p.Name())
}
