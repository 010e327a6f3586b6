// Package schema is the build-time action table (C4): for every device
// interface, the set of actions it exposes, each with its HTTP verb, URL
// segment and a handler that type-asserts the device to the right
// capability interface. The dispatcher (internal/dispatch) consumes the
// resolved table directly; there is no runtime schema loading.
package schema

import (
	"sync"

	"github.com/stellarbridge/alpacaserver/internal/ascomerr"
	"github.com/stellarbridge/alpacaserver/internal/device"
	"github.com/stellarbridge/alpacaserver/internal/request"
)

// Result is an action handler's return value. A zero Result (Kind
// ResultVoid) adds no fields beyond the transaction and error fields;
// ResultValue wraps its payload
// under "Value"; ResultObject flattens its fields at the top level.
type Result struct {
	Kind   ResultKind
	Value  any
	Object map[string]any
}

type ResultKind int

const (
	ResultVoid ResultKind = iota
	ResultValue
	ResultObject
)

func Void() Result                      { return Result{Kind: ResultVoid} }
func Val(v any) Result                  { return Result{Kind: ResultValue, Value: v} }
func Obj(fields map[string]any) Result  { return Result{Kind: ResultObject, Object: fields} }

// Handler is one action's implementation. It receives the already-asserted
// device only implicitly — concrete handlers close over the capability
// interface they need and type-assert dev themselves, returning
// ActionNotImplemented if the assertion fails (a device registered under a
// type tag is expected to satisfy that type's capability interface, but the
// assertion guards against a misregistered device rather than panicking).
type Handler func(dev device.Device, p *request.Parsed) (Result, *ascomerr.Error)

// Verb is the HTTP verb an action answers to.
type Verb string

const (
	GET Verb = "GET"
	PUT Verb = "PUT"
)

// Action is one (name, verb) entry in an interface's action table.
type Action struct {
	Name    string // lower-case URL segment
	Verb    Verb
	Handler Handler
}

// Interface is one device-type's action table plus its parent, normally
// __common__. Build once as a package-level var per device type.
type Interface struct {
	Tag     string
	Parent  *Interface
	Actions []Action

	once     sync.Once
	resolved map[actionKey]Action
	names    []string
}

type actionKey struct {
	name string
	verb Verb
}

// resolve builds (once) the effective action table: parent entries first,
// child entries shadowing the parent on (name, verb) collision, matching
// §4.4's inheritance rule.
func (i *Interface) resolve() map[actionKey]Action {
	i.once.Do(func() {
		table := map[actionKey]Action{}
		if i.Parent != nil {
			for k, v := range i.Parent.resolve() {
				table[k] = v
			}
		}
		seen := map[string]bool{}
		for _, a := range i.Actions {
			table[actionKey{name: a.Name, verb: a.Verb}] = a
			seen[a.Name] = true
		}
		i.resolved = table
		names := make([]string, 0, len(seen))
		for n := range seen {
			names = append(names, n)
		}
		i.names = names
	})
	return i.resolved
}

// Lookup finds the handler for (name, verb), walking the inheritance chain
// (child before parent is already baked into resolve's shadowing).
func (i *Interface) Lookup(name string, verb Verb) (Action, bool) {
	a, ok := i.resolve()[actionKey{name: name, verb: verb}]
	return a, ok
}

// OwnActionNames lists the action names this interface itself declares
// (not inherited), in no defined order.
func (i *Interface) OwnActionNames() []string {
	i.resolve()
	out := make([]string, len(i.names))
	copy(out, i.names)
	return out
}
