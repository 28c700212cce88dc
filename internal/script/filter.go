package script

import (
	"errors"
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gestureflow/internal/gesture"
)

// FilterFunc is the global function a filter script must define.
const FilterFunc = "filter"

// ErrNoFilterFunc indicates the script never defined the filter function.
var ErrNoFilterFunc = errors.New("script does not define a filter function")

// Filter evaluates a Lua predicate over gesture events.
type Filter struct {
	mu     sync.Mutex
	state  *lua.LState
	closed bool
}

// NewFilter compiles a filter script from source.
func NewFilter(src string) (*Filter, error) {
	L := newSandboxedState()
	if err := L.DoString(src); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading filter script: %w", err)
	}
	return newFilter(L)
}

// NewFilterFile compiles a filter script from a file.
func NewFilterFile(path string) (*Filter, error) {
	L := newSandboxedState()
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading filter script %s: %w", path, err)
	}
	return newFilter(L)
}

func newFilter(L *lua.LState) (*Filter, error) {
	fn := L.GetGlobal(FilterFunc)
	if _, ok := fn.(*lua.LFunction); !ok {
		L.Close()
		return nil, ErrNoFilterFunc
	}
	return &Filter{state: L}, nil
}

// newSandboxedState opens only the libraries a predicate needs.
func newSandboxedState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	return L
}

// Absorb reports whether the script wants the event dropped. A script
// error counts as not absorbed so a broken filter cannot swallow input.
func (f *Filter) Absorb(ev gesture.Event) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return false, errors.New("filter is closed")
	}

	L := f.state
	tbl := L.NewTable()
	L.SetField(tbl, "type", lua.LString(ev.Type.String()))
	L.SetField(tbl, "x", lua.LNumber(ev.X))
	L.SetField(tbl, "y", lua.LNumber(ev.Y))
	L.SetField(tbl, "dx", lua.LNumber(ev.DeltaX))
	L.SetField(tbl, "dy", lua.LNumber(ev.DeltaY))
	L.SetField(tbl, "vx", lua.LNumber(ev.VelocityX))
	L.SetField(tbl, "vy", lua.LNumber(ev.VelocityY))

	err := L.CallByParam(lua.P{
		Fn:      L.GetGlobal(FilterFunc),
		NRet:    1,
		Protect: true,
	}, tbl)
	if err != nil {
		return false, fmt.Errorf("filter script: %w", err)
	}

	ret := L.Get(-1)
	L.Pop(1)
	return lua.LVAsBool(ret), nil
}

// Close releases the Lua state. Safe to call more than once.
func (f *Filter) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	f.state.Close()
}
