// Package script runs user-supplied Lua filters over gesture events.
//
// A filter script defines a global function:
//
//	function filter(ev)
//	  return ev.type == "other"
//	end
//
// Returning true absorbs the event before it reaches the dispatch
// queue. The event table carries type, x, y, dx, dy, vx, and vy.
//
// The Lua state is sandboxed: only the base, table, string, and math
// libraries are opened, so scripts cannot reach the file system or
// spawn processes. gopher-lua states are not goroutine-safe; Filter
// serializes calls with a mutex.
package script
