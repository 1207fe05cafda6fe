package validate

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// Script compiles a Lua expression into a validator Func. The candidate
// value is bound to the global "value" and the expression's truthiness
// decides acceptance:
//
//	v, err := validate.Script("#value > 0 and #value <= 64")
//
// Compile errors are reported by Script; runtime errors (bad arithmetic,
// indexing a non-table, unsupported candidate types) are reported through
// the Func's error return.
//
// gopher-lua states are not goroutine-safe, so the returned Func
// serializes evaluations internally. The state lives as long as the Func.
func Script(expr string) (Func, error) {
	L := lua.NewState()
	fn, err := L.LoadString("return (" + expr + ")")
	if err != nil {
		L.Close()
		return nil, fmt.Errorf("compiling validator script: %w", err)
	}

	var mu sync.Mutex
	return func(value any) (bool, error) {
		mu.Lock()
		defer mu.Unlock()

		lv, err := toLValue(L, value)
		if err != nil {
			return false, err
		}
		L.SetGlobal("value", lv)

		L.Push(fn)
		if err := L.PCall(0, 1, nil); err != nil {
			return false, fmt.Errorf("running validator script: %w", err)
		}
		ret := L.Get(-1)
		L.Pop(1)
		return lua.LVAsBool(ret), nil
	}, nil
}

// toLValue converts a Go value to its Lua representation.
func toLValue(L *lua.LState, v any) (lua.LValue, error) {
	switch val := v.(type) {
	case nil:
		return lua.LNil, nil
	case bool:
		return lua.LBool(val), nil
	case string:
		return lua.LString(val), nil
	case int:
		return lua.LNumber(val), nil
	case int32:
		return lua.LNumber(val), nil
	case int64:
		return lua.LNumber(val), nil
	case float32:
		return lua.LNumber(val), nil
	case float64:
		return lua.LNumber(val), nil
	case []any:
		tbl := L.NewTable()
		for _, item := range val {
			lv, err := toLValue(L, item)
			if err != nil {
				return nil, err
			}
			tbl.Append(lv)
		}
		return tbl, nil
	case []string:
		tbl := L.NewTable()
		for _, item := range val {
			tbl.Append(lua.LString(item))
		}
		return tbl, nil
	case map[string]any:
		tbl := L.NewTable()
		for key, item := range val {
			lv, err := toLValue(L, item)
			if err != nil {
				return nil, err
			}
			tbl.RawSetString(key, lv)
		}
		return tbl, nil
	default:
		return nil, fmt.Errorf("unsupported script value type %T", v)
	}
}
