package memo

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"reflect"
)

// Key identifies one combination of call arguments. Two calls produce equal
// keys iff their positional and named arguments are element-wise equal in
// the order they were supplied.
type Key string

// NamedArg is a keyword-style argument. Callers pass NamedArg values among
// the variadic argument list, in the style of sql.Named:
//
//	cached.Call(ctx, 42, memo.Named("verbose", true))
//
// Named arguments are part of the key in supplied order: calls that pass the
// same named arguments in a different order produce distinct keys.
type NamedArg struct {
	Name  string
	Value any
}

// Named creates a NamedArg.
func Named(name string, value any) NamedArg {
	return NamedArg{Name: name, Value: value}
}

// composeKey derives a Key from the arguments of one call.
//
// Each argument contributes a type-tagged segment so that values with the
// same textual form but different types (int(1) vs int64(1)) stay distinct.
// The segments are hashed with SHA-256, so the key is fixed-size regardless
// of argument size.
//
// Arguments whose dynamic type is not comparable (slices, maps, functions)
// fail with ErrUnhashableArgument before the wrapped function runs.
func composeKey(args []any) (Key, error) {
	h := sha256.New()
	for i, arg := range args {
		if na, ok := arg.(NamedArg); ok {
			if !hashable(na.Value) {
				return "", fmt.Errorf("%w: named argument %q has type %T", ErrUnhashableArgument, na.Name, na.Value)
			}
			fmt.Fprintf(h, "|%s=%T:%#v", na.Name, na.Value, na.Value)
			continue
		}
		if !hashable(arg) {
			return "", fmt.Errorf("%w: argument %d has type %T", ErrUnhashableArgument, i, arg)
		}
		fmt.Fprintf(h, "|%T:%#v", arg, arg)
	}
	sum := h.Sum(nil)
	return Key(hex.EncodeToString(sum[:])), nil
}

// hashable reports whether v can participate in a cache key. The rule
// mirrors Go map keys: the dynamic type must be comparable. A nil argument
// is hashable.
func hashable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.TypeOf(v).Comparable()
}
