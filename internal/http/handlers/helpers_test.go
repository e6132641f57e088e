package handlers

import (
	"fmt"
	"reflect"
)

// scanInto copies vals into Scan destinations. A nil val leaves the
// destination at its zero value, which matches how NULL columns scan.
func scanInto(dest []any, vals ...any) error {
	if len(dest) != len(vals) {
		return fmt.Errorf("scan: want %d destinations, got %d", len(vals), len(dest))
	}
	for i, v := range vals {
		dv := reflect.ValueOf(dest[i])
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("scan: destination %d is not a pointer", i)
		}
		if v == nil {
			dv.Elem().Set(reflect.Zero(dv.Elem().Type()))
			continue
		}
		rv := reflect.ValueOf(v)
		if !rv.Type().AssignableTo(dv.Elem().Type()) {
			return fmt.Errorf("scan: cannot assign %T to destination %d (%s)", v, i, dv.Elem().Type())
		}
		dv.Elem().Set(rv)
	}
	return nil
}
