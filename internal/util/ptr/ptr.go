// Package ptr provides helper functions for creating and reading optional values.
package ptr

// Bool returns a pointer to the given bool value.
func Bool(b bool) *bool { return &b }

// Int32 returns a pointer to the given int32 value.
func Int32(i int32) *int32 { return &i }

// Int32Or returns the pointed-to value, or def when p is nil.
func Int32Or(p *int32, def int32) int32 {
	if p == nil {
		return def
	}
	return *p
}
