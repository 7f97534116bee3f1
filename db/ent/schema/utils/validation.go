package utils

import "fmt"

// EnumValidator returns an ent field validator accepting only the listed
// values. Schema enums stay plain strings in the database; this is the write
// guard.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not in the allowed set", s)
	}
}
