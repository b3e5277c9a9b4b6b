package utils

import "fmt"

// EnumValidator returns a field validator restricting values to the allowed set.
func EnumValidator(allowed ...string) func(string) error {
	set := map[string]struct{}{}
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q not in allowed set", s)
	}
}
