package rcs

// Small helper functions.

// IndexFunc returns the first index i satisfying f(s[i]),
// or -1 if none do.
func IndexFunc[E any](s []E, f func(E) bool) int {
	for i, v := range s {
		if f(v) {
			return i
		}
	}
	return -1
}

// Index returns the first index of the array satisfying s[i] == e,
// or -1 if none do.
func Index[E comparable](s []E, e E) int {
	return IndexFunc(s, func(x E) bool { return x == e })
}
