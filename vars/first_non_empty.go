package vars

func FirstNonEmpty[T any](slices ...[]T) []T {
	for _, s := range slices {
		if len(s) > 0 {
			return s
		}
	}
	return nil
}
