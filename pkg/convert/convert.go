package convert

// UniqueStrings will remove duplicates preserving order of the input
func UniqueStrings(in []string) (out []string) {
	seen := make(map[string]interface{})
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return
}

// UniqueBytes will remove duplicate bytes preserving the order in which they were first seen
func UniqueBytes(in []byte) (out []byte) {
	var seen [256]bool
	out = make([]byte, 0, len(in))
	for _, v := range in {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// FirstDuplicate returns the first byte that appears more than once in the input
func FirstDuplicate(in []byte) (byte, bool) {
	var seen [256]bool
	for _, v := range in {
		if seen[v] {
			return v, true
		}
		seen[v] = true
	}
	return 0, false
}
