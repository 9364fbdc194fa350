package geodna

// Reduce returns the minimal set of codes covering the same area as codes.
//
// Whenever all four children of a prefix are present they are replaced by the
// prefix itself. Merging one level can complete a quartet one level up, so the
// pass is repeated until it no longer shrinks the set. Codes already covered by
// an ancestor in the set are dropped, which makes the output of Reduce a valid
// input to Reduce (Reduce is idempotent).
//
// The output keeps the order in which codes first appear. Duplicates are
// removed.
func Reduce(codes []string) ([]string, error) {
	const op = "reduce"

	for _, code := range codes {
		if err := validate(op, code); err != nil {
			return nil, err
		}
	}

	reduced := dropCovered(codes)
	for {
		next := reducePass(reduced)
		if len(next) == len(reduced) {
			return next, nil
		}
		reduced = next
	}
}

// reducePass merges every complete quartet of siblings into its parent once.
func reducePass(codes []string) []string {
	present := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		present[code] = struct{}{}
	}

	reduced := make([]string, 0, len(codes))
	for _, code := range codes {
		if _, ok := present[code]; !ok {
			continue
		}
		if len(code) < 2 {
			reduced = append(reduced, code)
			delete(present, code)
			continue
		}

		parent := code[:len(code)-1]
		complete := true
		for i := 0; i < len(alphabet); i++ {
			if _, ok := present[parent+alphabet[i:i+1]]; !ok {
				complete = false
				break
			}
		}

		if complete {
			for i := 0; i < len(alphabet); i++ {
				delete(present, parent+alphabet[i:i+1])
			}
			reduced = append(reduced, parent)
		} else {
			reduced = append(reduced, code)
			delete(present, code)
		}
	}
	return reduced
}

// dropCovered removes duplicates and codes that have an ancestor in the set.
func dropCovered(codes []string) []string {
	present := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		present[code] = struct{}{}
	}

	emitted := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if _, ok := emitted[code]; ok {
			continue
		}
		if covered(code, present) {
			continue
		}
		emitted[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

func covered(code string, present map[string]struct{}) bool {
	for n := 1; n < len(code); n++ {
		if _, ok := present[code[:n]]; ok {
			return true
		}
	}
	return false
}
