package geodna

// pairMap swaps each symbol with its counterpart, as DNA bases pair up.
var pairMap = [256]byte{
	'g': 'c',
	'c': 'g',
	'a': 't',
	't': 'a',
	'w': 'e',
	'e': 'w',
}

// Pair returns the "complementary strand" of code: g and c swap, a and t swap,
// and when swapHemispheres is set the hemisphere marker flips as well.
//
// Pair is a novelty. The result is a valid code but has no geometric relation
// to the input.
func Pair(code string, swapHemispheres bool) (string, error) {
	if err := validate("pair", code); err != nil {
		return "", err
	}

	paired := []byte(code)
	if swapHemispheres {
		paired[0] = pairMap[paired[0]]
	}
	for i := 1; i < len(paired); i++ {
		paired[i] = pairMap[paired[i]]
	}
	return string(paired), nil
}
