package sequence

// Mutate applies substitution tokens to seq in order, strictly: each
// token's original amino acid must be present at its position before
// the substitution happens. An empty token list returns seq unchanged;
// a non-empty list against an empty sequence is EmptySequenceError.
//
// Generation-level application with the two-pass consistency rule
// lives in Apply; Mutate is the plain building block.
func Mutate(seq string, tokens []string) (string, error) {
	if len(tokens) == 0 {
		return seq, nil
	}
	if seq == "" {
		return "", &EmptySequenceError{}
	}
	subs, err := parseAll(tokens)
	if err != nil {
		return "", err
	}
	b := []byte(seq)
	for _, s := range subs {
		if s.Pos > len(b) || b[s.Pos-1] != s.Orig {
			return "", &InconsistentSubstitutionError{Token: s.Token}
		}
		b[s.Pos-1] = s.New
	}
	return string(b), nil
}

// aaAt reports whether seq carries amino acid aa at the 1-based
// position pos. Out-of-bounds positions match nothing.
func aaAt(seq string, pos int, aa byte) bool {
	return pos >= 1 && pos <= len(seq) && seq[pos-1] == aa
}
