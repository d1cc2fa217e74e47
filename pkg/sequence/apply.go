package sequence

// Generation is one antigen's substitution list within an ancestry
// chain. A generation is checked and applied as one atomic unit.
type Generation struct {
	AntigenID     string
	Substitutions []string
}

// Apply folds the generations' substitution lists onto base, oldest
// generation first, and returns the fully derived sequence.
//
// Each generation passes through a two-pass consistency rule:
//
//  1. If every token's gained amino acid is already at its position,
//     the whole list is treated as incorporated into the sequence and
//     skipped. Records for lab-described mutants commonly store the
//     already-mutated sequence next to the substitutions that produced
//     it.
//  2. Otherwise every token must find its original amino acid at its
//     position; then all are applied. Any other state is a
//     ConsistencyError.
//
// The rule is evaluated over the full list, never token by token: a
// per-token check would accept or reject different inputs.
func Apply(base string, generations []Generation) (string, error) {
	seq := base
	for _, g := range generations {
		next, err := applyGeneration(seq, g)
		if err != nil {
			return "", err
		}
		seq = next
	}
	return seq, nil
}

func applyGeneration(seq string, g Generation) (string, error) {
	if len(g.Substitutions) == 0 {
		return seq, nil
	}
	if seq == "" {
		return "", &EmptySequenceError{}
	}
	subs, err := parseAll(g.Substitutions)
	if err != nil {
		return "", err
	}

	allGained := true
	for _, s := range subs {
		if !aaAt(seq, s.Pos, s.New) {
			allGained = false
			break
		}
	}
	if allGained {
		return seq, nil
	}

	beforeOK := true
	var failing []string
	for _, s := range subs {
		if aaAt(seq, s.Pos, s.Orig) {
			continue
		}
		beforeOK = false
		if !aaAt(seq, s.Pos, s.New) {
			failing = append(failing, s.Token)
		}
	}
	if !beforeOK {
		if len(failing) == 0 {
			// Every failing token at least matches its gained amino
			// acid; name the before-check failures instead.
			for _, s := range subs {
				if !aaAt(seq, s.Pos, s.Orig) {
					failing = append(failing, s.Token)
				}
			}
		}
		return "", &ConsistencyError{
			AntigenID:     g.AntigenID,
			Substitutions: g.Substitutions,
			Failing:       failing,
		}
	}

	b := []byte(seq)
	for _, s := range subs {
		b[s.Pos-1] = s.New
	}
	return string(b), nil
}
