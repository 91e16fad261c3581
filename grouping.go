//go:build !micro && !tiny

package format

// groupRun is one (separator_char, run_length) pair from a grouping
// pattern.
type groupRun struct {
	sep  byte
	run  int
	stop bool // '-' sentinel on this pair
}

// applyGrouping inserts separators into the digit string digits (most
// significant digit first, no sign/prefix) per spec.md §3/§4.2 step 4 and
// §6's grammar. Pairs are declared left-to-right in the template but are
// consumed right-to-left against the digits: the last declared pair forms
// the group nearest the units digit, working back towards the first
// declared pair; once the first declared pair is reached it repeats for
// all remaining, more-significant groups unless it carries the '-' stop
// sentinel, in which case the remaining digits are emitted as one
// ungrouped run.
func applyGrouping(digits string, g groupingPattern, args *argCursor) (string, error) {
	if !g.set || g.spec == "" || len(digits) == 0 {
		return digits, nil
	}

	declared, err := parseGroupSpec(g.spec, args)
	if err != nil {
		return "", err
	}
	if len(declared) == 0 {
		return digits, nil
	}

	// Application order: declared reversed, e.g. [P1,P2] -> [P2,P1].
	order := make([]groupRun, len(declared))
	for i, r := range declared {
		order[len(declared)-1-i] = r
	}
	repeating := order[len(order)-1]

	var groups []string
	pos := len(digits) // exclusive end, walking right to left
	oi := 0
	for pos > 0 {
		var r groupRun
		if oi < len(order) {
			r = order[oi]
			oi++
		} else {
			if repeating.stop {
				groups = append(groups, digits[:pos])
				pos = 0
				break
			}
			r = repeating
		}
		n := r.run
		if n <= 0 || n > pos {
			n = pos
		}
		groups = append(groups, digits[pos-n:pos])
		pos -= n
		if pos > 0 {
			groups = append(groups, string(r.sep))
		}
	}

	// groups was built right-to-left; reverse to assemble left-to-right.
	out := make([]byte, 0, len(digits)+len(groups))
	for i := len(groups) - 1; i >= 0; i-- {
		out = append(out, groups[i]...)
	}
	return string(out), nil
}

// parseGroupSpec parses the grammar `group-spec := '-'? any-byte (digits
// | '*')` repeated, per spec.md §6.
func parseGroupSpec(spec string, args *argCursor) ([]groupRun, error) {
	var runs []groupRun
	i := 0
	for i < len(spec) {
		var r groupRun
		if spec[i] == '-' {
			r.stop = true
			i++
			if i >= len(spec) {
				return nil, badFormat("grouping: dangling '-'")
			}
		}
		r.sep = spec[i]
		i++
		if i < len(spec) && spec[i] == '*' {
			n, err := args.nextInt()
			if err != nil {
				return nil, err
			}
			r.run = int(n)
			i++
		} else {
			n := 0
			for i < len(spec) && spec[i] >= '0' && spec[i] <= '9' {
				n = n*10 + int(spec[i]-'0')
				i++
			}
			r.run = n
		}
		runs = append(runs, r)
	}
	return runs, nil
}
