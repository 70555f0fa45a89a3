package chapters

import (
	"strconv"
	"strings"
)

// Select narrows the full chapter list to what the caller asked for.
// single, rng and list are 1-based indices into the site-declared
// reading order; the first non-empty selector wins.
func Select(all []Chapter, single string, rng string, list string) []Chapter {
	if single != "" {
		if idx, err := atoi(single); err == nil {
			if idx > 0 && idx <= len(all) {
				return []Chapter{all[idx-1]}
			}
		}
		return []Chapter{}
	}
	if rng != "" {
		return SelectRange(all, rng)
	}
	if list != "" {
		return SelectList(all, list)
	}
	return all
}

// SelectRange picks a contiguous "start-end" index range.
func SelectRange(all []Chapter, rng string) []Chapter {
	parts := strings.Split(rng, "-")
	if len(parts) != 2 {
		return nil
	}
	start, err1 := atoi(parts[0])
	end, err2 := atoi(parts[1])
	if err1 != nil || err2 != nil {
		return nil
	}
	if start <= 0 || end <= 0 || start > end || end > len(all) {
		return nil
	}
	return all[start-1 : end]
}

// SelectList picks individual comma-separated indices.
func SelectList(all []Chapter, list string) []Chapter {
	nums := strings.Split(list, ",")
	out := []Chapter{}
	for _, n := range nums {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		idx, err := atoi(n)
		if err != nil {
			continue
		}
		if idx > 0 && idx <= len(all) {
			out = append(out, all[idx-1])
		}
	}
	return out
}

func atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}
