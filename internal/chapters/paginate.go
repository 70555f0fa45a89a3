package chapters

import "fmt"

// Group is a contiguous run of chapters bound into a single output
// volume. Start and End are global 1-based chapter numbers, continuing
// the numbering from the previous group.
type Group struct {
	Chapters []Chapter
	Start    int
	End      int
}

// Label names the group by its global chapter range.
func (g Group) Label() string {
	return fmt.Sprintf("%d-%d", g.Start, g.End)
}

// Paginate partitions chapters into contiguous runs of at most groupSize,
// numbering them globally from startNumber. The last run may be shorter;
// runs are never empty. Pure and deterministic, no I/O.
//
// A groupSize or startNumber below 1 is rejected rather than clamped.
func Paginate(all []Chapter, groupSize, startNumber int) ([]Group, error) {
	if groupSize < 1 {
		return nil, fmt.Errorf("group size must be at least 1, got %d", groupSize)
	}
	if startNumber < 1 {
		return nil, fmt.Errorf("starting chapter number must be at least 1, got %d", startNumber)
	}

	var groups []Group
	for i := 0; i < len(all); i += groupSize {
		end := i + groupSize
		if end > len(all) {
			end = len(all)
		}

		groups = append(groups, Group{
			Chapters: all[i:end],
			Start:    startNumber + i,
			End:      startNumber + end - 1,
		})
	}

	return groups, nil
}
