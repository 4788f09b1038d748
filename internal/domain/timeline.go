package domain

// AlbumTimeline is a content-addressed summary of an album's asset
// distribution by day. Day keys are ISO dates ("2006-01-02"). Two timelines
// with the same IndexHash hold identical day counts.
type AlbumTimeline struct {
	IndexHash string           `json:"indexHash"`
	DayCount  map[string]int64 `json:"dayCount"`
}

// EmptyAlbumTimeline stands for "no history". Its hash can never match a
// real remote timeline, so it is never considered equal to one.
func EmptyAlbumTimeline() AlbumTimeline {
	return AlbumTimeline{IndexHash: "-1", DayCount: map[string]int64{}}
}

// Minus computes the per-day count difference between t and other. A
// matching IndexHash short-circuits to an empty diff; otherwise the result
// holds every day whose counts differ, with missing days treated as zero.
func (t AlbumTimeline) Minus(other AlbumTimeline) map[string]int64 {
	diff := map[string]int64{}
	if t.IndexHash == other.IndexHash {
		return diff
	}
	for day, count := range t.DayCount {
		if d := count - other.DayCount[day]; d != 0 {
			diff[day] = d
		}
	}
	for day, count := range other.DayCount {
		if _, seen := t.DayCount[day]; !seen && count != 0 {
			diff[day] = -count
		}
	}
	return diff
}

// Total returns the number of assets across all days.
func (t AlbumTimeline) Total() int64 {
	var sum int64
	for _, c := range t.DayCount {
		sum += c
	}
	return sum
}
