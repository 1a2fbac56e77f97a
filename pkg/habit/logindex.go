package habit

import (
	"sort"

	"tableflip.dev/bithab/pkg/datekey"
)

// LogIndex maps a day key to the ids logged on that day. A key is present in
// the index iff its set is non-empty; emptied days are deleted immediately to
// keep the index sparse. The slice keeps insertion order for round-trip
// fidelity but behaves as a set.
type LogIndex map[datekey.Key][]string

// Has reports whether id is logged on the keyed day.
func (l LogIndex) Has(key datekey.Key, id string) bool {
	for _, logged := range l[key] {
		if logged == id {
			return true
		}
	}
	return false
}

// Toggle flips membership of id on the keyed day and reports whether the id
// is logged after the call.
func (l LogIndex) Toggle(key datekey.Key, id string) bool {
	ids := l[key]
	for i, logged := range ids {
		if logged == id {
			ids = append(ids[:i], ids[i+1:]...)
			if len(ids) == 0 {
				delete(l, key)
			} else {
				l[key] = ids
			}
			return false
		}
	}
	l[key] = append(ids, id)
	return true
}

// Prune removes every occurrence of the given ids across all days, deleting
// days that become empty. Used by the delete cascades.
func (l LogIndex) Prune(ids map[string]bool) {
	if len(ids) == 0 {
		return
	}
	for key, logged := range l {
		kept := logged[:0]
		for _, id := range logged {
			if !ids[id] {
				kept = append(kept, id)
			}
		}
		if len(kept) == 0 {
			delete(l, key)
		} else {
			l[key] = kept
		}
	}
}

// Keys returns the day keys in chronological order.
func (l LogIndex) Keys() []datekey.Key {
	keys := make([]datekey.Key, 0, len(l))
	for key := range l {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func (l LogIndex) clone() LogIndex {
	out := make(LogIndex, len(l))
	for key, ids := range l {
		out[key] = append([]string(nil), ids...)
	}
	return out
}
