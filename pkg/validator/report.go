package validator

import (
	"maps"
	"slices"
)

// Report maps an attribute path (Path.String) to the distinct messages reported for it.
// Messages are kept sorted so that equal reports compare equal. An empty report means valid.
type Report map[string][]string

// Add records messages for path. Duplicate messages collapse.
func (r Report) Add(path Path, messages ...string) {
	r.add(path.String(), messages...)
}

func (r Report) add(key string, messages ...string) {
	if len(messages) == 0 {
		return
	}
	set := r[key]
	for _, msg := range messages {
		i, found := slices.BinarySearch(set, msg)
		if !found {
			set = slices.Insert(set, i, msg)
		}
	}
	r[key] = set
}

// Merge adds every message of other into r (per-path set union).
func (r Report) Merge(other Report) {
	for key, messages := range other {
		r.add(key, messages...)
	}
}

// Merge folds reports into a new report. The result does not depend on argument order.
func Merge(reports ...Report) Report {
	out := Report{}
	for _, rep := range reports {
		out.Merge(rep)
	}
	return out
}

// IsEmpty reports whether no path has messages.
func (r Report) IsEmpty() bool {
	return len(r) == 0
}

// Has reports whether path has at least one message. Nested paths use "." as separator.
func (r Report) Has(field string) bool {
	return len(r[field]) > 0
}

// Get returns a copy of the messages reported for field.
func (r Report) Get(field string) []string {
	return slices.Clone(r[field])
}

// Fields returns the reported paths in sorted order.
func (r Report) Fields() []string {
	return slices.Sorted(maps.Keys(r))
}

// Len returns the total number of messages across all paths.
func (r Report) Len() int {
	n := 0
	for _, messages := range r {
		n += len(messages)
	}
	return n
}

// Clone returns a deep copy of the report.
func (r Report) Clone() Report {
	out := make(Report, len(r))
	for key, messages := range r {
		out[key] = slices.Clone(messages)
	}
	return out
}

// prefixed returns a copy of r with prefix prepended to every path.
func (r Report) prefixed(prefix Path) Report {
	if len(prefix) == 0 {
		return r.Clone()
	}
	out := make(Report, len(r))
	p := prefix.String()
	for key, messages := range r {
		out[p+"."+key] = slices.Clone(messages)
	}
	return out
}

// Err converts the report into ValidationErrors ordered by field and message.
// It returns nil for an empty report.
func (r Report) Err() error {
	if r.IsEmpty() {
		return nil
	}
	var errs ValidationErrors
	for _, field := range r.Fields() {
		for _, msg := range r[field] {
			errs.Add(ValidationError{Field: field, Message: msg})
		}
	}
	return errs
}
