package grid

import "github.com/jask/artgrid/internal/catalog"

// Selection is a set of records keyed by ID. Insertion order is kept so exports
// list records in the order the user picked them. Mutators return a new value.
type Selection struct {
	records []catalog.Record
	index   map[int]int
}

// NewSelection builds a set from records; later duplicates of an ID are ignored.
func NewSelection(records []catalog.Record) Selection {
	s := Selection{}
	for _, r := range records {
		if s.Has(r.ID) {
			continue
		}
		s = s.appendRecord(r)
	}
	return s
}

func (s Selection) Len() int {
	return len(s.records)
}

func (s Selection) Has(id int) bool {
	_, ok := s.index[id]
	return ok
}

// Records returns a copy in insertion order.
func (s Selection) Records() []catalog.Record {
	return append([]catalog.Record(nil), s.records...)
}

// IDs returns member IDs in insertion order.
func (s Selection) IDs() []int {
	out := make([]int, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r.ID)
	}
	return out
}

func (s Selection) Add(r catalog.Record) Selection {
	if s.Has(r.ID) {
		return s
	}
	return s.clone().appendRecord(r)
}

func (s Selection) Remove(id int) Selection {
	if !s.Has(id) {
		return s
	}
	out := make([]catalog.Record, 0, len(s.records)-1)
	for _, r := range s.records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return NewSelection(out)
}

func (s Selection) clone() Selection {
	c := Selection{
		records: append([]catalog.Record(nil), s.records...),
		index:   make(map[int]int, len(s.index)+1),
	}
	for id, i := range s.index {
		c.index[id] = i
	}
	return c
}

// appendRecord mutates s in place; callers must own s.
func (s Selection) appendRecord(r catalog.Record) Selection {
	if s.index == nil {
		s.index = make(map[int]int)
	}
	s.index[r.ID] = len(s.records)
	s.records = append(s.records, r)
	return s
}
