// Package grid holds the paginated grid's state as one value with pure
// transitions: page changes, fetch settlement, and the three selection sources
// (select-all toggle, row selection, bulk select).
package grid

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/jask/artgrid/internal/catalog"
)

// PageSize is the fixed number of rows per page.
const PageSize = 10

// Request tags one page fetch. Only the most recently issued request may settle.
type Request struct {
	Seq  uint64
	Page int
}

// State is the whole grid: page state, selection state and bulk-select input.
type State struct {
	Page      int
	Records   []catalog.Record
	Total     int
	Loading   bool
	Selection Selection
	BulkCount int
	Seq       uint64
}

// New returns the mount state for page 1. Nothing is loading until ChangePage.
func New() State {
	return State{Page: 1}
}

// ChangePage moves to page n and issues a new request tag. n < 1 is rejected.
// Selection is untouched.
func (s State) ChangePage(n int) (State, Request, bool) {
	if n < 1 {
		return s, Request{}, false
	}
	s.Page = n
	s.Seq++
	s.Loading = true
	return s, Request{Seq: s.Seq, Page: n}, true
}

// Current reports whether req is the latest issued request.
func (s State) Current(req Request) bool {
	return req.Seq == s.Seq && req.Page == s.Page
}

// FetchSucceeded replaces the loaded records and total when req is current.
// A stale response is discarded and reported as not applied. Rows past
// PageSize are dropped so the page never outgrows the paginator window.
func (s State) FetchSucceeded(req Request, page catalog.Page) (State, bool) {
	if !s.Current(req) {
		return s, false
	}
	records := page.Records
	if len(records) > PageSize {
		records = records[:PageSize]
	}
	s.Records = append([]catalog.Record(nil), records...)
	s.Total = page.Total
	s.Loading = false
	return s, true
}

// FetchFailed clears the loading flag for a current request and keeps the
// previous records and total on screen.
func (s State) FetchFailed(req Request) (State, bool) {
	if !s.Current(req) {
		return s, false
	}
	s.Loading = false
	return s, true
}

// ToggleAll selects exactly the loaded page when checked, dropping selections
// from other pages, and clears the selection otherwise.
func (s State) ToggleAll(checked bool) State {
	if checked {
		s.Selection = NewSelection(s.Records)
		return s
	}
	s.Selection = Selection{}
	return s
}

// SetSelection replaces the selection wholesale.
func (s State) SetSelection(records []catalog.Record) State {
	s.Selection = NewSelection(records)
	return s
}

// ToggleRecord adds r when absent and removes it when present.
func (s State) ToggleRecord(r catalog.Record) State {
	if s.Selection.Has(r.ID) {
		return s.SetSelection(s.Selection.Remove(r.ID).Records())
	}
	return s.SetSelection(s.Selection.Add(r).Records())
}

// ExtendSelection adds r without removing anything; used for range selection.
func (s State) ExtendSelection(r catalog.Record) State {
	return s.SetSelection(s.Selection.Add(r).Records())
}

// SetBulkCount parses the bulk-select input by its leading integer, so "5abc"
// and "2.5" read as 5 and 2. No leading digits or a negative value is 0.
func (s State) SetBulkCount(text string) State {
	s.BulkCount = max(0, leadingInt(text))
	return s
}

// leadingInt reads an optional sign and the digits that follow it. Values
// past the int range saturate.
func leadingInt(text string) int {
	t := strings.TrimSpace(text)
	end := 0
	if end < len(t) && (t[end] == '+' || t[end] == '-') {
		end++
	}
	start := end
	for end < len(t) && t[end] >= '0' && t[end] <= '9' {
		end++
	}
	if end == start {
		return 0
	}
	n, err := strconv.Atoi(t[:end])
	if errors.Is(err, strconv.ErrRange) {
		if t[0] == '-' {
			return math.MinInt
		}
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return n
}

// SubmitBulkSelect replaces the selection with the first BulkCount loaded
// records and reports that the popover should close. A zero count is a no-op.
// Only the loaded page is considered.
func (s State) SubmitBulkSelect() (State, bool) {
	if s.BulkCount <= 0 {
		return s, false
	}
	n := min(s.BulkCount, len(s.Records))
	s.Selection = NewSelection(s.Records[:n])
	return s, true
}

// HeaderChecked drives the select-all checkbox. It compares counts only, so a
// selection made on another page with the same size as this page reads as checked.
func (s State) HeaderChecked() bool {
	return s.Selection.Len() == len(s.Records) && len(s.Records) > 0
}

// PageFullySelected reports whether every loaded record is selected.
func (s State) PageFullySelected() bool {
	if len(s.Records) == 0 {
		return false
	}
	for _, r := range s.Records {
		if !s.Selection.Has(r.ID) {
			return false
		}
	}
	return true
}

// SelectedOnPage counts loaded records that are selected.
func (s State) SelectedOnPage() int {
	n := 0
	for _, r := range s.Records {
		if s.Selection.Has(r.ID) {
			n++
		}
	}
	return n
}

// IsSelected reports membership by ID.
func (s State) IsSelected(id int) bool {
	return s.Selection.Has(id)
}

// TotalPages derives the paginator size from the reported total.
func (s State) TotalPages() int {
	if s.Total <= 0 {
		return 1
	}
	return (s.Total + PageSize - 1) / PageSize
}
