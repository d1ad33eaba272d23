package client

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ColumnKind selects how a grid column is rendered.
type ColumnKind int

const (
	// ColumnText renders the row value as plain text
	ColumnText ColumnKind = iota
	// ColumnBadge renders the row value as a status badge
	ColumnBadge
	// ColumnActions renders the per-row action buttons
	ColumnActions
)

// Column describes one grid column. Value extracts the cell text used for
// display, filtering, and sorting; it is nil for action columns. Numeric
// columns sort by parsed value so "10" lands after "2".
type Column[T any] struct {
	Title   string
	Kind    ColumnKind
	Numeric bool
	Value   func(row T) string
}

// SortDirection is the tri-state of a sortable column.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAsc
	SortDesc
)

// Action names a row operation offered by the actions column.
type Action string

const (
	// ActionEdit opens the row in the edit form (active rows only)
	ActionEdit Action = "edit"
	// ActionToggle starts the activate/deactivate confirmation flow
	ActionToggle Action = "toggle"
)

// PageSizes are the selectable page sizes; out-of-set values are clamped to
// the default.
var PageSizes = []int{10, 20, 30, 40, 50}

const defaultPageSize = 10

const filterDebounce = 500 * time.Millisecond

type sortKey struct {
	column    int
	direction SortDirection
}

// View is the slice of rows the grid currently shows, with paging metadata.
type View[T any] struct {
	Rows       []T
	Page       int
	PageSize   int
	TotalRows  int
	TotalPages int
}

// Grid is the list presenter behind every administration table: it owns the
// full row set and derives the visible page from the global fuzzy filter,
// the multi-column sort order, and pagination.
type Grid[T any] struct {
	mu       sync.Mutex
	columns  []Column[T]
	isActive func(T) bool

	rows     []T
	filtered []T

	filter        string
	pendingFilter string
	debounce      *time.Timer

	sorts    []sortKey
	page     int
	pageSize int

	// OnRefresh fires whenever the visible view changes
	OnRefresh func()
}

// NewGrid builds a presenter. isActive reports the row's lifecycle flag and
// drives which actions each row offers.
func NewGrid[T any](columns []Column[T], isActive func(T) bool) *Grid[T] {
	return &Grid[T]{
		columns:  columns,
		isActive: isActive,
		rows:     []T{},
		filtered: []T{},
		page:     1,
		pageSize: defaultPageSize,
	}
}

// SetRows replaces the full row set, keeping filter and sort but resetting to
// the first page.
func (g *Grid[T]) SetRows(rows []T) {
	g.mu.Lock()
	if rows == nil {
		rows = []T{}
	}
	g.rows = rows
	g.page = 1
	g.rebuild()
	g.mu.Unlock()
	g.notify()
}

// SetFilter schedules a filter change. Rapid keystrokes coalesce: only after
// half a second of quiet does the filter apply.
func (g *Grid[T]) SetFilter(text string) {
	g.mu.Lock()
	g.pendingFilter = text
	if g.debounce != nil {
		g.debounce.Stop()
	}
	g.debounce = time.AfterFunc(filterDebounce, func() {
		g.mu.Lock()
		pending := g.pendingFilter
		g.mu.Unlock()
		g.ApplyFilter(pending)
	})
	g.mu.Unlock()
}

// ApplyFilter applies a filter immediately, bypassing the debounce.
func (g *Grid[T]) ApplyFilter(text string) {
	g.mu.Lock()
	g.filter = text
	g.pendingFilter = text
	g.page = 1
	g.rebuild()
	g.mu.Unlock()
	g.notify()
}

// CycleSort advances a column through none, ascending, descending and back.
// Other columns' sort states are kept, so multi-column sorts compose in the
// order the user clicked them.
func (g *Grid[T]) CycleSort(column int) {
	g.mu.Lock()
	if column < 0 || column >= len(g.columns) || g.columns[column].Value == nil {
		g.mu.Unlock()
		return
	}

	found := false
	for i := range g.sorts {
		if g.sorts[i].column != column {
			continue
		}
		found = true
		switch g.sorts[i].direction {
		case SortAsc:
			g.sorts[i].direction = SortDesc
		case SortDesc:
			g.sorts = append(g.sorts[:i], g.sorts[i+1:]...)
		}
		break
	}
	if !found {
		g.sorts = append(g.sorts, sortKey{column: column, direction: SortAsc})
	}

	g.rebuild()
	g.mu.Unlock()
	g.notify()
}

// SortOf reports a column's current sort direction.
func (g *Grid[T]) SortOf(column int) SortDirection {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, s := range g.sorts {
		if s.column == column {
			return s.direction
		}
	}
	return SortNone
}

// SetPageSize switches the page size. Values outside the selectable set fall
// back to the default.
func (g *Grid[T]) SetPageSize(size int) {
	valid := false
	for _, s := range PageSizes {
		if s == size {
			valid = true
			break
		}
	}
	if !valid {
		size = defaultPageSize
	}

	g.mu.Lock()
	g.pageSize = size
	// The current page survives a size change; it moves only when the new
	// page count leaves it out of range.
	if total := g.totalPages(); g.page > total {
		g.page = total
	}
	g.mu.Unlock()
	g.notify()
}

// SetPage moves to a page, clamped to the valid range.
func (g *Grid[T]) SetPage(page int) {
	g.mu.Lock()
	total := g.totalPages()
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	g.page = page
	g.mu.Unlock()
	g.notify()
}

// View returns the rows of the current page.
func (g *Grid[T]) View() View[T] {
	g.mu.Lock()
	defer g.mu.Unlock()

	total := g.totalPages()
	page := g.page
	if page > total {
		page = total
	}

	start := (page - 1) * g.pageSize
	end := start + g.pageSize
	if start > len(g.filtered) {
		start = len(g.filtered)
	}
	if end > len(g.filtered) {
		end = len(g.filtered)
	}

	rows := make([]T, end-start)
	copy(rows, g.filtered[start:end])

	return View[T]{
		Rows:       rows,
		Page:       page,
		PageSize:   g.pageSize,
		TotalRows:  len(g.filtered),
		TotalPages: total,
	}
}

// RowActions lists the actions a row offers: editing only while the row is
// active, status toggling always.
func (g *Grid[T]) RowActions(row T) []Action {
	if g.isActive != nil && !g.isActive(row) {
		return []Action{ActionToggle}
	}
	return []Action{ActionEdit, ActionToggle}
}

// caller must hold g.mu
func (g *Grid[T]) rebuild() {
	needle := strings.TrimSpace(g.filter)
	if needle == "" {
		g.filtered = make([]T, len(g.rows))
		copy(g.filtered, g.rows)
	} else {
		g.filtered = g.filtered[:0]
		for _, row := range g.rows {
			if fuzzy.MatchNormalizedFold(needle, g.rowText(row)) {
				g.filtered = append(g.filtered, row)
			}
		}
	}

	if len(g.sorts) == 0 {
		return
	}
	sorts := g.sorts
	columns := g.columns
	sort.SliceStable(g.filtered, func(i, j int) bool {
		for _, s := range sorts {
			col := columns[s.column]
			cmp := compareCells(col.Value(g.filtered[i]), col.Value(g.filtered[j]), col.Numeric)
			if cmp == 0 {
				continue
			}
			if s.direction == SortDesc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

// compareCells orders two cell values. Numeric columns compare parsed
// numbers, falling back to string order when either cell does not parse.
func compareCells(a, b string, numeric bool) int {
	if numeric {
		av, aerr := strconv.ParseFloat(strings.TrimSpace(a), 64)
		bv, berr := strconv.ParseFloat(strings.TrimSpace(b), 64)
		if aerr == nil && berr == nil {
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			default:
				return 0
			}
		}
	}
	return strings.Compare(a, b)
}

// caller must hold g.mu
func (g *Grid[T]) rowText(row T) string {
	var parts []string
	for _, col := range g.columns {
		if col.Value != nil {
			parts = append(parts, col.Value(row))
		}
	}
	return strings.Join(parts, " ")
}

// caller must hold g.mu
func (g *Grid[T]) totalPages() int {
	if len(g.filtered) == 0 {
		return 1
	}
	return (len(g.filtered) + g.pageSize - 1) / g.pageSize
}

func (g *Grid[T]) notify() {
	if g.OnRefresh != nil {
		g.OnRefresh()
	}
}
