package services

import (
	"fmt"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/lineitem"
	"orderdesk/internal/pkg/errs"
)

// SortNumbering selects how sort_order is assigned to a submitted list.
type SortNumbering int

const (
	// SortNumberingSubmitted counts every submitted entry, blank ones included,
	// so an item's sort order is its 1-based position in the submission.
	SortNumberingSubmitted SortNumbering = iota

	// SortNumberingPersisted counts only entries that are persisted, so stored
	// sort orders are always 1..n without gaps.
	SortNumberingPersisted
)

// ParseSortNumbering reads the configuration name of a numbering mode.
// The empty string selects SortNumberingSubmitted.
func ParseSortNumbering(s string) (SortNumbering, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "submitted":
		return SortNumberingSubmitted, nil
	case "persisted":
		return SortNumberingPersisted, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"sort numbering",
			fmt.Errorf("%q is not one of \"submitted\", \"persisted\"", s),
		)
	}
}

func (n SortNumbering) String() string {
	if n == SortNumberingPersisted {
		return "persisted"
	}
	return "submitted"
}

// ReconciliationPlan is the ordered list of rows a reconciliation writes.
// Rows with a non-zero ID are updates; the rest are inserts.
type ReconciliationPlan struct {
	Items   []*lineitem.LineItem
	Skipped int
}

// ReconciliationPlanner decides, for one (order, kind) collection, which
// submitted entries are written and with which sort order.
//
// Rules:
//   - An entry whose product name is blank after trimming is skipped
//   - An entry with a positive ID is an update of that row
//   - An entry with a zero or negative ID is an insert
//   - A positive ID repeated later in the same submission is an insert, so the
//     later entry never overwrites the earlier one
type ReconciliationPlanner struct {
	numbering SortNumbering
}

func NewReconciliationPlanner(numbering SortNumbering) ReconciliationPlanner {
	return ReconciliationPlanner{numbering: numbering}
}

func (p ReconciliationPlanner) Numbering() SortNumbering {
	return p.numbering
}

// Plan builds the rows to write for submissions, stamping them with now.
func (p ReconciliationPlanner) Plan(
	orderID kernel.ID,
	kind kernel.ItemKind,
	submissions []lineitem.Submission,
	now time.Time,
) (ReconciliationPlan, error) {
	plan := ReconciliationPlan{Items: make([]*lineitem.LineItem, 0, len(submissions))}
	seen := make(map[int64]struct{}, len(submissions))

	sortOrder := 0
	for _, sub := range submissions {
		if p.numbering == SortNumberingSubmitted {
			sortOrder++
		}
		if sub.IsBlank() {
			plan.Skipped++
			continue
		}
		if p.numbering == SortNumberingPersisted {
			sortOrder++
		}

		if _, dup := seen[sub.ID]; dup || sub.ID <= 0 {
			sub.ID = 0
		} else {
			seen[sub.ID] = struct{}{}
		}

		item, err := lineitem.FromSubmission(orderID, kind, sub, sortOrder, now)
		if err != nil {
			return ReconciliationPlan{}, err
		}
		plan.Items = append(plan.Items, item)
	}

	return plan, nil
}
