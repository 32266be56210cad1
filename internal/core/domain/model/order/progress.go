package order

import (
	"strings"

	"orderdesk/internal/pkg/errs"
)

// Progress is the lifecycle state of an order.
//
//	Pending(1) Estimating(2) Accepted(3) Completed(4) Invoiced(5) Paid(6) Voided(7)
//
// The machine is total: every state may transition to every state, including
// itself. Paid and Voided are final by convention only.
type Progress int

const (
	// Unknown catches uninitialized values.
	Unknown Progress = iota
	Pending
	Estimating
	Accepted
	Completed
	Invoiced
	Paid
	Voided
)

const (
	MinProgress = Pending
	MaxProgress = Voided
)

// projectPlaceholder is replaced by the order's project name in message templates.
const projectPlaceholder = "{project}"

// DocumentTemplate is the document title and message associated with a progress.
type DocumentTemplate struct {
	Title   string
	Message string
}

// Render substitutes the project name into the message template.
func (d DocumentTemplate) Render(projectName string) DocumentTemplate {
	return DocumentTemplate{
		Title:   d.Title,
		Message: strings.ReplaceAll(d.Message, projectPlaceholder, projectName),
	}
}

var progressNames = [...]string{
	Unknown:    "Unknown",
	Pending:    "Pending",
	Estimating: "Estimating",
	Accepted:   "Accepted",
	Completed:  "Completed",
	Invoiced:   "Invoiced",
	Paid:       "Paid",
	Voided:     "Voided",
}

// documentTable is indexed by Progress. Callers depend on these exact strings.
var documentTable = [...]DocumentTemplate{
	Pending: {
		Title:   "Estimate",
		Message: "Regarding {project}, please find our estimate.",
	},
	Estimating: {
		Title:   "Estimate",
		Message: "Regarding {project}, please find our revised estimate.",
	},
	Accepted: {
		Title:   "Order Confirmation",
		Message: "Regarding {project}, we confirm that your order has been accepted.",
	},
	Completed: {
		Title:   "Delivery Note",
		Message: "Regarding {project}, the work has been completed. Please find the delivery note.",
	},
	Invoiced: {
		Title:   "Invoice",
		Message: "Regarding {project}, please find our invoice.",
	},
	Paid: {
		Title:   "Receipt",
		Message: "Regarding {project}, we confirm receipt of your payment. Thank you.",
	},
	Voided: {
		Title:   "Cancellation Notice",
		Message: "Regarding {project}, this order has been cancelled.",
	},
}

// AllProgress returns the valid states in numeric order.
func AllProgress() []Progress {
	all := make([]Progress, 0, MaxProgress)
	for p := MinProgress; p <= MaxProgress; p++ {
		all = append(all, p)
	}
	return all
}

// NewProgress validates a raw state number.
func NewProgress(value int) (Progress, error) {
	p := Progress(value)
	if err := p.Validate(); err != nil {
		return Unknown, err
	}
	return p, nil
}

// Validate accepts exactly the range [Pending, Voided].
func (p Progress) Validate() error {
	if p < MinProgress || p > MaxProgress {
		return errs.NewValueIsOutOfRangeError("progress", int(p), int(MinProgress), int(MaxProgress))
	}
	return nil
}

// String returns the state name, or "Unknown" for invalid values.
func (p Progress) String() string {
	if p < Unknown || p > MaxProgress {
		return progressNames[Unknown]
	}
	return progressNames[p]
}

// Document returns the unrendered document template for the state.
// Invalid states yield the zero template.
func (p Progress) Document() DocumentTemplate {
	if p.Validate() != nil {
		return DocumentTemplate{}
	}
	return documentTable[p]
}

// TransitionTo validates the target state. Every valid target is allowed.
func (p Progress) TransitionTo(next Progress) (Progress, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	return next, nil
}
