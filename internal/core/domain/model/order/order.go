package order

import (
	"errors"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDAlreadyAssigned is returned when a persisted order is assigned a second identity.
	ErrOrderIDAlreadyAssigned = errors.New("order id is already assigned")
)

// Details is the caller-supplied content of a new order.
type Details struct {
	// ClientID is a weak reference; nil means no client.
	ClientID             *kernel.ID
	CustomerName         string
	ContactName          string
	ProjectName          string
	DesiredDeliveryDate  *time.Time
	ExpectedDeliveryDate *time.Time
}

// Order is a unit of client work moving through the progress lifecycle.
//
// Order follows these invariants:
//   - The identifier is assigned once, on first persistence
//   - CustomerName is non-blank; customer and contact names never change after creation
//   - CreatedAt is set once
//   - Progress is always a valid state and changes only through TransitionTo
type Order struct {
	id                   kernel.ID
	clientID             *kernel.ID
	customerName         string
	contactName          string
	projectName          string
	progress             Progress
	createdAt            time.Time
	desiredDeliveryDate  *time.Time
	expectedDeliveryDate *time.Time

	isConstructed bool
}

// NewOrder creates an unpersisted order in Pending.
//
// Example:
//
//	o, err := order.NewOrder(order.Details{
//	    CustomerName: "Acme K.K.",
//	    ProjectName:  "Spring catalogue",
//	}, clock())
func NewOrder(details Details, createdAt time.Time) (*Order, error) {
	o := &Order{
		progress:      Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setClientID(details.ClientID),
		o.setCustomerName(details.CustomerName),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.contactName = strings.TrimSpace(details.ContactName)
	o.projectName = strings.TrimSpace(details.ProjectName)
	if err := errors.Join(
		kernel.CheckLength("contact name", o.contactName, kernel.MaxNameLength),
		kernel.CheckLength("project name", o.projectName, kernel.MaxNameLength),
	); err != nil {
		return nil, err
	}
	o.desiredDeliveryDate = copyTime(details.DesiredDeliveryDate)
	o.expectedDeliveryDate = copyTime(details.ExpectedDeliveryDate)

	return o, nil
}

// RestoreOrder rebuilds a persisted order. Stored snapshots are trusted except for
// the identifier and progress, which must be valid.
func RestoreOrder(id kernel.ID, details Details, progress Progress, createdAt time.Time) (*Order, error) {
	if err := errors.Join(id.Validate(), progress.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:                   id,
		clientID:             copyID(details.ClientID),
		customerName:         details.CustomerName,
		contactName:          details.ContactName,
		projectName:          details.ProjectName,
		progress:             progress,
		createdAt:            createdAt,
		desiredDeliveryDate:  copyTime(details.DesiredDeliveryDate),
		expectedDeliveryDate: copyTime(details.ExpectedDeliveryDate),
		isConstructed:        true,
	}, nil
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID records the identity given by storage. It may be called once.
func (o *Order) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !o.id.IsZero() {
		return ErrOrderIDAlreadyAssigned
	}
	o.id = id
	return nil
}

func (o *Order) ID() kernel.ID {
	return o.id
}

// ClientID returns the weak client reference, or nil.
func (o *Order) ClientID() *kernel.ID {
	return copyID(o.clientID)
}

func (o *Order) CustomerName() string {
	return o.customerName
}

func (o *Order) ContactName() string {
	return o.contactName
}

func (o *Order) ProjectName() string {
	return o.projectName
}

func (o *Order) Progress() Progress {
	return o.progress
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) DesiredDeliveryDate() *time.Time {
	return copyTime(o.desiredDeliveryDate)
}

func (o *Order) ExpectedDeliveryDate() *time.Time {
	return copyTime(o.expectedDeliveryDate)
}

// TransitionTo moves the order to next and returns the state it left.
func (o *Order) TransitionTo(next Progress) (Progress, error) {
	previous := o.progress
	newProgress, err := o.progress.TransitionTo(next)
	if err != nil {
		return Unknown, err
	}
	o.progress = newProgress
	return previous, nil
}

// Document renders the progress document template with this order's project name.
func (o *Order) Document() DocumentTemplate {
	return o.progress.Document().Render(o.projectName)
}

// RenameProject replaces the project name. Blank names are allowed.
func (o *Order) RenameProject(name string) {
	o.projectName = strings.TrimSpace(name)
}

// ScheduleDelivery sets both delivery dates; nil clears a date.
func (o *Order) ScheduleDelivery(desired, expected *time.Time) {
	o.desiredDeliveryDate = copyTime(desired)
	o.expectedDeliveryDate = copyTime(expected)
}

func (o *Order) setClientID(id *kernel.ID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("client id", err)
	}
	o.clientID = copyID(id)
	return nil
}

func (o *Order) setCustomerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	if err := kernel.CheckLength("customer name", name, kernel.MaxNameLength); err != nil {
		return err
	}
	o.customerName = name
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	return nil
}

func copyID(id *kernel.ID) *kernel.ID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
