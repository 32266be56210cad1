// Package api holds the HTTP contract of the order desk: the embedded OpenAPI
// document, the request and response models and the echo server interface.
package api

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// ItemKind is a line-item collection name.
type ItemKind string

const (
	Invoice ItemKind = "invoice"
	Cost    ItemKind = "cost"
)

// OrderId is the orderId path parameter.
type OrderId = int64

type Error struct {
	Code        int        `json:"code"`
	Message     string     `json:"message"`
	HolderId    *string    `json:"holderId,omitempty"`
	LockedSince *time.Time `json:"lockedSince,omitempty"`
}

type NewOrder struct {
	ClientId             *int64     `json:"clientId,omitempty"`
	CustomerName         string     `json:"customerName"`
	ContactName          *string    `json:"contactName,omitempty"`
	ProjectName          *string    `json:"projectName,omitempty"`
	DesiredDeliveryDate  *time.Time `json:"desiredDeliveryDate,omitempty"`
	ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate,omitempty"`
}

type OrderCreated struct {
	Id int64 `json:"id"`
}

type Client struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type Order struct {
	Id                   int64      `json:"id"`
	ClientId             *int64     `json:"clientId,omitempty"`
	Client               *Client    `json:"client,omitempty"`
	CustomerName         string     `json:"customerName"`
	ContactName          string     `json:"contactName"`
	ProjectName          string     `json:"projectName"`
	Progress             int        `json:"progress"`
	ProgressName         string     `json:"progressName"`
	DocumentTitle        string     `json:"documentTitle"`
	DocumentMessage      string     `json:"documentMessage"`
	CreatedAt            time.Time  `json:"createdAt"`
	DesiredDeliveryDate  *time.Time `json:"desiredDeliveryDate,omitempty"`
	ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate,omitempty"`
}

// OptionalDateTime tells an absent field apart from an explicit null.
type OptionalDateTime struct {
	Set   bool
	Value *time.Time
}

func (o *OptionalDateTime) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var t time.Time
	if err := json.Unmarshal(data, &t); err != nil {
		return err
	}
	o.Value = &t
	return nil
}

type OrderDetailsPatch struct {
	ProjectName          *string          `json:"projectName,omitempty"`
	DesiredDeliveryDate  OptionalDateTime `json:"desiredDeliveryDate"`
	ExpectedDeliveryDate OptionalDateTime `json:"expectedDeliveryDate"`
}

type ProgressChange struct {
	Progress int `json:"progress"`
}

type Transition struct {
	OrderId         int64  `json:"orderId"`
	Previous        int    `json:"previous"`
	PreviousName    string `json:"previousName"`
	Current         int    `json:"current"`
	CurrentName     string `json:"currentName"`
	DocumentTitle   string `json:"documentTitle"`
	DocumentMessage string `json:"documentMessage"`
}

type LineItemInput struct {
	Id          *int64          `json:"id,omitempty"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    decimal.Decimal `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
	Unit        string          `json:"unit"`
	Remarks     string          `json:"remarks"`
}

type ItemsSubmission struct {
	HolderId string          `json:"holderId"`
	Items    []LineItemInput `json:"items"`
}

type ReconcileResult struct {
	Kept     []int64 `json:"kept"`
	Inserted int     `json:"inserted"`
	Updated  int     `json:"updated"`
	Deleted  int     `json:"deleted"`
	Skipped  int     `json:"skipped"`
}

type LineItem struct {
	Id          int64           `json:"id"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    decimal.Decimal `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
	Unit        string          `json:"unit"`
	Remarks     string          `json:"remarks"`
	SortOrder   int             `json:"sortOrder"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type LockRequest struct {
	HolderId string `json:"holderId"`
}

type EditLock struct {
	OrderId    int64     `json:"orderId"`
	HolderId   string    `json:"holderId"`
	Token      string    `json:"token"`
	AcquiredAt time.Time `json:"acquiredAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

type DocumentLine struct {
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    decimal.Decimal `json:"quantity"`
	Amount      decimal.Decimal `json:"amount"`
	Unit        string          `json:"unit"`
	Text        string          `json:"text"`
}

type Document struct {
	OrderId    int64           `json:"orderId"`
	Kind       ItemKind        `json:"kind"`
	Progress   int             `json:"progress"`
	Title      string          `json:"title"`
	Message    string          `json:"message"`
	LineText   string          `json:"lineText"`
	Body       string          `json:"body"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
	Lines      []DocumentLine  `json:"lines"`
}
