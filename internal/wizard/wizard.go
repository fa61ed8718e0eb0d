// Package wizard implements the guided receiving flow as an explicit state
// machine. A Session owns a single draft built from a purchase order and walks
// it through four fixed steps; nothing is persisted until the final submit
// hands a stock-in payload to the service layer.
package wizard

import (
	"errors"
	"sync"
	"time"

	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Step int

const (
	StepScanOrder Step = iota + 1
	StepReviewItems
	StepInputQuantities
	StepConfirm
)

func (s Step) String() string {
	switch s {
	case StepScanOrder:
		return "scan_order"
	case StepReviewItems:
		return "review_items"
	case StepInputQuantities:
		return "input_quantities"
	case StepConfirm:
		return "confirm_submit"
	default:
		return "unknown"
	}
}

var (
	ErrNoOrderAttached  = errors.New("no purchase order attached")
	ErrFirstStep        = errors.New("already at the first step")
	ErrLastStep         = errors.New("already at the last step")
	ErrWrongStep        = errors.New("operation not allowed at this step")
	ErrLineOutOfRange   = errors.New("line index out of range")
	ErrReceivedExceeds  = errors.New("received quantity exceeds ordered quantity")
	ErrDamagedExceeds   = errors.New("damaged quantity exceeds received quantity")
	ErrNegativeQuantity = errors.New("quantities must not be negative")
	ErrNotConfirmed     = errors.New("confirmation checkbox not checked")
	ErrSubmitInFlight   = errors.New("submission already in progress")
	ErrAlreadySubmitted = errors.New("session already submitted")
	ErrNothingReceived  = errors.New("no stock to credit, all lines are empty")
)

// LineStatus classifies a line on the confirmation step.
type LineStatus string

const (
	LineComplete LineStatus = "complete" // received == ordered, nothing damaged
	LineIssues   LineStatus = "issues"   // damaged > 0 or received < ordered
	LinePartial  LineStatus = "partial"
)

// Line is one reviewable purchase order line with its mutable receiving
// triple.
type Line struct {
	ProductID uuid.UUID       `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Ordered   int             `json:"ordered"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Received  int             `json:"received"`
	Damaged   int             `json:"damaged"`
	Remarks   string          `json:"remarks"`
}

// Net is the stock actually credited for the line.
func (l Line) Net() int {
	return l.Received - l.Damaged
}

func (l Line) Status() LineStatus {
	complete := l.Received == l.Ordered
	hasIssues := l.Damaged > 0 || l.Received < l.Ordered
	switch {
	case complete && !hasIssues:
		return LineComplete
	case hasIssues:
		return LineIssues
	default:
		return LinePartial
	}
}

// Totals are the derived aggregates shown on steps 3 and 4.
type Totals struct {
	Received int `json:"received"`
	Damaged  int `json:"damaged"`
	Net      int `json:"net"`
}

// Session is a single receiving walkthrough. All methods are safe for
// concurrent use; state is process-local and never shared across sessions.
type Session struct {
	ID         uuid.UUID
	ReceivedBy string

	mu         sync.Mutex
	step       Step
	order      *model.PurchaseOrder
	lines      []Line
	confirmed  bool
	submitting bool
	submitted  bool
	lastErr    string
	createdAt  time.Time
	touchedAt  time.Time
}

func NewSession(receivedBy string) *Session {
	now := time.Now()
	return &Session{
		ID:         uuid.New(),
		ReceivedBy: receivedBy,
		step:       StepScanOrder,
		createdAt:  now,
		touchedAt:  now,
	}
}

func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// AttachOrder binds the scanned purchase order and seeds each line with
// received = ordered, damaged = 0, matching how a clean delivery reads.
// Only valid on the scan step.
func (s *Session) AttachOrder(order *model.PurchaseOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepScanOrder {
		return ErrWrongStep
	}
	s.order = order
	s.lines = make([]Line, 0, len(order.Items))
	for _, item := range order.Items {
		line := Line{
			ProductID: item.ProductID,
			Ordered:   item.Quantity,
			UnitCost:  item.UnitPrice,
			Received:  item.Quantity,
		}
		if item.Product != nil {
			line.SKU = item.Product.SKU
			line.Name = item.Product.Name
			line.Unit = item.Product.Unit
		}
		s.lines = append(s.lines, line)
	}
	s.touch()
	return nil
}

// Next advances one step. The scan step is gated: without an attached order
// the session stays where it is.
func (s *Session) Next() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.step == StepScanOrder && s.order == nil:
		return ErrNoOrderAttached
	case s.step >= StepConfirm:
		return ErrLastStep
	}
	s.step++
	s.touch()
	return nil
}

// Previous moves one step back. Going back clears the confirmation flag so a
// changed draft must be re-confirmed.
func (s *Session) Previous() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step <= StepScanOrder {
		return ErrFirstStep
	}
	s.step--
	s.confirmed = false
	s.touch()
	return nil
}

// SetLine updates the receiving triple for one line. Only valid on the input
// step. Received is bounded by ordered, damaged by received; both bounds are
// enforced here rather than trusted to the caller.
func (s *Session) SetLine(index, received, damaged int, remarks string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepInputQuantities {
		return ErrWrongStep
	}
	if index < 0 || index >= len(s.lines) {
		return ErrLineOutOfRange
	}
	if received < 0 || damaged < 0 {
		return ErrNegativeQuantity
	}
	line := &s.lines[index]
	if received > line.Ordered {
		return ErrReceivedExceeds
	}
	if damaged > received {
		return ErrDamagedExceeds
	}
	line.Received = received
	line.Damaged = damaged
	line.Remarks = remarks
	s.touch()
	return nil
}

// Confirm sets the final confirmation flag. Only valid on the confirm step.
func (s *Session) Confirm(v bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != StepConfirm {
		return ErrWrongStep
	}
	s.confirmed = v
	s.touch()
	return nil
}

func (s *Session) Confirmed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.confirmed
}

func (s *Session) Order() *model.PurchaseOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order
}

// Lines returns a copy of the draft lines.
func (s *Session) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Session) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	var t Totals
	for _, line := range s.lines {
		t.Received += line.Received
		t.Damaged += line.Damaged
		t.Net += line.Net()
	}
	return t
}

func (s *Session) Submitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitted
}

// LastError returns the message from the most recent failed submit.
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// BeginSubmit validates the terminal state and builds the stock-in payload.
// Quantities are credited net of damage; lines with nothing to credit are
// dropped. The in-flight flag makes the submit non-reentrant: a second call
// before FinishSubmit fails instead of producing a duplicate receipt.
func (s *Session) BeginSubmit(referenceNumber string) (*model.StockIn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitted {
		return nil, ErrAlreadySubmitted
	}
	if s.step != StepConfirm {
		return nil, ErrWrongStep
	}
	if !s.confirmed {
		return nil, ErrNotConfirmed
	}
	if s.submitting {
		return nil, ErrSubmitInFlight
	}

	items := make([]model.StockInItem, 0, len(s.lines))
	for _, line := range s.lines {
		net := line.Net()
		if net <= 0 {
			continue
		}
		items = append(items, model.StockInItem{
			ProductID: line.ProductID,
			Quantity:  net,
			UnitCost:  line.UnitCost,
			TotalCost: line.UnitCost.Mul(decimal.NewFromInt(int64(net))),
			Notes:     line.Remarks,
		})
	}
	if len(items) == 0 {
		return nil, ErrNothingReceived
	}

	record := &model.StockIn{
		ReferenceNumber: referenceNumber,
		ReceiptDate:     time.Now(),
		ReceivedBy:      s.ReceivedBy,
		Status:          model.StockInReceived,
		Items:           items,
	}
	if s.order != nil {
		id := s.order.ID
		record.PurchaseOrderID = &id
	}

	s.submitting = true
	s.touch()
	return record, nil
}

// FinishSubmit records the outcome of the side-effecting call. On failure the
// session stays on the confirm step with the draft intact so the user can
// retry; on success it becomes terminal.
func (s *Session) FinishSubmit(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if err != nil {
		s.lastErr = err.Error()
		return
	}
	s.lastErr = ""
	s.submitted = true
	s.touch()
}

func (s *Session) touch() {
	s.touchedAt = time.Now()
}

// expired reports whether the session has been idle past ttl.
func (s *Session) expired(ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return time.Since(s.touchedAt) > ttl
}
