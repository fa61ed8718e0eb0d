package wizard

import (
	"errors"
	"testing"
	"time"

	"go-stockroom/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder() *model.PurchaseOrder {
	order := &model.PurchaseOrder{
		OrderNumber: "PO-2026-0001",
		OrderDate:   time.Now(),
		Status:      model.POOrdered,
	}
	order.ID = uuid.New()
	order.Items = []model.PurchaseOrderItem{
		{
			ProductID: uuid.New(),
			Quantity:  5,
			UnitPrice: decimal.NewFromFloat(12.50),
			Product:   &model.Product{SKU: "SKU-001", Name: "Widget", Unit: "pcs"},
		},
		{
			ProductID: uuid.New(),
			Quantity:  3,
			UnitPrice: decimal.NewFromFloat(40.00),
			Product:   &model.Product{SKU: "SKU-002", Name: "Gadget", Unit: "box"},
		},
	}
	return order
}

func sessionAtStep(t *testing.T, target Step) *Session {
	t.Helper()
	s := NewSession("warehouse@example.com")
	require.NoError(t, s.AttachOrder(testOrder()))
	for s.Step() < target {
		require.NoError(t, s.Next())
	}
	return s
}

func TestNextGatedWithoutOrder(t *testing.T) {
	s := NewSession("warehouse@example.com")

	err := s.Next()
	assert.ErrorIs(t, err, ErrNoOrderAttached)
	assert.Equal(t, StepScanOrder, s.Step())
}

func TestAttachOrderSeedsLines(t *testing.T) {
	s := NewSession("warehouse@example.com")
	require.NoError(t, s.AttachOrder(testOrder()))

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 5, lines[0].Ordered)
	assert.Equal(t, 5, lines[0].Received)
	assert.Equal(t, 0, lines[0].Damaged)
	assert.Equal(t, "SKU-001", lines[0].SKU)
}

func TestStepBounds(t *testing.T) {
	s := NewSession("warehouse@example.com")
	assert.ErrorIs(t, s.Previous(), ErrFirstStep)

	s = sessionAtStep(t, StepConfirm)
	assert.ErrorIs(t, s.Next(), ErrLastStep)
}

func TestSetLineBounds(t *testing.T) {
	s := sessionAtStep(t, StepInputQuantities)

	assert.ErrorIs(t, s.SetLine(5, 1, 0, ""), ErrLineOutOfRange)
	assert.ErrorIs(t, s.SetLine(0, 6, 0, ""), ErrReceivedExceeds)
	assert.ErrorIs(t, s.SetLine(0, 3, 4, ""), ErrDamagedExceeds)
	assert.ErrorIs(t, s.SetLine(0, -1, 0, ""), ErrNegativeQuantity)

	require.NoError(t, s.SetLine(0, 3, 1, "dented carton"))
	lines := s.Lines()
	assert.Equal(t, 3, lines[0].Received)
	assert.Equal(t, 1, lines[0].Damaged)
	assert.Equal(t, "dented carton", lines[0].Remarks)
}

func TestSetLineWrongStep(t *testing.T) {
	s := sessionAtStep(t, StepReviewItems)
	assert.ErrorIs(t, s.SetLine(0, 2, 0, ""), ErrWrongStep)
}

func TestLineStatus(t *testing.T) {
	line := Line{Ordered: 5, Received: 5, Damaged: 0}
	assert.Equal(t, LineComplete, line.Status())

	line = Line{Ordered: 5, Received: 3, Damaged: 1}
	assert.Equal(t, LineIssues, line.Status())
	assert.Equal(t, 2, line.Net())

	line = Line{Ordered: 5, Received: 5, Damaged: 2}
	assert.Equal(t, LineIssues, line.Status())
	assert.Equal(t, 3, line.Net())
}

func TestTotals(t *testing.T) {
	s := sessionAtStep(t, StepInputQuantities)
	require.NoError(t, s.SetLine(0, 4, 1, ""))
	require.NoError(t, s.SetLine(1, 3, 0, ""))

	totals := s.Totals()
	assert.Equal(t, 7, totals.Received)
	assert.Equal(t, 1, totals.Damaged)
	assert.Equal(t, 6, totals.Net)
}

func TestSubmitRequiresConfirmation(t *testing.T) {
	s := sessionAtStep(t, StepConfirm)

	_, err := s.BeginSubmit("SI-2026-0001")
	assert.ErrorIs(t, err, ErrNotConfirmed)
}

func TestPreviousClearsConfirmation(t *testing.T) {
	s := sessionAtStep(t, StepConfirm)
	require.NoError(t, s.Confirm(true))
	require.NoError(t, s.Previous())
	require.NoError(t, s.Next())

	assert.False(t, s.Confirmed())
	_, err := s.BeginSubmit("SI-2026-0001")
	assert.ErrorIs(t, err, ErrNotConfirmed)
}

func TestSubmitBuildsNetQuantities(t *testing.T) {
	s := sessionAtStep(t, StepInputQuantities)
	require.NoError(t, s.SetLine(0, 3, 1, "one unit crushed"))
	require.NoError(t, s.Next())
	require.NoError(t, s.Confirm(true))

	record, err := s.BeginSubmit("SI-2026-0001")
	require.NoError(t, err)

	require.Len(t, record.Items, 2)
	assert.Equal(t, 2, record.Items[0].Quantity)
	assert.True(t, record.Items[0].TotalCost.Equal(decimal.NewFromFloat(25.00)))
	assert.Equal(t, 3, record.Items[1].Quantity)
	assert.Equal(t, model.StockInReceived, record.Status)
	require.NotNil(t, record.PurchaseOrderID)
}

func TestSubmitDropsEmptyLines(t *testing.T) {
	s := sessionAtStep(t, StepInputQuantities)
	require.NoError(t, s.SetLine(0, 0, 0, "missing from truck"))
	require.NoError(t, s.Next())
	require.NoError(t, s.Confirm(true))

	record, err := s.BeginSubmit("SI-2026-0002")
	require.NoError(t, err)
	require.Len(t, record.Items, 1)
	assert.Equal(t, 3, record.Items[0].Quantity)
}

func TestSubmitNothingReceived(t *testing.T) {
	s := sessionAtStep(t, StepInputQuantities)
	require.NoError(t, s.SetLine(0, 0, 0, ""))
	require.NoError(t, s.SetLine(1, 0, 0, ""))
	require.NoError(t, s.Next())
	require.NoError(t, s.Confirm(true))

	_, err := s.BeginSubmit("SI-2026-0003")
	assert.ErrorIs(t, err, ErrNothingReceived)
}

func TestSubmitNonReentrant(t *testing.T) {
	s := sessionAtStep(t, StepConfirm)
	require.NoError(t, s.Confirm(true))

	_, err := s.BeginSubmit("SI-2026-0004")
	require.NoError(t, err)

	_, err = s.BeginSubmit("SI-2026-0004")
	assert.ErrorIs(t, err, ErrSubmitInFlight)
}

func TestFailedSubmitKeepsState(t *testing.T) {
	s := sessionAtStep(t, StepConfirm)
	require.NoError(t, s.Confirm(true))

	_, err := s.BeginSubmit("SI-2026-0005")
	require.NoError(t, err)
	s.FinishSubmit(errors.New("reference number already exists"))

	assert.Equal(t, StepConfirm, s.Step())
	assert.False(t, s.Submitted())
	assert.Equal(t, "reference number already exists", s.LastError())
	assert.Len(t, s.Lines(), 2)

	// Retry succeeds once the downstream failure clears.
	_, err = s.BeginSubmit("SI-2026-0006")
	require.NoError(t, err)
	s.FinishSubmit(nil)
	assert.True(t, s.Submitted())

	_, err = s.BeginSubmit("SI-2026-0007")
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestStoreLifecycle(t *testing.T) {
	store := NewStore(time.Hour)
	session := store.Create("warehouse@example.com")

	got, err := store.Get(session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, got.ID)

	store.Delete(session.ID)
	_, err = store.Get(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore(10 * time.Millisecond)
	session := store.Create("warehouse@example.com")

	time.Sleep(25 * time.Millisecond)
	_, err := store.Get(session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
