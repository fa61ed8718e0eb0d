package handler

import (
	"errors"
	"fmt"
	"time"

	"go-stockroom/internal/model"
	"go-stockroom/internal/service"
	"go-stockroom/internal/wizard"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// WizardHandler exposes the guided receiving flow. Session state lives
// server-side; the client only sends intents (attach, next, set line, confirm,
// submit) and renders what comes back.
type WizardHandler struct {
	store     *wizard.Store
	poService service.PurchaseOrderService
	siService service.StockInService
	activity  service.ActivityLogService
}

func NewWizardHandler(
	store *wizard.Store,
	poService service.PurchaseOrderService,
	siService service.StockInService,
	activity service.ActivityLogService,
) *WizardHandler {
	return &WizardHandler{
		store:     store,
		poService: poService,
		siService: siService,
		activity:  activity,
	}
}

// sessionView is the full wizard state the client renders after every intent.
type sessionView struct {
	ID          string        `json:"id"`
	Step        int           `json:"step"`
	StepName    string        `json:"step_name"`
	OrderNumber string        `json:"order_number,omitempty"`
	Lines       []lineView    `json:"lines"`
	Totals      wizard.Totals `json:"totals"`
	Confirmed   bool          `json:"confirmed"`
	Submitted   bool          `json:"submitted"`
	LastError   string        `json:"last_error,omitempty"`
}

type lineView struct {
	wizard.Line
	Net    int               `json:"net"`
	Status wizard.LineStatus `json:"status"`
}

func viewOf(s *wizard.Session) sessionView {
	lines := s.Lines()
	views := make([]lineView, len(lines))
	for i, line := range lines {
		views[i] = lineView{Line: line, Net: line.Net(), Status: line.Status()}
	}
	view := sessionView{
		ID:        s.ID.String(),
		Step:      int(s.Step()),
		StepName:  s.Step().String(),
		Lines:     views,
		Totals:    s.Totals(),
		Confirmed: s.Confirmed(),
		Submitted: s.Submitted(),
		LastError: s.LastError(),
	}
	if order := s.Order(); order != nil {
		view.OrderNumber = order.OrderNumber
	}
	return view
}

// mapWizardError turns state machine refusals into field-keyed 422s. They mean
// the intent was rejected and nothing changed.
func mapWizardError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, wizard.ErrNoOrderAttached),
		errors.Is(err, wizard.ErrFirstStep),
		errors.Is(err, wizard.ErrLastStep),
		errors.Is(err, wizard.ErrWrongStep):
		return validationFail(c, map[string]string{"step": err.Error()})
	case errors.Is(err, wizard.ErrLineOutOfRange):
		return validationFail(c, map[string]string{"line": err.Error()})
	case errors.Is(err, wizard.ErrReceivedExceeds),
		errors.Is(err, wizard.ErrNegativeQuantity):
		return validationFail(c, map[string]string{"received": err.Error()})
	case errors.Is(err, wizard.ErrDamagedExceeds):
		return validationFail(c, map[string]string{"damaged": err.Error()})
	case errors.Is(err, wizard.ErrNotConfirmed):
		return validationFail(c, map[string]string{"confirmed": err.Error()})
	case errors.Is(err, wizard.ErrNothingReceived):
		return validationFail(c, map[string]string{"items": err.Error()})
	default:
		return handleServiceError(c, err)
	}
}

func (h *WizardHandler) getSession(c *fiber.Ctx) (*wizard.Session, error) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil, badRequest(c, "Invalid session ID")
	}
	session, err := h.store.Get(id)
	if err != nil {
		return nil, fail(c, fiber.StatusNotFound, err.Error())
	}
	return session, nil
}

func (h *WizardHandler) Start(c *fiber.Ctx) error {
	session := h.store.Create(getUserName(c))
	return created(c, "Receiving session started", viewOf(session))
}

func (h *WizardHandler) Get(c *fiber.Ctx) error {
	session, ferr := h.getSession(c)
	if session == nil {
		return ferr
	}
	return ok(c, viewOf(session))
}

type attachOrderRequest struct {
	PurchaseOrderID string `json:"purchase_order_id"`
	OrderNumber     string `json:"order_number"`
}

// AttachOrder resolves the scanned order by ID or number and binds it to the
// session.
func (h *WizardHandler) AttachOrder(c *fiber.Ctx) error {
	session, ferr := h.getSession(c)
	if session == nil {
		return ferr
	}

	var req attachOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	var order *model.PurchaseOrder
	switch {
	case req.PurchaseOrderID != "":
		id, err := uuid.Parse(req.PurchaseOrderID)
		if err != nil {
			return badRequest(c, "Invalid purchase order ID")
		}
		order, err = h.poService.GetByID(id)
		if err != nil {
			return handleServiceError(c, err)
		}
	case req.OrderNumber != "":
		var err error
		order, err = h.poService.GetByOrderNumber(req.OrderNumber)
		if err != nil {
			return handleServiceError(c, err)
		}
	default:
		return validationFail(c, map[string]string{"purchase_order_id": "purchase_order_id or order_number is required"})
	}

	if err := session.AttachOrder(order); err != nil {
		return mapWizardError(c, err)
	}
	return ok(c, viewOf(session))
}

func (h *WizardHandler) Next(c *fiber.Ctx) error {
	session, ferr := h.getSession(c)
	if session == nil {
		return ferr
	}
	if err := session.Next(); err != nil {
		return mapWizardError(c, err)
	}
	return ok(c, viewOf(session))
}

func (h *WizardHandler) Previous(c *fiber.Ctx) error {
	session, ferr := h.getSession(c)
	if session == nil {
		return ferr
	}
	if err := session.Previous(); err != nil {
		return mapWizardError(c, err)
	}
	return ok(c, viewOf(session))
}

type setLineRequest struct {
	Received int    `json:"received"`
	Damaged  int    `json:"damaged"`
	Remarks  string `json:"remarks"`
}

func (h *WizardHandler) SetLine(c *fiber.Ctx) error {
	session, ferr := h.getSession(c)
	if session == nil {
		return ferr
	}

	index, err := c.ParamsInt("index")
	if err != nil {
		return badRequest(c, "Invalid line index")
	}

	var req setLineRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	if err := session.SetLine(index, req.Received, req.Damaged, req.Remarks); err != nil {
		return mapWizardError(c, err)
	}
	return ok(c, viewOf(session))
}

type confirmRequest struct {
	Confirmed bool `json:"confirmed"`
}

func (h *WizardHandler) Confirm(c *fiber.Ctx) error {
	session, ferr := h.getSession(c)
	if session == nil {
		return ferr
	}

	var req confirmRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}

	if err := session.Confirm(req.Confirmed); err != nil {
		return mapWizardError(c, err)
	}
	return ok(c, viewOf(session))
}

type submitRequest struct {
	ReferenceNumber string `json:"reference_number"`
}

// Submit hands the net-quantity payload to the stock-in service. A downstream
// failure keeps the session on the confirm step with everything intact, so the
// user can fix the cause and retry.
func (h *WizardHandler) Submit(c *fiber.Ctx) error {
	session, ferr := h.getSession(c)
	if session == nil {
		return ferr
	}

	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid JSON")
	}
	reference := req.ReferenceNumber
	if reference == "" {
		reference = fmt.Sprintf("SI-%s", time.Now().Format("20060102-150405"))
	}

	record, err := session.BeginSubmit(reference)
	if err != nil {
		return mapWizardError(c, err)
	}

	createdRecord, err := h.siService.Create(record, getUserID(c))
	session.FinishSubmit(err)
	if err != nil {
		return handleServiceError(c, err)
	}

	go h.activity.Record(getUserUUID(c), "submitted", "stock_in", &createdRecord.ID,
		"Receiving session submitted as "+createdRecord.ReferenceNumber, nil, createdRecord)

	return created(c, "Stock in recorded", fiber.Map{
		"session":  viewOf(session),
		"stock_in": createdRecord,
	})
}

func (h *WizardHandler) Abandon(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid session ID")
	}
	h.store.Delete(id)
	return okMessage(c, "Session discarded", nil)
}
