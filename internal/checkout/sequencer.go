// Package checkout drives the cart -> order -> payment-proof workflow. The
// sequence is partially compensating: a created order is never rolled back
// when the payment upload fails, it stays resumable by order id instead.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sda-clothing/storefront/internal/backend"
	"github.com/sda-clothing/storefront/internal/model"
)

type Stage string

const (
	StageIdle             Stage = "idle"
	StageCartLoaded       Stage = "cart_loaded"
	StageOrderPlacing     Stage = "order_placing"
	StageOrderPlaced      Stage = "order_placed"
	StagePaymentUploading Stage = "payment_uploading"
	StageCompleted        Stage = "completed"
	StageFailed           Stage = "failed"
)

// Failure stage names identify the originating action for "retry from this
// stage"; they are not the state-machine states.
const (
	FailCartFetch     = "cart_fetch"
	FailOrderCreate   = "order_create"
	FailPaymentUpload = "payment_upload"
	FailResume        = "resume"
)

type Kind string

const (
	KindAuth      Kind = "auth"
	KindNetwork   Kind = "network"
	KindBackend   Kind = "backend"
	KindTimeout   Kind = "timeout"
	KindInvariant Kind = "invariant"
	KindInternal  Kind = "internal"
)

// Failure is the terminal state payload. It is also the error returned by
// the transition that failed.
type Failure struct {
	Stage   string
	Kind    Kind
	Message string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("checkout failed at %s (%s): %s", f.Stage, f.Kind, f.Message)
}

// ValidationError blocks a transition without failing the checkout; the user
// re-inputs and retries.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrInFlight   = errors.New("a checkout request is already in flight")
	ErrWrongStage = errors.New("operation is not allowed in the current checkout stage")
)

type Orders interface {
	Cart(ctx context.Context, token string) (model.CartSnapshot, error)
	PlaceOrder(ctx context.Context, token, shippingAddress string) (model.PlacedOrder, error)
	Order(ctx context.Context, token string, id int) (model.Order, error)
}

type Payments interface {
	CreatePayment(ctx context.Context, token string, orderID int, filename string, screenshot io.Reader) error
}

// Drafts records placed orders that still lack a payment proof, which is
// what makes the payment step addressable after the session walked away.
type Drafts interface {
	SavePending(ctx context.Context, p model.PendingPayment) error
	CompletePending(ctx context.Context, orderID int) error
	GetPending(ctx context.Context, userID, orderID int) (model.PendingPayment, error)
}

type Screenshot struct {
	Name    string
	Content io.Reader
}

// Sequencer is one checkout session. Only one transition may be in progress
// at a time; concurrent triggers are rejected, not queued.
type Sequencer struct {
	orders   Orders
	payments Payments
	drafts   Drafts
	logger   *zap.SugaredLogger
	timeout  time.Duration

	mu       sync.Mutex
	inFlight bool
	stage    Stage
	session  model.Session
	cart     model.CartSnapshot
	shipping model.ShippingInput
	placed   model.PlacedOrder
	files    []Screenshot
	failure  *Failure
}

func NewSequencer(orders Orders, payments Payments, drafts Drafts, session model.Session, timeout time.Duration, logger *zap.SugaredLogger) *Sequencer {
	return &Sequencer{
		orders:   orders,
		payments: payments,
		drafts:   drafts,
		session:  session,
		timeout:  timeout,
		logger:   logger,
		stage:    StageIdle,
	}
}

// LoadCart fetches the live server-side cart and enters CartLoaded. The cart
// is always fetched fresh; a stale snapshot is never reused.
func (s *Sequencer) LoadCart(ctx context.Context) (model.CartSnapshot, error) {
	if err := s.begin(StageIdle, FailCartFetch); err != nil {
		return model.CartSnapshot{}, err
	}
	defer s.end()

	if s.session.Token == "" {
		return model.CartSnapshot{}, s.fail(FailCartFetch, backend.ErrAuthRequired)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cart, err := s.orders.Cart(ctx, s.session.Token)
	if err != nil {
		return model.CartSnapshot{}, s.fail(FailCartFetch, err)
	}
	if len(cart.Items) == 0 {
		s.setStage(StageIdle)
		return model.CartSnapshot{}, &ValidationError{Field: "cart", Message: "cart is empty, add items before checkout"}
	}

	s.mu.Lock()
	s.cart = cart
	s.stage = StageCartLoaded
	s.mu.Unlock()
	return cart, nil
}

// PlaceOrder validates the shipping form and creates the order from the
// server-side cart. Validation errors keep the state at CartLoaded.
func (s *Sequencer) PlaceOrder(ctx context.Context, in model.ShippingInput) (model.PlacedOrder, error) {
	if strings.TrimSpace(in.Phone) == "" {
		return model.PlacedOrder{}, &ValidationError{Field: "phone", Message: "phone number is required"}
	}
	if strings.TrimSpace(in.ShippingAddress) == "" {
		return model.PlacedOrder{}, &ValidationError{Field: "shipping_address", Message: "shipping address is required"}
	}

	if err := s.begin(StageCartLoaded, FailOrderCreate); err != nil {
		return model.PlacedOrder{}, err
	}
	defer s.end()

	s.setStage(StageOrderPlacing)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	placed, err := s.orders.PlaceOrder(ctx, s.session.Token, in.ShippingAddress)
	if err != nil {
		return model.PlacedOrder{}, s.fail(FailOrderCreate, err)
	}

	pending := model.PendingPayment{
		OrderID:         placed.ID,
		UserID:          s.session.UserID,
		TotalAmount:     placed.TotalAmount,
		ShippingPhone:   in.Phone,
		ShippingAddress: in.ShippingAddress,
		Notes:           in.Notes,
	}
	// The order already exists remotely; losing the local resume row must
	// not fail the checkout.
	if err := s.drafts.SavePending(ctx, pending); err != nil {
		s.logger.Errorf("recording pending payment for order %d: %s", placed.ID, err)
	}

	s.mu.Lock()
	s.shipping = in
	s.placed = placed
	s.stage = StageOrderPlaced
	s.mu.Unlock()
	return placed, nil
}

// Resume re-enters OrderPlaced for an order whose payment proof was never
// uploaded. Only pending orders recorded for this session's user qualify.
func (s *Sequencer) Resume(ctx context.Context, orderID int) (model.PlacedOrder, error) {
	if err := s.begin(StageIdle, FailResume); err != nil {
		return model.PlacedOrder{}, err
	}
	defer s.end()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	pending, err := s.drafts.GetPending(ctx, s.session.UserID, orderID)
	if err != nil {
		// Not a checkout failure: the id simply does not name a resumable
		// order for this user.
		s.setStage(StageIdle)
		s.logger.Infof("resume refused for order %d: %s", orderID, err)
		return model.PlacedOrder{}, &ValidationError{Field: "order_id", Message: "order is not awaiting a payment upload"}
	}

	order, err := s.orders.Order(ctx, s.session.Token, orderID)
	if err != nil {
		return model.PlacedOrder{}, s.fail(FailResume, err)
	}

	placed := model.PlacedOrder{ID: orderID, TotalAmount: order.TotalAmount}
	if order.Status != nil {
		placed.Status = *order.Status
	}

	s.mu.Lock()
	s.placed = placed
	s.shipping = model.ShippingInput{
		Phone:           pending.ShippingPhone,
		ShippingAddress: pending.ShippingAddress,
		Notes:           pending.Notes,
	}
	s.stage = StageOrderPlaced
	s.mu.Unlock()
	return placed, nil
}

// AttachScreenshots stores the user's selection, replacing any previous one.
// Zero files is a validation error, not a failure. A checkout that failed at
// the upload step accepts a fresh selection too; the drained readers from the
// failed attempt were already discarded.
func (s *Sequencer) AttachScreenshots(files []Screenshot) error {
	if len(files) == 0 {
		return &ValidationError{Field: "screenshots", Message: "choose at least one payment screenshot to upload"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	retrying := s.stage == StageFailed && s.failure != nil && s.failure.Stage == FailPaymentUpload
	if s.stage != StageOrderPlaced && !retrying {
		return ErrWrongStage
	}
	s.files = files
	return nil
}

// UploadPayment submits exactly the first attached screenshot bound to the
// placed order. The backend tracks one payment per order; replace-or-reject
// of a second submission is its decision.
func (s *Sequencer) UploadPayment(ctx context.Context) (model.PlacedOrder, error) {
	s.mu.Lock()
	files := s.files
	placed := s.placed
	s.mu.Unlock()

	if len(files) == 0 {
		return model.PlacedOrder{}, &ValidationError{Field: "screenshots", Message: "choose at least one payment screenshot to upload"}
	}

	if err := s.begin(StageOrderPlaced, FailPaymentUpload); err != nil {
		return model.PlacedOrder{}, err
	}
	defer s.end()

	s.setStage(StagePaymentUploading)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	first := files[0]
	if err := s.payments.CreatePayment(ctx, s.session.Token, placed.ID, first.Name, first.Content); err != nil {
		// Building the request body consumed the readers; a retry has to
		// attach fresh ones.
		s.mu.Lock()
		s.files = nil
		s.mu.Unlock()
		return model.PlacedOrder{}, s.fail(FailPaymentUpload, err)
	}

	if err := s.drafts.CompletePending(ctx, placed.ID); err != nil {
		s.logger.Errorf("closing pending payment for order %d: %s", placed.ID, err)
	}

	s.mu.Lock()
	s.files = nil
	s.stage = StageCompleted
	s.mu.Unlock()
	return placed, nil
}

func (s *Sequencer) State() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

func (s *Sequencer) Failure() *Failure {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure
}

func (s *Sequencer) Cart() model.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

func (s *Sequencer) Placed() model.PlacedOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.placed
}

// begin gates a transition: the sequencer must sit in `from`, or in Failed
// with the matching originating stage (explicit retry). One transition at a
// time; a second trigger while one is in flight is rejected.
func (s *Sequencer) begin(from Stage, failStage string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return ErrInFlight
	}
	allowed := s.stage == from
	if s.stage == StageFailed && s.failure != nil && s.failure.Stage == failStage {
		allowed = true
	}
	if !allowed {
		return ErrWrongStage
	}

	s.inFlight = true
	s.failure = nil
	return nil
}

func (s *Sequencer) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

func (s *Sequencer) setStage(st Stage) {
	s.mu.Lock()
	s.stage = st
	s.mu.Unlock()
}

func (s *Sequencer) fail(stage string, err error) *Failure {
	f := &Failure{Stage: stage, Kind: classify(err), Message: failureMessage(err)}

	s.mu.Lock()
	s.stage = StageFailed
	s.failure = f
	s.mu.Unlock()

	s.logger.Errorf("checkout failure at %s: %s", stage, err)
	return f
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, backend.ErrAuthRequired):
		return KindAuth
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.Is(err, backend.ErrUnavailable):
		return KindNetwork
	case errors.Is(err, backend.ErrNoOrderID):
		return KindInvariant
	}
	var be *backend.Error
	if errors.As(err, &be) {
		return KindBackend
	}
	return KindInternal
}

func failureMessage(err error) string {
	var be *backend.Error
	switch {
	case errors.As(err, &be):
		return be.Message
	case errors.Is(err, backend.ErrUnavailable):
		return "shop backend is unreachable, verify it is running and retry"
	case errors.Is(err, context.DeadlineExceeded):
		return "the request timed out, retry from this step"
	case errors.Is(err, backend.ErrAuthRequired):
		return "session expired, log in again"
	}
	return err.Error()
}
