package internal

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sda-clothing/storefront/internal/backend"
	"github.com/sda-clothing/storefront/internal/checkout"
	"github.com/sda-clothing/storefront/internal/model"
	"github.com/sda-clothing/storefront/internal/status"
)

type IService interface {
	Register(ctx context.Context, in model.RegisterInput) (string, error)
	Login(ctx context.Context, in model.LoginInput) (string, error)
	Logout(ctx context.Context, cookie string) error
	Session(ctx context.Context, cookie string) (model.Session, error)

	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id int) (model.Product, error)
	ProductReviews(ctx context.Context, productID int) ([]model.Review, error)
	AddReview(ctx context.Context, s model.Session, productID int, in model.ReviewInput) error

	Profile(ctx context.Context, s model.Session) (model.Profile, error)
	UpdateProfile(ctx context.Context, s model.Session, in model.ProfileInput) (model.Profile, error)

	Cart(ctx context.Context, s model.Session) (model.CartSnapshot, error)
	AddToCart(ctx context.Context, s model.Session, productID, quantity int) error
	RemoveFromCart(ctx context.Context, s model.Session, itemID int) error

	Wishlist(ctx context.Context, s model.Session) ([]model.WishlistItem, error)
	AddToWishlist(ctx context.Context, s model.Session, productID int) error
	RemoveFromWishlist(ctx context.Context, s model.Session, itemID int) error

	Orders(ctx context.Context, s model.Session) ([]model.OrderView, error)
	Order(ctx context.Context, s model.Session, id int) (model.OrderView, error)
	TrackOrder(ctx context.Context, s model.Session, id int) (model.TrackInfo, error)
	CancelOrder(ctx context.Context, s model.Session, id int) error
	RequestRefund(ctx context.Context, s model.Session, id int) error
	PendingPayments(ctx context.Context, s model.Session) ([]model.PendingPayment, error)

	StartCheckout(ctx context.Context, s model.Session) (model.CartSnapshot, error)
	PlaceOrder(ctx context.Context, s model.Session, in model.ShippingInput) (model.PlacedOrder, error)
	ResumeCheckout(ctx context.Context, s model.Session, orderID int) (model.PlacedOrder, error)
	UploadPayment(ctx context.Context, s model.Session, files []checkout.Screenshot) (model.PlacedOrder, error)
	CheckoutState(s model.Session) (checkout.Stage, *checkout.Failure, error)
	AbandonCheckout(s model.Session)
}

type Service struct {
	backend  backend.IClient
	repo     IRepository
	sessions ISessions
	logger   *zap.SugaredLogger
	timeout  time.Duration

	// One live sequencer per session id; the checkout draft never outlives
	// the session and is dropped on completion or abandonment.
	mu        sync.Mutex
	checkouts map[string]*checkout.Sequencer
}

func NewService(client backend.IClient, repo IRepository, sessions ISessions, timeout time.Duration, logger *zap.SugaredLogger) *Service {
	return &Service{
		backend:   client,
		repo:      repo,
		sessions:  sessions,
		logger:    logger,
		timeout:   timeout,
		checkouts: make(map[string]*checkout.Sequencer),
	}
}

func (s *Service) Register(ctx context.Context, in model.RegisterInput) (string, error) {
	res, err := s.backend.Register(ctx, in)
	if err != nil {
		return "", err
	}
	return s.createSession(ctx, res)
}

func (s *Service) Login(ctx context.Context, in model.LoginInput) (string, error) {
	res, err := s.backend.Login(ctx, in)
	if err != nil {
		return "", err
	}
	return s.createSession(ctx, res)
}

func (s *Service) createSession(ctx context.Context, res model.AuthResult) (string, error) {
	return s.sessions.Create(ctx, model.Session{
		UserID:   res.User.ID,
		Username: res.User.Username,
		Email:    res.User.Email,
		Token:    res.Tokens.Access,
	})
}

func (s *Service) Logout(ctx context.Context, cookie string) error {
	sess, err := s.sessions.Resolve(ctx, cookie)
	if err == nil {
		s.AbandonCheckout(sess)
	}
	return s.sessions.Destroy(ctx, cookie)
}

func (s *Service) Session(ctx context.Context, cookie string) (model.Session, error) {
	return s.sessions.Resolve(ctx, cookie)
}

func (s *Service) Products(ctx context.Context) ([]model.Product, error) {
	return s.backend.Products(ctx)
}

func (s *Service) Product(ctx context.Context, id int) (model.Product, error) {
	return s.backend.Product(ctx, id)
}

func (s *Service) ProductReviews(ctx context.Context, productID int) ([]model.Review, error) {
	return s.backend.ProductReviews(ctx, productID)
}

func (s *Service) AddReview(ctx context.Context, sess model.Session, productID int, in model.ReviewInput) error {
	return s.backend.AddReview(ctx, sess.Token, productID, in)
}

func (s *Service) Profile(ctx context.Context, sess model.Session) (model.Profile, error) {
	return s.backend.Profile(ctx, sess.Token)
}

func (s *Service) UpdateProfile(ctx context.Context, sess model.Session, in model.ProfileInput) (model.Profile, error) {
	return s.backend.UpdateProfile(ctx, sess.Token, in)
}

func (s *Service) Cart(ctx context.Context, sess model.Session) (model.CartSnapshot, error) {
	return s.backend.Cart(ctx, sess.Token)
}

func (s *Service) AddToCart(ctx context.Context, sess model.Session, productID, quantity int) error {
	return s.backend.AddToCart(ctx, sess.Token, productID, quantity)
}

func (s *Service) RemoveFromCart(ctx context.Context, sess model.Session, itemID int) error {
	return s.backend.RemoveFromCart(ctx, sess.Token, itemID)
}

func (s *Service) Wishlist(ctx context.Context, sess model.Session) ([]model.WishlistItem, error) {
	return s.backend.Wishlist(ctx, sess.Token)
}

func (s *Service) AddToWishlist(ctx context.Context, sess model.Session, productID int) error {
	return s.backend.AddToWishlist(ctx, sess.Token, productID)
}

func (s *Service) RemoveFromWishlist(ctx context.Context, sess model.Session, itemID int) error {
	return s.backend.RemoveFromWishlist(ctx, sess.Token, itemID)
}

func (s *Service) Orders(ctx context.Context, sess model.Session) ([]model.OrderView, error) {
	orders, err := s.backend.OrderHistory(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNoRecords
	}

	views := make([]model.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, decorateOrder(o))
	}
	return views, nil
}

func (s *Service) Order(ctx context.Context, sess model.Session, id int) (model.OrderView, error) {
	o, err := s.backend.Order(ctx, sess.Token, id)
	if err != nil {
		return model.OrderView{}, err
	}
	return decorateOrder(o), nil
}

func (s *Service) TrackOrder(ctx context.Context, sess model.Session, id int) (model.TrackInfo, error) {
	o, err := s.backend.Order(ctx, sess.Token, id)
	if err != nil {
		return model.TrackInfo{}, err
	}

	v := status.FromOrder(o)
	return model.TrackInfo{
		OrderID:           o.ID,
		Verification:      string(v),
		VerificationLabel: status.Label(v),
		Track:             status.TrackFromOrder(o),
	}, nil
}

func (s *Service) CancelOrder(ctx context.Context, sess model.Session, id int) error {
	return s.backend.CancelOrder(ctx, sess.Token, id)
}

func (s *Service) RequestRefund(ctx context.Context, sess model.Session, id int) error {
	return s.backend.RequestRefund(ctx, sess.Token, id)
}

func (s *Service) PendingPayments(ctx context.Context, sess model.Session) ([]model.PendingPayment, error) {
	pending, err := s.repo.ListPending(ctx, sess.UserID)
	if err != nil {
		return nil, err
	}
	if len(pending) == 0 {
		return nil, ErrNoRecords
	}
	return pending, nil
}

// StartCheckout replaces any previous draft for the session: the cart is
// always fetched fresh at checkout entry.
func (s *Service) StartCheckout(ctx context.Context, sess model.Session) (model.CartSnapshot, error) {
	seq := checkout.NewSequencer(s.backend, s.backend, s.repo, sess, s.timeout, s.logger)

	cart, err := seq.LoadCart(ctx)
	if err != nil {
		return model.CartSnapshot{}, err
	}

	s.mu.Lock()
	s.checkouts[sess.ID] = seq
	s.mu.Unlock()
	return cart, nil
}

func (s *Service) PlaceOrder(ctx context.Context, sess model.Session, in model.ShippingInput) (model.PlacedOrder, error) {
	seq, err := s.sequencer(sess)
	if err != nil {
		return model.PlacedOrder{}, err
	}
	return seq.PlaceOrder(ctx, in)
}

func (s *Service) ResumeCheckout(ctx context.Context, sess model.Session, orderID int) (model.PlacedOrder, error) {
	seq := checkout.NewSequencer(s.backend, s.backend, s.repo, sess, s.timeout, s.logger)

	placed, err := seq.Resume(ctx, orderID)
	if err != nil {
		return model.PlacedOrder{}, err
	}

	s.mu.Lock()
	s.checkouts[sess.ID] = seq
	s.mu.Unlock()
	return placed, nil
}

func (s *Service) UploadPayment(ctx context.Context, sess model.Session, files []checkout.Screenshot) (model.PlacedOrder, error) {
	seq, err := s.sequencer(sess)
	if err != nil {
		return model.PlacedOrder{}, err
	}

	if err = seq.AttachScreenshots(files); err != nil {
		return model.PlacedOrder{}, err
	}

	placed, err := seq.UploadPayment(ctx)
	if err != nil {
		return model.PlacedOrder{}, err
	}

	s.AbandonCheckout(sess)
	return placed, nil
}

func (s *Service) CheckoutState(sess model.Session) (checkout.Stage, *checkout.Failure, error) {
	seq, err := s.sequencer(sess)
	if err != nil {
		return "", nil, err
	}
	return seq.State(), seq.Failure(), nil
}

// AbandonCheckout drops the draft. The remote order, if one was created,
// persists and stays resumable through ResumeCheckout.
func (s *Service) AbandonCheckout(sess model.Session) {
	s.mu.Lock()
	delete(s.checkouts, sess.ID)
	s.mu.Unlock()
}

func (s *Service) sequencer(sess model.Session) (*checkout.Sequencer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq, ok := s.checkouts[sess.ID]
	if !ok {
		return nil, ErrNoActiveCheckout
	}
	return seq, nil
}

func decorateOrder(o model.Order) model.OrderView {
	v := status.FromOrder(o)
	return model.OrderView{
		Order:             o,
		Verification:      string(v),
		VerificationLabel: status.Label(v),
		Track:             status.TrackFromOrder(o),
	}
}
