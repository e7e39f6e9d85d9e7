package test_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/sda-clothing/storefront/internal"
	"github.com/sda-clothing/storefront/internal/checkout"
	mock_internal "github.com/sda-clothing/storefront/internal/mock"
	"github.com/sda-clothing/storefront/internal/model"
)

func strptr(s string) *string { return &s }

var _ = Describe("Service", func() {
	var (
		srv      internal.IService
		ctrl     *gomock.Controller
		client   *mock_internal.MockIClient
		rep      *mock_internal.MockIRepository
		sessions *mock_internal.MockISessions
		sess     model.Session
	)

	ctx := context.Background()

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		client = mock_internal.NewMockIClient(ctrl)
		rep = mock_internal.NewMockIRepository(ctrl)
		sessions = mock_internal.NewMockISessions(ctrl)

		sess = model.Session{ID: "s-1", UserID: 7, Username: "aisha", Token: "tok"}

		srv = internal.NewService(client, rep, sessions, time.Second, logger.Sugar())
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	Context("Auth", func() {
		It("Login mints a session from the backend tokens", func() {
			in := model.LoginInput{Email: "a@b.pk", Password: "pass"}

			res := model.AuthResult{}
			res.User.ID = 7
			res.User.Username = "aisha"
			res.User.Email = "a@b.pk"
			res.Tokens.Access = "tok"

			client.EXPECT().Login(ctx, in).Return(res, nil)
			sessions.EXPECT().Create(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, s model.Session) (string, error) {
					Expect(s.UserID).To(Equal(7))
					Expect(s.Token).To(Equal("tok"))
					return "cookie", nil
				})

			cookie, err := srv.Login(ctx, in)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(cookie).To(Equal("cookie"))
		})
		It("Login with error", func() {
			in := model.LoginInput{Email: "a@b.pk", Password: "wrong"}

			client.EXPECT().Login(ctx, in).Return(model.AuthResult{}, errors.New("some error"))

			_, err := srv.Login(ctx, in)
			Expect(err).Should(HaveOccurred())
		})
		It("Register mints a session", func() {
			in := model.RegisterInput{Username: "aisha", Email: "a@b.pk", Password: "pass"}

			res := model.AuthResult{}
			res.User.ID = 7
			res.Tokens.Access = "tok"

			client.EXPECT().Register(ctx, in).Return(res, nil)
			sessions.EXPECT().Create(ctx, gomock.Any()).Return("cookie", nil)

			_, err := srv.Register(ctx, in)
			Expect(err).ShouldNot(HaveOccurred())
		})
		It("Logout destroys the session", func() {
			sessions.EXPECT().Resolve(ctx, "cookie").Return(sess, nil)
			sessions.EXPECT().Destroy(ctx, "cookie").Return(nil)

			err := srv.Logout(ctx, "cookie")
			Expect(err).ShouldNot(HaveOccurred())
		})
	})

	Context("Orders", func() {
		It("decorates history with the normalized badge fields", func() {
			orders := []model.Order{{
				ID:                        3,
				PaymentVerificationStatus: strptr("Approved by Admin"),
				TotalAmount:               decimal.NewFromInt(4500),
			}}

			client.EXPECT().OrderHistory(ctx, "tok").Return(orders, nil)

			views, err := srv.Orders(ctx, sess)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(views).To(HaveLen(1))
			Expect(views[0].Verification).To(Equal("approved"))
			Expect(views[0].Track).To(Equal("shipping"))
		})
		It("returns ErrNoRecords on an empty history", func() {
			client.EXPECT().OrderHistory(ctx, "tok").Return([]model.Order{}, nil)

			_, err := srv.Orders(ctx, sess)
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(internal.ErrNoRecords))
		})
		It("TrackOrder answers the coarse progress", func() {
			order := model.Order{ID: 3, Status: strptr("rejected")}

			client.EXPECT().Order(ctx, "tok", 3).Return(order, nil)

			info, err := srv.TrackOrder(ctx, sess, 3)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(info.Verification).To(Equal("rejected"))
			Expect(info.Track).To(Equal("-"))
		})
		It("PendingPayments returns ErrNoRecords when nothing awaits upload", func() {
			rep.EXPECT().ListPending(ctx, sess.UserID).Return(nil, nil)

			_, err := srv.PendingPayments(ctx, sess)
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(internal.ErrNoRecords))
		})
	})

	Context("Checkout", func() {
		cart := model.CartSnapshot{
			Items: []model.CartLine{{ID: 1, Quantity: 1, Product: model.Product{ID: 5, Name: "Kurta"}}},
			Total: decimal.NewFromInt(4500),
		}

		It("PlaceOrder without a started checkout", func() {
			_, err := srv.PlaceOrder(ctx, sess, model.ShippingInput{Phone: "1", ShippingAddress: "a"})
			Expect(err).Should(HaveOccurred())
			Expect(err).Should(Equal(internal.ErrNoActiveCheckout))
		})
		It("runs the full cart to payment flow and drops the draft", func() {
			placed := model.PlacedOrder{ID: 42, Status: "pending", TotalAmount: cart.Total}

			client.EXPECT().Cart(gomock.Any(), "tok").Return(cart, nil)
			client.EXPECT().PlaceOrder(gomock.Any(), "tok", "12 Main St").Return(placed, nil)
			rep.EXPECT().SavePending(gomock.Any(), gomock.Any()).Return(nil)
			client.EXPECT().CreatePayment(gomock.Any(), "tok", 42, "proof.png", gomock.Any()).Return(nil)
			rep.EXPECT().CompletePending(gomock.Any(), 42).Return(nil)

			_, err := srv.StartCheckout(ctx, sess)
			Expect(err).ShouldNot(HaveOccurred())

			got, err := srv.PlaceOrder(ctx, sess, model.ShippingInput{
				Phone:           "+923001234567",
				ShippingAddress: "12 Main St",
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(got.ID).To(Equal(42))

			files := []checkout.Screenshot{{Name: "proof.png", Content: strings.NewReader("img")}}
			got, err = srv.UploadPayment(ctx, sess, files)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(got.ID).To(Equal(42))

			_, _, err = srv.CheckoutState(sess)
			Expect(err).Should(Equal(internal.ErrNoActiveCheckout))
		})
		It("retries a failed payment upload through a second request", func() {
			placed := model.PlacedOrder{ID: 42, Status: "pending", TotalAmount: cart.Total}

			client.EXPECT().Cart(gomock.Any(), "tok").Return(cart, nil)
			client.EXPECT().PlaceOrder(gomock.Any(), "tok", "12 Main St").Return(placed, nil)
			rep.EXPECT().SavePending(gomock.Any(), gomock.Any()).Return(nil)

			_, err := srv.StartCheckout(ctx, sess)
			Expect(err).ShouldNot(HaveOccurred())
			_, err = srv.PlaceOrder(ctx, sess, model.ShippingInput{Phone: "+923001234567", ShippingAddress: "12 Main St"})
			Expect(err).ShouldNot(HaveOccurred())

			client.EXPECT().CreatePayment(gomock.Any(), "tok", 42, "proof.png", gomock.Any()).
				Return(errors.New("connection reset"))

			_, err = srv.UploadPayment(ctx, sess, []checkout.Screenshot{{Name: "proof.png", Content: strings.NewReader("img")}})
			Expect(err).Should(HaveOccurred())
			Expect(err).ShouldNot(MatchError(checkout.ErrWrongStage))

			client.EXPECT().CreatePayment(gomock.Any(), "tok", 42, "proof.png", gomock.Any()).Return(nil)
			rep.EXPECT().CompletePending(gomock.Any(), 42).Return(nil)

			got, err := srv.UploadPayment(ctx, sess, []checkout.Screenshot{{Name: "proof.png", Content: strings.NewReader("img")}})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(got.ID).To(Equal(42))
		})
		It("ResumeCheckout re-enters the payment step by order id", func() {
			pending := model.PendingPayment{OrderID: 42, UserID: sess.UserID, ShippingAddress: "12 Main St"}
			order := model.Order{ID: 42, Status: strptr("pending"), TotalAmount: decimal.NewFromInt(4500)}

			rep.EXPECT().GetPending(gomock.Any(), sess.UserID, 42).Return(pending, nil)
			client.EXPECT().Order(gomock.Any(), "tok", 42).Return(order, nil)

			placed, err := srv.ResumeCheckout(ctx, sess, 42)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(placed.ID).To(Equal(42))

			stage, failure, err := srv.CheckoutState(sess)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(failure).To(BeNil())
			Expect(stage).To(Equal(checkout.StageOrderPlaced))
		})
		It("AbandonCheckout drops the draft", func() {
			client.EXPECT().Cart(gomock.Any(), "tok").Return(cart, nil)

			_, err := srv.StartCheckout(ctx, sess)
			Expect(err).ShouldNot(HaveOccurred())

			srv.AbandonCheckout(sess)

			_, _, err = srv.CheckoutState(sess)
			Expect(err).Should(Equal(internal.ErrNoActiveCheckout))
		})
	})
})
