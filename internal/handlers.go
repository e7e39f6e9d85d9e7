package internal

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sda-clothing/storefront/internal/backend"
	"github.com/sda-clothing/storefront/internal/checkout"
	"github.com/sda-clothing/storefront/internal/model"
)

const sessionCookie = "session"

type Handlers struct {
	Service IService
	logger  *zap.SugaredLogger
}

func NewHandlers(Service IService, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, logger: logger}
}

func (h *Handlers) Login(c *fiber.Ctx) error {
	var i model.LoginInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on login request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	cookie, err := h.Service.Login(c.Context(), i)
	if err != nil {
		h.logger.Errorf("Error on login request: %s", err.Error())
		return h.sendError(c, err)
	}

	setSessionCookie(c, cookie)
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) Register(c *fiber.Ctx) error {
	var i model.RegisterInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on register request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	cookie, err := h.Service.Register(c.Context(), i)
	if err != nil {
		h.logger.Errorf("Error on register request: %s", err.Error())
		return h.sendError(c, err)
	}

	setSessionCookie(c, cookie)
	return c.SendStatus(fiber.StatusCreated)
}

func (h *Handlers) Logout(c *fiber.Ctx) error {
	cookie := c.Cookies(sessionCookie)
	if cookie == "" {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	if err := h.Service.Logout(c.Context(), cookie); err != nil && !errors.Is(err, backend.ErrAuthRequired) {
		h.logger.Errorf("Error on logout request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	clearSessionCookie(c)
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) Products(c *fiber.Ctx) error {
	products, err := h.Service.Products(c.Context())
	if err != nil {
		return h.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

func (h *Handlers) Product(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	product, err := h.Service.Product(c.Context(), id)
	if err != nil {
		return h.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

func (h *Handlers) ProductReviews(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	reviews, err := h.Service.ProductReviews(c.Context(), id)
	if err != nil {
		return h.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(reviews)
}

func (h *Handlers) AddReview(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	var i model.ReviewInput
	if err = c.BodyParser(&i); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "incorrect request format"})
	}

	if err = h.Service.AddReview(c.Context(), sess, id, i); err != nil {
		return h.sendError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

func (h *Handlers) Profile(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	profile, err := h.Service.Profile(c.Context(), sess)
	if err != nil {
		return h.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *Handlers) UpdateProfile(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var i model.ProfileInput
	if err = c.BodyParser(&i); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "incorrect request format"})
	}

	profile, err := h.Service.UpdateProfile(c.Context(), sess, i)
	if err != nil {
		return h.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

func (h *Handlers) Cart(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	cart, err := h.Service.Cart(c.Context(), sess)
	if err != nil {
		return h.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(cart)
}

func (h *Handlers) AddToCart(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var i struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	if err = c.BodyParser(&i); err != nil || i.ProductID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "product_id is required"})
	}
	if i.Quantity == 0 {
		i.Quantity = 1
	}

	if err = h.Service.AddToCart(c.Context(), sess, i.ProductID, i.Quantity); err != nil {
		return h.sendError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) RemoveFromCart(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var i struct {
		ItemID int `json:"item_id"`
	}
	if err = c.BodyParser(&i); err != nil || i.ItemID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "item_id is required"})
	}

	if err = h.Service.RemoveFromCart(c.Context(), sess, i.ItemID); err != nil {
		return h.sendError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) Wishlist(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	items, err := h.Service.Wishlist(c.Context(), sess)
	if err != nil {
		return h.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

func (h *Handlers) AddToWishlist(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var i struct {
		ProductID int `json:"product_id"`
	}
	if err = c.BodyParser(&i); err != nil || i.ProductID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "product_id is required"})
	}

	if err = h.Service.AddToWishlist(c.Context(), sess, i.ProductID); err != nil {
		return h.sendError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) RemoveFromWishlist(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err = h.Service.RemoveFromWishlist(c.Context(), sess, id); err != nil {
		return h.sendError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) Orders(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	orders, err := h.Service.Orders(c.Context(), sess)
	if err != nil {
		if errors.Is(err, ErrNoRecords) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return h.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(orders)
}

func (h *Handlers) Order(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	order, err := h.Service.Order(c.Context(), sess, id)
	if err != nil {
		return h.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(order)
}

func (h *Handlers) TrackOrder(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	info, err := h.Service.TrackOrder(c.Context(), sess, id)
	if err != nil {
		return h.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(info)
}

func (h *Handlers) CancelOrder(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err = h.Service.CancelOrder(c.Context(), sess, id); err != nil {
		return h.sendError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) RequestRefund(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if err = h.Service.RequestRefund(c.Context(), sess, id); err != nil {
		return h.sendError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) PendingPayments(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	pending, err := h.Service.PendingPayments(c.Context(), sess)
	if err != nil {
		if errors.Is(err, ErrNoRecords) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return h.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(pending)
}

func (h *Handlers) StartCheckout(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	cart, err := h.Service.StartCheckout(c.Context(), sess)
	if err != nil {
		return h.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(cart)
}

func (h *Handlers) PlaceOrder(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var i model.ShippingInput
	if err = c.BodyParser(&i); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "incorrect request format"})
	}

	placed, err := h.Service.PlaceOrder(c.Context(), sess, i)
	if err != nil {
		return h.sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(placed)
}

func (h *Handlers) ResumeCheckout(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	placed, err := h.Service.ResumeCheckout(c.Context(), sess, id)
	if err != nil {
		return h.sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(placed)
}

// UploadPayment accepts the multipart screenshot selection. The sequencer
// submits only the first file; the backend tracks one payment per order.
func (h *Handlers) UploadPayment(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "multipart form expected"})
	}

	var files []checkout.Screenshot
	for _, fh := range form.File["screenshots"] {
		f, err := fh.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "cannot read uploaded file"})
		}
		defer f.Close()
		files = append(files, checkout.Screenshot{Name: fh.Filename, Content: f})
	}

	placed, err := h.Service.UploadPayment(c.Context(), sess, files)
	if err != nil {
		return h.sendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": "ok", "order_id": placed.ID})
}

func (h *Handlers) CheckoutState(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	stage, failure, err := h.Service.CheckoutState(sess)
	if err != nil {
		return h.sendError(c, err)
	}

	res := fiber.Map{"stage": string(stage)}
	if failure != nil {
		res["failure"] = fiber.Map{"stage": failure.Stage, "kind": string(failure.Kind), "message": failure.Message}
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *Handlers) AbandonCheckout(c *fiber.Ctx) error {
	sess, err := h.session(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	h.Service.AbandonCheckout(sess)
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) session(c *fiber.Ctx) (model.Session, error) {
	cookie := c.Cookies(sessionCookie)
	if cookie == "" {
		return model.Session{}, backend.ErrAuthRequired
	}
	return h.Service.Session(c.Context(), cookie)
}

// sendError maps domain errors to HTTP answers. Validation stays inline and
// recoverable, auth always answers 401, backend answers keep their status
// and extracted message.
func (h *Handlers) sendError(c *fiber.Ctx, err error) error {
	var v *checkout.ValidationError
	if errors.As(err, &v) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "field": v.Field, "message": v.Message})
	}

	var f *checkout.Failure
	if errors.As(err, &f) {
		code := fiber.StatusBadGateway
		if f.Kind == checkout.KindAuth {
			code = fiber.StatusUnauthorized
		}
		return c.Status(code).JSON(fiber.Map{"status": "error", "stage": f.Stage, "kind": string(f.Kind), "message": f.Message})
	}

	if errors.Is(err, backend.ErrAuthRequired) {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	if errors.Is(err, ErrNoActiveCheckout) || errors.Is(err, checkout.ErrInFlight) || errors.Is(err, checkout.ErrWrongStage) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "error", "message": err.Error()})
	}

	var be *backend.Error
	if errors.As(err, &be) {
		return c.Status(be.StatusCode).JSON(fiber.Map{"status": "error", "message": be.Message})
	}
	if errors.Is(err, backend.ErrUnavailable) {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"status": "error", "message": "shop backend is unreachable, verify it is running"})
	}

	h.logger.Errorf("unhandled error: %s", err.Error())
	return c.SendStatus(fiber.StatusInternalServerError)
}

func setSessionCookie(c *fiber.Ctx, token string) {
	cookie := &fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(sessionTTL),
	}

	c.Cookie(cookie)
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:    sessionCookie,
		Value:   "",
		Path:    "/",
		Expires: time.Now().Add(-time.Hour),
	})
}
