// Package backend is the REST client for the remote shop backend. Every
// authenticated call takes the bearer token explicitly from the session; an
// empty token short-circuits before any request leaves the process.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/sda-clothing/storefront/internal/model"
)

var (
	ErrAuthRequired = errors.New("authentication required")
	ErrUnavailable  = errors.New("backend is unavailable")

	// ErrNoOrderID is a 2xx order-create response without an id. The HTTP
	// layer reported success but the contract was not honored.
	ErrNoOrderID = errors.New("backend returned no order id")
)

// Error is a non-2xx backend answer with the message already extracted from
// whichever error shape the backend used.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend answered %d: %s", e.StatusCode, e.Message)
}

type IClient interface {
	Login(ctx context.Context, in model.LoginInput) (model.AuthResult, error)
	Register(ctx context.Context, in model.RegisterInput) (model.AuthResult, error)

	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id int) (model.Product, error)
	ProductReviews(ctx context.Context, productID int) ([]model.Review, error)
	AddReview(ctx context.Context, token string, productID int, in model.ReviewInput) error

	Profile(ctx context.Context, token string) (model.Profile, error)
	UpdateProfile(ctx context.Context, token string, in model.ProfileInput) (model.Profile, error)

	Cart(ctx context.Context, token string) (model.CartSnapshot, error)
	AddToCart(ctx context.Context, token string, productID, quantity int) error
	RemoveFromCart(ctx context.Context, token string, itemID int) error

	Wishlist(ctx context.Context, token string) ([]model.WishlistItem, error)
	AddToWishlist(ctx context.Context, token string, productID int) error
	RemoveFromWishlist(ctx context.Context, token string, itemID int) error

	PlaceOrder(ctx context.Context, token, shippingAddress string) (model.PlacedOrder, error)
	Order(ctx context.Context, token string, id int) (model.Order, error)
	OrderHistory(ctx context.Context, token string) ([]model.Order, error)
	CancelOrder(ctx context.Context, token string, id int) error
	RequestRefund(ctx context.Context, token string, id int) error

	CreatePayment(ctx context.Context, token string, orderID int, filename string, screenshot io.Reader) error
}

type Client struct {
	client *http.Client
	logger *zap.SugaredLogger
	url    string
}

func NewClient(url string, logger *zap.SugaredLogger) *Client {
	return &Client{
		client: &http.Client{},
		logger: logger,
		url:    url,
	}
}

func (c *Client) Login(ctx context.Context, in model.LoginInput) (model.AuthResult, error) {
	var res model.AuthResult
	err := c.postJSON(ctx, "", "/api/auth/login/", in, &res)
	return res, err
}

func (c *Client) Register(ctx context.Context, in model.RegisterInput) (model.AuthResult, error) {
	var res model.AuthResult
	err := c.postJSON(ctx, "", "/api/auth/register/", in, &res)
	return res, err
}

func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/products/", "", nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList[model.Product](body, "products")
}

func (c *Client) Product(ctx context.Context, id int) (model.Product, error) {
	var p model.Product
	body, err := c.do(ctx, http.MethodGet, "/api/products/"+strconv.Itoa(id)+"/", "", nil, "")
	if err != nil {
		return p, err
	}
	err = json.Unmarshal(body, &p)
	return p, err
}

func (c *Client) ProductReviews(ctx context.Context, productID int) ([]model.Review, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/products/"+strconv.Itoa(productID)+"/reviews/", "", nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList[model.Review](body, "reviews")
}

func (c *Client) AddReview(ctx context.Context, token string, productID int, in model.ReviewInput) error {
	if token == "" {
		return ErrAuthRequired
	}
	return c.postJSON(ctx, token, "/api/products/"+strconv.Itoa(productID)+"/reviews/add/", in, nil)
}

func (c *Client) Profile(ctx context.Context, token string) (model.Profile, error) {
	var p model.Profile
	if token == "" {
		return p, ErrAuthRequired
	}
	body, err := c.do(ctx, http.MethodGet, "/api/auth/profile/", token, nil, "")
	if err != nil {
		return p, err
	}
	err = json.Unmarshal(body, &p)
	return p, err
}

// UpdateProfile sends a partial update; the backend answers with the full
// updated profile under a user key.
func (c *Client) UpdateProfile(ctx context.Context, token string, in model.ProfileInput) (model.Profile, error) {
	if token == "" {
		return model.Profile{}, ErrAuthRequired
	}

	b, err := json.Marshal(in)
	if err != nil {
		return model.Profile{}, err
	}
	body, err := c.do(ctx, http.MethodPut, "/api/auth/profile/update/", token, bytes.NewReader(b), "application/json")
	if err != nil {
		return model.Profile{}, err
	}

	var res struct {
		User model.Profile `json:"user"`
	}
	err = json.Unmarshal(body, &res)
	return res.User, err
}

func (c *Client) Cart(ctx context.Context, token string) (model.CartSnapshot, error) {
	var cart model.CartSnapshot
	if token == "" {
		return cart, ErrAuthRequired
	}
	body, err := c.do(ctx, http.MethodGet, "/api/cart/", token, nil, "")
	if err != nil {
		return cart, err
	}
	err = json.Unmarshal(body, &cart)
	return cart, err
}

func (c *Client) AddToCart(ctx context.Context, token string, productID, quantity int) error {
	if token == "" {
		return ErrAuthRequired
	}
	in := map[string]int{"product_id": productID, "quantity": quantity}
	return c.postJSON(ctx, token, "/api/cart/add/", in, nil)
}

func (c *Client) RemoveFromCart(ctx context.Context, token string, itemID int) error {
	if token == "" {
		return ErrAuthRequired
	}
	in := map[string]int{"item_id": itemID}
	return c.postJSON(ctx, token, "/api/cart/remove/", in, nil)
}

func (c *Client) Wishlist(ctx context.Context, token string) ([]model.WishlistItem, error) {
	if token == "" {
		return nil, ErrAuthRequired
	}
	body, err := c.do(ctx, http.MethodGet, "/api/wishlist/", token, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList[model.WishlistItem](body, "items")
}

func (c *Client) AddToWishlist(ctx context.Context, token string, productID int) error {
	if token == "" {
		return ErrAuthRequired
	}
	in := map[string]int{"product_id": productID}
	return c.postJSON(ctx, token, "/api/wishlist/add/", in, nil)
}

func (c *Client) RemoveFromWishlist(ctx context.Context, token string, itemID int) error {
	if token == "" {
		return ErrAuthRequired
	}
	_, err := c.do(ctx, http.MethodDelete, "/api/wishlist/remove/"+strconv.Itoa(itemID)+"/", token, nil, "")
	return err
}

// PlaceOrder creates the order from the server-side cart. use_cart is always
// true: the backend bills the cart it holds at call time, the gateway never
// re-serializes line items it might hold stale.
func (c *Client) PlaceOrder(ctx context.Context, token, shippingAddress string) (model.PlacedOrder, error) {
	var placed model.PlacedOrder
	if token == "" {
		return placed, ErrAuthRequired
	}

	in := struct {
		UseCart         bool   `json:"use_cart"`
		ShippingAddress string `json:"shipping_address,omitempty"`
	}{UseCart: true, ShippingAddress: shippingAddress}

	if err := c.postJSON(ctx, token, "/api/orders/place/", in, &placed); err != nil {
		return model.PlacedOrder{}, err
	}
	if placed.ID == 0 {
		return model.PlacedOrder{}, ErrNoOrderID
	}
	return placed, nil
}

func (c *Client) Order(ctx context.Context, token string, id int) (model.Order, error) {
	var o model.Order
	if token == "" {
		return o, ErrAuthRequired
	}
	body, err := c.do(ctx, http.MethodGet, "/api/orders/"+strconv.Itoa(id)+"/", token, nil, "")
	if err != nil {
		return o, err
	}
	err = json.Unmarshal(body, &o)
	return o, err
}

// OrderHistory normalizes the three historical list shapes (bare array,
// {results:[...]}, {orders:[...]}) into one slice at this boundary.
func (c *Client) OrderHistory(ctx context.Context, token string) ([]model.Order, error) {
	if token == "" {
		return nil, ErrAuthRequired
	}
	body, err := c.do(ctx, http.MethodGet, "/api/orders/history/", token, nil, "")
	if err != nil {
		return nil, err
	}
	return decodeList[model.Order](body, "orders")
}

func (c *Client) CancelOrder(ctx context.Context, token string, id int) error {
	if token == "" {
		return ErrAuthRequired
	}
	_, err := c.do(ctx, http.MethodPost, "/api/orders/"+strconv.Itoa(id)+"/cancel/", token, nil, "")
	return err
}

func (c *Client) RequestRefund(ctx context.Context, token string, id int) error {
	if token == "" {
		return ErrAuthRequired
	}
	_, err := c.do(ctx, http.MethodPost, "/api/orders/"+strconv.Itoa(id)+"/refund/", token, nil, "")
	return err
}

// CreatePayment uploads the payment proof as multipart form data. The
// content type comes from the multipart writer so the boundary is generated,
// never hand-set.
func (c *Client) CreatePayment(ctx context.Context, token string, orderID int, filename string, screenshot io.Reader) error {
	if token == "" {
		return ErrAuthRequired
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("order", strconv.Itoa(orderID)); err != nil {
		return err
	}
	fw, err := w.CreateFormFile("screenshot", filename)
	if err != nil {
		return err
	}
	if _, err = io.Copy(fw, screenshot); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}

	_, err = c.do(ctx, http.MethodPost, "/api/payments/create/", token, &buf, w.FormDataContentType())
	return err
}

func (c *Client) postJSON(ctx context.Context, token, path string, in, out interface{}) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}

	body, err := c.do(ctx, http.MethodPost, path, token, bytes.NewReader(b), "application/json")
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}

func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer res.Body.Close()

	var buf bytes.Buffer
	if _, err = io.Copy(&buf, res.Body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if res.StatusCode == http.StatusUnauthorized || res.StatusCode == http.StatusForbidden {
		return nil, ErrAuthRequired
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg := extractMessage(buf.Bytes())
		c.logger.Errorf("backend %s %s answered %d: %s", method, path, res.StatusCode, msg)
		return nil, &Error{StatusCode: res.StatusCode, Message: msg}
	}

	return buf.Bytes(), nil
}

// extractMessage digs the human-readable message out of whichever error shape
// the backend used. Key order matters; raw JSON is the last resort.
func extractMessage(body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil {
		for _, key := range []string{"detail", "error", "order", "screenshot"} {
			raw, ok := fields[key]
			if !ok {
				continue
			}
			var s string
			if json.Unmarshal(raw, &s) == nil {
				return s
			}
			return string(raw)
		}
	}
	return string(body)
}

// decodeList accepts a bare array or a single-key object wrapper. results is
// always honored as a wrapper key in addition to the endpoint-specific one.
func decodeList[T any](body []byte, wrapperKey string) ([]T, error) {
	var list []T
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	for _, key := range []string{"results", wrapperKey} {
		raw, ok := wrapped[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	// An object carrying neither key is likely an error body behind a 200;
	// surfacing it beats mistaking it for an empty list.
	return nil, fmt.Errorf("response carries no %q or %q list: %s", "results", wrapperKey, body)
}
