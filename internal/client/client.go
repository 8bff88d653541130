package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"foodorder/internal/domain/model"

	"github.com/sirupsen/logrus"
)

type MenuPage struct {
	MenuItems   []model.MenuItem `json:"menuItems"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

type MenuItemInput struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	Availability bool    `json:"availability"`
}

// nilは送らない
type MenuItemPatch struct {
	Name         *string  `json:"name,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Availability *bool    `json:"availability,omitempty"`
}

type OrderLine struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type OrderRequest struct {
	Items       []OrderLine `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
}

type messageBody struct {
	Message string `json:"message"`
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Client) { c.log = log }
}

// REST APIのクライアント。タイムアウト・リトライはしない（ctxに任せる）。
type Client struct {
	baseURL string
	http    *http.Client
	now     func() time.Time
	log     logrus.FieldLogger
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		now:     time.Now,
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Register(ctx context.Context, username, password string) (string, error) {
	var out messageBody
	err := c.do(ctx, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"password": password,
	}, &out)
	return out.Message, err
}

func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	}, &out)
	if err != nil {
		return Session{}, err
	}
	return NewSession(out.Token)
}

func (c *Client) ListMenu(ctx context.Context, page, limit int) (MenuPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var out MenuPage
	err := c.do(ctx, http.MethodGet, "/api/menu?"+q.Encode(), "", nil, &out)
	return out, err
}

func (c *Client) CreateMenuItem(ctx context.Context, in MenuItemInput) (model.MenuItem, error) {
	var out model.MenuItem
	err := c.do(ctx, http.MethodPost, "/api/menu", "", in, &out)
	return out, err
}

func (c *Client) UpdateMenuItem(ctx context.Context, id string, patch MenuItemPatch) (model.MenuItem, error) {
	var out model.MenuItem
	err := c.do(ctx, http.MethodPut, "/api/menu/"+url.PathEscape(id), "", patch, &out)
	return out, err
}

func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/menu/"+url.PathEscape(id), "", nil, nil)
}

func (c *Client) PlaceOrder(ctx context.Context, sess *Session, in OrderRequest) (model.Order, error) {
	if err := sess.check(c.now()); err != nil {
		return model.Order{}, err
	}
	var out model.Order
	err := c.do(ctx, http.MethodPost, "/api/order", sess.Token, in, &out)
	return out, err
}

func (c *Client) ListOrders(ctx context.Context, sess *Session) ([]model.Order, error) {
	if err := sess.check(c.now()); err != nil {
		return nil, err
	}
	var out []model.Order
	err := c.do(ctx, http.MethodGet, "/api/order", sess.Token, nil, &out)
	return out, err
}

func (c *Client) CompleteOrder(ctx context.Context, sess *Session, orderID string) (model.Order, error) {
	if err := sess.check(c.now()); err != nil {
		return model.Order{}, err
	}
	var out model.Order
	path := "/api/order/" + url.PathEscape(orderID) + "/complete"
	err := c.do(ctx, http.MethodPut, path, sess.Token, map[string]string{"status": string(model.OrderStatusCompleted)}, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path, bearer string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{"method": method, "path": path}).Warn("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var msg messageBody
		if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil || msg.Message == "" {
			msg.Message = http.StatusText(resp.StatusCode)
		}
		c.log.WithFields(logrus.Fields{"method": method, "path": path, "status": resp.StatusCode}).Debug(msg.Message)
		return &APIError{Status: resp.StatusCode, Message: msg.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
