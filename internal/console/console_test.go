package console

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"foodorder/internal/client"
	"foodorder/internal/domain/model"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// サーバーの代わり
type fakeAPI struct {
	menu     []model.MenuItem
	orders   []model.Order
	placed   []client.OrderRequest
	patches  map[string]client.MenuItemPatch
	deleted  []string
	listErr  error
	placeErr error
}

func (f *fakeAPI) Register(_ context.Context, username, _ string) (string, error) {
	if username == "taken" {
		return "", &client.APIError{Status: http.StatusBadRequest, Message: "Username already exists"}
	}
	return "User registered successfully", nil
}

func (f *fakeAPI) Login(_ context.Context, username, password string) (client.Session, error) {
	if password != "secret1" {
		return client.Session{}, &client.APIError{Status: http.StatusBadRequest, Message: "Invalid username or password"}
	}
	return client.Session{Token: "tok", UserID: username, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (f *fakeAPI) ListMenu(_ context.Context, page, _ int) (client.MenuPage, error) {
	return client.MenuPage{MenuItems: f.menu, TotalPages: 1, CurrentPage: page}, nil
}

func (f *fakeAPI) CreateMenuItem(_ context.Context, in client.MenuItemInput) (model.MenuItem, error) {
	it := model.MenuItem{ID: "new", Name: in.Name, Category: in.Category, Price: in.Price, Availability: in.Availability}
	f.menu = append(f.menu, it)
	return it, nil
}

func (f *fakeAPI) UpdateMenuItem(_ context.Context, id string, patch client.MenuItemPatch) (model.MenuItem, error) {
	if f.patches == nil {
		f.patches = map[string]client.MenuItemPatch{}
	}
	f.patches[id] = patch
	return model.MenuItem{ID: id, Name: "Burger", Price: 6.5}, nil
}

func (f *fakeAPI) DeleteMenuItem(_ context.Context, id string) error {
	if id == "missing" {
		return &client.APIError{Status: http.StatusNotFound, Message: "Menu item not found"}
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) PlaceOrder(_ context.Context, _ *client.Session, in client.OrderRequest) (model.Order, error) {
	if f.placeErr != nil {
		return model.Order{}, f.placeErr
	}
	f.placed = append(f.placed, in)
	o := model.Order{ID: "o1", Status: model.OrderStatusPending, TotalAmount: in.TotalAmount}
	f.orders = append(f.orders, o)
	return o, nil
}

func (f *fakeAPI) ListOrders(_ context.Context, _ *client.Session) ([]model.Order, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]model.Order(nil), f.orders...), nil
}

func (f *fakeAPI) CompleteOrder(_ context.Context, _ *client.Session, id string) (model.Order, error) {
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = model.OrderStatusCompleted
			return f.orders[i], nil
		}
	}
	return model.Order{}, &client.APIError{Status: http.StatusNotFound, Message: "Order not found"}
}

func newTestConsole(api *fakeAPI) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(api, strings.NewReader(""), &out, log), &out
}

func run(t *testing.T, c *Console, out *bytes.Buffer, line string) string {
	t.Helper()
	out.Reset()
	quit := c.Exec(context.Background(), line)
	require.False(t, quit)
	return out.String()
}

func sampleAPI() *fakeAPI {
	return &fakeAPI{menu: []model.MenuItem{
		{ID: "m1", Name: "Burger", Category: "Fast Food", Price: 5.99, Availability: true},
		{ID: "m2", Name: "Caesar Salad", Category: "Salads", Price: 4.5, Availability: true},
		{ID: "m3", Name: "Fries", Category: "Fast Food", Price: 2.5, Availability: false},
	}}
}

func TestConsole_BurgerFlow(t *testing.T) {
	api := sampleAPI()
	c, out := newTestConsole(api)

	assert.Contains(t, run(t, c, out, "login alice secret1"), "+ Login successful")

	got := run(t, c, out, "menu")
	assert.Contains(t, got, "Burger")
	assert.Contains(t, got, "categories: Fast Food, Salads")

	run(t, c, out, "add m1")
	assert.Contains(t, run(t, c, out, "add m1"), "Burger added to cart")
	assert.Contains(t, run(t, c, out, "cart"), "total: 11.98")

	assert.Contains(t, run(t, c, out, "place"), "Order placed successfully")
	require.Len(t, api.placed, 1)
	assert.Equal(t, 11.98, api.placed[0].TotalAmount)
	assert.Equal(t, 2, api.placed[0].Items[0].Quantity)
	assert.Contains(t, run(t, c, out, "cart"), "(cart is empty)")

	assert.Contains(t, run(t, c, out, "pending"), "Pending")
	assert.Contains(t, run(t, c, out, "complete o1"), "Order completed successfully")
	assert.Contains(t, run(t, c, out, "pending"), "(no orders)")
	assert.Contains(t, run(t, c, out, "orders"), "Completed")
}

func TestConsole_AuthRequired(t *testing.T) {
	c, out := newTestConsole(sampleAPI())

	assert.Contains(t, run(t, c, out, "cart"), "! Please log in first")
	assert.Contains(t, run(t, c, out, "place"), "! Please log in first")
}

func TestConsole_PlaceEmptyCart(t *testing.T) {
	api := sampleAPI()
	c, out := newTestConsole(api)
	run(t, c, out, "login alice secret1")

	assert.Contains(t, run(t, c, out, "place"), "! Cart is empty")
	assert.Empty(t, api.placed)
}

func TestConsole_UnauthorizedSignsOut(t *testing.T) {
	api := sampleAPI()
	c, out := newTestConsole(api)
	run(t, c, out, "login alice secret1")
	run(t, c, out, "menu")
	run(t, c, out, "add m1")

	api.listErr = client.ErrSessionExpired
	assert.Contains(t, run(t, c, out, "orders"), "! Session expired, please log in again")
	assert.Nil(t, c.session)
	assert.Empty(t, c.store.Cart())
	assert.Contains(t, run(t, c, out, "cart"), "! Please log in first")
}

func TestConsole_FailedPlaceKeepsCart(t *testing.T) {
	api := sampleAPI()
	c, out := newTestConsole(api)
	run(t, c, out, "login alice secret1")
	run(t, c, out, "menu")
	run(t, c, out, "add m2")

	api.placeErr = &client.APIError{Status: http.StatusInternalServerError, Message: "Error placing order"}
	assert.Contains(t, run(t, c, out, "place"), "! Error placing order")
	assert.Len(t, c.store.Cart(), 1)
}

func TestConsole_FilterSortCategory(t *testing.T) {
	c, out := newTestConsole(sampleAPI())
	run(t, c, out, "menu")

	got := run(t, c, out, "filter BURG")
	assert.Contains(t, got, "Burger")
	assert.NotContains(t, got, "Fries")

	run(t, c, out, "filter")
	got = run(t, c, out, "category Fast Food")
	assert.Contains(t, got, "Fries")
	assert.NotContains(t, got, "Caesar")

	got = run(t, c, out, "sort price-asc")
	assert.Less(t, strings.Index(got, "Fries"), strings.Index(got, "Burger"))

	assert.Contains(t, run(t, c, out, "sort cheapest"), "! unknown sort key")
}

func TestConsole_MenuAdmin(t *testing.T) {
	api := sampleAPI()
	c, out := newTestConsole(api)

	assert.Contains(t, run(t, c, out, `create -name "Onion Rings" -category Sides -price 3.25`), "Menu item created successfully")
	require.Len(t, api.menu, 4)
	assert.Equal(t, "Onion Rings", api.menu[3].Name)
	assert.True(t, api.menu[3].Availability)

	run(t, c, out, "edit m1 -price 6.5")
	patch := api.patches["m1"]
	require.NotNil(t, patch.Price)
	assert.Equal(t, 6.5, *patch.Price)
	assert.Nil(t, patch.Name)
	assert.Nil(t, patch.Availability)

	assert.Contains(t, run(t, c, out, "delete m3"), "Menu item deleted successfully")
	assert.Contains(t, run(t, c, out, "delete missing"), "! Failed to delete menu item: Menu item not found")
}

func TestConsole_RegisterAndBadLogin(t *testing.T) {
	c, out := newTestConsole(sampleAPI())

	assert.Contains(t, run(t, c, out, "register bob secret1"), "+ User registered successfully")
	assert.Contains(t, run(t, c, out, "register taken secret1"), "! Username already exists")
	assert.Contains(t, run(t, c, out, "login bob wrong"), "! Invalid username or password")
	assert.Nil(t, c.session)
}

func TestConsole_UnknownAndQuit(t *testing.T) {
	c, out := newTestConsole(sampleAPI())

	assert.Contains(t, run(t, c, out, "dance"), "! unknown command")
	assert.True(t, c.Exec(context.Background(), "quit"))
}

func TestConsole_Run(t *testing.T) {
	var out bytes.Buffer
	log := logrus.New()
	log.SetOutput(io.Discard)
	c := New(sampleAPI(), strings.NewReader("help\nmenu\nquit\nmenu\n"), &out, log)

	require.NoError(t, c.Run(context.Background()))
	assert.Contains(t, out.String(), "register <username> <password>")
	assert.Equal(t, 1, strings.Count(out.String(), "Caesar Salad"))
}

func TestSplitArgs(t *testing.T) {
	args, err := splitArgs(`create -name "Caesar Salad"  -price 4.5`)
	require.NoError(t, err)
	assert.Equal(t, []string{"create", "-name", "Caesar Salad", "-price", "4.5"}, args)

	args, err = splitArgs(`filter ""`)
	require.NoError(t, err)
	assert.Equal(t, []string{"filter", ""}, args)

	_, err = splitArgs(`filter "oops`)
	assert.Error(t, err)
}
