package console

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"foodorder/internal/client"
	"foodorder/internal/clientstate"
	"foodorder/internal/menuview"
)

type command struct {
	//ログイン必須
	auth bool
	run  func(ctx context.Context, c *Console, args []string) error
}

var commands = map[string]command{
	"help":     {run: cmdHelp},
	"register": {run: cmdRegister},
	"login":    {run: cmdLogin},
	"logout":   {run: cmdLogout},
	"menu":     {run: cmdMenu},
	"filter":   {run: cmdFilter},
	"category": {run: cmdCategory},
	"sort":     {run: cmdSort},
	"page":     {run: cmdPage},
	"create":   {run: cmdCreate},
	"edit":     {run: cmdEdit},
	"delete":   {run: cmdDelete},
	"add":      {auth: true, run: cmdAdd},
	"cart":     {auth: true, run: cmdCart},
	"place":    {auth: true, run: cmdPlace},
	"orders":   {auth: true, run: cmdOrders},
	"pending":  {auth: true, run: cmdPending},
	"complete": {auth: true, run: cmdComplete},
}

var helpLines = []string{
	"register <username> <password>\tcreate an account",
	"login <username> <password>\tsign in",
	"logout\tsign out (clears cart and history)",
	"menu [page]\tfetch a page of the menu",
	"filter [text]\tfilter the loaded page by name",
	"category [name]\tshow only one category (empty = all)",
	"sort none|price-asc|price-desc\tsort the loaded page",
	"page <n>\tshow page n of the filtered view",
	"create -name N -category C -price P [-available=false]\tadd a menu item",
	"edit <id> [-name N] [-category C] [-price P] [-available=BOOL]\tupdate a menu item",
	"delete <id>\tdelete a menu item",
	"add <menu item id>\tput an item in the cart",
	"cart\tshow the cart",
	"place\tplace an order with the cart",
	"orders\tshow your order history",
	"pending\tshow your pending orders",
	"complete <order id>\tmark an order completed",
	"quit\texit",
}

var errUsage = errors.New("usage")

func usage(text string) error {
	return fmt.Errorf("%w: %s", errUsage, text)
}

func cmdHelp(_ context.Context, c *Console, _ []string) error {
	c.renderHelp(helpLines)
	return nil
}

func cmdRegister(ctx context.Context, c *Console, args []string) error {
	if len(args) != 2 {
		return usage("register <username> <password>")
	}
	msg, err := c.api.Register(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	c.notify(msg + ", you can log in now")
	return nil
}

func cmdLogin(ctx context.Context, c *Console, args []string) error {
	if len(args) != 2 {
		return usage("login <username> <password>")
	}
	sess, err := c.api.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	c.signOut()
	c.session = &sess
	c.notify("Login successful")

	orders, err := c.api.ListOrders(ctx, c.session)
	if err != nil {
		return err
	}
	c.store.Dispatch(clientstate.SetHistory{Orders: orders})
	return nil
}

func cmdLogout(_ context.Context, c *Console, _ []string) error {
	c.signOut()
	c.notify("Signed out")
	return nil
}

func cmdMenu(ctx context.Context, c *Console, args []string) error {
	page := c.serverPage
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return usage("menu [page]")
		}
		page = n
	}

	res, err := c.api.ListMenu(ctx, page, menuview.PageSize)
	if err != nil {
		return fmt.Errorf("Failed to fetch menu items: %w", err)
	}
	c.serverPage = res.CurrentPage
	c.serverTotalPages = res.TotalPages

	c.menu.SetItems(res.MenuItems)
	c.menu.SetPage(1)
	c.renderMenu()
	return nil
}

func cmdFilter(_ context.Context, c *Console, args []string) error {
	c.menu.SetFilter(strings.Join(args, " "))
	c.menu.SetPage(1)
	c.renderMenu()
	return nil
}

func cmdCategory(_ context.Context, c *Console, args []string) error {
	c.menu.SetCategory(strings.Join(args, " "))
	c.menu.SetPage(1)
	c.renderMenu()
	return nil
}

func cmdSort(_ context.Context, c *Console, args []string) error {
	if len(args) != 1 {
		return usage("sort none|price-asc|price-desc")
	}
	key, err := menuview.ParseSortKey(args[0])
	if err != nil {
		return err
	}
	c.menu.SetSort(key)
	c.renderMenu()
	return nil
}

func cmdPage(_ context.Context, c *Console, args []string) error {
	if len(args) != 1 {
		return usage("page <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return usage("page <n>")
	}
	c.menu.SetPage(n)
	c.renderMenu()
	return nil
}

func cmdCreate(ctx context.Context, c *Console, args []string) error {
	fs := newFlagSet("create")
	name := fs.String("name", "", "item name")
	category := fs.String("category", "", "category")
	price := fs.Float64("price", -1, "price")
	available := fs.Bool("available", true, "availability")
	if err := fs.Parse(args); err != nil {
		return usage("create -name N -category C -price P [-available=false]")
	}
	if *name == "" || *category == "" || *price < 0 {
		return usage("create -name N -category C -price P [-available=false]")
	}

	item, err := c.api.CreateMenuItem(ctx, client.MenuItemInput{
		Name:         *name,
		Category:     *category,
		Price:        *price,
		Availability: *available,
	})
	if err != nil {
		return fmt.Errorf("Failed to create menu item: %w", err)
	}
	c.notify(fmt.Sprintf("Menu item created successfully (%s)", item.ID))
	return nil
}

func cmdEdit(ctx context.Context, c *Console, args []string) error {
	if len(args) < 2 {
		return usage("edit <id> [-name N] [-category C] [-price P] [-available=BOOL]")
	}
	id := args[0]

	fs := newFlagSet("edit")
	name := fs.String("name", "", "item name")
	category := fs.String("category", "", "category")
	price := fs.Float64("price", 0, "price")
	available := fs.Bool("available", true, "availability")
	if err := fs.Parse(args[1:]); err != nil {
		return usage("edit <id> [-name N] [-category C] [-price P] [-available=BOOL]")
	}

	//指定されたflagだけ送る
	var patch client.MenuItemPatch
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "name":
			patch.Name = name
		case "category":
			patch.Category = category
		case "price":
			patch.Price = price
		case "available":
			patch.Availability = available
		}
	})

	item, err := c.api.UpdateMenuItem(ctx, id, patch)
	if err != nil {
		return fmt.Errorf("Failed to update menu item: %w", err)
	}
	c.notify(fmt.Sprintf("Menu item updated successfully (%s, %.2f)", item.Name, item.Price))
	return nil
}

func cmdDelete(ctx context.Context, c *Console, args []string) error {
	if len(args) != 1 {
		return usage("delete <id>")
	}
	if err := c.api.DeleteMenuItem(ctx, args[0]); err != nil {
		return fmt.Errorf("Failed to delete menu item: %w", err)
	}
	c.notify("Menu item deleted successfully")
	return nil
}

func cmdAdd(_ context.Context, c *Console, args []string) error {
	if len(args) != 1 {
		return usage("add <menu item id>")
	}
	item, ok := c.menu.Find(args[0])
	if !ok {
		return fmt.Errorf("no menu item %q on the loaded page (run 'menu' first)", args[0])
	}
	c.store.Dispatch(clientstate.AddToCart{Item: item})
	c.notify(item.Name + " added to cart")
	return nil
}

func cmdCart(_ context.Context, c *Console, _ []string) error {
	c.renderCart()
	return nil
}

func cmdPlace(ctx context.Context, c *Console, _ []string) error {
	order, err := c.store.PlaceOrder(ctx, c.api, c.session)
	if errors.Is(err, clientstate.ErrEmptyCart) {
		return errors.New("Cart is empty")
	}
	if err != nil {
		return err
	}
	c.notify(fmt.Sprintf("Order placed successfully (%s, total %.2f)", order.ID, order.TotalAmount))
	return nil
}

func cmdOrders(ctx context.Context, c *Console, _ []string) error {
	if err := c.refreshHistory(ctx); err != nil {
		return err
	}
	c.renderOrders(c.store.History())
	return nil
}

func cmdPending(ctx context.Context, c *Console, _ []string) error {
	if err := c.refreshHistory(ctx); err != nil {
		return err
	}
	c.renderOrders(clientstate.PendingOrders(c.store.History()))
	return nil
}

func cmdComplete(ctx context.Context, c *Console, args []string) error {
	if len(args) != 1 {
		return usage("complete <order id>")
	}
	if _, err := c.api.CompleteOrder(ctx, c.session, args[0]); err != nil {
		return fmt.Errorf("Failed to complete order: %w", err)
	}
	c.notify("Order completed successfully")
	return c.refreshHistory(ctx)
}

func (c *Console) refreshHistory(ctx context.Context) error {
	orders, err := c.api.ListOrders(ctx, c.session)
	if err != nil {
		return err
	}
	c.store.Dispatch(clientstate.SetHistory{Orders: orders})
	return nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
