// Package console は1プロセス1セッションの対話型クライアント。
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"foodorder/internal/client"
	"foodorder/internal/clientstate"
	"foodorder/internal/domain/model"
	"foodorder/internal/menuview"

	"github.com/sirupsen/logrus"
)

const prompt = "food> "

// サーバーAPI（client.Client が満たす）
type API interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (client.Session, error)
	ListMenu(ctx context.Context, page, limit int) (client.MenuPage, error)
	CreateMenuItem(ctx context.Context, in client.MenuItemInput) (model.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, patch client.MenuItemPatch) (model.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
	PlaceOrder(ctx context.Context, sess *client.Session, in client.OrderRequest) (model.Order, error)
	ListOrders(ctx context.Context, sess *client.Session) ([]model.Order, error)
	CompleteOrder(ctx context.Context, sess *client.Session, orderID string) (model.Order, error)
}

type Console struct {
	api API
	in  io.Reader
	out io.Writer
	log logrus.FieldLogger

	store   *clientstate.Store
	menu    *menuview.State
	session *client.Session

	//サーバー側のページ
	serverPage       int
	serverTotalPages int
}

func New(api API, in io.Reader, out io.Writer, log logrus.FieldLogger) *Console {
	return &Console{
		api:        api,
		in:         in,
		out:        out,
		log:        log,
		store:      clientstate.NewStore(),
		menu:       menuview.NewState(),
		serverPage: 1,
	}
}

// 入力が尽きるか quit まで回す
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "Food ordering console. Type 'help' for commands.")

	sc := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, prompt)
		if !sc.Scan() {
			fmt.Fprintln(c.out)
			return sc.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if quit := c.Exec(ctx, sc.Text()); quit {
			return nil
		}
	}
}

// 1行を実行する。quit なら true。
func (c *Console) Exec(ctx context.Context, line string) bool {
	args, err := splitArgs(line)
	if err != nil {
		c.fail(err.Error())
		return false
	}
	if len(args) == 0 {
		return false
	}

	name, rest := strings.ToLower(args[0]), args[1:]
	if name == "quit" || name == "exit" {
		return true
	}

	cmd, ok := commands[name]
	if !ok {
		c.fail(fmt.Sprintf("unknown command %q (try 'help')", name))
		return false
	}
	if cmd.auth && c.session == nil {
		c.fail("Please log in first")
		return false
	}

	if err := cmd.run(ctx, c, rest); err != nil {
		c.handleError(err)
	}
	return false
}

func (c *Console) handleError(err error) {
	if client.IsUnauthorized(err) {
		c.signOut()
		c.fail("Session expired, please log in again")
		return
	}
	c.log.WithError(err).Debug("command failed")
	c.fail(err.Error())
}

func (c *Console) signOut() {
	c.session = nil
	c.store.Dispatch(clientstate.SignOut{})
}

// 一時通知
func (c *Console) notify(msg string) {
	fmt.Fprintf(c.out, "+ %s\n", msg)
}

func (c *Console) fail(msg string) {
	fmt.Fprintf(c.out, "! %s\n", msg)
}
