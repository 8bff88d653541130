package console

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"foodorder/internal/domain/model"
)

func (c *Console) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
}

func (c *Console) renderHelp(lines []string) {
	tw := c.table()
	for _, l := range lines {
		fmt.Fprintln(tw, "  "+l)
	}
	_ = tw.Flush()
}

func (c *Console) renderMenu() {
	v := c.menu.View()
	q := c.menu.Query()

	if len(v.Items) == 0 {
		fmt.Fprintln(c.out, "(no menu items)")
	} else {
		tw := c.table()
		fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tAVAILABLE")
		for _, it := range v.Items {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\n", it.ID, it.Name, it.Category, it.Price, yesNo(it.Availability))
		}
		_ = tw.Flush()
	}

	sortKey := string(q.Sort)
	if sortKey == "" {
		sortKey = "none"
	}
	fmt.Fprintf(c.out, "view page %d/%d  server page %d/%d  filter=%q category=%q sort=%s\n",
		v.Page, v.TotalPages, c.serverPage, c.serverTotalPages, q.Filter, q.Category, sortKey)
	if cats := c.menu.Categories(); len(cats) > 0 {
		fmt.Fprintf(c.out, "categories: %s\n", strings.Join(cats, ", "))
	}
}

func (c *Console) renderCart() {
	lines := c.store.Cart()
	if len(lines) == 0 {
		fmt.Fprintln(c.out, "(cart is empty)")
		return
	}

	tw := c.table()
	fmt.Fprintln(tw, "ITEM\tPRICE\tQTY\tSUBTOTAL")
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%.2f\t%d\t%s\n", l.Item.Name, l.Item.Price, l.Quantity, l.Subtotal().StringFixed(2))
	}
	_ = tw.Flush()
	fmt.Fprintf(c.out, "total: %s\n", c.store.Total().StringFixed(2))
}

func (c *Console) renderOrders(orders []model.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(c.out, "(no orders)")
		return
	}

	tw := c.table()
	fmt.Fprintln(tw, "ORDER\tSTATUS\tTOTAL\tPLACED\tITEMS")
	for _, o := range orders {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%s\t%s\n",
			o.ID, statusLabel(o.Status), o.TotalAmount, o.CreatedAt.Local().Format("2006-01-02 15:04"), itemSummary(o.Items))
	}
	_ = tw.Flush()
}

func itemSummary(items []model.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s x%d", it.Name, it.Quantity))
	}
	return strings.Join(parts, ", ")
}

// pending -> Pending
func statusLabel(s model.OrderStatus) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
