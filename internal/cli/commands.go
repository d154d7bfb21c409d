package cli

import (
	"fmt"

	"github.com/idilsaglam/shopfront/internal/catalog"
	"github.com/idilsaglam/shopfront/internal/model"
	"github.com/idilsaglam/shopfront/internal/render"
	"github.com/idilsaglam/shopfront/internal/shop"
	"github.com/idilsaglam/shopfront/internal/tui"
	"github.com/idilsaglam/shopfront/internal/ui"
)

func doBrowse(s *shop.Session, opt Options) int {
	if err := tui.Run(s, opt.Config.Feedback, opt.Log); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doCatalog(opt Options, f model.Filter) int {
	r := render.New(opt.Config.Currency)
	for c := range r.Catalog(catalog.Default().Products(), f) {
		fmt.Println(c.String())
	}
	return 0
}

func doAdd(s *shop.Session, id int) int {
	added, err := s.Store().Add(id)
	if err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	if !added {
		fmt.Println(ui.Current().Muted.Render(fmt.Sprintf("no product with id %d", id)))
		fmt.Println(ui.Current().Muted.Render("Hint: run `shop catalog` to see product ids"))
		return 0
	}
	ui.OK("added")
	printSummary(s)
	return 0
}

func doRemove(s *shop.Session, id int) int {
	if err := s.Remove(id); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("removed")
	printSummary(s)
	return 0
}

func doQuantity(s *shop.Session, id, delta int) int {
	if err := s.ChangeQuantity(id, delta); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.OK("updated")
	printSummary(s)
	return 0
}

func doCart(s *shop.Session) int {
	v := s.View()
	lines := make([]string, 0, len(v.Lines)+2)
	for _, l := range v.Lines {
		lines = append(lines, l.String())
	}
	lines = append(lines, "", v.Summary.String())
	ui.Panel(lines)
	return 0
}

func doCheckout(s *shop.Session) int {
	r, ok, err := s.Checkout()
	if err != nil {
		ui.Fail("checkout: " + err.Error())
		return 1
	}
	if !ok {
		fmt.Println(ui.Current().Muted.Render("cart is empty"))
		return 0
	}
	ui.OK("Order placed successfully! Total: " + r.Total)
	return 0
}

func printSummary(s *shop.Session) {
	fmt.Println(s.View().Summary.String())
}
