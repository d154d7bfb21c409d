package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/idilsaglam/shopfront/internal/cart"
	"github.com/idilsaglam/shopfront/internal/catalog"
	"github.com/idilsaglam/shopfront/internal/config"
	"github.com/idilsaglam/shopfront/internal/logger"
	"github.com/idilsaglam/shopfront/internal/model"
	"github.com/idilsaglam/shopfront/internal/render"
	"github.com/idilsaglam/shopfront/internal/shop"
	"github.com/idilsaglam/shopfront/internal/store"
	"github.com/idilsaglam/shopfront/internal/store/jsonstore"
	"github.com/idilsaglam/shopfront/internal/store/memstore"
	"github.com/idilsaglam/shopfront/internal/store/sqlitestore"
	"github.com/idilsaglam/shopfront/internal/ui"
)

// Options carries what the root command resolved before dispatch.
type Options struct {
	Config *config.Options
	Log    *logger.Logger
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "catalog":
		if len(a) > 1 {
			ui.Fail("usage: shop catalog [all|phones|laptops|headphones|accessories]")
			return 2
		}
		f := model.FilterAll
		if len(a) == 1 {
			var err error
			if f, err = model.ParseFilter(a[0]); err != nil {
				ui.Fail("catalog: " + err.Error())
				return 2
			}
		}
		return doCatalog(opt, f)
	}

	// Everything below needs the cart.
	var run func(*shop.Session) int
	switch cmd {
	case "browse", "ls":
		run = func(s *shop.Session) int { return doBrowse(s, opt) }

	case "add", "rm":
		if len(a) != 1 {
			ui.Fail(fmt.Sprintf("usage: shop %s <product-id>", cmd))
			return 2
		}
		id, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail(cmd + ": not a number: " + a[0])
			return 2
		}
		if cmd == "add" {
			run = func(s *shop.Session) int { return doAdd(s, id) }
		} else {
			run = func(s *shop.Session) int { return doRemove(s, id) }
		}

	case "qty":
		if len(a) != 2 {
			ui.Fail("usage: shop qty <product-id> <delta>")
			return 2
		}
		id, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("qty: not a number: " + a[0])
			return 2
		}
		delta, err := strconv.Atoi(a[1])
		if err != nil {
			ui.Fail("qty: not a number: " + a[1])
			return 2
		}
		run = func(s *shop.Session) int { return doQuantity(s, id, delta) }

	case "cart":
		run = doCart

	case "checkout":
		run = doCheckout

	default:
		ui.Fail("unknown subcommand: " + cmd)
		fmt.Fprintln(os.Stderr)
		PrintHelp()
		return 2
	}

	session, closeFn, err := openSession(opt)
	if err != nil {
		ui.Fail("open cart: " + err.Error())
		return 1
	}
	defer func() {
		if err := closeFn(); err != nil {
			opt.Log.Warn("close store", zap.Error(err))
		}
	}()
	return run(session)
}

func PrintHelp() {
	fmt.Printf(`shop - a tiny terminal storefront

Usage:
  shop [flags] <subcommand> [args]

Subcommands:
  browse               Interactive storefront (default)
  catalog [filter]     Print products, optionally for one category
  add <id>             Add one of a product to the cart
  rm <id>              Remove a product from the cart
  qty <id> <delta>     Change a line's quantity (<= 0 removes it)
  cart                 Show the cart and its total
  checkout             Place the order and empty the cart

Flags:
  -data DIR  -store json|sqlite|memory  -theme classic|neon|mono
  -currency SYM  -feedback DURATION  -log-level LEVEL  -log-file PATH

Examples:
  shop catalog phones
  shop add 3
  shop qty 3 2
  shop checkout
`)
}

func openSlot(cfg *config.Options) (store.Slot, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Store {
	case config.StoreSQLite:
		s, err := sqlitestore.Open(cfg.SQLitePath())
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.StoreMemory:
		return memstore.New(), noop, nil
	case config.StoreJSON:
		return jsonstore.New(cfg.DataDir), noop, nil
	}
	return nil, nil, errors.New("unknown store " + strconv.Quote(cfg.Store))
}

func openSession(opt Options) (*shop.Session, func() error, error) {
	slot, closeFn, err := openSlot(opt.Config)
	if err != nil {
		return nil, nil, err
	}
	c := catalog.Default()
	st := cart.Open(slot, c, opt.Log)
	return shop.New(st, c.Products(), render.New(opt.Config.Currency), opt.Log), closeFn, nil
}
