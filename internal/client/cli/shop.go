package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// Home lists all packages. With BootstrapOnFocus the stored session is
// re-checked first, the way a screen regaining focus would.
func (a *App) Home(ctx context.Context) error {
	if a.config.BootstrapOnFocus {
		a.auth.Restore(ctx)
	}

	pkgs, err := a.catalog.ListPackages(ctx)
	if err != nil {
		return err
	}
	a.printPackages(pkgs)
	return nil
}

func (a *App) Search(ctx context.Context, query string) error {
	pkgs, err := a.catalog.SearchPackages(ctx, query)
	if err != nil {
		return err
	}
	a.printPackages(pkgs)
	return nil
}

func (a *App) Brand(ctx context.Context, brandID string) error {
	pkgs, err := a.catalog.FilterByBrand(ctx, brandID)
	if err != nil {
		return err
	}
	a.printPackages(pkgs)
	return nil
}

func (a *App) History(ctx context.Context, clear bool) error {
	if clear {
		if err := a.catalog.ClearSearchHistory(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Search history cleared")
		return nil
	}

	history, err := a.catalog.SearchHistory(ctx)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Fprintln(a.out, "No recent searches")
		return nil
	}
	for i, q := range history {
		fmt.Fprintf(a.out, "%2d. %s\n", i+1, q)
	}
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	p, err := a.catalog.GetPackage(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s [%s]\n", p.Name(), p.ID)
	fmt.Fprintf(a.out, "  price:     %s\n", formatVND(p.TotalPriceDiscount))
	if p.Discount > 0 {
		fmt.Fprintf(a.out, "  was:       %s (-%g%%)\n", formatVND(p.TotalPrice), p.Discount)
	}
	fmt.Fprintf(a.out, "  shipments: %d\n", p.NumberOfShipment)
	for _, item := range p.Products {
		pr := item.Product
		fmt.Fprintf(a.out, "  - %s x%d, %s", pr.Name, item.Quantity, formatVND(pr.Price))
		if pr.Brand.Name != "" {
			fmt.Fprintf(a.out, ", %s", pr.Brand.Name)
		}
		fmt.Fprintln(a.out)
		if pr.ProductImage != "" {
			fmt.Fprintf(a.out, "    image: %s\n", pr.ProductImage)
		}
	}
	return nil
}

func (a *App) Order(ctx context.Context, id string, quantity int) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	o, err := a.orders.PlaceOrder(ctx, id, quantity)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Order %s placed, total %s\n", o.ID, formatVND(o.Total))
	return nil
}

func (a *App) Orders(ctx context.Context) error {
	if !a.isLoggedIn() {
		return errNotLoggedIn
	}

	orders, err := a.orders.ListOrders(ctx)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders yet")
		return nil
	}
	for _, o := range orders {
		fmt.Fprintf(a.out, "%s  package %s x%d  %s  %s\n", o.ID, o.PackageID, o.Quantity, formatVND(o.Total), o.Status)
	}
	return nil
}

func (a *App) printPackages(pkgs []models.Package) {
	if len(pkgs) == 0 {
		fmt.Fprintln(a.out, "No packages found")
		return
	}
	for _, p := range pkgs {
		fmt.Fprintf(a.out, "%s  %s  %s\n", p.ID, p.Name(), formatVND(p.TotalPriceDiscount))
	}
}
