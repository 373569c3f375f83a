package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/aussiebroadwan/inventory/internal/inventory/domain"
	"github.com/aussiebroadwan/inventory/internal/inventory/report"
	"github.com/aussiebroadwan/inventory/internal/inventory/service"
)

// List shows the materials table, the terminal version of the tree view.
func (a *App) List(ctx context.Context) error {
	items, err := a.svc.Materials.List(ctx)
	if err != nil {
		a.fail("Error", err)
		return err
	}
	if len(items) == 0 {
		a.notify("Materials", "No materials found.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(report.Columns, "\t"))
	for _, m := range items {
		fmt.Fprintln(tw, strings.Join(report.Record(m), "\t"))
	}
	return tw.Flush()
}

func (a *App) Find(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.notify("Warning", "Give a barcode to look up")
		return nil
	}

	m, err := a.svc.Materials.FindByBarcode(ctx, args[0])
	if err != nil {
		a.fail("Error", err)
		return err
	}
	a.printMaterial(m)
	return nil
}

func (a *App) Add(ctx context.Context) error {
	in, err := a.readMaterial(domain.Material{}, false)
	if err != nil {
		return a.inputErr(err)
	}

	_, err = a.svc.Materials.Add(ctx, in)
	switch {
	case err == nil:
		a.notify("Success", "Material added successfully")
		return a.List(ctx)
	case errors.Is(err, service.ErrAlreadyExists):
		a.notify("Error", "Material already exists")
	default:
		a.fail("Error", err)
	}
	return err
}

func (a *App) Update(ctx context.Context, args []string) error {
	id, ok := parseID(args)
	if !ok {
		a.notify("Warning", "Select a material to update")
		return nil
	}

	current, err := a.svc.Materials.Get(ctx, id)
	if err != nil {
		a.fail("Error", err)
		return err
	}

	in, err := a.readMaterial(current, true)
	if err != nil {
		return a.inputErr(err)
	}

	_, err = a.svc.Materials.Update(ctx, id, in)
	switch {
	case err == nil:
		a.notify("Success", "Material updated successfully")
		return a.List(ctx)
	case errors.Is(err, service.ErrAlreadyExists):
		a.notify("Error", "Material already exists")
	default:
		a.fail("Error", err)
	}
	return err
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, ok := parseID(args)
	if !ok {
		a.notify("Warning", "Select a material to delete")
		return nil
	}

	if err := a.svc.Materials.Delete(ctx, id); err != nil {
		a.fail("Error", err)
		return err
	}
	a.notify("Success", "Material deleted successfully")
	return a.List(ctx)
}

// readMaterial prompts for the four editable fields. With keep set, an
// empty answer keeps the value from current.
func (a *App) readMaterial(current domain.Material, keep bool) (domain.MaterialInput, error) {
	ask := func(prompt, cur string) (string, error) {
		if keep {
			return promptDefault(a.in, a.out, prompt, cur)
		}
		return promptText(a.in, a.out, prompt)
	}

	var in domain.MaterialInput
	var err error
	if in.Name, err = ask("Material name", current.Name); err != nil {
		return in, err
	}
	if in.Barcode, err = ask("Barcode", current.Barcode); err != nil {
		return in, err
	}
	qty, err := ask("Quantity", strconv.FormatInt(current.Quantity, 10))
	if err != nil {
		return in, err
	}
	if in.Quantity, err = parseQuantity(qty); err != nil {
		return in, err
	}
	if in.Unit, err = ask("Unit", current.Unit); err != nil {
		return in, err
	}
	return in, nil
}

func (a *App) inputErr(err error) error {
	if errors.Is(err, errNotInteger) {
		a.notify("Error", "Quantity must be a whole number")
	}
	return err
}

func (a *App) printMaterial(m domain.Material) {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for i, c := range report.Columns {
		fmt.Fprintf(tw, "%s\t%s\n", c, report.Record(m)[i])
	}
	_ = tw.Flush()
}
