package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/everli/internal/client/client"
	"github.com/dmitrijs2005/everli/internal/client/models"
	"github.com/dmitrijs2005/everli/internal/client/services"
	"github.com/dmitrijs2005/everli/internal/common"
)

// Login builds a session client from the configured credentials, prompting
// for the missing ones, and signs in.
func (a *App) Login(ctx context.Context) error {
	if a.isLoggedIn() {
		printlnFn("Already signed in")
		return nil
	}

	email := a.config.Email
	if email == "" {
		var err error
		if email, err = GetSimpleText(a.reader, "Enter email", a.out); err != nil {
			a.log.Error(ctx, "reading email", "error", err)
			return err
		}
	}

	password := a.config.Password
	if password == "" {
		pw, err := GetPassword(a.out)
		if err != nil {
			a.log.Error(ctx, "reading password", "error", err)
			return err
		}
		password = string(pw)
		common.WipeByteArray(pw)
	}

	c, err := a.newClient(client.Credentials{Email: email, Password: password})
	if err != nil {
		a.log.Error(ctx, "login unsuccessful", "error", err)
		return err
	}
	if err := c.Authenticate(ctx); err != nil {
		a.log.Error(ctx, "login unsuccessful", "error", err)
		return err
	}

	a.config.Email = email
	a.client = c
	a.slots = services.NewSlotService(c, a.log)

	printlnFn("Login successful")
	return nil
}

func (a *App) Init(ctx context.Context) error {
	if err := a.client.ResolveLocation(ctx); err != nil {
		a.log.Error(ctx, "resolving location", "error", err)
		return err
	}
	printlnFn("Location:", a.client.Location())
	return nil
}

func (a *App) Stores(ctx context.Context, args []string) error {
	stores, err := a.slots.Stores(ctx, a.location(args, 0))
	if err != nil {
		a.log.Error(ctx, "listing stores", "error", err)
		return err
	}
	return a.printStores(stores)
}

func (a *App) Availability(ctx context.Context, args []string) error {
	store, days, err := a.slots.StoreAvailability(ctx, a.location(args, 1), args[0])
	if err != nil {
		a.log.Error(ctx, "listing availability", "store", args[0], "error", err)
		return err
	}
	fmt.Fprintf(a.out, "%s (%s)\n", store.Name, store.ID)
	return a.printAvailability(days)
}

func (a *App) Earliest(ctx context.Context, args []string) error {
	slots, err := a.slots.EarliestSlots(ctx, a.location(args, 0))
	if err != nil {
		a.log.Error(ctx, "listing earliest slots", "error", err)
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STORE\tNAME\tDATE\tTIME\tCOST")
	for _, s := range slots {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", s.Store.ID, s.Store.Name, s.Date, s.Slot.Time, formatCost(s.Slot.Cost))
	}
	return tw.Flush()
}

func (a *App) WhoAmI(ctx context.Context) error {
	fmt.Fprintf(a.out, "email: %s\nuser id: %s\nlocation: %s\n",
		a.config.Email, orDash(a.client.UserID()), orDash(a.client.Location()))
	return nil
}

func (a *App) printStores(stores []models.Store) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCITY\tADDRESS\tLOCATION\tNEW")
	for _, s := range stores {
		isNew := "-"
		if s.IsNew != nil {
			isNew = fmt.Sprintf("%d", *s.IsNew)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Name, orDashPtr(s.City), orDashPtr(s.Address), orDash(s.Location()), isNew)
	}
	return tw.Flush()
}

func (a *App) printAvailability(days []models.Availability) error {
	for _, d := range days {
		if len(d.Slots) == 0 {
			fmt.Fprintf(a.out, "%s  no slots\n", d.Date)
			continue
		}
		fmt.Fprintf(a.out, "%s\n", d.Date)
		for _, s := range d.Slots {
			fmt.Fprintf(a.out, "  %s  %s\n", s.Time, formatCost(s.Cost))
		}
	}
	return nil
}

func formatCost(cost float64) string {
	return fmt.Sprintf("%.2f €", cost)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func orDashPtr(s *string) string {
	if s == nil {
		return "-"
	}
	return orDash(*s)
}
