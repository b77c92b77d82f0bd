package view

import (
	"context"
	"errors"
	"fmt"
	"io"

	"ecoscope/internal/dashboard/client"
	"ecoscope/internal/domain/entity"
	"ecoscope/internal/domain/model"
	"ecoscope/pkg/msg"
)

// guard remembers why an admin view refused to mount.
type guard struct {
	denied string
}

func (g *guard) check(deps Deps) error {
	message, err := requireAdmin(deps.Session)
	g.denied = message
	return err
}

func (g *guard) render(w io.Writer) (bool, error) {
	if g.denied == "" {
		return false, nil
	}
	_, err := fmt.Fprintln(w, g.denied)
	return true, err
}

type UserManagementView struct {
	guard
	deps  Deps
	users *Loader[model.Page[entity.User]]
}

func NewUserManagementView(deps Deps, filter model.UserFilter) *UserManagementView {
	return &UserManagementView{
		deps: deps,
		users: NewLoader(func(ctx context.Context) client.Result[model.Page[entity.User]] {
			return deps.Clients.User.List(ctx, deps.Session.Token(), filter)
		}, deps.Notifier),
	}
}

func (v *UserManagementView) Title() string { return "Manajemen Pengguna" }

func (v *UserManagementView) Mount(ctx context.Context) error {
	if err := v.check(v.deps); err != nil {
		return err
	}
	v.Refresh(ctx)
	return nil
}

func (v *UserManagementView) Refresh(ctx context.Context) {
	if v.denied != "" {
		return
	}
	v.users.Load(ctx)
}

func (v *UserManagementView) Unmount() {}

func (v *UserManagementView) Render(w io.Writer) error {
	if done, err := v.render(w); done {
		return err
	}

	state := v.users.State()
	page := state.Data
	fmt.Fprintf(w, "Pengguna (%d)\n", state.Total)
	renderStatus(w, state)
	fmt.Fprintln(w)
	table := newTable(w)
	fmt.Fprintln(table, "ID\tNAMA\tEMAIL\tPERAN\tLOGIN TERAKHIR")
	for _, u := range page.Content {
		last := "-"
		if u.LastLogin != nil {
			last = u.LastLogin.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(table, "%d\t%s\t%s\t%s\t%s\n", u.UserID, u.Name, u.Email, u.Role, last)
	}
	if err := table.Flush(); err != nil {
		return err
	}
	if page.TotalPages > 1 {
		more := ""
		if !page.Last() {
			more = ", masih ada halaman berikutnya"
		}
		fmt.Fprintf(w, "\nHalaman %d dari %d%s\n", page.Number+1, page.TotalPages, more)
	}
	return nil
}

// PriceManagementView is the admin price table with a manual sync.
type PriceManagementView struct {
	guard
	deps   Deps
	prices *Loader[[]entity.MarketPrice]
}

func NewPriceManagementView(deps Deps, filter model.MarketFilter) *PriceManagementView {
	return &PriceManagementView{
		deps: deps,
		prices: NewLoader(func(ctx context.Context) client.Result[[]entity.MarketPrice] {
			return deps.Clients.Market.List(ctx, filter)
		}, deps.Notifier),
	}
}

func (v *PriceManagementView) Title() string { return "Manajemen Harga" }

func (v *PriceManagementView) Mount(ctx context.Context) error {
	if err := v.check(v.deps); err != nil {
		return err
	}
	v.Refresh(ctx)
	return nil
}

func (v *PriceManagementView) Refresh(ctx context.Context) {
	if v.denied != "" {
		return
	}
	v.prices.Load(ctx)
}

func (v *PriceManagementView) Unmount() {}

// Sync asks the backend to pull the market source, then reloads the table.
func (v *PriceManagementView) Sync(ctx context.Context) error {
	if err := v.check(v.deps); err != nil {
		return err
	}

	result := v.deps.Clients.Market.Sync(ctx, v.deps.Session.Token())
	if !result.OK {
		v.notify(result.Message)
		return errors.New(result.Message)
	}
	v.notify(msg.GetMessage("dashboard.sync-done", result.Data.TotalFetched, result.Data.TotalSaved))
	v.prices.Load(ctx)
	return nil
}

func (v *PriceManagementView) notify(message string) {
	if v.deps.Notifier != nil {
		v.deps.Notifier.Notify(message)
	}
}

func (v *PriceManagementView) Render(w io.Writer) error {
	if done, err := v.render(w); done {
		return err
	}

	state := v.prices.State()
	fmt.Fprintf(w, "Kelola harga (%d data)\n\n", state.Total)
	table := newTable(w)
	fmt.Fprintln(table, "ID\tKOMODITAS\tHARGA\tSATUAN\tPASAR\tTANGGAL\tSUMBER")
	for _, p := range state.Data {
		fmt.Fprintf(table, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.PriceID, p.CommodityName, formatRupiah(p.Price), p.Unit, p.MarketLocation, p.Date, p.Source)
	}
	return table.Flush()
}
