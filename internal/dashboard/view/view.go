// Package view holds the dashboard screens. Each view loads its data on
// Mount, can be refreshed while mounted and renders plain text tables.
package view

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"ecoscope/internal/dashboard/client"
	"ecoscope/internal/dashboard/session"
	"ecoscope/internal/domain/entity"
	"ecoscope/pkg/msg"
	"ecoscope/pkg/util/numberutils"
)

var (
	ErrLoginRequired = errors.New("login required")
	ErrAdminRequired = errors.New("admin role required")
)

type View interface {
	Title() string
	Mount(ctx context.Context) error
	Unmount()
	Render(w io.Writer) error
}

// Refresher is implemented by views that can reload while mounted.
type Refresher interface {
	Refresh(ctx context.Context)
}

// Deps is what the views share. District selects the forecast, crop and
// slope location.
type Deps struct {
	Clients      *client.Clients
	Session      *session.Session
	Notifier     Notifier
	PollInterval time.Duration
	District     entity.District
}

func formatRupiah(v float64) string {
	return numberutils.FormatRupiah(v)
}

// renderStatus prints one line when a load is in flight or the last one
// failed. The data below it is then the last good result.
func renderStatus[T any](w io.Writer, state State[T]) {
	switch {
	case state.Err != "":
		fmt.Fprintf(w, "! %s\n", msg.GetMessage("dashboard.load-failed", state.Err))
	case state.Loading:
		fmt.Fprintln(w, msg.GetMessage("dashboard.loading"))
	}
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// requireAdmin returns the message to show instead of the view, or "".
func requireAdmin(s *session.Session) (string, error) {
	if !s.IsLoggedIn() {
		return msg.GetMessage("dashboard.login-required"), ErrLoginRequired
	}
	if !s.IsAdmin() {
		return msg.GetMessage("dashboard.admin-required"), ErrAdminRequired
	}
	return "", nil
}
