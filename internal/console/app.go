package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/memorybox/backend/internal/client"
	"github.com/memorybox/backend/internal/model"
)

// App is the interactive admin console. All calls share one session, so an
// expired access token is refreshed transparently while the console runs.
type App struct {
	session *client.Session
	api     *client.APIClient
	reader  *bufio.Reader
	out     io.Writer
	user    string
}

func NewApp(baseURL string, in io.Reader, out io.Writer, opts ...client.SessionOption) *App {
	a := &App{
		reader: bufio.NewReader(in),
		out:    out,
	}
	opts = append(opts, client.WithReauthRequired(a.reauthRequired))
	a.session = client.NewSession(baseURL, opts...)
	a.api = client.NewAPIClient(a.session)
	return a
}

func (a *App) Run(ctx context.Context) {
	defer a.session.Close()
	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.user
	}
	return "logged out"
}

// reauthRequired is registered as the session hook.
func (a *App) reauthRequired() {
	fmt.Fprintln(a.out, "Session expired, please login again.")
	a.user = ""
}

func (a *App) Login(ctx context.Context, args []string) error {
	username := ""
	if len(args) > 0 {
		username = args[0]
	} else {
		var err error
		if username, err = ReadLine(a.reader, a.out, "Username: "); err != nil {
			return err
		}
	}
	password, err := ReadPassword(a.reader, a.out, "Password: ")
	if err != nil {
		return err
	}

	admin, err := a.session.Login(ctx, username, password)
	if err != nil {
		return err
	}
	a.user = admin.Username
	fmt.Fprintf(a.out, "Logged in as %s\n", admin.Username)
	return nil
}

func (a *App) Logout(ctx context.Context, _ []string) error {
	err := a.session.Logout(ctx)
	a.user = ""
	fmt.Fprintln(a.out, "Logged out.")
	return err
}

func (a *App) Verify(ctx context.Context, _ []string) error {
	admin, err := a.api.Verify(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Token valid for %s (%s)\n", admin.Username, admin.ID)
	return nil
}

func (a *App) Photos(ctx context.Context, args []string) error {
	uploader := strings.Join(args, " ")
	photos, err := a.api.ListPhotos(ctx, "newest", uploader)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUPLOADER\tDATE\tURL")
	for _, p := range photos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.UploaderName, p.UploadDate.Format("2006-01-02 15:04"), p.URL)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d photo(s)\n", len(photos))
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	switch len(args) {
	case 0:
		return errors.New("usage: delete <photo-id> [photo-id...]")
	case 1:
		if err := a.api.DeletePhoto(ctx, args[0]); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Photo deleted.")
		return nil
	default:
		n, err := a.api.BulkDeletePhotos(ctx, args)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%d photo(s) deleted.\n", n)
		return nil
	}
}

func (a *App) ToggleUpload(ctx context.Context, _ []string) error {
	enabled, err := a.api.ToggleUpload(ctx)
	if err != nil {
		return err
	}
	if enabled {
		fmt.Fprintln(a.out, "Uploads are now open.")
	} else {
		fmt.Fprintln(a.out, "Uploads are now closed.")
	}
	return nil
}

func (a *App) Stats(ctx context.Context, _ []string) error {
	photos, err := a.api.PhotoStats(ctx)
	if err != nil {
		return err
	}
	memories, err := a.api.MemoryStats(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Photos: %d from %d uploader(s)\n", photos.TotalPhotos, photos.TotalUploaders)
	for i, u := range photos.TopUploaders {
		fmt.Fprintf(a.out, "  %d. %s (%d)\n", i+1, u.Name, u.Count)
	}
	fmt.Fprintf(a.out, "Memories: %d total, %d this week\n", memories.Total, memories.Recent)
	return nil
}

func (a *App) Memories(ctx context.Context, _ []string) error {
	memories, err := a.api.ListMemories(ctx, "newest")
	if err != nil {
		return err
	}
	for _, m := range memories {
		fmt.Fprintf(a.out, "[%s] %s (%s)\n  %s\n", m.ID, m.GuestName, m.CreatedAt.Format("2006-01-02"), m.Message)
	}
	return nil
}

func (a *App) DeleteMemory(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: forget <memory-id>")
	}
	if err := a.api.DeleteMemory(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Memory deleted.")
	return nil
}

func (a *App) Settings(ctx context.Context, _ []string) error {
	s, err := a.api.GetSettings(ctx)
	if err != nil {
		return err
	}
	printSettings(a.out, s)
	return nil
}

// Rename sets the couple names shown on the event page.
func (a *App) Rename(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: rename <couple names>")
	}
	names := strings.Join(args, " ")
	s, err := a.api.UpdateSettings(ctx, model.SettingsUpdate{EventInfo: &model.EventInfoUpdate{CoupleNames: &names}})
	if err != nil {
		return err
	}
	printSettings(a.out, s)
	return nil
}

func (a *App) QRCode(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: qrcode <url>")
	}
	res, err := a.api.GenerateQRCode(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "QR code for %s (%s)\n%s\n", res.URL, res.EventInfo.CoupleNames, res.QRCode)
	return nil
}

func printSettings(w io.Writer, s *model.Settings) {
	date := "not set"
	if s.EventInfo.Date != nil {
		date = s.EventInfo.Date.Format("2006-01-02")
	}
	fmt.Fprintf(w, "Couple:   %s\nDate:     %s\nLocation: %s\nUploads:  %t\n",
		s.EventInfo.CoupleNames, date, s.EventInfo.Location, s.UploadEnabled)
}
