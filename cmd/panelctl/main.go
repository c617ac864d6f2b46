// panelctl is the admin console for the event platform back office. It signs
// in against the panel API, keeps the session in a local store, and gates
// every screen-backed command through the same role checks the web panel
// applies.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/eventfest/panel/internal/panel/app"
	"github.com/eventfest/panel/pkg/panelsdk"
)

func main() {
	_ = godotenv.Load(".env")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := app.LoadConfig()
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "panelctl: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	application.OnSessionExpired(func() {
		fmt.Fprintln(os.Stderr, "session expired, sign in again")
	})

	ctx := context.Background()
	application.Resume(ctx)

	if err := run(ctx, application, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, app.ErrSignInRequired) {
			fmt.Fprintln(os.Stderr, "panelctl: sign in required (panelctl login)")
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "panelctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, application *app.Application, command string, args []string) error {
	switch command {
	case "login":
		return runLogin(ctx, application, args)
	case "logout":
		return application.Logout(ctx)
	case "whoami":
		return runWhoami(ctx, application)
	case "categories":
		return runCategories(ctx, application)
	case "cities":
		return runCities(ctx, application)
	case "events":
		return runEvents(ctx, application, args)
	case "approvals":
		return runApprovals(ctx, application, args)
	case "approve":
		return runApprove(ctx, application, args)
	case "reject":
		return runReject(ctx, application, args)
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func runLogin(ctx context.Context, application *app.Application, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		return errors.New("login requires -email")
	}

	password, err := readPassword()
	if err != nil {
		return err
	}

	user, err := application.Login(ctx, *email, password)
	if err != nil {
		return err
	}

	fmt.Printf("signed in as %s (%s)\n", user.Name, user.Email)
	if intended := application.Intended(); intended != "" {
		fmt.Printf("continue with: panelctl %s\n", intended)
	}
	return nil
}

func runWhoami(ctx context.Context, application *app.Application) error {
	user, role, err := application.Whoami(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s <%s> role=%d\n", user.Name, user.Email, role)
	return nil
}

func runCategories(ctx context.Context, application *app.Application) error {
	categories, err := application.Categories(ctx)
	if err != nil {
		return err
	}

	for _, c := range categories {
		fmt.Printf("%s\t%s\tsubcategories=%d\n", c.ID, c.Name, c.SubCategoryCount)
	}
	return nil
}

func runCities(ctx context.Context, application *app.Application) error {
	cities, err := application.Cities(ctx)
	if err != nil {
		return err
	}

	for _, c := range cities {
		fmt.Printf("%s\t%s\n", c.ID, c.City)
	}
	return nil
}

func runEvents(ctx context.Context, application *app.Application, args []string) error {
	fs := flag.NewFlagSet("events", flag.ContinueOnError)
	page := fs.Int("page", 1, "page number")
	limit := fs.Int("limit", 20, "page size")
	search := fs.String("search", "", "search term")
	city := fs.String("city", "", "filter by city id")
	category := fs.String("category", "", "filter by category id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := application.Events(ctx, panelsdk.EventQuery{
		Page:     *page,
		Limit:    *limit,
		Search:   *search,
		CityID:   *city,
		Category: *category,
	})
	if err != nil {
		return err
	}

	for _, e := range result.Events {
		fmt.Printf("%s\t%s\t%s\n", e.ID, e.Title, e.StartDate)
	}
	fmt.Printf("total: %d\n", result.Pagination.TotalRecords)
	return nil
}

func runApprovals(ctx context.Context, application *app.Application, args []string) error {
	fs := flag.NewFlagSet("approvals", flag.ContinueOnError)
	organiser := fs.Bool("organiser", true, "only organiser requests")
	if err := fs.Parse(args); err != nil {
		return err
	}

	approvals, err := application.Approvals(ctx, *organiser)
	if err != nil {
		return err
	}

	for _, a := range approvals {
		fmt.Printf("%s\t%s\t%s\t%s\n", a.ID, a.User.Name, a.Type, a.Status)
	}
	return nil
}

func runApprove(ctx context.Context, application *app.Application, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: panelctl approve <approval-id>")
	}
	return application.Approve(ctx, args[0])
}

func runReject(ctx context.Context, application *app.Application, args []string) error {
	fs := flag.NewFlagSet("reject", flag.ContinueOnError)
	reason := fs.String("reason", "", "rejection reason")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return errors.New("usage: panelctl reject [-reason ...] <approval-id>")
	}
	return application.Reject(ctx, fs.Arg(0), *reason)
}

func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		// Piped input, e.g. echo "$PASSWORD" | panelctl login -email ...
		var password string
		if _, err := fmt.Fscanln(os.Stdin, &password); err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return password, nil
	}

	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: panelctl <command> [flags]

session
  login -email <email>     sign in (password prompted)
  logout                   drop the local session
  whoami                   show the signed-in user

screens
  categories               list event categories
  cities                   list cities
  events [flags]           list events (-page -limit -search -city -category)
  approvals [-organiser]   list organiser requests
  approve <id>             approve an organiser request
  reject [-reason] <id>    reject an organiser request
`)
}
