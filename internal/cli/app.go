// Package cli implements the terminal dashboard. Protected views sit behind
// the auth gate: every navigation re-evaluates the guard against the current
// auth snapshot before anything renders.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"greenchain/internal/auth"
	"greenchain/internal/dataset"
	"greenchain/internal/guard"
	"greenchain/internal/notify"
)

// App is the interactive terminal dashboard.
type App struct {
	gate *auth.Gate
	in   *bufio.Reader
	out  io.Writer
}

// NewApp creates the dashboard app around an already-hydrated gate.
func NewApp(gate *auth.Gate, in io.Reader, out io.Writer) *App {
	return &App{gate: gate, in: bufio.NewReader(in), out: out}
}

// ToastSink renders notifications as transient styled lines on w.
func ToastSink(w io.Writer) notify.Sink {
	return notify.SinkFunc(func(n notify.Notification) {
		style := successStyle
		if n.Variant == notify.VariantDestructive {
			style = errorStyle
		}
		fmt.Fprintf(w, "%s %s\n", style.Render(n.Title+":"), n.Description)
	})
}

func (a *App) prompt() string {
	if user := a.gate.User(); user != nil {
		return fmt.Sprintf("greenchain (%s)> ", user.Email)
	}
	return "greenchain> "
}

// Run drives the read-eval-print loop until EOF or quit.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, headerStyle.Render("GreenChain SCM"))
	fmt.Fprintln(a.out, subHeaderStyle.Render("type 'help' for available commands"))

	for {
		fmt.Fprint(a.out, a.prompt())
		line, err := a.in.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		arg := ""
		if len(parts) > 1 {
			arg = strings.Join(parts[1:], " ")
		}
		if quit := a.Dispatch(ctx, parts[0], arg); quit {
			fmt.Fprintln(a.out, "Bye!")
			return
		}
	}
}

// Dispatch executes one command. It returns true when the loop should exit.
func (a *App) Dispatch(ctx context.Context, cmd, arg string) bool {
	switch cmd {
	case "help":
		a.printHelp()
	case "login":
		a.login(ctx)
	case "signup":
		a.signup(ctx)
	case "logout":
		a.gate.Logout()
	case "whoami":
		a.whoami()
	case "dashboard":
		a.protected("dashboard", a.renderDashboard)
	case "inventory":
		a.protected("inventory", func() { a.renderInventory(arg) })
	case "orders":
		a.protected("orders", func() { a.renderOrders(arg) })
	case "suppliers":
		a.protected("suppliers", func() { a.renderSuppliers(arg) })
	case "reports":
		a.protected("reports", a.renderReports)
	case "faq":
		a.protected("faq", a.renderFAQs)
	case "exit", "quit":
		return true
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return false
}

func (a *App) printHelp() {
	if a.gate.IsAuthenticated() {
		fmt.Fprintln(a.out, "Available commands: dashboard, inventory [search], orders [search], suppliers [search], reports, faq, whoami, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, signup, help, exit")
	}
}

// protected runs render only when the guard allows it.
func (a *App) protected(view string, render func()) {
	switch guard.Decide(a.gate.IsLoading(), a.gate.IsAuthenticated()) {
	case guard.Pending:
		fmt.Fprintln(a.out, mutedStyle.Render("Loading..."))
	case guard.Redirect:
		fmt.Fprintf(a.out, "%s\n", warnStyle.Render("Please log in to view "+view+"."))
	case guard.Render:
		render()
	}
}

func (a *App) login(ctx context.Context) {
	email, err := promptLine(a.in, "Email", a.out)
	if err != nil {
		return
	}
	password, err := promptPassword(a.out)
	if err != nil {
		return
	}
	a.gate.Login(ctx, email, password)
}

func (a *App) signup(ctx context.Context) {
	name, err := promptLine(a.in, "Name", a.out)
	if err != nil {
		return
	}
	email, err := promptLine(a.in, "Email", a.out)
	if err != nil {
		return
	}
	password, err := promptPassword(a.out)
	if err != nil {
		return
	}
	a.gate.Signup(ctx, name, email, password)
}

func (a *App) whoami() {
	user := a.gate.User()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	fmt.Fprintf(a.out, "%s <%s> (%s)\n", user.Name, user.Email, user.Role)
}

func (a *App) renderDashboard() {
	user := a.gate.User()
	fmt.Fprintln(a.out, headerStyle.Render("Dashboard"))
	fmt.Fprintln(a.out, subHeaderStyle.Render(fmt.Sprintf("Welcome back, %s", user.Name)))

	fmt.Fprintln(a.out, tableHeaderStyle.Render("KPI                    CURRENT   TARGET"))
	for _, kpi := range dataset.KPIs() {
		fmt.Fprintf(a.out, "%-22s %7.0f  %7.0f %s\n", kpi.Name, kpi.Current, kpi.Target, kpi.Unit)
	}

	trend := dataset.ScoreTrend()
	latest := trend[len(trend)-1]
	fmt.Fprintf(a.out, "Sustainability score: %d (%s)\n", latest.Score, latest.Month)
}

func (a *App) renderInventory(search string) {
	items := dataset.FilterInventory(dataset.Inventory(), dataset.InventoryFilter{Search: search})
	fmt.Fprintln(a.out, headerStyle.Render("Inventory"))
	fmt.Fprintln(a.out, tableHeaderStyle.Render("ID      NAME                            STOCK  STATUS        SCORE"))
	for _, item := range items {
		fmt.Fprintf(a.out, "%-7s %-30s %6d  %-12s %5d\n",
			item.ID, item.Name, item.StockLevel, statusStyle(item.Status).Render(item.Status), item.SustainabilityScore)
	}
	fmt.Fprintf(a.out, "%d item(s)\n", len(items))
}

func (a *App) renderOrders(search string) {
	orders := dataset.FilterOrders(dataset.Orders(), search)
	fmt.Fprintln(a.out, headerStyle.Render("Orders"))
	fmt.Fprintln(a.out, tableHeaderStyle.Render("ID             CUSTOMER                  AMOUNT      STATUS       FOOTPRINT"))
	for _, o := range orders {
		fmt.Fprintf(a.out, "%-14s %-24s %10.2f  %-11s %s\n",
			o.ID, o.Customer, o.Amount, statusStyle(o.Status).Render(o.Status), statusStyle(o.CarbonFootprint).Render(o.CarbonFootprint))
	}
	fmt.Fprintf(a.out, "%d order(s)\n", len(orders))
}

func (a *App) renderSuppliers(search string) {
	suppliers := dataset.FilterSuppliers(dataset.Suppliers(), dataset.SupplierFilter{Search: search})
	fmt.Fprintln(a.out, headerStyle.Render("Suppliers"))
	fmt.Fprintln(a.out, tableHeaderStyle.Render("ID      NAME                        LOCATION           RATING  COMPLIANCE"))
	for _, s := range suppliers {
		fmt.Fprintf(a.out, "%-7s %-27s %-18s %5.1f  %s\n",
			s.ID, s.Name, s.Location, s.Rating, statusStyle(s.ComplianceStatus).Render(s.ComplianceStatus))
	}
	fmt.Fprintf(a.out, "%d supplier(s)\n", len(suppliers))
}

func (a *App) renderReports() {
	fmt.Fprintln(a.out, headerStyle.Render("Reports"))
	for _, r := range dataset.Reports() {
		fmt.Fprintf(a.out, "%s  %-34s %-10s %s\n", r.ID, r.Title, r.Type, mutedStyle.Render(r.Date))
	}
}

func (a *App) renderFAQs() {
	fmt.Fprintln(a.out, headerStyle.Render("Help"))
	for _, f := range dataset.FAQs() {
		fmt.Fprintln(a.out, tableHeaderStyle.Render("Q: "+f.Question))
		fmt.Fprintln(a.out, "A: "+f.Answer)
	}
}
