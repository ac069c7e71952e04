package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/erpre/backoffice/internal/client"
	"github.com/erpre/backoffice/internal/domain/model"
	"github.com/erpre/backoffice/internal/server/http/dto"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "erpctl: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("erpctl", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	server := flags.String("server", envOr("ERPRE_SERVER", "http://localhost:8080"), "backoffice base URL")
	employeeID := flags.String("id", os.Getenv("ERPRE_EMPLOYEE_ID"), "employee id")
	password := flags.String("password", os.Getenv("ERPRE_PASSWORD"), "employee password")

	if err := flags.Parse(args); err != nil {
		return err
	}
	rest := flags.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: erpctl [flags] <prices|orders|price-submit|approve|reject|delete-prices|report> ...")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	api, err := client.NewHTTPClient(*server, logger)
	if err != nil {
		return err
	}

	if *employeeID == "" || *password == "" {
		return fmt.Errorf("employee id and password are required (flags or ERPRE_EMPLOYEE_ID/ERPRE_PASSWORD)")
	}
	session, err := api.Login(ctx, *employeeID, *password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer func() {
		logoutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = api.Logout(logoutCtx)
	}()

	switch rest[0] {
	case "prices":
		return listPrices(ctx, api, rest[1:], out)
	case "orders":
		return listOrders(ctx, api, rest[1:], out)
	case "price-submit":
		return submitPrice(ctx, api, rest[1:], out)
	case "approve":
		return bulkDecide(ctx, api, rest[1:], out, string(model.OrderStatusApproved))
	case "reject":
		return bulkDecide(ctx, api, rest[1:], out, string(model.OrderStatusRejected))
	case "delete-prices":
		return bulkDeletePrices(ctx, api, rest[1:], out)
	case "report":
		fmt.Fprintf(out, "signed in as %s (%s)\n", session.EmployeeID, session.Role)
		return report(ctx, api, rest[1:], out)
	default:
		return fmt.Errorf("unknown command %q", rest[0])
	}
}

func listPrices(ctx context.Context, api client.API, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("prices", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	customer := flags.Int64("customer", 0, "customer number")
	product := flags.String("product", "", "product code")
	search := flags.String("search", "", "customer name search text")
	status := flags.String("status", "", "active or deleted")
	page := flags.Int("page", 1, "page number")
	size := flags.Int("size", 20, "page size")
	if err := flags.Parse(args); err != nil {
		return err
	}

	result, err := api.Prices(ctx, client.PriceQuery{
		CustomerNo:  *customer,
		ProductCode: *product,
		Customer:    *search,
		Status:      *status,
		Page:        *page,
		Size:        *size,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NO\tCUSTOMER\tPRODUCT\tAMOUNT\tSTART\tEND\tDELETED")
	for _, p := range result.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\t%v\n",
			p.No, p.CustomerName, p.ProductName, p.Amount, p.StartDate, p.EndDate, p.Deleted)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "page %d/%d, %d records\n", result.Page, result.TotalPages, result.TotalCount)
	return nil
}

func listOrders(ctx context.Context, api client.API, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("orders", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	status := flags.String("status", "", "pending, approved or rejected")
	customer := flags.String("customer", "", "customer name search text")
	page := flags.Int("page", 1, "page number")
	size := flags.Int("size", 20, "page size")
	if err := flags.Parse(args); err != nil {
		return err
	}

	result, err := api.Orders(ctx, client.OrderQuery{
		Status:   *status,
		Customer: *customer,
		Page:     *page,
		Size:     *size,
	})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NO\tCUSTOMER\tEMPLOYEE\tSTATUS\tTOTAL\tCREATED")
	for _, o := range result.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\n",
			o.No, o.CustomerName, o.EmployeeName, o.Status, o.TotalAmount,
			o.CreatedAt.Format("2006-01-02 15:04"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "page %d/%d, %d orders\n", result.Page, result.TotalPages, result.TotalCount)
	return nil
}

func submitPrice(ctx context.Context, api client.API, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("price-submit", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	no := flags.Int64("no", 0, "price number to update, zero inserts")
	customer := flags.Int64("customer", 0, "customer number")
	product := flags.String("product", "", "product code")
	amount := flags.Int64("amount", 0, "price in KRW")
	start := flags.String("start", "", "start date yyyy-MM-dd")
	end := flags.String("end", "", "end date yyyy-MM-dd")
	yes := flags.Bool("yes", false, "confirm proposed changes without asking")
	if err := flags.Parse(args); err != nil {
		return err
	}

	startDate, err := model.ParseDate(*start)
	if err != nil {
		return err
	}
	endDate, err := model.ParseDate(*end)
	if err != nil {
		return err
	}

	confirmer := client.ConfirmerFunc(func(prompt string) bool {
		if *yes {
			fmt.Fprintln(out, prompt, "(confirmed by -yes)")
			return true
		}
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	})

	editor := client.NewPriceEditor(api, confirmer)
	err = editor.Submit(ctx, dto.PriceRequest{
		No:          *no,
		CustomerNo:  *customer,
		ProductCode: *product,
		Amount:      *amount,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "price submitted")
	return nil
}

func bulkDecide(ctx context.Context, api client.API, args []string, out io.Writer, status string) error {
	nos, err := parseIDs(args)
	if err != nil {
		return err
	}
	result := client.BulkOrderDecision(ctx, api, nos, status)
	fmt.Fprintf(out, "%s: %d succeeded, %d failed\n", status, result.Succeeded, result.Failed)
	return nil
}

func bulkDeletePrices(ctx context.Context, api client.API, args []string, out io.Writer) error {
	nos, err := parseIDs(args)
	if err != nil {
		return err
	}
	result := client.BulkDeletePrices(ctx, api, nos)
	fmt.Fprintf(out, "deleted: %d succeeded, %d failed\n", result.Succeeded, result.Failed)
	return nil
}

func report(ctx context.Context, api client.API, args []string, out io.Writer) error {
	flags := flag.NewFlagSet("report", flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	year := flags.Int("year", time.Now().Year(), "report year")
	if err := flags.Parse(args); err != nil {
		return err
	}

	rows, err := api.MonthlyReport(ctx, *year)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MONTH\tORDERS\tTOTAL")
	for _, r := range rows {
		fmt.Fprintf(w, "%04d-%02d\t%d\t%s\n", r.Year, r.Month, r.Orders, r.FormattedAmount)
	}
	return w.Flush()
}

func parseIDs(args []string) ([]int64, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("at least one id is required")
	}
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid id %q", part)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
