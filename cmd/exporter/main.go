package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"rockguard/internal/config"
	"rockguard/internal/models"
	"rockguard/internal/repository"

	"github.com/spf13/cobra"
)

type options struct {
	configDir string
	outPath   string
	since     string
	id        int64
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "exporter",
		Short:        "Export contact enquiries to CSV",
		Long:         `Reads the enquiries stored by the RockGuard server and writes them as CSV, oldest first.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.configDir, "config", "configs", "Directory holding app.env")
	cmd.Flags().StringVarP(&opts.outPath, "out", "o", "-", "Output file, - for stdout")
	cmd.Flags().StringVar(&opts.since, "since", "", "Only enquiries newer than a duration (72h) or a date (2024-03-01)")
	cmd.Flags().Int64Var(&opts.id, "id", 0, "Export the single enquiry with this id")
	cmd.MarkFlagsMutuallyExclusive("id", "since")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runExport(cmd *cobra.Command, opts options) (err error) {
	from, err := parseSince(opts.since, time.Now())
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(opts.configDir)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	repo, err := repository.Open(ctx, cfg.DBSource)
	if err != nil {
		return err
	}
	defer repo.Close()

	msgs, err := load(ctx, repo, opts.id, from)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.outPath != "-" {
		f, createErr := os.Create(opts.outPath)
		if createErr != nil {
			return fmt.Errorf("failed to create %s: %w", opts.outPath, createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to close %s: %w", opts.outPath, closeErr)
			}
		}()
		out = f
	}

	if err = writeCSV(out, msgs); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d enquiries\n", len(msgs))
	return nil
}

// load returns the enquiry with id, or every enquiry since from when id is zero.
func load(ctx context.Context, repo repository.ContactRepository, id int64, from time.Time) ([]models.ContactMessage, error) {
	if id == 0 {
		return repo.ListContactMessages(ctx, from)
	}
	msg, err := repo.FindContactMessage(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("no enquiry with id %d", id)
		}
		return nil, err
	}
	return []models.ContactMessage{*msg}, nil
}

// parseSince accepts an empty string (everything), a Go duration counted
// back from now, or a YYYY-MM-DD date in UTC.
func parseSince(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		if d < 0 {
			return time.Time{}, fmt.Errorf("--since must not be negative: %s", s)
		}
		return now.Add(-d), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--since %q is neither a duration nor a date", s)
	}
	return t, nil
}

var header = []string{"id", "created_at", "first_name", "last_name", "email", "company", "message"}

func writeCSV(w io.Writer, msgs []models.ContactMessage) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, m := range msgs {
		record := []string{
			strconv.FormatInt(m.ID, 10),
			m.CreatedAt.UTC().Format(time.RFC3339),
			safeCell(m.FirstName),
			safeCell(m.LastName),
			safeCell(m.Email),
			safeCell(m.Company),
			safeCell(m.Message),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write enquiry %d: %w", m.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// safeCell quotes submitted text that a spreadsheet would evaluate as a formula.
func safeCell(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}
