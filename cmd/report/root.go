package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Modeva-Ecommerce/modeva-analytics/config"
	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"github.com/Modeva-Ecommerce/modeva-analytics/services"
	"github.com/Modeva-Ecommerce/modeva-analytics/services/analytics"
	"github.com/Modeva-Ecommerce/modeva-analytics/services/report"
	"github.com/Modeva-Ecommerce/modeva-analytics/utils/timerange"
	"github.com/spf13/cobra"
)

var flags struct {
	Granularity  string
	Value        string
	CompareValue string
	Locale       string
	Format       string
	Out          string
	Engine       string
	Timeout      time.Duration

	AdminID  string
	Email    string
	TokenTTL time.Duration
}

var rootCmd = &cobra.Command{
	Use:           "report",
	Short:         "Modeva analytics from the command line",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the analytics snapshot of a day, month or year",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sel, err := selection()
		if err != nil {
			return err
		}
		agg, done := buildAggregator()
		defer done()

		ctx, cancel := context.WithTimeout(cmd.Context(), flags.Timeout)
		defer cancel()
		snap, err := agg.Aggregate(ctx, sel)
		if err != nil {
			return err
		}
		return renderSnapshot(cmd.OutOrStdout(), snap, options())
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare a period with another of the same granularity (default: the previous one)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		primary, err := selection()
		if err != nil {
			return err
		}
		comparison, err := comparisonSelection(primary, flags.CompareValue)
		if err != nil {
			return err
		}

		agg, done := buildAggregator()
		defer done()

		ctx, cancel := context.WithTimeout(cmd.Context(), flags.Timeout)
		defer cancel()
		result, err := agg.Compare(ctx, primary, comparison)
		if err != nil {
			return err
		}
		return renderComparison(cmd.OutOrStdout(), result, options())
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a CSV, spreadsheet or PDF report",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sel, err := selection()
		if err != nil {
			return err
		}
		exporter, err := report.ForFormat(flags.Format, flags.Engine)
		if err != nil {
			return err
		}

		agg, done := buildAggregator()
		defer done()

		ctx, cancel := context.WithTimeout(cmd.Context(), flags.Timeout)
		defer cancel()
		snap, err := agg.Aggregate(ctx, sel)
		if err != nil {
			return err
		}
		artifact, err := exporter.Export(snap, options())
		if err != nil {
			return err
		}

		out := flags.Out
		if out == "" {
			out = artifact.Filename
		}
		if err := os.WriteFile(out, artifact.Body, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ wrote %s (%d bytes)\n", out, len(artifact.Body))
		return nil
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an admin token for calling the dashboard endpoints locally",
	RunE: func(cmd *cobra.Command, _ []string) error {
		token, err := services.GetJWTService().IssueAdminJWT(flags.AdminID, flags.Email, flags.TokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	cfg := config.LoadAnalytics()

	for _, c := range []*cobra.Command{snapshotCmd, compareCmd, exportCmd} {
		c.Flags().StringVarP(&flags.Granularity, "granularity", "g", "month", "day, month or year")
		c.Flags().StringVarP(&flags.Value, "value", "v", "", "YYYY-MM-DD, YYYY-MM or YYYY (default: current period)")
		c.Flags().StringVar(&flags.Locale, "locale", cfg.Locale, "label and number locale")
		c.Flags().DurationVar(&flags.Timeout, "timeout", 30*time.Second, "database timeout")
	}
	compareCmd.Flags().StringVar(&flags.CompareValue, "compare-value", "", "comparison period (default: previous period)")
	exportCmd.Flags().StringVarP(&flags.Format, "format", "f", report.FormatCSV, "csv, xls or pdf")
	exportCmd.Flags().StringVarP(&flags.Out, "out", "o", "", "output path (default: analytics-<value>.<ext>)")
	exportCmd.Flags().StringVar(&flags.Engine, "pdf-engine", cfg.PDFEngine, "minimal or maroto")

	tokenCmd.Flags().StringVar(&flags.AdminID, "admin-id", "", "admin ID claim")
	tokenCmd.Flags().StringVar(&flags.Email, "email", "", "admin email claim")
	tokenCmd.Flags().DurationVar(&flags.TokenTTL, "ttl", 24*time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("admin-id")
	_ = tokenCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(snapshotCmd, compareCmd, exportCmd, tokenCmd)
}

// selection builds the requested period, defaulting to the current one.
func selection() (models.TimeFilterValue, error) {
	g := models.Granularity(flags.Granularity)
	switch g {
	case models.GranularityDay, models.GranularityMonth, models.GranularityYear:
	default:
		return models.TimeFilterValue{}, &timerange.ValidationError{Field: "granularity", Value: flags.Granularity, Reason: "must be one of day, month, year"}
	}
	if flags.Value == "" {
		return timerange.Current(g, time.Now()), nil
	}
	sel := models.TimeFilterValue{Granularity: g, Value: flags.Value}
	return sel, timerange.Validate(sel)
}

// comparisonSelection returns the period primary is compared against: value
// at primary's granularity when given, otherwise the previous period.
func comparisonSelection(primary models.TimeFilterValue, value string) (models.TimeFilterValue, error) {
	if value == "" {
		return timerange.Previous(primary)
	}
	comparison := models.TimeFilterValue{Granularity: primary.Granularity, Value: value}
	if err := timerange.Validate(comparison); err != nil {
		return models.TimeFilterValue{}, err
	}
	return comparison, nil
}

func options() report.Options {
	cfg := config.LoadAnalytics()
	return report.Options{
		Locale:   flags.Locale,
		Currency: report.CurrencyFormatter(flags.Locale, cfg.Currency),
		Number:   report.NumberFormatter(flags.Locale),
	}
}

func buildAggregator() (*analytics.Aggregator, func()) {
	config.InitLogger()
	config.InitDB()
	source := analytics.NewPostgresSource(config.EcommerceGorm, config.EcommerceDB, config.CmsGorm, config.CmsDB)
	return analytics.NewAggregator(source, analytics.WithLocale(flags.Locale)), config.CloseDB
}
