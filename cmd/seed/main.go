package main

import (
	"fmt"
	"os"

	"github.com/Modeva-Ecommerce/modeva-analytics/config"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	_ = godotenv.Load()
}

var seedFlags struct {
	Days      int
	MaxPerDay int
	Seed      int64
	Migrate   bool
}

// seedCmd fills local databases with demo orders, customers and CMS content
// so the dashboard has something to show.
// Usage: go run ./cmd/seed --days 400 --migrate
var seedCmd = &cobra.Command{
	Use:          "seed",
	Short:        "Seed demo analytics data into the local databases",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Println("════════════════════════════════════════════════════════════")
		fmt.Println("MODEVA ANALYTICS - Demo Data Seeder")
		fmt.Println("════════════════════════════════════════════════════════════")

		if config.IsProduction() {
			return fmt.Errorf("refusing to seed with APP_ENV=production")
		}

		config.InitLogger()
		config.InitDB()
		defer config.CloseDB()

		if seedFlags.Migrate {
			if err := migrate(config.EcommerceGorm, config.CmsGorm); err != nil {
				return err
			}
			logrus.Info("✓ Tables migrated")
		}

		data := generate(seedFlags.Seed, seedFlags.Days, seedFlags.MaxPerDay, todayUTC())
		if err := insert(config.EcommerceGorm, config.CmsGorm, data); err != nil {
			return err
		}

		fmt.Println()
		fmt.Println("✅ Demo data created")
		fmt.Printf("Orders:       %d\n", len(data.Orders))
		fmt.Printf("Order items:  %d\n", len(data.Items))
		fmt.Printf("Customers:    %d\n", len(data.Users))
		fmt.Printf("Blog posts:   %d\n", len(data.BlogPosts))
		fmt.Printf("Messages:     %d\n", len(data.Messages))
		fmt.Printf("Design reqs:  %d\n", len(data.Designs))
		fmt.Printf("Applications: %d\n", len(data.Careers))
		return nil
	},
}

func main() {
	seedCmd.Flags().IntVar(&seedFlags.Days, "days", 400, "number of days of history to generate")
	seedCmd.Flags().IntVar(&seedFlags.MaxPerDay, "max-orders", 6, "maximum orders per day")
	seedCmd.Flags().Int64Var(&seedFlags.Seed, "seed", 42, "random seed")
	seedCmd.Flags().BoolVar(&seedFlags.Migrate, "migrate", false, "create the tables first")

	if err := seedCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
