package main

import (
	"log"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/acmeshop/catalog/config"
	"github.com/acmeshop/catalog/database"
	"github.com/acmeshop/catalog/models"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Bootstrap tool for the product catalog database",
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the catalog schema",
	Run: func(cmd *cobra.Command, args []string) {
		db := mustConnect()
		if err := database.Migrate(db); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		log.Println("schema is up to date")
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a few sample products for local development",
	Run: func(cmd *cobra.Command, args []string) {
		db := mustConnect()
		if err := database.Migrate(db); err != nil {
			log.Fatalf("migration failed: %v", err)
		}

		repo := models.NewProductsRepository(db)
		samples := []models.Product{
			{Name: "Fedora", Description: "A red hat", Price: decimal.NewFromFloat(12.50), Available: true, Category: models.CategoryCloths},
			{Name: "Hammer", Description: "16oz claw hammer", Price: decimal.NewFromFloat(23.99), Available: true, Category: models.CategoryTools},
			{Name: "Apples", Description: "Bag of Granny Smiths", Price: decimal.NewFromFloat(4.25), Available: false, Category: models.CategoryFood},
		}
		for i := range samples {
			if err := repo.Create(&samples[i]); err != nil {
				log.Fatalf("seed failed: %v", err)
			}
			log.Printf("created %s", samples[i].String())
		}
	},
}

func mustConnect() *gorm.DB {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return db
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
