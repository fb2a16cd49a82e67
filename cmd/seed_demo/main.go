package main

import (
	"fmt"
	"log"
	"time"

	"github.com/adrirubim/laserpack/internal/config"
	"github.com/adrirubim/laserpack/internal/database"
	"github.com/adrirubim/laserpack/internal/models"
	"github.com/adrirubim/laserpack/internal/utils"
)

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }
func b(v bool) *bool       { return &v }

func main() {
	fmt.Println("🌱 LaserPack Demo Data Seeder")
	fmt.Println("=" + string(make([]rune, 60)))

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	fmt.Println("✅ Connected to database")
	fmt.Println()

	// Run migrations first
	fmt.Println("🔨 Running database migrations...")
	err = db.AutoMigrate(
		&models.UserAuth{},
		&models.Article{},
		&models.Offer{},
		&models.Category{},
		&models.PalletType{},
		&models.PalletSheet{},
		&models.QualityModel{},
		&models.Material{},
		&models.Machinery{},
		&models.MachineryParameter{},
		&models.CriticalIssue{},
		&models.PackagingInstruction{},
		&models.OperatingInstruction{},
		&models.PalletizingInstruction{},
		&models.CheckMaterial{},
		&models.ProductionOrder{},
	)
	if err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	fmt.Println("✅ Migrations complete")
	fmt.Println()

	// Check if data already exists
	var articleCount int64
	db.Model(&models.Article{}).Count(&articleCount)
	if articleCount > 0 {
		fmt.Printf("⚠️  Database already has %d articles. Clear it first? (y/N): ", articleCount)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("❌ Aborted. Database not modified.")
			return
		}

		// Clear existing data
		fmt.Println("🗑️  Clearing existing data...")
		db.Exec("TRUNCATE TABLE production_orders CASCADE")
		db.Exec("TRUNCATE TABLE check_materials CASCADE")
		db.Exec("TRUNCATE TABLE palletizing_instructions CASCADE")
		db.Exec("TRUNCATE TABLE operating_instructions CASCADE")
		db.Exec("TRUNCATE TABLE packaging_instructions CASCADE")
		db.Exec("TRUNCATE TABLE critical_issues CASCADE")
		db.Exec("TRUNCATE TABLE machinery_parameters CASCADE")
		db.Exec("TRUNCATE TABLE machinery CASCADE")
		db.Exec("TRUNCATE TABLE materials CASCADE")
		db.Exec("TRUNCATE TABLE articles CASCADE")
		db.Exec("TRUNCATE TABLE offers CASCADE")
		fmt.Println("✅ Data cleared")
	}

	fmt.Println()
	fmt.Println("📦 Creating demo data...")
	fmt.Println()

	// 1. Demo operator
	fmt.Println("👤 Creating demo operator...")
	hash, err := utils.HashPassword("demo1234")
	if err != nil {
		log.Fatalf("❌ Failed to hash demo password: %v", err)
	}
	operator := models.UserAuth{
		Username: "demo",
		Email:    "demo@laserpack.local",
		Password: hash,
		Name:     "Demo Operator",
	}
	if err := db.Create(&operator).Error; err != nil {
		log.Fatalf("❌ Failed to create operator: %v", err)
	}
	fmt.Println("   demo@laserpack.local / demo1234")

	// 2. Reference records
	fmt.Println("📇 Creating reference records...")
	offer := models.Offer{Code: "OFF-2024-015", Description: s("Frame kit, spring campaign")}
	db.Create(&offer)
	category := models.Category{Code: "CAT-MET", Description: s("Metal components")}
	db.Create(&category)
	palletType := models.PalletType{Code: "EPAL", Description: s("Euro pallet 80x120")}
	db.Create(&palletType)

	// 3. A fully populated article
	fmt.Println("📄 Creating demo article...")
	approvedAt := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)
	article := models.Article{
		CodArticleLAS: "ART-100",
		Description:   s("Steel bracket, powder coated"),
		ClientCode:    s("CLI-ROSSI"),
		LengthCM:      f(25),
		DepthCM:       f(12),
		HeightCM:      f(4.5),
		NetWeightKG:   f(0.82),
		GrossWeightKG: f(0.95),
		OfferID:       &offer.ID,
		CategoryID:    &category.ID,
		PalletTypeID:  &palletType.ID,
		ProductionApproval: models.Approval{
			Approved:   b(true),
			ApprovedBy: s("M. Bianchi"),
			ApprovedAt: &approvedAt,
		},
		Materials: []models.Material{
			{Code: "MAT-STL-01", Description: s("Steel sheet 1.5mm")},
			{Code: "MAT-PWD-RAL9005", Description: s("Powder coat RAL 9005")},
		},
		Machinery: []models.Machinery{
			{
				Code:        "LSR-02",
				Description: s("Fiber laser cutter"),
				Parameters: []models.MachineryParameter{
					{Name: "power_pct", Value: s("85")},
					{Name: "speed_mm_s", Value: s("120")},
				},
			},
		},
		PackagingInstructions: []models.PackagingInstruction{
			{Description: s("Single unit in PE bag, 10 per carton")},
		},
		PalletizingInstructions: []models.PalletizingInstruction{
			{
				LengthCM:      f(40),
				DepthCM:       f(30),
				HeightCM:      f(20),
				UnitsPerNeck:  f(10),
				PlanPackaging: f(8),
				PalletPlans:   f(5),
			},
		},
		Orders: []models.ProductionOrder{
			{Number: "PO-24-0815", Quantity: f(5000), WorkedQuantity: f(1250), Status: models.OrderStatusInProgress},
		},
	}
	if err := db.Create(&article).Error; err != nil {
		log.Fatalf("❌ Failed to create article: %v", err)
	}

	// 4. A sparse article: most sections of its detail page stay hidden
	sparse := models.Article{
		CodArticleLAS: "ART-101",
		Description:   s("Prototype housing"),
	}
	if err := db.Create(&sparse).Error; err != nil {
		log.Fatalf("❌ Failed to create sparse article: %v", err)
	}

	fmt.Println()
	fmt.Printf("✅ Done: 2 articles (%s, %s)\n", article.CodArticleLAS, sparse.CodArticleLAS)
}
