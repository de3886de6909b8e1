package main

import (
	"github.com/eshop-next/internal/config"
	"github.com/eshop-next/internal/logger"
	"github.com/eshop-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加供应商
	suppliers := []models.Supplier{
		{Name: "极光数码", IsActive: true},
		{Name: "山海生活馆", IsActive: true},
		{Name: "青禾文创", IsActive: true},
	}

	supplierIDs := make(map[string]uint)
	for _, sup := range suppliers {
		var existing models.Supplier
		if err := models.DB.Where("name = ?", sup.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&sup).Error; err != nil {
				stdLog.Printf("Failed to create supplier %s: %v", sup.Name, err)
				continue
			}
			stdLog.Printf("Created supplier: %s", sup.Name)
			supplierIDs[sup.Name] = sup.ID
		} else {
			stdLog.Printf("Supplier already exists: %s", existing.Name)
			supplierIDs[existing.Name] = existing.ID
		}
	}

	// 添加商品
	products := []models.Product{
		{
			SupplierID:  supplierIDs["极光数码"],
			Title:       "便携蓝牙音箱",
			Description: "小巧机身，支持 12 小时续航与 IPX5 防水。",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(199.00)),
			Quantity:    120,
			ParametersJSON: models.JSON(map[string]interface{}{
				"color":   "midnight",
				"battery": "12h",
			}),
			IsActive: true,
		},
		{
			SupplierID:  supplierIDs["极光数码"],
			Title:       "65W 氮化镓充电器",
			Description: "双口快充，兼容主流笔记本与手机协议。",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(129.00)),
			Quantity:    300,
			ParametersJSON: models.JSON(map[string]interface{}{
				"ports": 2,
				"power": "65W",
			}),
			IsActive: true,
		},
		{
			SupplierID:  supplierIDs["山海生活馆"],
			Title:       "保温随行杯 500ml",
			Description: "316 不锈钢内胆，12 小时保温。",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(89.00)),
			Quantity:    200,
			ParametersJSON: models.JSON(map[string]interface{}{
				"capacity": "500ml",
			}),
			IsActive: true,
		},
		{
			SupplierID:  supplierIDs["青禾文创"],
			Title:       "手账笔记本套装",
			Description: "含三本方格内页与贴纸，适合日常记录。",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(45.50)),
			Quantity:    80,
			ParametersJSON: models.JSON(map[string]interface{}{
				"pages": 192,
			}),
			IsActive: true,
		},
	}

	for _, prod := range products {
		if prod.SupplierID == 0 {
			stdLog.Printf("Skip product %s: supplier missing", prod.Title)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("title = ?", prod.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Title, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Title)
			}
		} else {
			stdLog.Printf("Product already exists: %s", existing.Title)
		}
	}

	stdLog.Printf("Seed finished")
}
