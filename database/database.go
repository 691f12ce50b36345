package database

import (
	"fmt"
	"log"

	"moneybook/config"
	"moneybook/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
func Init(cfg *config.Config) error {
	// 构建 MySQL DSN 连接字符串
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	logMode := logger.Warn
	if cfg.Server.Mode != "release" {
		logMode = logger.Info
	}

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logMode),
	})
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	// 设置连接池参数
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Transaction{},
		&models.Budget{},
		&models.Reminder{},
		&models.Notification{},
		&models.UserSettings{},
		&models.PasswordReset{},
	); err != nil {
		return err
	}

	log.Println("数据库初始化成功")
	return nil
}

// 新用户的默认支出类别（颜色与前端 CSS 保持一致）
var defaultExpenseCategories = []models.Category{
	{Name: "餐饮", Kind: models.KindExpense, Sort: 10, Color: "#ef4444"}, // 红色
	{Name: "交通", Kind: models.KindExpense, Sort: 20, Color: "#3b82f6"}, // 蓝色
	{Name: "购物", Kind: models.KindExpense, Sort: 30, Color: "#a855f7"}, // 紫色
	{Name: "娱乐", Kind: models.KindExpense, Sort: 40, Color: "#ec4899"}, // 粉色
	{Name: "医疗", Kind: models.KindExpense, Sort: 50, Color: "#10b981"}, // 绿色
	{Name: "教育", Kind: models.KindExpense, Sort: 60, Color: "#f59e0b"}, // 橙色
	{Name: "住房", Kind: models.KindExpense, Sort: 70, Color: "#14b8a6"}, // 青色
	{Name: "其他", Kind: models.KindExpense, Sort: 80, Color: "#64748b"}, // 灰色
}

// 新用户的默认收入类别
var defaultIncomeCategories = []models.Category{
	{Name: "工资", Kind: models.KindIncome, Sort: 10, Color: "#10b981"},
	{Name: "奖金", Kind: models.KindIncome, Sort: 20, Color: "#3b82f6"},
	{Name: "理财", Kind: models.KindIncome, Sort: 30, Color: "#a855f7"},
	{Name: "兼职", Kind: models.KindIncome, Sort: 40, Color: "#f59e0b"},
	{Name: "其他", Kind: models.KindIncome, Sort: 50, Color: "#64748b"},
}

// SeedUserDefaults 为新注册用户初始化默认类别与偏好设置
func SeedUserDefaults(userID uint) error {
	var cats []models.Category
	for _, c := range defaultExpenseCategories {
		c.UserID = userID
		cats = append(cats, c)
	}
	for _, c := range defaultIncomeCategories {
		c.UserID = userID
		cats = append(cats, c)
	}
	if err := DB.Create(&cats).Error; err != nil {
		return err
	}

	settings := models.DefaultUserSettings(userID)
	return DB.Create(&settings).Error
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
