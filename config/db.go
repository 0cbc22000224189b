package config

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-frontdesk/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "frontdesk_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase inserts the reference data a fresh install needs: a default
// employee account, the room-type catalog, the deposit-percentage setting and
// a couple of chargeable services.
func SeedDatabase() {
	var empCount int64
	DB.Model(&models.Employee{}).Count(&empCount)
	if empCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default employee password: %v", err)
		} else {
			emp := models.Employee{
				FullName: "Front Desk Admin",
				Username: "admin@hotel.local",
				Password: string(hash),
				Role:     "manager",
			}
			if err := DB.Create(&emp).Error; err != nil {
				log.Printf("warning: failed to create default employee: %v", err)
			} else {
				log.Println("Default employee seeded")
			}
		}
	}

	var rtCount int64
	DB.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{Name: "Standard", Description: "Standard Room", Capacity: 2, BedCount: 1, BasePrice: 500000},
			{Name: "Superior", Description: "Superior Room", Capacity: 3, BedCount: 2, BasePrice: 800000},
			{Name: "Deluxe", Description: "Deluxe Room", Capacity: 4, BedCount: 2, BasePrice: 1200000},
			{Name: "Suite", Description: "Suite Room", Capacity: 5, BedCount: 3, BasePrice: 2000000},
		}
		DB.Create(&roomTypes)
		log.Println("RoomTypes seeded")
	}

	var settingCount int64
	DB.Model(&models.AppSetting{}).Where("setting_key = ?", "deposit_percentage").Count(&settingCount)
	if settingCount == 0 {
		value, _ := json.Marshal(map[string]int{"percentage": 30})
		setting := models.AppSetting{Key: "deposit_percentage", Value: datatypes.JSON(value)}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed deposit_percentage: %v", err)
		} else {
			log.Println("deposit_percentage seeded")
		}
	}

	var svcCount int64
	DB.Model(&models.HotelService{}).Count(&svcCount)
	if svcCount == 0 {
		hotelServices := []models.HotelService{
			{Name: "Laundry", Price: 50000, Unit: "kg"},
			{Name: "Minibar", Price: 30000, Unit: "item"},
			{Name: "Airport pickup", Price: 250000, Unit: "trip"},
		}
		DB.Create(&hotelServices)
		log.Println("HotelServices seeded")
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order.
	if err := DB.AutoMigrate(
		&models.Employee{},
		&models.AppSetting{},
		&models.RoomType{},
		&models.Customer{},
		&models.Room{},
		&models.Booking{},
		&models.BookingRoom{},
		&models.RoomTransfer{},
		&models.Promotion{},
		&models.CustomerPromotion{},
		&models.HotelService{},
		&models.ServiceUsage{},
		&models.ActivityLog{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
