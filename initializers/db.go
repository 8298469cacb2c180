package initializers

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectToDB opens the database selected by DB_DRIVER. SQLite is the
// default so the service runs with zero setup; set DB_DRIVER=mysql and a
// DSN for production.
func ConnectToDB() {
	driver := os.Getenv("DB_DRIVER")
	dsn := os.Getenv("DB_DSN")

	var err error
	switch driver {
	case "mysql":
		DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
	case "sqlite", "":
		if dsn == "" {
			dsn = "freshmart.db"
		}
		DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	default:
		log.Fatalf("Unsupported DB_DRIVER %q", driver)
	}

	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	log.Println("Connected to database.")
}
