package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const ddl = `
CREATE TABLE IF NOT EXISTS session_carts (
  id CHAR(36) NOT NULL,
  session_id VARCHAR(64) NOT NULL,
  items JSON NOT NULL,
  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
  PRIMARY KEY (id),
  UNIQUE KEY ux_session_carts_session_id (session_id),
  KEY ix_session_carts_updated_at (updated_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`

func main() {
	_ = godotenv.Load()

	dsn := flag.String("dsn", os.Getenv("DB_DSN"), "MySQL DSN")
	printOnly := flag.Bool("print", false, "Print the DDL and exit")
	flag.Parse()

	if *printOnly {
		os.Stdout.WriteString(ddl)
		return
	}
	if *dsn == "" {
		log.Fatal("DB_DSN not set and -dsn not given")
	}

	db, err := gorm.Open(mysql.Open(*dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get DB: %v", err)
	}
	defer sqlDB.Close()

	if _, err := sqlDB.Exec(ddl); err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}
	log.Println("session_carts table ready")
}
