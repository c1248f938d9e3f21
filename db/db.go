package db

import (
	"blog/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the configured database and returns the handle. MySQL is
// used when a DSN is configured, otherwise the SQLite file.
func Connect(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.MySQLDSN != "" {
		dialector = mysql.Open(cfg.MySQLDSN)
	} else {
		dialector = sqlite.Open(cfg.SQLiteFile)
	}
	return gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		TranslateError:         true,
	})
}
