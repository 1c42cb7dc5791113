package db

import (
	"fmt"

	"github.com/monginis/export-api/config"
	"github.com/monginis/export-api/pkg/constants"
	"github.com/monginis/export-api/pkg/core"
	"github.com/monginis/export-api/pkg/lumber"

	// mysql driver
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Connect create connection with database
func Connect(cfg *config.Config, logger lumber.Logger) (core.DB, error) {
	connectionString := fmt.Sprintf("%s:%s@%s(%s:%s)/%s", cfg.DB.User, cfg.DB.Password, "tcp", cfg.DB.Host, cfg.DB.Port, cfg.DB.Name)
	db, err := sqlx.Connect("mysql", connectionString+"?parseTime=true&charset=utf8mb4")
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to mysql")
	}
	logger.Infof("Database connected successfully")

	db.SetMaxIdleConns(constants.MysqlMaxIdleConnection)
	db.SetMaxOpenConns(constants.MysqlMaxOpenConnection)
	db.SetConnMaxLifetime(constants.MysqlMaxConnectionLifetime)

	return &DB{conn: db, logger: logger}, nil
}
