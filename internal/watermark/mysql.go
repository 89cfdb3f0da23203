package watermark

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/go-sql-driver/mysql"
)

type MySQLStore struct {
	db    *sql.DB
	board string
}

// NewMySQLStore connects with the DB_* environment variables and makes sure
// the watermark table exists.
func NewMySQLStore(board string) (*MySQLStore, error) {
	config := mysql.Config{
		User:                 os.Getenv("DB_USER"),
		Passwd:               os.Getenv("DB_PW"),
		Net:                  "tcp",
		Addr:                 os.Getenv("DB_IP") + ":" + os.Getenv("DB_PORT"),
		DBName:               os.Getenv("DB_NAME"),
		AllowNativePasswords: true,
	}
	connector, err := mysql.NewConnector(&config)
	if err != nil {
		return nil, fmt.Errorf("configuring mysql: %w", err)
	}

	db := sql.OpenDB(connector)
	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("connecting to mysql: %w", err)
	}

	_, err = db.Exec("CREATE TABLE IF NOT EXISTS watermark (board VARCHAR(64) PRIMARY KEY, value INT NOT NULL)")
	if err != nil {
		return nil, fmt.Errorf("creating watermark table: %w", err)
	}

	return &MySQLStore{db: db, board: board}, nil
}

func (s *MySQLStore) Load() (int, bool, error) {
	var value int
	err := s.db.QueryRow("SELECT value FROM watermark WHERE board = ?", s.board).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("loading watermark for %s: %w", s.board, err)
	}
	return value, true, nil
}

func (s *MySQLStore) Save(value int) error {
	_, err := s.db.Exec(
		"INSERT INTO watermark (board, value) VALUES (?, ?) ON DUPLICATE KEY UPDATE value = VALUES(value)",
		s.board, value,
	)
	if err != nil {
		return fmt.Errorf("saving watermark for %s: %w", s.board, err)
	}
	return nil
}

func (s *MySQLStore) Close() error {
	return s.db.Close()
}
