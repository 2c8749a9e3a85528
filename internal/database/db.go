package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=Local so day boundaries
	// follow server-local time, matching the check-in uniqueness rule
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the application tables when they do not exist yet.
// The statements are idempotent so the server can run them on every boot.
//
// check_ins carries a stored generated check_in_day column with a unique
// (user_id, check_in_day) index: two concurrent check-in attempts for the
// same user on the same local day race on the insert, and the loser gets a
// duplicate-key error instead of a second row.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            CHAR(36)     NOT NULL,
			name          VARCHAR(255) NOT NULL,
			email         VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role          VARCHAR(16)  NOT NULL DEFAULT 'MEMBER',
			created_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			UNIQUE KEY uq_users_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS refresh_tokens (
			id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			user_id    CHAR(36)        NOT NULL,
			token_hash CHAR(64)        NOT NULL,
			expires_at DATETIME        NOT NULL,
			revoked_at DATETIME        NULL,
			created_at DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			UNIQUE KEY uq_refresh_tokens_hash (token_hash),
			KEY idx_refresh_tokens_user (user_id),
			CONSTRAINT fk_refresh_tokens_user FOREIGN KEY (user_id) REFERENCES users (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS gyms (
			id          CHAR(36)      NOT NULL,
			title       VARCHAR(255)  NOT NULL,
			description TEXT          NULL,
			phone       VARCHAR(32)   NULL,
			latitude    DECIMAL(10,8) NOT NULL,
			longitude   DECIMAL(11,8) NOT NULL,
			created_at  DATETIME      NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			KEY idx_gyms_title (title),
			KEY idx_gyms_lat_lng (latitude, longitude)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS check_ins (
			id           CHAR(36) NOT NULL,
			user_id      CHAR(36) NOT NULL,
			gym_id       CHAR(36) NOT NULL,
			created_at   DATETIME NOT NULL,
			validated_at DATETIME NULL,
			check_in_day DATE AS (DATE(created_at)) STORED,
			PRIMARY KEY (id),
			UNIQUE KEY uq_check_ins_user_day (user_id, check_in_day),
			KEY idx_check_ins_user_created (user_id, created_at),
			CONSTRAINT fk_check_ins_user FOREIGN KEY (user_id) REFERENCES users (id),
			CONSTRAINT fk_check_ins_gym FOREIGN KEY (gym_id) REFERENCES gyms (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
