package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL,
		first_name TEXT,
		last_name TEXT,
		phone TEXT,
		address TEXT,
		date_of_birth DATETIME,
		id_number TEXT,
		id_document TEXT,
		business_name TEXT,
		cac_number TEXT,
		tax_id TEXT,
		business_address TEXT,
		business_documents TEXT,
		kyc_completed BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createWalletTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE wallets (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL,
		balance NUMERIC NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createProjectTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE projects (
		id TEXT PRIMARY KEY,
		business_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		amount_requested NUMERIC NOT NULL,
		amount_raised NUMERIC NOT NULL DEFAULT 0,
		duration_months INTEGER NOT NULL,
		expected_roi NUMERIC NOT NULL,
		status TEXT NOT NULL DEFAULT 'PENDING',
		documents TEXT,
		funded_at DATETIME,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createInvestmentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE investments (
		id TEXT PRIMARY KEY,
		investor_id TEXT NOT NULL,
		project_id TEXT NOT NULL,
		amount NUMERIC NOT NULL,
		expected_return NUMERIC NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createTransactionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE transactions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		status TEXT NOT NULL,
		amount NUMERIC NOT NULL,
		description TEXT,
		reference TEXT UNIQUE NOT NULL,
		completed_at DATETIME,
		created_at DATETIME
	);`)
}
