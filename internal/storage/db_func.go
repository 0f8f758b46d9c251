package storage

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

var errNoUser = errors.New("no such user")

const (
	usersTable = `
	CREATE TABLE IF NOT EXISTS users(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		login TEXT NOT NULL UNIQUE,
		hashedPassword TEXT NOT NULL
	);`

	expressionsTable = `
	CREATE TABLE IF NOT EXISTS expressions(
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hash INTEGER NOT NULL,
		postfixExpression TEXT,
		userId INTEGER NOT NULL,
		status TEXT,
		result TEXT,

		FOREIGN KEY (userId) REFERENCES users (id)
	);`
)

// OpenDB opens the sqlite database at path and creates the tables the
// service needs.
func OpenDB(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	// sqlite serializes writers anyway; one connection avoids "database is locked".
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "ping %s", path)
	}
	if err := createTables(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	for _, q := range []string{usersTable, expressionsTable} {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return errors.Wrap(err, "create tables")
		}
	}
	return nil
}

func storeUser(ctx context.Context, db *sql.DB, login string, hashedPassword []byte) (int64, error) {
	var q string = `
	INSERT INTO users (login, hashedPassword) VALUES (?, ?)
	`
	res, err := db.ExecContext(ctx, q, login, string(hashedPassword))
	if err != nil {
		return 0, errors.Wrapf(err, "store user %q", login)
	}
	return res.LastInsertId()
}

func getUser(ctx context.Context, db *sql.DB, login string) (id int64, hashedPassword string, err error) {
	var q string = `
	SELECT id, hashedPassword FROM users WHERE login = ?
	`
	err = db.QueryRowContext(ctx, q, login).Scan(&id, &hashedPassword)
	if err == sql.ErrNoRows {
		return 0, "", errNoUser
	}
	return id, hashedPassword, errors.Wrapf(err, "get user %q", login)
}

func storeExpressionState(ctx context.Context, db *sql.DB, status state, result string, userId int64, postfix string) (int64, error) {
	var q string = `
	INSERT INTO expressions (status, result, userId, hash, postfixExpression) VALUES (?, ?, ?, ?, ?)
	`
	res, err := db.ExecContext(ctx, q, status, result, userId, getHash(postfix), postfix)
	if err != nil {
		return 0, errors.Wrap(err, "store expression")
	}
	return res.LastInsertId()
}

func updateExpressionState(ctx context.Context, db *sql.DB, id int64, status state, result string) error {
	var q string = `
	UPDATE expressions SET status = ?, result = ? WHERE id = ?
	`
	_, err := db.ExecContext(ctx, q, status, result, id)
	return errors.Wrapf(err, "update expression %d", id)
}

// checkExpressionExists returns the id of an expression the user already
// submitted with the same postfix form, or sql.ErrNoRows.
func checkExpressionExists(ctx context.Context, db *sql.DB, postfix string, userId int64) (int64, error) {
	var q string = `
	SELECT id FROM expressions WHERE hash = ? AND userId = ? AND postfixExpression = ?
	`
	var id int64
	err := db.QueryRowContext(ctx, q, getHash(postfix), userId, postfix).Scan(&id)
	return id, err
}

func getExpressionState(ctx context.Context, db *sql.DB, id, userId int64) (expressionState, error) {
	var q string = `
	SELECT status, result, postfixExpression FROM expressions WHERE id = ? AND userId = ?
	`
	st := expressionState{ID: id}
	if err := db.QueryRowContext(ctx, q, id, userId).Scan(&st.State, &st.Result, &st.Postfix); err != nil {
		return expressionState{}, err
	}
	return st, nil
}

func getExpressions(ctx context.Context, db *sql.DB, userId int64) ([]expressionState, error) {
	var q string = `
	SELECT id, status, result, postfixExpression FROM expressions WHERE userId = ? ORDER BY id
	`
	rows, err := db.QueryContext(ctx, q, userId)
	if err != nil {
		return nil, errors.Wrap(err, "list expressions")
	}
	defer rows.Close()

	res := make([]expressionState, 0)
	for rows.Next() {
		var st expressionState
		if err := rows.Scan(&st.ID, &st.State, &st.Result, &st.Postfix); err != nil {
			return nil, errors.Wrap(err, "list expressions")
		}
		res = append(res, st)
	}
	return res, errors.Wrap(rows.Err(), "list expressions")
}
