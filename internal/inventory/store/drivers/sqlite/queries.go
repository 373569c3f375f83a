package sqlite

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the queries. Both *sql.DB and
// *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type queries struct {
	db DBTX
}

func newQueries(db DBTX) *queries { return &queries{db: db} }

type userRow struct {
	ID       int64
	Username string
	Password string
}

type materialRow struct {
	ID       int64
	Name     string
	Barcode  string
	Quantity int64
	Unit     string
}

const getUserByUsername = `SELECT id, username, password FROM users WHERE username = ? LIMIT 1`

func (q *queries) GetUserByUsername(ctx context.Context, username string) (userRow, error) {
	var u userRow
	err := q.db.QueryRowContext(ctx, getUserByUsername, username).Scan(&u.ID, &u.Username, &u.Password)
	return u, err
}

const createUser = `INSERT INTO users (username, password) VALUES (?, ?) RETURNING id, username, password`

func (q *queries) CreateUser(ctx context.Context, username, password string) (userRow, error) {
	var u userRow
	err := q.db.QueryRowContext(ctx, createUser, username, password).Scan(&u.ID, &u.Username, &u.Password)
	return u, err
}

const updateUserPassword = `UPDATE users SET password = ? WHERE id = ?`

func (q *queries) UpdateUserPassword(ctx context.Context, id int64, password string) (int64, error) {
	return execRows(ctx, q.db, updateUserPassword, password, id)
}

const countUsers = `SELECT COUNT(*) FROM users`

func (q *queries) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countUsers).Scan(&n)
	return n, err
}

const listMaterials = `SELECT id, name, barcode, quantity, unit FROM materials ORDER BY id ASC`

func (q *queries) ListMaterials(ctx context.Context) ([]materialRow, error) {
	rows, err := q.db.QueryContext(ctx, listMaterials)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []materialRow
	for rows.Next() {
		var m materialRow
		if err := rows.Scan(&m.ID, &m.Name, &m.Barcode, &m.Quantity, &m.Unit); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getMaterialByID = `SELECT id, name, barcode, quantity, unit FROM materials WHERE id = ?`

func (q *queries) GetMaterialByID(ctx context.Context, id int64) (materialRow, error) {
	var m materialRow
	err := q.db.QueryRowContext(ctx, getMaterialByID, id).Scan(&m.ID, &m.Name, &m.Barcode, &m.Quantity, &m.Unit)
	return m, err
}

const getMaterialByBarcode = `SELECT id, name, barcode, quantity, unit FROM materials WHERE barcode = ?`

func (q *queries) GetMaterialByBarcode(ctx context.Context, barcode string) (materialRow, error) {
	var m materialRow
	err := q.db.QueryRowContext(ctx, getMaterialByBarcode, barcode).Scan(&m.ID, &m.Name, &m.Barcode, &m.Quantity, &m.Unit)
	return m, err
}

const createMaterial = `INSERT INTO materials (name, barcode, quantity, unit) VALUES (?, ?, ?, ?)
RETURNING id, name, barcode, quantity, unit`

type createMaterialParams struct {
	Name     string
	Barcode  string
	Quantity int64
	Unit     string
}

func (q *queries) CreateMaterial(ctx context.Context, arg createMaterialParams) (materialRow, error) {
	var m materialRow
	err := q.db.QueryRowContext(ctx, createMaterial, arg.Name, arg.Barcode, arg.Quantity, arg.Unit).
		Scan(&m.ID, &m.Name, &m.Barcode, &m.Quantity, &m.Unit)
	return m, err
}

const updateMaterial = `UPDATE materials SET name = ?, barcode = ?, quantity = ?, unit = ? WHERE id = ?`

type updateMaterialParams struct {
	Name     string
	Barcode  string
	Quantity int64
	Unit     string
	ID       int64
}

func (q *queries) UpdateMaterial(ctx context.Context, arg updateMaterialParams) (int64, error) {
	return execRows(ctx, q.db, updateMaterial, arg.Name, arg.Barcode, arg.Quantity, arg.Unit, arg.ID)
}

const deleteMaterial = `DELETE FROM materials WHERE id = ?`

func (q *queries) DeleteMaterial(ctx context.Context, id int64) (int64, error) {
	return execRows(ctx, q.db, deleteMaterial, id)
}

const countMaterials = `SELECT COUNT(*) FROM materials`

func (q *queries) CountMaterials(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.QueryRowContext(ctx, countMaterials).Scan(&n)
	return n, err
}

// execRows runs a statement and returns the number of rows it touched.
func execRows(ctx context.Context, db DBTX, query string, args ...any) (int64, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
