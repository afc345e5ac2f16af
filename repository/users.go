package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"goaltrack-service/models"
)

// UserRepo persists users.
type UserRepo struct {
	db *sqlx.DB
}

func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) FindByID(id int) (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, "SELECT id, full_name, email, password FROM user WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail looks up by exact email. Emails are stored lower-cased,
// so callers normalize before calling.
func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, "SELECT id, full_name, email, password FROM user WHERE email = ?", email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) Insert(user *models.User) error {
	result, err := r.db.Exec("INSERT INTO user (full_name, email, password) VALUES (?, ?, ?)",
		user.FullName, user.Email, user.Password)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = int(id)
	return nil
}

func (r *UserRepo) UpdateName(id int, fullName string) error {
	result, err := r.db.Exec("UPDATE user SET full_name = ? WHERE id = ?", fullName, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (r *UserRepo) UpdatePassword(id int, passwordHash string) error {
	result, err := r.db.Exec("UPDATE user SET password = ? WHERE id = ?", passwordHash, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Delete removes the user and all owned tasks and goals in one
// transaction, so a failure leaves the account fully intact.
func (r *UserRepo) Delete(id int) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM task WHERE user_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM goal WHERE user_id = ?", id); err != nil {
		return err
	}
	result, err := tx.Exec("DELETE FROM user WHERE id = ?", id)
	if err != nil {
		return err
	}
	if err := requireRow(result); err != nil {
		return err
	}
	return tx.Commit()
}

// requireRow converts an affected-rows count of zero into ErrNotFound.
func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
