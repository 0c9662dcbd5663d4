package repositories

import (
	"database/sql"

	intconfig "bagages/internal/config"
	"bagages/internal/domain"
	"bagages/internal/domain/models"
	"bagages/internal/utils"
)

// AdminRepository wraps DB access to the admin_users table.
type AdminRepository struct {
	DB *sql.DB
}

func (r AdminRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetActiveByUsername loads an active admin account by username.
func (r AdminRepository) GetActiveByUsername(username string) (models.AdminUser, error) {
	var a models.AdminUser
	var lastLogin sql.NullTime
	err := r.db().QueryRow(`
		SELECT id, username, password_hash, email, full_name, role, is_active, last_login, created_at
		FROM admin_users
		WHERE username = ? AND is_active = 1
		LIMIT 1`, username).Scan(
		&a.ID, &a.Username, &a.PasswordHash, &a.Email, &a.FullName,
		&a.Role, &a.IsActive, &lastLogin, &a.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.AdminUser{}, domain.NotFoundError{Resource: "admin", Err: err}
	}
	if err != nil {
		return models.AdminUser{}, domain.InternalError{Msg: "lecture admin", Err: err}
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		a.LastLogin = &t
	}
	return a, nil
}

// Count returns how many admin accounts exist, active or not.
func (r AdminRepository) Count() (int64, error) {
	var n int64
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM admin_users`).Scan(&n); err != nil {
		return 0, domain.InternalError{Msg: "comptage admins", Err: err}
	}
	return n, nil
}

// Create inserts an admin account and returns its id.
func (r AdminRepository) Create(a models.AdminUser) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO admin_users (username, password_hash, email, full_name, role, is_active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.Username, a.PasswordHash, a.Email, a.FullName, a.Role, a.IsActive, utils.NowUTC(),
	)
	if err != nil {
		return 0, domain.InternalError{Msg: "creation admin", Err: err}
	}
	return res.LastInsertId()
}

// TouchLastLogin stamps last_login after a successful authentication.
func (r AdminRepository) TouchLastLogin(id int64) error {
	_, err := r.db().Exec(`UPDATE admin_users SET last_login = ? WHERE id = ?`, utils.NowUTC(), id)
	if err != nil {
		return domain.InternalError{Msg: "mise a jour last_login", Err: err}
	}
	return nil
}
