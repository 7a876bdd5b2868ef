package repository

import (
	"database/sql"

	"fizzquiz/internal/database"
	"fizzquiz/internal/models"
)

// UserRepository handles user database operations
type UserRepository struct {
	db database.DBTX
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts a new user and returns it
func (r *UserRepository) CreateUser(username, passwordHash, email string) (*models.User, error) {
	query := `
		INSERT INTO users (username, password_hash, email)
		VALUES (?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query, username, passwordHash, email)
	if err != nil {
		return nil, err
	}

	return r.GetUserByID(id)
}

// CreateOAuthUser inserts a user provisioned through an OAuth provider
func (r *UserRepository) CreateOAuthUser(username, email, provider, subject string) (*models.User, error) {
	query := `
		INSERT INTO users (username, password_hash, email, oauth_provider, oauth_subject)
		VALUES (?, '', ?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query, username, email, provider, subject)
	if err != nil {
		return nil, err
	}

	return r.GetUserByID(id)
}

// GetUserByID retrieves a user by ID, or nil if none exists
func (r *UserRepository) GetUserByID(id int64) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, COALESCE(email, ''),
		       COALESCE(oauth_provider, ''), COALESCE(oauth_subject, ''),
		       created_at, updated_at
		FROM users
		WHERE id = ?
	`

	return r.scanUser(r.db.QueryRow(query, id))
}

// GetUserByUsername retrieves a user by exact username, or nil if none exists
func (r *UserRepository) GetUserByUsername(username string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, COALESCE(email, ''),
		       COALESCE(oauth_provider, ''), COALESCE(oauth_subject, ''),
		       created_at, updated_at
		FROM users
		WHERE username = ?
	`

	return r.scanUser(r.db.QueryRow(query, username))
}

// GetUserByOAuth retrieves a user by OAuth provider and subject, or nil if
// none exists
func (r *UserRepository) GetUserByOAuth(provider, subject string) (*models.User, error) {
	query := `
		SELECT id, username, password_hash, COALESCE(email, ''),
		       COALESCE(oauth_provider, ''), COALESCE(oauth_subject, ''),
		       created_at, updated_at
		FROM users
		WHERE oauth_provider = ? AND oauth_subject = ?
	`

	return r.scanUser(r.db.QueryRow(query, provider, subject))
}

// GetUsers retrieves users ordered by username. A non-empty username filters
// to exact matches.
func (r *UserRepository) GetUsers(username string) ([]models.User, error) {
	query := `
		SELECT id, username, password_hash, COALESCE(email, ''),
		       COALESCE(oauth_provider, ''), COALESCE(oauth_subject, ''),
		       created_at, updated_at
		FROM users
	`
	args := []interface{}{}
	if username != "" {
		query += " WHERE username = ?"
		args = append(args, username)
	}
	query += " ORDER BY username ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.PasswordHash,
			&u.Email,
			&u.OAuthProvider,
			&u.OAuthSubject,
			&u.CreatedAt,
			&u.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// UpdateUser persists username, password hash and email changes
func (r *UserRepository) UpdateUser(user *models.User) (*models.User, error) {
	query := `
		UPDATE users
		SET username = ?, password_hash = ?, email = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	if _, err := r.db.Exec(query, user.Username, user.PasswordHash, user.Email, user.ID); err != nil {
		return nil, err
	}

	return r.GetUserByID(user.ID)
}

// DeleteUser removes a user
func (r *UserRepository) DeleteUser(id int64) error {
	_, err := r.db.Exec("DELETE FROM users WHERE id = ?", id)
	return err
}

// scanUser scans a single user row, mapping sql.ErrNoRows to nil
func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.OAuthProvider,
		&user.OAuthSubject,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
