package database

import (
	"database/sql"

	"github.com/Cloutiere/Gestion-administrative/app/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

func GetUserByUsername(db *sql.DB, username string) (*models.Utilisateur, error) {
	user := &models.Utilisateur{}
	query := `SELECT u.id, u.username, u.password_hash, u.is_admin, u.is_dashboard_only,
			  ARRAY_REMOVE(ARRAY_AGG(uca.champ_no ORDER BY uca.champ_no), NULL)
			  FROM utilisateurs u
			  LEFT JOIN user_champ_access uca ON uca.utilisateur_id = u.id
			  WHERE u.username = $1
			  GROUP BY u.id`

	err := db.QueryRow(query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash,
		&user.IsAdmin, &user.IsDashboardOnly, pq.Array(&user.AllowedChamps),
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, id string) (*models.Utilisateur, error) {
	user := &models.Utilisateur{}
	query := `SELECT u.id, u.username, u.password_hash, u.is_admin, u.is_dashboard_only,
			  ARRAY_REMOVE(ARRAY_AGG(uca.champ_no ORDER BY uca.champ_no), NULL)
			  FROM utilisateurs u
			  LEFT JOIN user_champ_access uca ON uca.utilisateur_id = u.id
			  WHERE u.id = $1
			  GROUP BY u.id`

	err := db.QueryRow(query, id).Scan(
		&user.ID, &user.Username, &user.PasswordHash,
		&user.IsAdmin, &user.IsDashboardOnly, pq.Array(&user.AllowedChamps),
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetAllUsers(db *sql.DB) ([]*models.Utilisateur, error) {
	query := `SELECT u.id, u.username, u.is_admin, u.is_dashboard_only,
			  ARRAY_REMOVE(ARRAY_AGG(uca.champ_no ORDER BY uca.champ_no), NULL)
			  FROM utilisateurs u
			  LEFT JOIN user_champ_access uca ON uca.utilisateur_id = u.id
			  GROUP BY u.id
			  ORDER BY u.username`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.Utilisateur
	for rows.Next() {
		user := &models.Utilisateur{}
		if err := rows.Scan(&user.ID, &user.Username, &user.IsAdmin,
			&user.IsDashboardOnly, pq.Array(&user.AllowedChamps)); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func CountUsers(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM utilisateurs`).Scan(&count)
	return count, err
}

func CountAdmins(db *sql.DB) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM utilisateurs WHERE is_admin = TRUE`).Scan(&count)
	return count, err
}

func CreateUser(db *sql.DB, user *models.Utilisateur) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	query := `INSERT INTO utilisateurs (id, username, password_hash, is_admin, is_dashboard_only)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := db.Exec(query, user.ID, user.Username, user.PasswordHash,
		user.IsAdmin, user.IsDashboardOnly)
	return err
}

// UpdateUserRole rewrites the role flags and the champ access list in one
// transaction. The access list only matters for specific_champs users but is
// always stored as given.
func UpdateUserRole(db *sql.DB, userID string, isAdmin, isDashboardOnly bool, champs []string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE utilisateurs SET is_admin = $1, is_dashboard_only = $2 WHERE id = $3`,
		isAdmin, isDashboardOnly, userID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM user_champ_access WHERE utilisateur_id = $1`, userID); err != nil {
		return err
	}
	for _, champNo := range champs {
		if _, err := tx.Exec(`INSERT INTO user_champ_access (utilisateur_id, champ_no) VALUES ($1, $2)`,
			userID, champNo); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func UpdateUserPassword(db *sql.DB, userID, passwordHash string) error {
	_, err := db.Exec(`UPDATE utilisateurs SET password_hash = $1 WHERE id = $2`, passwordHash, userID)
	return err
}

func DeleteUser(db *sql.DB, userID string) error {
	_, err := db.Exec(`DELETE FROM utilisateurs WHERE id = $1`, userID)
	return err
}
