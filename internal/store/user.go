package store

import (
	"context"
	"fmt"

	"conference-admin/internal/database"
	"conference-admin/internal/model"
)

// CreateUser 新增使用者 (is_active 一律為 false) 並回填 ID
func CreateUser(ctx context.Context, q database.Querier, u *model.User) error {
	row := q.QueryRow(ctx,
		`INSERT INTO users (username, password, first_name, last_name, valid_account, is_phd, educational_title, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, false)
		 RETURNING id`,
		u.Username,
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.ValidAccount,
		u.IsPhD,
		u.EducationalTitle,
	)
	if err := row.Scan(&u.ID); err != nil {
		return fmt.Errorf("CreateUser: %w", database.MapError(err))
	}
	u.IsActive = false
	return nil
}

func CreateRoleAssignment(ctx context.Context, q database.Querier, ra model.RoleAssignment) error {
	_, err := q.Exec(ctx,
		`INSERT INTO user_conference_roles (conference_id, user_id, role_id)
		 VALUES ($1, $2, $3)`,
		ra.ConferenceID,
		ra.UserID,
		ra.RoleID,
	)
	if err != nil {
		return fmt.Errorf("CreateRoleAssignment: %w", database.MapError(err))
	}
	return nil
}

// UpdateUser 以 username 為鍵更新基本資料；角色不受影響。
// 資料未變動時回傳 0。
func UpdateUser(ctx context.Context, q database.Querier, u *model.User) (int64, error) {
	tag, err := q.Exec(ctx,
		`UPDATE users
		 SET first_name = $1, last_name = $2, valid_account = $3, is_phd = $4, educational_title = $5
		 WHERE username = $6
		   AND (first_name, last_name, valid_account, is_phd, educational_title)
		       IS DISTINCT FROM ($1, $2, $3, $4, $5)`,
		u.FirstName,
		u.LastName,
		u.ValidAccount,
		u.IsPhD,
		u.EducationalTitle,
		u.Username,
	)
	if err != nil {
		return 0, fmt.Errorf("UpdateUser: %w", database.MapError(err))
	}
	return tag.RowsAffected(), nil
}

// GetUserIDByUsername returns database.ErrNotFound when no user matches.
func GetUserIDByUsername(ctx context.Context, q database.Querier, username string) (int, error) {
	var id int
	if err := q.QueryRow(ctx, `SELECT id FROM users WHERE username = $1`, username).Scan(&id); err != nil {
		return 0, fmt.Errorf("GetUserIDByUsername: %w", database.MapError(err))
	}
	return id, nil
}

func DeleteRoleAssignmentsByUser(ctx context.Context, q database.Querier, userID int) (int64, error) {
	tag, err := q.Exec(ctx, `DELETE FROM user_conference_roles WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("DeleteRoleAssignmentsByUser: %w", database.MapError(err))
	}
	return tag.RowsAffected(), nil
}

func DeleteUser(ctx context.Context, q database.Querier, userID int) (int64, error) {
	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("DeleteUser: %w", database.MapError(err))
	}
	return tag.RowsAffected(), nil
}

// ListUsers 回傳所有使用者 (依 id 排序) 以及各自的角色指派
func ListUsers(ctx context.Context, q database.Querier) ([]model.User, error) {
	rows, err := q.Query(ctx,
		`SELECT id, username, first_name, last_name, valid_account, is_phd, educational_title, is_active
		 FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", database.MapError(err))
	}
	defer rows.Close()

	users := []model.User{}
	index := map[int]int{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.FirstName,
			&u.LastName,
			&u.ValidAccount,
			&u.IsPhD,
			&u.EducationalTitle,
			&u.IsActive,
		); err != nil {
			return nil, fmt.Errorf("ListUsers scan: %w", err)
		}
		u.Roles = []model.RoleAssignment{}
		index[u.ID] = len(users)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers rows: %w", err)
	}
	rows.Close()

	roleRows, err := q.Query(ctx,
		`SELECT conference_id, user_id, role_id FROM user_conference_roles
		 ORDER BY user_id, conference_id, role_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers roles: %w", database.MapError(err))
	}
	defer roleRows.Close()

	for roleRows.Next() {
		var ra model.RoleAssignment
		if err := roleRows.Scan(&ra.ConferenceID, &ra.UserID, &ra.RoleID); err != nil {
			return nil, fmt.Errorf("ListUsers roles scan: %w", err)
		}
		if i, ok := index[ra.UserID]; ok {
			users[i].Roles = append(users[i].Roles, ra)
		}
	}
	if err := roleRows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers roles rows: %w", err)
	}
	return users, nil
}
