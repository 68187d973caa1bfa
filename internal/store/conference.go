package store

import (
	"context"
	"fmt"

	"conference-admin/internal/database"
	"conference-admin/internal/model"
)

func CreateConference(ctx context.Context, q database.Querier, c *model.Conference) error {
	row := q.QueryRow(ctx,
		`INSERT INTO conferences (title, path_to_logo, location, path_to_description, country, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		c.Title,
		c.PathToLogo,
		c.Location,
		c.PathToDescription,
		c.Country,
		c.StartDate,
		c.EndDate,
	)
	if err := row.Scan(&c.ID); err != nil {
		return fmt.Errorf("CreateConference: %w", database.MapError(err))
	}
	return nil
}

// UpdateConference 以 title 為鍵更新，回傳受影響列數。
// 內容完全相同的列不會被計入 (回傳 0)。
func UpdateConference(ctx context.Context, q database.Querier, c *model.Conference) (int64, error) {
	tag, err := q.Exec(ctx,
		`UPDATE conferences
		 SET path_to_logo = $1, location = $2, path_to_description = $3,
		     country = $4, start_date = $5, end_date = $6
		 WHERE title = $7
		   AND (path_to_logo, location, path_to_description, country, start_date, end_date)
		       IS DISTINCT FROM ($1, $2, $3, $4, $5, $6)`,
		c.PathToLogo,
		c.Location,
		c.PathToDescription,
		c.Country,
		c.StartDate,
		c.EndDate,
		c.Title,
	)
	if err != nil {
		return 0, fmt.Errorf("UpdateConference: %w", database.MapError(err))
	}
	return tag.RowsAffected(), nil
}

func DeleteConference(ctx context.Context, q database.Querier, title string) (int64, error) {
	tag, err := q.Exec(ctx, `DELETE FROM conferences WHERE title = $1`, title)
	if err != nil {
		return 0, fmt.Errorf("DeleteConference: %w", database.MapError(err))
	}
	return tag.RowsAffected(), nil
}
