// File: internal/model/conference.go
package model

import "time"

type Conference struct {
	ID                int       `db:"id" json:"id"`
	Title             string    `db:"title" json:"title"`
	Location          string    `db:"location" json:"location"`
	Country           string    `db:"country" json:"country"`
	StartDate         time.Time `db:"start_date" json:"start_date"`
	EndDate           time.Time `db:"end_date" json:"end_date"`
	PathToLogo        string    `db:"path_to_logo" json:"path_to_logo"`
	PathToDescription string    `db:"path_to_description" json:"path_to_description"`
}
