package models

import "strings"

// Program is a fixed offering seeded at deployment time. Programs are
// never created or deleted through the admin panel; only their image can
// be replaced.
type Program struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	ImageURL    string `db:"image_url" json:"image_url"`
}

// ImageBasename derives the deterministic image filename stem for the
// program, e.g. "Mentorship Program" -> "Mentorship_Program". Re-uploads
// therefore overwrite instead of accumulating.
func (p Program) ImageBasename() string {
	return strings.ReplaceAll(p.Name, " ", "_")
}
