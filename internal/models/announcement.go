package models

import "time"

// FeaturedLimit caps the highlighted announcements on the public page.
const FeaturedLimit = 2

// Announcement is a dated news item shown on the public announcements page.
type Announcement struct {
	ID       RecordID  `db:"id" json:"id"`
	Title    string    `db:"title" json:"title"`
	Excerpt  string    `db:"excerpt" json:"excerpt"`
	Category string    `db:"category" json:"category"`
	Date     time.Time `db:"date" json:"date"`
	ImageURL string    `db:"image_url" json:"image_url"`
	Featured bool      `db:"featured" json:"featured"`
}

// AnnouncementForm carries the admin add/edit form fields.
type AnnouncementForm struct {
	Title    string `form:"title" validate:"required"`
	Excerpt  string `form:"excerpt" validate:"required"`
	Category string `form:"category" validate:"required"`
	Featured bool   `form:"-"`
}

// FeaturedAnnouncements returns the highlighted subset in current list
// order, capped to FeaturedLimit.
func FeaturedAnnouncements(all []Announcement) []Announcement {
	featured := make([]Announcement, 0, FeaturedLimit)
	for _, a := range all {
		if !a.Featured {
			continue
		}
		featured = append(featured, a)
		if len(featured) == FeaturedLimit {
			break
		}
	}
	return featured
}
