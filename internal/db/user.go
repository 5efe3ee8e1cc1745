package db

// AdminUser holds the credentials of a content administrator. The password
// is a bcrypt hash, never the plain text.
type AdminUser struct {
	Record
	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"`
}
