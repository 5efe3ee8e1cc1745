package db

// SiteSetting is a generic bilingual key-value pair for odds and ends that
// do not warrant their own collection (banner lines, footer notes).
type SiteSetting struct {
	Record
	Key     string `gorm:"size:100;uniqueIndex;not null" json:"key"`
	ValueEn string `gorm:"type:text" json:"valueEn"`
	ValueHi string `gorm:"type:text" json:"valueHi"`
}

// TableName keeps the table name explicit.
func (SiteSetting) TableName() string {
	return "site_settings"
}
