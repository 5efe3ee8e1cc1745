package db

// ContactInfo is the singleton contact block. Secondary phone and email
// are optional.
type ContactInfo struct {
	Record
	Phone1    string `gorm:"size:20" json:"phone1"`
	Phone2    string `gorm:"size:20" json:"phone2"`
	Email1    string `gorm:"size:255" json:"email1"`
	Email2    string `gorm:"size:255" json:"email2"`
	AddressEn string `gorm:"type:text" json:"addressEn"`
	AddressHi string `gorm:"type:text" json:"addressHi"`
}
