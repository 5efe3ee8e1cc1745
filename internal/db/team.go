package db

// TeamMember is one trustee or staff entry on the team page.
type TeamMember struct {
	Record
	NameEn        string `gorm:"size:255" json:"nameEn"`
	NameHi        string `gorm:"size:255" json:"nameHi"`
	DesignationEn string `gorm:"size:255" json:"designationEn"`
	DesignationHi string `gorm:"size:255" json:"designationHi"`
	Phone         string `gorm:"size:20" json:"phone"`
	Email         string `gorm:"size:255" json:"email"`
	ImageURL      string `gorm:"size:500" json:"imageUrl"`
	Order         int    `gorm:"column:sort_order;default:0" json:"order"`
}
