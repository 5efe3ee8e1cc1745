package db

// Service is one offering card on the services page (puja booking,
// prasad delivery and the like) with an optional call-to-action button.
type Service struct {
	Record
	TitleEn       string `gorm:"size:255" json:"titleEn"`
	TitleHi       string `gorm:"size:255" json:"titleHi"`
	DescriptionEn string `gorm:"type:text" json:"descriptionEn"`
	DescriptionHi string `gorm:"type:text" json:"descriptionHi"`
	ButtonTextEn  string `gorm:"size:100" json:"buttonTextEn"`
	ButtonTextHi  string `gorm:"size:100" json:"buttonTextHi"`
	ButtonLink    string `gorm:"size:500" json:"buttonLink"`
	ImageURL      string `gorm:"size:500" json:"imageUrl"`
	Order         int    `gorm:"column:sort_order;default:0" json:"order"`
}
