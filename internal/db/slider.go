package db

// SliderImage is one homepage hero slide. The public site shows at most
// three active slides, but that cap lives in the presentation layer; the
// store accepts any number.
type SliderImage struct {
	Record
	ImageURL string `gorm:"size:500;not null" json:"imageUrl"`
	TitleEn  string `gorm:"size:255" json:"titleEn"`
	TitleHi  string `gorm:"size:255" json:"titleHi"`
	Order    int    `gorm:"column:sort_order;default:0" json:"order"`
	IsActive bool   `json:"isActive"`
}
