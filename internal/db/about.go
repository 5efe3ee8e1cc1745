package db

// AboutContent is the singleton about-page body. Content fields hold
// markdown; rendering happens at read time.
type AboutContent struct {
	Record
	TitleEn   string `gorm:"size:255" json:"titleEn"`
	TitleHi   string `gorm:"size:255" json:"titleHi"`
	ContentEn string `gorm:"type:text" json:"contentEn"`
	ContentHi string `gorm:"type:text" json:"contentHi"`
	ImageURL  string `gorm:"size:500" json:"imageUrl"`
}
