package db

// TermsContent is the singleton terms-and-conditions body.
type TermsContent struct {
	Record
	TitleEn   string `gorm:"size:255" json:"titleEn"`
	TitleHi   string `gorm:"size:255" json:"titleHi"`
	ContentEn string `gorm:"type:text" json:"contentEn"`
	ContentHi string `gorm:"type:text" json:"contentHi"`
}
