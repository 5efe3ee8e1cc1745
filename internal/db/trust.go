package db

// TrustContent is the singleton trust-page body. Subtitles are optional.
type TrustContent struct {
	Record
	TitleEn    string `gorm:"size:255" json:"titleEn"`
	TitleHi    string `gorm:"size:255" json:"titleHi"`
	SubtitleEn string `gorm:"size:255" json:"subtitleEn"`
	SubtitleHi string `gorm:"size:255" json:"subtitleHi"`
	ContentEn  string `gorm:"type:text" json:"contentEn"`
	ContentHi  string `gorm:"type:text" json:"contentHi"`
}
