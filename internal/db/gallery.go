package db

const (
	// GalleryTypePhoto marks a photo entry.
	GalleryTypePhoto = "photo"
	// GalleryTypeVideo marks a video entry; the URL points at the public
	// video page and is turned into an embed URL at read time.
	GalleryTypeVideo = "video"
)

// GalleryItem is one photo or video in the temple gallery.
type GalleryItem struct {
	Record
	Type         string `gorm:"size:10;index" json:"type"`
	URL          string `gorm:"size:500;not null" json:"url"`
	ThumbnailURL string `gorm:"size:500" json:"thumbnailUrl"`
	TitleEn      string `gorm:"size:255" json:"titleEn"`
	TitleHi      string `gorm:"size:255" json:"titleHi"`
	Order        int    `gorm:"column:sort_order;default:0" json:"order"`
	IsActive     bool   `json:"isActive"`
}
