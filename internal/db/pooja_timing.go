package db

const (
	// TimingCategoryAarti groups aarti schedule rows.
	TimingCategoryAarti = "aarti"
	// TimingCategoryDarshan groups darshan schedule rows.
	TimingCategoryDarshan = "darshan"
)

// PoojaTiming is one schedule row with per-season timing strings. The
// strings are free text ("5:30 AM - 6:00 AM"); no cross-field consistency
// is checked.
type PoojaTiming struct {
	Record
	NameEn       string `gorm:"size:255" json:"nameEn"`
	NameHi       string `gorm:"size:255" json:"nameHi"`
	SummerTime   string `gorm:"size:100" json:"summerTime"`
	WinterTime   string `gorm:"size:100" json:"winterTime"`
	MonsoonTime  string `gorm:"size:100" json:"monsoonTime"`
	FestivalTime string `gorm:"size:100" json:"festivalTime"`
	Category     string `gorm:"size:20;index" json:"category"`
	Order        int    `gorm:"column:sort_order;default:0" json:"order"`
}
