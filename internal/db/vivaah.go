package db

const (
	// ParticipantTypeBride marks a bride-side listing.
	ParticipantTypeBride = "bride"
	// ParticipantTypeGroom marks a groom-side listing.
	ParticipantTypeGroom = "groom"
)

// VivaahPageInfo is the singleton intro block of the vivaah sammelan page.
type VivaahPageInfo struct {
	Record
	TitleEn       string `gorm:"size:255" json:"titleEn"`
	TitleHi       string `gorm:"size:255" json:"titleHi"`
	DescriptionEn string `gorm:"type:text" json:"descriptionEn"`
	DescriptionHi string `gorm:"type:text" json:"descriptionHi"`
}

// VivaahSammelan is the financial summary of one marriage gathering.
// Income and expense are display strings, mirroring the donation amounts.
type VivaahSammelan struct {
	Record
	TitleEn        string `gorm:"size:255" json:"titleEn"`
	TitleHi        string `gorm:"size:255" json:"titleHi"`
	OverallIncome  string `gorm:"size:50" json:"overallIncome"`
	OverallExpense string `gorm:"size:50" json:"overallExpense"`
	AsOfDate       string `gorm:"size:50" json:"asOfDate"`
	IsActive       bool   `json:"isActive"`
}

// VivaahParticipant is one matrimonial listing attached to a sammelan.
// The sammelan must exist when the participant is created; deleting a
// sammelan removes its participants.
type VivaahParticipant struct {
	Record
	SammelanID        string `gorm:"size:36;index" json:"sammelanId"`
	Type              string `gorm:"size:10" json:"type"`
	NameEn            string `gorm:"size:255" json:"nameEn"`
	NameHi            string `gorm:"size:255" json:"nameHi"`
	FatherNameEn      string `gorm:"size:255" json:"fatherNameEn"`
	FatherNameHi      string `gorm:"size:255" json:"fatherNameHi"`
	MotherNameEn      string `gorm:"size:255" json:"motherNameEn"`
	MotherNameHi      string `gorm:"size:255" json:"motherNameHi"`
	GrandparentNameEn string `gorm:"size:255" json:"grandparentNameEn"`
	GrandparentNameHi string `gorm:"size:255" json:"grandparentNameHi"`
	LocationEn        string `gorm:"size:255" json:"locationEn"`
	LocationHi        string `gorm:"size:255" json:"locationHi"`
	Order             int    `gorm:"column:sort_order;default:0" json:"order"`
}
