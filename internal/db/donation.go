package db

// Donation is an append-only record of donation intent submitted through
// the public form. No payment is processed; the amount is stored as the
// donor typed it.
type Donation struct {
	Record
	FirstName    string `gorm:"size:100" json:"firstName"`
	LastName     string `gorm:"size:100" json:"lastName"`
	Phone        string `gorm:"size:20" json:"phone"`
	Email        string `gorm:"size:255" json:"email"`
	State        string `gorm:"size:100" json:"state"`
	City         string `gorm:"size:100" json:"city"`
	Pincode      string `gorm:"size:10" json:"pincode"`
	Address      string `gorm:"type:text" json:"address"`
	DonationType string `gorm:"size:100" json:"donationType"`
	Amount       string `gorm:"size:50" json:"amount"`
}
