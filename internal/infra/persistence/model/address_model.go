package model

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID        int64   `gorm:"primaryKey;autoIncrement"`
	Street    string  `gorm:"type:varchar(255);not null;index"`
	City      string  `gorm:"type:varchar(100);not null;index"`
	State     string  `gorm:"type:varchar(100);not null;index"`
	Country   string  `gorm:"type:varchar(100);not null;index"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
