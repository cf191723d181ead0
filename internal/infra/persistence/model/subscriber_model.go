package model

// SubscriberModel is the GORM-specific struct for the 'subscribers' table.
type SubscriberModel struct {
	ContractNumber string  `gorm:"type:varchar(64);primary_key"`
	Surname        string  `gorm:"type:varchar(128)"`
	Name           string  `gorm:"type:varchar(128)"`
	Patronymic     string  `gorm:"type:varchar(128)"`
	City           string  `gorm:"type:varchar(128);not null;index:idx_subscribers_address"`
	District       string  `gorm:"type:varchar(128);index:idx_subscribers_address"`
	Street         string  `gorm:"type:varchar(255);index:idx_subscribers_address"`
	House          string  `gorm:"type:varchar(32);not null"`
	Latitude       float64 `gorm:"type:double precision"`
	Longitude      float64 `gorm:"type:double precision"`
	YandexAddress  string  `gorm:"type:text"`
	Status         string  `gorm:"type:varchar(16);not null;default:active"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriberModel) TableName() string {
	return "subscribers"
}
