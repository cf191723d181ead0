package model

// ExecutorModel is the GORM-specific struct for the 'executors' table.
type ExecutorModel struct {
	ExecID     int    `gorm:"primaryKey;autoIncrement"`
	Surname    string `gorm:"type:varchar(128);not null"`
	Name       string `gorm:"type:varchar(128)"`
	Phone      string `gorm:"type:varchar(32)"`
	IDTelegram *int64 `gorm:"column:id_telegram;uniqueIndex"`
	Role       string `gorm:"type:varchar(16);not null;default:user"`
}

// TableName explicitly sets the table name for GORM.
func (ExecutorModel) TableName() string {
	return "executors"
}
