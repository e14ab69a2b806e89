package entity

// Secretary represents a registration secretary. The table name keeps
// the original schema's spelling.
type Secretary struct {
	SecretaryID int    `gorm:"column:secertary_id;primaryKey;autoIncrement" json:"secertary_id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
}

func (Secretary) TableName() string {
	return "secertary"
}
