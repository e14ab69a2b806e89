package entity

// Doctor represents a doctor account. Password holds a bcrypt hash.
type Doctor struct {
	DoctorID int    `gorm:"column:doctor_id;primaryKey;autoIncrement" json:"doctor_id"`
	Username string `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:text;not null" json:"-"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
}

func (Doctor) TableName() string {
	return "doctor"
}

// Session role constants
const (
	RoleDoctor    = "doctor"
	RoleSecretary = "secretary"
)
