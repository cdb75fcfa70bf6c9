package user

// User represents a user entity in the system.
type User struct {
	ID    int    `gorm:"primaryKey"`
	Name  string `gorm:"size:100;not null"`
	Email string `gorm:"size:120;uniqueIndex;not null"`
}

// TableName returns the table name for the User entity.
func (User) TableName() string {
	return "users"
}
