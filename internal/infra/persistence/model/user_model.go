package model

import "time"

// UserModel mirrors the 'usuarios' table. The schema is owned by the goose migrations.
type UserModel struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Nome      string    `gorm:"column:nome;type:varchar(100);not null"`
	Email     string    `gorm:"column:email;type:varchar(100);uniqueIndex;not null"`
	Senha     string    `gorm:"column:senha;type:varchar(200);not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "usuarios"
}
