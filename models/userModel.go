package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string  `gorm:"size:150;not null" json:"name"`
	Email    string  `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password string  `gorm:"size:128;not null" json:"-"`
	IsAdmin  bool    `gorm:"default:false" json:"isAdmin"`
	Orders   []Order `gorm:"foreignKey:UserID" json:"-"`
}

type SignupData struct {
	Name     string `json:"name" binding:"required,min=2,max=150"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
