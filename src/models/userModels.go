package models

type UserModel struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username    string `json:"username" gorm:"column:username;type:varchar(255);not null;uniqueIndex"`
	Password    string `json:"-" gorm:"type:varchar(100);not null"`
	FullName    string `json:"fullName" gorm:"column:full_name;type:varchar(255)"`
	Institution string `json:"institution" gorm:"column:institution;type:varchar(255)"`
	Admin       bool   `json:"admin" gorm:"column:admin;default:false;not null"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FullName        string `json:"fullName"`
	Institution     string `json:"institution"`
}

type RegisterResponse struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	FullName    string `json:"fullName"`
	Institution string `json:"institution"`
}

type ProfileUpdateRequest struct {
	FullName    *string `json:"fullName"`
	Institution *string `json:"institution"`
}
