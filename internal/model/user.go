package model

type User struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	MobileNo     int64  `json:"mobile_no" db:"mobile_no"`
	PasswordHash string `json:"-" db:"password_hash"`
	Ctime        int64  `json:"ctime" db:"ctime"`
	Mtime        int64  `json:"mtime" db:"mtime"`
}
