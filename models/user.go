package models

import (
	"errors"
	"time"

	"blog/utils"

	"gorm.io/gorm"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Username  string `gorm:"type:varchar(30);index:uniq_username,unique"`
	Password  string `gorm:"type:varchar(255)"` // encoded argon2id salt+hash
	CreatedAt time.Time
}

// CheckPassword compares a supplied plain-text password against the stored
// hash.
func (u *User) CheckPassword(plainTextPassword string) bool {
	return utils.VerifyPassword(plainTextPassword, u.Password)
}

// UserRepo provides access to stored users.
type UserRepo struct {
	DB *gorm.DB
}

func (r *UserRepo) Create(username, plainTextPassword string) (User, error) {
	u := User{
		Username: username,
		Password: utils.HashPassword(plainTextPassword),
	}
	err := r.DB.Create(&u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return User{}, ErrDuplicateUsername
	}
	return u, err
}

func (r *UserRepo) ByUsername(username string) (User, error) {
	var u User
	err := r.DB.First(&u, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrNotFound
	}
	return u, err
}

func (r *UserRepo) ByID(id uint64) (User, error) {
	var u User
	err := r.DB.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, ErrNotFound
	}
	return u, err
}
