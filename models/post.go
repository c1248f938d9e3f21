package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID        uint64    `gorm:"primaryKey"`
	Title     string    `gorm:"type:varchar(50);not null"`
	Content   string    `gorm:"type:varchar(500);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// Posts are stamped in a fixed timezone, independent of the server locale.
var postLocation = mustLoadLocation("Asia/Shanghai")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// PostRepo provides access to stored posts.
type PostRepo struct {
	DB *gorm.DB
}

func (r *PostRepo) List() ([]Post, error) {
	posts := []Post{}
	return posts, r.DB.Find(&posts).Error
}

func (r *PostRepo) Get(id uint64) (Post, error) {
	var post Post
	err := r.DB.First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Post{}, ErrNotFound
	}
	return post, err
}

func (r *PostRepo) Create(title, content string) (Post, error) {
	post := Post{
		Title:     title,
		Content:   content,
		CreatedAt: time.Now().In(postLocation),
	}
	return post, r.DB.Create(&post).Error
}

// Update overwrites title and content of an existing post. CreatedAt is
// left untouched.
func (r *PostRepo) Update(id uint64, title, content string) (Post, error) {
	post, err := r.Get(id)
	if err != nil {
		return Post{}, err
	}
	post.Title = title
	post.Content = content
	err = r.DB.Model(&post).Updates(map[string]interface{}{
		"title":   title,
		"content": content,
	}).Error
	return post, err
}

func (r *PostRepo) Delete(id uint64) error {
	result := r.DB.Delete(&Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
