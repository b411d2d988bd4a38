// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"yatube/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. All seeded users share
// the password "Password123" so any of them can be used to log in.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	user := &models.User{
		Username: gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: string(hashed),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateGroup constructs and persists a topical group with a unique slug.
func (f *Factory) CreateGroup(overrides ...func(*models.Group)) (*models.Group, error) {
	title := gofakeit.BookTitle()
	group := &models.Group{
		Title:       title,
		Slug:        slugify(title) + fmt.Sprintf("-%d", gofakeit.Number(100, 999)),
		Description: gofakeit.Sentence(12),
	}

	for _, override := range overrides {
		override(group)
	}

	if err := f.db.Create(group).Error; err != nil {
		return nil, err
	}
	return group, nil
}

// CreatePost constructs and persists a post by the given author, optionally
// in a group. CreatedAt is spread over the past maxDays so feeds look lived-in.
func (f *Factory) CreatePost(author *models.User, group *models.Group, maxDays int, overrides ...func(*models.Post)) (*models.Post, error) {
	if maxDays <= 0 {
		maxDays = 90
	}

	post := &models.Post{
		Text:     gofakeit.Paragraph(1, 3, 8, "\n"),
		AuthorID: author.ID,
		CreatedAt: time.Now().
			Add(-time.Duration(f.rand.Intn(maxDays)) * 24 * time.Hour).
			Add(-time.Duration(f.rand.Intn(24)) * time.Hour).
			Add(-time.Duration(f.rand.Intn(60)) * time.Minute),
	}
	if group != nil {
		post.GroupID = &group.ID
	}
	if f.rand.Intn(4) == 0 {
		post.ImageRef = fmt.Sprintf("posts/%s.jpg", gofakeit.UUID())
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateComment constructs and persists a comment on the given post.
func (f *Factory) CreateComment(post *models.Post, author *models.User, overrides ...func(*models.Comment)) (*models.Comment, error) {
	postID := post.ID
	authorID := author.ID
	comment := &models.Comment{
		PostID:   &postID,
		AuthorID: &authorID,
		Text:     gofakeit.Sentence(f.rand.Intn(15) + 3),
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateFollow persists a follow relation. Duplicate pairs are skipped by
// the unique index, so callers may retry freely.
func (f *Factory) CreateFollow(user, author *models.User) error {
	if user.ID == author.ID {
		return nil
	}
	follow := &models.Follow{UserID: user.ID, AuthorID: author.ID}
	err := f.db.Create(follow).Error
	if err != nil && strings.Contains(strings.ToLower(err.Error()), "unique") {
		return nil
	}
	return err
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
