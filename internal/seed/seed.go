package seed

import (
	"fmt"
	"log"

	"yatube/internal/models"

	"gorm.io/gorm"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumGroups   int
	NumPosts    int
	NumComments int
	MaxDays     int
	ShouldClean bool
}

// DefaultOptions returns a small but lived-in data set.
func DefaultOptions() Options {
	return Options{
		NumUsers:    20,
		NumGroups:   6,
		NumPosts:    120,
		NumComments: 300,
		MaxDays:     90,
	}
}

// Seed populates the database with demo users, groups, posts, comments, and
// a follow mesh.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users, %d groups, %d posts, %d comments...",
		opts.NumUsers, opts.NumGroups, opts.NumPosts, opts.NumComments)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	f := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := f.CreateUser()
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("created %d users", len(users))

	groups := make([]*models.Group, 0, opts.NumGroups)
	for i := 0; i < opts.NumGroups; i++ {
		group, err := f.CreateGroup()
		if err != nil {
			return fmt.Errorf("failed to create group: %w", err)
		}
		groups = append(groups, group)
	}
	log.Printf("created %d groups", len(groups))

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[f.rand.Intn(len(users))]
		// Roughly a third of posts stay ungrouped.
		var group *models.Group
		if len(groups) > 0 && f.rand.Intn(3) != 0 {
			group = groups[f.rand.Intn(len(groups))]
		}
		post, err := f.CreatePost(author, group, opts.MaxDays)
		if err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("created %d posts", len(posts))

	for i := 0; i < opts.NumComments && len(posts) > 0; i++ {
		post := posts[f.rand.Intn(len(posts))]
		author := users[f.rand.Intn(len(users))]
		if _, err := f.CreateComment(post, author); err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
	}
	log.Printf("created %d comments", opts.NumComments)

	follows := 0
	for _, user := range users {
		for i := 0; i < f.rand.Intn(6); i++ {
			author := users[f.rand.Intn(len(users))]
			if err := f.CreateFollow(user, author); err != nil {
				return fmt.Errorf("failed to create follow: %w", err)
			}
			follows++
		}
	}
	log.Printf("created follow mesh (%d attempts)", follows)

	log.Println("Seeding complete")
	return nil
}

// clearData removes all seeded rows, children before parents.
func clearData(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.Comment{},
		&models.Follow{},
		&models.Post{},
		&models.Group{},
		&models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
