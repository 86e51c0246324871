package seed

import (
	"fmt"
	"log"

	"yatube/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

var defaultGroups = []struct {
	Title string
	Slug  string
}{
	{"Technology", "technology"},
	{"Travel", "travel"},
	{"Books", "books"},
	{"Music", "music"},
	{"Cooking", "cooking"},
	{"Photography", "photography"},
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db)

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user, err := factory.CreateUser(factory.RandomUsername())
		if err != nil {
			return fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, user)
	}
	log.Printf("%d test users created", len(users))

	groups := make([]*models.Group, 0, len(defaultGroups))
	for _, g := range defaultGroups {
		group, err := factory.CreateGroup(g.Title, g.Slug)
		if err != nil {
			return fmt.Errorf("failed to create groups: %w", err)
		}
		groups = append(groups, group)
	}
	log.Printf("%d groups created", len(groups))

	if len(users) == 0 {
		return nil
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[factory.rnd.Intn(len(users))]
		var group *models.Group
		// Roughly a third of the posts go without a group
		if factory.rnd.Intn(3) != 0 {
			group = groups[factory.rnd.Intn(len(groups))]
		}
		post, err := factory.CreatePost(author, group, 90)
		if err != nil {
			return fmt.Errorf("failed to create posts: %w", err)
		}
		posts = append(posts, post)
	}
	log.Printf("%d posts created", len(posts))

	commentCount := 0
	for _, post := range posts {
		for i := factory.rnd.Intn(4); i > 0; i-- {
			commenter := users[factory.rnd.Intn(len(users))]
			if _, err := factory.CreateComment(commenter, post); err != nil {
				return fmt.Errorf("failed to create comments: %w", err)
			}
			commentCount++
		}
	}
	log.Printf("%d comments created", commentCount)

	followCount := 0
	for _, user := range users {
		for i := factory.rnd.Intn(5); i > 0; i-- {
			author := users[factory.rnd.Intn(len(users))]
			if err := factory.CreateFollow(user, author); err != nil {
				return fmt.Errorf("failed to create follows: %w", err)
			}
			if user.ID != author.ID {
				followCount++
			}
		}
	}
	log.Printf("%d follow edges created", followCount)

	log.Println("Seeding complete")
	return nil
}

func clearData(db *gorm.DB) error {
	// Children before parents, matching the delete cascades
	for _, model := range []any{
		&models.Comment{},
		&models.Follow{},
		&models.ProfilePhoto{},
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
