package feed

import (
	"context"
	"time"

	"yatube/internal/models"
	"yatube/internal/repository"
)

// DefaultProfilePhoto is served for users who never uploaded a photo.
const DefaultProfilePhoto = "media/profile.jpg"

// AuthorRef identifies a post or comment author in feed responses.
type AuthorRef struct {
	Username string `json:"username"`
	Photo    string `json:"photo"`
}

// GroupRef identifies the group a post belongs to.
type GroupRef struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// PostItem is one post as rendered into any feed.
type PostItem struct {
	ID           uint      `json:"id"`
	Text         string    `json:"text"`
	PubDate      time.Time `json:"pub_date"`
	Author       AuthorRef `json:"author"`
	Group        *GroupRef `json:"group,omitempty"`
	Image        string    `json:"image,omitempty"`
	CommentCount int64     `json:"comment_count"`
}

// CommentItem is one comment on the post detail page.
type CommentItem struct {
	ID      uint      `json:"id"`
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
	Author  AuthorRef `json:"author"`
}

// Page is one page of a post feed.
type Page struct {
	Meta
	Posts []PostItem `json:"posts"`
}

// GroupPage is one page of a group's feed plus the group header.
type GroupPage struct {
	Group       GroupRef `json:"group"`
	Description string   `json:"description"`
	Page
}

// ProfilePage is one page of an author's posts plus the profile header.
type ProfilePage struct {
	Username    string `json:"username"`
	Photo       string `json:"photo"`
	PostCount   int64  `json:"post_count"`
	Followers   int64  `json:"followers"`
	Following   int64  `json:"following"`
	IsFollowing bool   `json:"is_following"`
	Page
}

// PostDetail is a single post with its comments and the author header.
type PostDetail struct {
	Post      PostItem      `json:"post"`
	Comments  []CommentItem `json:"comments"`
	PostCount int64         `json:"post_count"`
	Followers int64         `json:"followers"`
	Following int64         `json:"following"`
}

// Engine builds feed pages out of the repositories. It holds no state of
// its own; every call reads the current data.
type Engine struct {
	posts    repository.PostRepository
	comments repository.CommentRepository
	follows  repository.FollowRepository
	photos   repository.PhotoRepository
	users    repository.UserRepository
	groups   repository.GroupRepository
}

// NewEngine creates a feed engine over the given repositories.
func NewEngine(
	posts repository.PostRepository,
	comments repository.CommentRepository,
	follows repository.FollowRepository,
	photos repository.PhotoRepository,
	users repository.UserRepository,
	groups repository.GroupRepository,
) *Engine {
	return &Engine{
		posts:    posts,
		comments: comments,
		follows:  follows,
		photos:   photos,
		users:    users,
		groups:   groups,
	}
}

// Global returns one page of the site-wide feed, newest first.
func (e *Engine) Global(ctx context.Context, page int) (*Page, error) {
	posts, err := e.posts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return e.buildPage(ctx, posts, page)
}

// Group returns one page of a group's feed. An unknown slug is a not
// found error, never an empty page.
func (e *Engine) Group(ctx context.Context, slug string, page int) (*GroupPage, error) {
	group, err := e.groups.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	posts, err := e.posts.ListByGroupID(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	p, err := e.buildPage(ctx, posts, page)
	if err != nil {
		return nil, err
	}

	return &GroupPage{
		Group:       GroupRef{Title: group.Title, Slug: group.Slug},
		Description: group.Description,
		Page:        *p,
	}, nil
}

// Profile returns one page of an author's posts with follower counts.
// viewerID is zero for anonymous visitors, whose IsFollowing is false.
func (e *Engine) Profile(ctx context.Context, username string, viewerID uint, page int) (*ProfilePage, error) {
	author, err := e.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	posts, err := e.posts.ListByAuthorID(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	p, err := e.buildPage(ctx, posts, page)
	if err != nil {
		return nil, err
	}

	followers, err := e.follows.CountFollowers(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	following, err := e.follows.CountFollowing(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	isFollowing := false
	if viewerID != 0 && viewerID != author.ID {
		isFollowing, err = e.follows.Exists(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	return &ProfilePage{
		Username:    author.Username,
		Photo:       e.photoFor(ctx, author.ID),
		PostCount:   int64(len(posts)),
		Followers:   followers,
		Following:   following,
		IsFollowing: isFollowing,
		Page:        *p,
	}, nil
}

// Following returns one page of posts by authors the viewer follows.
func (e *Engine) Following(ctx context.Context, viewerID uint, page int) (*Page, error) {
	posts, err := e.posts.ListFollowed(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return e.buildPage(ctx, posts, page)
}

// PostDetail returns a single post addressed by author username and post id,
// with its comments newest first and the author header counts.
func (e *Engine) PostDetail(ctx context.Context, username string, postID uint) (*PostDetail, error) {
	author, err := e.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	post, err := e.posts.GetByAuthorAndID(ctx, author.ID, postID)
	if err != nil {
		return nil, err
	}

	items, err := e.buildItems(ctx, []models.Post{*post})
	if err != nil {
		return nil, err
	}

	comments, err := e.comments.ListByPostID(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	authorIDs := make([]uint, 0, len(comments))
	for _, c := range comments {
		authorIDs = append(authorIDs, c.AuthorID)
	}
	photoMap, err := e.photos.MapByUserIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	commentItems := make([]CommentItem, 0, len(comments))
	for _, c := range comments {
		commentItems = append(commentItems, CommentItem{
			ID:      c.ID,
			Text:    c.Text,
			Created: c.Created,
			Author: AuthorRef{
				Username: c.Author.Username,
				Photo:    photoOrDefault(photoMap, c.AuthorID),
			},
		})
	}

	postCount, err := e.posts.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	followers, err := e.follows.CountFollowers(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	following, err := e.follows.CountFollowing(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	return &PostDetail{
		Post:      items[0],
		Comments:  commentItems,
		PostCount: postCount,
		Followers: followers,
		Following: following,
	}, nil
}

// buildPage paginates the ordered post set and renders only the page slice.
func (e *Engine) buildPage(ctx context.Context, posts []models.Post, page int) (*Page, error) {
	slice, meta := Paginate(posts, page)
	items, err := e.buildItems(ctx, slice)
	if err != nil {
		return nil, err
	}
	return &Page{Meta: meta, Posts: items}, nil
}

func (e *Engine) buildItems(ctx context.Context, posts []models.Post) ([]PostItem, error) {
	authorIDs := make([]uint, 0, len(posts))
	for _, p := range posts {
		authorIDs = append(authorIDs, p.AuthorID)
	}
	photoMap, err := e.photos.MapByUserIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	items := make([]PostItem, 0, len(posts))
	for _, p := range posts {
		count, err := e.comments.CountByPostID(ctx, p.ID)
		if err != nil {
			return nil, err
		}

		item := PostItem{
			ID:      p.ID,
			Text:    p.Text,
			PubDate: p.PubDate,
			Author: AuthorRef{
				Username: p.Author.Username,
				Photo:    photoOrDefault(photoMap, p.AuthorID),
			},
			Image:        p.Image,
			CommentCount: count,
		}
		if p.Group != nil {
			item.Group = &GroupRef{Title: p.Group.Title, Slug: p.Group.Slug}
		}
		items = append(items, item)
	}
	return items, nil
}

func (e *Engine) photoFor(ctx context.Context, userID uint) string {
	photo, err := e.photos.GetByUserID(ctx, userID)
	if err != nil || photo == nil {
		return DefaultProfilePhoto
	}
	return photo.Photo
}

func photoOrDefault(photos map[uint]string, userID uint) string {
	if image, ok := photos[userID]; ok {
		return image
	}
	return DefaultProfilePhoto
}
