// Package serializers maps store records to wire representations. Derived
// fields (nombre_posts, reply_count) are recomputed on every read so they can
// never go stale.
package serializers

import (
	"time"

	"tribune/internal/db"
	"tribune/internal/models"
	"tribune/internal/utils"
)

type UserResponse struct {
	ID              uint      `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Bio             string    `json:"bio"`
	Avatar          string    `json:"avatar"`
	DateInscription time.Time `json:"date_inscription"`
	NombrePosts     int       `json:"nombre_posts"`
}

// PublicUser is the minimal projection returned inside auth envelopes.
type PublicUser struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TopicListItem struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Category       string    `json:"category"`
	Author         uint      `json:"author"`
	AuthorUsername string    `json:"author_username"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Views          int       `json:"views"`
	IsPinned       bool      `json:"is_pinned"`
	IsClosed       bool      `json:"is_closed"`
	ReplyCount     int       `json:"reply_count"`
}

type TopicDetail struct {
	ID             uint            `json:"id"`
	Title          string          `json:"title"`
	Content        string          `json:"content"`
	ContentHTML    string          `json:"content_html"`
	Category       string          `json:"category"`
	Author         uint            `json:"author"`
	AuthorUsername string          `json:"author_username"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	Views          int             `json:"views"`
	IsPinned       bool            `json:"is_pinned"`
	IsClosed       bool            `json:"is_closed"`
	ReplyCount     int             `json:"reply_count"`
	Replies        []ReplyResponse `json:"replies"`
}

type ReplyResponse struct {
	ID             uint      `json:"id"`
	Topic          uint      `json:"topic"`
	Author         uint      `json:"author"`
	AuthorUsername string    `json:"author_username"`
	Content        string    `json:"content"`
	ContentHTML    string    `json:"content_html"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Likes          int       `json:"likes"`
}

// User serializes a single user, counting their topics at read time.
func User(u *models.User) UserResponse {
	var count int64
	db.DB.Model(&models.Topic{}).Where("author_id = ?", u.ID).Count(&count)
	return userResponse(u, int(count))
}

// Users serializes a batch with a single grouped count query.
func Users(users []models.User) []UserResponse {
	counts := topicCountsByAuthor(users)
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userResponse(&users[i], counts[users[i].ID]))
	}
	return out
}

func userResponse(u *models.User, nombrePosts int) UserResponse {
	return UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Bio:             u.Bio,
		Avatar:          u.Avatar,
		DateInscription: u.DateInscription,
		NombrePosts:     nombrePosts,
	}
}

// topicCountsByAuthor 批量查询用户的主题数量
func topicCountsByAuthor(users []models.User) map[uint]int {
	countMap := make(map[uint]int)
	if len(users) == 0 {
		return countMap
	}

	userIDs := make([]uint, len(users))
	for i, u := range users {
		userIDs[i] = u.ID
	}

	type countResult struct {
		AuthorID uint
		Count    int
	}
	var results []countResult
	db.DB.Model(&models.Topic{}).
		Select("author_id, COUNT(*) as count").
		Where("author_id IN ?", userIDs).
		Group("author_id").
		Scan(&results)

	for _, r := range results {
		countMap[r.AuthorID] = r.Count
	}
	return countMap
}

// TopicList serializes topics for list endpoints. Author must be preloaded.
func TopicList(topics []models.Topic) []TopicListItem {
	counts := replyCountsByTopic(topics)
	out := make([]TopicListItem, 0, len(topics))
	for i := range topics {
		t := &topics[i]
		out = append(out, TopicListItem{
			ID:             t.ID,
			Title:          t.Title,
			Category:       t.Category,
			Author:         t.AuthorID,
			AuthorUsername: t.Author.Username,
			CreatedAt:      t.CreatedAt,
			UpdatedAt:      t.UpdatedAt,
			Views:          t.Views,
			IsPinned:       t.IsPinned,
			IsClosed:       t.IsClosed,
			ReplyCount:     counts[t.ID],
		})
	}
	return out
}

// replyCountsByTopic 批量填充主题的回复数量
func replyCountsByTopic(topics []models.Topic) map[uint]int {
	countMap := make(map[uint]int)
	if len(topics) == 0 {
		return countMap
	}

	topicIDs := make([]uint, len(topics))
	for i, t := range topics {
		topicIDs[i] = t.ID
	}

	type countResult struct {
		TopicID uint
		Count   int
	}
	var results []countResult
	db.DB.Model(&models.Reply{}).
		Select("topic_id, COUNT(*) as count").
		Where("topic_id IN ?", topicIDs).
		Group("topic_id").
		Scan(&results)

	for _, r := range results {
		countMap[r.TopicID] = r.Count
	}
	return countMap
}

// Topic serializes a full topic with its replies. Author associations must be
// preloaded on both the topic and the replies.
func Topic(t *models.Topic, replies []models.Reply) TopicDetail {
	serialized := Replies(replies)
	return TopicDetail{
		ID:             t.ID,
		Title:          t.Title,
		Content:        t.Content,
		ContentHTML:    utils.RenderMarkdown(t.Content),
		Category:       t.Category,
		Author:         t.AuthorID,
		AuthorUsername: t.Author.Username,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
		Views:          t.Views,
		IsPinned:       t.IsPinned,
		IsClosed:       t.IsClosed,
		ReplyCount:     len(serialized),
		Replies:        serialized,
	}
}

func Reply(r *models.Reply) ReplyResponse {
	return ReplyResponse{
		ID:             r.ID,
		Topic:          r.TopicID,
		Author:         r.AuthorID,
		AuthorUsername: r.Author.Username,
		Content:        r.Content,
		ContentHTML:    utils.RenderMarkdown(r.Content),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		Likes:          r.Likes,
	}
}

func Replies(replies []models.Reply) []ReplyResponse {
	out := make([]ReplyResponse, 0, len(replies))
	for i := range replies {
		out = append(out, Reply(&replies[i]))
	}
	return out
}
