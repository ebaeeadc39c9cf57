package handlers

import (
	"net/http"
	"strings"

	"tribune/internal/config"
	"tribune/internal/db"
	"tribune/internal/models"
	"tribune/internal/serializers"

	"github.com/gin-gonic/gin"
)

// SearchHandler caps each result set at limit (SEARCH_LIMIT, default 20).
// Stats are never capped.
type SearchHandler struct {
	limit int
}

func NewSearchHandler() *SearchHandler {
	return &SearchHandler{limit: config.Load().SearchLimit}
}

// Search handles GET /search/?q=: independent case-insensitive substring scans
// over topics and users, merged into one response.
func (h *SearchHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	topics := make([]models.Topic, 0)
	users := make([]models.User, 0)

	if query != "" {
		searchPattern := "%" + query + "%"

		db.DB.Preload("Author").
			Where("title ILIKE ? OR content ILIKE ?", searchPattern, searchPattern).
			Order("created_at DESC").
			Limit(h.limit).
			Find(&topics)

		db.DB.
			Where("username ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR bio ILIKE ?",
				searchPattern, searchPattern, searchPattern, searchPattern).
			Limit(h.limit).
			Find(&users)
	}

	c.JSON(http.StatusOK, gin.H{
		"topics": serializers.TopicList(topics),
		"users":  serializers.Users(users),
	})
}

// Stats handles GET /search/stats/: uncapped aggregate counts.
func (h *SearchHandler) Stats(c *gin.Context) {
	var totalUsers, totalTopics, totalReplies int64
	db.DB.Model(&models.User{}).Count(&totalUsers)
	db.DB.Model(&models.Topic{}).Count(&totalTopics)
	db.DB.Model(&models.Reply{}).Count(&totalReplies)

	c.JSON(http.StatusOK, gin.H{
		"total_users":   totalUsers,
		"total_topics":  totalTopics,
		"total_replies": totalReplies,
	})
}
