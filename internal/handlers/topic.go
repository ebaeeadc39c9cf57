package handlers

import (
	"net/http"
	"strings"

	"tribune/internal/apperrors"
	"tribune/internal/db"
	"tribune/internal/models"
	"tribune/internal/serializers"
	"tribune/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TopicHandler struct{}

func NewTopicHandler() *TopicHandler {
	return &TopicHandler{}
}

type TopicCreateRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
}

type TopicUpdateRequest struct {
	Title    *string `json:"title" binding:"omitempty,max=200"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
	IsPinned *bool   `json:"is_pinned"`
	IsClosed *bool   `json:"is_closed"`
}

// validate rejects explicit blank values on required fields: a partial update
// may omit title or content, never empty them.
func (req *TopicUpdateRequest) validate() error {
	fields := make(map[string][]string)
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		fields["title"] = append(fields["title"], "Ce champ ne peut être vide.")
	}
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		fields["content"] = append(fields["content"], "Ce champ ne peut être vide.")
	}
	if req.Category != nil && !models.ValidCategory(*req.Category) {
		fields["category"] = append(fields["category"], "\""+*req.Category+"\" n'est pas un choix valide.")
	}
	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}

func invalidCategoryError(category string) error {
	return apperrors.NewValidation(map[string][]string{
		"category": {"\"" + category + "\" n'est pas un choix valide."},
	})
}

func findTopic(c *gin.Context) (*models.Topic, error) {
	var topic models.Topic
	err := db.DB.Preload("Author").First(&topic, utils.StringToUint(c.Param("id"))).Error
	if err != nil {
		return nil, apperrors.NewNotFound("Topic introuvable")
	}
	return &topic, nil
}

func topicReplies(topicID uint) []models.Reply {
	var replies []models.Reply
	db.DB.Preload("Author").
		Where("topic_id = ?", topicID).
		Order("created_at ASC").
		Find(&replies)
	return replies
}

// List handles GET /topics/: pinned first, then newest. Open to everyone.
func (h *TopicHandler) List(c *gin.Context) {
	var topics []models.Topic
	db.DB.Preload("Author").
		Order("is_pinned DESC, created_at DESC").
		Find(&topics)
	c.JSON(http.StatusOK, serializers.TopicList(topics))
}

// Create handles POST /topics/. The author is always the caller, whatever the
// payload claims.
func (h *TopicHandler) Create(c *gin.Context) {
	user := CurrentUser(c)

	var req TopicCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, BindingError(err))
		return
	}
	if req.Category == "" {
		req.Category = models.CategoryGeneral
	}
	if !models.ValidCategory(req.Category) {
		AbortWithError(c, invalidCategoryError(req.Category))
		return
	}

	topic := models.Topic{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		AuthorID: user.ID,
	}
	if err := db.DB.Create(&topic).Error; err != nil {
		AbortWithError(c, apperrors.NewInternal("Échec de la création du topic", err))
		return
	}

	topic.Author = *user
	c.JSON(http.StatusCreated, serializers.Topic(&topic, nil))
}

// Retrieve handles GET /topics/:id/. Each successful fetch bumps the view
// counter by exactly one before the representation is rendered; the increment
// runs as a single SQL expression so concurrent readers cannot lose updates.
func (h *TopicHandler) Retrieve(c *gin.Context) {
	topic, err := findTopic(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if err := db.DB.Model(topic).UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		AbortWithError(c, apperrors.NewInternal("Échec de l'incrémentation des vues", err))
		return
	}
	topic.Views++

	c.JSON(http.StatusOK, serializers.Topic(topic, topicReplies(topic.ID)))
}

// Update handles PUT/PATCH /topics/:id/, author only.
func (h *TopicHandler) Update(c *gin.Context) {
	user := CurrentUser(c)
	topic, err := findTopic(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	// 验证是否为作者
	if topic.AuthorID != user.ID {
		AbortWithError(c, apperrors.NewForbidden("Vous ne pouvez modifier que vos propres topics"))
		return
	}

	var req TopicUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, BindingError(err))
		return
	}

	if err := req.validate(); err != nil {
		AbortWithError(c, err)
		return
	}

	if req.Title != nil {
		topic.Title = *req.Title
	}
	if req.Content != nil {
		topic.Content = *req.Content
	}
	if req.Category != nil {
		topic.Category = *req.Category
	}
	if req.IsPinned != nil {
		topic.IsPinned = *req.IsPinned
	}
	if req.IsClosed != nil {
		topic.IsClosed = *req.IsClosed
	}

	if err := db.DB.Save(topic).Error; err != nil {
		AbortWithError(c, apperrors.NewInternal("Échec de la mise à jour du topic", err))
		return
	}

	c.JSON(http.StatusOK, serializers.Topic(topic, topicReplies(topic.ID)))
}

// Destroy handles DELETE /topics/:id/, author only. Replies cascade.
func (h *TopicHandler) Destroy(c *gin.Context) {
	user := CurrentUser(c)
	topic, err := findTopic(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if topic.AuthorID != user.ID {
		AbortWithError(c, apperrors.NewForbidden("Vous ne pouvez supprimer que vos propres topics"))
		return
	}

	if err := db.DB.Delete(topic).Error; err != nil {
		AbortWithError(c, apperrors.NewInternal("Échec de la suppression du topic", err))
		return
	}
	c.Status(http.StatusNoContent)
}
