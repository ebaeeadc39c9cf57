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
)

type ReplyHandler struct{}

func NewReplyHandler() *ReplyHandler {
	return &ReplyHandler{}
}

type ReplyCreateRequest struct {
	Content string `json:"content" binding:"required"`
}

type ReplyUpdateRequest struct {
	Content *string `json:"content"`
}

func (req *ReplyUpdateRequest) validate() error {
	if req.Content != nil && strings.TrimSpace(*req.Content) == "" {
		return apperrors.NewValidation(map[string][]string{
			"content": {"Ce champ ne peut être vide."},
		})
	}
	return nil
}

func findReply(c *gin.Context) (*models.Reply, error) {
	var reply models.Reply
	err := db.DB.Preload("Author").First(&reply, utils.StringToUint(c.Param("id"))).Error
	if err != nil {
		return nil, apperrors.NewNotFound("Réponse introuvable")
	}
	return &reply, nil
}

// ListByTopic handles GET /topics/:id/replies/, oldest first.
func (h *ReplyHandler) ListByTopic(c *gin.Context) {
	topic, err := findTopic(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializers.Replies(topicReplies(topic.ID)))
}

// Create handles POST /topics/:id/replies/. Author and topic come from the
// caller and the path, never from the payload.
func (h *ReplyHandler) Create(c *gin.Context) {
	user := CurrentUser(c)
	topic, err := findTopic(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var req ReplyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, BindingError(err))
		return
	}

	reply := models.Reply{
		TopicID:  topic.ID,
		AuthorID: user.ID,
		Content:  req.Content,
	}
	if err := db.DB.Create(&reply).Error; err != nil {
		AbortWithError(c, apperrors.NewInternal("Échec de la création de la réponse", err))
		return
	}

	reply.Author = *user
	c.JSON(http.StatusCreated, serializers.Reply(&reply))
}

// Retrieve handles GET /replies/:id/.
func (h *ReplyHandler) Retrieve(c *gin.Context) {
	reply, err := findReply(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializers.Reply(reply))
}

// Update handles PUT/PATCH /replies/:id/, author only.
func (h *ReplyHandler) Update(c *gin.Context) {
	user := CurrentUser(c)
	reply, err := findReply(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if reply.AuthorID != user.ID {
		AbortWithError(c, apperrors.NewForbidden("Vous ne pouvez modifier que vos propres réponses"))
		return
	}

	var req ReplyUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, BindingError(err))
		return
	}
	if err := req.validate(); err != nil {
		AbortWithError(c, err)
		return
	}

	if req.Content != nil {
		reply.Content = *req.Content
	}

	if err := db.DB.Save(reply).Error; err != nil {
		AbortWithError(c, apperrors.NewInternal("Échec de la mise à jour de la réponse", err))
		return
	}
	c.JSON(http.StatusOK, serializers.Reply(reply))
}

// Destroy handles DELETE /replies/:id/, author only.
func (h *ReplyHandler) Destroy(c *gin.Context) {
	user := CurrentUser(c)
	reply, err := findReply(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if reply.AuthorID != user.ID {
		AbortWithError(c, apperrors.NewForbidden("Vous ne pouvez supprimer que vos propres réponses"))
		return
	}

	if err := db.DB.Delete(reply).Error; err != nil {
		AbortWithError(c, apperrors.NewInternal("Échec de la suppression de la réponse", err))
		return
	}
	c.Status(http.StatusNoContent)
}
