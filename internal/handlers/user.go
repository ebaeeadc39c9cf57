package handlers

import (
	"errors"
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

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// UserUpdateRequest carries a partial update: only non-nil fields are applied.
type UserUpdateRequest struct {
	Username  *string `json:"username" binding:"omitempty,max=150"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Password  *string `json:"password"`
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
	Bio       *string `json:"bio" binding:"omitempty,max=500"`
	Avatar    *string `json:"avatar"`
}

// validate rejects explicit blanks on fields that may be omitted but never
// emptied. Bio, avatar and name fields remain clearable.
func (req *UserUpdateRequest) validate() error {
	fields := make(map[string][]string)
	blank := func(name string, v *string) {
		if v != nil && strings.TrimSpace(*v) == "" {
			fields[name] = append(fields[name], "Ce champ ne peut être vide.")
		}
	}
	blank("username", req.Username)
	blank("email", req.Email)
	blank("password", req.Password)
	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}

// applyUserUpdate overwrites only the supplied fields and persists the record.
func applyUserUpdate(user *models.User, req *UserUpdateRequest) error {
	if err := req.validate(); err != nil {
		return err
	}

	username, email := "", ""
	if req.Username != nil {
		username = *req.Username
	}
	if req.Email != nil {
		email = *req.Email
	}
	if err := checkUniqueness(username, email, user.ID); err != nil {
		return err
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return apperrors.NewInternal("Échec du hachage du mot de passe", err)
		}
		user.Password = hash
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Avatar != nil {
		// Avatar replaced wholesale when present
		user.Avatar = *req.Avatar
	}

	if err := db.DB.Save(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return duplicateUserError(username, email, user.ID)
		}
		return apperrors.NewInternal("Échec de la mise à jour de l'utilisateur", err)
	}
	return nil
}

// List handles GET /user/: all users, newest registration first.
func (h *UserHandler) List(c *gin.Context) {
	var users []models.User
	db.DB.Order("date_inscription DESC").Find(&users)
	c.JSON(http.StatusOK, serializers.Users(users))
}

// Create handles POST /user/: same validation as register, no token envelope.
func (h *UserHandler) Create(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, BindingError(err))
		return
	}

	user, err := createUser(req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, serializers.User(user))
}

// Retrieve handles GET /user/:id/.
func (h *UserHandler) Retrieve(c *gin.Context) {
	var user models.User
	if err := db.DB.First(&user, utils.StringToUint(c.Param("id"))).Error; err != nil {
		AbortWithError(c, apperrors.NewNotFound("Utilisateur introuvable"))
		return
	}
	c.JSON(http.StatusOK, serializers.User(&user))
}

// Update handles PUT/PATCH /user/:id/ with partial semantics.
func (h *UserHandler) Update(c *gin.Context) {
	var user models.User
	if err := db.DB.First(&user, utils.StringToUint(c.Param("id"))).Error; err != nil {
		AbortWithError(c, apperrors.NewNotFound("Utilisateur introuvable"))
		return
	}

	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, BindingError(err))
		return
	}

	if err := applyUserUpdate(&user, &req); err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, serializers.User(&user))
}

// Destroy handles DELETE /user/:id/. Topics and replies go with the account
// through the schema's cascading foreign keys.
func (h *UserHandler) Destroy(c *gin.Context) {
	var user models.User
	if err := db.DB.First(&user, utils.StringToUint(c.Param("id"))).Error; err != nil {
		AbortWithError(c, apperrors.NewNotFound("Utilisateur introuvable"))
		return
	}

	if err := db.DB.Delete(&user).Error; err != nil {
		AbortWithError(c, apperrors.NewInternal("Échec de la suppression de l'utilisateur", err))
		return
	}
	c.Status(http.StatusNoContent)
}
