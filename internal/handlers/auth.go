package handlers

import (
	"errors"
	"net/http"

	"tribune/internal/apperrors"
	"tribune/internal/db"
	"tribune/internal/models"
	"tribune/internal/serializers"
	"tribune/internal/services"
	"tribune/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,max=150"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
	Bio       string `json:"bio" binding:"max=500"`
	Avatar    string `json:"avatar"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// createUser 创建新用户的通用函数 (register 和 POST /user/ 共用)
func createUser(req RegisterRequest) (*models.User, error) {
	if err := checkUniqueness(req.Username, req.Email, 0); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.NewInternal("Échec du hachage du mot de passe", err)
	}

	user := models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hash,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Avatar:    req.Avatar,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race against a concurrent registration after the
			// uniqueness check passed.
			return nil, duplicateUserError(req.Username, req.Email, 0)
		}
		return nil, apperrors.NewInternal("Échec de la création de l'utilisateur", err)
	}
	return &user, nil
}

// duplicateUserError turns a unique-index violation into the same field-keyed
// response the pre-insert check produces.
func duplicateUserError(username, email string, excludeID uint) error {
	if err := checkUniqueness(username, email, excludeID); err != nil {
		return err
	}
	return apperrors.NewValidation(map[string][]string{
		"username": {"Un utilisateur avec ce nom existe déjà."},
	})
}

// checkUniqueness collects duplicate username/email failures into one
// field-keyed validation error. excludeID skips the record being updated.
func checkUniqueness(username, email string, excludeID uint) error {
	fields := make(map[string][]string)

	if username != "" {
		var count int64
		db.DB.Model(&models.User{}).Where("username = ? AND id <> ?", username, excludeID).Count(&count)
		if count > 0 {
			fields["username"] = append(fields["username"], "Un utilisateur avec ce nom existe déjà.")
		}
	}
	if email != "" {
		var count int64
		db.DB.Model(&models.User{}).Where("email = ? AND id <> ?", email, excludeID).Count(&count)
		if count > 0 {
			fields["email"] = append(fields["email"], "Un utilisateur avec cet email existe déjà.")
		}
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}

// Register handles POST /register/: creates the account and issues its token.
func (h *AuthHandler) Register(c *gin.Context) {
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

	token, err := services.GetOrCreateToken(user.ID)
	if err != nil {
		AbortWithError(c, apperrors.NewInternal("Échec de la création du token", err))
		return
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("User registered")
	c.JSON(http.StatusCreated, gin.H{
		"token": token.Key,
		"user": serializers.PublicUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	})
}

// Login handles POST /login/: verifies credentials and reuses the account's token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	// Ignore malformed bodies here: missing fields get the same 400 below.
	_ = c.ShouldBindJSON(&req)

	if req.Username == "" || req.Password == "" {
		AbortWithError(c, apperrors.NewBadRequest("Veuillez fournir un nom d'utilisateur et un mot de passe"))
		return
	}

	var user models.User
	if err := db.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			AbortWithError(c, apperrors.NewInternal("Échec de la recherche de l'utilisateur", err))
			return
		}
		AbortWithError(c, apperrors.NewAuthentication("Nom d'utilisateur ou mot de passe incorrect"))
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		logrus.WithField("username", req.Username).Warn("Login attempt with invalid password")
		AbortWithError(c, apperrors.NewAuthentication("Nom d'utilisateur ou mot de passe incorrect"))
		return
	}

	token, err := services.GetOrCreateToken(user.ID)
	if err != nil {
		AbortWithError(c, apperrors.NewInternal("Échec de la création du token", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token.Key,
		"user": serializers.PublicUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
	})
}

// Me handles GET /me/: the caller's own serialized record.
func (h *AuthHandler) Me(c *gin.Context) {
	user := CurrentUser(c)
	c.JSON(http.StatusOK, serializers.User(user))
}

// UpdateProfile handles PUT/PATCH /profile/: partial update of the caller's record.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user := CurrentUser(c)

	var req UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, BindingError(err))
		return
	}

	if err := applyUserUpdate(user, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, serializers.User(user))
}
