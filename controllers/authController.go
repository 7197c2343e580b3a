package controllers

import (
	"context"
	"net/http"
	"time"

	"uplift-be/models"
	"uplift-be/utils"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AuthController manages the accounts that bearer tokens are minted for.
type AuthController struct {
	users     *mongo.Collection
	jwtSecret string
}

func NewAuthController(db *mongo.Database, jwtSecret string) *AuthController {
	return &AuthController{users: db.Collection("users"), jwtSecret: jwtSecret}
}

// Register handles POST /api/auth/register.
func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	count, err := ac.users.CountDocuments(ctx, bson.M{"email": input.Email})
	if err != nil {
		log.WithError(err).Error("failed to check existing user")
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}
	if count > 0 {
		respondError(c, http.StatusBadRequest, "User with this email already exists")
		return
	}

	now := time.Now().UTC()
	user := models.User{
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := user.HashPassword(); err != nil {
		log.WithError(err).Error("failed to hash password")
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	result, err := ac.users.InsertOne(ctx, user)
	if err != nil {
		log.WithError(err).Error("failed to insert user")
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"id":         result.InsertedID,
			"name":       user.Name,
			"email":      user.Email,
			"created_at": user.CreatedAt,
		},
	})
}

// Login handles POST /api/auth/login, returning a bearer token for the write
// endpoints.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	var user models.User
	if err := ac.users.FindOne(ctx, bson.M{"email": input.Email}).Decode(&user); err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !user.ComparePassword(input.Password) {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.Hex(), ac.jwtSecret)
	if err != nil {
		log.WithError(err).Error("failed to generate token")
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token": token,
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
		},
	})
}

// Me handles GET /api/auth/me for the authenticated account.
func (ac *AuthController) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	objectID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	var user models.User
	if err := ac.users.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user); err != nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"id":         user.ID,
			"name":       user.Name,
			"email":      user.Email,
			"created_at": user.CreatedAt,
		},
	})
}
