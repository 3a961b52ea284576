package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"fleet_office/internal/middleware"
	"fleet_office/internal/models"
	"fleet_office/internal/response"
	"fleet_office/internal/store"
)

type AuthController struct {
	users *store.UserStore
}

func NewAuthController(users *store.UserStore) *AuthController {
	return &AuthController{users: users}
}

// Public signup only hands out the operational roles. Administrative
// roles are assigned out of band, never self-granted.
type signupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"omitempty,oneof=driver helper"`
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctrl *AuthController) Signup(c *gin.Context) {
	var input signupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	role := input.Role
	if role == "" {
		role = models.RoleHelper
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		response.Fail(c, errors.New("could not hash password"))
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
		Phone:    input.Phone,
		Role:     role,
	}

	if err := ctrl.users.Create(&user); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, response.Envelope{
				Success:    false,
				StatusCode: http.StatusConflict,
				Message:    "Email already in use",
			})
			return
		}
		response.Fail(c, err)
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		response.Fail(c, errors.New("could not generate token"))
		return
	}

	response.OK(c, "User registered successfully", gin.H{
		"token": token,
		"user":  user,
	})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := ctrl.users.FindByEmail(input.Email)
	if err != nil {
		response.Fail(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, response.Envelope{
			Success:    false,
			StatusCode: http.StatusUnauthorized,
			Message:    "Invalid credentials",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, response.Envelope{
			Success:    false,
			StatusCode: http.StatusUnauthorized,
			Message:    "Invalid credentials",
		})
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		response.Fail(c, errors.New("could not generate token"))
		return
	}

	response.OK(c, "Logged in successfully", gin.H{
		"token": token,
		"user":  user,
	})
}
