package Controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikisathe/Doctor-appointment-booking/Ledgers"
	"github.com/nikisathe/Doctor-appointment-booking/Utils"
	"github.com/nikisathe/Doctor-appointment-booking/Utils/Token"
)

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := Accounts.FindByCredentials(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email or password is incorrect."})
		return
	}

	token, tokenID, err := Token.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}
	if err := Utils.SaveSession(tokenID, Utils.Session{UserID: user.ID, Email: user.Email}); err != nil {
		log.Println(err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login Successful", "jwt": token, "user": user})
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register creates the account and logs it straight in: signup doubles as
// the first login.
func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := Accounts.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		if errors.Is(err, Ledgers.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "An account with this email already exists."})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, tokenID, err := Token.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}
	if err := Utils.SaveSession(tokenID, Utils.Session{UserID: user.ID, Email: user.Email}); err != nil {
		log.Println(err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registered Successfully", "jwt": token, "user": user})
}

// Logout revokes the server-side session for the presented token.
func Logout(c *gin.Context) {
	claims, err := Token.ExtractClaims(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Utils.DeleteSession(claims.ID); err != nil {
		log.Println(err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged Out"})
}

// CurrentUser returns the account behind the bearer token, credential
// stripped.
func CurrentUser(c *gin.Context) {
	userID, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := Accounts.ByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success", "data": user})
}
