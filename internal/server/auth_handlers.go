package server

import (
	"fmt"
	"strconv"
	"time"

	"yatube/internal/models"
	"yatube/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Signup handles POST /auth/signup
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username" form:"username"`
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Username, email, and password are required"))
	}
	if err := validation.ValidateUsername(req.Username); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(err.Error()))
	}

	// Both username and email must be free
	if _, err := s.userRepo.GetByEmail(c.Context(), req.Email); err == nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewValidationError("User already exists"))
	} else if !models.IsNotFound(err) {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	if _, err := s.userRepo.GetByUsername(c.Context(), req.Username); err == nil {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewValidationError("Username already taken"))
	} else if !models.IsNotFound(err) {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if createErr := s.userRepo.Create(c.Context(), user); createErr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, createErr)
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	s.setTokenCookie(c, token)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// LoginPage handles GET /auth/login. It is the target of the authentication
// redirect and echoes back the next URL the client should return to.
func (s *Server) LoginPage(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Authentication required",
		"next":    c.Query("next", "/"),
	})
}

// Login handles POST /auth/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		if models.IsNotFound(err) {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid credentials"))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); cmpErr != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Invalid credentials"))
	}

	token, err := s.generateToken(user.ID, user.Username)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	s.setTokenCookie(c, token)

	// Honor the next parameter set by the login redirect
	if next := c.Query("next"); next != "" && next[0] == '/' {
		return c.Redirect(next, fiber.StatusFound)
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (s *Server) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// generateToken creates a JWT token for the given user ID and username
func (s *Server) generateToken(userID uint, username string) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"iss":      "yatube-api",
		"aud":      "yatube-client",
		"exp":      now.Add(time.Hour * 24 * 7).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8]),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ContactForm handles GET /contact-us
func (s *Server) ContactForm(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"fields": []string{"name", "email", "subject", "body"},
	})
}

// ContactUs handles POST /contact-us and redirects to the thank-you page.
func (s *Server) ContactUs(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name" form:"name"`
		Email   string `json:"email" form:"email"`
		Subject string `json:"subject" form:"subject"`
		Body    string `json:"body" form:"body"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	fields := make(map[string]string)
	if req.Name == "" {
		fields["name"] = "this field is required"
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		fields["email"] = err.Error()
	}
	if req.Body == "" {
		fields["body"] = "this field is required"
	}
	if len(fields) > 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(fields))
	}

	// The message is logged rather than mailed; there is no mail relay in
	// this deployment.
	logContactMessage(c, req.Name, req.Email, req.Subject)

	return c.Redirect("/thank-you/", fiber.StatusFound)
}

// ThankYou handles GET /thank-you
func (s *Server) ThankYou(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Thank you for reaching out. We will get back to you soon.",
	})
}
