package utils

import (
	"net/http/httptest"
	"phishlms/backend/config"
	"phishlms/backend/models"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}
	user := &models.User{
		Model:          gorm.Model{ID: 42},
		Name:           "Test User",
		Email:          "test@example.com",
		Classification: "intermediate",
	}

	token, err := GenerateJWTToken(user, cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	var gotID uint
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		gotID, err = ExtractUserIDFromToken(c, cfg)
		if err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", token)

	resp, testErr := app.Test(req)
	assert.NoError(t, testErr)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, uint(42), gotID)
}

func TestExtractUserIDMissingToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "testsecret"}

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		_, err := ExtractUserIDFromToken(c, cfg)
		assert.Error(t, err)
		return c.SendStatus(fiber.StatusUnauthorized)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestExtractUserIDWrongSecret(t *testing.T) {
	user := &models.User{Model: gorm.Model{ID: 7}, Email: "a@b.c"}
	token, err := GenerateJWTToken(user, &config.Config{JWTSecret: "one"})
	assert.NoError(t, err)

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		_, err := ExtractUserIDFromToken(c, &config.Config{JWTSecret: "another"})
		assert.Error(t, err)
		return c.SendStatus(fiber.StatusUnauthorized)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
