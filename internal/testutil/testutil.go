package testutil

import (
	"time"

	"bookcatalog/internal/book"
	"bookcatalog/internal/platform/crypto"
	"bookcatalog/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TestUserPassword is the plaintext behind TestUser's stored hash.
const TestUserPassword = "1234"

// TestUser is a fixture account for tests.
var TestUser = user.User{
	ID:        1,
	Username:  "reader",
	Password:  mustHash(TestUserPassword),
	Role:      "user",
	CreatedAt: time.Now(),
}

func mustHash(plain string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// TestBook is a fixture catalog record for tests.
var TestBook = func() book.Book {
	genre := "Programming"
	year := 2008
	return book.Book{
		ID:            1,
		Title:         "Clean Code",
		Author:        "Robert C. Martin",
		Genre:         &genre,
		PublishedYear: &year,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}()

// GenerateTestToken issues a short-lived token for request tests.
func GenerateTestToken(secret string, userID int64, username, role string) string {
	token, _ := crypto.GenerateToken(secret, userID, username, role, time.Hour)
	return token
}

// GenerateExpiredToken issues a token that is already past its expiry.
func GenerateExpiredToken(secret string, userID int64, username, role string) string {
	c := crypto.Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}
