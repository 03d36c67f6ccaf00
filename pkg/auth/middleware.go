package auth

import (
	"net/http"
	"strings"

	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"

	store "github.com/furia-fc/team-sync/repos/store"
)

// AuthMiddleware verifies the Firebase ID token and resolves the caller
// against the users collection into a Session. Unknown-but-authenticated
// callers get a VIEWER session so read endpoints keep working.
func AuthMiddleware(firebaseApp *firebase.App, storeService *store.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		idToken := strings.TrimPrefix(authHeader, "Bearer ")

		authClient, err := firebaseApp.Auth(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initialize Firebase Auth"})
			c.Abort()
			return
		}

		token, err := authClient.VerifyIDToken(c, idToken)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid ID token"})
			c.Abort()
			return
		}

		session := Session{UID: token.UID, Role: store.RoleViewer}
		if email, ok := token.Claims["email"].(string); ok {
			session.Email = email
		}
		user, err := storeService.GetUser(c, token.UID)
		if err == nil {
			session.Email = user.Email
			session.DisplayName = user.DisplayName
			session.Role = user.Role
		} else if !store.IsNotFound(err) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve user"})
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// RequireWriter blocks read-only sessions from mutation endpoints.
func RequireWriter() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := CurrentSession(c)
		if err != nil || session.IsReadOnly() {
			c.JSON(http.StatusForbidden, gin.H{"error": "read-only account"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin blocks everyone but admins.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := CurrentSession(c)
		if err != nil || !session.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin only"})
			c.Abort()
			return
		}
		c.Next()
	}
}
