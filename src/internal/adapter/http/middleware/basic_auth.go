package middleware

import (
	"crypto/subtle"
	"fmt"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/api-sage/pension-payment-processor/src/internal/logger"
)

// HashChannelKey returns the bcrypt hash BasicAuth compares channel keys
// against.
func HashChannelKey(channelKey string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(channelKey), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash channel key: %w", err)
	}

	return string(hashed), nil
}

// BasicAuth admits requests whose basic credentials carry channelID and a
// key matching channelKeyHash.
func BasicAuth(channelID, channelKeyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if channelID == "" || channelKeyHash == "" {
				logger.Error("basic auth middleware missing server configuration", nil, logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				http.Error(w, "server auth configuration is missing", http.StatusInternalServerError)
				return
			}

			id, key, ok := r.BasicAuth()
			if !ok || !secureEqual(id, channelID) || bcrypt.CompareHashAndPassword([]byte(channelKeyHash), []byte(key)) != nil {
				logger.Info("basic auth middleware unauthorized request", logger.Fields{
					"method":      r.Method,
					"path":        r.URL.Path,
					"credentials": "invalid_or_missing",
				})
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			logger.Info("basic auth middleware authorized request", logger.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
			})
			next.ServeHTTP(w, r)
		})
	}
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
