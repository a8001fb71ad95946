package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

func generateToken() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		log.Fatal("Failed to generate token", "err", err)
	}
	return hex.EncodeToString(bytes)
}

// Hash IP address so logs never hold the raw value (consistent per IP for
// one process)
func hashIP(ip, salt string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// Privacy-conscious request logging middleware
func requestLogMiddleware(logger *log.Logger) gin.HandlerFunc {
	salt := generateToken()
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/static/") ||
			strings.HasPrefix(path, "/images/") ||
			strings.HasPrefix(path, "/favicon") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		// UI events are chatty, keep them out of info logs
		level := log.InfoLevel
		if strings.HasPrefix(path, "/ui/") {
			level = log.DebugLevel
		}

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"took", time.Since(start),
		}
		// Respect Do Not Track header
		if c.GetHeader("DNT") != "1" {
			fields = append(fields, "visitor", hashIP(c.ClientIP(), salt))
		}
		logger.Log(level, "request", fields...)
	}
}
