package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression returns a middleware that gzips responses for clients that accept it.
// Paths listed in skip are served as-is; xlsx exports are already zip archives.
func Compression(skip ...string) gin.HandlerFunc {
	if len(skip) == 0 {
		return gzip.Gzip(gzip.DefaultCompression)
	}
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths(skip))
}
