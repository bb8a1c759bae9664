package middleware

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog returns a gin logger that writes one plain-text line per request
// to out, without ANSI colors. Requests to skipPaths are not logged.
// Only the URL path is written; query strings carry free text and stay out of the log.
func AccessLog(out io.Writer, skipPaths []string) gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: formatAccessLine,
		Output:    out,
		SkipPaths: skipPaths,
	})
}

func formatAccessLine(p gin.LogFormatterParams) string {
	requestID, _ := p.Keys[RequestIDKey].(string)
	if requestID == "" {
		requestID = "-"
	}

	path, _, _ := strings.Cut(p.Path, "?")

	line := fmt.Sprintf("%s | %3d | %12v | %15s | %-7s %s | %s",
		p.TimeStamp.Format(time.RFC3339),
		p.StatusCode,
		p.Latency,
		p.ClientIP,
		p.Method,
		path,
		requestID,
	)
	if p.ErrorMessage != "" {
		line += " | " + p.ErrorMessage
	}
	return line + "\n"
}
