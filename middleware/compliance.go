package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"laundr/services/compliance"
	"laundr/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FinancialPaths is the fixed allow-list of endpoints the compliance gate
// intercepts. Matching is by path, not by request method alone.
var FinancialPaths = map[string]bool{
	"/transactions/send":    true,
	"/transactions/request": true,
	"/transactions/swap":    true,
}

// ComplianceMiddleware runs every allow-listed financial request through the
// gate before the handler executes. Requests outside the allow-list pass
// through untouched. A rejection short-circuits with 403 and the reason code
// of the check that failed.
func ComplianceMiddleware(gate *compliance.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !FinancialPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "unreadable request body", err.Error())
			c.Abort()
			return
		}
		// Hand the handler a fresh copy of the body.
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		var payload map[string]interface{}
		if len(body) > 0 {
			if err := json.Unmarshal(body, &payload); err != nil {
				utils.JSONError(c, http.StatusBadRequest, "invalid JSON body", err.Error())
				c.Abort()
				return
			}
		}

		subjectID := compliance.ExtractSubjectID(payload)
		if subjectID == "" {
			// No acting identity in the payload; let binding validation
			// in the handler report the missing field.
			c.Next()
			return
		}

		verdict, err := gate.Evaluate(c.Request.Context(), subjectID, payload)
		if err != nil {
			zap.L().Error("compliance gate failure", zap.Error(err))
			utils.JSONError(c, http.StatusServiceUnavailable, "compliance check unavailable", "try again later")
			c.Abort()
			return
		}
		if !verdict.Allowed() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":  "compliance denied",
				"reason": verdict.Reason,
			})
			return
		}

		c.Next()
	}
}
