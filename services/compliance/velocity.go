package compliance

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// VelocityChecker reports whether an identity has exceeded the allowed
// transaction velocity. Implementations must be safe for concurrent checks
// on the same identity.
type VelocityChecker interface {
	Check(identity string, payload map[string]interface{}) bool
}

// LimiterVelocityChecker tracks per-identity transaction velocity with token
// bucket limiters.
type LimiterVelocityChecker struct {
	perMinute int
	burst     int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewLimiterVelocityChecker allows perMinute transactions per identity per
// minute, with a burst ceiling of burst.
func NewLimiterVelocityChecker(perMinute, burst int) *LimiterVelocityChecker {
	return &LimiterVelocityChecker{
		perMinute: perMinute,
		burst:     burst,
		limiters:  make(map[string]*rate.Limiter),
	}
}

func (c *LimiterVelocityChecker) getLimiter(identity string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	limiter, exists := c.limiters[identity]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(c.perMinute)), c.burst)
		c.limiters[identity] = limiter
	}
	return limiter
}

// Check consumes one token for identity and reports true when the velocity
// threshold is exceeded.
func (c *LimiterVelocityChecker) Check(identity string, _ map[string]interface{}) bool {
	return !c.getLimiter(identity).Allow()
}
