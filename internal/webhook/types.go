package webhook

// SecurityConfig holds webhook security settings.
type SecurityConfig struct {
	AllowedIPs      []string // trusted source IPs; entries may be literal IPs or CIDR ranges
	RateLimitPerMin int      // max requests per minute per source IP
}

// credentialsQuery is the required query string of every webhook call.
// All three must be present simultaneously; binding reports every
// missing field, not just the first.
type credentialsQuery struct {
	WebhookID    string `form:"webhookId" binding:"required"`
	WebhookToken string `form:"webhookToken" binding:"required"`
	LinearToken  string `form:"linearToken" binding:"required"`
}
