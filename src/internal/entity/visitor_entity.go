package entity

import "time"

// Visitor is one tracked page view. Fingerprint comes from client signals
// and is not cryptographically unique; IPs are stored hashed only.
type Visitor struct {
	ID          string    `db:"id" json:"id"`
	Fingerprint string    `db:"fingerprint" json:"fingerprint"`
	IPHash      string    `db:"ip_hash" json:"-"`
	UserAgent   string    `db:"user_agent" json:"userAgent"`
	Path        string    `db:"path" json:"path"`
	Referrer    string    `db:"referrer" json:"referrer"`
	Country     string    `db:"country" json:"country"`
	SessionID   string    `db:"session_id" json:"sessionId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	LastActive  time.Time `db:"last_active" json:"lastActive"`
}
