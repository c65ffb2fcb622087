package model

import "time"

// ReferralClick is an append-only attribution log entry, written once
// per invite-link visit and never read back by this system.
type ReferralClick struct {
	ReferralID string    `json:"referral_id"`
	IPAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	CreatedAt  time.Time `json:"created_at"`
}
