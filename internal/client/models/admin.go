package models

import (
	"encoding/json"
	"time"
)

// Stats are the aggregate counters shown on the admin console.
type Stats struct {
	TotalUsers         int `json:"totalUsers"`
	AdminCount         int `json:"adminCount"`
	OwnerCount         int `json:"ownerCount"`
	CustomerCount      int `json:"customerCount"`
	TotalProperties    int `json:"totalProperties"`
	ApprovedProperties int `json:"approvedProperties"`
	PendingProperties  int `json:"pendingProperties"`
	RejectedProperties int `json:"rejectedProperties"`
}

// ActivityLog is one administrative action recorded by the server.
type ActivityLog struct {
	ID         string          `json:"_id"`
	AdminID    string          `json:"adminId"`
	ActionType string          `json:"actionType"`
	TargetType string          `json:"targetType"`
	TargetID   string          `json:"targetId"`
	Details    json.RawMessage `json:"details,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}
