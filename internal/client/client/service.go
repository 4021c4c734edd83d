package client

import "context"

// CheckGroupResult mirrors GroupResponse plus a transport error description.
type CheckGroupResult struct {
	Exists           bool
	ValidPassword    bool
	GroupDescription string
	Message          string
	Error            string
}

// GenerateResult mirrors GenerateResponse. Error holds either the service's
// own error text or a transport error description.
type GenerateResult struct {
	Success  bool
	Password string
	Error    string
}

type Client interface {
	Close() error
	CheckGroup(ctx context.Context, groupName, phrase string) CheckGroupResult
	GenerateGroupPassword(ctx context.Context, groupName string) GenerateResult
}
