package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{name: "set", ctx: WithUserID(context.Background(), "alice"), want: "alice", wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "empty", ctx: WithUserID(context.Background(), "")},
		{name: "string key is not ours", ctx: context.WithValue(context.Background(), "userID", "mallory")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
