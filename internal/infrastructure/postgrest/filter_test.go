package postgrest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEq(t *testing.T) {
	tests := []struct {
		name   string
		column string
		value  string
		want   string
	}{
		{"plain value", "username", "alice", "username=eq.alice"},
		{"value with spaces", "username", "a b", "username=eq.a+b"},
		{"multibyte value", "username", "ゆず", "username=eq.%E3%82%86%E3%81%9A"},
		{"reserved characters", "username", "a&b=c", "username=eq.a%26b%3Dc"},
		{"numeric key", "id", "1", "id=eq.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eq(tt.column, tt.value))
		})
	}
}

func TestOrder(t *testing.T) {
	assert.Equal(t, "order=created_at.desc", Order("created_at", Desc))
	assert.Equal(t, "order=id.asc", Order("id", Asc))
}
