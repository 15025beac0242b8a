package domain

import (
	"testing"
	"time"
)

func TestRoleValid(t *testing.T) {
	for role, want := range map[Role]bool{
		RoleAdmin: true,
		RoleUser:  true,
		"root":    false,
		"":        false,
		"Admin":   false,
	} {
		if got := role.Valid(); got != want {
			t.Errorf("Role(%q).Valid() = %v, want %v", role, got, want)
		}
	}
}

func TestChallengeExpired(t *testing.T) {
	now := time.Now()
	c := &Challenge{ExpiresAt: now.Add(5 * time.Minute)}

	if c.Expired(now) {
		t.Error("challenge should not be expired before its deadline")
	}
	if c.Expired(c.ExpiresAt) {
		t.Error("challenge is live exactly at its deadline")
	}
	if !c.Expired(c.ExpiresAt.Add(time.Nanosecond)) {
		t.Error("challenge should be expired past its deadline")
	}
}

func TestPageSkip(t *testing.T) {
	tests := []struct {
		page Page
		want int64
	}{
		{Page{Number: 1, Size: 10}, 0},
		{Page{Number: 2, Size: 10}, 10},
		{Page{Number: 5, Size: 25}, 100},
	}
	for _, tt := range tests {
		if got := tt.page.Skip(); got != tt.want {
			t.Errorf("Page%+v.Skip() = %d, want %d", tt.page, got, tt.want)
		}
	}
}

func TestPagePages(t *testing.T) {
	tests := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{11, 5, 3},
	}
	for _, tt := range tests {
		p := Page{Number: 1, Size: tt.size}
		if got := p.Pages(tt.total); got != tt.want {
			t.Errorf("Pages(total=%d, size=%d) = %d, want %d", tt.total, tt.size, got, tt.want)
		}
	}
}
