package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeUpdatedAgo(t *testing.T) {
	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"just now", 30 * time.Second, "Päivitetty juuri nyt"},
		{"one minute singular", 90 * time.Second, "Päivitetty 1 minuutti sitten"},
		{"minutes plural", 45 * time.Minute, "Päivitetty 45 minuuttia sitten"},
		{"one hour singular", 90 * time.Minute, "Päivitetty 1 tunti sitten"},
		{"hours plural", 5 * time.Hour, "Päivitetty 5 tuntia sitten"},
		{"one day singular", 30 * time.Hour, "Päivitetty 1 päivä sitten"},
		{"days plural", 72 * time.Hour, "Päivitetty 3 päivää sitten"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanizeUpdatedAgo(now.Add(-tt.ago), now))
		})
	}

	t.Run("future timestamp clamps to just now", func(t *testing.T) {
		assert.Equal(t, "Päivitetty juuri nyt", HumanizeUpdatedAgo(now.Add(time.Minute), now))
	})
}
