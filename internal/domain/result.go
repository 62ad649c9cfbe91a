package domain

import (
	"fmt"
	"time"
)

// HumanizeUpdatedAgo renders a Finnish relative freshness string for an
// observation timestamp at minute/hour/day granularity.
func HumanizeUpdatedAgo(observedAt, now time.Time) string {
	elapsed := now.Sub(observedAt)
	if elapsed < 0 {
		elapsed = 0
	}

	switch {
	case elapsed < time.Minute:
		return "Päivitetty juuri nyt"
	case elapsed < time.Hour:
		mins := int(elapsed.Minutes())
		if mins == 1 {
			return "Päivitetty 1 minuutti sitten"
		}
		return fmt.Sprintf("Päivitetty %d minuuttia sitten", mins)
	case elapsed < 24*time.Hour:
		hours := int(elapsed.Hours())
		if hours == 1 {
			return "Päivitetty 1 tunti sitten"
		}
		return fmt.Sprintf("Päivitetty %d tuntia sitten", hours)
	default:
		days := int(elapsed.Hours() / 24)
		if days == 1 {
			return "Päivitetty 1 päivä sitten"
		}
		return fmt.Sprintf("Päivitetty %d päivää sitten", days)
	}
}
