package domain

import "time"

// Card is a published place photo. Likes is the set of user IDs that liked the
// card; liking is idempotent, the set never holds duplicates.
type Card struct {
	ID        string
	Name      string
	Link      string
	OwnerID   string
	Likes     []string
	CreatedAt time.Time
}

// LikedBy reports whether the given user is in the like set.
func (c *Card) LikedBy(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
