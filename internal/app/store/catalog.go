package store

import "github.com/kranthik10/campusconnect/internal/app/models"

// DefaultAchievementCatalog returns the built-in achievement catalog.
// The catalog is ordered; unlocked achievements display in this order.
func DefaultAchievementCatalog() []models.Achievement {
	return []models.Achievement{
		{ID: "1", Name: "First Connection", Description: "Connect with your first peer", Points: 10, Icon: "🔗"},
		{ID: "2", Name: "Community Builder", Description: "Join 3 communities", Points: 25, Icon: "👥"},
		{ID: "3", Name: "Event Attendee", Description: "Attend your first event", Points: 20, Icon: "🎉"},
		{ID: "4", Name: "Active Poster", Description: "Create 5 posts", Points: 30, Icon: "📝"},
		{ID: "5", Name: "Referral King", Description: "Refer 5 friends", Points: 100, Icon: "👑"},
	}
}

// DefaultRewardCatalog returns the built-in redeemable reward catalog
func DefaultRewardCatalog() []models.Reward {
	return []models.Reward{
		{ID: "1", Name: "Premium Features", Description: "Unlock premium features for 1 month", PointsRequired: 100},
		{ID: "2", Name: "CampusConnect T-shirt", Description: "Exclusive CampusConnect merchandise", PointsRequired: 250},
		{ID: "3", Name: "Event Tickets", Description: "Free tickets to popular campus events", PointsRequired: 500},
	}
}
