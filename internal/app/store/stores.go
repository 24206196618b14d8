// Package store holds the engine's canonical in-memory collections.
//
// It fills the role a repository layer backed by a database would in a
// persistent deployment: every store owns its collection for the
// lifetime of the process, guards read-modify-write sequences with a
// mutex, and hands out defensive copies so callers can never mutate
// canonical state through a returned value. Seed data is supplied by
// the caller at construction; there are no package-level collections.
package store

// Stores is a container for all store instances
type Stores struct {
	Users         *UserStore
	Communities   *CommunityStore
	Events        *EventStore
	Posts         *PostStore
	Messages      *MessageStore
	Notifications *NotificationStore
	Engagement    *EngagementStore
	Referrals     *ReferralStore
}

// NewStores creates the full set of empty stores
func NewStores() *Stores {
	return &Stores{
		Users:         NewUserStore(),
		Communities:   NewCommunityStore(),
		Events:        NewEventStore(),
		Posts:         NewPostStore(),
		Messages:      NewMessageStore(),
		Notifications: NewNotificationStore(),
		Engagement:    NewEngagementStore(DefaultAchievementCatalog(), DefaultRewardCatalog()),
		Referrals:     NewReferralStore(),
	}
}
