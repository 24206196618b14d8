package seed

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/kranthik10/campusconnect/internal/app/models"
	"github.com/kranthik10/campusconnect/internal/app/store"
	"github.com/kranthik10/campusconnect/internal/pkg/helpers"
)

// Interests returns the static interest catalog
func Interests() []string {
	return []string{
		"AI", "Music", "Soccer", "Chess", "Photography", "Hiking",
		"Robotics", "Gaming", "Volunteering", "Entrepreneurship",
		"Film", "Cooking", "Basketball", "Debate", "Painting",
	}
}

// Colleges returns the static partner-college catalog
func Colleges() []string {
	return []string{
		"Stanford University",
		"UC Berkeley",
		"MIT",
		"Harvard University",
		"Carnegie Mellon University",
		"University of Michigan",
	}
}

// LoadDemoData fills the stores with the built-in demo dataset
func LoadDemoData(stores *store.Stores, lgr zerolog.Logger) {
	lgr.Info().Msg("Seeding demo data...")

	seedUsers(stores.Users)
	seedCommunities(stores.Communities)
	seedEvents(stores.Events)
	seedPosts(stores.Posts)
	seedMessages(stores.Messages)
	seedEngagement(stores.Engagement)
	seedReferrals(stores.Referrals)
	seedNotifications(stores.Notifications)

	lgr.Info().
		Int("users", len(stores.Users.List())).
		Int("communities", len(stores.Communities.List())).
		Int("events", len(stores.Events.List())).
		Msg("Demo data seeded")
}

func seedUsers(users *store.UserStore) {
	users.Add(models.NewUser("1", "Alex Johnson", "alex@stanford.edu", "Stanford University", "Computer Science", 3,
		[]string{"AI", "Music", "Soccer"}, []string{"2", "3", "5"}))
	users.Add(models.NewUser("2", "Maya Patel", "maya@berkeley.edu", "UC Berkeley", "Cognitive Science", 2,
		[]string{"AI", "Chess"}, []string{"1"}))
	users.Add(models.NewUser("3", "Jordan Lee", "jordan@mit.edu", "MIT", "Mechanical Engineering", 4,
		[]string{"Music", "Soccer", "Chess"}, []string{"1", "4"}))
	users.Add(models.NewUser("4", "Sam Rivera", "sam@umich.edu", "University of Michigan", "Business", 1,
		[]string{"Entrepreneurship", "Basketball"}, []string{"3"}))
	users.Add(models.NewUser("5", "Priya Sharma", "priya@cmu.edu", "Carnegie Mellon University", "Robotics", 3,
		[]string{"Robotics", "AI", "Photography"}, []string{"1", "2"}))
	users.Add(models.NewUser("6", "Chris Walker", "chris@harvard.edu", "Harvard University", "Philosophy", 2,
		[]string{"Debate", "Film"}, nil))
}

func seedCommunities(communities *store.CommunityStore) {
	communities.Add(&models.Community{
		ID: "1", Name: "AI Enthusiasts", Category: "Technology",
		Description: "Discussions, paper readings and demos around artificial intelligence",
		MemberCount: 3, Members: []string{"1", "2", "5"},
	})
	communities.Add(&models.Community{
		ID: "2", Name: "Campus Musicians", Category: "Arts",
		Description: "Jam sessions, open mics and music theory meetups",
		MemberCount: 2, Members: []string{"1", "3"},
	})
	communities.Add(&models.Community{
		ID: "3", Name: "Intramural Soccer", Category: "Sports",
		Description: "Weekly pickup games and intramural league coordination",
		MemberCount: 2, Members: []string{"1", "3"},
	})
	communities.Add(&models.Community{
		ID: "4", Name: "Startup Circle", Category: "Business",
		Description: "Founders and aspiring founders sharing ideas and feedback",
		MemberCount: 1, Members: []string{"4"},
	})
	communities.Add(&models.Community{
		ID: "5", Name: "Debate Society", Category: "Academics",
		Description: "Competitive debate practice and public speaking workshops",
		MemberCount: 1, Members: []string{"6"},
	})
}

func seedEvents(events *store.EventStore) {
	events.Add(&models.Event{
		ID: "1", Title: "Spring Hackathon",
		Description: "24-hour build sprint with prizes for the best campus apps",
		Date:        time.Date(2024, time.May, 18, 9, 0, 0, 0, time.UTC),
		Location:    "Engineering Building", OrganizerID: "2",
		MaxAttendees: 100, Attendees: []string{"1", "2", "5"},
	})
	events.Add(&models.Event{
		ID: "2", Title: "Open Mic Night",
		Description: "Acoustic sets, poetry and stand-up from students",
		Date:        time.Date(2024, time.May, 20, 19, 0, 0, 0, time.UTC),
		Location:    "Student Union", OrganizerID: "3",
		MaxAttendees: 50, Attendees: []string{"1", "3"},
	})
	events.Add(&models.Event{
		ID: "3", Title: "Founder Fireside Chat",
		Description: "Q&A with alumni founders about their first year",
		Date:        time.Date(2024, time.May, 22, 18, 0, 0, 0, time.UTC),
		Location:    "Business School Auditorium", OrganizerID: "4",
		MaxAttendees: 2, Attendees: []string{"4", "6"},
	})
	events.Add(&models.Event{
		ID: "4", Title: "Weekend Hike",
		Description: "Morning trail hike, all experience levels welcome",
		Date:        time.Date(2024, time.May, 25, 8, 0, 0, 0, time.UTC),
		Location:    "North Trailhead", OrganizerID: "5",
		MaxAttendees: 20, Attendees: []string{"5"},
	})
}

func seedPosts(posts *store.PostStore) {
	posts.Add(&models.Post{
		ID: "1", AuthorID: "1", CommunityID: "1",
		Content:   "Sharing my notes from the transformer architectures reading group",
		LikeCount: 12, CommentCount: 4,
		CreatedAt: time.Date(2024, time.May, 14, 15, 30, 0, 0, time.UTC),
	})
	posts.Add(&models.Post{
		ID: "2", AuthorID: "3", CommunityID: "2",
		Content:   "Looking for a bassist for Friday's open mic, DM me",
		LikeCount: 7, CommentCount: 2,
		CreatedAt: time.Date(2024, time.May, 15, 10, 12, 0, 0, time.UTC),
	})
	posts.Add(&models.Post{
		ID: "3", AuthorID: "4",
		Content:   "Just got our first customer for the meal-prep app!",
		LikeCount: 21, CommentCount: 9,
		CreatedAt: time.Date(2024, time.May, 15, 18, 45, 0, 0, time.UTC),
	})
}

func seedMessages(messages *store.MessageStore) {
	messages.Add(&models.Message{
		ID: "1", SenderID: "2", ReceiverID: "1",
		Content:   "Hey! Are you going to the hackathon?",
		Timestamp: time.Date(2024, time.May, 14, 9, 0, 0, 0, time.UTC), Read: true,
	})
	messages.Add(&models.Message{
		ID: "2", SenderID: "1", ReceiverID: "2",
		Content:   "Yes! Want to team up?",
		Timestamp: time.Date(2024, time.May, 14, 9, 5, 0, 0, time.UTC), Read: true,
	})
	messages.Add(&models.Message{
		ID: "3", SenderID: "3", ReceiverID: "1",
		Content:   "Soccer at 5 today?",
		Timestamp: time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC), Read: false,
	})
}

func seedEngagement(ledger *store.EngagementStore) {
	// Baseline balances already include the points earned from the
	// achievements recorded below, so those are installed without a
	// fresh credit.
	for userID, points := range map[string]int{
		"1": 150, "2": 75, "3": 200, "4": 50, "5": 300,
	} {
		_, _ = ledger.AddPoints(userID, points)
	}

	ledger.SetUnlocked("1", "1", "2", "3")
	ledger.SetUnlocked("2", "1", "2")
	ledger.SetUnlocked("3", "1")

	ledger.SetStreak("1", streakRecord(7, 15, helpers.NewDate(2024, time.May, 15)))
	ledger.SetStreak("2", streakRecord(3, 10, helpers.NewDate(2024, time.May, 14)))
	ledger.SetStreak("3", streakRecord(12, 12, helpers.NewDate(2024, time.May, 15)))
}

func seedReferrals(referrals *store.ReferralStore) {
	referrals.Add(&models.Referral{
		ID: "1", ReferrerID: "1", ReferredUserID: "6",
		Reward: "Premium features for 1 month", Status: models.ReferralCompleted,
		CreatedAt: helpers.NewDate(2024, time.April, 15),
	})
	referrals.Add(&models.Referral{
		ID: "2", ReferrerID: "1", ReferredUserID: "7",
		Reward: "CampusConnect T-shirt", Status: models.ReferralPending,
		CreatedAt: helpers.NewDate(2024, time.May, 1),
	})
}

func seedNotifications(notifications *store.NotificationStore) {
	notifications.Add(&models.Notification{
		ID: "1", UserID: "1", Type: "message", RelatedID: "3",
		Message:   "Jordan Lee sent you a message",
		Read:      false,
		CreatedAt: time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC),
	})
	notifications.Add(&models.Notification{
		ID: "2", UserID: "1", Type: "event", RelatedID: "1",
		Message:   "Spring Hackathon starts in 3 days",
		Read:      true,
		CreatedAt: time.Date(2024, time.May, 15, 8, 0, 0, 0, time.UTC),
	})
	notifications.Add(&models.Notification{
		ID: "3", UserID: "2", Type: "community", RelatedID: "1",
		Message:   "New post in AI Enthusiasts",
		Read:      false,
		CreatedAt: time.Date(2024, time.May, 14, 16, 0, 0, 0, time.UTC),
	})
	notifications.Add(&models.Notification{
		ID: "4", UserID: "4", Type: "post", RelatedID: "3",
		Message:   "Your post reached 20 likes",
		Read:      false,
		CreatedAt: time.Date(2024, time.May, 15, 19, 0, 0, 0, time.UTC),
	})
}

func streakRecord(current, longest int, last helpers.Date) models.StreakRecord {
	return models.StreakRecord{
		CurrentStreak:  current,
		LongestStreak:  longest,
		LastActiveDate: &last,
	}
}
