// internal/app/features/culture/content.go
package culture

// Compiled-in research content for the culture page. This mirrors the
// research writeup; evidence artifacts themselves live in the catalog.

// Phase statuses.
const (
	statusCompleted  = "completed"
	statusInProgress = "in-progress"
	statusUpcoming   = "upcoming"
)

// phase is one span of the research schedule.
type phase struct {
	Weeks       string
	Title       string
	Status      string
	Description string
}

var phases = []phase{
	{Weeks: "Week 1-2", Title: "Project Setup", Status: statusCompleted, Description: "Learning contract, initial research"},
	{Weeks: "Week 3-5", Title: "Language Basics", Status: statusCompleted, Description: "Hiragana, Katakana, basic phrases"},
	{Weeks: "Week 6-8", Title: "Culture Research", Status: statusCompleted, Description: "Nightlife culture deep dive"},
	{Weeks: "Week 9-11", Title: "PPMR 1", Status: statusCompleted, Description: "First progress monitoring"},
	{Weeks: "Week 12-14", Title: "Content Creation", Status: statusInProgress, Description: "Poster, presentations"},
	{Weeks: "Week 15-17", Title: "Final Submission", Status: statusUpcoming, Description: "E-Portfolio completion"},
}

// deliverableStatus tracks a learning-contract deliverable.
type deliverableStatus struct {
	Title       string
	Type        string
	Status      string
	Description string
}

var deliverableStatuses = []deliverableStatus{
	{Title: "Research Poster", Type: "image", Status: statusCompleted, Description: "Visual summary of Japanese nightlife culture"},
	{Title: "Meeting Recordings", Type: "video", Status: statusCompleted, Description: "Video evidence of team discussions"},
	{Title: "Language Practice Logs", Type: "doc", Status: statusCompleted, Description: "Daily language learning records"},
	{Title: "Cultural Analysis", Type: "doc", Status: statusInProgress, Description: "Written research on nightlife customs"},
}

// district is a Tokyo nightlife district profiled by the research.
type district struct {
	Name        string
	Description string
	Vibe        string
	Crowd       string
	BestFor     string
}

var districts = []district{
	{
		Name:        "Shinjuku",
		Description: "Golden Gai (tiny bars), Kabukichō (bright entertainment streets)",
		Vibe:        "Eclectic mix",
		Crowd:       "Diverse - salarymen to tourists",
		BestFor:     "Tiny bars, late-night energy",
	},
	{
		Name:        "Shibuya",
		Description: "Youth-oriented, trend-driven nightlife hub",
		Vibe:        "Young & hip",
		Crowd:       "Youth, trendsetters",
		BestFor:     "Clubs, trendy bars",
	},
	{
		Name:        "Roppongi",
		Description: "International crowd and club-heavy options",
		Vibe:        "International",
		Crowd:       "Expats, tourists",
		BestFor:     "Clubs, international scene",
	},
}

// establishment is a category of nightlife venue.
type establishment struct {
	Name        string
	Description string
}

var establishments = []establishment{
	{Name: "Izakaya (居酒屋)", Description: "Casual food + drinks; social, group-friendly atmosphere"},
	{Name: "Tiny Bars / Alley Bars", Description: "Very small capacity, strong \"regulars\" culture"},
	{Name: "Clubs", Description: "Concentrated in specific districts; cover charges, ID checks"},
}
