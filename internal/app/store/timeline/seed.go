// internal/app/store/timeline/seed.go
package timelinestore

import "github.com/dalemusser/evidencehub/internal/domain/models"

// SeedWeeks returns the 17-week program plan.
func SeedWeeks() []models.WeekEntry {
	return []models.WeekEntry{
		{
			Week:   1,
			Label:  "Project Kickoff",
			Bucket: models.BucketAdmin,
			Actions: []string{
				"Submitted GL application form",
				"Initial meeting with supervisor",
				"Drafted project proposal",
			},
			Deliverable: "Project Proposal Draft",
		},
		{
			Week:   2,
			Label:  "Learning Contract",
			Bucket: models.BucketAdmin,
			Actions: []string{
				"Finalized learning objectives",
				"Signed learning contract",
				"Set up study schedule",
			},
			Deliverable: "Signed Learning Contract",
		},
		{
			Week:   3,
			Label:  "Hiragana Foundation",
			Bucket: models.BucketLanguage,
			Actions: []string{
				"Started Minna no Nihongo Chapter 1",
				"Learned all 46 hiragana characters",
				"Daily writing practice (30 min)",
			},
			Deliverable: "Hiragana Practice Sheets",
		},
		{
			Week:   4,
			Label:  "Katakana & Basic Vocab",
			Bucket: models.BucketLanguage,
			Actions: []string{
				"Mastered 46 katakana characters",
				"Learned 50 basic vocabulary words",
				"Started using Renshu app daily",
			},
			Deliverable: "Katakana Quiz Results",
		},
		{
			Week:   5,
			Label:  "Introduction to Nightlife Research",
			Bucket: models.BucketCulture,
			Actions: []string{
				"Defined research scope and questions",
				"Gathered initial sources",
				"Created research outline",
			},
			Deliverable: "Research Outline",
		},
		{
			Week:   6,
			Label:  "Basic Grammar Patterns",
			Bucket: models.BucketLanguage,
			Actions: []string{
				"Learned は/が particle usage",
				"Practiced です/ます forms",
				"Completed Chapter 2-3",
			},
			Deliverable: "Grammar Notes",
		},
		{
			Week:   7,
			Label:  "Izakaya Culture Research",
			Bucket: models.BucketCulture,
			Actions: []string{
				"Researched izakaya history and customs",
				"Analyzed social etiquette",
				"Compared with Singapore dining culture",
			},
			Deliverable: "Izakaya Research Notes",
		},
		{
			Week:   8,
			Label:  "Mid-Semester Review",
			Bucket: models.BucketMilestone,
			Actions: []string{
				"Mid-point reflection with supervisor",
				"Progress assessment",
				"Adjusted learning goals",
			},
			Deliverable: "Mid-Semester Reflection",
		},
		{
			Week:   9,
			Label:  "Kanji Basics",
			Bucket: models.BucketLanguage,
			Actions: []string{
				"Started learning first 20 kanji",
				"Practiced stroke order",
				"Vocabulary building with kanji",
			},
			Deliverable: "Kanji Practice Sheets",
		},
		{
			Week:   10,
			Label:  "Karaoke & Nomikai Research",
			Bucket: models.BucketCulture,
			Actions: []string{
				"Studied karaoke culture significance",
				"Researched nomikai work drinking customs",
				"Analyzed social bonding aspects",
			},
			Deliverable: "Culture Research Document",
		},
		{
			Week:   11,
			Label:  "Listening & Speaking Practice",
			Bucket: models.BucketLanguage,
			Actions: []string{
				"JapanesePod101 lessons daily",
				"Shadowing exercises",
				"First speaking session",
			},
			Deliverable: "Speaking Session Recording",
		},
		{
			Week:   12,
			Label:  "Advanced Grammar",
			Bucket: models.BucketLanguage,
			Actions: []string{
				"Te-form conjugations",
				"Request and permission expressions",
				"Completed Chapter 4-5",
			},
			Deliverable: "Grammar Exercise Sheets",
		},
		{
			Week:   13,
			Label:  "Modern Nightlife Trends",
			Bucket: models.BucketCulture,
			Actions: []string{
				"Researched changing trends post-pandemic",
				"Analyzed youth vs traditional customs",
				"Social media influence on nightlife",
			},
			Deliverable: "Trend Analysis Report",
		},
		{
			Week:   14,
			Label:  "Conversation Practice",
			Bucket: models.BucketLanguage,
			Actions: []string{
				"Role-play scenarios",
				"Restaurant ordering practice",
				"Self-introduction in Japanese",
			},
			Deliverable: "Conversation Video",
		},
		{
			Week:   15,
			Label:  "Research Synthesis",
			Bucket: models.BucketCulture,
			Actions: []string{
				"Compiled all research findings",
				"Created presentation draft",
				"Prepared visual materials",
			},
			Deliverable: "Research Presentation Draft",
		},
		{
			Week:   16,
			Label:  "Portfolio Compilation",
			Bucket: models.BucketAdmin,
			Actions: []string{
				"Organizing all evidence",
				"Writing reflections",
				"Finalizing e-portfolio",
			},
			Deliverable: "Complete E-Portfolio",
		},
		{
			Week:   17,
			Label:  "Final Presentation",
			Bucket: models.BucketMilestone,
			Actions: []string{
				"Final presentation to supervisor",
				"Peer feedback session",
				"Submit all deliverables",
			},
			Deliverable: "Final Presentation & Report",
		},
	}
}

// SeedMilestones returns the fixed program checkpoints.
func SeedMilestones() []models.Milestone {
	return []models.Milestone{
		{Week: 2, Label: "Contract Signed"},
		{Week: 8, Label: "Mid-Semester Review"},
		{Week: 17, Label: "Final Presentation"},
	}
}
