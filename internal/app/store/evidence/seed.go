// internal/app/store/evidence/seed.go
package evidencestore

import "github.com/dalemusser/evidencehub/internal/domain/models"

// Seed returns the fixed evidence records present at startup. These describe
// the pre-existing coursework artifacts of the portfolio and never change at
// runtime.
func Seed() []models.EvidenceRecord {
	return []models.EvidenceRecord{
		// Meeting recordings (hosted-platform embeds).
		{
			ID:          "meeting1",
			Title:       "Meeting 1 - Project Kickoff",
			Description: "First team meeting discussing project scope, objectives, and initial planning",
			Section:     models.SectionIntro,
			Week:        1,
			Type:        models.EvidenceTypeVideo,
			Source:      models.Source{URL: "https://www.youtube.com/embed/LC82fHXtiD0", Embedded: true},
			Tags:        []string{"meeting", "planning", "kickoff", "video"},
		},
		{
			ID:          "meeting2",
			Title:       "Meeting 2 - Progress Review",
			Description: "Second team meeting reviewing progress and discussing next steps",
			Section:     models.SectionReflection,
			Week:        8,
			Type:        models.EvidenceTypeVideo,
			Source:      models.Source{URL: "https://www.youtube.com/embed/rKZ6kvqf3-M", Embedded: true},
			Tags:        []string{"meeting", "progress", "review", "video"},
		},
		{
			ID:          "meeting3",
			Title:       "Meeting 3 - Final Wrap-up",
			Description: "Final team meeting wrapping up the project and reflecting on learnings",
			Section:     models.SectionReflection,
			Week:        16,
			Type:        models.EvidenceTypeVideo,
			Source:      models.Source{URL: "https://www.youtube.com/embed/oDPmZRUyHGA", Embedded: true},
			Tags:        []string{"meeting", "final", "wrap-up", "video"},
		},

		// Admin and intro documents.
		{
			ID:          "s1",
			Title:       "Learning Contract",
			Description: "My signed GL learning contract outlining objectives and commitments",
			Section:     models.SectionIntro,
			Week:        2,
			Type:        models.EvidenceTypeDoc,
			Source:      models.Source{URL: "/static/docs/learning-contract.pdf"},
			Tags:        []string{"contract", "official", "agreement"},
		},

		// Language deliverables.
		{
			ID:          "s3",
			Title:       "Hiragana Practice Sheets",
			Description: "Complete hiragana writing practice with stroke order",
			Section:     models.SectionLanguage,
			Week:        3,
			Type:        models.EvidenceTypeImage,
			Source:      models.Source{URL: "https://images.unsplash.com/photo-1564566714611-7bf5a9a8b8e0?w=600&auto=format&fit=crop&q=80"},
			Tags:        []string{"hiragana", "writing", "practice"},
		},
		{
			ID:          "s4",
			Title:       "Katakana Quiz Results",
			Description: "Quiz showing 95% mastery of katakana characters",
			Section:     models.SectionLanguage,
			Week:        4,
			Type:        models.EvidenceTypeImage,
			Source:      models.Source{URL: "https://images.unsplash.com/photo-1456513080510-7bf3a84b82f8?w=600&auto=format&fit=crop&q=80"},
			Tags:        []string{"katakana", "quiz", "assessment"},
		},
		{
			ID:          "s5",
			Title:       "Grammar Notes Collection",
			Description: "Comprehensive notes on N5-level grammar patterns",
			Section:     models.SectionLanguage,
			Week:        6,
			Type:        models.EvidenceTypeDoc,
			Source:      models.Source{URL: "/static/docs/grammar-notes.pdf"},
			Tags:        []string{"grammar", "notes", "N5"},
		},
		{
			ID:          "s6",
			Title:       "Speaking Session 1",
			Description: "First speaking practice - self introduction",
			Section:     models.SectionLanguage,
			Week:        11,
			Type:        models.EvidenceTypeVideo,
			Source:      models.Source{URL: "https://images.unsplash.com/photo-1589903308904-1010c2294adc?w=600&auto=format&fit=crop&q=80"},
			Tags:        []string{"speaking", "video", "practice"},
		},
		{
			ID:          "s7",
			Title:       "Kanji Progress Chart",
			Description: "50+ kanji characters learned with readings",
			Section:     models.SectionLanguage,
			Week:        9,
			Type:        models.EvidenceTypeImage,
			Source:      models.Source{URL: "https://images.unsplash.com/photo-1528164344705-47542687000d?w=600&auto=format&fit=crop&q=80"},
			Tags:        []string{"kanji", "progress", "chart"},
		},

		// Culture deliverables.
		{
			ID:          "s8",
			Title:       "Izakaya Research Document",
			Description: "Comprehensive study of izakaya culture and customs",
			Section:     models.SectionCulture,
			Week:        7,
			Type:        models.EvidenceTypeDoc,
			Source:      models.Source{URL: "/static/docs/izakaya-research.pdf"},
			Tags:        []string{"izakaya", "research", "culture"},
		},
		{
			ID:          "s9",
			Title:       "Nightlife District Analysis",
			Description: "Visual guide to Tokyo entertainment districts",
			Section:     models.SectionCulture,
			Week:        10,
			Type:        models.EvidenceTypeImage,
			Source:      models.Source{URL: "https://images.unsplash.com/photo-1542051841857-5f90071e7989?w=600&auto=format&fit=crop&q=80"},
			Tags:        []string{"tokyo", "nightlife", "districts"},
		},
		{
			ID:          "s10",
			Title:       "Karaoke Culture Analysis",
			Description: "Social significance of karaoke in Japanese society",
			Section:     models.SectionCulture,
			Week:        10,
			Type:        models.EvidenceTypeDoc,
			Source:      models.Source{URL: "/static/docs/karaoke-analysis.pdf"},
			Tags:        []string{"karaoke", "culture", "social"},
		},

		// Reflections.
		{
			ID:          "s11",
			Title:       "Mid-Semester Reflection",
			Description: "Week 8 progress assessment and goal adjustment",
			Section:     models.SectionReflection,
			Week:        8,
			Type:        models.EvidenceTypeDoc,
			Source:      models.Source{URL: "/static/docs/mid-semester-reflection.pdf"},
			Tags:        []string{"reflection", "progress", "assessment"},
		},
		{
			ID:          "s12",
			Title:       "Final Reflection Essay",
			Description: "Comprehensive reflection on the entire GL journey",
			Section:     models.SectionReflection,
			Week:        16,
			Type:        models.EvidenceTypeDoc,
			Source:      models.Source{URL: "/static/docs/final-reflection.pdf"},
			Tags:        []string{"reflection", "final", "essay"},
		},
	}
}
