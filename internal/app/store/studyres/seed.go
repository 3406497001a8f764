// internal/app/store/studyres/seed.go
package studyresstore

import "github.com/dalemusser/evidencehub/internal/domain/models"

// SeedResources returns the study tools and texts consulted during the
// program, with the long-form writeups shown on their detail pages.
func SeedResources() []models.StudyResource {
	return []models.StudyResource{
		{
			Name:        "Duolingo",
			Kind:        "App",
			Description: "Daily Japanese practice",
			Icon:        "📱",
			Images: []string{
				"/static/images/duolingo.jpeg",
				"/static/images/duolingo%281%29.jpeg",
				"/static/images/duolingo%282%29.jpeg",
			},
			Detail: `Duolingo has been the backbone of my daily Japanese practice throughout this Guided Learning journey. I committed to maintaining a streak from Day 1, and as of now, I've built up a consistent habit of practicing for at least 15-20 minutes every single day. The gamified approach really works for me — earning XP, maintaining streaks, and competing on leaderboards kept me motivated even on days when I felt tired or unmotivated.

What I found most valuable about Duolingo was its focus on practical vocabulary and sentence structures. The app introduced me to essential phrases like greetings, asking for directions, ordering food, and basic conversational Japanese that would be useful in real-life nightlife settings. The spaced repetition system helped reinforce words I struggled with, and I noticed significant improvement in my reading speed for hiragana and katakana over the weeks.

However, I also learned the limitations of app-based learning. While Duolingo is excellent for vocabulary and basic grammar, it doesn't fully prepare you for natural conversation flow or the nuances of keigo (polite language). That's why I supplemented it with other resources. Still, Duolingo remains my go-to for consistent daily practice and I highly recommend it as a foundation for anyone starting their Japanese learning journey.`,
		},
		{
			Name:        "Minna no Nihongo",
			Kind:        "Textbook",
			Description: "Structured grammar learning",
			Icon:        "📚",
			Images: []string{
				"/static/images/mina-nihongo%20%282%29.jpeg",
				"/static/images/mina-nihongo%20%283%29.jpeg",
				"/static/images/mina-nihongo%20%284%29.jpeg",
				"/static/images/mina-nihongo%20%285%29.jpeg",
			},
			Detail: `Minna no Nihongo is widely regarded as one of the most comprehensive Japanese textbooks for beginners, and it became my primary resource for structured grammar learning. Unlike apps that introduce concepts in bite-sized pieces, Minna no Nihongo provides a systematic, chapter-by-chapter progression through essential grammar patterns, vocabulary, and sentence structures.

The textbook is written entirely in Japanese (with a separate translation and grammar notes book available), which initially felt intimidating but turned out to be incredibly effective. Being immersed in Japanese text from the start forced me to engage with the language directly rather than relying on English translations. Each chapter introduces new grammar points with clear examples, followed by practice exercises, conversation drills, and reading comprehension passages.

What I found most valuable about Minna no Nihongo was how it taught grammar in context. Rather than just memorizing rules, I learned how particles like は, が, を, に, and で function in actual sentences. The textbook's progression is logical and builds upon previous lessons, which gave me a strong foundation in Japanese sentence structure. The exercises included writing practice, fill-in-the-blanks, and translation practice that reinforced what I learned.

I typically dedicated longer study sessions on weekends to work through Minna no Nihongo chapters, taking detailed notes and completing all the exercises. The images you see here are from my actual study sessions — my notes, textbook pages, and practice exercises. While it requires more time and focus compared to apps, the depth of understanding I gained from this textbook was invaluable. For anyone serious about learning Japanese properly, Minna no Nihongo is an essential resource that provides the grammatical foundation needed for true fluency.`,
		},
		{
			Name:        "JapanesePod101",
			Kind:        "Podcast",
			Description: "Listening & pronunciation",
			Icon:        "🎧",
			Images: []string{
				"/static/images/japanesepod101.jpeg",
				"/static/images/hiragana-prac.jpeg",
				"/static/images/hiragana-prac-2.jpeg",
				"/static/images/katakana-prac.jpeg",
			},
			Detail: `JapanesePod101 is one of the most popular Japanese learning podcasts among English speakers, and I discovered it through recommendations on Reddit's r/LearnJapanese community. The podcast offers lessons at various levels from Absolute Beginner to Advanced, and I primarily worked through their Beginner and Lower Intermediate content.

What makes JapanesePod101 stand out is the quality of their audio content. Each episode features native Japanese speakers having natural conversations, followed by detailed explanations in English. The hosts, Peter and his co-hosts, break down grammar points, vocabulary, and cultural context in an engaging and easy-to-understand way. I especially appreciated their "Culture Class" episodes which explored topics like Japanese drinking etiquette and izakaya customs — directly relevant to my nightlife culture research!

One thing JapanesePod101 really emphasizes is the importance of writing practice alongside listening. They recommend practicing hiragana and katakana by hand to build muscle memory. I found a really helpful Word document online that had all the hiragana and katakana characters with stroke order guides and practice grids. I printed it out and spent time each day tracing and writing the characters repeatedly. This hands-on practice made a huge difference — I went from struggling to recognize characters to being able to write them from memory within a few weeks. The images you see here are from my actual practice sessions using that worksheet.

I typically listened to the podcast during my commute to school, turning otherwise wasted time into productive learning sessions. The podcast significantly improved my listening comprehension and helped me recognize natural speech patterns that textbooks don't capture. I learned to identify particles, verb conjugations, and common phrases in real-time. The premium subscription also gives access to lesson notes and transcripts, which I used for review sessions. For anyone serious about Japanese, JapanesePod101 is an invaluable resource that makes learning feel less like studying and more like entertainment.`,
		},
		{
			Name:        "Renshu App",
			Kind:        "App",
			Description: "Kanji & vocabulary drills",
			Icon:        "📱",
			Images: []string{
				"/static/images/renshu.jpeg",
				"/static/images/renshu%282%29.jpeg",
				"/static/images/renshu%283%29.jpeg",
			},
			Detail: `Renshu became my secret weapon for conquering kanji and building vocabulary systematically. Unlike Duolingo which focuses on gamification, Renshu is designed specifically for serious Japanese learners preparing for JLPT exams. The app uses an SRS (Spaced Repetition System) algorithm similar to Anki, but with a much cleaner and more intuitive interface.

What I love about Renshu is its comprehensive approach to kanji learning. Each kanji card shows the character, its readings (on'yomi and kun'yomi), stroke order animation, and example vocabulary. The app tracks your mastery level for each item and automatically schedules reviews at optimal intervals for long-term retention. I focused on JLPT N5 kanji, which gave me the foundation to read basic signs, menus, and text that I encountered during my nightlife culture research.

The vocabulary section was equally valuable. I created custom study lists for nightlife-related terms like 居酒屋 (izakaya), 乾杯 (kanpai - cheers), 飲み放題 (nomihoudai - all-you-can-drink), and other words essential for understanding Japanese drinking culture. Being able to customize my learning to match my GL project goals made Renshu incredibly effective. I spent about 20-30 minutes daily on Renshu, usually in the evening as a wind-down activity, and saw tangible improvements in my kanji recognition within just a few weeks.`,
		},
	}
}

// SeedReferences returns the cited sources for the culture research.
func SeedReferences() []models.Reference {
	return []models.Reference{
		{Name: `Go Tokyo — "Nightlife in Tokyo"`, URL: "https://www.gotokyo.org/en/see-and-do/nightlife/index.html"},
		{Name: `Japan Guide — "Shinjuku (Golden Gai)"`, URL: "https://www.japan-guide.com/e/e3011.html"},
		{Name: "Live Japan — Otoshi explanation", URL: "https://livejapan.com/en/in-tokyo/in-pref-tokyo/in-tokyo_train_station/article-a0003257/"},
		{Name: "The Japan Times — Izakaya profitability", URL: "https://www.japantimes.co.jp/business/2024/12/09/economy/izakaya-bankruptcies-teikoku/"},
		{Name: "Mainichi — Izakaya business conditions", URL: "https://mainichi.jp/english/articles/20241221/p2a/00m/0bu/021000c"},
		{Name: "Nippon.com — Host club issues", URL: "https://www.nippon.com/en/japan-topics/g02499/"},
		{Name: "Tokyo Weekender — New host club restrictions", URL: "https://www.tokyoweekender.com/japan-life/news-and-opinion/japan-host-club-predatory-practices-new-law/"},
		{Name: "Wikipedia — Kabukichō history", URL: "https://en.wikipedia.org/wiki/Kabukich%C5%8D"},
	}
}
