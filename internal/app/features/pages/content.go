// internal/app/features/pages/content.go
package pages

import (
	"html/template"

	"github.com/dalemusser/evidencehub/internal/app/system/htmlsanitize"
)

// Page is one long-form content page.
type Page struct {
	Slug     string
	Title    string
	Lede     string
	Sections []Section
	Docs     []DocLink
}

// Section is a titled block of page content. Body is authored as HTML and
// sanitized before it reaches a template.
type Section struct {
	Heading string
	Body    template.HTML
}

// DocLink points at a supporting document shown on the page.
type DocLink struct {
	Title       string
	Description string
	URL         string
}

func section(heading, body string) Section {
	return Section{Heading: heading, Body: template.HTML(htmlsanitize.Sanitize(body))}
}

func pagesBySlug() map[string]Page {
	out := make(map[string]Page)
	for _, p := range allPages() {
		out[p.Slug] = p
	}
	return out
}

func allPages() []Page {
	return []Page{
		{
			Slug:  "intro",
			Title: "Introduction",
			Lede:  "Why I chose Japanese language and nightlife culture for my Guided Learning semester.",
			Sections: []Section{
				section("About This Project", `<p>This portfolio documents a 17-week self-directed study of the Japanese
language alongside research into Japanese nightlife culture. The two threads
reinforce each other: vocabulary learned in the morning shows up in izakaya
menus and karaoke research in the evening.</p>
<p>Everything here is organized as evidence. Each practice sheet, quiz
result, recording, and research document is catalogued in the
<a href="/deliverables">Deliverables</a> gallery with the week it belongs to.</p>`),
				section("Learning Resources", `<p>Four resources anchored the language work:</p>
<ul>
<li><strong>Minna no Nihongo</strong> - primary textbook for structured grammar and vocabulary</li>
<li><strong>Renshu App</strong> - daily kanji and vocabulary practice with spaced repetition</li>
<li><strong>JapanesePod101</strong> - audio lessons for listening practice and pronunciation</li>
<li><strong>Duolingo</strong> - daily practice app for vocabulary and grammar</li>
</ul>
<p>Longer writeups on each, with session evidence, live on the
<a href="/culture">Culture</a> page.</p>`),
			},
			Docs: []DocLink{
				{
					Title:       "Learning Log",
					Description: "My GL learning log documenting progress and reflections",
					URL:         "/static/docs/learning-log.pdf",
				},
				{
					Title:       "Proposal Form",
					Description: "Initial proposal for Japanese language and nightlife culture research",
					URL:         "/static/docs/proposal-form.pdf",
				},
			},
		},
		{
			Slug:  "contract",
			Title: "Learning Contract",
			Lede:  "The signed agreement that frames this semester's objectives, deliverables, and assessment.",
			Sections: []Section{
				section("Learning Objectives", `<ul>
<li>Achieve basic Japanese conversational skills (JLPT N5 level)</li>
<li>Research and understand Japanese nightlife culture</li>
<li>Develop cultural awareness and cross-cultural communication skills</li>
</ul>`),
				section("Agreed Deliverables", `<ul>
<li>Weekly learning logs documenting progress</li>
<li>Cultural research poster on Japanese nightlife</li>
<li>Reflection essays on learning journey</li>
<li>Evidence of language learning progress</li>
</ul>`),
				section("Assessment Components", `<ul>
<li>Learning Contract (Assessment 1)</li>
<li>Progress Monitoring Reports (PPMR)</li>
<li>Final E-Portfolio submission</li>
</ul>`),
			},
			Docs: []DocLink{
				{
					Title:       "Initial Student Proposal",
					Description: "My initial proposal for the Japanese language and nightlife culture research project",
					URL:         "/static/docs/proposal-form.pdf",
				},
				{
					Title:       "My Learning Contract",
					Description: "Signed GL learning contract outlining objectives, commitments, and assessment criteria (Assessment 1)",
					URL:         "/static/docs/learning-contract.pdf",
				},
			},
		},
		{
			Slug:  "reflection",
			Title: "Reflection",
			Lede:  "Looking back on 17 weeks of self-directed learning.",
			Sections: []Section{
				section("What Surprised Me Most", `<p>I expected to learn vocabulary and then separately learn about culture.
What I didn't expect was how much each would unlock the other. When I learned
the word 先輩 (senpai) it wasn't just vocabulary. Understanding the
hierarchical relationship the word describes helped me grasp why honorific
language exists and when to use it. When I researched nomikai drinking
culture and learned about the ritual of pouring drinks for seniors and
waiting for the 乾杯 (kanpai) before drinking, the formal and informal speech
distinction suddenly made sense.</p>`),
				section("How I Have Grown", `<p>More than anything, I've grown in resilience. There were moments when I
wanted to give up, when the project felt too big and my progress too slow.
But I kept going, one day at a time, one kanji at a time. Tracking progress
in a learning log, even on bad days, helped me see that I was still moving
forward even when it didn't feel like it.</p>
<p>Despite struggling with kanji memorization in Week 4, I developed a new
study method using mnemonics and increased my retention rate from 40% to 85%
by Week 9.</p>`),
				section("What Worked and What Didn't", `<p>What worked:</p>
<ul>
<li>Consistent daily practice streak, strong integration of language learning with cultural research</li>
<li>Regular facilitator check-ins provided valuable external perspective and accountability</li>
<li>Using multiple apps and resources kept me engaged in ways a single textbook couldn't</li>
</ul>
<p>What I would change:</p>
<ul>
<li>The initial timeline was too ambitious; I underestimated the time commitment needed</li>
<li>Speaking practice started too late (Week 11); I should have joined conversation groups earlier</li>
<li>I could have documented progress more frequently between meetings</li>
</ul>`),
				section("Skills I Am Taking Forward", `<ul>
<li><strong>Resilience</strong> - the ability to bounce back from setbacks and persist through challenges</li>
<li><strong>Critical thinking</strong> - evaluating sources on Japanese nightlife and distinguishing academic research from tourist-oriented content</li>
<li><strong>Cultural sensitivity</strong> - appreciating how Japanese work drinking customs, while different from Singapore, serve important relationship-building purposes</li>
<li><strong>Self-direction</strong> - independently sourcing and organizing a full self-study curriculum of textbooks, apps, and podcasts</li>
</ul>`),
			},
			Docs: []DocLink{
				{
					Title:       "Mid-Semester Reflection",
					Description: "Week 8 progress assessment and goal adjustment",
					URL:         "/static/docs/mid-semester-reflection.pdf",
				},
				{
					Title:       "Final Reflection Essay",
					Description: "Comprehensive reflection on the entire GL journey",
					URL:         "/static/docs/final-reflection.pdf",
				},
			},
		},
	}
}
