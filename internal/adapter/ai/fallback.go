package ai

import (
	"fmt"

	"github.com/yourusername/repopitch/internal/domain"
)

// FallbackDeck builds the deterministic five-slide template from the
// repository record. Pure string interpolation; it has no failure path.
func FallbackDeck(record *domain.RepositoryRecord) domain.Deck {
	return domain.Deck{
		{
			Title: record.Name(),
			Text:  record.Description(),
			Bullets: []string{
				"Built with modern technology stack",
				"Open source and community-driven",
				"Ready for production deployment",
			},
		},
		{
			Title: "The Problem",
			Text:  "Addressing critical challenges in the software development ecosystem",
			Bullets: []string{
				"Current solutions lack key features",
				"Users need more efficient tools",
				"Market demand for better alternatives",
			},
		},
		{
			Title: "Our Solution",
			Text:  fmt.Sprintf("Leveraging %s to deliver superior performance and reliability", record.Language()),
			Bullets: []string{
				"Modern, scalable architecture",
				"User-centric design approach",
				"Proven development methodology",
			},
		},
		{
			Title: "Market Traction",
			Text:  "Strong community engagement and growing adoption",
			Bullets: []string{
				fmt.Sprintf("%d GitHub stars and growing", record.Stars()),
				fmt.Sprintf("%d active contributors", len(record.Contributors)),
				"Continuous development and support",
			},
		},
		{
			Title: "Next Steps",
			Text:  "Strategic roadmap for scaling and market expansion",
			Bullets: []string{
				"Feature enhancement and optimization",
				"Community growth initiatives",
				"Strategic partnerships and integrations",
			},
		},
	}
}
