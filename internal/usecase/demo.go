package usecase

import "github.com/yourusername/repopitch/internal/domain"

// DemoDeck returns the built-in sample deck shown whenever live collection
// fails outright. Kept in sync with the Result step's "Demo Mode" banner.
func DemoDeck() domain.Deck {
	return domain.Deck{
		{
			Title: "Vibe Draw",
			Text:  "Turn your roughest sketches into stunning 3D worlds with Vibe Draw, the AI-powered cursor for 3D modeling.",
			Bullets: []string{
				"Revolutionary AI-powered 3D modeling",
				"Transform sketches into professional models",
				"Perfect for designers, architects, and creators",
			},
		},
		{
			Title: "The Problem",
			Text:  "3D modeling is complex, time-consuming, and requires years of training. Most creative ideas never make it to 3D because the tools are too difficult.",
			Bullets: []string{
				"Traditional 3D software has steep learning curves",
				"Hours of work for simple models",
				"Creative bottleneck for non-technical users",
			},
		},
		{
			Title: "Market Opportunity",
			Text:  "The 3D modeling market is exploding with AR/VR growth",
			Chart: &domain.Chart{
				Type: "line",
				Data: domain.ChartData{
					Labels: []string{"Jan 2024", "Feb 2024", "Mar 2024", "Apr 2024", "May 2024"},
					Datasets: []domain.Dataset{
						{
							Label:       "Monthly Revenue",
							Values:      []float64{500, 1200, 2100, 4200, 8000},
							BorderColor: "#3b82f6",
							Fill:        true,
						},
					},
				},
				Title: "50% Monthly Revenue Growth",
			},
		},
		{
			Title: "Our Solution",
			Text:  "AI-powered cursor that understands your intent and creates 3D models from simple sketches",
			Bullets: []string{
				"Draw anywhere, get 3D models instantly",
				"No technical knowledge required",
				"Professional results in minutes, not hours",
				"Built-in collaboration and sharing",
			},
		},
		{
			Title: "What's Next",
			Text:  "Scale to become the Figma of 3D modeling",
			Bullets: []string{
				"Launch enterprise features",
				"Expand AI model capabilities",
				"Build marketplace for 3D assets",
				"Series A funding to accelerate growth",
			},
		},
	}
}
