package deck

// Stats summarizes a mapped slide sequence.
type Stats struct {
	TotalSlides int          `json:"total_slides"`
	Kinds       map[Kind]int `json:"slide_kinds"`
	AvgBullets  float64      `json:"avg_bullets_per_slide"`
	Titles      []string     `json:"titles"`
}

// Analyze computes slide statistics for previews and reporting.
func Analyze(slides []Slide) Stats {
	stats := Stats{
		Kinds:  make(map[Kind]int),
		Titles: make([]string, 0, len(slides)),
	}
	if len(slides) == 0 {
		return stats
	}

	totalBullets := 0
	for _, s := range slides {
		stats.Kinds[s.Kind]++
		stats.Titles = append(stats.Titles, s.Title)
		totalBullets += len(s.Body)
	}
	stats.TotalSlides = len(slides)
	stats.AvgBullets = float64(totalBullets) / float64(len(slides))
	return stats
}

// Suggest returns improvement hints for a slide sequence.
func Suggest(slides []Slide) []string {
	var suggestions []string

	stats := Analyze(slides)
	if stats.TotalSlides == 0 {
		return []string{"No slides generated. Check the input file."}
	}
	if stats.TotalSlides > 20 {
		suggestions = append(suggestions, "Consider reducing content: presentations work better with fewer slides.")
	}
	if stats.AvgBullets > 7 {
		suggestions = append(suggestions, "Consider fewer bullet points per slide for better readability.")
	}
	if stats.Kinds[KindTitle] == 0 {
		suggestions = append(suggestions, "Consider adding a title slide at the beginning.")
	}
	return suggestions
}
