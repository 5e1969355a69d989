package dtos

// ArtifactSummaryDTO is the lightweight card view of an artifact used by
// catalogue grids and lists.
type ArtifactSummaryDTO struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Category        string `json:"category"`
	Culture         string `json:"culture"`
	Period          string `json:"period"`
	Material        string `json:"material"`
	ImageURL        string `json:"imageUrl"`
	AccessionNumber string `json:"accessionNumber"`
	Condition       string `json:"condition"`
}
