package admin

// ModelResponse is one registered admin model as listed at the index.
type ModelResponse struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Path        string   `json:"path"`
	Virtual     bool     `json:"virtual"`
	Permissions []string `json:"permissions"`
}

// IndexResponse wraps the admin index.
type IndexResponse struct {
	Models []ModelResponse `json:"models"`
	Total  int             `json:"total"`
}
