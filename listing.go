package catalog

// CourseListing represents one row of a catalog search-results page.
type CourseListing struct {
	Department string   `json:"department"`
	Faculty    string   `json:"faculty"`
	Level      string   `json:"level"`
	Terms      []string `json:"terms"`
	URL        string   `json:"url"`
}

// Validate returns an error if the listing contains invalid fields.
func (l CourseListing) Validate() error {
	if l.URL == "" {
		return Errorf(EINVALID, "listing URL required")
	}
	return nil
}

// FilterTerms returns a copy of the listing keeping only recognized terms.
func (l CourseListing) FilterTerms() CourseListing {
	l.Terms = FilterTerms(l.Terms)
	return l
}
