package catalog

// CoursePage represents a full course detail page.
// Subject and Code together identify a course within a catalog edition.
type CoursePage struct {
	Title        string       `json:"title"`
	Credits      string       `json:"credits"`
	Subject      string       `json:"subject"`
	Code         string       `json:"code"`
	FacultyURL   string       `json:"facultyUrl"`
	Description  string       `json:"description"`
	Instructors  []Instructor `json:"instructors"`
	Requirements Requirements `json:"requirements"`
}

// Instructor is one instructor assigned to one term. The same name taught
// in two terms is two instructors.
type Instructor struct {
	Name string `json:"name"`
	Term string `json:"term"`
}
