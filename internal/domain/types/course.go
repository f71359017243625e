package types

// CourseType distinguishes regular courses from premium ones.
type CourseType string

const (
	CourseStandard CourseType = "standard"
	CoursePremium  CourseType = "premium"
)

// String returns the string form of the course type.
func (t CourseType) String() string { return string(t) }

// Course is one entry of the catalogue. Name is unique and is the key the
// backend expects when a course is selected.
type Course struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Emoji string     `json:"emoji"`
	Type  CourseType `json:"type"`
	Level string     `json:"level,omitempty"`
}

// Premium reports whether the course is sold as the premium tier.
func (c Course) Premium() bool { return c.Type == CoursePremium }
