package types

// Step is one stage of the linear onboarding flow.
type Step int

const (
	StepContract Step = iota
	StepCourseSelect
	StepPhone
	StepPayment
)

// Steps lists every step in flow order.
var Steps = []Step{StepContract, StepCourseSelect, StepPhone, StepPayment}

func (s Step) String() string {
	switch s {
	case StepContract:
		return "contract"
	case StepCourseSelect:
		return "course-select"
	case StepPhone:
		return "phone"
	case StepPayment:
		return "payment"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the four steps.
func (s Step) Valid() bool { return s >= StepContract && s <= StepPayment }
