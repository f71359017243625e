package screens

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/domain"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/gateway"
)

// ErrUnknownCourse is returned when the picked name is not among the choices.
var ErrUnknownCourse = errors.New("unknown course")

// Choice is one selectable course.
type Choice struct {
	Course  domain.Course
	Premium bool
}

// Label renders the choice the way the course grid shows it.
func (c Choice) Label() string {
	if c.Premium {
		return fmt.Sprintf("%s %s [PREMIUM]", c.Course.Emoji, c.Course.Name)
	}
	return fmt.Sprintf("%s %s", c.Course.Emoji, c.Course.Name)
}

// CourseSelect lists the catalogue and records the picked course.
type CourseSelect struct {
	machine
	deps Deps

	listMu  sync.Mutex
	choices []Choice
	loaded  bool
}

// NewCourseSelect returns the course selection screen.
func NewCourseSelect(d Deps) *CourseSelect {
	c := &CourseSelect{deps: d}
	c.init("course-select", d)
	return c
}

// Enter fetches the catalogue afresh. On failure the list is left empty.
func (c *CourseSelect) Enter(ctx context.Context) error {
	courses, err := c.deps.Gateway.ListCourses(ctx)

	c.listMu.Lock()
	defer c.listMu.Unlock()
	c.loaded = true
	c.choices = nil
	if err != nil {
		c.notify(ctx, MsgCoursesLoadFailed)
		return err
	}
	c.choices = make([]Choice, 0, len(courses))
	for _, course := range courses {
		c.choices = append(c.choices, Choice{Course: course, Premium: course.Premium()})
	}
	return nil
}

// Choices returns the courses loaded by the last Enter, in backend order.
func (c *CourseSelect) Choices() []Choice {
	c.listMu.Lock()
	defer c.listMu.Unlock()
	return append([]Choice(nil), c.choices...)
}

func (c *CourseSelect) View() View {
	state := c.State()
	c.listMu.Lock()
	loaded := c.loaded
	c.listMu.Unlock()
	v := View{
		Title:         MsgCoursesTitle,
		Choices:       c.Choices(),
		ActionEnabled: state != Submitting && loaded,
	}
	if !loaded || state == Submitting {
		v.Body = MsgLoading
	}
	return v
}

// Select records name as the chosen course.
func (c *CourseSelect) Select(ctx context.Context, name string) (Outcome, error) {
	return c.submit(ctx, func(ctx context.Context) error {
		if !c.has(name) {
			c.notify(ctx, MsgUnknownCourse)
			return fmt.Errorf("%q: %w", name, ErrUnknownCourse)
		}
		if _, err := c.deps.Gateway.SelectCourse(ctx, name); err != nil {
			c.notify(ctx, MsgGenericFailPrefix+gateway.Reason(err))
			return err
		}
		c.log.InfoContext(ctx, "course selected", "course", name)
		return nil
	})
}

func (c *CourseSelect) has(name string) bool {
	for _, ch := range c.Choices() {
		if ch.Course.Name == name {
			return true
		}
	}
	return false
}
