package screens

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/domain"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/domain/mocks"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/gateway"
)

// notices records every message shown to the user.
type notices struct {
	mu   sync.Mutex
	msgs []string
}

func (n *notices) Notify(_ context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, message)
}

func (n *notices) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.msgs...)
}

type exitCounter struct {
	mu sync.Mutex
	n  int
}

func (e *exitCounter) Exit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.n++
}

func (e *exitCounter) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.n
}

var (
	basic = domain.Course{ID: 1, Name: "Basic", Emoji: "📘", Type: domain.CourseStandard}
	pro   = domain.Course{ID: 2, Name: "Pro", Emoji: "⭐", Type: domain.CoursePremium}

	serverDown = &gateway.Error{Op: "test", Kind: gateway.ErrServer, Status: 503, Message: "Service Unavailable"}
)

type ScreensSuite struct {
	suite.Suite
	ctx     context.Context
	gw      *mocks.MockGateway
	notices *notices
	exits   *exitCounter
	deps    Deps
}

func TestScreensSuite(t *testing.T) {
	suite.Run(t, new(ScreensSuite))
}

func (s *ScreensSuite) SetupTest() {
	s.ctx = context.Background()
	ctrl := gomock.NewController(s.T())
	s.gw = mocks.NewMockGateway(ctrl)
	s.notices = &notices{}
	s.exits = &exitCounter{}
	s.deps = Deps{
		Gateway:  s.gw,
		Notifier: s.notices,
		Exiter:   s.exits,
		Now:      func() time.Time { return time.Unix(1700000000, 0) },
	}
}

func (s *ScreensSuite) TestContract_AcceptRegistersCurrentTime() {
	c := NewContract(s.deps)
	s.Equal(AgreementText, c.Text())
	s.gw.EXPECT().RegisterAgreement(gomock.Any(), int64(1700000000)).Return(domain.Ack{Success: true}, nil)

	out, err := c.Accept(s.ctx)

	s.Require().NoError(err)
	s.Equal(Advance, out)
	s.Equal(Advanced, c.State())
	s.Empty(s.notices.all())
}

func (s *ScreensSuite) TestContract_FailureStaysIdle() {
	c := NewContract(s.deps)
	s.gw.EXPECT().RegisterAgreement(gomock.Any(), gomock.Any()).Return(domain.Ack{}, serverDown)

	out, err := c.Accept(s.ctx)

	s.ErrorIs(err, gateway.ErrServer)
	s.Equal(Stay, out)
	s.Equal(Idle, c.State())
	s.Equal([]string{"Xatolik yuz berdi: Service Unavailable"}, s.notices.all())
	s.True(c.View().ActionEnabled)
}

func (s *ScreensSuite) TestContract_AcceptAfterAdvanceIsRejected() {
	c := NewContract(s.deps)
	s.gw.EXPECT().RegisterAgreement(gomock.Any(), gomock.Any()).Return(domain.Ack{Success: true}, nil).Times(1)

	_, err := c.Accept(s.ctx)
	s.Require().NoError(err)
	out, err := c.Accept(s.ctx)

	s.ErrorIs(err, ErrAlreadyAdvanced)
	s.Equal(Stay, out)
}

func (s *ScreensSuite) TestContract_DuplicateClickWhileInFlight() {
	c := NewContract(s.deps)
	entered := make(chan struct{})
	release := make(chan struct{})
	var calls atomic.Int32
	s.gw.EXPECT().RegisterAgreement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, int64) (domain.Ack, error) {
			if calls.Add(1) > 1 {
				s.Fail("duplicate click reached the gateway")
				return domain.Ack{}, errors.New("duplicate call")
			}
			close(entered)
			<-release
			return domain.Ack{Success: true}, nil
		}).MinTimes(1)

	type result struct {
		out Outcome
		err error
	}
	first := make(chan result, 1)
	go func() {
		out, err := c.Accept(s.ctx)
		first <- result{out, err}
	}()
	<-entered
	s.Equal(Submitting, c.State())
	s.False(c.View().ActionEnabled)
	s.Equal(MsgLoading, c.View().ActionLabel)

	second := make(chan result, 1)
	started := make(chan struct{})
	go func() {
		close(started)
		out, err := c.Accept(s.ctx)
		second <- result{out, err}
	}()
	<-started
	// Give the duplicate time to park on the in-flight call; it cannot
	// finish while the first call is held.
	select {
	case r := <-second:
		s.FailNow("duplicate returned before the first call finished", "%v", r)
	case <-time.After(50 * time.Millisecond):
	}
	close(release)

	r1 := <-first
	s.Require().NoError(r1.err)
	s.Equal(Advance, r1.out)

	r2 := <-second
	s.Require().NoError(r2.err)
	s.Equal(Advance, r2.out)
	s.Equal(int32(1), calls.Load())
}

func (s *ScreensSuite) TestCourseSelect_RendersChoicesWithPremiumFlag() {
	c := NewCourseSelect(s.deps)
	s.Equal(MsgLoading, c.View().Body)
	s.gw.EXPECT().ListCourses(gomock.Any()).Return([]domain.Course{basic, pro}, nil)

	s.Require().NoError(c.Enter(s.ctx))

	choices := c.View().Choices
	s.Require().Len(choices, 2)
	s.Equal("Basic", choices[0].Course.Name)
	s.False(choices[0].Premium)
	s.Equal("Pro", choices[1].Course.Name)
	s.True(choices[1].Premium)
	s.Contains(choices[1].Label(), "PREMIUM")
	s.NotContains(choices[0].Label(), "PREMIUM")
	s.True(c.View().ActionEnabled)
}

func (s *ScreensSuite) TestCourseSelect_EnterReloadsEachVisit() {
	c := NewCourseSelect(s.deps)
	gomock.InOrder(
		s.gw.EXPECT().ListCourses(gomock.Any()).Return([]domain.Course{basic, pro}, nil),
		s.gw.EXPECT().ListCourses(gomock.Any()).Return(nil, serverDown),
	)

	s.Require().NoError(c.Enter(s.ctx))
	s.Len(c.Choices(), 2)

	err := c.Enter(s.ctx)
	s.ErrorIs(err, gateway.ErrServer)
	s.Empty(c.Choices())
	s.Equal([]string{MsgCoursesLoadFailed}, s.notices.all())
}

func (s *ScreensSuite) TestCourseSelect_Select() {
	c := NewCourseSelect(s.deps)
	s.gw.EXPECT().ListCourses(gomock.Any()).Return([]domain.Course{basic, pro}, nil)
	s.gw.EXPECT().SelectCourse(gomock.Any(), "Pro").Return(domain.Ack{Success: true}, nil)
	s.Require().NoError(c.Enter(s.ctx))

	out, err := c.Select(s.ctx, "Pro")

	s.Require().NoError(err)
	s.Equal(Advance, out)
}

func (s *ScreensSuite) TestCourseSelect_UnknownNameNeverCallsGateway() {
	c := NewCourseSelect(s.deps)
	s.gw.EXPECT().ListCourses(gomock.Any()).Return([]domain.Course{basic}, nil)
	s.Require().NoError(c.Enter(s.ctx))

	out, err := c.Select(s.ctx, "Gold")

	s.ErrorIs(err, ErrUnknownCourse)
	s.Equal(Stay, out)
	s.Equal(Idle, c.State())
	s.Equal([]string{MsgUnknownCourse}, s.notices.all())
}

func (s *ScreensSuite) TestPhone_InvalidInputNeverCallsGateway() {
	p := NewPhone(s.deps)

	for _, in := range []string{"12345", "abc123456789", "", "   ", "+99890 1234567"} {
		out, err := p.Submit(s.ctx, in)
		s.ErrorIs(err, ErrInvalidPhone, in)
		s.Equal(Stay, out)
		s.Equal(Idle, p.State())
	}
	s.Len(s.notices.all(), 5)
	s.Equal(MsgPhoneInvalid, s.notices.all()[0])
}

func (s *ScreensSuite) TestPhone_SendsTrimmedNumber() {
	p := NewPhone(s.deps)
	s.gw.EXPECT().SavePhone(gomock.Any(), "+998901234567").Return(domain.Ack{Success: true}, nil)

	out, err := p.Submit(s.ctx, "  +998901234567 \n")

	s.Require().NoError(err)
	s.Equal(Advance, out)
}

func (s *ScreensSuite) TestPayment_NoFileNeverCallsGateway() {
	p := NewPayment(s.deps)
	s.False(p.View().ActionEnabled)

	out, err := p.Submit(s.ctx)

	s.ErrorIs(err, ErrNoReceipt)
	s.Equal(Stay, out)
	s.Equal(Idle, p.State())
	s.Equal([]string{MsgPaymentNoReceipt}, s.notices.all())
	s.Zero(s.exits.count())
}

func (s *ScreensSuite) TestPayment_SubmitExitsOnceAndDiscardsReceipt() {
	p := NewPayment(s.deps)
	data := []byte{0x89, 'P', 'N', 'G'}
	p.Choose(
		domain.Receipt{Name: "a.png", MimeType: "image/png", Data: data, Preview: "aaaa"},
		domain.Receipt{Name: "b.jpg", MimeType: "image/jpeg", Data: []byte{1}, Preview: "bbbb"},
	)
	s.Equal("aaaa", p.Preview())
	s.True(p.View().ActionEnabled)
	s.Equal("aaaa", p.View().Preview)
	s.gw.EXPECT().SubmitPayment(gomock.Any(), []byte{0x89, 'P', 'N', 'G'}, "image/png").
		Return(domain.Ack{Success: true, PaymentID: 9}, nil)

	out, err := p.Submit(s.ctx)

	s.Require().NoError(err)
	s.Equal(Advance, out)
	s.Equal(1, s.exits.count())
	s.Equal([]string{MsgPaymentSubmitted}, s.notices.all())
	s.Equal([]byte{0, 0, 0, 0}, data)
	s.Empty(p.Preview())
}

func (s *ScreensSuite) TestPayment_AlertsBeforeExit() {
	ctrl := gomock.NewController(s.T())
	notifier := mocks.NewMockNotifier(ctrl)
	exiter := mocks.NewMockExiter(ctrl)
	gomock.InOrder(
		s.gw.EXPECT().SubmitPayment(gomock.Any(), gomock.Any(), "image/jpeg").Return(domain.Ack{Success: true}, nil),
		notifier.EXPECT().Notify(gomock.Any(), MsgPaymentSubmitted),
		exiter.EXPECT().Exit(),
	)
	d := s.deps
	d.Notifier, d.Exiter = notifier, exiter
	p := NewPayment(d)
	p.Choose(domain.Receipt{Name: "c.jpg", MimeType: "image/jpeg", Data: []byte{0xff, 0xd8}, Preview: "cccc"})

	out, err := p.Submit(s.ctx)

	s.Require().NoError(err)
	s.Equal(Advance, out)
}

func (s *ScreensSuite) TestPayment_ChooseNothingKeepsPick() {
	p := NewPayment(s.deps)
	p.Choose(domain.Receipt{Name: "a.png", MimeType: "image/png", Data: []byte{1}, Preview: "aaaa"})
	p.Choose()
	s.Equal("aaaa", p.Preview())
}

func (s *ScreensSuite) TestAlwaysFailingGatewayKeepsEveryScreenIdle() {
	s.gw.EXPECT().RegisterAgreement(gomock.Any(), gomock.Any()).Return(domain.Ack{}, serverDown).AnyTimes()
	s.gw.EXPECT().ListCourses(gomock.Any()).Return([]domain.Course{basic}, nil).AnyTimes()
	s.gw.EXPECT().SelectCourse(gomock.Any(), gomock.Any()).Return(domain.Ack{}, serverDown).AnyTimes()
	s.gw.EXPECT().SavePhone(gomock.Any(), gomock.Any()).Return(domain.Ack{}, serverDown).AnyTimes()
	s.gw.EXPECT().SubmitPayment(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Ack{}, serverDown).AnyTimes()

	contract := NewContract(s.deps)
	courses := NewCourseSelect(s.deps)
	phone := NewPhone(s.deps)
	payment := NewPayment(s.deps)
	s.Require().NoError(courses.Enter(s.ctx))
	payment.Choose(domain.Receipt{Name: "a.png", MimeType: "image/png", Data: []byte{1}})

	actions := map[string]struct {
		run   func() (Outcome, error)
		state func() State
	}{
		"contract": {func() (Outcome, error) { return contract.Accept(s.ctx) }, contract.State},
		"courses":  {func() (Outcome, error) { return courses.Select(s.ctx, "Basic") }, courses.State},
		"phone":    {func() (Outcome, error) { return phone.Submit(s.ctx, "+998901234567") }, phone.State},
		"payment":  {func() (Outcome, error) { return payment.Submit(s.ctx) }, payment.State},
	}
	for name, a := range actions {
		for i := 0; i < 2; i++ {
			out, err := a.run()
			s.ErrorIs(err, gateway.ErrServer, name)
			s.Equal(Stay, out, name)
			s.Equal(Idle, a.state(), name)
		}
	}
	s.Zero(s.exits.count())
	s.Len(s.notices.all(), 8)
}

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"+998901234567", true},
		{"998901234567", true},
		{"123456789", true},
		{"+123456789012345", true},
		{"  +998901234567  ", true},
		{"12345", false},
		{"12345678", false},
		{"1234567890123456", false},
		{"abc123456789", false},
		{"++998901234567", false},
		{"+998-90-123-45-67", false},
		{"", false},
		{"   ", false},
		{"٩٩٨٩٠١٢٣٤٥٦٧", false},
	}
	for _, tc := range cases {
		got, err := ValidatePhone(tc.in)
		if tc.valid {
			require.NoError(t, err, tc.in)
			assert.Equal(t, strings.TrimSpace(tc.in), got)
		} else {
			assert.True(t, errors.Is(err, ErrInvalidPhone), tc.in)
		}
	}
}

func TestStateAndOutcomeStrings(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "submitting", Submitting.String())
	assert.Equal(t, "advanced", Advanced.String())
	assert.Equal(t, "advance", Advance.String())
	assert.Equal(t, "stay", Stay.String())
}
