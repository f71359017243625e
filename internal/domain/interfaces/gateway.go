package interfaces

import (
	"context"

	domaintypes "github.com/Umidjon1990/tolovnazorat-bot/internal/domain/types"
)

//go:generate mockgen -source=gateway.go -destination=../mocks/gateway.go -package=mocks

// Gateway is how we talk to the remote user/course service, all with context.
// Each method is exactly one backend call and is never retried.
type Gateway interface {
	ListCourses(ctx context.Context) ([]domaintypes.Course, error)
	GetCourse(ctx context.Context, id int64) (domaintypes.Course, error)

	RegisterAgreement(ctx context.Context, agreedAt int64) (domaintypes.Ack, error)
	SelectCourse(ctx context.Context, courseName string) (domaintypes.Ack, error)
	SavePhone(ctx context.Context, phone string) (domaintypes.Ack, error)
	SubmitPayment(
		ctx context.Context,
		data []byte,
		mimeType string,
	) (domaintypes.Ack, error)

	GetMe(ctx context.Context) (domaintypes.UserRecord, error)
	GetSubscription(ctx context.Context) (domaintypes.Subscription, error)
}
