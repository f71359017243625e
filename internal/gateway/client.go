package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Umidjon1990/tolovnazorat-bot/internal/domain"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/platform/logger"
	"github.com/Umidjon1990/tolovnazorat-bot/internal/platform/metrics"
)

const (
	authScheme = "tma"

	// maxBodyBytes caps how much of a response we are willing to buffer.
	maxBodyBytes = 4 << 20
)

// Client talks to the user/course backend over HTTP.
type Client struct {
	Base   string
	HTTP   *http.Client
	Tokens domain.TokenSource

	log     *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
	newID   func() string
}

// Option customises a Client.
type Option func(*Client)

// WithLogger sets the logger used for per-call debug lines.
func WithLogger(l *slog.Logger) Option { return func(c *Client) { c.log = l } }

// WithMetrics records per-call counters and latencies on m.
func WithMetrics(m *metrics.Metrics) Option { return func(c *Client) { c.metrics = m } }

// WithTracer overrides the global OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option { return func(c *Client) { c.tracer = t } }

// New returns a client for the backend rooted at base (e.g.
// "https://example.com/api"). A nil httpClient means http.DefaultClient.
func New(base string, httpClient *http.Client, tokens domain.TokenSource, opts ...Option) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &Client{
		Base:   strings.TrimRight(base, "/"),
		HTTP:   httpClient,
		Tokens: tokens,
		log:    logger.Discard(),
		tracer: otel.Tracer("github.com/Umidjon1990/tolovnazorat-bot/internal/gateway"),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ domain.Gateway = (*Client)(nil)

func (c *Client) ListCourses(ctx context.Context) ([]domain.Course, error) {
	var out struct {
		Courses []domain.Course `json:"courses"`
	}
	if err := c.getJSON(ctx, "list_courses", "/courses", &out); err != nil {
		return nil, err
	}
	return out.Courses, nil
}

func (c *Client) GetCourse(ctx context.Context, id int64) (domain.Course, error) {
	var out struct {
		Course *domain.Course `json:"course"`
		Error  string         `json:"error"`
	}
	const op = "get_course"
	if err := c.getJSON(ctx, op, "/courses/"+strconv.FormatInt(id, 10), &out); err != nil {
		return domain.Course{}, err
	}
	if out.Course == nil {
		msg := out.Error
		if msg == "" {
			msg = "course not found"
		}
		return domain.Course{}, &Error{Op: op, Kind: ErrValidation, Message: msg}
	}
	return *out.Course, nil
}

func (c *Client) RegisterAgreement(ctx context.Context, agreedAt int64) (domain.Ack, error) {
	return c.postJSON(ctx, "register_agreement", "/user/register", struct {
		AgreedAt int64 `json:"agreed_at"`
	}{AgreedAt: agreedAt})
}

func (c *Client) SelectCourse(ctx context.Context, courseName string) (domain.Ack, error) {
	return c.postJSON(ctx, "select_course", "/user/select-course", struct {
		CourseName string `json:"course_name"`
	}{CourseName: courseName})
}

func (c *Client) SavePhone(ctx context.Context, phone string) (domain.Ack, error) {
	return c.postJSON(ctx, "save_phone", "/user/phone", struct {
		Phone string `json:"phone"`
	}{Phone: phone})
}

// SubmitPayment uploads the receipt image as the multipart part "file".
func (c *Client) SubmitPayment(ctx context.Context, data []byte, mimeType string) (domain.Ack, error) {
	const op = "submit_payment"
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, receiptFilename(mimeType)))
	h.Set("Content-Type", mimeType)
	part, err := w.CreatePart(h)
	if err != nil {
		return domain.Ack{}, &Error{Op: op, Kind: ErrValidation, Message: "cannot encode receipt", Err: err}
	}
	if _, err := part.Write(data); err != nil {
		return domain.Ack{}, &Error{Op: op, Kind: ErrValidation, Message: "cannot encode receipt", Err: err}
	}
	if err := w.Close(); err != nil {
		return domain.Ack{}, &Error{Op: op, Kind: ErrValidation, Message: "cannot encode receipt", Err: err}
	}

	raw, err := c.do(ctx, op, http.MethodPost, "/user/payment", body, w.FormDataContentType())
	if err != nil {
		return domain.Ack{}, err
	}
	return decodeAck(op, raw)
}

func (c *Client) GetMe(ctx context.Context) (domain.UserRecord, error) {
	var out domain.UserRecord
	if err := c.getJSON(ctx, "get_me", "/user/me", &out); err != nil {
		return domain.UserRecord{}, err
	}
	return out, nil
}

func (c *Client) GetSubscription(ctx context.Context) (domain.Subscription, error) {
	var out domain.Subscription
	if err := c.getJSON(ctx, "get_subscription", "/user/subscription", &out); err != nil {
		return domain.Subscription{}, err
	}
	return out, nil
}

func (c *Client) postJSON(ctx context.Context, op, path string, in any) (domain.Ack, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return domain.Ack{}, &Error{Op: op, Kind: ErrValidation, Message: "cannot encode request", Err: err}
	}
	raw, err := c.do(ctx, op, http.MethodPost, path, bytes.NewReader(b), "application/json")
	if err != nil {
		return domain.Ack{}, err
	}
	return decodeAck(op, raw)
}

func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	raw, err := c.do(ctx, op, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Op: op, Kind: ErrServer, Message: "malformed response", Err: err}
	}
	return nil
}

// do issues one request and returns the buffered body of a 2xx response.
func (c *Client) do(
	ctx context.Context,
	op, method, path string,
	body io.Reader,
	contentType string,
) (raw []byte, err error) {
	ctx, span := c.tracer.Start(ctx, "gateway."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", method),
			attribute.String("url.path", path),
		),
	)
	start := time.Now()
	requestID := c.newID()
	status := 0
	defer func() {
		elapsed := time.Since(start)
		c.metrics.ObserveGatewayCall(op, outcome(err), elapsed.Seconds())
		if status != 0 {
			span.SetAttributes(attribute.Int("http.response.status_code", status))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome(err))
			c.log.WarnContext(ctx, "gateway call failed",
				"op", op,
				"status", status,
				"request_id", requestID,
				"error", err,
			)
		} else {
			c.log.DebugContext(ctx, "gateway call",
				"op", op,
				"status", status,
				"request_id", requestID,
				"duration", elapsed,
			)
		}
		span.End()
	}()

	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return nil, &Error{Op: op, Kind: ErrValidation, Message: "cannot build request", Err: err}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if c.Tokens != nil {
		if tok := c.Tokens.IdentityToken(); tok.Present() {
			req.Header.Set("Authorization", authScheme+" "+tok.String())
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &Error{Op: op, Kind: ErrNetwork, Message: "backend unreachable", Err: err}
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	raw, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &Error{Op: op, Kind: ErrNetwork, Status: status, Message: "response interrupted", Err: err}
	}
	if status/100 != 2 {
		return nil, &Error{
			Op:      op,
			Kind:    classifyStatus(status),
			Status:  status,
			Message: failureMessage(status, raw),
		}
	}
	return raw, nil
}

// decodeAck accepts an empty body as a bare acknowledgment; an explicit
// "success": false is a rejection.
func decodeAck(op string, raw []byte) (domain.Ack, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return domain.Ack{Success: true}, nil
	}
	var wire struct {
		Success   *bool  `json:"success"`
		Message   string `json:"message"`
		PaymentID int64  `json:"payment_id"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return domain.Ack{}, &Error{Op: op, Kind: ErrServer, Message: "malformed response", Err: err}
	}
	if wire.Success != nil && !*wire.Success {
		msg := wire.Message
		if msg == "" {
			msg = "request rejected"
		}
		return domain.Ack{}, &Error{Op: op, Kind: ErrValidation, Message: msg}
	}
	return domain.Ack{Success: true, Message: wire.Message, PaymentID: wire.PaymentID}, nil
}

// failureMessage extracts the backend's reason from an error body, falling
// back to the status text.
func failureMessage(status int, raw []byte) string {
	var body struct {
		Detail  json.RawMessage `json:"detail"`
		Error   string          `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		var detail string
		if len(body.Detail) > 0 && json.Unmarshal(body.Detail, &detail) == nil && detail != "" {
			return detail
		}
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "unexpected status " + strconv.Itoa(status)
}

func receiptFilename(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "image/png":
		return "receipt.png"
	case "image/gif":
		return "receipt.gif"
	case "image/webp":
		return "receipt.webp"
	case "image/heic":
		return "receipt.heic"
	case "image/bmp":
		return "receipt.bmp"
	default:
		return "receipt.jpg"
	}
}
