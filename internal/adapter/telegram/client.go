package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pvlbrzn/ITSchool/internal/domain/model"
)

const messageTimeLayout = "02.01.2006 15:04"

// TooManyRequestsError represents rate limiting signal from the Bot API.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// HTTPNotifier posts enrollment announcements to a chat through the Bot API.
type HTTPNotifier struct {
	endpoint   string
	chatID     string
	location   *time.Location
	httpClient *http.Client
	logger     *slog.Logger
}

// apiResponse mirrors the Bot API envelope.
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	Parameters  struct {
		RetryAfter int `json:"retry_after"`
	} `json:"parameters"`
}

// NewHTTPNotifier creates notifier with default timeout. timezone names the
// zone used for timestamps in messages.
func NewHTTPNotifier(apiURL, token, chatID, timezone string, logger *slog.Logger) (*HTTPNotifier, error) {
	parsed, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("parse telegram url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("telegram url must be absolute")
	}
	if token == "" || chatID == "" {
		return nil, fmt.Errorf("telegram token and chat id must be provided")
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}
	return &HTTPNotifier{
		endpoint: strings.TrimRight(parsed.String(), "/") + "/bot" + token + "/sendMessage",
		chatID:   chatID,
		location: loc,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Notify sends a formatted message about a new enrollment request.
func (n *HTTPNotifier) Notify(ctx context.Context, event model.EnrollmentEvent) error {
	form := url.Values{}
	form.Set("chat_id", n.chatID)
	form.Set("text", FormatEnrollmentMessage(event, n.location))
	form.Set("parse_mode", "HTML")
	form.Set("disable_web_page_preview", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		var data apiResponse
		if json.Unmarshal(body, &data) == nil && data.Parameters.RetryAfter > 0 {
			retryAfter = time.Duration(data.Parameters.RetryAfter) * time.Second
		}
		return TooManyRequestsError{RetryAfter: retryAfter}
	default:
		n.logger.Error("telegram request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("telegram error: %s", resp.Status)
	}
}

// FormatEnrollmentMessage renders the HTML chat message for event. User
// supplied values are escaped.
func FormatEnrollmentMessage(event model.EnrollmentEvent, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	var b strings.Builder
	fmt.Fprintf(&b, "📥 <b>New enrollment request:</b> № %d\n\n", event.RequestID)
	fmt.Fprintf(&b, "👤 <b>User:</b> %s\n", html.EscapeString(event.RequesterName))
	fmt.Fprintf(&b, "📚 <b>Course:</b> %s\n", html.EscapeString(event.CourseTitle))
	fmt.Fprintf(&b, "🕒 <b>Date:</b> %s\n\n", event.CreatedAt.In(loc).Format(messageTimeLayout))
	fmt.Fprintf(&b, "➡️ <a href=\"%s\">Open requests</a>", html.EscapeString(event.ManageURL))
	return b.String()
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
