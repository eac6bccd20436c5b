package mail

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/port"
)

const gmailUser = "me"

// GmailConfig holds the OAuth2 client credentials and refresh token for one
// Gmail mailbox.
type GmailConfig struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	Sender       string
	SenderName   string
}

// GmailProvider implements port.MailProvider over the Gmail REST API.
type GmailProvider struct {
	cfg       GmailConfig
	dedup     port.DedupCache
	processor *Processor

	mu  sync.Mutex // one fetch in flight; guards svc replacement on re-auth
	svc *gmail.Service
}

// NewGmailProvider builds the adapter, establishing the API client from the
// OAuth2 client credentials and refresh token.
func NewGmailProvider(ctx context.Context, cfg GmailConfig, dedup port.DedupCache, processor *Processor) (*GmailProvider, error) {
	if cfg.Sender == "" {
		return nil, fmt.Errorf("gmail: sender address is required")
	}

	p := &GmailProvider{
		cfg:       cfg,
		dedup:     dedup,
		processor: processor,
	}

	svc, err := p.newService(ctx)
	if err != nil {
		return nil, err
	}
	p.svc = svc
	return p, nil
}

func (g *GmailProvider) newService(ctx context.Context) (*gmail.Service, error) {
	oauthCfg := &oauth2.Config{
		ClientID:     g.cfg.ClientID,
		ClientSecret: g.cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes: []string{
			gmail.GmailReadonlyScope,
			gmail.GmailSendScope,
			gmail.GmailModifyScope,
			gmail.GmailLabelsScope,
		},
	}

	token := &oauth2.Token{RefreshToken: g.cfg.RefreshToken}
	client := oauthCfg.Client(ctx, token)

	svc, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("gmail: failed to create service: %w", err)
	}
	return svc, nil
}

func (g *GmailProvider) Name() string { return "gmail" }

func isUnauthorized(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 401 || apiErr.Code == 403
	}
	return false
}

// withAuthRetry runs fn, re-authenticating exactly once on an authorization
// failure before giving up.
func (g *GmailProvider) withAuthRetry(ctx context.Context, fn func(svc *gmail.Service) error) error {
	g.mu.Lock()
	svc := g.svc
	g.mu.Unlock()

	err := fn(svc)
	if err == nil || !isUnauthorized(err) {
		return err
	}

	log.WithError(err).Warn("Gmail authorization failed, re-authenticating once")
	fresh, authErr := g.newService(ctx)
	if authErr != nil {
		return fmt.Errorf("%w: re-authentication failed: %v", domain.ErrProvider, authErr)
	}

	g.mu.Lock()
	g.svc = fresh
	g.mu.Unlock()

	return fn(fresh)
}

// buildGmailQuery combines the caller's query with the implicit recency
// filter. Exposed through Fetch only; split out for testing.
func buildGmailQuery(q domain.FetchQuery, now time.Time) string {
	parts := make([]string, 0, 2)
	if strings.TrimSpace(q.Query) != "" {
		parts = append(parts, strings.TrimSpace(q.Query))
	}
	if q.OnlyRecent {
		after := now.Add(-domain.RecentWindow)
		parts = append(parts, "after:"+after.Format("2006/01/02"))
	}
	return strings.Join(parts, " ")
}

// Fetch lists message ids page by page, skips ids already in the dedup cache
// before downloading full content, and normalizes the rest. Extraction
// failures are logged and skipped. A listing failure mid-pagination returns
// the messages accepted so far rather than an error. The dedup cache is
// marked only once the result set is settled, so a message is never hidden
// from a later fetch without having been handed to the caller.
func (g *GmailProvider) Fetch(ctx context.Context, q domain.FetchQuery) ([]domain.NormalizedMessage, error) {
	maxResults := q.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}
	query := buildGmailQuery(q, time.Now())

	var out []domain.NormalizedMessage
	// accepted carries progress across a re-authentication re-run so the
	// second attempt neither re-downloads nor duplicates what the first
	// attempt already collected.
	accepted := make(map[string]bool)
	err := g.withAuthRetry(ctx, func(svc *gmail.Service) error {
		pageToken := ""
		for {
			call := svc.Users.Messages.List(gmailUser).
				MaxResults(int64(maxResults)).
				IncludeSpamTrash(q.IncludeSpamTrash)
			if query != "" {
				call = call.Q(query)
			}
			if q.Folder != "" {
				call = call.LabelIds(strings.ToUpper(q.Folder))
			}
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}

			resp, err := call.Context(ctx).Do()
			if err != nil {
				return err
			}

			for _, ref := range resp.Messages {
				if accepted[ref.Id] || g.dedup.Contains(ref.Id) {
					continue
				}

				full, err := svc.Users.Messages.Get(gmailUser, ref.Id).Format("full").Context(ctx).Do()
				if err != nil {
					if isUnauthorized(err) {
						return err
					}
					log.WithError(err).WithField("messageID", ref.Id).Warn("Failed to download message, skipping")
					continue
				}

				msg, err := g.normalize(full)
				if err != nil {
					log.WithError(err).WithField("messageID", ref.Id).Warn("Failed to normalize message, skipping")
					continue
				}

				g.processor.SaveAttachments(ctx, msg, g.GetAttachmentData)

				accepted[msg.MessageID] = true
				out = append(out, *msg)
				if len(out) >= maxResults {
					return nil
				}
			}

			if resp.NextPageToken == "" {
				return nil
			}
			pageToken = resp.NextPageToken
		}
	})

	if err != nil {
		switch {
		case len(out) > 0:
			log.WithError(err).WithField("accepted", len(out)).Warn("Gmail listing failed mid-fetch, returning partial result")
		case isUnauthorized(err):
			log.WithError(err).Error("Gmail fetch abandoned after re-authentication failed")
			return []domain.NormalizedMessage{}, nil
		default:
			return nil, fmt.Errorf("%w: gmail fetch: %v", domain.ErrProvider, err)
		}
	}

	for i := range out {
		if err := g.dedup.MarkProcessed(out[i].MessageID); err != nil {
			log.WithError(err).Warn("Failed to record message in dedup cache")
		}
	}
	return out, nil
}

func (g *GmailProvider) normalize(m *gmail.Message) (*domain.NormalizedMessage, error) {
	if m.Payload == nil {
		return nil, fmt.Errorf("message %s has no payload", m.Id)
	}

	msg := &domain.NormalizedMessage{
		MessageID:  m.Id,
		ThreadID:   m.ThreadId,
		ReceivedAt: time.UnixMilli(m.InternalDate).UTC(),
	}

	for _, h := range m.Payload.Headers {
		switch h.Name {
		case "From":
			msg.Sender = h.Value
		case "To":
			msg.Recipients = strings.Split(h.Value, ",")
		case "Subject":
			msg.Subject = h.Value
		}
	}

	var parts BodyParts
	collectGmailParts(m.Payload, &parts, &msg.Attachments)
	msg.Body = g.processor.ExtractBody(parts)

	return msg, nil
}

// collectGmailParts walks the nested multipart tree gathering body
// candidates and attachment descriptors.
func collectGmailParts(part *gmail.MessagePart, parts *BodyParts, attachments *[]domain.Attachment) {
	if part == nil {
		return
	}

	if part.Filename != "" && part.Body != nil {
		*attachments = append(*attachments, domain.Attachment{
			AttachmentID: part.Body.AttachmentId,
			Filename:     part.Filename,
			MimeType:     part.MimeType,
			Size:         part.Body.Size,
		})
	} else if part.Body != nil && part.Body.Data != "" {
		data, err := decodeBase64URL(part.Body.Data)
		if err == nil {
			switch {
			case part.MimeType == "text/html" && parts.HTML == "":
				parts.HTML = string(data)
			case part.MimeType == "text/plain" && parts.Text == "":
				parts.Text = string(data)
			case parts.Raw == "":
				parts.Raw = string(data)
			}
		}
	}

	for _, child := range part.Parts {
		collectGmailParts(child, parts, attachments)
	}
}

func decodeBase64URL(s string) ([]byte, error) {
	if data, err := base64.URLEncoding.DecodeString(s); err == nil {
		return data, nil
	}
	return base64.RawURLEncoding.DecodeString(s)
}

func (g *GmailProvider) MarkAsRead(ctx context.Context, messageID string) error {
	err := g.withAuthRetry(ctx, func(svc *gmail.Service) error {
		_, err := svc.Users.Messages.Modify(gmailUser, messageID, &gmail.ModifyMessageRequest{
			RemoveLabelIds: []string{"UNREAD"},
		}).Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: gmail mark as read: %v", domain.ErrProvider, err)
	}
	return nil
}

// Send builds an RFC 2822 message (multipart/mixed when attachments are
// present) and submits it base64url-encoded.
func (g *GmailProvider) Send(ctx context.Context, mailOut domain.OutgoingMail) (*domain.SendReceipt, error) {
	raw, err := g.buildMIME(mailOut)
	if err != nil {
		return nil, fmt.Errorf("%w: gmail send: %v", domain.ErrProvider, err)
	}

	var sent *gmail.Message
	err = g.withAuthRetry(ctx, func(svc *gmail.Service) error {
		var sendErr error
		sent, sendErr = svc.Users.Messages.Send(gmailUser, &gmail.Message{
			Raw: base64.URLEncoding.EncodeToString(raw),
		}).Context(ctx).Do()
		return sendErr
	})
	if err != nil {
		return nil, fmt.Errorf("%w: gmail send: %v", domain.ErrProvider, err)
	}

	return &domain.SendReceipt{MessageID: sent.Id, ThreadID: sent.ThreadId}, nil
}

func (g *GmailProvider) buildMIME(mailOut domain.OutgoingMail) ([]byte, error) {
	from := g.cfg.Sender
	if g.cfg.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", g.cfg.SenderName, g.cfg.Sender)
	}

	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + strings.Join(mailOut.To, ", ") + "\r\n")
	if len(mailOut.Cc) > 0 {
		b.WriteString("Cc: " + strings.Join(mailOut.Cc, ", ") + "\r\n")
	}
	if len(mailOut.Bcc) > 0 {
		b.WriteString("Bcc: " + strings.Join(mailOut.Bcc, ", ") + "\r\n")
	}
	b.WriteString("Subject: " + mailOut.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")

	if len(mailOut.Attachments) == 0 {
		b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
		b.WriteString(mailOut.Body)
		return []byte(b.String()), nil
	}

	var body strings.Builder
	w := multipart.NewWriter(&body)
	b.WriteString("Content-Type: multipart/mixed; boundary=" + w.Boundary() + "\r\n\r\n")

	textHeader := textproto.MIMEHeader{}
	textHeader.Set("Content-Type", "text/plain; charset=UTF-8")
	part, err := w.CreatePart(textHeader)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write([]byte(mailOut.Body)); err != nil {
		return nil, err
	}

	for _, path := range mailOut.Attachments {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read attachment %s: %w", path, err)
		}

		name := filepath.Base(path)
		ctype := mime.TypeByExtension(filepath.Ext(name))
		if ctype == "" {
			ctype = "application/octet-stream"
		}

		header := textproto.MIMEHeader{}
		header.Set("Content-Type", ctype)
		header.Set("Content-Transfer-Encoding", "base64")
		header.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write([]byte(base64.StdEncoding.EncodeToString(data))); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, err
	}

	b.WriteString(body.String())
	return []byte(b.String()), nil
}

func (g *GmailProvider) GetLabels(ctx context.Context) ([]domain.Label, error) {
	var labels []domain.Label
	err := g.withAuthRetry(ctx, func(svc *gmail.Service) error {
		resp, err := svc.Users.Labels.List(gmailUser).Context(ctx).Do()
		if err != nil {
			return err
		}
		labels = labels[:0]
		for _, l := range resp.Labels {
			labels = append(labels, domain.Label{ID: l.Id, Name: l.Name})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: gmail labels: %v", domain.ErrProvider, err)
	}
	return labels, nil
}

// ApplyLabel attaches the named label to a message, creating the label when
// it does not exist yet.
func (g *GmailProvider) ApplyLabel(ctx context.Context, messageID, labelName string) error {
	labels, err := g.GetLabels(ctx)
	if err != nil {
		return err
	}

	labelID := ""
	for _, l := range labels {
		if strings.EqualFold(l.Name, labelName) {
			labelID = l.ID
			break
		}
	}

	err = g.withAuthRetry(ctx, func(svc *gmail.Service) error {
		if labelID == "" {
			created, err := svc.Users.Labels.Create(gmailUser, &gmail.Label{Name: labelName}).Context(ctx).Do()
			if err != nil {
				return err
			}
			labelID = created.Id
		}
		_, err := svc.Users.Messages.Modify(gmailUser, messageID, &gmail.ModifyMessageRequest{
			AddLabelIds: []string{labelID},
		}).Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: gmail apply label: %v", domain.ErrProvider, err)
	}
	return nil
}

func (g *GmailProvider) Archive(ctx context.Context, messageID string) error {
	err := g.withAuthRetry(ctx, func(svc *gmail.Service) error {
		_, err := svc.Users.Messages.Modify(gmailUser, messageID, &gmail.ModifyMessageRequest{
			RemoveLabelIds: []string{"INBOX"},
		}).Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: gmail archive: %v", domain.ErrProvider, err)
	}
	return nil
}

func (g *GmailProvider) GetAttachmentData(ctx context.Context, messageID, attachmentID string) ([]byte, error) {
	var data []byte
	err := g.withAuthRetry(ctx, func(svc *gmail.Service) error {
		body, err := svc.Users.Messages.Attachments.Get(gmailUser, messageID, attachmentID).Context(ctx).Do()
		if err != nil {
			return err
		}
		data, err = decodeBase64URL(body.Data)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: gmail attachment: %v", domain.ErrProvider, err)
	}
	return data, nil
}

func (g *GmailProvider) Health(ctx context.Context) domain.ProviderStatus {
	status := domain.ProviderStatus{Provider: g.Name(), CheckedAt: time.Now().UTC()}
	err := g.withAuthRetry(ctx, func(svc *gmail.Service) error {
		_, err := svc.Users.GetProfile(gmailUser).Context(ctx).Do()
		return err
	})
	if err != nil {
		status.Detail = err.Error()
		return status
	}
	status.Healthy = true
	return status
}
