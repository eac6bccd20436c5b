package mail

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/smtp"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
	gomail "github.com/emersion/go-message/mail"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/port"
)

// IMAPConfig holds the IMAP and SMTP endpoints of one mailbox.
type IMAPConfig struct {
	IMAPHost   string
	IMAPPort   string
	SMTPHost   string
	SMTPPort   string
	Username   string
	Password   string
	TLS        bool
	Sender     string
	SenderName string
}

// IMAPProvider implements port.MailProvider over IMAP for the read side and
// SMTP for the send side. Connections are short-lived: each operation dials,
// works and logs out, which keeps the adapter stateless between calls.
type IMAPProvider struct {
	cfg       IMAPConfig
	dedup     port.DedupCache
	processor *Processor

	mu sync.Mutex // one fetch in flight per provider
}

func NewIMAPProvider(cfg IMAPConfig, dedup port.DedupCache, processor *Processor) *IMAPProvider {
	return &IMAPProvider{cfg: cfg, dedup: dedup, processor: processor}
}

func (p *IMAPProvider) Name() string { return "imap" }

// connect dials and authenticates, retrying the login exactly once on an
// authentication failure.
func (p *IMAPProvider) connect() (*imapclient.Client, error) {
	addr := p.cfg.IMAPHost + ":" + p.cfg.IMAPPort

	dial := func() (*imapclient.Client, error) {
		if p.cfg.TLS {
			return imapclient.DialTLS(addr, nil)
		}
		return imapclient.DialStartTLS(addr, nil)
	}

	client, err := dial()
	if err != nil {
		return nil, fmt.Errorf("connecting to IMAP %s: %w", addr, err)
	}

	if err := client.Login(p.cfg.Username, p.cfg.Password).Wait(); err != nil {
		_ = client.Logout().Wait()
		log.WithError(err).Warn("IMAP login failed, retrying once")

		client, dialErr := dial()
		if dialErr != nil {
			return nil, fmt.Errorf("reconnecting to IMAP %s: %w", addr, dialErr)
		}
		if err := client.Login(p.cfg.Username, p.cfg.Password).Wait(); err != nil {
			_ = client.Logout().Wait()
			return nil, fmt.Errorf("IMAP authentication failed for %s: %w", p.cfg.Username, err)
		}
		return client, nil
	}

	return client, nil
}

// imapMessageID builds the provider message id for one mailbox message. UIDs are
// only unique within a folder, so the folder is part of the id.
func imapMessageID(folder string, uid imap.UID) string {
	return folder + "/" + strconv.FormatUint(uint64(uid), 10)
}

func splitIMAPMessageID(id string) (folder string, uid imap.UID, err error) {
	idx := strings.LastIndex(id, "/")
	if idx < 0 {
		return "", 0, fmt.Errorf("malformed IMAP message id %q", id)
	}
	n, err := strconv.ParseUint(id[idx+1:], 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("malformed IMAP message id %q: %w", id, err)
	}
	return id[:idx], imap.UID(n), nil
}

// Fetch searches the folder, filters the resulting UIDs against the dedup
// cache before downloading bodies, and normalizes the rest. A message that
// fails to parse is logged and skipped.
func (p *IMAPProvider) Fetch(ctx context.Context, q domain.FetchQuery) ([]domain.NormalizedMessage, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	maxResults := q.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}
	folder := q.Folder
	if folder == "" {
		folder = "INBOX"
	}

	client, err := p.connect()
	if err != nil {
		// Fail soft on auth problems so a batch ingestion run keeps going.
		log.WithError(err).Error("IMAP fetch abandoned")
		return []domain.NormalizedMessage{}, nil
	}
	defer func() { _ = client.Logout().Wait() }()

	if _, err := client.Select(folder, nil).Wait(); err != nil {
		return nil, fmt.Errorf("%w: selecting %s: %v", domain.ErrProvider, folder, err)
	}

	criteria := &imap.SearchCriteria{}
	if q.OnlyRecent {
		criteria.Since = time.Now().Add(-domain.RecentWindow)
	}
	if strings.TrimSpace(q.Query) != "" {
		criteria.Text = []string{strings.TrimSpace(q.Query)}
	}

	searchData, err := client.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("%w: searching %s: %v", domain.ErrProvider, folder, err)
	}

	// Cheap id-only pass: drop already-seen UIDs before any body download.
	var fresh []imap.UID
	for _, uid := range searchData.AllUIDs() {
		if !p.dedup.Contains(imapMessageID(folder, uid)) {
			fresh = append(fresh, uid)
		}
	}
	if len(fresh) == 0 {
		return []domain.NormalizedMessage{}, nil
	}
	// Most recent messages first.
	if len(fresh) > maxResults {
		fresh = fresh[len(fresh)-maxResults:]
	}

	bodySection := &imap.FetchItemBodySection{}
	fetchOpts := &imap.FetchOptions{
		Envelope:     true,
		UID:          true,
		InternalDate: true,
		BodySection:  []*imap.FetchItemBodySection{bodySection},
	}

	fetchCmd := client.Fetch(imap.UIDSetNum(fresh...), fetchOpts)
	defer fetchCmd.Close()

	var out []domain.NormalizedMessage
	for {
		raw := fetchCmd.Next()
		if raw == nil {
			break
		}
		buf, err := raw.Collect()
		if err != nil {
			log.WithError(err).Warn("Failed to collect IMAP message, skipping")
			continue
		}

		msg, err := p.normalize(folder, buf, buf.FindBodySection(bodySection))
		if err != nil {
			log.WithError(err).WithField("uid", buf.UID).Warn("Failed to normalize IMAP message, skipping")
			continue
		}

		p.processor.SaveAttachments(ctx, msg, p.GetAttachmentData)

		if err := p.dedup.MarkProcessed(msg.MessageID); err != nil {
			log.WithError(err).Warn("Failed to record message in dedup cache")
		}
		out = append(out, *msg)
		if len(out) >= maxResults {
			break
		}
	}

	if err := fetchCmd.Close(); err != nil {
		log.WithError(err).Warn("IMAP fetch closed with error, returning partial result")
	}
	if out == nil {
		out = []domain.NormalizedMessage{}
	}
	return out, nil
}

func (p *IMAPProvider) normalize(folder string, buf *imapclient.FetchMessageBuffer, rawBody []byte) (*domain.NormalizedMessage, error) {
	msg := &domain.NormalizedMessage{
		MessageID:  imapMessageID(folder, buf.UID),
		ReceivedAt: buf.InternalDate.UTC(),
	}

	if env := buf.Envelope; env != nil {
		msg.Subject = env.Subject
		if len(env.From) > 0 {
			msg.Sender = env.From[0].Addr()
			if env.From[0].Name != "" {
				msg.Sender = fmt.Sprintf("%s <%s>", env.From[0].Name, env.From[0].Addr())
			}
		}
		for _, to := range env.To {
			msg.Recipients = append(msg.Recipients, to.Addr())
		}
		if !env.Date.IsZero() {
			msg.ReceivedAt = env.Date.UTC()
		}
	}

	if len(rawBody) == 0 {
		return nil, fmt.Errorf("message %s has no body section", msg.MessageID)
	}

	var parts BodyParts
	var attachments []domain.Attachment
	if err := collectIMAPParts(rawBody, &parts, &attachments); err != nil {
		parts.Raw = string(rawBody)
	}
	for i := range attachments {
		// Attachment ids are part ordinals within the message.
		attachments[i].AttachmentID = strconv.Itoa(i + 1)
	}
	msg.Attachments = attachments
	msg.Body = p.processor.ExtractBody(parts)

	return msg, nil
}

// collectIMAPParts walks the MIME structure gathering body candidates and
// attachment descriptors.
func collectIMAPParts(raw []byte, parts *BodyParts, attachments *[]domain.Attachment) error {
	mr, err := gomail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch h := part.Header.(type) {
		case *gomail.InlineHeader:
			contentType, _, err := h.ContentType()
			if err != nil {
				continue
			}
			data, err := io.ReadAll(part.Body)
			if err != nil {
				continue
			}
			switch {
			case contentType == "text/html" && parts.HTML == "":
				parts.HTML = string(data)
			case contentType == "text/plain" && parts.Text == "":
				parts.Text = string(data)
			case parts.Raw == "":
				parts.Raw = string(data)
			}
		case *gomail.AttachmentHeader:
			filename, _ := h.Filename()
			if filename == "" {
				continue
			}
			contentType, _, _ := h.ContentType()
			*attachments = append(*attachments, domain.Attachment{
				Filename: filename,
				MimeType: contentType,
			})
		}
	}
	return nil
}

func (p *IMAPProvider) MarkAsRead(ctx context.Context, messageID string) error {
	folder, uid, err := splitIMAPMessageID(messageID)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}

	client, err := p.connect()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	defer func() { _ = client.Logout().Wait() }()

	if _, err := client.Select(folder, nil).Wait(); err != nil {
		return fmt.Errorf("%w: selecting %s: %v", domain.ErrProvider, folder, err)
	}

	store := client.Store(imap.UIDSetNum(uid), &imap.StoreFlags{
		Op:     imap.StoreFlagsAdd,
		Silent: true,
		Flags:  []imap.Flag{imap.FlagSeen},
	}, nil)
	if err := store.Close(); err != nil {
		return fmt.Errorf("%w: marking %s seen: %v", domain.ErrProvider, messageID, err)
	}
	return nil
}

// Send delivers via SMTP. IMAP has no server-assigned message id on submit,
// so the receipt carries a generated Message-ID header value.
func (p *IMAPProvider) Send(ctx context.Context, mailOut domain.OutgoingMail) (*domain.SendReceipt, error) {
	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), p.cfg.SMTPHost)

	body, err := p.buildSMTPMessage(messageID, mailOut)
	if err != nil {
		return nil, fmt.Errorf("%w: smtp send: %v", domain.ErrProvider, err)
	}

	addr := p.cfg.SMTPHost + ":" + p.cfg.SMTPPort
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: p.cfg.SMTPHost})
	if err != nil {
		return nil, fmt.Errorf("%w: connecting to SMTP %s: %v", domain.ErrProvider, addr, err)
	}

	client, err := smtp.NewClient(conn, p.cfg.SMTPHost)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: creating SMTP client: %v", domain.ErrProvider, err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", p.cfg.Username, p.cfg.Password, p.cfg.SMTPHost)
	if err := client.Auth(auth); err != nil {
		return nil, fmt.Errorf("%w: SMTP auth: %v", domain.ErrProvider, err)
	}

	if err := client.Mail(p.cfg.Sender); err != nil {
		return nil, fmt.Errorf("%w: SMTP MAIL FROM: %v", domain.ErrProvider, err)
	}
	for _, rcpt := range append(append(append([]string{}, mailOut.To...), mailOut.Cc...), mailOut.Bcc...) {
		if err := client.Rcpt(rcpt); err != nil {
			return nil, fmt.Errorf("%w: SMTP RCPT TO %s: %v", domain.ErrProvider, rcpt, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return nil, fmt.Errorf("%w: SMTP DATA: %v", domain.ErrProvider, err)
	}
	if _, err := w.Write(body); err != nil {
		return nil, fmt.Errorf("%w: SMTP write: %v", domain.ErrProvider, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: SMTP close: %v", domain.ErrProvider, err)
	}
	if err := client.Quit(); err != nil {
		log.WithError(err).Debug("SMTP QUIT failed after successful send")
	}

	return &domain.SendReceipt{MessageID: messageID}, nil
}

func (p *IMAPProvider) buildSMTPMessage(messageID string, mailOut domain.OutgoingMail) ([]byte, error) {
	var b bytes.Buffer
	var h gomail.Header
	h.SetAddressList("From", []*gomail.Address{{Name: p.cfg.SenderName, Address: p.cfg.Sender}})

	to := make([]*gomail.Address, 0, len(mailOut.To))
	for _, addr := range mailOut.To {
		to = append(to, &gomail.Address{Address: addr})
	}
	h.SetAddressList("To", to)
	if len(mailOut.Cc) > 0 {
		cc := make([]*gomail.Address, 0, len(mailOut.Cc))
		for _, addr := range mailOut.Cc {
			cc = append(cc, &gomail.Address{Address: addr})
		}
		h.SetAddressList("Cc", cc)
	}
	h.SetSubject(mailOut.Subject)
	h.SetMessageID(strings.Trim(messageID, "<>"))
	h.SetDate(time.Now())

	mw, err := gomail.CreateWriter(&b, h)
	if err != nil {
		return nil, err
	}

	var inline gomail.InlineHeader
	inline.SetContentType("text/plain", map[string]string{"charset": "utf-8"})
	iw, err := mw.CreateInline()
	if err != nil {
		return nil, err
	}
	pw, err := iw.CreatePart(inline)
	if err != nil {
		return nil, err
	}
	if _, err := pw.Write([]byte(mailOut.Body)); err != nil {
		return nil, err
	}
	pw.Close()
	iw.Close()

	for _, path := range mailOut.Attachments {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read attachment %s: %w", path, err)
		}
		var ah gomail.AttachmentHeader
		ah.SetFilename(filepath.Base(path))
		aw, err := mw.CreateAttachment(ah)
		if err != nil {
			return nil, err
		}
		if _, err := aw.Write(data); err != nil {
			return nil, err
		}
		aw.Close()
	}

	mw.Close()
	return b.Bytes(), nil
}

// GetLabels lists mailboxes; IMAP folders stand in for labels.
func (p *IMAPProvider) GetLabels(ctx context.Context) ([]domain.Label, error) {
	client, err := p.connect()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	defer func() { _ = client.Logout().Wait() }()

	boxes, err := client.List("", "*", nil).Collect()
	if err != nil {
		return nil, fmt.Errorf("%w: listing mailboxes: %v", domain.ErrProvider, err)
	}

	labels := make([]domain.Label, 0, len(boxes))
	for _, box := range boxes {
		labels = append(labels, domain.Label{ID: box.Mailbox, Name: box.Mailbox})
	}
	return labels, nil
}

// ApplyLabel copies the message into the named mailbox, creating it first
// when missing.
func (p *IMAPProvider) ApplyLabel(ctx context.Context, messageID, labelName string) error {
	folder, uid, err := splitIMAPMessageID(messageID)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}

	client, err := p.connect()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	defer func() { _ = client.Logout().Wait() }()

	if err := client.Create(labelName, nil).Wait(); err != nil {
		// Mailbox probably exists already; the copy below is authoritative.
		log.WithError(err).WithField("mailbox", labelName).Debug("Mailbox create failed")
	}

	if _, err := client.Select(folder, nil).Wait(); err != nil {
		return fmt.Errorf("%w: selecting %s: %v", domain.ErrProvider, folder, err)
	}
	if _, err := client.Copy(imap.UIDSetNum(uid), labelName).Wait(); err != nil {
		return fmt.Errorf("%w: copying %s to %s: %v", domain.ErrProvider, messageID, labelName, err)
	}
	return nil
}

// Archive moves the message to the Archive mailbox.
func (p *IMAPProvider) Archive(ctx context.Context, messageID string) error {
	folder, uid, err := splitIMAPMessageID(messageID)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}

	client, err := p.connect()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	defer func() { _ = client.Logout().Wait() }()

	if _, err := client.Select(folder, nil).Wait(); err != nil {
		return fmt.Errorf("%w: selecting %s: %v", domain.ErrProvider, folder, err)
	}
	if err := client.Create("Archive", nil).Wait(); err != nil {
		log.WithError(err).Debug("Archive mailbox create failed")
	}
	if _, err := client.Move(imap.UIDSetNum(uid), "Archive").Wait(); err != nil {
		return fmt.Errorf("%w: archiving %s: %v", domain.ErrProvider, messageID, err)
	}
	return nil
}

// GetAttachmentData refetches the message and returns the bytes of the
// attachment at the given part ordinal.
func (p *IMAPProvider) GetAttachmentData(ctx context.Context, messageID, attachmentID string) ([]byte, error) {
	folder, uid, err := splitIMAPMessageID(messageID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	ordinal, err := strconv.Atoi(attachmentID)
	if err != nil || ordinal < 1 {
		return nil, fmt.Errorf("%w: malformed attachment id %q", domain.ErrProvider, attachmentID)
	}

	client, err := p.connect()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}
	defer func() { _ = client.Logout().Wait() }()

	if _, err := client.Select(folder, nil).Wait(); err != nil {
		return nil, fmt.Errorf("%w: selecting %s: %v", domain.ErrProvider, folder, err)
	}

	bodySection := &imap.FetchItemBodySection{Peek: true}
	fetchOpts := &imap.FetchOptions{
		UID:         true,
		BodySection: []*imap.FetchItemBodySection{bodySection},
	}
	bufs, err := client.Fetch(imap.UIDSetNum(uid), fetchOpts).Collect()
	if err != nil || len(bufs) == 0 {
		return nil, fmt.Errorf("%w: fetching %s: %v", domain.ErrProvider, messageID, err)
	}

	raw := bufs[0].FindBodySection(bodySection)
	mr, err := gomail.CreateReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrProvider, messageID, err)
	}

	seen := 0
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading parts of %s: %v", domain.ErrProvider, messageID, err)
		}
		if _, ok := part.Header.(*gomail.AttachmentHeader); !ok {
			continue
		}
		seen++
		if seen != ordinal {
			continue
		}
		data, err := io.ReadAll(part.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: reading attachment %s/%s: %v", domain.ErrProvider, messageID, attachmentID, err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("%w: attachment %s not found in %s", domain.ErrProvider, attachmentID, messageID)
}

func (p *IMAPProvider) Health(ctx context.Context) domain.ProviderStatus {
	status := domain.ProviderStatus{Provider: p.Name(), CheckedAt: time.Now().UTC()}

	client, err := p.connect()
	if err != nil {
		status.Detail = err.Error()
		return status
	}
	defer func() { _ = client.Logout().Wait() }()

	if _, err := client.Select("INBOX", nil).Wait(); err != nil {
		status.Detail = err.Error()
		return status
	}
	status.Healthy = true
	return status
}
