package mail

import (
	"context"
	"net/mail"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
)

// NoBodyFound is returned when a message carries no decodable body part.
const NoBodyFound = "No body content found"

// BodyParts holds the decoded candidate bodies of one message, by MIME kind.
type BodyParts struct {
	HTML string
	Text string
	Raw  string
}

// AttachmentFetcher downloads one attachment's bytes. Adapters pass their
// own attachment-data call here so the processor stays provider-agnostic.
type AttachmentFetcher func(ctx context.Context, messageID, attachmentID string) ([]byte, error)

// Processor extracts normalized body text, attachments and metadata from a
// provider-specific raw message.
type Processor struct {
	attachmentDir string
}

func NewProcessor(attachmentDir string) *Processor {
	return &Processor{attachmentDir: attachmentDir}
}

// ExtractBody produces plain text from the best available part: the HTML
// part is preferred over plain text, then the raw decoded body, then the
// NoBodyFound sentinel. It never fails.
func (p *Processor) ExtractBody(parts BodyParts) string {
	if strings.TrimSpace(parts.HTML) != "" {
		if text := normalizeWhitespace(stripHTML(parts.HTML)); text != "" {
			return text
		}
	}
	if strings.TrimSpace(parts.Text) != "" {
		if text := normalizeWhitespace(parts.Text); text != "" {
			return text
		}
	}
	if text := normalizeWhitespace(parts.Raw); text != "" {
		return text
	}
	return NoBodyFound
}

// SaveAttachments downloads every attachment of msg into the processor's
// attachment directory as {message_id}_{sanitized_filename} and records the
// local path on the attachment. One failed download is logged and skipped;
// the others still succeed.
func (p *Processor) SaveAttachments(ctx context.Context, msg *domain.NormalizedMessage, fetch AttachmentFetcher) {
	for i := range msg.Attachments {
		att := &msg.Attachments[i]
		if att.Filename == "" {
			continue
		}

		data, err := fetch(ctx, msg.MessageID, att.AttachmentID)
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"messageID": msg.MessageID,
				"filename":  att.Filename,
			}).Warn("Failed to download attachment, skipping")
			continue
		}

		name := msg.MessageID + "_" + sanitizeFilename(att.Filename)
		path := filepath.Join(p.attachmentDir, name)
		if err := os.MkdirAll(p.attachmentDir, 0o755); err != nil {
			log.WithError(err).Warn("Failed to create attachment dir")
			return
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			log.WithError(err).WithField("path", path).Warn("Failed to write attachment, skipping")
			continue
		}
		att.LocalPath = path
		att.Size = int64(len(data))
	}
}

// ExtractMetadata derives sender info, keywords, an attachment type
// histogram and the content length. Pure, no I/O.
func (p *Processor) ExtractMetadata(msg domain.NormalizedMessage) domain.MessageMetadata {
	meta := domain.MessageMetadata{
		SenderAddress: msg.Sender,
		ContentLength: len(msg.Body),
	}

	if addr, err := mail.ParseAddress(msg.Sender); err == nil {
		meta.SenderName = addr.Name
		meta.SenderAddress = addr.Address
	}

	meta.Keywords = topKeywords(msg.Subject+" "+msg.Body, 10)

	if len(msg.Attachments) > 0 {
		meta.AttachmentTypes = make(map[string]int)
		for _, att := range msg.Attachments {
			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(att.Filename), "."))
			if ext == "" {
				ext = "unknown"
			}
			meta.AttachmentTypes[ext]++
		}
	}

	return meta
}

// stripHTML turns markup into text: script/style subtrees are dropped, block
// elements break lines, entities are decoded by the tokenizer.
func stripHTML(src string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(src))
	skipDepth := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return b.String()
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				if tt == html.StartTagToken {
					skipDepth++
				}
				continue
			}
			if isBlockTag(tag) || tag == "br" {
				b.WriteByte('\n')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				if skipDepth > 0 {
					skipDepth--
				}
				continue
			}
			if isBlockTag(tag) {
				b.WriteByte('\n')
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func isBlockTag(tag string) bool {
	switch tag {
	case "p", "div", "tr", "li", "table", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote":
		return true
	}
	return false
}

var (
	spaceRuns   = regexp.MustCompile(`[ \t]+`)
	newlineRuns = regexp.MustCompile(`\n{3,}`)
	edgeSpaces  = regexp.MustCompile(`[ ]*\n[ ]*`)
)

// normalizeWhitespace collapses runs of spaces/tabs to one space, runs of
// three or more newlines to exactly two, and drops non-printable control
// characters except tab and newline.
func normalizeWhitespace(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r < 0x20 && r != '\t' && r != '\n' {
			continue
		}
		if r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	out := spaceRuns.ReplaceAllString(b.String(), " ")
	out = edgeSpaces.ReplaceAllString(out, "\n")
	out = newlineRuns.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

var filenameSafe = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	return filenameSafe.ReplaceAllString(name, "_")
}

var wordPattern = regexp.MustCompile(`[a-zA-Z]{4,}`)

var stopwords = map[string]struct{}{
	"this": {}, "that": {}, "with": {}, "from": {}, "have": {}, "will": {},
	"your": {}, "would": {}, "could": {}, "should": {}, "about": {},
	"there": {}, "their": {}, "which": {}, "been": {}, "were": {},
	"please": {}, "thanks": {}, "regards": {}, "hello": {}, "best": {},
}

// topKeywords returns the most frequent non-stopword terms, most frequent
// first, ties broken alphabetically for stable output.
func topKeywords(text string, limit int) []string {
	counts := make(map[string]int)
	for _, w := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if _, skip := stopwords[w]; skip {
			continue
		}
		counts[w]++
	}

	words := make([]string, 0, len(counts))
	for w := range counts {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if counts[words[i]] != counts[words[j]] {
			return counts[words[i]] > counts[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > limit {
		words = words[:limit]
	}
	return words
}
