package mail

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thienphuprogrammer/bot-mail-proposal-sub000/internal/core/domain"
)

func TestExtractBodyPrefersHTML(t *testing.T) {
	p := NewProcessor(t.TempDir())

	body := p.ExtractBody(BodyParts{
		HTML: "<html><body><p>Hello <b>world</b></p><p>Second paragraph</p></body></html>",
		Text: "plain fallback",
	})

	assert.Contains(t, body, "Hello world")
	assert.Contains(t, body, "Second paragraph")
	assert.NotContains(t, body, "<p>")
	assert.NotContains(t, body, "plain fallback")
}

func TestExtractBodyDropsScriptAndStyle(t *testing.T) {
	p := NewProcessor(t.TempDir())

	body := p.ExtractBody(BodyParts{
		HTML: `<html><head><style>.x{color:red}</style></head><body><script>alert("hi")</script>Visible text</body></html>`,
	})

	assert.Equal(t, "Visible text", body)
}

func TestExtractBodyFallsBackToText(t *testing.T) {
	p := NewProcessor(t.TempDir())

	body := p.ExtractBody(BodyParts{Text: "  just   plain\ttext  "})

	assert.Equal(t, "just plain text", body)
}

func TestExtractBodyFallsBackToRaw(t *testing.T) {
	p := NewProcessor(t.TempDir())

	body := p.ExtractBody(BodyParts{Raw: "raw payload"})

	assert.Equal(t, "raw payload", body)
}

func TestExtractBodySentinelWhenEmpty(t *testing.T) {
	p := NewProcessor(t.TempDir())

	body := p.ExtractBody(BodyParts{HTML: "<html></html>", Text: "   ", Raw: ""})

	assert.Equal(t, NoBodyFound, body)
}

func TestExtractBodyCollapsesBlankLines(t *testing.T) {
	p := NewProcessor(t.TempDir())

	body := p.ExtractBody(BodyParts{Text: "first\n\n\n\n\nsecond"})

	assert.Equal(t, "first\n\nsecond", body)
}

func TestSaveAttachmentsWritesFilesAndSkipsFailures(t *testing.T) {
	dir := t.TempDir()
	p := NewProcessor(dir)
	msg := &domain.NormalizedMessage{
		MessageID: "msg-1",
		Attachments: []domain.Attachment{
			{AttachmentID: "a-1", Filename: "spec v1.pdf"},
			{AttachmentID: "a-2", Filename: "broken.docx"},
		},
	}

	p.SaveAttachments(context.Background(), msg, func(_ context.Context, _, attachmentID string) ([]byte, error) {
		if attachmentID == "a-2" {
			return nil, errors.New("download failed")
		}
		return []byte("pdf-bytes"), nil
	})

	require.NotEmpty(t, msg.Attachments[0].LocalPath)
	assert.Equal(t, filepath.Join(dir, "msg-1_spec_v1.pdf"), msg.Attachments[0].LocalPath)
	data, err := os.ReadFile(msg.Attachments[0].LocalPath)
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(data))
	assert.Equal(t, int64(len("pdf-bytes")), msg.Attachments[0].Size)

	assert.Empty(t, msg.Attachments[1].LocalPath, "failed download leaves no local path")
}

func TestExtractMetadata(t *testing.T) {
	p := NewProcessor(t.TempDir())
	msg := domain.NormalizedMessage{
		Sender:  "Alice Client <alice@client.example>",
		Subject: "Website proposal request",
		Body:    "We would like a proposal for rebuilding our website with a webshop.",
		Attachments: []domain.Attachment{
			{Filename: "brief.pdf"},
			{Filename: "logo.PNG"},
			{Filename: "sketch.pdf"},
			{Filename: "noext"},
		},
	}

	meta := p.ExtractMetadata(msg)

	assert.Equal(t, "Alice Client", meta.SenderName)
	assert.Equal(t, "alice@client.example", meta.SenderAddress)
	assert.Equal(t, len(msg.Body), meta.ContentLength)
	assert.Contains(t, meta.Keywords, "website")
	assert.Contains(t, meta.Keywords, "proposal")
	assert.Equal(t, 2, meta.AttachmentTypes["pdf"])
	assert.Equal(t, 1, meta.AttachmentTypes["png"])
	assert.Equal(t, 1, meta.AttachmentTypes["unknown"])
}

func TestExtractMetadataBareAddress(t *testing.T) {
	p := NewProcessor(t.TempDir())

	meta := p.ExtractMetadata(domain.NormalizedMessage{Sender: "bob@client.example", Body: "short"})

	assert.Equal(t, "bob@client.example", meta.SenderAddress)
	assert.Empty(t, meta.SenderName)
	assert.Nil(t, meta.AttachmentTypes)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "report_2024_final.pdf", sanitizeFilename("report 2024 final.pdf"))
	assert.Equal(t, "b_c", sanitizeFilename("a/b\\c"))
}
