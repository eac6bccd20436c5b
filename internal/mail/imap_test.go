package mail

import (
	"testing"

	"github.com/emersion/go-imap/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIMAPMessageIDRoundTrip(t *testing.T) {
	id := imapMessageID("INBOX", imap.UID(4217))
	assert.Equal(t, "INBOX/4217", id)

	folder, uid, err := splitIMAPMessageID(id)
	require.NoError(t, err)
	assert.Equal(t, "INBOX", folder)
	assert.Equal(t, imap.UID(4217), uid)
}

func TestSplitIMAPMessageIDNestedFolder(t *testing.T) {
	folder, uid, err := splitIMAPMessageID("Clients/2025/99")

	require.NoError(t, err)
	assert.Equal(t, "Clients/2025", folder)
	assert.Equal(t, imap.UID(99), uid)
}

func TestSplitIMAPMessageIDRejectsMalformed(t *testing.T) {
	for _, id := range []string{"", "noslash", "INBOX/", "INBOX/notanumber"} {
		_, _, err := splitIMAPMessageID(id)
		assert.Error(t, err, id)
	}
}
