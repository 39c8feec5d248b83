// Copyright RegnskapSky and each contributor.
// SPDX-License-Identifier: MIT

package email

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmailMessage(t *testing.T) {
	config := SMTPConfig{
		Host: "localhost",
		Port: 1025,
		From: "oppgaver@regnskapsky.no",
	}

	message := buildEmailMessage("kari@fjordvik.no", "Påminnelse: MVA-melding", "<p>html body</p>", "text body", config)

	t.Run("headers", func(t *testing.T) {
		assert.Contains(t, message, "From: oppgaver@regnskapsky.no\r\n")
		assert.Contains(t, message, "To: kari@fjordvik.no\r\n")
		assert.Contains(t, message, "Subject: Påminnelse: MVA-melding\r\n")
		assert.Contains(t, message, "MIME-Version: 1.0\r\n")
		assert.Contains(t, message, "Content-Type: multipart/alternative;")
	})

	t.Run("parts", func(t *testing.T) {
		assert.Contains(t, message, "Content-Type: text/plain; charset=\"UTF-8\"")
		assert.Contains(t, message, "Content-Type: text/html; charset=\"UTF-8\"")
		assert.Contains(t, message, "text body")
		assert.Contains(t, message, "<p>html body</p>")
	})

	t.Run("text part comes before html part", func(t *testing.T) {
		textIndex := strings.Index(message, "text body")
		htmlIndex := strings.Index(message, "<p>html body</p>")
		assert.Less(t, textIndex, htmlIndex)
	})
}

func TestBuildEmailMessageWithICS(t *testing.T) {
	config := SMTPConfig{
		Host: "localhost",
		Port: 1025,
		From: "oppgaver@regnskapsky.no",
	}
	icsContent := "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"

	message := buildEmailMessageWithICS("kari@fjordvik.no", "Påminnelse: MVA-melding", "<p>html body</p>", "text body", icsContent, config)

	t.Run("mixed wrapper with alternative inside", func(t *testing.T) {
		assert.Contains(t, message, "Content-Type: multipart/mixed;")
		assert.Contains(t, message, "Content-Type: multipart/alternative;")
	})

	t.Run("calendar attachment", func(t *testing.T) {
		assert.Contains(t, message, "Content-Type: text/calendar; charset=\"UTF-8\"; method=REQUEST")
		assert.Contains(t, message, "Content-Disposition: attachment; filename=\"frist.ics\"")

		encoded := base64.StdEncoding.EncodeToString([]byte(icsContent))
		assert.Contains(t, message, encoded)
	})

	t.Run("both body parts present", func(t *testing.T) {
		assert.Contains(t, message, "text body")
		assert.Contains(t, message, "<p>html body</p>")
	})
}

func TestSendEmailMessage(t *testing.T) {
	t.Run("successful send", func(t *testing.T) {
		server := NewMockSMTPServerForTesting(t, DefaultSuccessfulSMTPResponses())
		defer func() {
			_ = server.Close()
		}()

		host, err := server.GetHost()
		require.NoError(t, err)
		port, err := server.GetPort()
		require.NoError(t, err)

		config := SMTPConfig{
			Host: host,
			Port: port,
			From: "oppgaver@regnskapsky.no",
		}

		message := buildEmailMessage("kari@fjordvik.no", "Test", "<p>html</p>", "text", config)
		err = sendEmailMessage("kari@fjordvik.no", message, config)
		assert.NoError(t, err)
	})

	t.Run("server rejects sender", func(t *testing.T) {
		server := NewMockSMTPServerForTesting(t, DefaultFailureSMTPResponses())
		defer func() {
			_ = server.Close()
		}()

		host, err := server.GetHost()
		require.NoError(t, err)
		port, err := server.GetPort()
		require.NoError(t, err)

		config := SMTPConfig{
			Host: host,
			Port: port,
			From: "oppgaver@regnskapsky.no",
		}

		err = sendEmailMessage("kari@fjordvik.no", "message", config)
		assert.Error(t, err)
	})
}
