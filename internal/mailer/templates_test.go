package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventfold/sponsorpipe/internal/mailer"
)

func TestBenefitDelivered(t *testing.T) {
	msg := mailer.BenefitDelivered("dana@acme.example", "Dana", "Booth space", "GopherConf 2026")

	assert.Equal(t, "dana@acme.example", msg.To)
	assert.Equal(t, "Benefit delivered: Booth space (GopherConf 2026)", msg.Subject)
	assert.Contains(t, msg.Text, "Hello Dana,")
	assert.Contains(t, msg.Text, `"Booth space"`)
	assert.Contains(t, msg.HTML, "<strong>Booth space</strong>")
}

func TestBenefitDelivered_NoContactName(t *testing.T) {
	msg := mailer.BenefitDelivered("info@acme.example", "", "Booth space", "GopherConf 2026")

	assert.Contains(t, msg.Text, "Hello,")
}

func TestBenefitDelivered_EscapesHTML(t *testing.T) {
	msg := mailer.BenefitDelivered("x@y.example", "<script>", "A & B", "Conf")

	assert.NotContains(t, msg.HTML, "<script>")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
	assert.Contains(t, msg.HTML, "A &amp; B")
	// Plain text is left as-is
	assert.Contains(t, msg.Text, "A & B")
}
