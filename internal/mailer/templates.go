package mailer

import (
	"fmt"
	"html"
)

// BenefitDelivered builds the notification sent to a sponsor contact when
// one of their contracted benefits has been fulfilled
func BenefitDelivered(to, contactName, benefitName, eventName string) Message {
	greeting := "Hello"
	if contactName != "" {
		greeting = "Hello " + contactName
	}

	subject := fmt.Sprintf("Benefit delivered: %s (%s)", benefitName, eventName)

	text := fmt.Sprintf(`%s,

Good news: your sponsorship benefit "%s" for %s has been delivered.

You can review all of your benefits in your sponsor portal.

The %s team`, greeting, benefitName, eventName, eventName)

	htmlBody := fmt.Sprintf(`<p>%s,</p>
<p>Good news: your sponsorship benefit <strong>%s</strong> for <strong>%s</strong> has been delivered.</p>
<p>You can review all of your benefits in your sponsor portal.</p>
<p>The %s team</p>`,
		html.EscapeString(greeting),
		html.EscapeString(benefitName),
		html.EscapeString(eventName),
		html.EscapeString(eventName))

	return Message{
		To:      to,
		Subject: subject,
		HTML:    htmlBody,
		Text:    text,
	}
}
