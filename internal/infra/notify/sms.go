package notify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// SMS sends text messages through Twilio.
type SMS struct {
	client *twilio.RestClient
	from   string
}

func NewSMS(accountSID, authToken, from string) *SMS {
	return &SMS{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

func (s *SMS) Send(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	return nil
}

var nonDigits = regexp.MustCompile(`[^\d+]`)

// E164 converts Australian numbers like "(02) 9231 2345" or "0412 345 678"
// to +61 form. It returns "" for anything it cannot place.
func E164(phone string) string {
	p := nonDigits.ReplaceAllString(strings.TrimSpace(phone), "")
	switch {
	case strings.HasPrefix(p, "+"):
		if len(p) < 9 {
			return ""
		}
		return p
	case strings.HasPrefix(p, "61") && len(p) == 11:
		return "+" + p
	case strings.HasPrefix(p, "0") && len(p) == 10:
		return "+61" + p[1:]
	}
	return ""
}

// ContactMessage is the SMS a salon receives for a new enquiry.
func ContactMessage(salonName, visitorName, subject string) string {
	msg := fmt.Sprintf("NailNav: new enquiry for %s from %s", salonName, visitorName)
	if subject = strings.TrimSpace(subject); subject != "" {
		msg += ": " + subject
	}
	return msg
}
