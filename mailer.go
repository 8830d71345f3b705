package blog

import (
	"crypto/tls"
	"fmt"
	"net/mail"
	"net/url"

	"github.com/dajohi/goemail"
)

const verificationEmailSubject = "Welcome! Please verify your account"

// Mailer delivers the account verification email. Delivery happens off
// the request path; implementations must tolerate being called from a
// goroutine after the HTTP response has been written.
type Mailer interface {
	IsEnabled() bool
	SendVerificationEmail(user *User, activationLink string) error
}

// SMTPMailer sends email from a preset address over smtps.
type SMTPMailer struct {
	smtp        *goemail.SMTP
	mailName    string
	mailAddress string
	disabled    bool
}

var _ Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer builds an SMTP mailer. Email is considered disabled if
// any of the required credentials are missing; a disabled mailer
// silently drops messages so the rest of the system keeps working.
func NewSMTPMailer(host, user, password, emailAddress string, skipVerify bool) (*SMTPMailer, error) {
	if host == "" || user == "" || password == "" {
		return &SMTPMailer{disabled: true}, nil
	}

	h := fmt.Sprintf("smtps://%v:%v@%v", user, password, host)
	u, err := url.Parse(h)
	if err != nil {
		return nil, err
	}

	a, err := mail.ParseAddress(emailAddress)
	if err != nil {
		return nil, err
	}

	tlsConfig := &tls.Config{
		InsecureSkipVerify: skipVerify,
	}

	smtp, err := goemail.NewSMTP(u.String(), tlsConfig)
	if err != nil {
		return nil, err
	}

	return &SMTPMailer{
		smtp:        smtp,
		mailName:    a.Name,
		mailAddress: a.Address,
	}, nil
}

// IsEnabled returns whether the mail server is enabled.
func (m *SMTPMailer) IsEnabled() bool {
	return !m.disabled
}

// SendVerificationEmail sends the activation link to the user.
func (m *SMTPMailer) SendVerificationEmail(user *User, activationLink string) error {
	if m.disabled {
		return nil
	}

	body := fmt.Sprintf(`Please click <a href="%s">here</a> to verify your email`, activationLink)

	msg := goemail.NewHTMLMessage(m.mailAddress, verificationEmailSubject, body)
	msg.SetName(m.mailName)
	msg.AddBCC(user.Email)

	return m.smtp.Send(msg)
}

// ActivationLink builds the externally delivered activation URL for a
// pending user record.
func ActivationLink(baseURL string, user *User) (string, error) {
	payload, err := EncodeActivationPayload(user.EmailVerificationToken, user.Email)
	if err != nil {
		return "", err
	}

	return baseURL + "/users/activate?t=" + url.QueryEscape(payload), nil
}
