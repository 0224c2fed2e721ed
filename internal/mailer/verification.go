package mailer

import (
	"bytes"
	"html/template"
	"net/url"
)

var verificationTmpl = template.Must(template.New("verify").Parse(`<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Email Verification</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1>Pet Management System</h1>
    <h2>Hello, {{.Name}}!</h2>
    <p>Thank you for registering. Please verify your email address to start managing your pets.</p>
    <p><a href="{{.Link}}">Verify Email Address</a></p>
    <p>If the link does not work, open the verification page and enter:</p>
    <p><strong>Email:</strong> {{.Email}}<br><strong>Token:</strong> {{.Token}}</p>
    <p>If you didn't create an account with us, please ignore this email.</p>
  </div>
</body>
</html>`))

// VerificationEmail builds the account verification message.
func VerificationEmail(origin, name, email, token string) (Message, error) {
	q := url.Values{}
	q.Set("token", token)
	q.Set("email", email)
	link := origin + "/verify-email?" + q.Encode()

	var buf bytes.Buffer
	if err := verificationTmpl.Execute(&buf, map[string]string{
		"Name":  name,
		"Email": email,
		"Token": token,
		"Link":  link,
	}); err != nil {
		return Message{}, err
	}

	return Message{
		To:      email,
		Subject: "Pet Management System - Verify Your Email",
		HTML:    buf.String(),
	}, nil
}
