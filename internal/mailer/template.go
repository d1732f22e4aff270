package mailer

import (
	"fmt"
	"html/template"
	"strings"
)

// The confirmation message is parameterized only by the recipient's first
// name. Event date, time, and stream link are announced in a later mailing.
var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Registration Confirmation</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f8fafc;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 600px; margin: 0 auto; background-color: #ffffff;">
    <tr>
      <td style="background: linear-gradient(135deg, #041527 0%, #0a2540 100%); padding: 40px 30px; text-align: center;">
        <h1 style="color: #ffffff; margin: 0; font-size: 28px; font-weight: 700;">AIYA</h1>
        <p style="color: #94a3b8; margin: 10px 0 0 0; font-size: 14px;">AI Business Bootcamp 2026</p>
      </td>
    </tr>
    <tr>
      <td style="padding: 40px 30px;">
        <h2 style="color: #041527; margin: 0 0 20px 0; font-size: 24px;">Registration Confirmed! 🎉</h2>
        <p style="color: #475569; font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">
          สวัสดีค่ะ/ครับ คุณ{{.FirstName}},
        </p>
        <p style="color: #475569; font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">
          Thank you for registering for the <strong>AIYA Seminar</strong>. We're excited to have you join us!
        </p>
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background: linear-gradient(135deg, #3A23B5 0%, #5C499D 100%); border-radius: 16px; margin: 30px 0;">
          <tr>
            <td style="padding: 30px;">
              <h3 style="color: #ffffff; margin: 0 0 20px 0; font-size: 18px;">📅 Event Details</h3>
              <p style="color: rgba(255,255,255,0.9); font-size: 14px; margin: 0 0 10px 0;"><strong>Date:</strong> To be announced</p>
              <p style="color: rgba(255,255,255,0.9); font-size: 14px; margin: 0 0 10px 0;"><strong>Time:</strong> To be announced</p>
              <p style="color: rgba(255,255,255,0.9); font-size: 14px; margin: 0;"><strong>Stream Link:</strong> Will be sent before the event</p>
            </td>
          </tr>
        </table>
        <p style="color: #475569; font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">
          You will receive another email with the streaming link and calendar invite closer to the event date.
        </p>
        <p style="color: #475569; font-size: 16px; line-height: 1.6; margin: 0;">
          If you have any questions, please don't hesitate to reach out.
        </p>
      </td>
    </tr>
    <tr>
      <td style="background-color: #f8fafc; padding: 30px; text-align: center; border-top: 1px solid #e2e8f0;">
        <p style="color: #94a3b8; font-size: 14px; margin: 0 0 10px 0;">© 2026 AIYA. All rights reserved.</p>
        <p style="color: #94a3b8; font-size: 12px; margin: 0;">This email was sent because you registered for an AIYA event.</p>
      </td>
    </tr>
  </table>
</body>
</html>`))

func confirmationHTML(firstName string) string {
	var b strings.Builder
	// The template has no dynamic parse errors left to hit at this point.
	_ = confirmationTmpl.Execute(&b, struct{ FirstName string }{FirstName: firstName})
	return b.String()
}

func confirmationText(firstName string) string {
	return fmt.Sprintf("Hi %s,\n\n"+
		"Thank you for registering for the AIYA Seminar. We're excited to have you join us!\n\n"+
		"You will receive the streaming link and calendar invite closer to the event date.\n\n"+
		"Best regards,\nAIYA Team", firstName)
}
