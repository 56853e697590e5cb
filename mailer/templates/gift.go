package templates

import "fmt"

// Gift builds the notification sent to a gift recipient. The sender name is
// whatever the purchaser chose to show on the gift.
func Gift(recipientEmail string, senderName string, planName string, personalMessage string) []byte {
	subject := "Subject: You've Received a KinScreen Gift!\r\n"

	messageBlock := ""
	if personalMessage != "" {
		messageBlock = fmt.Sprintf(`
				<tr>
					<td style="padding-bottom: 20px; font-style: italic;">"%s"<br>— %s</td>
				</tr>`, personalMessage, senderName)
	}

	body := fmt.Sprintf(`
	<div style="background-color: #7C3AED; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px; padding: 20px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">You've Received a Gift! 🎁</h1></td>
				</tr>
				<tr>
					<td style="padding-bottom: 20px;">Dear %s,<br><br>Great news! %s has gifted you a %s subscription to KinScreen - a beautiful way to keep your family memories always in view!</td>
				</tr>%s
				<tr>
					<td style="padding-bottom: 20px;">
						<strong>Get Started Now:</strong>
						<ol>
							<li>Download KinScreen for your device:
								Windows: https://download.kinscreen.com/windows /
								Mac: https://download.kinscreen.com/mac</li>
							<li>Install the application</li>
							<li>Sign in with this email address</li>
							<li>Your gift subscription will be automatically activated</li>
						</ol>
					</td>
				</tr>
				<tr>
					<td>Need help? Email support@kinscreen.com, call 1-800-MEMORY or use the live chat on our website.<br><br>Enjoy your gift!<br>The KinScreen Team</td>
				</tr>
			</tbody>
		</table>
	</div>
`, recipientEmail, senderName, planName, messageBlock)

	return []byte(subject + mimeHeaders + body)
}
