package templates

import "fmt"

const mimeHeaders = "MIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n"

// Welcome builds the post-purchase welcome message. The Free Trial plan gets
// its own variant explaining the authorization charge and the conversion to
// the monthly plan.
func Welcome(email string, name string, planName string) []byte {
	subject := "Subject: Welcome to KinScreen!\r\n"

	intro := fmt.Sprintf("Thank you for subscribing to our %s plan.", planName)
	trialBlock := ""
	if planName == "Free Trial" {
		intro = "Welcome to your free trial!"
		trialBlock = `
				<tr>
					<td style="padding-bottom: 20px;">
						<strong>Your Free Trial Details:</strong>
						<ul>
							<li>7 days of full access</li>
							<li>All premium features included</li>
							<li>$1 authorization charge (will be refunded)</li>
							<li>Converts to $5/month after trial</li>
							<li>Cancel anytime during trial at no cost</li>
						</ul>
					</td>
				</tr>`
	}

	body := fmt.Sprintf(`
	<div style="background-color: #7C3AED; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px; padding: 20px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Welcome to KinScreen!</h1></td>
				</tr>
				<tr>
					<td style="padding-bottom: 20px;">Dear %s,<br><br>Thank you for choosing KinScreen! %s</td>
				</tr>%s
				<tr>
					<td style="padding-bottom: 20px;">
						<strong>Getting Started:</strong>
						<ol>
							<li>Download KinScreen for your device:
								Windows: https://download.kinscreen.com/windows /
								Mac: https://download.kinscreen.com/mac</li>
							<li>Sign in with your email: %s</li>
							<li>Start sharing your memories!</li>
						</ol>
					</td>
				</tr>
				<tr>
					<td>Need help? Email support@kinscreen.com, call 1-800-MEMORY or use the live chat on our website.<br><br>Best regards,<br>The KinScreen Team</td>
				</tr>
			</tbody>
		</table>
	</div>
`, name, intro, trialBlock, email)

	return []byte(subject + mimeHeaders + body)
}
