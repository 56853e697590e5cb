package templates

import "fmt"

// Cancellation builds the confirmation sent after a subscription has been
// canceled.
func Cancellation(name string) []byte {
	subject := "Subject: KinScreen Subscription Cancellation Confirmation\r\n"

	body := fmt.Sprintf(`
	<div style="background-color: #7C3AED; width: 100%%; min-height: 300px; padding: 30px; box-sizing:border-box">
		<table style="background-color: #ffffff; width: 100%%; min-height: 300px; padding: 20px;">
			<tbody>
				<tr>
					<td><h1 style="text-align:center">Cancellation Confirmed</h1></td>
				</tr>
				<tr>
					<td style="padding-bottom: 20px;">Dear %s,<br><br>We've received your request to cancel your KinScreen subscription.</td>
				</tr>
				<tr>
					<td style="padding-bottom: 20px;">
						<strong>What happens next:</strong>
						<ul>
							<li>Your subscription will remain active until the end of your current billing period</li>
							<li>You'll still have access to all your photos and memories</li>
							<li>No further payments will be charged</li>
							<li>You can reactivate your subscription at any time</li>
						</ul>
					</td>
				</tr>
				<tr>
					<td>We're sorry to see you go. Need help? Contact our support team at support@kinscreen.com.<br><br>Best regards,<br>The KinScreen Team</td>
				</tr>
			</tbody>
		</table>
	</div>
`, name)

	return []byte(subject + mimeHeaders + body)
}
