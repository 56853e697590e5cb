package templates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// OrderNumber derives a human-readable order reference from the order time.
func OrderNumber(t time.Time) string {
	return "KS-" + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}

// OrderConfirmation builds the receipt mail sent after checkout.
func OrderConfirmation(email string, name string, planName string, amount string, freeTrial bool) []byte {
	orderNumber := OrderNumber(time.Now())
	subject := fmt.Sprintf("Subject: KinScreen - Order Confirmation #%s\r\n", orderNumber)
	orderDate := time.Now().Format("January 2, 2006")

	amountBlock := fmt.Sprintf("Amount: %s", amount)
	trialBlock := ""
	if freeTrial {
		amountBlock = "Trial Period: 7 days<br>Amount: $1.00 (authorization charge, will be refunded)<br>Regular Price: $5.00/month after trial"
		trialBlock = `
				<tr>
					<td style="padding-bottom: 20px;">
						<strong>Important Trial Information:</strong>
						<ul>
							<li>Your free trial starts today</li>
							<li>$1 authorization charge will be refunded</li>
							<li>After 7 days, you'll be charged $5.00/month</li>
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
					<td><h1 style="text-align:center">Order Confirmation</h1></td>
				</tr>
				<tr>
					<td style="padding-bottom: 20px;">Dear %s,<br><br>Thank you for your order! Here's your receipt:</td>
				</tr>
				<tr>
					<td style="padding-bottom: 20px;">
						<strong>Order Details:</strong><br>
						Order Number: %s<br>
						Date: %s<br>
						Plan: %s<br>
						%s
					</td>
				</tr>
				<tr>
					<td style="padding-bottom: 20px;">
						<strong>Billing Summary:</strong><br>
						Subtotal: %s<br>
						Tax: $0.00<br>
						Total: %s
					</td>
				</tr>%s
				<tr>
					<td style="padding-bottom: 20px;">Your subscription is now active. Visit https://app.kinscreen.com and sign in with %s to start right away.</td>
				</tr>
				<tr>
					<td>Thank you for choosing KinScreen!<br><br>Best regards,<br>The KinScreen Team<br><br><em>This is an automated email. Please do not reply to this message.</em></td>
				</tr>
			</tbody>
		</table>
	</div>
`, name, orderNumber, orderDate, planName, amountBlock, amount, amount, trialBlock, email)

	return []byte(subject + mimeHeaders + body)
}
