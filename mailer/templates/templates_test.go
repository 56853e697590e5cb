package templates

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWelcome(t *testing.T) {
	msg := string(Welcome("marie@example.com", "Marie Curie", "Monthly"))

	assert.True(t, strings.HasPrefix(msg, "Subject: Welcome to KinScreen!\r\n"))
	assert.Contains(t, msg, "Content-Type: text/html")
	assert.Contains(t, msg, "Marie Curie")
	assert.Contains(t, msg, "Monthly")
}

func TestWelcome_FreeTrial(t *testing.T) {
	msg := string(Welcome("marie@example.com", "Marie Curie", "Free Trial"))

	assert.Contains(t, msg, "free trial")
}

func TestGift(t *testing.T) {
	msg := string(Gift("pierre@example.com", "Marie Curie", "Lifetime", "Enjoy the photos"))

	assert.True(t, strings.HasPrefix(msg, "Subject: You've Received a KinScreen Gift!\r\n"))
	assert.Contains(t, msg, "pierre@example.com")
	assert.Contains(t, msg, "Marie Curie")
	assert.Contains(t, msg, "Lifetime")
	assert.Contains(t, msg, "Enjoy the photos")
}

func TestGift_NoPersonalMessage(t *testing.T) {
	msg := string(Gift("pierre@example.com", "Marie Curie", "Lifetime", ""))

	assert.NotContains(t, msg, "font-style: italic")
}

func TestCancellation(t *testing.T) {
	msg := string(Cancellation("Marie Curie"))

	assert.True(t, strings.HasPrefix(msg, "Subject:"))
	assert.Contains(t, msg, "Marie Curie")
}

func TestOrderNumber(t *testing.T) {
	moment := time.UnixMilli(1700000000000)
	number := OrderNumber(moment)

	assert.True(t, strings.HasPrefix(number, "KS-"))
	assert.Equal(t, strings.ToUpper(number), number)
	// Stable for a fixed timestamp.
	assert.Equal(t, number, OrderNumber(moment))
}

func TestOrderConfirmation(t *testing.T) {
	msg := string(OrderConfirmation("marie@example.com", "Marie Curie", "Lifetime", "$29.99", false))

	assert.True(t, strings.HasPrefix(msg, "Subject: KinScreen - Order Confirmation #KS-"))
	assert.Contains(t, msg, "Marie Curie")
	assert.Contains(t, msg, "$29.99")
	assert.NotContains(t, msg, "Trial Period")
}

func TestOrderConfirmation_FreeTrial(t *testing.T) {
	msg := string(OrderConfirmation("marie@example.com", "Marie Curie", "Free Trial", "$0", true))

	assert.Contains(t, msg, "Trial Period: 7 days")
	assert.Contains(t, msg, "Cancel anytime during trial")
}
