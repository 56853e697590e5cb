package apperrors

import "fmt"

// NetworkError reports a transport or HTTP-level failure while talking to an
// external service.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ValidationError reports a missing or malformed input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NotFoundError reports that no matching customer or subscription exists.
// Message is shown to the user verbatim.
type NotFoundError struct {
	Resource string
	Message  string
}

func (e *NotFoundError) Error() string { return e.Message }

// VerificationError reports an identity check failure (name/email mismatch).
type VerificationError struct {
	Message string
}

func (e *VerificationError) Error() string { return e.Message }

// RemoteCancellationError reports that the billing system rejected a
// subscription cancellation. Local state must not be updated when this
// error is returned.
type RemoteCancellationError struct {
	Err error
}

func (e *RemoteCancellationError) Error() string {
	return fmt.Sprintf("failed to cancel subscription with payment provider: %v", e.Err)
}

func (e *RemoteCancellationError) Unwrap() error { return e.Err }

// PaymentInitializationError is returned once every payment-intent creation
// attempt has been exhausted. Last carries the error of the final attempt.
type PaymentInitializationError struct {
	Attempts int
	Last     error
}

func (e *PaymentInitializationError) Error() string {
	return fmt.Sprintf("payment initialization failed after %d attempts: %v", e.Attempts, e.Last)
}

func (e *PaymentInitializationError) Unwrap() error { return e.Last }
