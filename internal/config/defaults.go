package config

import "time"

const (
	defaultOperationTimeout = 3 * time.Second
	defaultTimeZone         = "Asia/Ulaanbaatar"
)

// DefaultDispatch returns the dispatch settings used when none are loaded.
func DefaultDispatch() Dispatch {
	return Dispatch{
		OperationTimeout: defaultOperationTimeout,
		NotifyTimeout:    10 * time.Second,
		DefaultTimeZone:  defaultTimeZone,
	}
}

// DefaultSMSGateway returns the SMS retry policy used when none is loaded.
func DefaultSMSGateway() SMSGateway {
	return SMSGateway{
		Timeout:     5 * time.Second,
		MaxAttempts: 3,
		BaseDelay:   200 * time.Millisecond,
		MaxDelay:    2 * time.Second,
	}
}
