package extsvc

import "fmt"

// Service identifies an external integration whose configuration can be updated.
// The set is closed; ParseService is the only way to obtain one from text.
type Service int

const (
	S3 Service = iota
	SMTP
	SMS
	Notification

	numServices
)

// serviceNames maps each Service to its textual identifier. Matching is case-sensitive.
var serviceNames = [numServices]string{
	S3:           "S3",
	SMTP:         "SMTP",
	SMS:          "SMS",
	Notification: "NOTIFICATION",
}

func (s Service) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Service(%d)", int(s))
	}
	return serviceNames[s]
}

// Valid reports whether s is one of the declared services.
func (s Service) Valid() bool {
	return s >= 0 && s < numServices
}

// ParseService resolves name by exact string match. No case folding or trimming.
func ParseService(name string) (Service, bool) {
	for i, n := range serviceNames {
		if n == name {
			return Service(i), true
		}
	}
	return 0, false
}

// Services returns all services in declaration order.
func Services() []Service {
	out := make([]Service, numServices)
	for i := range out {
		out[i] = Service(i)
	}
	return out
}
