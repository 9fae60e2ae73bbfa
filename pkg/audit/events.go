package audit

import (
	"fmt"
	"strconv"
)

func result(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}

func severity(success bool) Severity {
	if success {
		return SeverityInfo
	}
	return SeverityWarning
}

// AuthenticateEvent is a bearer token check by the API
type AuthenticateEvent struct {
	Subject      string
	ClientIP     string
	Success      bool
	ErrorMessage string
}

func (e AuthenticateEvent) MessageID() string {
	return "authn"
}

func (e AuthenticateEvent) Message() string {
	subject := e.Subject
	if subject == "" {
		subject = "unknown subject"
	}
	if e.Success {
		return fmt.Sprintf("%s successfully authenticated", subject)
	}
	msg := fmt.Sprintf("%s failed to authenticate", subject)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e AuthenticateEvent) Severity() Severity {
	return severity(e.Success)
}

func (e AuthenticateEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AuthenticateEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"authenticator": "bearer",
			"user":          e.Subject,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "authenticate",
			"result":    result(e.Success),
		},
	}
}

// LookupEvent is a drug lookup served by the API
type LookupEvent struct {
	Subject      string
	ClientIP     string
	Operation    string
	DrugID       string
	Success      bool
	ErrorMessage string
}

func (e LookupEvent) MessageID() string {
	return "lookup"
}

func (e LookupEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s looked up %s of %s", e.Subject, e.Operation, e.DrugID)
	}
	msg := fmt.Sprintf("%s failed to look up %s of %s", e.Subject, e.Operation, e.DrugID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e LookupEvent) Severity() Severity {
	return severity(e.Success)
}

func (e LookupEvent) Facility() int {
	return FacilityLocal0
}

func (e LookupEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"user": e.Subject,
		},
		SDIDSubject: {
			"drug": e.DrugID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
			"result":    result(e.Success),
		},
	}
}

// LoadEvent is a dump imported into the database or reloaded in memory
type LoadEvent struct {
	Source       string
	Target       string
	RunID        string
	Drugs        int
	Success      bool
	ErrorMessage string
}

func (e LoadEvent) MessageID() string {
	return "load"
}

func (e LoadEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("loaded %d drugs from %s into %s", e.Drugs, e.Source, e.Target)
	}
	msg := fmt.Sprintf("failed to load %s into %s", e.Source, e.Target)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e LoadEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityError
}

func (e LoadEvent) Facility() int {
	return FacilityLocal0
}

func (e LoadEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDLoad: {
			"source": e.Source,
			"target": e.Target,
			"drugs":  strconv.Itoa(e.Drugs),
		},
		SDIDAction: {
			"operation": "load",
			"result":    result(e.Success),
		},
	}
	if e.RunID != "" {
		sd[SDIDLoad]["run"] = e.RunID
	}
	return sd
}
