package domain

// AbsenceStatus is the administrative status of an operator over a period.
type AbsenceStatus string

const (
	StatusUnpaidLeave AbsenceStatus = "bs"
	StatusSickLeave   AbsenceStatus = "sick_leave"
	StatusAnnualLeave AbsenceStatus = "annual_leave"
	StatusDismissal   AbsenceStatus = "dismissal"
)

// StatusKind groups statuses for reporting: plain absences end, dismissals do not.
type StatusKind string

const (
	KindAbsence   StatusKind = "absence"
	KindDismissal StatusKind = "dismissal"
)

// StatusMeta carries display metadata for a status code.
type StatusMeta struct {
	Label string
	Kind  StatusKind
}

// StatusCatalog is the canonical set of recognized absence statuses.
var StatusCatalog = map[AbsenceStatus]StatusMeta{
	StatusUnpaidLeave: {Label: "Unpaid leave", Kind: KindAbsence},
	StatusSickLeave:   {Label: "Sick leave", Kind: KindAbsence},
	StatusAnnualLeave: {Label: "Annual leave", Kind: KindAbsence},
	StatusDismissal:   {Label: "Dismissal", Kind: KindDismissal},
}

// DismissalReasons is the fixed set of accepted dismissal reasons.
var DismissalReasons = []string{
	"voluntary",
	"agreement",
	"probation_failed",
	"misconduct",
	"staff_reduction",
	"other",
}

// ValidDismissalReason reports whether reason is a member of DismissalReasons.
func ValidDismissalReason(reason string) bool {
	for _, r := range DismissalReasons {
		if r == reason {
			return true
		}
	}
	return false
}

// ActivityState is an operator presence state reported by the telephony side.
type ActivityState string

const (
	StateActive   ActivityState = "active"
	StateBreak    ActivityState = "break"
	StateTraining ActivityState = "training"
	StateTech     ActivityState = "tech"
	StateSigning  ActivityState = "signing"
	StateInactive ActivityState = "inactive"
)

// ValidActivityStates is the canonical set of accepted activity state strings.
var ValidActivityStates = map[string]bool{
	"active": true, "break": true, "training": true,
	"tech": true, "signing": true, "inactive": true,
}

// WorkedStates are the states that count toward worked time.
var WorkedStates = []ActivityState{StateActive, StateSigning}
