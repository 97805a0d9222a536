// Package metrics provides Prometheus observability for the scheduling
// engine: write volume, overlap churn, and absence conflict resolution.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for the application.
var Registry = prometheus.NewRegistry()

// factory registers metrics against Registry directly.
var factory = promauto.With(Registry)

// ShiftWritesTotal counts successful shift writes.
var ShiftWritesTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "rota",
	Name:      "shift_writes_total",
	Help:      "Total shift records written or refreshed",
})

// ShiftOverlapsRemoved counts stored shifts deleted because a newer write
// overlapped them. Persistently high values suggest schedulers fighting.
var ShiftOverlapsRemoved = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "rota",
	Name:      "shift_overlaps_removed_total",
	Help:      "Stored shifts deleted because a new shift overlapped them",
})

// DayOffTogglesTotal counts day-off toggles by resulting state.
var DayOffTogglesTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "rota",
	Name:      "dayoff_toggles_total",
	Help:      "Day-off toggles by resulting state (on/off)",
}, []string{"state"})

// AbsenceInsertsTotal counts inserted absence periods by status code.
var AbsenceInsertsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "rota",
	Name:      "absence_inserts_total",
	Help:      "Absence periods inserted, by status code",
}, []string{"status"})

// AbsenceConflictsTotal counts conflict resolutions applied while inserting
// absence periods, by action taken on the old period.
var AbsenceConflictsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "rota",
	Name:      "absence_conflicts_total",
	Help:      "Existing periods trimmed, split, or deleted during inserts",
}, []string{"action"})

// TimesheetBuildsTotal counts timesheet reconstructions.
var TimesheetBuildsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "rota",
	Name:      "timesheet_builds_total",
	Help:      "Timesheet reconstructions performed",
})

// ActivityEventsTotal counts appended activity events by state.
var ActivityEventsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "rota",
	Name:      "activity_events_total",
	Help:      "Activity events appended, by state",
}, []string{"state"})
