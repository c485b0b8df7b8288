// Package notify decides which launches deserve an alert and when. Delivery
// is left to the caller.
package notify

import (
	"fmt"
	"sort"
	"time"

	"github.com/litescript/ls-launchview/internal/visibility"
)

// DefaultLeadTime is how long before launch an alert fires.
const DefaultLeadTime = 30 * time.Minute

// Policy controls alert planning.
type Policy struct {
	MinLikelihood visibility.Likelihood
	LeadTime      time.Duration
}

// DefaultPolicy alerts for Medium and better, half an hour ahead.
func DefaultPolicy() Policy {
	return Policy{
		MinLikelihood: visibility.LikelihoodMedium,
		LeadTime:      DefaultLeadTime,
	}
}

// Alert is a planned notification.
type Alert struct {
	LaunchID   string
	Name       string
	At         time.Time // when to fire
	LaunchTime time.Time
	Likelihood visibility.Likelihood
	Message    string
}

// Plan returns alerts for launches at or after now whose likelihood meets
// the policy. Alerts whose lead time has already passed fire at now.
// Results are ordered by firing time.
func Plan(launches []visibility.Assessment, now time.Time, p Policy) []Alert {
	var alerts []Alert
	for _, a := range launches {
		if a.Result.Likelihood < p.MinLikelihood {
			continue
		}
		if a.Record.Time.Before(now) {
			continue
		}

		at := a.Record.Time.Add(-p.LeadTime)
		if at.Before(now) {
			at = now
		}

		alerts = append(alerts, Alert{
			LaunchID:   a.Record.ID,
			Name:       a.Record.Name,
			At:         at,
			LaunchTime: a.Record.Time,
			Likelihood: a.Result.Likelihood,
			Message:    message(a),
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].At.Before(alerts[j].At)
	})

	return alerts
}

func message(a visibility.Assessment) string {
	return fmt.Sprintf("%s at %s: %s visibility, look %s. %s",
		a.Record.Name,
		a.LocalTime.Format("15:04 MST"),
		a.Result.Likelihood,
		a.Result.Direction.Long(),
		a.Result.Reason,
	)
}
