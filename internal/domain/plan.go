package domain

// PlanID identifies a subscription plan in the fixed catalog.
type PlanID string

const (
	PlanMonthly    PlanID = "monthly"
	PlanHalfYearly PlanID = "half_yearly"
	PlanYearly     PlanID = "yearly"
)

func (p PlanID) String() string { return string(p) }

// Plan describes a purchasable subscription plan. Prices are in INR.
type Plan struct {
	ID           PlanID
	Name         string
	Price        int
	DurationDays int
}

// The yearly price appeared as both 3000 and 2999 in legacy config; 3000
// is canonical.
var plans = []Plan{
	{ID: PlanMonthly, Name: "Monthly", Price: 299, DurationDays: 30},
	{ID: PlanHalfYearly, Name: "6 Months", Price: 1599, DurationDays: 180},
	{ID: PlanYearly, Name: "Yearly", Price: 3000, DurationDays: 365},
}

// Plans returns the subscription plan catalog in display order.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// PlanByID looks up a plan in the catalog. Returns ErrNotFound for an
// unknown plan identifier.
func PlanByID(id PlanID) (Plan, error) {
	for _, p := range plans {
		if p.ID == id {
			return p, nil
		}
	}
	return Plan{}, ErrNotFound
}
